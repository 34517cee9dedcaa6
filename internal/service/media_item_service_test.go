package service

import (
	"Showreel/internal/api/dto"
	"Showreel/internal/model"
	"Showreel/internal/pkg/util"
	"context"
	"errors"
	"slices"
	"testing"
)

func TestCreateMediaItem(t *testing.T) {
	ctx := context.Background()
	mediaRepo := newFakeMediaItemRepo()
	svc := NewMediaItemService(mediaRepo, newFakeReelRepo(), &fakeObjectStorage{})

	item, err := svc.CreateMediaItem(ctx, &dto.MediaItemBaseDTO{
		Title:        "Launch Film",
		Client:       "Acme",
		Artists:      "Jane Doe",
		VideoGcsPath: "videos/u1_launch.mp4",
	})
	if err != nil {
		t.Fatalf("CreateMediaItem: %v", err)
	}
	if item.ID == 0 {
		t.Error("expected assigned id")
	}
	if item.Title != "Launch Film" || item.Client != "Acme" {
		t.Errorf("fields not copied: %+v", item)
	}
}

func TestUpdateMediaItem(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields stay untouched", func(t *testing.T) {
		mediaRepo := newFakeMediaItemRepo()
		storage := &fakeObjectStorage{}
		svc := NewMediaItemService(mediaRepo, newFakeReelRepo(), storage)

		mediaRepo.items[1] = &model.MediaItem{ID: 1, Title: "Old", Client: "Acme", VideoGcsPath: "videos/a.mp4"}

		item, err := svc.UpdateMediaItem(ctx, 1, &dto.UpdateMediaItemDTO{Title: util.PtrString("New")})
		if err != nil {
			t.Fatalf("UpdateMediaItem: %v", err)
		}
		if item.Title != "New" || item.Client != "Acme" || item.VideoGcsPath != "videos/a.mp4" {
			t.Errorf("sparse update broke untouched fields: %+v", item)
		}
		if len(storage.removedObjects) != 0 {
			t.Errorf("no objects should be removed, got %v", storage.removedObjects)
		}
	})

	t.Run("replacing a path removes the old object", func(t *testing.T) {
		mediaRepo := newFakeMediaItemRepo()
		storage := &fakeObjectStorage{}
		svc := NewMediaItemService(mediaRepo, newFakeReelRepo(), storage)

		mediaRepo.items[1] = &model.MediaItem{ID: 1, Title: "T", VideoGcsPath: "videos/old.mp4", PreviewGcsPath: "previews/old.jpg"}

		item, err := svc.UpdateMediaItem(ctx, 1, &dto.UpdateMediaItemDTO{VideoGcsPath: util.PtrString("videos/new.mp4")})
		if err != nil {
			t.Fatalf("UpdateMediaItem: %v", err)
		}
		if item.VideoGcsPath != "videos/new.mp4" {
			t.Errorf("video path = %q", item.VideoGcsPath)
		}
		if !slices.Contains(storage.removedObjects, "videos/old.mp4") {
			t.Errorf("old video object not removed: %v", storage.removedObjects)
		}
		if slices.Contains(storage.removedObjects, "previews/old.jpg") {
			t.Errorf("untouched preview was removed")
		}
	})

	t.Run("zero values persist", func(t *testing.T) {
		mediaRepo := newFakeMediaItemRepo()
		svc := NewMediaItemService(mediaRepo, newFakeReelRepo(), &fakeObjectStorage{})

		mediaRepo.items[1] = &model.MediaItem{ID: 1, Title: "T", AllowDownload: true, Description: "keepme"}

		allow := false
		item, err := svc.UpdateMediaItem(ctx, 1, &dto.UpdateMediaItemDTO{
			AllowDownload: &allow,
			Description:   util.PtrString(""),
		})
		if err != nil {
			t.Fatalf("UpdateMediaItem: %v", err)
		}
		if item.AllowDownload || item.Description != "" {
			t.Errorf("returned item = %+v, want allow_download false and empty description", item)
		}

		stored := mediaRepo.items[1]
		if stored.AllowDownload {
			t.Error("allow_download still true after update to false")
		}
		if stored.Description != "" {
			t.Errorf("description = %q, want cleared", stored.Description)
		}
		if stored.Title != "T" {
			t.Errorf("untouched title changed: %q", stored.Title)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		svc := NewMediaItemService(newFakeMediaItemRepo(), newFakeReelRepo(), &fakeObjectStorage{})
		if _, err := svc.UpdateMediaItem(ctx, 42, &dto.UpdateMediaItemDTO{}); !errors.Is(err, ErrMediaItemNotFound) {
			t.Errorf("err = %v, want ErrMediaItemNotFound", err)
		}
	})
}

func TestDeleteMediaItem(t *testing.T) {
	ctx := context.Background()

	// 媒体 1 同时在两个 reel 中：A 只有它一条，B 还有别的
	setup := func(t *testing.T) (*fakeMediaItemRepo, *fakeReelRepo, *fakeObjectStorage, MediaItemService) {
		t.Helper()
		mediaRepo := newFakeMediaItemRepo()
		reelRepo := newFakeReelRepo()
		storage := &fakeObjectStorage{}
		svc := NewMediaItemService(mediaRepo, reelRepo, storage)

		mediaRepo.items[1] = &model.MediaItem{
			ID:             1,
			Title:          "Doomed",
			VideoGcsPath:   "videos/u1_doomed.mp4",
			PreviewGcsPath: "previews/u1_doomed.jpg",
		}

		reelRepo.reels[10] = &model.Reel{ID: 10, Title: "Reel A"}
		reelRepo.items[10] = []*model.ReelMediaItem{{ReelID: 10, MediaItemID: 1, DisplayOrder: 1}}
		reelRepo.reels[20] = &model.Reel{ID: 20, Title: "Reel B"}
		reelRepo.items[20] = []*model.ReelMediaItem{
			{ReelID: 20, MediaItemID: 1, DisplayOrder: 1},
			{ReelID: 20, MediaItemID: 2, DisplayOrder: 2},
		}
		return mediaRepo, reelRepo, storage, svc
	}

	t.Run("cascades to storage, links and orphan reels", func(t *testing.T) {
		mediaRepo, reelRepo, storage, svc := setup(t)

		if err := svc.DeleteMediaItem(ctx, 1); err != nil {
			t.Fatalf("DeleteMediaItem: %v", err)
		}

		for _, want := range []string{"videos/u1_doomed.mp4", "previews/u1_doomed.jpg"} {
			if !slices.Contains(storage.removedObjects, want) {
				t.Errorf("object %q not removed: %v", want, storage.removedObjects)
			}
		}
		if !slices.Contains(storage.removedPrefixes, "transcoded_videos/u1_doomed") {
			t.Errorf("transcoded folder not removed: %v", storage.removedPrefixes)
		}

		if _, ok := reelRepo.reels[10]; ok {
			t.Error("reel A became empty and should have been deleted")
		}
		if _, ok := reelRepo.reels[20]; !ok {
			t.Error("reel B still has items and must survive")
		}
		if got := reelRepo.items[20]; len(got) != 1 || got[0].MediaItemID != 2 {
			t.Errorf("reel B items = %+v, want only media 2", got)
		}

		if _, ok := mediaRepo.items[1]; ok {
			t.Error("media item row not deleted")
		}
	})

	t.Run("storage failure does not block the delete", func(t *testing.T) {
		mediaRepo, _, storage, svc := setup(t)
		storage.removeErr = errors.New("object storage down")

		if err := svc.DeleteMediaItem(ctx, 1); err != nil {
			t.Fatalf("DeleteMediaItem: %v", err)
		}
		if _, ok := mediaRepo.items[1]; ok {
			t.Error("row should be deleted despite storage errors")
		}
	})

	t.Run("row delete failure is fatal", func(t *testing.T) {
		mediaRepo, _, _, svc := setup(t)
		mediaRepo.deleteErr = errors.New("db down")

		if err := svc.DeleteMediaItem(ctx, 1); err == nil {
			t.Fatal("expected error when the final row delete fails")
		}
	})

	t.Run("unknown item is a no-op", func(t *testing.T) {
		_, _, _, svc := setup(t)
		if err := svc.DeleteMediaItem(ctx, 999); err != nil {
			t.Errorf("err = %v, want nil", err)
		}
	})
}
