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

func TestArtistService(t *testing.T) {
	ctx := context.Background()

	t.Run("create and resolve by names", func(t *testing.T) {
		artistRepo := newFakeArtistRepo()
		svc := NewArtistService(artistRepo, &fakeObjectStorage{})

		if _, err := svc.CreateArtist(ctx, &dto.ArtistBaseDTO{Name: "Jane Doe"}); err != nil {
			t.Fatalf("CreateArtist: %v", err)
		}

		found, err := svc.GetArtistsByNames(ctx, []string{"Jane Doe", "Missing"})
		if err != nil {
			t.Fatalf("GetArtistsByNames: %v", err)
		}
		if len(found) != 1 || found[0].Name != "Jane Doe" {
			t.Errorf("found = %+v, want only Jane Doe", found)
		}
	})

	t.Run("replacing the photo removes the old object", func(t *testing.T) {
		artistRepo := newFakeArtistRepo()
		storage := &fakeObjectStorage{}
		svc := NewArtistService(artistRepo, storage)

		oldPhoto := "artists/u1_old.jpg"
		artistRepo.artists["Jane Doe"] = &model.Artist{ID: 1, Name: "Jane Doe", PhotoGcsPath: &oldPhoto}

		updated, err := svc.UpdateArtist(ctx, 1, &dto.UpdateArtistDTO{PhotoGcsPath: util.PtrString("artists/u2_new.jpg")})
		if err != nil {
			t.Fatalf("UpdateArtist: %v", err)
		}
		if updated.PhotoGcsPath == nil || *updated.PhotoGcsPath != "artists/u2_new.jpg" {
			t.Errorf("photo path = %v", updated.PhotoGcsPath)
		}
		if !slices.Contains(storage.removedObjects, oldPhoto) {
			t.Errorf("old photo not removed: %v", storage.removedObjects)
		}
	})

	t.Run("clearing the description persists", func(t *testing.T) {
		artistRepo := newFakeArtistRepo()
		svc := NewArtistService(artistRepo, &fakeObjectStorage{})

		desc := "bio"
		artistRepo.artists["Jane Doe"] = &model.Artist{ID: 1, Name: "Jane Doe", Description: &desc}

		if _, err := svc.UpdateArtist(ctx, 1, &dto.UpdateArtistDTO{Description: util.PtrString("")}); err != nil {
			t.Fatalf("UpdateArtist: %v", err)
		}
		stored := artistRepo.artists["Jane Doe"]
		if stored.Description == nil || *stored.Description != "" {
			t.Errorf("description = %v, want cleared", stored.Description)
		}
		if stored.Name != "Jane Doe" {
			t.Errorf("untouched name changed: %q", stored.Name)
		}
	})

	t.Run("unknown artist on update", func(t *testing.T) {
		svc := NewArtistService(newFakeArtistRepo(), &fakeObjectStorage{})
		if _, err := svc.UpdateArtist(ctx, 99, &dto.UpdateArtistDTO{}); !errors.Is(err, ErrArtistNotFound) {
			t.Errorf("err = %v, want ErrArtistNotFound", err)
		}
	})

	t.Run("delete cleans up the photo and is idempotent", func(t *testing.T) {
		artistRepo := newFakeArtistRepo()
		storage := &fakeObjectStorage{}
		svc := NewArtistService(artistRepo, storage)

		photo := "artists/u1_jane.jpg"
		artistRepo.artists["Jane Doe"] = &model.Artist{ID: 1, Name: "Jane Doe", PhotoGcsPath: &photo}

		if err := svc.DeleteArtist(ctx, 1); err != nil {
			t.Fatalf("DeleteArtist: %v", err)
		}
		if !slices.Contains(storage.removedObjects, photo) {
			t.Errorf("photo not removed: %v", storage.removedObjects)
		}
		if err := svc.DeleteArtist(ctx, 1); err != nil {
			t.Errorf("second delete should be a no-op, got %v", err)
		}
	})
}
