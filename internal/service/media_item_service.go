package service

import (
	"Showreel/internal/api/dto"
	"Showreel/internal/model"
	"Showreel/internal/pkg/consts"
	"Showreel/internal/pkg/util"
	"Showreel/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type MediaItemService interface {
	CreateMediaItem(ctx context.Context, createDTO *dto.MediaItemBaseDTO) (*model.MediaItem, error)
	GetMediaItem(ctx context.Context, id uint64) (*model.MediaItem, error)
	ListMediaItems(ctx context.Context) ([]*model.MediaItem, error)
	UpdateMediaItem(ctx context.Context, id uint64, updateDTO *dto.UpdateMediaItemDTO) (*model.MediaItem, error)
	DeleteMediaItem(ctx context.Context, id uint64) error
}

type mediaItemServiceImpl struct {
	mediaItemRepo repository.MediaItemRepo
	reelRepo      repository.ReelRepo
	objectStorage ObjectStorage
}

func NewMediaItemService(mediaItemRepo repository.MediaItemRepo, reelRepo repository.ReelRepo, objectStorage ObjectStorage) MediaItemService {
	return &mediaItemServiceImpl{
		mediaItemRepo: mediaItemRepo,
		reelRepo:      reelRepo,
		objectStorage: objectStorage,
	}
}

func (s *mediaItemServiceImpl) CreateMediaItem(ctx context.Context, createDTO *dto.MediaItemBaseDTO) (*model.MediaItem, error) {
	var item model.MediaItem
	if err := copier.Copy(&item, createDTO); err != nil {
		return nil, err
	}
	item.CreatedAt = time.Now()

	if err := s.mediaItemRepo.CreateMediaItem(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *mediaItemServiceImpl) GetMediaItem(ctx context.Context, id uint64) (*model.MediaItem, error) {
	item, err := s.mediaItemRepo.GetMediaItem(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *mediaItemServiceImpl) ListMediaItems(ctx context.Context) ([]*model.MediaItem, error) {
	return s.mediaItemRepo.ListMediaItems(ctx)
}

// UpdateMediaItem 稀疏更新；替换存储路径后尽力删除旧对象，失败只记日志
func (s *mediaItemServiceImpl) UpdateMediaItem(ctx context.Context, id uint64, updateDTO *dto.UpdateMediaItemDTO) (*model.MediaItem, error) {
	item, err := s.GetMediaItem(ctx, id)
	if err != nil {
		return nil, err
	}

	// 更新走列名映射，零值（false、空串）才不会被悄悄丢掉
	var replacedPaths []string
	fields := make(map[string]interface{})
	if updateDTO.Title != nil {
		item.Title = *updateDTO.Title
		fields["title"] = *updateDTO.Title
	}
	if updateDTO.Client != nil {
		item.Client = *updateDTO.Client
		fields["client"] = *updateDTO.Client
	}
	if updateDTO.Artists != nil {
		item.Artists = *updateDTO.Artists
		fields["artists"] = *updateDTO.Artists
	}
	if updateDTO.Craft != nil {
		item.Craft = *updateDTO.Craft
		fields["craft"] = *updateDTO.Craft
	}
	if updateDTO.Category != nil {
		item.Category = *updateDTO.Category
		fields["category"] = *updateDTO.Category
	}
	if updateDTO.ContentType != nil {
		item.ContentType = *updateDTO.ContentType
		fields["content_type"] = *updateDTO.ContentType
	}
	if updateDTO.VideoGcsPath != nil && *updateDTO.VideoGcsPath != item.VideoGcsPath {
		if item.VideoGcsPath != "" {
			replacedPaths = append(replacedPaths, item.VideoGcsPath)
		}
		item.VideoGcsPath = *updateDTO.VideoGcsPath
		fields["video_gcs_path"] = *updateDTO.VideoGcsPath
	}
	if updateDTO.PreviewGcsPath != nil && *updateDTO.PreviewGcsPath != item.PreviewGcsPath {
		if item.PreviewGcsPath != "" {
			replacedPaths = append(replacedPaths, item.PreviewGcsPath)
		}
		item.PreviewGcsPath = *updateDTO.PreviewGcsPath
		fields["preview_gcs_path"] = *updateDTO.PreviewGcsPath
	}
	if updateDTO.VideoHlsPath != nil {
		item.VideoHlsPath = updateDTO.VideoHlsPath
		fields["video_hls_path"] = *updateDTO.VideoHlsPath
	}
	if updateDTO.AllowDownload != nil {
		item.AllowDownload = *updateDTO.AllowDownload
		fields["allow_download"] = *updateDTO.AllowDownload
	}
	if updateDTO.Description != nil {
		item.Description = *updateDTO.Description
		fields["description"] = *updateDTO.Description
	}

	if err = s.mediaItemRepo.UpdateMediaItemFields(ctx, id, fields); err != nil {
		return nil, err
	}

	for _, objectPath := range replacedPaths {
		if err = s.objectStorage.RemoveObject(ctx, objectPath); err != nil {
			log.WarnContext(ctx, "failed to delete replaced object", "path", objectPath, "err", err)
		}
	}

	return item, nil
}

// DeleteMediaItem 级联删除。顺序：先删存储对象（尽力而为），再删引用关系与孤儿 reel，
// 最后删行本身——只有最后一步的失败是致命的
func (s *mediaItemServiceImpl) DeleteMediaItem(ctx context.Context, id uint64) error {
	item, err := s.mediaItemRepo.GetMediaItem(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	// 路径要在删行之前拿到，之后就查不到了
	s.deleteStorageObjects(ctx, item)

	links, err := s.reelRepo.ListItemsByMediaItem(ctx, id)
	if err != nil {
		return err
	}
	if err = s.reelRepo.DeleteItemsByMediaItem(ctx, id); err != nil {
		return err
	}

	// 孤儿 reel 清理：被删条目所在的 reel 只剩 0 个条目时整个删除
	affectedReels := make(map[uint64]struct{})
	for _, link := range links {
		affectedReels[link.ReelID] = struct{}{}
	}
	for reelID := range affectedReels {
		count, err := s.reelRepo.CountReelItems(ctx, reelID)
		if err != nil {
			log.WarnContext(ctx, "failed to count remaining reel items", "reel_id", reelID, "err", err)
			continue
		}
		if count == 0 {
			if err = s.reelRepo.DeleteReelCascade(ctx, reelID); err != nil {
				log.WarnContext(ctx, "failed to delete orphan reel", "reel_id", reelID, "err", err)
			}
		}
	}

	if err = s.mediaItemRepo.DeleteMediaItem(ctx, id); err != nil {
		return fmt.Errorf("failed to delete media item row %d: %w", id, err)
	}
	return nil
}

// deleteStorageObjects 并行删除原片、预览图与整个转码目录；单个 404 不中断整批
func (s *mediaItemServiceImpl) deleteStorageObjects(ctx context.Context, item *model.MediaItem) {
	g, gCtx := errgroup.WithContext(ctx)

	if item.VideoGcsPath != "" {
		videoPath := item.VideoGcsPath
		g.Go(func() error {
			if err := s.objectStorage.RemoveObject(gCtx, videoPath); err != nil {
				log.WarnContext(gCtx, "failed to delete video object", "path", videoPath, "err", err)
			}
			return nil
		})

		transcodedPrefix := consts.FolderTranscoded + "/" + util.BaseName(videoPath)
		g.Go(func() error {
			if err := s.objectStorage.RemovePrefix(gCtx, transcodedPrefix); err != nil {
				log.WarnContext(gCtx, "failed to delete transcoded folder", "prefix", transcodedPrefix, "err", err)
			}
			return nil
		})
	}

	if item.PreviewGcsPath != "" {
		previewPath := item.PreviewGcsPath
		g.Go(func() error {
			if err := s.objectStorage.RemoveObject(gCtx, previewPath); err != nil {
				log.WarnContext(gCtx, "failed to delete preview object", "path", previewPath, "err", err)
			}
			return nil
		})
	}

	_ = g.Wait()
}
