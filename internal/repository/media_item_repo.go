package repository

import (
	"Showreel/internal/model"
	"context"

	"gorm.io/gorm"
)

type MediaItemRepo interface {
	CreateMediaItem(ctx context.Context, item *model.MediaItem) error
	GetMediaItem(ctx context.Context, id uint64) (*model.MediaItem, error)
	GetMediaItemByIds(ctx context.Context, ids []uint64) ([]*model.MediaItem, error)
	ListMediaItems(ctx context.Context) ([]*model.MediaItem, error)
	UpdateMediaItemFields(ctx context.Context, id uint64, fields map[string]interface{}) error
	DeleteMediaItem(ctx context.Context, id uint64) error
	ListStoragePaths(ctx context.Context) ([]string, error)
}

type mediaItemRepoImpl struct {
	db *gorm.DB
}

func NewMediaItemRepository(db *gorm.DB) MediaItemRepo {
	return &mediaItemRepoImpl{db: db}
}

func (s *mediaItemRepoImpl) CreateMediaItem(ctx context.Context, item *model.MediaItem) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *mediaItemRepoImpl) GetMediaItem(ctx context.Context, id uint64) (*model.MediaItem, error) {
	var item model.MediaItem
	err := s.db.WithContext(ctx).First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *mediaItemRepoImpl) GetMediaItemByIds(ctx context.Context, ids []uint64) ([]*model.MediaItem, error) {
	var items []*model.MediaItem
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mediaItemRepoImpl) ListMediaItems(ctx context.Context) ([]*model.MediaItem, error) {
	items := make([]*model.MediaItem, 0)
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateMediaItemFields 用列名映射更新，零值（false、空串）也能落库
func (s *mediaItemRepoImpl) UpdateMediaItemFields(ctx context.Context, id uint64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Model(&model.MediaItem{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (s *mediaItemRepoImpl) DeleteMediaItem(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.MediaItem{}, id).Error
}

// ListStoragePaths 列出所有媒体引用到的对象路径，供孤儿清理任务比对
func (s *mediaItemRepoImpl) ListStoragePaths(ctx context.Context) ([]string, error) {
	var items []*model.MediaItem
	err := s.db.WithContext(ctx).
		Select("video_gcs_path", "preview_gcs_path", "video_hls_path").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(items)*2)
	for _, item := range items {
		if item.VideoGcsPath != "" {
			paths = append(paths, item.VideoGcsPath)
		}
		if item.PreviewGcsPath != "" {
			paths = append(paths, item.PreviewGcsPath)
		}
		if item.VideoHlsPath != nil && *item.VideoHlsPath != "" {
			paths = append(paths, *item.VideoHlsPath)
		}
	}
	return paths, nil
}
