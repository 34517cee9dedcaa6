package repository

import (
	"Showreel/internal/model"
	"context"

	"gorm.io/gorm"
)

type ReelRepo interface {
	CreateReel(ctx context.Context, reel *model.Reel, items []*model.ReelMediaItem) error
	GetReel(ctx context.Context, id uint64) (*model.Reel, error)
	GetReelByShortLink(ctx context.Context, shortLink string) (*model.Reel, error)
	ListReels(ctx context.Context) ([]*model.Reel, error)
	ShortLinkExists(ctx context.Context, shortLink string) (bool, error)
	UpdateReelFields(ctx context.Context, id uint64, fields map[string]interface{}) error
	ReplaceReelItems(ctx context.Context, reelID uint64, items []*model.ReelMediaItem) error
	DeleteReelCascade(ctx context.Context, reelID uint64) error
	ListAllItems(ctx context.Context) ([]*model.ReelMediaItem, error)
	GetReelItems(ctx context.Context, reelID uint64, limit int) ([]*model.ReelMediaItem, error)
	ListItemsByMediaItem(ctx context.Context, mediaItemID uint64) ([]*model.ReelMediaItem, error)
	DeleteItemsByMediaItem(ctx context.Context, mediaItemID uint64) error
	CountReelItems(ctx context.Context, reelID uint64) (int64, error)
	ListRecentReels(ctx context.Context, limit int) ([]*model.Reel, error)
}

type reelRepoImpl struct {
	db *gorm.DB
}

func NewReelRepository(db *gorm.DB) ReelRepo {
	return &reelRepoImpl{db: db}
}

func (s *reelRepoImpl) CreateReel(ctx context.Context, reel *model.Reel, items []*model.ReelMediaItem) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reel).Error; err != nil {
			return err
		}
		for _, item := range items {
			item.ReelID = reel.ID
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(items).Error
	})
}

func (s *reelRepoImpl) GetReel(ctx context.Context, id uint64) (*model.Reel, error) {
	var reel model.Reel
	err := s.db.WithContext(ctx).First(&reel, id).Error
	if err != nil {
		return nil, err
	}
	return &reel, nil
}

func (s *reelRepoImpl) GetReelByShortLink(ctx context.Context, shortLink string) (*model.Reel, error) {
	var reel model.Reel
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Items.MediaItem").
		Where("short_link = ?", shortLink).
		First(&reel).Error
	if err != nil {
		return nil, err
	}
	return &reel, nil
}

func (s *reelRepoImpl) ListReels(ctx context.Context) ([]*model.Reel, error) {
	reels := make([]*model.Reel, 0)
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&reels).Error
	if err != nil {
		return nil, err
	}
	return reels, nil
}

func (s *reelRepoImpl) ShortLinkExists(ctx context.Context, shortLink string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Reel{}).
		Where("short_link = ?", shortLink).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *reelRepoImpl) UpdateReelFields(ctx context.Context, id uint64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Model(&model.Reel{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// ReplaceReelItems 整体替换 reel 的有序条目，删除加重插跑在同一事务里
func (s *reelRepoImpl) ReplaceReelItems(ctx context.Context, reelID uint64, items []*model.ReelMediaItem) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ReelMediaItem{}, "reel_id = ?", reelID).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for _, item := range items {
			item.ReelID = reelID
		}
		return tx.Create(items).Error
	})
}

// DeleteReelCascade 级联删除条目、埋点事件与 reel 本身
func (s *reelRepoImpl) DeleteReelCascade(ctx context.Context, reelID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ReelMediaItem{}, "reel_id = ?", reelID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.ReelView{}, "reel_id = ?", reelID).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Reel{}, reelID).Error
	})
}

func (s *reelRepoImpl) ListAllItems(ctx context.Context) ([]*model.ReelMediaItem, error) {
	items := make([]*model.ReelMediaItem, 0)
	err := s.db.WithContext(ctx).
		Preload("MediaItem").
		Order("reel_id ASC, display_order ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *reelRepoImpl) GetReelItems(ctx context.Context, reelID uint64, limit int) ([]*model.ReelMediaItem, error) {
	items := make([]*model.ReelMediaItem, 0)
	query := s.db.WithContext(ctx).
		Preload("MediaItem").
		Where("reel_id = ?", reelID).
		Order("display_order ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *reelRepoImpl) ListItemsByMediaItem(ctx context.Context, mediaItemID uint64) ([]*model.ReelMediaItem, error) {
	items := make([]*model.ReelMediaItem, 0)
	err := s.db.WithContext(ctx).
		Where("media_item_id = ?", mediaItemID).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *reelRepoImpl) DeleteItemsByMediaItem(ctx context.Context, mediaItemID uint64) error {
	return s.db.WithContext(ctx).Delete(&model.ReelMediaItem{}, "media_item_id = ?", mediaItemID).Error
}

func (s *reelRepoImpl) CountReelItems(ctx context.Context, reelID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ReelMediaItem{}).
		Where("reel_id = ?", reelID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *reelRepoImpl) ListRecentReels(ctx context.Context, limit int) ([]*model.Reel, error) {
	reels := make([]*model.Reel, 0)
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&reels).Error
	if err != nil {
		return nil, err
	}
	return reels, nil
}
