package repository

import (
	"Showreel/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type ReelViewRepo interface {
	CreateView(ctx context.Context, view *model.ReelView) error
	ListAllViews(ctx context.Context) ([]*model.ReelView, error)
	ListViewsByReel(ctx context.Context, reelID uint64) ([]*model.ReelView, error)
	ListViewsByTypeInRange(ctx context.Context, eventType string, start, end time.Time) ([]*model.ReelView, error)
}

type reelViewRepoImpl struct {
	db *gorm.DB
}

func NewReelViewRepository(db *gorm.DB) ReelViewRepo {
	return &reelViewRepoImpl{db: db}
}

func (s *reelViewRepoImpl) CreateView(ctx context.Context, view *model.ReelView) error {
	return s.db.WithContext(ctx).Create(view).Error
}

func (s *reelViewRepoImpl) ListAllViews(ctx context.Context) ([]*model.ReelView, error) {
	views := make([]*model.ReelView, 0)
	err := s.db.WithContext(ctx).Find(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (s *reelViewRepoImpl) ListViewsByReel(ctx context.Context, reelID uint64) ([]*model.ReelView, error) {
	views := make([]*model.ReelView, 0)
	err := s.db.WithContext(ctx).Where("reel_id = ?", reelID).Find(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (s *reelViewRepoImpl) ListViewsByTypeInRange(ctx context.Context, eventType string, start, end time.Time) ([]*model.ReelView, error) {
	views := make([]*model.ReelView, 0)
	err := s.db.WithContext(ctx).
		Where("event_type = ?", eventType).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Order("created_at ASC").
		Find(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}
