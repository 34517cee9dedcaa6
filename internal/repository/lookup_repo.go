package repository

import (
	"Showreel/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LookupRepo 统一访问 clients / celebrities / content_types / categories / crafts 这类字典表
type LookupRepo interface {
	ListRows(ctx context.Context, table string) ([]*model.LookupRow, error)
	CreateRow(ctx context.Context, table string, name string) (*model.LookupRow, error)
	DeleteRow(ctx context.Context, table string, id uint64) error
}

type lookupRepoImpl struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) LookupRepo {
	return &lookupRepoImpl{db: db}
}

func (s *lookupRepoImpl) ListRows(ctx context.Context, table string) ([]*model.LookupRow, error) {
	rows := make([]*model.LookupRow, 0)
	err := s.db.WithContext(ctx).Table(table).Order("name ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *lookupRepoImpl) CreateRow(ctx context.Context, table string, name string) (*model.LookupRow, error) {
	row := model.LookupRow{
		Name:      name,
		CreatedAt: time.Now(),
	}
	err := s.db.WithContext(ctx).Table(table).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
	if err != nil {
		return nil, err
	}
	// 如果记录已存在，查询获取完整数据
	var existing model.LookupRow
	err = s.db.WithContext(ctx).Table(table).Where("name = ?", name).First(&existing).Error
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

func (s *lookupRepoImpl) DeleteRow(ctx context.Context, table string, id uint64) error {
	return s.db.WithContext(ctx).Table(table).Where("id = ?", id).Delete(&model.LookupRow{}).Error
}
