package repository

import (
	"Showreel/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type FeaturePdfRepo interface {
	CreatePassword(ctx context.Context, password *model.FeaturePdfPassword) error
	GetCurrentPassword(ctx context.Context) (*model.FeaturePdfPassword, error)
	CreateFile(ctx context.Context, file *model.FeaturePdfFile) error
	GetCurrentFile(ctx context.Context) (*model.FeaturePdfFile, error)
	CreateStat(ctx context.Context, stat *model.PdfFileStat) error
	CountStats(ctx context.Context, fileID uint64) (int64, error)
	ListFilePaths(ctx context.Context) ([]string, error)
}

type featurePdfRepoImpl struct {
	db *gorm.DB
}

func NewFeaturePdfRepository(db *gorm.DB) FeaturePdfRepo {
	return &featurePdfRepoImpl{db: db}
}

func (s *featurePdfRepoImpl) CreatePassword(ctx context.Context, password *model.FeaturePdfPassword) error {
	return s.db.WithContext(ctx).Create(password).Error
}

// GetCurrentPassword 追加写模式，created_at 最新的一行即当前口令；没有记录时返回 nil
func (s *featurePdfRepoImpl) GetCurrentPassword(ctx context.Context) (*model.FeaturePdfPassword, error) {
	var password model.FeaturePdfPassword
	err := s.db.WithContext(ctx).Order("created_at DESC").First(&password).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &password, nil
}

func (s *featurePdfRepoImpl) CreateFile(ctx context.Context, file *model.FeaturePdfFile) error {
	return s.db.WithContext(ctx).Create(file).Error
}

func (s *featurePdfRepoImpl) GetCurrentFile(ctx context.Context) (*model.FeaturePdfFile, error) {
	var file model.FeaturePdfFile
	err := s.db.WithContext(ctx).Order("created_at DESC").First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}

func (s *featurePdfRepoImpl) CreateStat(ctx context.Context, stat *model.PdfFileStat) error {
	return s.db.WithContext(ctx).Create(stat).Error
}

func (s *featurePdfRepoImpl) CountStats(ctx context.Context, fileID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.PdfFileStat{}).
		Where("file_id = ?", fileID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *featurePdfRepoImpl) ListFilePaths(ctx context.Context) ([]string, error) {
	var files []*model.FeaturePdfFile
	err := s.db.WithContext(ctx).Select("gcs_path").Find(&files).Error
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(files))
	for _, file := range files {
		if file.GcsPath != "" {
			paths = append(paths, file.GcsPath)
		}
	}
	return paths, nil
}
