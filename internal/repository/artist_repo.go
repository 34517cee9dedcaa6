package repository

import (
	"Showreel/internal/model"
	"context"

	"gorm.io/gorm"
)

type ArtistRepo interface {
	CreateArtist(ctx context.Context, artist *model.Artist) error
	GetArtist(ctx context.Context, id uint64) (*model.Artist, error)
	GetArtistsByNames(ctx context.Context, names []string) ([]*model.Artist, error)
	ListArtists(ctx context.Context) ([]*model.Artist, error)
	UpdateArtistFields(ctx context.Context, id uint64, fields map[string]interface{}) error
	DeleteArtist(ctx context.Context, id uint64) error
	ListPhotoPaths(ctx context.Context) ([]string, error)
}

type artistRepoImpl struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepo {
	return &artistRepoImpl{db: db}
}

func (s *artistRepoImpl) CreateArtist(ctx context.Context, artist *model.Artist) error {
	return s.db.WithContext(ctx).Create(artist).Error
}

func (s *artistRepoImpl) GetArtist(ctx context.Context, id uint64) (*model.Artist, error) {
	var artist model.Artist
	err := s.db.WithContext(ctx).First(&artist, id).Error
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (s *artistRepoImpl) GetArtistsByNames(ctx context.Context, names []string) ([]*model.Artist, error) {
	artists := make([]*model.Artist, 0)
	err := s.db.WithContext(ctx).Where("name IN ?", names).Find(&artists).Error
	if err != nil {
		return nil, err
	}
	return artists, nil
}

func (s *artistRepoImpl) ListArtists(ctx context.Context) ([]*model.Artist, error) {
	artists := make([]*model.Artist, 0)
	err := s.db.WithContext(ctx).Order("name ASC").Find(&artists).Error
	if err != nil {
		return nil, err
	}
	return artists, nil
}

// UpdateArtistFields 用列名映射更新，零值（空串）也能落库
func (s *artistRepoImpl) UpdateArtistFields(ctx context.Context, id uint64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Model(&model.Artist{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (s *artistRepoImpl) DeleteArtist(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Artist{}, id).Error
}

func (s *artistRepoImpl) ListPhotoPaths(ctx context.Context) ([]string, error) {
	var artists []*model.Artist
	err := s.db.WithContext(ctx).Select("photo_gcs_path").Find(&artists).Error
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(artists))
	for _, artist := range artists {
		if artist.PhotoGcsPath != nil && *artist.PhotoGcsPath != "" {
			paths = append(paths, *artist.PhotoGcsPath)
		}
	}
	return paths, nil
}
