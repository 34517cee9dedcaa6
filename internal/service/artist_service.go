package service

import (
	"Showreel/internal/api/dto"
	"Showreel/internal/model"
	"Showreel/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"

	"gorm.io/gorm"
)

type ArtistService interface {
	CreateArtist(ctx context.Context, createDTO *dto.ArtistBaseDTO) (*model.Artist, error)
	ListArtists(ctx context.Context) ([]*model.Artist, error)
	GetArtistsByNames(ctx context.Context, names []string) ([]*model.Artist, error)
	UpdateArtist(ctx context.Context, id uint64, updateDTO *dto.UpdateArtistDTO) (*model.Artist, error)
	DeleteArtist(ctx context.Context, id uint64) error
}

type artistServiceImpl struct {
	artistRepo    repository.ArtistRepo
	objectStorage ObjectStorage
}

func NewArtistService(artistRepo repository.ArtistRepo, objectStorage ObjectStorage) ArtistService {
	return &artistServiceImpl{
		artistRepo:    artistRepo,
		objectStorage: objectStorage,
	}
}

func (s *artistServiceImpl) CreateArtist(ctx context.Context, createDTO *dto.ArtistBaseDTO) (*model.Artist, error) {
	artist := &model.Artist{
		Name:         createDTO.Name,
		Description:  createDTO.Description,
		PhotoGcsPath: createDTO.PhotoGcsPath,
		CreatedAt:    time.Now(),
	}
	if err := s.artistRepo.CreateArtist(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

func (s *artistServiceImpl) ListArtists(ctx context.Context) ([]*model.Artist, error) {
	return s.artistRepo.ListArtists(ctx)
}

func (s *artistServiceImpl) GetArtistsByNames(ctx context.Context, names []string) ([]*model.Artist, error) {
	return s.artistRepo.GetArtistsByNames(ctx, names)
}

// UpdateArtist 替换照片后尽力删除旧对象，失败只记日志
func (s *artistServiceImpl) UpdateArtist(ctx context.Context, id uint64, updateDTO *dto.UpdateArtistDTO) (*model.Artist, error) {
	artist, err := s.artistRepo.GetArtist(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}

	// 更新走列名映射，零值（空串）才不会被悄悄丢掉
	var oldPhotoPath string
	fields := make(map[string]interface{})
	if updateDTO.Name != nil {
		artist.Name = *updateDTO.Name
		fields["name"] = *updateDTO.Name
	}
	if updateDTO.Description != nil {
		artist.Description = updateDTO.Description
		fields["description"] = *updateDTO.Description
	}
	if updateDTO.PhotoGcsPath != nil {
		if artist.PhotoGcsPath != nil && *artist.PhotoGcsPath != *updateDTO.PhotoGcsPath {
			oldPhotoPath = *artist.PhotoGcsPath
		}
		artist.PhotoGcsPath = updateDTO.PhotoGcsPath
		fields["photo_gcs_path"] = *updateDTO.PhotoGcsPath
	}

	if err = s.artistRepo.UpdateArtistFields(ctx, id, fields); err != nil {
		return nil, err
	}

	if oldPhotoPath != "" {
		if err = s.objectStorage.RemoveObject(ctx, oldPhotoPath); err != nil {
			log.WarnContext(ctx, "failed to delete replaced artist photo", "path", oldPhotoPath, "err", err)
		}
	}

	return artist, nil
}

// DeleteArtist 幂等删除，照片清理尽力而为
func (s *artistServiceImpl) DeleteArtist(ctx context.Context, id uint64) error {
	artist, err := s.artistRepo.GetArtist(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err = s.artistRepo.DeleteArtist(ctx, id); err != nil {
		return err
	}

	if artist.PhotoGcsPath != nil && *artist.PhotoGcsPath != "" {
		if err = s.objectStorage.RemoveObject(ctx, *artist.PhotoGcsPath); err != nil {
			log.WarnContext(ctx, "failed to delete artist photo", "path", *artist.PhotoGcsPath, "err", err)
		}
	}
	return nil
}
