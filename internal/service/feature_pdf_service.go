package service

import (
	"Showreel/internal/api/dto"
	"Showreel/internal/model"
	"Showreel/internal/pkg/security"
	"Showreel/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type FeaturePdfService interface {
	SetPassword(ctx context.Context, password string) error
	VerifyPassword(ctx context.Context, password string) error
	SetFile(ctx context.Context, fileDTO *dto.PdfFileDTO) (*model.FeaturePdfFile, error)
	GetCurrentFile(ctx context.Context) (*dto.PdfFileResultDTO, error)
	LogStat(ctx context.Context, statDTO *dto.PdfStatDTO) error
}

type featurePdfServiceImpl struct {
	featurePdfRepo repository.FeaturePdfRepo
	objectStorage  ObjectStorage
}

func NewFeaturePdfService(featurePdfRepo repository.FeaturePdfRepo, objectStorage ObjectStorage) FeaturePdfService {
	return &featurePdfServiceImpl{
		featurePdfRepo: featurePdfRepo,
		objectStorage:  objectStorage,
	}
}

// SetPassword 只追加新行，created_at 最新的一行生效
func (s *featurePdfServiceImpl) SetPassword(ctx context.Context, password string) error {
	hash, err := security.HashPassword(password)
	if err != nil {
		return err
	}
	return s.featurePdfRepo.CreatePassword(ctx, &model.FeaturePdfPassword{
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	})
}

func (s *featurePdfServiceImpl) VerifyPassword(ctx context.Context, password string) error {
	current, err := s.featurePdfRepo.GetCurrentPassword(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrPdfPasswordNotSet
	}
	if err = security.CheckPasswordHash(password, current.PasswordHash); err != nil {
		return ErrPdfPasswordIncorrect
	}
	return nil
}

// SetFile 登记新版本，旧版本对象尽力清理
func (s *featurePdfServiceImpl) SetFile(ctx context.Context, fileDTO *dto.PdfFileDTO) (*model.FeaturePdfFile, error) {
	previous, err := s.featurePdfRepo.GetCurrentFile(ctx)
	if err != nil {
		return nil, err
	}

	file := &model.FeaturePdfFile{
		FileName:  fileDTO.FileName,
		GcsPath:   fileDTO.GcsPath,
		CreatedAt: time.Now(),
	}
	if err = s.featurePdfRepo.CreateFile(ctx, file); err != nil {
		return nil, err
	}

	if previous != nil && previous.GcsPath != "" && previous.GcsPath != file.GcsPath {
		if err = s.objectStorage.RemoveObject(ctx, previous.GcsPath); err != nil {
			log.WarnContext(ctx, "failed to delete previous pdf object", "path", previous.GcsPath, "err", err)
		}
	}
	return file, nil
}

func (s *featurePdfServiceImpl) GetCurrentFile(ctx context.Context) (*dto.PdfFileResultDTO, error) {
	file, err := s.featurePdfRepo.GetCurrentFile(ctx)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, ErrPdfFileNotFound
	}

	downloads, err := s.featurePdfRepo.CountStats(ctx, file.ID)
	if err != nil {
		log.WarnContext(ctx, "failed to count pdf downloads", "file_id", file.ID, "err", err)
		downloads = 0
	}

	return &dto.PdfFileResultDTO{
		ID:        file.ID,
		FileName:  file.FileName,
		GcsPath:   file.GcsPath,
		CreatedAt: file.CreatedAt.Format(time.RFC3339),
		Downloads: downloads,
	}, nil
}

func (s *featurePdfServiceImpl) LogStat(ctx context.Context, statDTO *dto.PdfStatDTO) error {
	event := statDTO.Event
	if event == "" {
		event = "download"
	}
	return s.featurePdfRepo.CreateStat(ctx, &model.PdfFileStat{
		FileID:    statDTO.FileID,
		Event:     event,
		CreatedAt: time.Now(),
	})
}
