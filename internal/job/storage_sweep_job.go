package job

import (
	"Showreel/internal/api/config"
	"Showreel/internal/pkg/consts"
	"Showreel/internal/pkg/logger"
	"Showreel/internal/pkg/redis"
	"Showreel/internal/pkg/storage"
	"Showreel/internal/pkg/util"
	"Showreel/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StorageSweepJob 扫描对象存储中未被任何数据库记录引用的对象并清理
type StorageSweepJob struct {
	mediaItemRepo  repository.MediaItemRepo
	artistRepo     repository.ArtistRepo
	featurePdfRepo repository.FeaturePdfRepo
}

func NewStorageSweepJob(
	mediaItemRepo repository.MediaItemRepo,
	artistRepo repository.ArtistRepo,
	featurePdfRepo repository.FeaturePdfRepo,
) *StorageSweepJob {
	return &StorageSweepJob{
		mediaItemRepo:  mediaItemRepo,
		artistRepo:     artistRepo,
		featurePdfRepo: featurePdfRepo,
	}
}

func (s *StorageSweepJob) Run() {
	traceID := "job-sweep-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	referenced, videoBases, err := s.collectReferencedPaths(ctx)
	if err != nil {
		log.ErrorContext(ctx, "collect referenced storage paths error", "err", err)
		return
	}

	minAge := config.Cfg.Sweep.MinAge
	if minAge <= 0 {
		minAge = 24
	}
	cutoff := time.Now().Add(-time.Duration(minAge) * time.Hour)

	log.InfoContext(ctx, "start storage sweep job", "referenced", len(referenced))

	prefixes := []string{
		consts.FolderVideos,
		consts.FolderPreviews,
		consts.FolderArtists,
		consts.FolderFeaturePdf,
		consts.FolderTranscoded,
	}

	removed := 0
	for _, prefix := range prefixes {
		objects, err := storage.ListPaths(ctx, prefix+"/")
		if err != nil {
			log.ErrorContext(ctx, "list storage objects error", "prefix", prefix, "err", err)
			continue
		}

		for path, lastModified := range objects {
			if lastModified.After(cutoff) {
				continue
			}
			if referenced[path] {
				continue
			}
			if s.transcodedInUse(path, videoBases) {
				continue
			}
			if path == consts.DefaultDirectorPhotoPath {
				continue
			}

			if err := storage.RemoveObject(ctx, path); err != nil {
				log.ErrorContext(ctx, "remove orphan object error", "path", path, "err", err)
				continue
			}
			removed++
			log.InfoContext(ctx, "removed orphan object", "path", path)
		}
	}

	log.InfoContext(ctx, "storage sweep job finished", "removed_count", removed)

	if err := redis.SetWithExpiration(ctx, consts.StorageSweepMarkerKey, time.Now().UTC().Format(time.RFC3339), 0); err != nil {
		log.WarnContext(ctx, "record sweep marker error", "err", err)
	}
}

// collectReferencedPaths 汇总数据库中仍被引用的对象路径，以及在用视频的基础名集合
func (s *StorageSweepJob) collectReferencedPaths(ctx context.Context) (map[string]bool, map[string]bool, error) {
	referenced := make(map[string]bool)
	videoBases := make(map[string]bool)

	mediaPaths, err := s.mediaItemRepo.ListStoragePaths(ctx)
	if err != nil {
		return nil, nil, err
	}
	for _, p := range mediaPaths {
		referenced[p] = true
		if strings.HasPrefix(p, consts.FolderVideos+"/") {
			videoBases[util.BaseName(p)] = true
		}
	}

	photoPaths, err := s.artistRepo.ListPhotoPaths(ctx)
	if err != nil {
		return nil, nil, err
	}
	for _, p := range photoPaths {
		referenced[p] = true
	}

	pdfPaths, err := s.featurePdfRepo.ListFilePaths(ctx)
	if err != nil {
		return nil, nil, err
	}
	for _, p := range pdfPaths {
		referenced[p] = true
	}

	return referenced, videoBases, nil
}

// transcodedInUse 判断转码产物是否仍属于某个在用视频（按基础名目录归属）
func (s *StorageSweepJob) transcodedInUse(path string, videoBases map[string]bool) bool {
	prefix := consts.FolderTranscoded + "/"
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	rest := strings.TrimPrefix(path, prefix)
	if idx := strings.Index(rest, "/"); idx > 0 {
		return videoBases[rest[:idx]]
	}
	return videoBases[util.BaseName(rest)]
}
