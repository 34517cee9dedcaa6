package service

import (
	"Showreel/internal/api/dto"
	"Showreel/internal/model"
	"Showreel/internal/pkg/consts"
	"Showreel/internal/pkg/redis"
	"Showreel/internal/pkg/util"
	"Showreel/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"sort"
	"time"

	"gorm.io/gorm"
)

// MaxShortLinkAttempts 短链碰撞重试上限
const MaxShortLinkAttempts = 10

type ReelService interface {
	CreateReel(ctx context.Context, userID string, createDTO *dto.CreateReelDTO) (*dto.ReelDTO, error)
	ListReels(ctx context.Context) ([]*dto.ReelDTO, error)
	UpdateReel(ctx context.Context, reelID uint64, updateDTO *dto.UpdateReelDTO) (*dto.ReelAnalyticsDTO, error)
	DeleteReel(ctx context.Context, reelID uint64) error
	GetPublicReel(ctx context.Context, shortLink string) (*dto.PublicReelDTO, error)
}

type reelServiceImpl struct {
	reelRepo     repository.ReelRepo
	reelViewRepo repository.ReelViewRepo
	artistRepo   repository.ArtistRepo
}

func NewReelService(reelRepo repository.ReelRepo, reelViewRepo repository.ReelViewRepo, artistRepo repository.ArtistRepo) ReelService {
	return &reelServiceImpl{
		reelRepo:     reelRepo,
		reelViewRepo: reelViewRepo,
		artistRepo:   artistRepo,
	}
}

// CreateReel 创建 reel，短链查重后插入；display_order 按传入顺序从 1 开始
func (s *reelServiceImpl) CreateReel(ctx context.Context, userID string, createDTO *dto.CreateReelDTO) (*dto.ReelDTO, error) {
	if createDTO.Title == "" || len(createDTO.MediaItemIds) == 0 {
		return nil, ErrParamInvalid
	}

	shortLink, err := s.generateShortLink(ctx)
	if err != nil {
		return nil, err
	}

	reel := &model.Reel{
		Title:           createDTO.Title,
		ShortLink:       shortLink,
		Status:          consts.ReelStatusActive,
		CreatedByUserID: userID,
		CreatedAt:       time.Now(),
	}

	items := make([]*model.ReelMediaItem, 0, len(createDTO.MediaItemIds))
	for i, mediaItemID := range createDTO.MediaItemIds {
		items = append(items, &model.ReelMediaItem{
			MediaItemID:  mediaItemID,
			DisplayOrder: i + 1,
		})
	}

	if err = s.reelRepo.CreateReel(ctx, reel, items); err != nil {
		return nil, err
	}

	return &dto.ReelDTO{
		ID:           reel.ID,
		Title:        reel.Title,
		ShortLink:    reel.ShortLink,
		Status:       reel.Status,
		CreatedAt:    reel.CreatedAt.Format(time.RFC3339),
		MediaItemIds: createDTO.MediaItemIds,
	}, nil
}

// generateShortLink 查重-重试式生成。并发创建下不是线性化的，按当前流量规模可接受
func (s *reelServiceImpl) generateShortLink(ctx context.Context) (string, error) {
	for i := 0; i < MaxShortLinkAttempts; i++ {
		shortLink := util.GenerateShortLink()
		exists, err := s.reelRepo.ShortLinkExists(ctx, shortLink)
		if err != nil {
			return "", err
		}
		if !exists {
			return shortLink, nil
		}
	}
	return "", ErrShortLinkExhausted
}

// ListReels 管理端列表。三次批量查询后内存聚合，避免逐 reel 查询
func (s *reelServiceImpl) ListReels(ctx context.Context) ([]*dto.ReelDTO, error) {
	reels, err := s.reelRepo.ListReels(ctx)
	if err != nil {
		return nil, err
	}
	allItems, err := s.reelRepo.ListAllItems(ctx)
	if err != nil {
		return nil, err
	}
	allViews, err := s.reelViewRepo.ListAllViews(ctx)
	if err != nil {
		return nil, err
	}

	itemsByReel := make(map[uint64][]*model.ReelMediaItem)
	for _, item := range allItems {
		itemsByReel[item.ReelID] = append(itemsByReel[item.ReelID], item)
	}
	for _, items := range itemsByReel {
		sort.Slice(items, func(i, j int) bool {
			return items[i].DisplayOrder < items[j].DisplayOrder
		})
	}

	viewsByReel := make(map[uint64][]*model.ReelView)
	for _, view := range allViews {
		viewsByReel[view.ReelID] = append(viewsByReel[view.ReelID], view)
	}

	res := make([]*dto.ReelDTO, 0, len(reels))
	for _, reel := range reels {
		reelDTO := &dto.ReelDTO{
			ID:           reel.ID,
			Title:        reel.Title,
			ShortLink:    reel.ShortLink,
			Status:       reel.Status,
			CreatedAt:    reel.CreatedAt.Format(time.RFC3339),
			MediaItemIds: make([]uint64, 0),
			Analytics:    BuildReelAnalytics(viewsByReel[reel.ID]),
		}

		items := itemsByReel[reel.ID]
		for _, item := range items {
			reelDTO.MediaItemIds = append(reelDTO.MediaItemIds, item.MediaItemID)
		}
		if len(items) > 0 && items[0].MediaItem.PreviewGcsPath != "" {
			reelDTO.PreviewGcsPath = util.PtrString(items[0].MediaItem.PreviewGcsPath)
		}

		res = append(res, reelDTO)
	}
	return res, nil
}

// BuildReelAnalytics 由原始埋点事件计算统计快照
func BuildReelAnalytics(views []*model.ReelView) dto.ReelAnalyticsDTO {
	sessions := make(map[string]struct{})
	completed := 0
	var durationSum float64
	durationCount := 0

	for _, view := range views {
		if view.SessionID != "" {
			sessions[view.SessionID] = struct{}{}
		}
		switch view.EventType {
		case consts.EventTypeCompletion:
			completed++
		case consts.EventTypeSessionDuration:
			if view.DurationSeconds != nil {
				durationSum += *view.DurationSeconds
				durationCount++
			}
		}
	}

	res := dto.ReelAnalyticsDTO{
		TotalViews:     len(sessions),
		CompletedViews: completed,
	}
	if res.TotalViews > 0 {
		res.CompletionRate = float64(completed) / float64(res.TotalViews) * 100
	}
	if durationCount > 0 {
		res.AvgWatchDuration = durationSum / float64(durationCount)
	}
	return res
}

// UpdateReel 稀疏更新：缺省字段不动；media_item_ids 为空数组时清空条目
func (s *reelServiceImpl) UpdateReel(ctx context.Context, reelID uint64, updateDTO *dto.UpdateReelDTO) (*dto.ReelAnalyticsDTO, error) {
	if _, err := s.reelRepo.GetReel(ctx, reelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReelNotFound
		}
		return nil, err
	}

	fields := make(map[string]interface{})
	if updateDTO.Title != nil {
		fields["title"] = *updateDTO.Title
	}
	if updateDTO.Status != nil {
		fields["status"] = *updateDTO.Status
	}
	if err := s.reelRepo.UpdateReelFields(ctx, reelID, fields); err != nil {
		return nil, err
	}

	if updateDTO.MediaItemIds != nil {
		items := make([]*model.ReelMediaItem, 0, len(*updateDTO.MediaItemIds))
		for i, mediaItemID := range *updateDTO.MediaItemIds {
			items = append(items, &model.ReelMediaItem{
				MediaItemID:  mediaItemID,
				DisplayOrder: i + 1,
			})
		}
		if err := s.reelRepo.ReplaceReelItems(ctx, reelID, items); err != nil {
			return nil, err
		}
	}

	// 统计快照失败不影响更新本身
	views, err := s.reelViewRepo.ListViewsByReel(ctx, reelID)
	if err != nil {
		log.WarnContext(ctx, "failed to recompute reel analytics after update", "reel_id", reelID, "err", err)
		return &dto.ReelAnalyticsDTO{}, nil
	}
	analytics := BuildReelAnalytics(views)
	return &analytics, nil
}

// DeleteReel 幂等删除，行不存在视为已删除
func (s *reelServiceImpl) DeleteReel(ctx context.Context, reelID uint64) error {
	if _, err := s.reelRepo.GetReel(ctx, reelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := s.reelRepo.DeleteReelCascade(ctx, reelID); err != nil {
		return err
	}

	// 埋点事件跟着 reel 一起没了，仪表盘缓存立即作废
	if err := redis.DeleteByPrefix(ctx, consts.AnalyticsViewsKey); err != nil {
		log.WarnContext(ctx, "failed to invalidate views cache", "err", err)
	}
	if err := redis.DeleteByPrefix(ctx, consts.AnalyticsTrendingKey); err != nil {
		log.WarnContext(ctx, "failed to invalidate trending cache", "err", err)
	}
	return nil
}

// GetPublicReel 公开播放页：仅 Active 可见，艺术家按名字解析并兜底默认照片
func (s *reelServiceImpl) GetPublicReel(ctx context.Context, shortLink string) (*dto.PublicReelDTO, error) {
	reel, err := s.reelRepo.GetReelByShortLink(ctx, shortLink)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReelNotFound
		}
		return nil, err
	}
	if reel.Status != consts.ReelStatusActive {
		return nil, ErrReelInactive
	}

	items := make([]model.ReelMediaItem, len(reel.Items))
	copy(items, reel.Items)
	sort.Slice(items, func(i, j int) bool {
		return items[i].DisplayOrder < items[j].DisplayOrder
	})

	nameSet := make(map[string]struct{})
	var allNames []string
	for _, item := range items {
		for _, name := range util.SplitNames(item.MediaItem.Artists) {
			if _, ok := nameSet[name]; !ok {
				nameSet[name] = struct{}{}
				allNames = append(allNames, name)
			}
		}
	}

	artistByName := make(map[string]*model.Artist)
	if len(allNames) > 0 {
		artists, err := s.artistRepo.GetArtistsByNames(ctx, allNames)
		if err != nil {
			log.WarnContext(ctx, "failed to resolve artists by names", "err", err)
		} else {
			for _, artist := range artists {
				artistByName[artist.Name] = artist
			}
		}
	}

	res := &dto.PublicReelDTO{
		ID:         reel.ID,
		Title:      reel.Title,
		MediaItems: make([]*dto.PublicMediaItemDTO, 0, len(items)),
	}

	for _, item := range items {
		mediaItem := item.MediaItem
		publicItem := &dto.PublicMediaItemDTO{
			ID:             mediaItem.ID,
			Title:          mediaItem.Title,
			Client:         mediaItem.Client,
			Craft:          mediaItem.Craft,
			Category:       mediaItem.Category,
			ContentType:    mediaItem.ContentType,
			VideoGcsPath:   mediaItem.VideoGcsPath,
			PreviewGcsPath: mediaItem.PreviewGcsPath,
			VideoHlsPath:   mediaItem.VideoHlsPath,
			AllowDownload:  mediaItem.AllowDownload,
			Description:    mediaItem.Description,
			Artists:        make([]*dto.PublicArtistDTO, 0),
		}

		for _, name := range util.SplitNames(mediaItem.Artists) {
			publicArtist := &dto.PublicArtistDTO{
				Name:         name,
				PhotoGcsPath: consts.DefaultDirectorPhotoPath,
			}
			if artist, ok := artistByName[name]; ok {
				publicArtist.Description = artist.Description
				if artist.PhotoGcsPath != nil && *artist.PhotoGcsPath != "" {
					publicArtist.PhotoGcsPath = *artist.PhotoGcsPath
				}
			}
			publicItem.Artists = append(publicItem.Artists, publicArtist)
		}

		res.MediaItems = append(res.MediaItems, publicItem)
	}

	return res, nil
}
