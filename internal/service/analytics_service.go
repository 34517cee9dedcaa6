package service

import (
	"Showreel/internal/api/dto"
	"Showreel/internal/model"
	"Showreel/internal/pkg/consts"
	"Showreel/internal/pkg/redis"
	"Showreel/internal/pkg/util"
	"Showreel/internal/repository"
	"context"
	log "log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// DefaultTrendingLimit 热门媒体默认条数
const DefaultTrendingLimit = 4

// DefaultRecentLimit 最近动态默认条数
const DefaultRecentLimit = 5

// viewsCacheTTL 趋势图缓存时长
const viewsCacheTTL = 5 * time.Minute

var validEventTypes = map[string]struct{}{
	consts.EventTypeView:            {},
	consts.EventTypeMediaCompletion: {},
	consts.EventTypeCompletion:      {},
	consts.EventTypeSessionDuration: {},
}

type AnalyticsService interface {
	LogEvent(ctx context.Context, eventDTO *dto.LogEventDTO) error
	ViewsOverTime(ctx context.Context, startDate, endDate string) ([]*dto.ViewsPointDTO, error)
	TrendingMedia(ctx context.Context, startDate, endDate string, limit int) ([]*dto.TrendingMediaDTO, error)
	RecentActivity(ctx context.Context, limit int) ([]*dto.RecentActivityDTO, error)
}

type analyticsServiceImpl struct {
	reelViewRepo  repository.ReelViewRepo
	reelRepo      repository.ReelRepo
	mediaItemRepo repository.MediaItemRepo
}

func NewAnalyticsService(reelViewRepo repository.ReelViewRepo, reelRepo repository.ReelRepo, mediaItemRepo repository.MediaItemRepo) AnalyticsService {
	return &analyticsServiceImpl{
		reelViewRepo:  reelViewRepo,
		reelRepo:      reelRepo,
		mediaItemRepo: mediaItemRepo,
	}
}

// LogEvent 追加写一条埋点事件，服务端不做去重
func (s *analyticsServiceImpl) LogEvent(ctx context.Context, eventDTO *dto.LogEventDTO) error {
	if eventDTO.ReelID == 0 || eventDTO.SessionID == "" || eventDTO.EventType == "" {
		return ErrParamInvalid
	}
	if _, ok := validEventTypes[eventDTO.EventType]; !ok {
		return ErrEventTypeInvalid
	}
	switch eventDTO.EventType {
	case consts.EventTypeCompletion, consts.EventTypeMediaCompletion:
		if eventDTO.MediaItemID == nil {
			return ErrEventMediaRequired
		}
	case consts.EventTypeSessionDuration:
		if eventDTO.DurationSeconds == nil {
			return ErrEventDurationMissing
		}
	}

	view := &model.ReelView{
		ReelID:          eventDTO.ReelID,
		SessionID:       eventDTO.SessionID,
		EventType:       eventDTO.EventType,
		MediaItemID:     eventDTO.MediaItemID,
		DurationSeconds: eventDTO.DurationSeconds,
		CreatedAt:       time.Now(),
	}
	return s.reelViewRepo.CreateView(ctx, view)
}

// parseDateRange 解析闭区间 [startDate, endDate]，右端取到当天最后一纳秒
func parseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(time.DateOnly, startDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrParamInvalid
	}
	endDay, err := time.ParseInLocation(time.DateOnly, endDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrParamInvalid
	}
	if endDay.Before(start) {
		return time.Time{}, time.Time{}, ErrParamInvalid
	}
	end := endDay.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end, nil
}

// ViewsOverTime 按 UTC 日历日聚合完播事件，没有事件的日期补零，保证图表无断点
func (s *analyticsServiceImpl) ViewsOverTime(ctx context.Context, startDate, endDate string) ([]*dto.ViewsPointDTO, error) {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	key := consts.AnalyticsViewsKey + startDate + ":" + endDate
	if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
		var cached []*dto.ViewsPointDTO
		if err = json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}
	}

	views, err := s.reelViewRepo.ListViewsByTypeInRange(ctx, consts.EventTypeMediaCompletion, start, end)
	if err != nil {
		return nil, err
	}

	countByDay := make(map[string]int)
	for _, view := range views {
		countByDay[view.CreatedAt.UTC().Format(time.DateOnly)]++
	}

	res := make([]*dto.ViewsPointDTO, 0)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dateStr := day.Format(time.DateOnly)
		res = append(res, &dto.ViewsPointDTO{
			Date:  dateStr,
			Views: countByDay[dateStr],
		})
	}

	if body, err := json.Marshal(res); err == nil {
		_ = redis.SetWithExpiration(ctx, key, string(body), viewsCacheTTL)
	}

	return res, nil
}

// TrendingMedia 区间内完播数 Top-N。批量取详情后按计数重排，防止两步之间顺序漂移
func (s *analyticsServiceImpl) TrendingMedia(ctx context.Context, startDate, endDate string, limit int) ([]*dto.TrendingMediaDTO, error) {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	key := consts.AnalyticsTrendingKey + startDate + ":" + endDate + ":" + strconv.Itoa(limit)
	if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
		var cached []*dto.TrendingMediaDTO
		if err = json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}
	}

	views, err := s.reelViewRepo.ListViewsByTypeInRange(ctx, consts.EventTypeMediaCompletion, start, end)
	if err != nil {
		return nil, err
	}

	countByMedia := make(map[uint64]int)
	for _, view := range views {
		if view.MediaItemID != nil {
			countByMedia[*view.MediaItemID]++
		}
	}

	type kv struct {
		ID    uint64
		Count int
	}
	ranked := make([]kv, 0, len(countByMedia))
	for id, count := range countByMedia {
		ranked = append(ranked, kv{id, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	ids := make([]uint64, 0, len(ranked))
	for _, entry := range ranked {
		ids = append(ids, entry.ID)
	}

	res := make([]*dto.TrendingMediaDTO, 0, len(ranked))
	if len(ids) == 0 {
		return res, nil
	}

	items, err := s.mediaItemRepo.GetMediaItemByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	itemByID := make(map[uint64]*model.MediaItem, len(items))
	for _, item := range items {
		itemByID[item.ID] = item
	}

	for _, entry := range ranked {
		trendingDTO := &dto.TrendingMediaDTO{
			MediaItemID: entry.ID,
			Views:       entry.Count,
		}
		if item, ok := itemByID[entry.ID]; ok {
			trendingDTO.Title = item.Title
			trendingDTO.Client = item.Client
			trendingDTO.PreviewGcsPath = item.PreviewGcsPath
		}
		res = append(res, trendingDTO)
	}

	if body, err := json.Marshal(res); err == nil {
		_ = redis.SetWithExpiration(ctx, key, string(body), viewsCacheTTL)
	}

	return res, nil
}

// RecentActivity 最近创建的 reel，用首个条目补充客户与预览图；子查询失败按 N/A 兜底
func (s *analyticsServiceImpl) RecentActivity(ctx context.Context, limit int) ([]*dto.RecentActivityDTO, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	reels, err := s.reelRepo.ListRecentReels(ctx, limit)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.RecentActivityDTO, 0, len(reels))
	for _, reel := range reels {
		activity := &dto.RecentActivityDTO{
			ReelID:    reel.ID,
			Title:     reel.Title,
			ShortLink: reel.ShortLink,
			CreatedAt: reel.CreatedAt.Format(time.RFC3339),
			Client:    "N/A",
		}

		items, err := s.reelRepo.GetReelItems(ctx, reel.ID, 1)
		if err != nil {
			log.WarnContext(ctx, "failed to fetch first reel item", "reel_id", reel.ID, "err", err)
		} else if len(items) > 0 {
			if items[0].MediaItem.Client != "" {
				activity.Client = items[0].MediaItem.Client
			}
			if items[0].MediaItem.PreviewGcsPath != "" {
				activity.PreviewGcsPath = util.PtrString(items[0].MediaItem.PreviewGcsPath)
			}
		}

		res = append(res, activity)
	}
	return res, nil
}
