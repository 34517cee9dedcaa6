package dto

// CreateReelDTO 新建 reel
type CreateReelDTO struct {
	Title        string   `json:"title" binding:"required" validate:"min=1,max=255"`
	MediaItemIds []uint64 `json:"media_item_ids" binding:"required,min=1"`
}

// UpdateReelDTO 更新 reel，缺省字段不动；MediaItemIds 为空数组时清空条目
type UpdateReelDTO struct {
	Title        *string   `json:"title"`
	Status       *string   `json:"status"`
	MediaItemIds *[]uint64 `json:"media_item_ids"`
}

// ReelAnalyticsDTO reel 维度的统计快照
type ReelAnalyticsDTO struct {
	TotalViews       int     `json:"total_views"`
	CompletedViews   int     `json:"completed_views"`
	CompletionRate   float64 `json:"completion_rate"`
	AvgWatchDuration float64 `json:"avg_watch_duration"`
}

// ReelDTO 管理端列表项
type ReelDTO struct {
	ID             uint64           `json:"id"`
	Title          string           `json:"title"`
	ShortLink      string           `json:"short_link"`
	Status         string           `json:"status"`
	CreatedAt      string           `json:"created_at"`
	MediaItemIds   []uint64         `json:"media_item_ids"`
	PreviewGcsPath *string          `json:"preview_gcs_path"`
	Analytics      ReelAnalyticsDTO `json:"analytics"`
}

// PublicArtistDTO 公开页的艺术家信息
type PublicArtistDTO struct {
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	PhotoGcsPath string  `json:"photo_gcs_path"`
}

// PublicMediaItemDTO 公开播放页的媒体条目
type PublicMediaItemDTO struct {
	ID             uint64             `json:"id"`
	Title          string             `json:"title"`
	Client         string             `json:"client"`
	Craft          string             `json:"craft"`
	Category       string             `json:"category"`
	ContentType    string             `json:"content_type"`
	VideoGcsPath   string             `json:"video_gcs_path"`
	PreviewGcsPath string             `json:"preview_gcs_path"`
	VideoHlsPath   *string            `json:"video_hls_path"`
	AllowDownload  bool               `json:"allow_download"`
	Description    string             `json:"description"`
	Artists        []*PublicArtistDTO `json:"artists"`
}

// PublicReelDTO 公开播放页负载
type PublicReelDTO struct {
	ID         uint64                `json:"id"`
	Title      string                `json:"title"`
	MediaItems []*PublicMediaItemDTO `json:"media_items"`
}

// LogEventDTO 播放器埋点，支持 sendBeacon 的 text/plain 形式
type LogEventDTO struct {
	ReelID          uint64   `json:"reel_id"`
	SessionID       string   `json:"session_id"`
	EventType       string   `json:"event_type"`
	MediaItemID     *uint64  `json:"media_item_id"`
	DurationSeconds *float64 `json:"duration_seconds"`
}
