package dto

// ViewsPointDTO 单日完播数，日期缺事件时补零
type ViewsPointDTO struct {
	Date  string `json:"date"`
	Views int    `json:"views"`
}

// TrendingMediaDTO 热门媒体条目
type TrendingMediaDTO struct {
	MediaItemID    uint64 `json:"media_item_id"`
	Title          string `json:"title"`
	Client         string `json:"client"`
	PreviewGcsPath string `json:"preview_gcs_path"`
	Views          int    `json:"views"`
}

// RecentActivityDTO 最近创建的 reel 及其首个条目的代表信息
type RecentActivityDTO struct {
	ReelID         uint64  `json:"reel_id"`
	Title          string  `json:"title"`
	ShortLink      string  `json:"short_link"`
	CreatedAt      string  `json:"created_at"`
	Client         string  `json:"client"`
	PreviewGcsPath *string `json:"preview_gcs_path"`
}
