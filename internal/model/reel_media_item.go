package model

type ReelMediaItem struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	ReelID      uint64 `gorm:"not null;index:idx_reel_id_order" json:"reel_id"`
	MediaItemID uint64 `gorm:"not null;index:idx_media_item_id" json:"media_item_id"`
	// DisplayOrder 从 1 开始，单个 reel 内连续且唯一，决定播放顺序
	DisplayOrder int `gorm:"not null;default:0" json:"display_order"`

	MediaItem MediaItem `gorm:"foreignKey:MediaItemID;references:ID"`
}

func (ReelMediaItem) TableName() string {
	return "reel_media_items"
}
