package model

import (
	"time"
)

type MediaItem struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"type:varchar(255);not null" json:"title"`
	Client         string    `gorm:"type:varchar(255)" json:"client"`
	Artists        string    `gorm:"type:varchar(512)" json:"artists"` // 逗号连接的艺术家名，按名字匹配 artists 表
	Craft          string    `gorm:"type:varchar(128)" json:"craft"`
	Category       string    `gorm:"type:varchar(128)" json:"category"`
	ContentType    string    `gorm:"type:varchar(128)" json:"content_type"`
	VideoGcsPath   string    `gorm:"type:varchar(512)" json:"video_gcs_path"`
	PreviewGcsPath string    `gorm:"type:varchar(512)" json:"preview_gcs_path"`
	VideoHlsPath   *string   `gorm:"type:varchar(512)" json:"video_hls_path"`
	AllowDownload  bool      `gorm:"not null;default:false" json:"allow_download"`
	Description    string    `gorm:"type:text" json:"description"`
	CreatedAt      time.Time `json:"created_at"`
}

func (MediaItem) TableName() string {
	return "media_items"
}
