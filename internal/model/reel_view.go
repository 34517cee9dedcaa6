package model

import (
	"time"
)

// ReelView 播放器埋点事件，只插入不修改
type ReelView struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	ReelID          uint64    `gorm:"not null;index:idx_reel_id" json:"reel_id"`
	SessionID       string    `gorm:"type:varchar(64);not null" json:"session_id"`
	EventType       string    `gorm:"type:varchar(32);not null" json:"event_type"`
	MediaItemID     *uint64   `json:"media_item_id"`
	DurationSeconds *float64  `json:"duration_seconds"`
	CreatedAt       time.Time `gorm:"index:idx_created_at" json:"created_at"`
}

func (ReelView) TableName() string {
	return "reel_views"
}
