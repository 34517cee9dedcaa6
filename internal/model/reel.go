package model

import (
	"time"
)

type Reel struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title"`
	ShortLink       string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_short_link" json:"short_link"`
	Status          string    `gorm:"type:varchar(32);not null;default:'Active'" json:"status"`
	CreatedByUserID string    `gorm:"type:varchar(64)" json:"created_by_user_id"`
	CreatedAt       time.Time `json:"created_at"`

	// 关联关系
	Items []ReelMediaItem `gorm:"foreignKey:ReelID;references:ID"`
}

func (Reel) TableName() string {
	return "reels"
}
