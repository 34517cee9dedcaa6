package model

import (
	"time"
)

type Artist struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_artist_name" json:"name"`
	Description  *string   `gorm:"type:text" json:"description"`
	PhotoGcsPath *string   `gorm:"type:varchar(512)" json:"photo_gcs_path"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Artist) TableName() string {
	return "artists"
}
