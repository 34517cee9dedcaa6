package model

import (
	"time"
)

// 口令与文件都是追加写，created_at 最新的一行即当前版本

type FeaturePdfPassword struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	PasswordHash string    `gorm:"type:varchar(128);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (FeaturePdfPassword) TableName() string {
	return "feature_pdf_passwords"
}

type FeaturePdfFile struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	FileName  string    `gorm:"type:varchar(255);not null" json:"file_name"`
	GcsPath   string    `gorm:"type:varchar(512);not null" json:"gcs_path"`
	CreatedAt time.Time `json:"created_at"`
}

func (FeaturePdfFile) TableName() string {
	return "feature_pdf_files"
}

type PdfFileStat struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	FileID    uint64    `gorm:"not null;index:idx_file_id" json:"file_id"`
	Event     string    `gorm:"type:varchar(32);not null" json:"event"`
	CreatedAt time.Time `json:"created_at"`
}

func (PdfFileStat) TableName() string {
	return "pdf_file_stats"
}
