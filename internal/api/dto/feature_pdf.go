package dto

// PdfPasswordDTO 设置或校验口令
type PdfPasswordDTO struct {
	Password string `json:"password" binding:"required" validate:"min=1,max=128"`
}

// PdfFileDTO 登记新的 PDF 文件版本
type PdfFileDTO struct {
	FileName string `json:"file_name" binding:"required" validate:"min=1,max=255"`
	GcsPath  string `json:"gcs_path" binding:"required" validate:"min=1,max=512"`
}

// PdfStatDTO 下载计数
type PdfStatDTO struct {
	FileID uint64 `json:"file_id" binding:"required"`
	Event  string `json:"event"`
}

// PdfFileResultDTO 当前文件及其下载次数
type PdfFileResultDTO struct {
	ID        uint64 `json:"id"`
	FileName  string `json:"file_name"`
	GcsPath   string `json:"gcs_path"`
	CreatedAt string `json:"created_at"`
	Downloads int64  `json:"downloads"`
}
