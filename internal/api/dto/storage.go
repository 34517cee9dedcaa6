package dto

// UploadURLDTO 申请上传签名
type UploadURLDTO struct {
	FileName    string `json:"file_name" binding:"required" validate:"min=1,max=255"`
	FileType    string `json:"file_type" binding:"required" validate:"min=1,max=128"`
	Destination string `json:"destination"`
}

// UploadURLResultDTO 上传签名结果
type UploadURLResultDTO struct {
	SignedURL string `json:"signed_url"`
	GcsPath   string `json:"gcs_path"`
}

// ReadURLsDTO 批量申请读取签名
type ReadURLsDTO struct {
	GcsPaths []string `json:"gcs_paths" binding:"required,min=1"`
}
