package dto

// MediaItemBaseDTO 新建媒体条目
type MediaItemBaseDTO struct {
	Title          string  `json:"title" binding:"required" validate:"min=1,max=255"`
	Client         string  `json:"client"`
	Artists        string  `json:"artists"`
	Craft          string  `json:"craft"`
	Category       string  `json:"category"`
	ContentType    string  `json:"content_type"`
	VideoGcsPath   string  `json:"video_gcs_path"`
	PreviewGcsPath string  `json:"preview_gcs_path"`
	VideoHlsPath   *string `json:"video_hls_path"`
	AllowDownload  bool    `json:"allow_download"`
	Description    string  `json:"description"`
}

// UpdateMediaItemDTO 更新媒体条目，缺省字段不动；替换存储路径会触发旧对象清理
type UpdateMediaItemDTO struct {
	Title          *string `json:"title"`
	Client         *string `json:"client"`
	Artists        *string `json:"artists"`
	Craft          *string `json:"craft"`
	Category       *string `json:"category"`
	ContentType    *string `json:"content_type"`
	VideoGcsPath   *string `json:"video_gcs_path"`
	PreviewGcsPath *string `json:"preview_gcs_path"`
	VideoHlsPath   *string `json:"video_hls_path"`
	AllowDownload  *bool   `json:"allow_download"`
	Description    *string `json:"description"`
}
