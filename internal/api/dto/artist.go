package dto

// ArtistBaseDTO 新建艺术家
type ArtistBaseDTO struct {
	Name         string  `json:"name" binding:"required" validate:"min=1,max=255"`
	Description  *string `json:"description"`
	PhotoGcsPath *string `json:"photo_gcs_path"`
}

// UpdateArtistDTO 更新艺术家，替换照片会触发旧对象清理
type UpdateArtistDTO struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	PhotoGcsPath *string `json:"photo_gcs_path"`
}

// ArtistNamesDTO 按名字批量查询
type ArtistNamesDTO struct {
	Names []string `json:"names" binding:"required,min=1"`
}
