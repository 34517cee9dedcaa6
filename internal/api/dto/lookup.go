package dto

// LookupCreateDTO 字典表新增
type LookupCreateDTO struct {
	Name string `json:"name" binding:"required" validate:"min=1,max=255"`
}
