package handler

import (
	"Showreel/internal/api/dto"
	"Showreel/internal/pkg/response"
	"Showreel/internal/pkg/util"
	"Showreel/internal/service"

	"github.com/gin-gonic/gin"
)

type StorageHandler struct {
	objectStorage service.ObjectStorage
}

func NewStorageHandler(objectStorage service.ObjectStorage) *StorageHandler {
	return &StorageHandler{objectStorage: objectStorage}
}

// CreateUploadURL 签发限时上传链接
func (s *StorageHandler) CreateUploadURL(c *gin.Context) {
	var req dto.UploadURLDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	signedURL, objectPath, err := s.objectStorage.PresignUpload(c.Request.Context(), req.FileName, req.FileType, req.Destination)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.UploadURLResultDTO{
		SignedURL: signedURL,
		GcsPath:   objectPath,
	})
}

// CreateReadURLs 批量签发读取链接，单个失败返回 null，不影响整批
func (s *StorageHandler) CreateReadURLs(c *gin.Context) {
	var req dto.ReadURLsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	urls := s.objectStorage.ResolveReadURLs(c.Request.Context(), req.GcsPaths)
	response.Success(c, urls)
}
