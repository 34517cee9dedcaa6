package handler

import (
	"Showreel/internal/api/dto"
	"Showreel/internal/pkg/response"
	"Showreel/internal/pkg/util"
	"Showreel/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type MediaItemHandler struct {
	mediaItemSvc service.MediaItemService
}

func NewMediaItemHandler(mediaItemSvc service.MediaItemService) *MediaItemHandler {
	return &MediaItemHandler{mediaItemSvc: mediaItemSvc}
}

func (s *MediaItemHandler) CreateMediaItem(c *gin.Context) {
	var req dto.MediaItemBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	item, err := s.mediaItemSvc.CreateMediaItem(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, item)
}

func (s *MediaItemHandler) ListMediaItems(c *gin.Context) {
	items, err := s.mediaItemSvc.ListMediaItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, items)
}

func (s *MediaItemHandler) GetMediaItem(c *gin.Context) {
	idStr := c.Param("media_item_id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	item, err := s.mediaItemSvc.GetMediaItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, item)
}

func (s *MediaItemHandler) UpdateMediaItem(c *gin.Context) {
	idStr := c.Param("media_item_id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.UpdateMediaItemDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	item, err := s.mediaItemSvc.UpdateMediaItem(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, item)
}

// DeleteMediaItem 级联删除：存储对象、引用关系、孤儿 reel，最后删行
func (s *MediaItemHandler) DeleteMediaItem(c *gin.Context) {
	idStr := c.Param("media_item_id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.mediaItemSvc.DeleteMediaItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
