package handler

import (
	"Showreel/internal/api/dto"
	"Showreel/internal/pkg/response"
	"Showreel/internal/pkg/util"
	"Showreel/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ReelHandler struct {
	reelSvc service.ReelService
}

func NewReelHandler(reelSvc service.ReelService) *ReelHandler {
	return &ReelHandler{reelSvc: reelSvc}
}

func (s *ReelHandler) CreateReel(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, service.UnExpectedError)
		return
	}

	var req dto.CreateReelDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	reel, err := s.reelSvc.CreateReel(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, reel)
}

func (s *ReelHandler) ListReels(c *gin.Context) {
	reels, err := s.reelSvc.ListReels(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, reels)
}

func (s *ReelHandler) UpdateReel(c *gin.Context) {
	reelIDStr := c.Param("reel_id")
	reelID, err := strconv.ParseUint(reelIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.UpdateReelDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	analytics, err := s.reelSvc.UpdateReel(c.Request.Context(), reelID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, analytics)
}

func (s *ReelHandler) DeleteReel(c *gin.Context) {
	reelIDStr := c.Param("reel_id")
	reelID, err := strconv.ParseUint(reelIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.reelSvc.DeleteReel(c.Request.Context(), reelID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// GetPublicReel 公开播放页，短链定位，无需登录
func (s *ReelHandler) GetPublicReel(c *gin.Context) {
	shortLink := c.Param("short_link")

	reel, err := s.reelSvc.GetPublicReel(c.Request.Context(), shortLink)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, reel)
}
