package handler

import (
	"Showreel/internal/api/dto"
	"Showreel/internal/pkg/response"
	"Showreel/internal/pkg/util"
	"Showreel/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ArtistHandler struct {
	artistSvc service.ArtistService
}

func NewArtistHandler(artistSvc service.ArtistService) *ArtistHandler {
	return &ArtistHandler{artistSvc: artistSvc}
}

func (s *ArtistHandler) CreateArtist(c *gin.Context) {
	var req dto.ArtistBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	artist, err := s.artistSvc.CreateArtist(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, artist)
}

func (s *ArtistHandler) ListArtists(c *gin.Context) {
	artists, err := s.artistSvc.ListArtists(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, artists)
}

// GetDetailsByNames 按名字批量查询，媒体条目的 artists 字段存的是逗号连接的名字
func (s *ArtistHandler) GetDetailsByNames(c *gin.Context) {
	var req dto.ArtistNamesDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	artists, err := s.artistSvc.GetArtistsByNames(c.Request.Context(), req.Names)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, artists)
}

func (s *ArtistHandler) UpdateArtist(c *gin.Context) {
	idStr := c.Param("artist_id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.UpdateArtistDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	artist, err := s.artistSvc.UpdateArtist(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, artist)
}

func (s *ArtistHandler) DeleteArtist(c *gin.Context) {
	idStr := c.Param("artist_id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.artistSvc.DeleteArtist(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
