package handler

import (
	"Showreel/internal/api/dto"
	"Showreel/internal/pkg/response"
	"Showreel/internal/pkg/util"
	"Showreel/internal/service"

	"github.com/gin-gonic/gin"
)

type FeaturePdfHandler struct {
	featurePdfSvc service.FeaturePdfService
}

func NewFeaturePdfHandler(featurePdfSvc service.FeaturePdfService) *FeaturePdfHandler {
	return &FeaturePdfHandler{featurePdfSvc: featurePdfSvc}
}

func (s *FeaturePdfHandler) SetPassword(c *gin.Context) {
	var req dto.PdfPasswordDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.featurePdfSvc.SetPassword(c.Request.Context(), req.Password); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// VerifyPassword 公开接口，口令门禁
func (s *FeaturePdfHandler) VerifyPassword(c *gin.Context) {
	var req dto.PdfPasswordDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.featurePdfSvc.VerifyPassword(c.Request.Context(), req.Password); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *FeaturePdfHandler) SetFile(c *gin.Context) {
	var req dto.PdfFileDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	file, err := s.featurePdfSvc.SetFile(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, file)
}

func (s *FeaturePdfHandler) GetCurrentFile(c *gin.Context) {
	file, err := s.featurePdfSvc.GetCurrentFile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, file)
}

func (s *FeaturePdfHandler) LogStat(c *gin.Context) {
	var req dto.PdfStatDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.featurePdfSvc.LogStat(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
