package handler

import (
	"Showreel/internal/api/dto"
	"Showreel/internal/pkg/response"
	"Showreel/internal/pkg/util"
	"Showreel/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type LookupHandler struct {
	lookupSvc service.LookupService
}

func NewLookupHandler(lookupSvc service.LookupService) *LookupHandler {
	return &LookupHandler{lookupSvc: lookupSvc}
}

func (s *LookupHandler) ListRows(c *gin.Context) {
	kind := c.Param("kind")

	rows, err := s.lookupSvc.ListRows(c.Request.Context(), kind)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, rows)
}

func (s *LookupHandler) CreateRow(c *gin.Context) {
	kind := c.Param("kind")

	var req dto.LookupCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	row, err := s.lookupSvc.CreateRow(c.Request.Context(), kind, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, row)
}

func (s *LookupHandler) DeleteRow(c *gin.Context) {
	kind := c.Param("kind")
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.lookupSvc.DeleteRow(c.Request.Context(), kind, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
