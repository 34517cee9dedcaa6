package handler

import (
	"Showreel/internal/api/dto"
	"Showreel/internal/pkg/response"
	"Showreel/internal/service"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

// LogEvent 播放器埋点。sendBeacon 只能发 text/plain，所以不信 Content-Type，
// 直接按 JSON 解析原始请求体
func (s *AnalyticsHandler) LogEvent(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.LogEventDTO
	if err = json.Unmarshal(body, &req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.analyticsSvc.LogEvent(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

func (s *AnalyticsHandler) ViewsOverTime(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	points, err := s.analyticsSvc.ViewsOverTime(c.Request.Context(), startDate, endDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, points)
}

func (s *AnalyticsHandler) TrendingMedia(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, err := s.analyticsSvc.TrendingMedia(c.Request.Context(), startDate, endDate, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, items)
}

func (s *AnalyticsHandler) RecentActivity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	activities, err := s.analyticsSvc.RecentActivity(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, activities)
}
