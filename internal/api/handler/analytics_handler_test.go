package handler

import (
	"Showreel/internal/api/dto"
	"Showreel/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type fakeAnalyticsService struct {
	logged []*dto.LogEventDTO
	logErr error
}

func (f *fakeAnalyticsService) LogEvent(_ context.Context, eventDTO *dto.LogEventDTO) error {
	if f.logErr != nil {
		return f.logErr
	}
	f.logged = append(f.logged, eventDTO)
	return nil
}

func (f *fakeAnalyticsService) ViewsOverTime(_ context.Context, _, _ string) ([]*dto.ViewsPointDTO, error) {
	return nil, nil
}

func (f *fakeAnalyticsService) TrendingMedia(_ context.Context, _, _ string, _ int) ([]*dto.TrendingMediaDTO, error) {
	return nil, nil
}

func (f *fakeAnalyticsService) RecentActivity(_ context.Context, _ int) ([]*dto.RecentActivityDTO, error) {
	return nil, nil
}

func newLogEventRouter(svc service.AnalyticsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/reels/log-event", NewAnalyticsHandler(svc).LogEvent)
	return r
}

func TestLogEventHandler(t *testing.T) {
	t.Run("accepts sendBeacon text/plain body", func(t *testing.T) {
		svc := &fakeAnalyticsService{}
		router := newLogEventRouter(svc)

		body := `{"reel_id":7,"session_id":"s-1","event_type":"view"}`
		req := httptest.NewRequest(http.MethodPost, "/api/reels/log-event", strings.NewReader(body))
		req.Header.Set("Content-Type", "text/plain;charset=UTF-8")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var res dto.Response
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if res.Code != 200 {
			t.Errorf("business code = %d, want 200", res.Code)
		}

		if len(svc.logged) != 1 {
			t.Fatalf("expected 1 logged event, got %d", len(svc.logged))
		}
		got := svc.logged[0]
		if got.ReelID != 7 || got.SessionID != "s-1" || got.EventType != "view" {
			t.Errorf("event = %+v", got)
		}
	})

	t.Run("rejects a non-json body", func(t *testing.T) {
		svc := &fakeAnalyticsService{}
		router := newLogEventRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/reels/log-event", strings.NewReader("not json"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var res dto.Response
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if res.Code != 400 {
			t.Errorf("business code = %d, want 400", res.Code)
		}
		if len(svc.logged) != 0 {
			t.Errorf("invalid body must not reach the service")
		}
	})

	t.Run("maps service validation errors to business codes", func(t *testing.T) {
		svc := &fakeAnalyticsService{logErr: service.ErrEventTypeInvalid}
		router := newLogEventRouter(svc)

		body := `{"reel_id":7,"session_id":"s-1","event_type":"hover"}`
		req := httptest.NewRequest(http.MethodPost, "/api/reels/log-event", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var res dto.Response
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if res.Code != 400 {
			t.Errorf("business code = %d, want 400", res.Code)
		}
	})
}
