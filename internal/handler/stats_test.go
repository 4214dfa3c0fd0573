package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/park285/survey-insight-go/internal/metrics"
)

func TestStatsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := metrics.NewStore()
	store.RecordSuccess(100*time.Millisecond, 12, 3, 5)

	handler := NewStatsHandler(store)
	router := gin.New()
	handler.RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload StatsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Metrics["total_requests"] != 1 {
		t.Fatalf("expected total_requests 1, got %v", payload.Metrics["total_requests"])
	}
	if payload.Metrics["total_answers"] != 12 {
		t.Fatalf("expected total_answers 12, got %v", payload.Metrics["total_answers"])
	}
}
