package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/park285/survey-insight-go/internal/metrics"
)

// StatsResponse 는 파이프라인 누적 통계 응답이다.
type StatsResponse struct {
	Metrics map[string]float64 `json:"metrics"`
}

// StatsHandler 는 통계 API 핸들러다.
type StatsHandler struct {
	store *metrics.Store
}

// NewStatsHandler 는 통계 핸들러를 생성한다.
func NewStatsHandler(store *metrics.Store) *StatsHandler {
	return &StatsHandler{store: store}
}

// RegisterRoutes 는 통계 라우트를 등록한다.
func (h *StatsHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/stats", h.handleStats)
}

func (h *StatsHandler) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, StatsResponse{Metrics: h.store.Snapshot()})
}
