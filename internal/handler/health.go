package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/park285/survey-insight-go/internal/config"
	"github.com/park285/survey-insight-go/internal/health"
	"github.com/park285/survey-insight-go/internal/qualitative"
)

// RulesConfigResponse: 규칙 테이블 설정 응답입니다.
type RulesConfigResponse struct {
	Threshold     float64        `json:"threshold"`
	Topics        []string       `json:"topics"`
	Counts        map[string]int `json:"counts"`
	RulesDir      string         `json:"rules_dir"`
	HTTP2Enabled  bool           `json:"http2_enabled"`
	TransportMode string         `json:"transport_mode"`
}

// RegisterHealthRoutes: 상태 확인 라우트를 등록합니다.
func RegisterHealthRoutes(router *gin.Engine, cfg *config.Config, rules *qualitative.Rules) {
	router.GET("/health", func(c *gin.Context) {
		payload := health.Collect(cfg, rules)
		c.JSON(http.StatusOK, payload)
	})

	router.GET("/health/ready", func(c *gin.Context) {
		payload := health.Collect(cfg, rules)
		status := http.StatusOK
		if payload.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, payload)
	})

	// Prometheus 메트릭 (장기 히스토리 분석용)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/health/rules", func(c *gin.Context) {
		transportMode := "h1"
		if cfg.HTTP.HTTP2Enabled {
			transportMode = "h2c"
		}

		response := RulesConfigResponse{
			RulesDir:      cfg.Pipeline.RulesDir,
			HTTP2Enabled:  cfg.HTTP.HTTP2Enabled,
			TransportMode: transportMode,
		}
		if rules != nil {
			response.Threshold = rules.Threshold
			response.Topics = rules.TopicNames()
			response.Counts = rules.Summary()
		}

		c.JSON(http.StatusOK, response)
	})
}
