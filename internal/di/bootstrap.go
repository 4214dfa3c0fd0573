package di

import (
	"fmt"

	"github.com/park285/survey-insight-go/internal/config"
	"github.com/park285/survey-insight-go/internal/handler"
	"github.com/park285/survey-insight-go/internal/metrics"
	"github.com/park285/survey-insight-go/internal/qualitative"
	"github.com/park285/survey-insight-go/internal/server"
)

// InitializeApp 은 애플리케이션 의존성을 초기화하고 App 인스턴스를 반환한다.
func InitializeApp() (*App, error) {
	cfg, err := config.ProvideConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	rules, err := qualitative.LoadRules(cfg.Pipeline.RulesDir, logger)
	if err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}

	pipeline := qualitative.NewPipeline(rules)
	metricsStore := metrics.NewStore()

	qualitativeHandler := handler.NewQualitativeHandler(cfg, pipeline, metricsStore, logger)
	statsHandler := handler.NewStatsHandler(metricsStore)

	router := handler.NewRouter(cfg, logger, rules, qualitativeHandler, statsHandler)
	httpServer := server.NewHTTPServer(cfg, router)

	return NewApp(httpServer, logger, cfg, rules, pipeline, metricsStore), nil
}
