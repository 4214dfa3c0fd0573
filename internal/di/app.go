package di

import (
	"log/slog"
	"net/http"

	"github.com/park285/survey-insight-go/internal/config"
	"github.com/park285/survey-insight-go/internal/metrics"
	"github.com/park285/survey-insight-go/internal/qualitative"
)

// App: 애플리케이션 구성 요소를 묶는다.
type App struct {
	Server   *http.Server
	Logger   *slog.Logger
	Config   *config.Config
	Rules    *qualitative.Rules
	Pipeline *qualitative.Pipeline
	Metrics  *metrics.Store
}

// NewApp: App 인스턴스를 생성합니다.
func NewApp(
	server *http.Server,
	logger *slog.Logger,
	cfg *config.Config,
	rules *qualitative.Rules,
	pipeline *qualitative.Pipeline,
	metricsStore *metrics.Store,
) *App {
	return &App{
		Server:   server,
		Logger:   logger,
		Config:   cfg,
		Rules:    rules,
		Pipeline: pipeline,
		Metrics:  metricsStore,
	}
}
