package config

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/joho/godotenv"
)

var (
	configOnce  sync.Once
	configValue *Config
)

// Load 는 환경 변수 기반 설정을 로드한다.
func Load() *Config {
	configOnce.Do(func() {
		_ = godotenv.Load()
		configValue = buildConfig()
	})
	return configValue
}

// ProvideConfig 는 설정을 로드하고 검증한다.
func ProvideConfig() (*Config, error) {
	cfg := Load()
	if cfg == nil {
		return nil, errors.New("config not initialized")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogEnvStatus 는 환경 설정 상태를 로그로 남긴다.
func LogEnvStatus(cfg *Config, logger *slog.Logger) {
	if logger == nil || cfg == nil {
		return
	}

	logger.Debug(
		"env_status",
		"env_file", fileExists(".env"),
		"threshold", cfg.Pipeline.Threshold,
		"rules_dir", cfg.Pipeline.RulesDir,
		"max_answers", cfg.Pipeline.MaxAnswers,
		"file_workers", cfg.Workers.FileWorkers,
		"api_key", maskSecret(cfg.HTTPAuth.APIKey),
		"rate_limit_rpm", cfg.HTTPRateLimit.RequestsPerMinute,
	)
}

func buildConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Threshold:  getEnvFloat("PIPELINE_THRESHOLD", 0),
			RulesDir:   getEnvString("RULES_DIR", ""),
			MaxAnswers: max(1, getEnvInt("PIPELINE_MAX_ANSWERS", 5000)),
		},
		Workers: WorkersConfig{
			FileWorkers: max(1, getEnvNonNegativeInt("FILE_WORKERS", 4)),
		},
		Report: ReportConfig{
			CompressJSON: getEnvBool("REPORT_COMPRESS_JSON", false),
		},
		Cache: CacheConfig{
			MaxSize:    max(1, getEnvNonNegativeInt("RESULT_CACHE_SIZE", 1000)),
			TTLSeconds: max(1, getEnvNonNegativeInt("RESULT_CACHE_TTL_SECONDS", 600)),
		},
		Logging: LoggingConfig{
			Level:      getEnvString("LOG_LEVEL", "info"),
			LogDir:     getEnvString("LOG_DIR", ""),
			MaxSizeMB:  getEnvInt("LOG_FILE_MAX_SIZE_MB", 1),
			MaxBackups: getEnvInt("LOG_FILE_MAX_BACKUPS", 30),
			MaxAgeDays: getEnvInt("LOG_FILE_MAX_AGE_DAYS", 7),
			Compress:   getEnvBool("LOG_FILE_COMPRESS", true),
		},
		HTTP: HTTPConfig{
			Host:         getEnvString("HTTP_HOST", "127.0.0.1"),
			Port:         getEnvInt("HTTP_PORT", 40711),
			HTTP2Enabled: getEnvBool("HTTP2_ENABLED", true),
		},
		HTTPAuth: HTTPAuthConfig{
			APIKey: getEnvString("HTTP_API_KEY", ""),
		},
		HTTPRateLimit: HTTPRateLimitConfig{
			RequestsPerMinute: getEnvNonNegativeInt("HTTP_RATE_LIMIT_RPM", 0),
			CacheSize:         max(1, getEnvNonNegativeInt("HTTP_RATE_LIMIT_CACHE_SIZE", 10000)),
			CacheTTLSeconds:   max(1, getEnvNonNegativeInt("HTTP_RATE_LIMIT_CACHE_TTL_SECONDS", 120)),
		},
	}
}
