package config

import (
	"errors"
	"fmt"
)

// PipelineConfig 는 주관식 통합 파이프라인 설정이다.
type PipelineConfig struct {
	// Threshold 는 병합 임계값. 0이면 규칙 테이블 기본값을 쓴다.
	Threshold float64
	// RulesDir 는 외부 규칙 테이블 디렉터리. 비어 있으면 내장 테이블만 쓴다.
	RulesDir string
	// MaxAnswers 는 API 요청 한 건당 허용하는 응답 수 상한.
	MaxAnswers int
}

// WorkersConfig 는 배치 병렬 처리 설정이다.
type WorkersConfig struct {
	FileWorkers int
}

// ReportConfig 는 보고서 출력 설정이다.
type ReportConfig struct {
	// CompressJSON 이면 상세 JSON을 .json.zst로 저장한다.
	CompressJSON bool
}

// CacheConfig 는 통합 결과 캐시 설정이다.
type CacheConfig struct {
	MaxSize    int
	TTLSeconds int
}

// LoggingConfig 는 로깅 설정이다.
type LoggingConfig struct {
	Level      string
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// HTTPConfig 는 HTTP 서버 설정이다.
type HTTPConfig struct {
	Host         string
	Port         int
	HTTP2Enabled bool
}

// HTTPAuthConfig 는 API 키 인증 설정이다.
type HTTPAuthConfig struct {
	APIKey string
}

// HTTPRateLimitConfig 는 요청 제한 설정이다.
type HTTPRateLimitConfig struct {
	RequestsPerMinute int
	CacheSize         int
	CacheTTLSeconds   int
}

// Config 는 애플리케이션 전체 설정이다.
type Config struct {
	Pipeline      PipelineConfig
	Workers       WorkersConfig
	Report        ReportConfig
	Cache         CacheConfig
	Logging       LoggingConfig
	HTTP          HTTPConfig
	HTTPAuth      HTTPAuthConfig
	HTTPRateLimit HTTPRateLimitConfig
}

// Validate 는 설정 유효성을 검사한다.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Pipeline.Threshold < 0 || c.Pipeline.Threshold > 1 {
		return fmt.Errorf("threshold out of range: %v", c.Pipeline.Threshold)
	}
	if c.Pipeline.MaxAnswers <= 0 {
		return fmt.Errorf("max answers must be positive: %d", c.Pipeline.MaxAnswers)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http port: %d", c.HTTP.Port)
	}
	return nil
}
