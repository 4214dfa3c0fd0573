package metrics

import (
	"sync/atomic"
	"time"
)

// Store 는 통합 요청 통계를 저장한다.
type Store struct {
	totalRequests   int64
	totalErrors     int64
	totalAnswers    int64
	totalRemoved    int64
	totalClusters   int64
	totalDurationMs int64
}

// NewStore 는 통계 저장소를 생성한다.
func NewStore() *Store {
	return &Store{}
}

// RecordSuccess 는 성공 요청 통계를 기록한다.
func (s *Store) RecordSuccess(duration time.Duration, answers, removed, clusters int) {
	atomic.AddInt64(&s.totalRequests, 1)
	atomic.AddInt64(&s.totalAnswers, int64(answers))
	atomic.AddInt64(&s.totalRemoved, int64(removed))
	atomic.AddInt64(&s.totalClusters, int64(clusters))
	atomic.AddInt64(&s.totalDurationMs, duration.Milliseconds())
}

// RecordError 는 실패 요청 통계를 기록한다.
func (s *Store) RecordError(duration time.Duration) {
	atomic.AddInt64(&s.totalRequests, 1)
	atomic.AddInt64(&s.totalErrors, 1)
	atomic.AddInt64(&s.totalDurationMs, duration.Milliseconds())
}

// Snapshot 는 통계 스냅샷을 반환한다.
func (s *Store) Snapshot() map[string]float64 {
	totalRequests := atomic.LoadInt64(&s.totalRequests)
	totalErrors := atomic.LoadInt64(&s.totalErrors)
	answers := atomic.LoadInt64(&s.totalAnswers)
	removed := atomic.LoadInt64(&s.totalRemoved)
	clusters := atomic.LoadInt64(&s.totalClusters)
	durationMs := atomic.LoadInt64(&s.totalDurationMs)

	avgDuration := 0.0
	if totalRequests > 0 {
		avgDuration = float64(durationMs) / float64(totalRequests)
	}

	return map[string]float64{
		"total_requests":    float64(totalRequests),
		"total_errors":      float64(totalErrors),
		"total_answers":     float64(answers),
		"total_removed":     float64(removed),
		"total_clusters":    float64(clusters),
		"total_duration_ms": float64(durationMs),
		"avg_duration_ms":   avgDuration,
	}
}
