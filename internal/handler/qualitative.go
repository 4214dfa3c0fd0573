package handler

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"

	"github.com/park285/survey-insight-go/internal/cache"
	"github.com/park285/survey-insight-go/internal/config"
	"github.com/park285/survey-insight-go/internal/handler/shared"
	"github.com/park285/survey-insight-go/internal/httperror"
	"github.com/park285/survey-insight-go/internal/metrics"
	"github.com/park285/survey-insight-go/internal/qualitative"
)

// ConsolidateRequest 는 주관식 응답 통합 요청이다.
type ConsolidateRequest struct {
	Question  string         `json:"question"`
	Answers   []string       `json:"answers" binding:"required"`
	Threshold float64        `json:"threshold"`
	Options   map[string]any `json:"options"`
}

// ConsolidateOptions 는 options 맵으로 전달되는 세부 옵션이다.
type ConsolidateOptions struct {
	Threshold float64 `json:"threshold"`
}

// ConsolidateResponse 는 통합 결과 응답이다.
type ConsolidateResponse struct {
	Question string                      `json:"question,omitempty"`
	Stats    qualitative.PreprocessStats `json:"stats"`
	Clusters []qualitative.ClusterResult `json:"clusters"`
	Cached   bool                        `json:"cached"`
}

// PreviewResponse 는 정규화 미리보기 응답이다.
type PreviewResponse struct {
	Question string                     `json:"question,omitempty"`
	Entries  []qualitative.PreviewEntry `json:"entries"`
}

// QualitativeHandler 는 주관식 통합 API 핸들러다.
type QualitativeHandler struct {
	cfg      *config.Config
	pipeline *qualitative.Pipeline
	store    *metrics.Store
	results  *cache.TTLCache[string, qualitative.Result]
	flight   singleflight.Group
	logger   *slog.Logger
}

// NewQualitativeHandler 는 주관식 통합 핸들러를 생성한다.
func NewQualitativeHandler(
	cfg *config.Config,
	pipeline *qualitative.Pipeline,
	store *metrics.Store,
	logger *slog.Logger,
) *QualitativeHandler {
	cacheSize := 1
	cacheTTL := time.Second
	if cfg != nil {
		cacheSize = cfg.Cache.MaxSize
		cacheTTL = time.Duration(cfg.Cache.TTLSeconds) * time.Second
	}

	return &QualitativeHandler{
		cfg:      cfg,
		pipeline: pipeline,
		store:    store,
		results:  cache.NewTTLCache[string, qualitative.Result](cacheSize, cacheTTL),
		logger:   logger,
	}
}

// RegisterRoutes 는 주관식 통합 라우트를 등록한다.
func (h *QualitativeHandler) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/api/qualitative")
	group.POST("/consolidations", h.handleConsolidate)
	group.POST("/previews", h.handlePreview)
}

func (h *QualitativeHandler) handleConsolidate(c *gin.Context) {
	started := time.Now()

	var req ConsolidateRequest
	if !bindJSON(c, &req) {
		h.store.RecordError(time.Since(started))
		return
	}

	if len(req.Answers) == 0 {
		h.store.RecordError(time.Since(started))
		writeError(c, httperror.NewMissingField("answers"))
		return
	}
	if limit := h.maxAnswers(); len(req.Answers) > limit {
		h.store.RecordError(time.Since(started))
		writeError(c, httperror.NewPayloadTooLarge(len(req.Answers), limit))
		return
	}

	threshold, err := h.resolveThreshold(&req)
	if err != nil {
		h.store.RecordError(time.Since(started))
		writeError(c, err)
		return
	}

	key := resultKey(threshold, req.Answers)
	result, cached := h.results.Get(key)
	if !cached {
		value, _, _ := h.flight.Do(key, func() (any, error) {
			computed := h.pipeline.Run(req.Answers, threshold)
			h.results.Set(key, computed)
			return computed, nil
		})
		result = value.(qualitative.Result)
	}

	h.store.RecordSuccess(time.Since(started), result.Stats.Original, result.Stats.Removed, len(result.Clusters))
	h.logRequest(&req, result, cached)

	c.JSON(http.StatusOK, ConsolidateResponse{
		Question: req.Question,
		Stats:    result.Stats,
		Clusters: result.Clusters,
		Cached:   cached,
	})
}

func (h *QualitativeHandler) handlePreview(c *gin.Context) {
	var payload map[string]any
	if !bindJSON(c, &payload) {
		return
	}

	if _, ok := payload["answers"]; !ok {
		writeError(c, httperror.NewMissingField("answers"))
		return
	}
	answers, err := shared.ParseStringSlice(payload, "answers")
	if err != nil {
		writeError(c, httperror.NewInvalidInput(err.Error()))
		return
	}
	if limit := h.maxAnswers(); len(answers) > limit {
		writeError(c, httperror.NewPayloadTooLarge(len(answers), limit))
		return
	}

	question, _ := shared.ParseStringField(payload, "question")

	c.JSON(http.StatusOK, PreviewResponse{
		Question: question,
		Entries:  h.pipeline.Preview(answers),
	})
}

func (h *QualitativeHandler) maxAnswers() int {
	if h.cfg == nil || h.cfg.Pipeline.MaxAnswers <= 0 {
		return 5000
	}
	return h.cfg.Pipeline.MaxAnswers
}

// resolveThreshold 는 본문 threshold 를 우선하고, 없으면 options 맵,
// 둘 다 없으면 0(규칙 테이블 기본값)을 쓴다.
func (h *QualitativeHandler) resolveThreshold(req *ConsolidateRequest) (float64, error) {
	threshold := req.Threshold
	if threshold == 0 && len(req.Options) > 0 {
		var opts ConsolidateOptions
		if err := shared.Decode(req.Options, &opts); err != nil {
			return 0, httperror.NewInvalidInput(err.Error())
		}
		threshold = opts.Threshold
	}
	if threshold < 0 || threshold > 1 {
		return 0, httperror.NewInvalidInput("threshold must be between 0 and 1")
	}
	return threshold, nil
}

func (h *QualitativeHandler) logRequest(req *ConsolidateRequest, result qualitative.Result, cached bool) {
	if h.logger == nil {
		return
	}

	fields := []any{
		"question", shared.TrimRunes(req.Question, 40),
		"answers", result.Stats.Original,
		"removed", result.Stats.Removed,
		"clusters", len(result.Clusters),
		"cached", cached,
	}
	if details, err := shared.SerializeDetails(req.Options); err == nil && details != "" {
		fields = append(fields, "options", details)
	}
	h.logger.Debug("consolidation_completed", fields...)
}

func resultKey(threshold float64, answers []string) string {
	hasher := sha256.New()
	fmt.Fprintf(hasher, "%.4f", threshold)
	for _, answer := range answers {
		hasher.Write([]byte{0})
		hasher.Write([]byte(answer))
	}
	return hex.EncodeToString(hasher.Sum(nil))
}
