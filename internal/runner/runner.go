// Package runner 는 작업 폴더의 설문 CSV들을 찾아 문항별 통합을 돌리고
// 파일별 보고서를 저장한다. 한 파일이 실패해도 나머지는 계속 처리한다.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/park285/survey-insight-go/internal/qualitative"
	"github.com/park285/survey-insight-go/internal/report"
	"github.com/park285/survey-insight-go/internal/survey"
)

// 병합 품질 경고 기준: 그룹 수 / 전처리 후 응답 수.
const (
	overMergeRatio  = 0.25
	underMergeRatio = 0.9
	warnMinAnswers  = 5
)

// processedDir: 작업 폴더에서 원본 CSV가 모여 있는 하위 폴더.
const processedDir = "processed"

// Options 는 배치 실행 옵션이다.
type Options struct {
	Threshold float64
	Workers   int
	Compress  bool
}

// FileOutcome 는 파일 하나의 처리 결과다.
type FileOutcome struct {
	Path    string             `json:"path"`
	Report  *report.FileReport `json:"report,omitempty"`
	Outputs []string           `json:"outputs,omitempty"`
	Err     string             `json:"error,omitempty"`
}

// BatchResult 는 배치 전체 결과다.
type BatchResult struct {
	Files  []FileOutcome `json:"files"`
	Failed int           `json:"failed"`
}

// Runner 는 파이프라인과 출력기를 묶은 배치 실행기다.
type Runner struct {
	pipeline *qualitative.Pipeline
	logger   *slog.Logger
}

// New 는 Runner를 생성한다.
func New(pipeline *qualitative.Pipeline, logger *slog.Logger) *Runner {
	return &Runner{pipeline: pipeline, logger: logger}
}

// Discover 는 작업 폴더에서 처리 대상 CSV 목록을 찾는다.
// processed/ 하위 폴더가 있으면 그쪽을, 없으면 폴더 바로 아래를 본다.
func Discover(workDir string) ([]string, error) {
	searchDir := filepath.Join(workDir, processedDir)
	if info, err := os.Stat(searchDir); err != nil || !info.IsDir() {
		searchDir = workDir
	}

	paths, err := filepath.Glob(filepath.Join(searchDir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", searchDir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// RunFolder 는 작업 폴더 전체를 처리한다. 반환 오류는 폴더 수준 문제
// (폴더 없음, 출력 디렉터리 생성 실패)일 때만이고, 파일 수준 실패는
// BatchResult에 담긴다.
func (r *Runner) RunFolder(ctx context.Context, workDir, outDir string, opts Options) (*BatchResult, error) {
	paths, err := Discover(workDir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no csv files under %s", workDir)
	}

	if outDir == "" {
		outDir = filepath.Join(workDir, "results")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", outDir, err)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}

	outcomes := make([]FileOutcome, len(paths))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for idx, path := range paths {
		idx, path := idx, path
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				outcomes[idx] = FileOutcome{Path: path, Err: err.Error()}
				return nil
			}

			outcome := r.processFile(path, outDir, opts)
			outcomes[idx] = outcome
			if outcome.Err != "" {
				r.logger.Warn("file_failed", "path", path, "err", outcome.Err)
			} else {
				r.logger.Info("file_processed",
					"path", path,
					"questions", len(outcome.Report.Questions),
					"groups", outcome.Report.GroupCount(),
				)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	result := &BatchResult{Files: outcomes}
	for _, outcome := range outcomes {
		if outcome.Err != "" {
			result.Failed++
		}
	}
	r.logger.Info("batch_completed", "files", len(paths), "failed", result.Failed)
	return result, nil
}

// ProcessFile 는 설문 파일 하나를 통합해 보고서를 만든다. 출력 없이
// 결과만 필요할 때(API, 미리보기)도 쓰인다.
func (r *Runner) ProcessFile(path string, opts Options) (*report.FileReport, error) {
	table, charset, err := survey.ReadTable(path)
	if err != nil {
		return nil, err
	}

	columns := survey.QualitativeColumns(table)
	if len(columns) == 0 {
		return nil, fmt.Errorf("no qualitative columns in %s", path)
	}

	fileReport := &report.FileReport{
		File:        filepath.Base(path),
		GeneratedAt: time.Now(),
		Charset:     string(charset),
	}
	for _, idx := range columns {
		answers := survey.NonEmpty(table.Column(idx))
		result := r.pipeline.Run(answers, opts.Threshold)
		fileReport.Questions = append(fileReport.Questions, report.QuestionReport{
			Question: table.Header[idx],
			Stats:    result.Stats,
			Clusters: result.Clusters,
			Warnings: mergeWarnings(result),
		})
	}
	return fileReport, nil
}

func (r *Runner) processFile(path, outDir string, opts Options) FileOutcome {
	fileReport, err := r.ProcessFile(path, opts)
	if err != nil {
		return FileOutcome{Path: path, Err: err.Error()}
	}

	outputs, err := r.writeOutputs(path, outDir, fileReport, opts)
	if err != nil {
		return FileOutcome{Path: path, Report: fileReport, Err: err.Error()}
	}
	return FileOutcome{Path: path, Report: fileReport, Outputs: outputs}
}

func (r *Runner) writeOutputs(path, outDir string, fileReport *report.FileReport, opts Options) ([]string, error) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	excelPath := filepath.Join(outDir, base+"_qualitative.xlsx")
	if err := report.WriteWorkbook(excelPath, fileReport); err != nil {
		return nil, err
	}

	csvPath := filepath.Join(outDir, base+"_qualitative.csv")
	if err := report.WriteFlatCSV(csvPath, fileReport); err != nil {
		return nil, err
	}

	jsonPath := filepath.Join(outDir, base+"_detail.json")
	if opts.Compress {
		jsonPath += ".zst"
	}
	if err := report.WriteJSON(jsonPath, fileReport); err != nil {
		return nil, err
	}

	return []string{excelPath, csvPath, jsonPath}, nil
}

// mergeWarnings 는 병합 품질이 의심스러운 문항에 경고를 남긴다.
func mergeWarnings(result qualitative.Result) []string {
	if result.Stats.Final < warnMinAnswers {
		return nil
	}

	ratio := float64(len(result.Clusters)) / float64(result.Stats.Final)
	var warnings []string
	if ratio < overMergeRatio {
		warnings = append(warnings, fmt.Sprintf("과병합 의심: 그룹 비율 %.2f", ratio))
	}
	if ratio > underMergeRatio {
		warnings = append(warnings, fmt.Sprintf("과소병합 의심: 그룹 비율 %.2f", ratio))
	}
	return warnings
}
