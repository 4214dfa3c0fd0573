package runner

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/park285/survey-insight-go/internal/qualitative"
	"github.com/park285/survey-insight-go/internal/report"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	rules, err := qualitative.DefaultRules()
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(qualitative.NewPipeline(rules), logger)
}

func writeWorkFolder(t *testing.T) string {
	t.Helper()
	workDir := t.TempDir()
	processed := filepath.Join(workDir, "processed")
	if err := os.MkdirAll(processed, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	good := "타임스탬프,좋았던 점\n" +
		"2025-01-01,강사님이 친절했습니다\n" +
		"2025-01-02,강사님이 친절했어요\n" +
		"2025-01-03,소통하는 방법을 배울 수 있어서 유익했습니다\n" +
		"2025-01-04,없음\n"
	if err := os.WriteFile(filepath.Join(processed, "a.csv"), []byte(good), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	// 주관식 열이 없는 파일: 실패하되 배치를 막으면 안 된다.
	bad := "만족도\n5\n4\n"
	if err := os.WriteFile(filepath.Join(processed, "b.csv"), []byte(bad), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return workDir
}

func TestDiscover(t *testing.T) {
	workDir := writeWorkFolder(t)
	paths, err := Discover(workDir)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("paths = %v", paths)
	}
	if filepath.Base(paths[0]) != "a.csv" {
		t.Fatalf("paths = %v", paths)
	}
}

func TestRunFolder(t *testing.T) {
	runner := newTestRunner(t)
	workDir := writeWorkFolder(t)

	result, err := runner.RunFolder(context.Background(), workDir, "", Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(result.Files) != 2 || result.Failed != 1 {
		t.Fatalf("result = %+v", result)
	}

	var good FileOutcome
	for _, outcome := range result.Files {
		if outcome.Err == "" {
			good = outcome
		}
	}
	if good.Report == nil || len(good.Report.Questions) != 1 {
		t.Fatalf("outcome = %+v", good)
	}
	if len(good.Outputs) != 3 {
		t.Fatalf("outputs = %v", good.Outputs)
	}
	for _, output := range good.Outputs {
		if _, err := os.Stat(output); err != nil {
			t.Fatalf("missing output %s: %v", output, err)
		}
	}

	question := good.Report.Questions[0]
	if question.Stats.Original != 4 || question.Stats.Removed != 1 {
		t.Fatalf("stats = %+v", question.Stats)
	}

	// 상세 JSON을 다시 읽을 수 있어야 한다.
	var loaded report.FileReport
	if err := report.ReadJSON(good.Outputs[2], &loaded); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if loaded.File != "a.csv" {
		t.Fatalf("loaded = %+v", loaded)
	}
}

func TestRunFolderEmpty(t *testing.T) {
	runner := newTestRunner(t)
	if _, err := runner.RunFolder(context.Background(), t.TempDir(), "", Options{}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestMergeWarnings(t *testing.T) {
	// 응답 10건이 그룹 1개로 접히면 과병합 의심.
	over := qualitative.Result{
		Stats:    qualitative.PreprocessStats{Final: 10},
		Clusters: []qualitative.ClusterResult{{Count: 10}},
	}
	if warnings := mergeWarnings(over); len(warnings) != 1 {
		t.Fatalf("warnings = %v", warnings)
	}

	// 응답 10건이 그룹 10개면 과소병합 의심.
	under := qualitative.Result{Stats: qualitative.PreprocessStats{Final: 10}}
	for i := 0; i < 10; i++ {
		under.Clusters = append(under.Clusters, qualitative.ClusterResult{Count: 1})
	}
	if warnings := mergeWarnings(under); len(warnings) != 1 {
		t.Fatalf("warnings = %v", warnings)
	}

	// 표본이 적으면 경고하지 않는다.
	small := qualitative.Result{
		Stats:    qualitative.PreprocessStats{Final: 2},
		Clusters: []qualitative.ClusterResult{{Count: 2}},
	}
	if warnings := mergeWarnings(small); warnings != nil {
		t.Fatalf("warnings = %v", warnings)
	}
}
