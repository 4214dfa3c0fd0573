package report

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/park285/survey-insight-go/internal/qualitative"
)

func sampleReport() *FileReport {
	return &FileReport{
		File:        "survey.csv",
		GeneratedAt: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		Charset:     "utf-8",
		Questions: []QuestionReport{
			{
				Question: "좋았던 점",
				Stats:    qualitative.PreprocessStats{Original: 3, Removed: 1, Final: 2},
				Clusters: []qualitative.ClusterResult{
					{
						Representative: "강사님이 친절했음",
						Display:        "강사님이 친절했음 (공통의견 2)",
						Count:          2,
						Sources:        []string{"강사님이 친절했음", "강사분이 친절하셨음"},
					},
				},
			},
		},
	}
}

func TestWriteReadJSON(t *testing.T) {
	for _, name := range []string{"report.json", "report.json.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := WriteJSON(path, sampleReport()); err != nil {
				t.Fatalf("write: %v", err)
			}

			var loaded FileReport
			if err := ReadJSON(path, &loaded); err != nil {
				t.Fatalf("read: %v", err)
			}
			if loaded.File != "survey.csv" || len(loaded.Questions) != 1 {
				t.Fatalf("loaded = %+v", loaded)
			}
			if loaded.Questions[0].Clusters[0].Count != 2 {
				t.Fatalf("cluster = %+v", loaded.Questions[0].Clusters[0])
			}
		})
	}
}

func TestGroupCount(t *testing.T) {
	if got := sampleReport().GroupCount(); got != 1 {
		t.Fatalf("got %d", got)
	}
}
