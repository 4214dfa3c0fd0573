package report

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/park285/survey-insight-go/internal/qualitative"
	"github.com/park285/survey-insight-go/internal/survey"
)

func testRatio(t *testing.T) SimilarityFunc {
	t.Helper()
	rules, err := qualitative.DefaultRules()
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	return qualitative.NewEngine(rules).SequenceRatio
}

func writeTemplate(t *testing.T, dir string) string {
	t.Helper()
	book := excelize.NewFile()
	defer book.Close()

	sheet := book.GetSheetName(0)
	if err := book.SetCellValue(sheet, "H2", "강의 전체 만족도"); err != nil {
		t.Fatalf("set cell: %v", err)
	}
	if err := book.SetCellValue(sheet, "H3", "점심 메뉴 구성"); err != nil {
		t.Fatalf("set cell: %v", err)
	}

	path := filepath.Join(dir, "template.xlsx")
	if err := book.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	return path
}

func TestFillTemplate(t *testing.T) {
	dir := t.TempDir()
	templatePath := writeTemplate(t, dir)
	outPath := filepath.Join(dir, "filled.xlsx")

	stats := []survey.ColumnStats{
		{Question: "강의 전체 만족도", Mean: 4.5, Count: 10, Min: 3, Max: 5},
	}

	mappings, err := FillTemplate(templatePath, outPath, stats, testRatio(t))
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if len(mappings) != 2 {
		t.Fatalf("mappings = %+v", mappings)
	}
	if !mappings[0].Matched || mappings[0].MatchedQuestion != "강의 전체 만족도" {
		t.Fatalf("mapping = %+v", mappings[0])
	}
	if mappings[1].Matched {
		t.Fatalf("expected unmatched: %+v", mappings[1])
	}

	book, err := excelize.OpenFile(outPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer book.Close()

	value, err := book.GetCellValue(book.GetSheetName(0), "J2")
	if err != nil {
		t.Fatalf("cell: %v", err)
	}
	if value != "4.5" {
		t.Fatalf("J2 = %q", value)
	}

	// 매칭되지 않은 행은 비어 있어야 한다.
	value, err = book.GetCellValue(book.GetSheetName(0), "J3")
	if err != nil {
		t.Fatalf("cell: %v", err)
	}
	if value != "" {
		t.Fatalf("J3 = %q", value)
	}
}
