package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// sheetNameLimit: 엑셀 시트 이름 길이 제한.
const sheetNameLimit = 31

const summarySheet = "요약"

// WriteWorkbook 는 파일 하나의 결과를 엑셀 통합 문서로 저장한다.
// 요약 시트 하나와 문항별 시트가 만들어진다.
func WriteWorkbook(path string, fileReport *FileReport) error {
	book := excelize.NewFile()
	defer book.Close()

	if err := book.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}
	if err := writeSummarySheet(book, fileReport); err != nil {
		return err
	}

	used := map[string]struct{}{summarySheet: {}}
	for idx, question := range fileReport.Questions {
		name := sheetName(question.Question, idx, used)
		if _, err := book.NewSheet(name); err != nil {
			return fmt.Errorf("new sheet %s: %w", name, err)
		}
		if err := writeQuestionSheet(book, name, question); err != nil {
			return err
		}
	}

	if err := book.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeSummarySheet(book *excelize.File, fileReport *FileReport) error {
	header := []any{"문항", "응답 수", "제거 수", "그룹 수"}
	if err := book.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return fmt.Errorf("summary header: %w", err)
	}

	for idx, question := range fileReport.Questions {
		row := []any{
			question.Question,
			question.Stats.Original,
			question.Stats.Removed,
			len(question.Clusters),
		}
		cell := fmt.Sprintf("A%d", idx+2)
		if err := book.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("summary row: %w", err)
		}
	}
	return nil
}

func writeQuestionSheet(book *excelize.File, sheet string, question QuestionReport) error {
	header := []any{"통합 의견", "빈도", "원본 응답"}
	if err := book.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("question header: %w", err)
	}

	for idx, cluster := range question.Clusters {
		row := []any{
			cluster.Display,
			cluster.Count,
			strings.Join(cluster.Sources, " | "),
		}
		cell := fmt.Sprintf("A%d", idx+2)
		if err := book.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("question row: %w", err)
		}
	}
	return nil
}

// sheetName 는 문항 텍스트를 엑셀 시트 이름으로 다듬는다.
// 금지 문자를 제거하고 31자로 자르며 중복되면 번호를 붙인다.
func sheetName(question string, idx int, used map[string]struct{}) string {
	name := question
	for _, forbidden := range []string{":", "\\", "/", "?", "*", "[", "]"} {
		name = strings.ReplaceAll(name, forbidden, "")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("문항%d", idx+1)
	}

	runes := []rune(name)
	if len(runes) > sheetNameLimit {
		name = string(runes[:sheetNameLimit])
	}

	if _, taken := used[name]; taken {
		suffix := fmt.Sprintf("_%d", idx+1)
		runes = []rune(name)
		if len(runes)+len(suffix) > sheetNameLimit {
			runes = runes[:sheetNameLimit-len(suffix)]
		}
		name = string(runes) + suffix
	}
	used[name] = struct{}{}
	return name
}
