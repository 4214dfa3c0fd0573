package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/park285/survey-insight-go/internal/qualitative"
	"github.com/park285/survey-insight-go/internal/survey"
)

// templateMatchFloor: 문항 텍스트 매칭으로 인정하는 최소 유사도.
const templateMatchFloor = 0.5

// 보고서 템플릿의 열 배치: H열에 문항, J열에 평균 점수.
const (
	templateQuestionColumn = "H"
	templateScoreColumn    = "J"
)

// SimilarityFunc 는 두 문항 텍스트의 유사도를 [0,1]로 반환한다.
type SimilarityFunc func(a, b string) float64

// TemplateMapping 는 템플릿 행과 설문 문항의 대응이다.
type TemplateMapping struct {
	Row              int     `json:"row"`
	TemplateQuestion string  `json:"template_question"`
	MatchedQuestion  string  `json:"matched_question,omitempty"`
	Score            float64 `json:"score,omitempty"`
	Mean             float64 `json:"mean,omitempty"`
	Matched          bool    `json:"matched"`
}

// FillTemplate 는 보고서 템플릿의 문항 행마다 가장 비슷한 설문 문항을
// 찾아 평균 점수를 채운다. 유사도가 기준에 못 미치면 건너뛴다.
func FillTemplate(templatePath, outPath string, stats []survey.ColumnStats, ratio SimilarityFunc) ([]TemplateMapping, error) {
	book, err := excelize.OpenFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("open template %s: %w", templatePath, err)
	}
	defer book.Close()

	sheet := book.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("template %s has no sheets", templatePath)
	}

	rows, err := book.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read template rows: %w", err)
	}

	questionCol, _ := excelize.ColumnNameToNumber(templateQuestionColumn)
	var mappings []TemplateMapping
	for rowIdx, row := range rows {
		if questionCol > len(row) {
			continue
		}
		templateQuestion := row[questionCol-1]
		if qualitative.CompareKey(templateQuestion) == "" {
			continue
		}

		mapping := TemplateMapping{Row: rowIdx + 1, TemplateQuestion: templateQuestion}
		if match, score, ok := bestMatch(templateQuestion, stats, ratio); ok {
			mapping.Matched = true
			mapping.MatchedQuestion = match.Question
			mapping.Score = score
			mapping.Mean = match.Mean

			cell := fmt.Sprintf("%s%d", templateScoreColumn, rowIdx+1)
			if err := book.SetCellValue(sheet, cell, match.Mean); err != nil {
				return nil, fmt.Errorf("set %s: %w", cell, err)
			}
		}
		mappings = append(mappings, mapping)
	}

	if err := book.SaveAs(outPath); err != nil {
		return nil, fmt.Errorf("save %s: %w", outPath, err)
	}
	return mappings, nil
}

func bestMatch(question string, stats []survey.ColumnStats, ratio SimilarityFunc) (survey.ColumnStats, float64, bool) {
	key := qualitative.CompareKey(question)

	var best survey.ColumnStats
	bestScore := 0.0
	found := false
	for _, candidate := range stats {
		score := ratio(key, qualitative.CompareKey(candidate.Question))
		if score > bestScore {
			best = candidate
			bestScore = score
			found = true
		}
	}
	if !found || bestScore < templateMatchFloor {
		return survey.ColumnStats{}, 0, false
	}
	return best, bestScore, true
}
