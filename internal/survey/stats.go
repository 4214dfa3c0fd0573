package survey

import (
	"strconv"
	"strings"
)

// numericShareFloor: 통계 대상으로 삼는 숫자 값 비율 하한.
const numericShareFloor = 0.8

// ColumnStats 는 객관식(숫자) 문항 하나의 기초 통계다.
type ColumnStats struct {
	Question string  `json:"question"`
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// NumericStats 는 숫자 비율이 충분한 열의 통계를 계산한다.
// 리커트 문구 열도 점수로 환산해 포함한다.
func NumericStats(table *Table) []ColumnStats {
	var stats []ColumnStats
	for idx, header := range table.Header {
		values := NonEmpty(table.Column(idx))
		if len(values) == 0 {
			continue
		}

		numbers := make([]float64, 0, len(values))
		for _, value := range values {
			if number, ok := parseNumeric(value); ok {
				numbers = append(numbers, number)
			}
		}
		if float64(len(numbers)) < numericShareFloor*float64(len(values)) {
			continue
		}

		stats = append(stats, summarize(header, numbers))
	}
	return stats
}

func parseNumeric(value string) (float64, bool) {
	trimmed := strings.TrimSpace(value)
	if number, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return number, true
	}
	if score, ok := LikertScore(trimmed); ok {
		return float64(score), true
	}
	return 0, false
}

func summarize(question string, numbers []float64) ColumnStats {
	stats := ColumnStats{
		Question: question,
		Count:    len(numbers),
		Min:      numbers[0],
		Max:      numbers[0],
	}

	sum := 0.0
	for _, number := range numbers {
		sum += number
		if number < stats.Min {
			stats.Min = number
		}
		if number > stats.Max {
			stats.Max = number
		}
	}
	stats.Mean = sum / float64(len(numbers))
	return stats
}
