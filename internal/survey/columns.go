package survey

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ColumnKind 는 열의 응답 유형이다.
type ColumnKind string

const (
	KindEmpty       ColumnKind = "empty"
	KindMeta        ColumnKind = "meta"
	KindNumeric     ColumnKind = "numeric"
	KindLikert      ColumnKind = "likert"
	KindQualitative ColumnKind = "qualitative"
)

// metaHeaderMarkers: 응답이 아닌 메타데이터 열의 헤더 표식.
var metaHeaderMarkers = []string{"타임스탬프", "timestamp", "소속", "이름", "성명"}

// ClassifyColumn 는 헤더와 값들로 열 유형을 판정한다.
func ClassifyColumn(header string, values []string) ColumnKind {
	headerLower := strings.ToLower(strings.TrimSpace(header))
	for _, marker := range metaHeaderMarkers {
		if strings.Contains(headerLower, marker) {
			return KindMeta
		}
	}

	nonEmpty := NonEmpty(values)
	if len(nonEmpty) == 0 {
		return KindEmpty
	}
	if allNumeric(nonEmpty) {
		return KindNumeric
	}
	if IsLikertColumn(nonEmpty) {
		return KindLikert
	}
	if meanRuneLength(nonEmpty) > 2 {
		return KindQualitative
	}
	return KindEmpty
}

// QualitativeColumns 는 주관식 열의 인덱스를 순서대로 반환한다.
func QualitativeColumns(table *Table) []int {
	var indexes []int
	for idx, header := range table.Header {
		if ClassifyColumn(header, table.Column(idx)) == KindQualitative {
			indexes = append(indexes, idx)
		}
	}
	return indexes
}

func allNumeric(values []string) bool {
	for _, value := range values {
		if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
			return false
		}
	}
	return true
}

func meanRuneLength(values []string) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0
	for _, value := range values {
		total += utf8.RuneCountInString(strings.TrimSpace(value))
	}
	return float64(total) / float64(len(values))
}
