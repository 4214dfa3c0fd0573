package survey

import (
	"strconv"
	"strings"
)

// likertScale: 리커트 응답 문구와 점수 매핑.
// 부정형이 긍정형을 포함하므로 조회는 정확히 일치로만 한다.
var likertScale = map[string]int{
	"매우 그렇다":    5,
	"그렇다":       4,
	"보통이다":      3,
	"보통":        3,
	"그렇지 않다":    2,
	"매우 그렇지 않다": 1,
	"전혀 그렇지 않다": 1,
}

// LikertScore 는 응답 문구를 점수로 변환한다. 공백을 정리해 비교한다.
func LikertScore(value string) (int, bool) {
	normalized := strings.Join(strings.Fields(value), " ")
	score, ok := likertScale[normalized]
	return score, ok
}

// IsLikertColumn 는 비어 있지 않은 값이 전부 리커트 문구인지 판정한다.
// 값이 하나도 없으면 false.
func IsLikertColumn(values []string) bool {
	found := false
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			continue
		}
		if _, ok := LikertScore(value); !ok {
			return false
		}
		found = true
	}
	return found
}

// ConvertLikert 는 테이블의 리커트 열을 숫자로 바꾸고 바뀐 열 수를 반환한다.
func ConvertLikert(table *Table) int {
	converted := 0
	for idx := range table.Header {
		if !IsLikertColumn(table.Column(idx)) {
			continue
		}
		for _, row := range table.Rows {
			if idx >= len(row) {
				continue
			}
			if score, ok := LikertScore(row[idx]); ok {
				row[idx] = strconv.Itoa(score)
			}
		}
		converted++
	}
	return converted
}
