package qualitative

import (
	"strings"
	"unicode/utf8"
)

// Selector 는 병합된 그룹에서 대표 문장을 고른다.
// 정보량이 많고 명사형으로 닫힌 문장을 우대한다.
type Selector struct {
	rules  *Rules
	engine *Engine
}

// NewSelector 는 Selector를 생성한다.
func NewSelector(rules *Rules, engine *Engine) *Selector {
	return &Selector{rules: rules, engine: engine}
}

// Select 는 후보 중 점수가 가장 높은 문장을 반환한다.
// 동점이면 먼저 나온 문장이 이긴다. 빈 목록이면 빈 문자열.
func (s *Selector) Select(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}

	best := candidates[0]
	bestScore := s.Score(candidates[0])
	for _, candidate := range candidates[1:] {
		score := s.Score(candidate)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	return best
}

// Score 는 대표 적합도 점수를 계산한다.
func (s *Selector) Score(text string) int {
	score := 0

	length := utf8.RuneCountInString(text)
	switch {
	case length >= 10 && length <= 100:
		score += 30
	case length > 100:
		score += 20
	case length >= 5:
		score += 10
	}

	score += 5 * len(s.engine.Keywords(text))

	if hasNominalEnding(text) {
		score += 10
	}

	for _, marker := range s.rules.concreteness {
		if strings.Contains(text, marker) {
			score += 5
		}
	}

	return score
}

// hasNominalEnding 는 마지막 글자가 명사형 어미(음/함/됨/임)인지 확인한다.
func hasNominalEnding(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(trimmed)
	switch last {
	case '음', '함', '됨', '임':
		return true
	}
	return false
}
