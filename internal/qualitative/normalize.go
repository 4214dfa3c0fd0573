package qualitative

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	multiSpaceRe = regexp.MustCompile(`\s+`)
	compareRe    = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
)

// shortRuneLimit: 공백 제거 기준 "짧은 응답" 길이 상한
const shortRuneLimit = 15

// Normalizer 는 응답 한 건을 정규화한다. 규칙 테이블 순서대로
// 오타 → 띄어쓰기 → 문장 중간 어미 → 문장 끝 어미를 적용한다.
type Normalizer struct {
	rules *Rules
}

// NewNormalizer 는 Normalizer를 생성한다.
func NewNormalizer(rules *Rules) *Normalizer {
	return &Normalizer{rules: rules}
}

// IsMeaningless 는 위생 처리된 응답이 무의미 패턴에 해당하는지 판정한다.
func (n *Normalizer) IsMeaningless(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return true
	}
	for _, pattern := range n.rules.meaningless {
		if pattern.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// Normalize 는 표기 정규화 전체를 수행한다. 입력이 무엇이든 항상 결과를
// 반환하며 멱등하다: Normalize(Normalize(x)) == Normalize(x).
func (n *Normalizer) Normalize(text string) string {
	result := strings.TrimSpace(text)

	for _, rule := range n.rules.typos {
		result = rule.pattern.ReplaceAllString(result, rule.repl)
	}
	for _, rule := range n.rules.spacing {
		result = rule.pattern.ReplaceAllString(result, rule.repl)
	}

	// 문장 중간 어미를 먼저 통일해야 끝 어미 규칙이 마지막 문장에만 걸린다.
	for _, rule := range n.rules.midEndings {
		result = rule.pattern.ReplaceAllString(result, rule.repl)
	}
	for _, rule := range n.rules.endings {
		result = rule.pattern.ReplaceAllString(result, rule.repl)
	}

	result = strings.TrimSuffix(result, ".")
	result = multiSpaceRe.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// CompareKey 는 동일 여부 판단용 키를 만든다. 소문자화 후
// 문자/숫자/밑줄/공백 외 기호를 제거하고 공백을 단일화한다.
func CompareKey(text string) string {
	key := strings.ToLower(strings.TrimSpace(text))
	key = compareRe.ReplaceAllString(key, "")
	key = multiSpaceRe.ReplaceAllString(key, " ")
	return strings.TrimSpace(key)
}

// isShort 는 공백을 뺀 길이가 짧은 응답인지 판정한다.
func isShort(text string) bool {
	stripped := strings.Join(strings.Fields(text), "")
	return utf8.RuneCountInString(stripped) <= shortRuneLimit
}
