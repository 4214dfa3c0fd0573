package qualitative

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

var keywordStripRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// Engine 는 두 응답의 유사도를 계산한다.
// 점수 = 0.6 * 키워드 자카드 + 0.4 * 문자열 시퀀스 비율.
type Engine struct {
	rules *Rules
	dmp   *diffmatchpatch.DiffMatchPatch
}

// NewEngine 는 Engine을 생성한다.
func NewEngine(rules *Rules) *Engine {
	dmp := diffmatchpatch.New()
	// 타임아웃이 걸리면 입력 순서에 따라 결과가 달라질 수 있어 비활성화한다.
	dmp.DiffTimeout = 0
	return &Engine{rules: rules, dmp: dmp}
}

// Keywords 는 응답에서 핵심 토큰 집합을 추출한다. 소문자화 후 기호를
// 공백으로 치환하고, 두 글자 이상이면서 불용어가 아닌 토큰만 남긴다.
func (e *Engine) Keywords(text string) map[string]struct{} {
	cleaned := keywordStripRe.ReplaceAllString(strings.ToLower(text), " ")
	keywords := make(map[string]struct{})
	for _, token := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(token) < 2 {
			continue
		}
		if _, stop := e.rules.stopwords[token]; stop {
			continue
		}
		keywords[token] = struct{}{}
	}
	return keywords
}

// Similarity 는 [0,1] 범위의 유사도를 반환한다. 비교 키가 같으면 1.0,
// 어느 한쪽의 키워드가 비어 있으면 0.0.
func (e *Engine) Similarity(a, b string) float64 {
	if CompareKey(a) == CompareKey(b) {
		return 1.0
	}

	keywordsA := e.Keywords(a)
	keywordsB := e.Keywords(b)
	if len(keywordsA) == 0 || len(keywordsB) == 0 {
		return 0.0
	}

	jaccard := jaccardIndex(keywordsA, keywordsB)
	sequence := e.SequenceRatio(a, b)
	return 0.6*jaccard + 0.4*sequence
}

// SequenceRatio 는 두 문자열의 공통 부분 비율을 반환한다. 비교 전에
// 소문자화하고 기호를 제거해 구두점 차이가 점수를 흔들지 못하게 한다.
// ratio = 2 * (일치 룬 수) / (전체 룬 수). 둘 다 빈 문자열이면 1.0.
func (e *Engine) SequenceRatio(a, b string) float64 {
	a = CompareKey(a)
	b = CompareKey(b)
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 1.0
	}

	equal := 0
	for _, diff := range e.dmp.DiffMain(a, b, false) {
		if diff.Type == diffmatchpatch.DiffEqual {
			equal += utf8.RuneCountInString(diff.Text)
		}
	}
	return 2.0 * float64(equal) / float64(total)
}

func jaccardIndex(a, b map[string]struct{}) float64 {
	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}
