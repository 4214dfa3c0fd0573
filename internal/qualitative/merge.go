package qualitative

import "strings"

// MergePolicy 는 두 응답을 같은 의견으로 합칠지 결정한다.
// 규칙은 우선순위가 있으며 위에서부터 먼저 맞는 것이 이긴다.
type MergePolicy struct {
	rules      *Rules
	engine     *Engine
	classifier *Classifier
}

// NewMergePolicy 는 MergePolicy를 생성한다.
func NewMergePolicy(rules *Rules, engine *Engine, classifier *Classifier) *MergePolicy {
	return &MergePolicy{rules: rules, engine: engine, classifier: classifier}
}

// ShouldMerge 는 병합 여부를 판정한다.
//
//  1. 같은 동의어 그룹의 표현을 양쪽 모두 포함하면 병합.
//  2. 짧은 응답이 긴 응답에 통째로 포함되거나, 짧은 응답의 키워드가
//     모두 상대 응답에 들어 있으면 병합.
//  3. 유사도 >= 임계값이면 병합. 주제가 겹치면 임계값을 0.25까지 낮춘다.
//  4. 공유 키워드가 1개 이상이고 주제가 겹치면 병합.
//  5. 공유 키워드가 2개 이상이면 병합.
func (p *MergePolicy) ShouldMerge(a, b string, threshold float64) bool {
	aLower := strings.ToLower(a)
	bLower := strings.ToLower(b)

	for _, group := range p.rules.synonyms {
		if containsAny(aLower, group) && containsAny(bLower, group) {
			return true
		}
	}

	keywordsA := p.engine.Keywords(a)
	keywordsB := p.engine.Keywords(b)

	keyA := CompareKey(a)
	keyB := CompareKey(b)
	if keyA != "" && keyB != "" {
		if isShort(a) && (strings.Contains(keyB, keyA) || keywordSubset(keywordsA, keywordsB)) {
			return true
		}
		if isShort(b) && (strings.Contains(keyA, keyB) || keywordSubset(keywordsB, keywordsA)) {
			return true
		}
	}

	topicsA := p.classifier.TopicIndexes(a)
	topicsB := p.classifier.TopicIndexes(b)
	sameTopic := topicsIntersect(topicsA, topicsB)

	effective := threshold
	if sameTopic && effective > 0.25 {
		effective = 0.25
	}
	if p.engine.Similarity(a, b) >= effective {
		return true
	}

	shared := sharedKeywordCount(keywordsA, keywordsB)
	if shared >= 1 && sameTopic {
		return true
	}
	return shared >= 2
}

func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

// keywordSubset 는 sub의 키워드가 모두 super에 포함되는지 판정한다.
// sub가 비어 있으면 false.
func keywordSubset(sub, super map[string]struct{}) bool {
	if len(sub) == 0 {
		return false
	}
	for token := range sub {
		if _, ok := super[token]; !ok {
			return false
		}
	}
	return true
}

func sharedKeywordCount(a, b map[string]struct{}) int {
	count := 0
	for token := range a {
		if _, ok := b[token]; ok {
			count++
		}
	}
	return count
}
