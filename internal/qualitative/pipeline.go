package qualitative

import (
	"sort"
	"strings"
)

// Pipeline 는 전처리와 그룹화를 묶은 실행 단위다.
// 규칙 테이블 하나로부터 만들어지며 상태가 없어 동시 사용이 안전하다.
type Pipeline struct {
	rules      *Rules
	normalizer *Normalizer
	splitter   *Splitter
	classifier *Classifier
	engine     *Engine
	policy     *MergePolicy
	selector   *Selector
	grouper    *Grouper
}

// NewPipeline 는 규칙 테이블로 파이프라인을 조립한다.
func NewPipeline(rules *Rules) *Pipeline {
	normalizer := NewNormalizer(rules)
	splitter := NewSplitter(rules)
	classifier := NewClassifier(rules)
	engine := NewEngine(rules)
	policy := NewMergePolicy(rules, engine, classifier)
	selector := NewSelector(rules, engine)
	grouper := NewGrouper(classifier, policy, selector)

	return &Pipeline{
		rules:      rules,
		normalizer: normalizer,
		splitter:   splitter,
		classifier: classifier,
		engine:     engine,
		policy:     policy,
		selector:   selector,
		grouper:    grouper,
	}
}

// Rules 는 파이프라인이 사용하는 규칙 테이블을 반환한다.
func (p *Pipeline) Rules() *Rules { return p.rules }

// Threshold 는 기본 병합 임계값을 반환한다.
func (p *Pipeline) Threshold() float64 { return p.rules.Threshold }

// Preprocess 는 위생 처리 → 무의미 제거 → 표기 정규화 → 복합 분리를
// 수행하고 살아남은 응답과 집계를 반환한다. 분리는 정규화된 문장을
// 대상으로 해야 오타에 가려진 연결 어미도 잡힌다.
func (p *Pipeline) Preprocess(answers []string) ([]string, PreprocessStats) {
	stats := PreprocessStats{Original: len(answers)}
	kept := make([]string, 0, len(answers))

	for _, answer := range answers {
		cleaned := strings.TrimSpace(cleanText(answer))
		if cleaned == "" || p.normalizer.IsMeaningless(cleaned) {
			stats.Removed++
			continue
		}

		fragments := p.splitter.Split(p.normalizer.Normalize(cleaned))
		if len(fragments) > 1 {
			stats.Split += len(fragments) - 1
		}

		survived := 0
		for _, fragment := range fragments {
			normalized := p.normalizer.Normalize(fragment)
			if normalized == "" || p.normalizer.IsMeaningless(normalized) {
				continue
			}
			kept = append(kept, normalized)
			survived++
		}
		if survived == 0 {
			stats.Removed++
		}
	}

	stats.Final = len(kept)
	return kept, stats
}

// Run 는 전체 파이프라인을 실행한다. threshold <= 0 이면 규칙 테이블의
// 기본 임계값을 쓴다. 오류 없이 항상 결과를 반환한다.
func (p *Pipeline) Run(answers []string, threshold float64) Result {
	if threshold <= 0 {
		threshold = p.rules.Threshold
	}

	preprocessed, stats := p.Preprocess(answers)
	clusters := p.grouper.Group(preprocessed, threshold)
	return Result{Stats: stats, Clusters: clusters}
}

// PreviewEntry 는 정규화 미리보기 한 건이다.
type PreviewEntry struct {
	Original    string   `json:"original"`
	Normalized  []string `json:"normalized"`
	Meaningless bool     `json:"meaningless"`
	Topics      []string `json:"topics,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// Preview 는 그룹화 없이 전처리 결과만 보여준다.
func (p *Pipeline) Preview(answers []string) []PreviewEntry {
	entries := make([]PreviewEntry, 0, len(answers))
	for _, answer := range answers {
		entry := PreviewEntry{Original: answer}

		cleaned := strings.TrimSpace(cleanText(answer))
		if cleaned == "" || p.normalizer.IsMeaningless(cleaned) {
			entry.Meaningless = true
			entries = append(entries, entry)
			continue
		}

		for _, fragment := range p.splitter.Split(p.normalizer.Normalize(cleaned)) {
			normalized := p.normalizer.Normalize(fragment)
			if normalized == "" || p.normalizer.IsMeaningless(normalized) {
				continue
			}
			entry.Normalized = append(entry.Normalized, normalized)
			entry.Topics = appendUnique(entry.Topics, p.classifier.Topics(normalized))
			entry.Keywords = appendUnique(entry.Keywords, keywordList(p.engine.Keywords(normalized)))
		}
		if len(entry.Normalized) == 0 {
			entry.Meaningless = true
		}
		entries = append(entries, entry)
	}
	return entries
}

func appendUnique(dst []string, values []string) []string {
	for _, value := range values {
		found := false
		for _, existing := range dst {
			if existing == value {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, value)
		}
	}
	return dst
}

func keywordList(set map[string]struct{}) []string {
	list := make([]string, 0, len(set))
	for token := range set {
		list = append(list, token)
	}
	sort.Strings(list)
	return list
}
