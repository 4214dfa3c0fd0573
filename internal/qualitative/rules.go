package qualitative

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// rawTables 는 규칙 YAML 파싱용 중간 구조체다.
type rawTables struct {
	Version      int             `yaml:"version"`
	Threshold    float64         `yaml:"threshold"`
	Meaningless  []string        `yaml:"meaningless"`
	Typos        []rawRewrite    `yaml:"typos"`
	Spacing      []rawRewrite    `yaml:"spacing"`
	Endings      []rawRewrite    `yaml:"endings"`
	MidEndings   []rawRewrite    `yaml:"mid_endings"`
	Split        rawSplit        `yaml:"split"`
	Topics       []rawTopicGroup `yaml:"topics"`
	Synonyms     [][]string      `yaml:"synonyms"`
	Stopwords    []string        `yaml:"stopwords"`
	Concreteness []string        `yaml:"concreteness"`
}

type rawRewrite struct {
	Pattern string `yaml:"pattern"`
	Repl    string `yaml:"repl"`
}

type rawSplit struct {
	Connectives    []string `yaml:"connectives"`
	CutConnectives []string `yaml:"cut_connectives"`
	Subjects       []string `yaml:"subjects"`
	PositiveLeads  []string `yaml:"positive_leads"`
	Enumerators    []string `yaml:"enumerators"`
}

type rawTopicGroup struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// rewriteRule 는 컴파일된 치환 규칙이다.
type rewriteRule struct {
	pattern *regexp.Regexp
	repl    string
}

// TopicGroup 는 주제 하나의 키워드 목록이다.
type TopicGroup struct {
	Name     string
	Keywords []string
}

// Rules 는 컴파일된 통합 규칙 테이블 전체다.
// 프로세스 시작 시 한 번 로드되며 이후 변경되지 않는다.
type Rules struct {
	Threshold float64

	meaningless []*regexp.Regexp
	typos       []rewriteRule
	spacing     []rewriteRule
	endings     []rewriteRule
	midEndings  []rewriteRule

	// 복합 응답 분리 신호
	splitDetect *regexp.Regexp // 연결 어미 + 평가 대상 감지
	splitLead   *regexp.Regexp // 긍정 평가 + 나열 접속사 감지
	splitCut    *regexp.Regexp // 실제 분리 지점 (그룹 1=연결 어미, 2=대상)
	enumCut     *regexp.Regexp // 나열 접속사 분리 지점 (그룹 1=선행절 어미)

	topics        []TopicGroup
	topicMatcher  *ahocorasick.Matcher
	topicByPhrase []int // matcher 인덱스 -> topics 인덱스

	synonyms     [][]string // 소문자 정규화 완료
	stopwords    map[string]struct{}
	concreteness []string
}

func compileTables(raw rawTables) (*Rules, error) {
	if raw.Threshold <= 0 || raw.Threshold > 1 {
		raw.Threshold = 0.4
	}

	rules := &Rules{
		Threshold:    raw.Threshold,
		stopwords:    make(map[string]struct{}, len(raw.Stopwords)),
		concreteness: raw.Concreteness,
	}

	for _, pattern := range raw.Meaningless {
		compiled, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, fmt.Errorf("meaningless pattern %q: %w", pattern, err)
		}
		rules.meaningless = append(rules.meaningless, compiled)
	}

	var err error
	if rules.typos, err = compileRewrites(raw.Typos); err != nil {
		return nil, fmt.Errorf("typos: %w", err)
	}
	if rules.spacing, err = compileRewrites(raw.Spacing); err != nil {
		return nil, fmt.Errorf("spacing: %w", err)
	}
	if rules.endings, err = compileRewrites(raw.Endings); err != nil {
		return nil, fmt.Errorf("endings: %w", err)
	}
	if rules.midEndings, err = compileRewrites(raw.MidEndings); err != nil {
		return nil, fmt.Errorf("mid_endings: %w", err)
	}

	if err := rules.compileSplit(raw.Split); err != nil {
		return nil, err
	}
	if err := rules.compileTopics(raw.Topics); err != nil {
		return nil, err
	}

	for _, group := range raw.Synonyms {
		if len(group) < 2 {
			continue
		}
		lowered := make([]string, 0, len(group))
		for _, synonym := range group {
			lowered = append(lowered, strings.ToLower(synonym))
		}
		rules.synonyms = append(rules.synonyms, lowered)
	}

	for _, word := range raw.Stopwords {
		rules.stopwords[word] = struct{}{}
	}

	return rules, nil
}

func compileRewrites(raws []rawRewrite) ([]rewriteRule, error) {
	compiled := make([]rewriteRule, 0, len(raws))
	for _, raw := range raws {
		pattern, err := regexp.Compile(raw.Pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", raw.Pattern, err)
		}
		compiled = append(compiled, rewriteRule{pattern: pattern, repl: raw.Repl})
	}
	return compiled, nil
}

func (r *Rules) compileSplit(raw rawSplit) error {
	if len(raw.Connectives) == 0 || len(raw.Subjects) == 0 {
		return fmt.Errorf("split rules incomplete")
	}

	alternation := func(items []string) string {
		quoted := make([]string, 0, len(items))
		for _, item := range items {
			quoted = append(quoted, regexp.QuoteMeta(item))
		}
		return strings.Join(quoted, "|")
	}

	var err error
	r.splitDetect, err = regexp.Compile(
		"(" + alternation(raw.Connectives) + ")[,\\s]+(" + alternation(raw.Subjects) + ")",
	)
	if err != nil {
		return fmt.Errorf("split detect: %w", err)
	}

	cut := raw.CutConnectives
	if len(cut) == 0 {
		cut = raw.Connectives
	}
	r.splitCut, err = regexp.Compile(
		"(" + alternation(cut) + ")[,\\s]+(" + alternation(raw.Subjects) + ")",
	)
	if err != nil {
		return fmt.Errorf("split cut: %w", err)
	}

	if len(raw.PositiveLeads) > 0 && len(raw.Enumerators) > 0 {
		r.splitLead, err = regexp.Compile(
			"(" + alternation(raw.PositiveLeads) + ")[,\\s]+(" + alternation(raw.Enumerators) + ")",
		)
		if err != nil {
			return fmt.Errorf("split lead: %w", err)
		}
		r.enumCut, err = regexp.Compile(
			"(" + alternation(raw.PositiveLeads) + ")[,.\\s]+(?:" + alternation(raw.Enumerators) + ")\\s*",
		)
		if err != nil {
			return fmt.Errorf("enum cut: %w", err)
		}
	}

	return nil
}

func (r *Rules) compileTopics(raws []rawTopicGroup) error {
	if len(raws) == 0 {
		return fmt.Errorf("no topic groups")
	}

	var phrases [][]byte
	for topicIdx, raw := range raws {
		if raw.Name == "" || len(raw.Keywords) == 0 {
			return fmt.Errorf("invalid topic group at index %d", topicIdx)
		}
		r.topics = append(r.topics, TopicGroup{Name: raw.Name, Keywords: raw.Keywords})
		for _, keyword := range raw.Keywords {
			phrases = append(phrases, []byte(strings.ToLower(keyword)))
			r.topicByPhrase = append(r.topicByPhrase, topicIdx)
		}
	}
	r.topicMatcher = ahocorasick.NewMatcher(phrases)
	return nil
}

// TopicNames 는 테이블에 정의된 주제 이름을 정의 순서대로 반환한다.
func (r *Rules) TopicNames() []string {
	names := make([]string, 0, len(r.topics))
	for _, group := range r.topics {
		names = append(names, group.Name)
	}
	return names
}

// Summary 는 로드된 테이블 규모를 반환한다. (헬스 체크용)
func (r *Rules) Summary() map[string]int {
	return map[string]int{
		"meaningless":  len(r.meaningless),
		"typos":        len(r.typos),
		"spacing":      len(r.spacing),
		"endings":      len(r.endings),
		"mid_endings":  len(r.midEndings),
		"topics":       len(r.topics),
		"synonyms":     len(r.synonyms),
		"stopwords":    len(r.stopwords),
		"concreteness": len(r.concreteness),
	}
}
