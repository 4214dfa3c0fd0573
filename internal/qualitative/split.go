package qualitative

import "strings"

// Splitter 는 서로 다른 평가 대상이 섞인 복합 응답을 분리한다.
// 분리 신호가 없으면 입력을 그대로 한 건으로 돌려준다.
type Splitter struct {
	rules *Rules
}

// NewSplitter 는 Splitter를 생성한다.
func NewSplitter(rules *Rules) *Splitter {
	return &Splitter{rules: rules}
}

// Split 는 응답을 최대 두 조각으로 나눈다.
//
// 패턴 1: 과거형 연결 어미 뒤에 명백히 다른 평가 대상이 나오는 경우.
// 앞 조각은 연결 어미를 종결형으로 바꿔 닫고("했고" → "했음"),
// 뒤 조각은 평가 대상부터 시작한다.
//
// 패턴 2: 긍정 평가 뒤에 나열 접속사("또한", "그리고")가 오는 경우.
// 접속사를 버리고 그 뒤를 두 번째 조각으로 삼는다.
func (s *Splitter) Split(text string) []string {
	if s.rules.splitDetect.MatchString(text) {
		if parts := s.cutAtConnective(text); parts != nil {
			return parts
		}
	}
	if s.rules.splitLead != nil && s.rules.splitLead.MatchString(text) {
		if parts := s.cutAtEnumerator(text); parts != nil {
			return parts
		}
	}
	return []string{text}
}

func (s *Splitter) cutAtConnective(text string) []string {
	match := s.rules.splitCut.FindStringSubmatchIndex(text)
	if match == nil {
		return nil
	}

	connective := text[match[2]:match[3]]
	first := text[:match[2]] + strings.ReplaceAll(connective, "고", "음")
	second := text[match[4]:]

	return packFragments(first, second)
}

func (s *Splitter) cutAtEnumerator(text string) []string {
	match := s.rules.enumCut.FindStringSubmatchIndex(text)
	if match == nil {
		return nil
	}

	lead := text[match[2]:match[3]]
	first := text[:match[2]] + strings.ReplaceAll(lead, "고", "음")
	second := text[match[1]:]

	return packFragments(first, second)
}

func packFragments(first, second string) []string {
	first = strings.TrimSpace(first)
	second = strings.TrimSpace(second)
	if first == "" || second == "" {
		return nil
	}
	return []string{first, second}
}
