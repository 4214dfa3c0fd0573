package qualitative

import (
	"sort"
	"strings"
)

// Classifier 는 응답이 어떤 주제 그룹에 속하는지 판정한다.
// 전체 키워드를 하나의 Aho-Corasick 오토마타로 만들어 한 번의 스캔으로
// 모든 주제를 찾는다.
type Classifier struct {
	rules *Rules
}

// NewClassifier 는 Classifier를 생성한다.
func NewClassifier(rules *Rules) *Classifier {
	return &Classifier{rules: rules}
}

// TopicIndexes 는 매칭된 주제의 테이블 정의 순서 인덱스를 오름차순으로 반환한다.
func (c *Classifier) TopicIndexes(text string) []int {
	hits := c.rules.topicMatcher.MatchThreadSafe([]byte(strings.ToLower(text)))
	if len(hits) == 0 {
		return nil
	}

	seen := make(map[int]struct{}, len(hits))
	indexes := make([]int, 0, len(hits))
	for _, hit := range hits {
		topicIdx := c.rules.topicByPhrase[hit]
		if _, ok := seen[topicIdx]; ok {
			continue
		}
		seen[topicIdx] = struct{}{}
		indexes = append(indexes, topicIdx)
	}
	sort.Ints(indexes)
	return indexes
}

// Topics 는 매칭된 주제 이름을 테이블 정의 순서로 반환한다.
func (c *Classifier) Topics(text string) []string {
	indexes := c.TopicIndexes(text)
	names := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		names = append(names, c.rules.topics[idx].Name)
	}
	return names
}

// topicsIntersect 는 정렬된 두 주제 인덱스 목록의 교집합 여부를 판정한다.
func topicsIntersect(a, b []int) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			return true
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return false
}
