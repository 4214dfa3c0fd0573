package qualitative

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// secondPassTighten: 2차 병합 때 임계값에 더해지는 보정치.
// 대표 문장끼리의 비교는 더 보수적으로 본다.
const secondPassTighten = 0.1

// Grouper 는 전처리된 응답들을 의견 그룹으로 묶는다.
type Grouper struct {
	classifier *Classifier
	policy     *MergePolicy
	selector   *Selector
}

// NewGrouper 는 Grouper를 생성한다.
func NewGrouper(classifier *Classifier, policy *MergePolicy, selector *Selector) *Grouper {
	return &Grouper{classifier: classifier, policy: policy, selector: selector}
}

// Group 는 응답을 통합한다. 문자열이 완전히 같은 응답을 먼저 접고,
// 주제 버킷 안에서 씨앗 중심으로 1차 병합한 뒤, 대표 문장끼리
// 한 번 더 비교해 그룹 단위로 2차 병합한다.
//
// 모든 고유 응답은 정확히 하나의 그룹에 속한다:
// sum(Count) == 고유 응답 수.
func (g *Grouper) Group(answers []string, threshold float64) []ClusterResult {
	unique := dedupeExact(answers)
	if len(unique) == 0 {
		return []ClusterResult{}
	}

	groups := g.firstPass(unique, threshold)
	groups = g.secondPass(unique, groups, threshold)

	results := make([]ClusterResult, 0, len(groups))
	for _, members := range groups {
		sources := make([]string, 0, len(members))
		for _, idx := range members {
			sources = append(sources, unique[idx])
		}
		representative := g.selector.Select(sources)
		results = append(results, ClusterResult{
			Representative: representative,
			Display:        formatDisplay(representative, len(sources)),
			Count:          len(sources),
			Sources:        sources,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return utf8.RuneCountInString(results[i].Representative) >
			utf8.RuneCountInString(results[j].Representative)
	})
	return results
}

// firstPass 는 주제 버킷별 씨앗 중심 병합이다. 버킷 안에서 아직 묶이지
// 않은 첫 응답이 씨앗이 되고, 뒤따르는 응답은 씨앗과만 비교한다.
func (g *Grouper) firstPass(unique []string, threshold float64) [][]int {
	buckets := g.bucketByTopic(unique)

	used := make([]bool, len(unique))
	var groups [][]int
	for _, bucket := range buckets {
		for seedPos, seedIdx := range bucket {
			if used[seedIdx] {
				continue
			}
			used[seedIdx] = true
			members := []int{seedIdx}
			for _, otherIdx := range bucket[seedPos+1:] {
				if used[otherIdx] {
					continue
				}
				if g.policy.ShouldMerge(unique[seedIdx], unique[otherIdx], threshold) {
					used[otherIdx] = true
					members = append(members, otherIdx)
				}
			}
			groups = append(groups, members)
		}
	}
	return groups
}

// secondPass 는 1차 그룹의 대표 문장끼리 비교해 그룹을 합친다.
// 비교에 쓰는 대표 문장은 합치기 전에 한 번만 계산한다.
func (g *Grouper) secondPass(unique []string, groups [][]int, threshold float64) [][]int {
	if len(groups) < 2 {
		return groups
	}

	representatives := make([]string, len(groups))
	for i, members := range groups {
		candidates := make([]string, 0, len(members))
		for _, idx := range members {
			candidates = append(candidates, unique[idx])
		}
		representatives[i] = g.selector.Select(candidates)
	}

	absorbed := make([]bool, len(groups))
	for i := range groups {
		if absorbed[i] {
			continue
		}
		for j := i + 1; j < len(groups); j++ {
			if absorbed[j] {
				continue
			}
			if g.policy.ShouldMerge(representatives[i], representatives[j], threshold+secondPassTighten) {
				groups[i] = append(groups[i], groups[j]...)
				absorbed[j] = true
			}
		}
	}

	merged := make([][]int, 0, len(groups))
	for i, members := range groups {
		if absorbed[i] {
			continue
		}
		merged = append(merged, members)
	}
	return merged
}

// bucketByTopic 는 응답 인덱스를 매칭된 모든 주제 버킷에 넣는다.
// 여러 주제에 걸친 응답은 모든 버킷에 나타나지만, 1차 병합의 소비
// 표시 덕에 처음 만난 버킷에서만 묶인다. 버킷 순서는 주제가 응답에서
// 처음 등장한 순서이며, 주제 없는 버킷이 마지막이다.
func (g *Grouper) bucketByTopic(unique []string) [][]int {
	bucketOrder := make([]int, 0)
	buckets := make(map[int][]int)
	var untopiced []int

	for idx, answer := range unique {
		topicIdxs := g.classifier.TopicIndexes(answer)
		if len(topicIdxs) == 0 {
			untopiced = append(untopiced, idx)
			continue
		}
		for _, topicIdx := range topicIdxs {
			if _, seen := buckets[topicIdx]; !seen {
				bucketOrder = append(bucketOrder, topicIdx)
			}
			buckets[topicIdx] = append(buckets[topicIdx], idx)
		}
	}

	ordered := make([][]int, 0, len(bucketOrder)+1)
	for _, topicIdx := range bucketOrder {
		ordered = append(ordered, buckets[topicIdx])
	}
	if len(untopiced) > 0 {
		ordered = append(ordered, untopiced)
	}
	return ordered
}

// dedupeExact 는 문자열이 완전히 같은 응답만 접는다. 구두점이나
// 표기가 다른 응답은 별개 변형으로 남아 유사도 병합 단계로 간다.
func dedupeExact(answers []string) []string {
	seen := make(map[string]struct{}, len(answers))
	unique := make([]string, 0, len(answers))
	for _, answer := range answers {
		if answer == "" {
			continue
		}
		if _, ok := seen[answer]; ok {
			continue
		}
		seen[answer] = struct{}{}
		unique = append(unique, answer)
	}
	return unique
}

func formatDisplay(representative string, count int) string {
	if count >= 2 {
		return fmt.Sprintf("%s (공통의견 %d)", representative, count)
	}
	return representative
}
