package qualitative

import "testing"

func TestClassifierTopics(t *testing.T) {
	classifier := NewClassifier(testRules(t))

	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"단일 주제", "강사님의 설명이 좋았음", []string{"강사_진행"}},
		{"복수 주제는 테이블 순서", "팀워크와 소통을 배웠음", []string{"소통_대화", "협업_팀워크"}},
		{"대소문자 무시", "MBTI 검사가 유익했음", []string{"MBTI_성격"}},
		{"주제 없음", "점심이 맛있었음", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifier.Topics(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("Topics(%q) = %v, want %v", tc.input, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("Topics(%q)[%d] = %q, want %q", tc.input, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestTopicsIntersect(t *testing.T) {
	cases := []struct {
		a, b []int
		want bool
	}{
		{[]int{0, 2}, []int{2, 5}, true},
		{[]int{0, 1}, []int{2, 3}, false},
		{nil, []int{1}, false},
		{nil, nil, false},
	}
	for _, tc := range cases {
		if got := topicsIntersect(tc.a, tc.b); got != tc.want {
			t.Fatalf("topicsIntersect(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
