package qualitative

import "testing"

func newTestSelector(t *testing.T) *Selector {
	t.Helper()
	rules := testRules(t)
	return NewSelector(rules, NewEngine(rules))
}

func TestSelect(t *testing.T) {
	selector := newTestSelector(t)

	t.Run("정보량 많은 문장 우선", func(t *testing.T) {
		got := selector.Select([]string{
			"좋았음",
			"실습을 통해 많은 것을 배울 수 있었음",
		})
		if got != "실습을 통해 많은 것을 배울 수 있었음" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("동점이면 먼저 나온 문장", func(t *testing.T) {
		got := selector.Select([]string{"소통이 중요함", "소통이 중요함"})
		if got != "소통이 중요함" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("빈 목록", func(t *testing.T) {
		if got := selector.Select(nil); got != "" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestScore(t *testing.T) {
	selector := newTestSelector(t)

	// 명사형 어미로 닫힌 문장이 평서형보다 높은 점수를 받는다.
	nominal := selector.Score("소통하는 방법을 배웠음")
	plain := selector.Score("소통하는 방법을 배웠다")
	if nominal <= plain {
		t.Fatalf("nominal %d <= plain %d", nominal, plain)
	}

	// 구체적 표현이 있으면 가점.
	concrete := selector.Score("실습을 통해 소통하는 방법을 배웠음")
	abstract := selector.Score("실습으로 소통하는 방법을 배웠음")
	if concrete <= abstract {
		t.Fatalf("concrete %d <= abstract %d", concrete, abstract)
	}
}

func TestHasNominalEnding(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"소통이 중요함", true},
		{"도움이 많이 됐음", true},
		{"인상 깊은 경험이었다", false},
		{"좋겠음", true},
		{"", false},
	}
	for _, tc := range cases {
		if got := hasNominalEnding(tc.input); got != tc.want {
			t.Fatalf("hasNominalEnding(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
