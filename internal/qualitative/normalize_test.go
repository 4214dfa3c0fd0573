package qualitative

import "testing"

func testRules(t testing.TB) *Rules {
	t.Helper()
	rules, err := DefaultRules()
	if err != nil {
		t.Fatalf("default rules: %v", err)
	}
	return rules
}

func TestNormalize(t *testing.T) {
	normalizer := NewNormalizer(testRules(t))

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"격식체 어미 통일", "강사님이 친절했습니다.", "강사님이 친절했음"},
		{"해요체 어미 통일", "도움이 많이 됐어요", "도움이 많이 됐음"},
		{"오타 교정", "정말 좋앗습니다", "정말 좋았음"},
		{"띄어쓰기 교정", "많은것을 배울수있었습니다", "많은것을 배울수 있었음"},
		{"문장 중간 어미", "수업이 알찼습니다. 강사도 최고였습니다", "수업이 알찼음. 강사도 최고였음"},
		{"마침표 제거", "소통이 중요함.", "소통이 중요함"},
		{"공백 정리", "소통이   중요함", "소통이 중요함"},
		{"빈 입력", "   ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := normalizer.Normalize(tc.input)
			if got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	normalizer := NewNormalizer(testRules(t))

	inputs := []string{
		"강사님이 친절했습니다.",
		"도움이 많이 됐어요",
		"많은것을 배울수있었습니다",
		"mbti 검사가 유익했음",
		"수업이 알찼습니다. 강사도 최고였습니다",
	}
	for _, input := range inputs {
		once := normalizer.Normalize(input)
		twice := normalizer.Normalize(once)
		if once != twice {
			t.Fatalf("not idempotent: %q -> %q -> %q", input, once, twice)
		}
	}
}

func TestIsMeaningless(t *testing.T) {
	normalizer := NewNormalizer(testRules(t))

	cases := []struct {
		input string
		want  bool
	}{
		{"없음", true},
		{"없습니다.", true},
		{"특별히 없음", true},
		{"딱히 없습니다", true},
		{"잘 모르겠습니다", true},
		{"x", true},
		{"X", true},
		{"ㅇ", true},
		{"...", true},
		{"123", true},
		{"좋았습니다", true},
		{"굿", true},
		{"", true},
		{"강사님이 좋았습니다", false},
		{"없는 게 아쉬웠음", false},
		{"소통이 중요함", false},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			if got := normalizer.IsMeaningless(tc.input); got != tc.want {
				t.Fatalf("IsMeaningless(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestCompareKey(t *testing.T) {
	cases := []struct {
		a string
		b string
	}{
		{"소통이 중요함!", "소통이 중요함"},
		{"MBTI 검사", "mbti 검사"},
		{"  소통이   중요함  ", "소통이 중요함"},
	}
	for _, tc := range cases {
		if CompareKey(tc.a) != CompareKey(tc.b) {
			t.Fatalf("CompareKey(%q) != CompareKey(%q): %q vs %q",
				tc.a, tc.b, CompareKey(tc.a), CompareKey(tc.b))
		}
	}
}

func TestIsShort(t *testing.T) {
	if !isShort("스피치 교육") {
		t.Fatalf("expected short")
	}
	if isShort("강사님의 설명이 구체적이어서 이해하기 쉬웠음") {
		t.Fatalf("expected long")
	}
}
