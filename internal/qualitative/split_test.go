package qualitative

import "testing"

func TestSplit(t *testing.T) {
	splitter := NewSplitter(testRules(t))

	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "연결 어미 뒤 다른 평가 대상",
			input: "운영이 좋았고 강사도 친절했음",
			want:  []string{"운영이 좋았음", "강사도 친절했음"},
		},
		{
			name:  "쉼표가 낀 분리",
			input: "내용이 유익했고, 시설도 쾌적했음",
			want:  []string{"내용이 유익했음", "시설도 쾌적했음"},
		},
		{
			name:  "나열 접속사 분리",
			input: "전체적으로 유익했고 또한 시설이 쾌적했음",
			want:  []string{"전체적으로 유익했음", "시설이 쾌적했음"},
		},
		{
			name:  "분리 신호 없음",
			input: "강사님의 설명이 이해하기 쉬웠음",
			want:  []string{"강사님의 설명이 이해하기 쉬웠음"},
		},
		{
			name:  "연결 어미만 있고 평가 대상 없음",
			input: "재미있었고 유익한 시간이었음",
			want:  []string{"재미있었고 유익한 시간이었음"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := splitter.Split(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("Split(%q) = %v, want %v", tc.input, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("Split(%q)[%d] = %q, want %q", tc.input, i, got[i], tc.want[i])
				}
			}
		})
	}
}
