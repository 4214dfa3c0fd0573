package shared

import (
	"testing"
)

func TestDecode(t *testing.T) {
	type Options struct {
		Question  string   `json:"question"`
		Threshold float64  `json:"threshold"`
		MaxGroups int      `json:"max_groups"`
		Topics    []string `json:"topics"`
	}

	tests := []struct {
		name    string
		input   map[string]any
		want    Options
		wantErr bool
	}{
		{
			name: "valid map",
			input: map[string]any{
				"question":   "프로그램에서 좋았던 점",
				"threshold":  0.5,
				"max_groups": 20,
				"topics":     []any{"강의", "시설"},
			},
			want: Options{
				Question:  "프로그램에서 좋았던 점",
				Threshold: 0.5,
				MaxGroups: 20,
				Topics:    []string{"강의", "시설"},
			},
		},
		{
			name: "weakly typed numbers",
			input: map[string]any{
				"question":   "개선점",
				"threshold":  "0.35",
				"max_groups": 10.0,
				"topics":     []any{},
			},
			want: Options{
				Question:  "개선점",
				Threshold: 0.35,
				MaxGroups: 10,
				Topics:    []string{},
			},
		},
		{
			name:  "empty map",
			input: map[string]any{},
			want:  Options{Topics: nil},
		},
		{
			name: "missing fields",
			input: map[string]any{
				"question": "질문만 있음",
			},
			want: Options{Question: "질문만 있음", Topics: nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Options
			err := Decode(tt.input, &got)
			if (err != nil) != tt.wantErr {
				t.Errorf("Decode() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if got.Question != tt.want.Question {
				t.Errorf("Question = %v, want %v", got.Question, tt.want.Question)
			}
			if got.Threshold != tt.want.Threshold {
				t.Errorf("Threshold = %v, want %v", got.Threshold, tt.want.Threshold)
			}
			if got.MaxGroups != tt.want.MaxGroups {
				t.Errorf("MaxGroups = %v, want %v", got.MaxGroups, tt.want.MaxGroups)
			}
			if len(got.Topics) != len(tt.want.Topics) {
				t.Errorf("Topics len = %v, want %v", len(got.Topics), len(tt.want.Topics))
			}
		})
	}
}

func TestDecodeStrict(t *testing.T) {
	type Simple struct {
		Question string `json:"question"`
	}

	tests := []struct {
		name    string
		input   map[string]any
		wantErr bool
	}{
		{
			name:    "valid",
			input:   map[string]any{"question": "test"},
			wantErr: false,
		},
		{
			name:    "unknown field",
			input:   map[string]any{"question": "test", "unknown": "value"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Simple
			err := DecodeStrict(tt.input, &got)
			if (err != nil) != tt.wantErr {
				t.Errorf("DecodeStrict() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
