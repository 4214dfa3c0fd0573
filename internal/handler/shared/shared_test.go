package shared_test

import (
	"strings"
	"testing"

	"github.com/park285/survey-insight-go/internal/handler/shared"
)

func TestParseStringField(t *testing.T) {
	payload := map[string]any{"question": "value", "number": 123}

	val, err := shared.ParseStringField(payload, "question")
	if err != nil || val != "value" {
		t.Fatalf("expected 'value', got: %s, err: %v", val, err)
	}

	_, err = shared.ParseStringField(payload, "missing")
	if err == nil {
		t.Fatalf("expected error for missing field")
	}

	_, err = shared.ParseStringField(payload, "number")
	if err == nil {
		t.Fatalf("expected error for wrong type")
	}
}

func TestParseStringSlice(t *testing.T) {
	payload := map[string]any{
		"answers": []any{"a", "b", "c"},
		"strings": []string{"x", "y"},
		"mixed":   []any{"ok", 123},
		"number":  42,
	}

	items, err := shared.ParseStringSlice(payload, "answers")
	if err != nil || len(items) != 3 {
		t.Fatalf("expected 3 items, got: %d, err: %v", len(items), err)
	}

	items, err = shared.ParseStringSlice(payload, "strings")
	if err != nil || len(items) != 2 {
		t.Fatalf("expected 2 items for []string, got: %d, err: %v", len(items), err)
	}

	_, err = shared.ParseStringSlice(payload, "mixed")
	if err == nil {
		t.Fatalf("expected error for mixed types")
	}

	_, err = shared.ParseStringSlice(payload, "number")
	if err == nil {
		t.Fatalf("expected error for wrong type")
	}

	_, err = shared.ParseStringSlice(payload, "missing")
	if err == nil {
		t.Fatalf("expected error for missing field")
	}
}

func TestSerializeDetails(t *testing.T) {
	// 빈 맵
	result, err := shared.SerializeDetails(nil)
	if err != nil || result != "" {
		t.Fatalf("expected empty for nil map, got: %s", result)
	}

	result, err = shared.SerializeDetails(map[string]any{})
	if err != nil || result != "" {
		t.Fatalf("expected empty for empty map, got: %s", result)
	}

	// HTML 이스케이프 안 함
	result, err = shared.SerializeDetails(map[string]any{"text": "<tag>"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result, "<tag>") {
		t.Fatalf("expected unescaped HTML, got: %s", result)
	}
}

func TestTrimRunes(t *testing.T) {
	if shared.TrimRunes("abcdef", 3) != "abc" {
		t.Fatalf("expected 'abc'")
	}

	if shared.TrimRunes("abc", 5) != "abc" {
		t.Fatalf("expected 'abc' for shorter string")
	}

	if shared.TrimRunes("abc", 0) != "" {
		t.Fatalf("expected empty for maxRunes=0")
	}

	// 멀티바이트 문자
	korean := "가나다라마바"
	if shared.TrimRunes(korean, 3) != "가나다" {
		t.Fatalf("expected '가나다'")
	}
}
