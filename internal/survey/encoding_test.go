package survey

import (
	"bytes"
	"testing"
)

func TestDetectCharset(t *testing.T) {
	t.Run("BOM은 UTF-8", func(t *testing.T) {
		data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("질문,응답")...)
		if got := DetectCharset(data); got != CharsetUTF8 {
			t.Fatalf("got %s", got)
		}
	})

	t.Run("유효한 UTF-8", func(t *testing.T) {
		if got := DetectCharset([]byte("강사님이 친절했음")); got != CharsetUTF8 {
			t.Fatalf("got %s", got)
		}
	})

	t.Run("그 외는 CP949", func(t *testing.T) {
		// "한글"의 CP949 표현
		data := []byte{0xC7, 0xD1, 0xB1, 0xDB}
		if got := DetectCharset(data); got != CharsetCP949 {
			t.Fatalf("got %s", got)
		}
	})
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	original := []byte("강사님이 친절했음")

	encoded, err := EncodeFromUTF8(original, CharsetCP949)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if bytes.Equal(encoded, original) {
		t.Fatalf("expected different bytes")
	}

	decoded, charset, err := DecodeToUTF8(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if charset != CharsetCP949 {
		t.Fatalf("charset = %s", charset)
	}
	if !bytes.Equal(decoded, original) {
		t.Fatalf("round trip mismatch: %q", decoded)
	}
}

func TestDecodeStripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("질문")...)
	decoded, charset, err := DecodeToUTF8(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if charset != CharsetUTF8 || string(decoded) != "질문" {
		t.Fatalf("got %q (%s)", decoded, charset)
	}
}
