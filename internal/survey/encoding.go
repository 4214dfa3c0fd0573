package survey

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// Charset 는 설문 CSV 파일에서 만나는 문자 인코딩이다.
type Charset string

const (
	CharsetUTF8  Charset = "utf-8"
	CharsetCP949 Charset = "cp949"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DetectCharset 는 파일 내용으로 인코딩을 추정한다.
// BOM이 있거나 전체가 유효한 UTF-8이면 UTF-8, 아니면 CP949로 본다.
// 구글 폼/엑셀에서 내려받은 한국어 설문 파일은 이 둘뿐이다.
func DetectCharset(data []byte) Charset {
	if bytes.HasPrefix(data, utf8BOM) {
		return CharsetUTF8
	}
	if utf8.Valid(data) {
		return CharsetUTF8
	}
	return CharsetCP949
}

// DecodeToUTF8 는 감지된 인코딩으로 디코딩해 UTF-8 바이트를 반환한다.
func DecodeToUTF8(data []byte) ([]byte, Charset, error) {
	charset := DetectCharset(data)
	switch charset {
	case CharsetUTF8:
		return bytes.TrimPrefix(data, utf8BOM), charset, nil
	case CharsetCP949:
		decoded, _, err := transform.Bytes(korean.EUCKR.NewDecoder(), data)
		if err != nil {
			return nil, charset, fmt.Errorf("decode cp949: %w", err)
		}
		return decoded, charset, nil
	}
	return nil, charset, fmt.Errorf("unsupported charset: %s", charset)
}

// EncodeFromUTF8 는 UTF-8 바이트를 대상 인코딩으로 변환한다.
func EncodeFromUTF8(data []byte, target Charset) ([]byte, error) {
	switch target {
	case CharsetUTF8:
		return data, nil
	case CharsetCP949:
		encoded, _, err := transform.Bytes(korean.EUCKR.NewEncoder(), data)
		if err != nil {
			return nil, fmt.Errorf("encode cp949: %w", err)
		}
		return encoded, nil
	}
	return nil, fmt.Errorf("unsupported charset: %s", target)
}
