package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
)

// WriteJSON 는 상세 결과를 JSON 파일로 저장한다.
// 경로가 .zst로 끝나면 zstd로 압축한다.
func WriteJSON(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if strings.HasSuffix(path, ".zst") {
		return writeZstd(path, data)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeZstd(path string, data []byte) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	encoder, err := zstd.NewWriter(file)
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}
	if _, err := encoder.Write(data); err != nil {
		encoder.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return file.Close()
}

// ReadJSON 는 WriteJSON이 만든 파일을 다시 읽는다. (검증/후처리용)
func ReadJSON(path string, doc any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if strings.HasSuffix(path, ".zst") {
		decoder, err := zstd.NewReader(nil)
		if err != nil {
			return fmt.Errorf("zstd reader: %w", err)
		}
		defer decoder.Close()
		data, err = decoder.DecodeAll(data, nil)
		if err != nil {
			return fmt.Errorf("decompress %s: %w", path, err)
		}
	}

	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return nil
}
