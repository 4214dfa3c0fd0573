package survey

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Table 는 헤더와 본문으로 나뉜 설문 응답표다.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadTable 는 CSV 파일을 인코딩 감지와 함께 읽는다.
// 행마다 칸 수가 달라도 허용한다 (수기 편집된 파일이 흔하다).
func ReadTable(path string) (*Table, Charset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}

	decoded, charset, err := DecodeToUTF8(data)
	if err != nil {
		return nil, charset, err
	}

	table, err := ParseTable(string(decoded))
	if err != nil {
		return nil, charset, fmt.Errorf("parse %s: %w", path, err)
	}
	return table, charset, nil
}

// ParseTable 는 UTF-8 CSV 본문을 파싱한다. 첫 행이 헤더다.
func ParseTable(content string) (*Table, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}
	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// Column 는 idx번째 열의 본문 값을 반환한다. 짧은 행은 빈 값으로 채운다.
func (t *Table) Column(idx int) []string {
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx < len(row) {
			values = append(values, strings.TrimSpace(row[idx]))
		} else {
			values = append(values, "")
		}
	}
	return values
}

// NonEmpty 는 values에서 빈 값을 뺀 목록이다.
func NonEmpty(values []string) []string {
	kept := make([]string, 0, len(values))
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			kept = append(kept, value)
		}
	}
	return kept
}

// WriteCSV 는 테이블을 UTF-8 CSV로 직렬화한다.
func (t *Table) WriteCSV() ([]byte, error) {
	var builder strings.Builder
	writer := csv.NewWriter(&builder)

	if err := writer.Write(t.Header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}
	return []byte(builder.String()), nil
}
