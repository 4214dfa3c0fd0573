package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteFlatCSV 는 문항-의견-빈도 평면 CSV를 저장한다.
// 엑셀에서 바로 열리도록 UTF-8 BOM을 붙인다.
func WriteFlatCSV(path string, fileReport *FileReport) error {
	var buffer bytes.Buffer
	buffer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(&buffer)
	if err := writer.Write([]string{"문항", "통합 의견", "빈도"}); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}

	for _, question := range fileReport.Questions {
		for _, cluster := range question.Clusters {
			record := []string{question.Question, cluster.Display, strconv.Itoa(cluster.Count)}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("csv row: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("csv flush: %w", err)
	}
	if err := os.WriteFile(path, buffer.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
