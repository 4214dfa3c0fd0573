package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFlatCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.csv")
	if err := WriteFlatCSV(path, sampleReport()); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatalf("missing BOM")
	}

	content := string(data)
	if !strings.Contains(content, "좋았던 점") {
		t.Fatalf("content = %q", content)
	}
	if !strings.Contains(content, "강사님이 친절했음 (공통의견 2)") {
		t.Fatalf("content = %q", content)
	}
}
