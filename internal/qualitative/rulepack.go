package qualitative

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed tables/default.yml
var defaultTables []byte

// DefaultRules 는 바이너리에 내장된 기본 규칙 테이블을 컴파일한다.
func DefaultRules() (*Rules, error) {
	var raw rawTables
	if err := yaml.Unmarshal(defaultTables, &raw); err != nil {
		return nil, fmt.Errorf("embedded tables: %w", err)
	}
	rules, err := compileTables(raw)
	if err != nil {
		return nil, fmt.Errorf("embedded tables: %w", err)
	}
	return rules, nil
}

// LoadRules 는 외부 디렉터리의 규칙 파일을 로드하고, 없거나 깨졌으면
// 내장 기본 테이블로 폴백한다. 외부 파일은 전체 교체 방식이다.
func LoadRules(dir string, logger *slog.Logger) (*Rules, error) {
	if dir != "" {
		if rules := loadExternalRules(dir, logger); rules != nil {
			return rules, nil
		}
	}
	return DefaultRules()
}

func loadExternalRules(dir string, logger *slog.Logger) *Rules {
	paths := findRuleFiles(dir)
	if len(paths) == 0 {
		if logger != nil {
			logger.Warn("rule_tables_not_found", "dir", dir)
		}
		return nil
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if logger != nil {
				logger.Warn("rule_tables_read_failed", "path", path, "err", err)
			}
			continue
		}

		var raw rawTables
		if err := yaml.Unmarshal(data, &raw); err != nil {
			if logger != nil {
				logger.Warn("rule_tables_parse_failed", "path", path, "err", err)
			}
			continue
		}

		rules, err := compileTables(raw)
		if err != nil {
			if logger != nil {
				logger.Warn("rule_tables_compile_failed", "path", path, "err", err)
			}
			continue
		}

		if logger != nil {
			logger.Info("rule_tables_loaded", "path", path, "version", raw.Version)
		}
		return rules
	}
	return nil
}

func findRuleFiles(dir string) []string {
	var files []string
	for _, pattern := range []string{"*.yml", "*.yaml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			continue
		}
		files = append(files, matches...)
	}
	return files
}
