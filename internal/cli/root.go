// Package cli 는 설문 CSV 배치 처리를 위한 surveyctl 명령을 구성한다.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/park285/survey-insight-go/internal/config"
	"github.com/park285/survey-insight-go/internal/logging"
	"github.com/park285/survey-insight-go/internal/qualitative"
)

// NewRootCmd 는 surveyctl 루트 명령을 생성한다.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "surveyctl",
		Short: "설문 주관식 응답 통합 도구",
		Long: `설문 CSV 파일의 주관식 응답을 정규화·분리·그룹화하여
대표 의견과 빈도로 통합하고, Excel/CSV/JSON 보고서를 만든다.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newQualitativeCmd(),
		newStatsCmd(),
		newLikertCmd(),
		newEncodingCmd(),
		newTemplateCmd(),
	)
	return root
}

// Execute 는 루트 명령을 실행한다.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup 은 설정과 로거, 규칙 테이블을 한 번에 준비한다.
// rulesDir 가 비어 있으면 설정값을 따른다.
func setup(rulesDir string) (*config.Config, *slog.Logger, *qualitative.Rules, error) {
	cfg, err := config.ProvideConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("logger: %w", err)
	}

	if rulesDir == "" {
		rulesDir = cfg.Pipeline.RulesDir
	}
	rules, err := qualitative.LoadRules(rulesDir, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("rules: %w", err)
	}

	return cfg, logger, rules, nil
}
