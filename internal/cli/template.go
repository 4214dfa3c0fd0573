package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/park285/survey-insight-go/internal/qualitative"
	"github.com/park285/survey-insight-go/internal/report"
	"github.com/park285/survey-insight-go/internal/survey"
)

func newTemplateCmd() *cobra.Command {
	var (
		outPath  string
		rulesDir string
	)

	cmd := &cobra.Command{
		Use:   "template <보고서양식.xlsx> <설문.csv>",
		Short: "보고서 양식에 문항별 평균 점수를 채운다",
		Long: `설문 CSV의 수치형 문항 평균을 계산하고, 양식 워크북 H열의
문항 텍스트와 유사도 매칭하여 J열에 평균을 채운 사본을 만든다.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, rules, err := setup(rulesDir)
			if err != nil {
				return err
			}

			table, _, err := survey.ReadTable(args[1])
			if err != nil {
				return err
			}
			stats := survey.NumericStats(table)
			if len(stats) == 0 {
				return fmt.Errorf("no numeric columns in %s", args[1])
			}

			if outPath == "" {
				ext := filepath.Ext(args[0])
				outPath = strings.TrimSuffix(args[0], ext) + "_filled" + ext
			}

			engine := qualitative.NewEngine(rules)
			mappings, err := report.FillTemplate(args[0], outPath, stats, engine.SequenceRatio)
			if err != nil {
				return err
			}

			matched := 0
			for _, mapping := range mappings {
				if !mapping.Matched {
					fmt.Fprintf(cmd.OutOrStdout(), "%d행 매칭 없음: %s\n", mapping.Row, mapping.TemplateQuestion)
					continue
				}
				matched++
				fmt.Fprintf(cmd.OutOrStdout(), "%d행 %s ← %s (유사도 %.2f, 평균 %.2f)\n",
					mapping.Row, mapping.TemplateQuestion, mapping.MatchedQuestion, mapping.Score, mapping.Mean)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "매칭 %d건 → %s\n", matched, outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "출력 워크북 (기본: <이름>_filled.xlsx)")
	cmd.Flags().StringVar(&rulesDir, "rules", "", "규칙 테이블 폴더 (기본: 내장 규칙)")
	return cmd
}
