package cli

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/park285/survey-insight-go/internal/survey"
)

func newStatsCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "stats <설문.csv>",
		Short: "수치형 문항의 평균/건수/최소/최대를 계산한다",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, _, err := survey.ReadTable(args[0])
			if err != nil {
				return err
			}

			stats := survey.NumericStats(table)
			if len(stats) == 0 {
				return fmt.Errorf("no numeric columns in %s", args[0])
			}

			data, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return fmt.Errorf("encode stats: %w", err)
			}

			if outPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "통계 %d개 문항 → %s\n", len(stats), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "JSON 출력 파일 (기본: 표준 출력)")
	return cmd
}
