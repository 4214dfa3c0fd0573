package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/park285/survey-insight-go/internal/survey"
)

func newLikertCmd() *cobra.Command {
	var (
		outPath string
		inPlace bool
	)

	cmd := &cobra.Command{
		Use:   "likert <설문.csv>",
		Short: "리커트 척도 문항을 숫자로 변환한다",
		Long: `모든 비어 있지 않은 값이 리커트 척도 표현(매우 그렇다 … 매우
그렇지 않다)인 열을 찾아 5~1 숫자로 바꾼 CSV를 쓴다.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, _, err := survey.ReadTable(args[0])
			if err != nil {
				return err
			}

			converted := survey.ConvertLikert(table)
			if converted == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "리커트 문항이 없습니다")
				return nil
			}

			target := outPath
			if inPlace {
				target = args[0]
			}
			if target == "" {
				ext := filepath.Ext(args[0])
				target = strings.TrimSuffix(args[0], ext) + "_likert" + ext
			}

			data, err := table.WriteCSV()
			if err != nil {
				return err
			}
			if err := os.WriteFile(target, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "리커트 %d개 열 변환 → %s\n", converted, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "출력 CSV 파일 (기본: <이름>_likert.csv)")
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "원본 파일을 덮어쓴다")
	return cmd
}
