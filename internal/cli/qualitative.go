package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/park285/survey-insight-go/internal/qualitative"
	"github.com/park285/survey-insight-go/internal/runner"
)

func newQualitativeCmd() *cobra.Command {
	var (
		outDir    string
		rulesDir  string
		threshold float64
		workers   int
		compress  bool
	)

	cmd := &cobra.Command{
		Use:   "qualitative <작업폴더>",
		Short: "작업 폴더의 설문 CSV를 문항별로 통합한다",
		Long: `작업 폴더(또는 그 아래 processed/)의 모든 CSV 파일을 찾아
주관식 문항별로 응답을 통합하고 파일마다 Excel/CSV/JSON 보고서를 쓴다.
한 파일이 실패해도 나머지 파일은 계속 처리한다.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, rules, err := setup(rulesDir)
			if err != nil {
				return err
			}

			opts := runner.Options{
				Threshold: threshold,
				Workers:   workers,
				Compress:  compress,
			}
			if opts.Threshold == 0 {
				opts.Threshold = cfg.Pipeline.Threshold
			}
			if opts.Workers == 0 {
				opts.Workers = cfg.Workers.FileWorkers
			}
			if !cmd.Flags().Changed("compress") {
				opts.Compress = cfg.Report.CompressJSON
			}

			batch := runner.New(qualitative.NewPipeline(rules), logger)
			result, err := batch.RunFolder(cmd.Context(), args[0], outDir, opts)
			if err != nil {
				return err
			}

			for _, outcome := range result.Files {
				if outcome.Err != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "실패  %s: %s\n", outcome.Path, outcome.Err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "완료  %s: 문항 %d개, 그룹 %d개\n",
					outcome.Path, len(outcome.Report.Questions), outcome.Report.GroupCount())
			}
			if result.Failed == len(result.Files) {
				return fmt.Errorf("all %d files failed", result.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "보고서 출력 폴더 (기본: <작업폴더>/results)")
	cmd.Flags().StringVar(&rulesDir, "rules", "", "규칙 테이블 폴더 (기본: 내장 규칙)")
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "병합 유사도 임계값 (0이면 규칙 테이블 기본값)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "동시 처리 파일 수")
	cmd.Flags().BoolVar(&compress, "compress", false, "상세 JSON을 zstd로 압축")
	return cmd
}
