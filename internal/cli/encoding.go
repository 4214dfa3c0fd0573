package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/park285/survey-insight-go/internal/survey"
)

func newEncodingCmd() *cobra.Command {
	var (
		outPath string
		target  string
	)

	cmd := &cobra.Command{
		Use:   "encoding <설문.csv>",
		Short: "CSV 문자 인코딩을 감지해 변환한다",
		Long: `BOM·UTF-8 유효성으로 원본 인코딩(UTF-8/CP949)을 감지하고
지정한 인코딩으로 변환한 사본을 만든다.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			decoded, detected, err := survey.DecodeToUTF8(raw)
			if err != nil {
				return err
			}

			targetCharset := survey.Charset(strings.ToLower(target))
			switch targetCharset {
			case survey.CharsetUTF8, survey.CharsetCP949:
			default:
				return fmt.Errorf("unsupported target charset %q", target)
			}

			encoded, err := survey.EncodeFromUTF8(decoded, targetCharset)
			if err != nil {
				return err
			}

			if outPath == "" {
				ext := filepath.Ext(args[0])
				suffix := strings.ReplaceAll(string(targetCharset), "-", "")
				outPath = strings.TrimSuffix(args[0], ext) + "_" + suffix + ext
			}
			if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s → %s (%s)\n", detected, targetCharset, outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "출력 CSV 파일")
	cmd.Flags().StringVar(&target, "to", string(survey.CharsetUTF8), "목표 인코딩 (utf-8 | cp949)")
	return cmd
}
