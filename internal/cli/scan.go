package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devansh0703/avalanche-sentinel/internal/config"
	"github.com/devansh0703/avalanche-sentinel/internal/engine"
	"github.com/devansh0703/avalanche-sentinel/internal/model"
	"github.com/devansh0703/avalanche-sentinel/internal/report"
)

// newScanCmd runs the engine over a local file, outside the queue path. Meant
// for rule development and one-off triage.
func newScanCmd() *cobra.Command {
	var (
		format      string
		outputFile  string
		contextPath string
		failOnFind  bool
	)
	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Analyze a local contract file with the heuristic detector set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			job := model.AnalysisJob{JobID: "local", SourceCode: string(source)}
			if contextPath != "" {
				b, err := os.ReadFile(contextPath)
				if err != nil {
					return err
				}
				var sctx model.SubnetContext
				if err := json.Unmarshal(b, &sctx); err != nil {
					return fmt.Errorf("parse subnet context %s: %w", contextPath, err)
				}
				job.SubnetContext = &sctx
			}

			cfg, _, err := config.Load(".")
			if err != nil {
				return err
			}
			findings := engine.New(cfg.RegistriesOrDefault()).Evaluate(cmd.Context(), job)

			var data []byte
			switch format {
			case "json":
				data, err = json.MarshalIndent(findings, "", "  ")
			case "sarif":
				data, err = report.ToSARIF(findings, args[0])
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "Findings: %d\n", len(findings))
				for _, f := range findings {
					fmt.Fprintf(cmd.OutOrStdout(), "- line %d [%s] %s\n", f.Line, f.IssueType, f.Description)
				}
			}
			if err != nil {
				return err
			}
			if data != nil {
				if outputFile != "" {
					if err := os.WriteFile(outputFile, data, 0o644); err != nil {
						return err
					}
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), string(data))
				}
			}

			if failOnFind && len(findings) > 0 {
				return fmt.Errorf("%d findings reported", len(findings))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table|json|sarif")
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Write output to file instead of stdout")
	cmd.Flags().StringVar(&contextPath, "subnet-context", "", "Path to a JSON subnet context (gas_limit, enabled_precompiles)")
	cmd.Flags().BoolVar(&failOnFind, "fail-on-findings", false, "Exit nonzero when any finding is reported")
	return cmd
}
