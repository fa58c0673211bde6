package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devansh0703/avalanche-sentinel/internal/engine"
	"github.com/devansh0703/avalanche-sentinel/internal/model"
)

func newRulesCmd() *cobra.Command {
	var minSeverity string
	cmd := &cobra.Command{Use: "rules", Short: "List available rules"}
	list := &cobra.Command{
		Use:   "list",
		Short: "List built-in detectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := engine.Default().Registry()
			detectors := reg.Detectors()
			if minSeverity != "" {
				detectors = reg.FilterSeverity(model.ParseSeverity(minSeverity))
			}
			for _, d := range detectors {
				m := d.Meta()
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", m.ID, m.Severity, m.Title)
			}
			return nil
		},
	}
	list.Flags().StringVar(&minSeverity, "min-severity", "", "Only list detectors at or above this severity (low|medium|high|critical)")
	cmd.AddCommand(list)
	return cmd
}
