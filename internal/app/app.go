package app

import (
	"github.com/spf13/cobra"

	"github.com/devansh0703/avalanche-sentinel/internal/cli"
)

func BuildRoot() *cobra.Command {
	root := &cobra.Command{Use: "sentinel", Short: "Queue-driven heuristic analysis workers for Avalanche smart contracts"}
	cli.AddCommands(root)
	return root
}
