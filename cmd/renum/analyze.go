package main

import (
	"github.com/spf13/cobra"

	"renum/internal/analyze"
	"renum/internal/filter"
)

// NewAnalyzeCmd creates the analyze command
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Count files per extension under the scan directory",
		Long: `Analyze enumerates the scan directory within the recursion level,
classifies every file by extension and prints the total count, the number
of files matching the active blacklist or whitelist, and a per-type
breakdown. No files are modified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, scanner, dir, err := newScanContext()
			if err != nil {
				return err
			}

			policy := filter.New(cfg.Scan.Blacklist, cfg.Scan.Whitelist)
			engine := analyze.New(scanner, policy, cmd.OutOrStdout())

			_, err = engine.Run(dir, cfg.Scan.Level)
			return err
		},
	}

	return cmd
}
