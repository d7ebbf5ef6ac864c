package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	serr "renum/internal/errors"
	"renum/internal/filter"
	"renum/internal/log"
	"renum/internal/rename"
)

// NewRenameCmd creates the rename command
func NewRenameCmd() *cobra.Command {
	var (
		startNumber int
		output      string
		template    string
		verify      bool
	)

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Copy matching files into a numbered sequence",
		Long: `Rename copies every file surviving the blacklist/whitelist filter into
the output directory, named by rendering the template against an
incrementing {number}. The output directory is deleted and recreated
first; a previous run's contents do not survive.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("number") {
				cfg.Rename.StartNumber = startNumber
			}
			if cmd.Flags().Changed("output") {
				cfg.Rename.Output = output
			}
			if cmd.Flags().Changed("template") {
				cfg.Rename.Template = template
			}
			if cmd.Flags().Changed("verify") {
				cfg.Rename.Verify = verify
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.Rename.Template == "" {
				return serr.NewConfigError("a name template is required", "template", serr.InvalidConfig, nil)
			}

			fsys, scanner, dir, err := newScanContext()
			if err != nil {
				return err
			}
			outputDir, err := filepath.Abs(cfg.Rename.Output)
			if err != nil {
				return err
			}

			policy := filter.New(cfg.Scan.Blacklist, cfg.Scan.Whitelist)
			engine, err := rename.New(fsys, scanner, policy, cfg.Rename.Template, cfg.Rename.Verify)
			if err != nil {
				return err
			}

			records, err := engine.Run(dir, cfg.Scan.Level, outputDir, cfg.Rename.StartNumber)
			if err != nil {
				return err
			}

			log.Info("copied %d file(s) to %s", len(records), outputDir)
			return nil
		},
	}

	cmd.Flags().IntVarP(&startNumber, "number", "n", 1, "first number in the sequence")
	cmd.Flags().StringVarP(&output, "output", "o", "./output", "output directory (wiped before the run)")
	cmd.Flags().StringVarP(&template, "template", "t", "", "destination name template, e.g. 'img_{number}.jpg'")
	cmd.Flags().BoolVar(&verify, "verify", false, "verify copies by digest comparison")

	return cmd
}
