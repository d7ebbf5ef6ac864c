package main

import (
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"renum/internal/config"
	"renum/internal/log"
	"renum/internal/scan"
)

var (
	cfgFile string
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var (
		directory string
		level     int
		blacklist []string
		whitelist []string
		debug     bool
	)

	rootCmd := &cobra.Command{
		Use:   "renum",
		Short: "Classify files by extension, count them or copy them under numbered names",
		Long: `Renum recursively scans a directory tree and classifies files by
extension. 'analyze' reports how many files of each type were found;
'rename' copies the files surviving the blacklist/whitelist filter into a
fresh output directory, named from a template with a {number} placeholder.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.LoadConfigFile(cfgFile)
		} else {
			cfg, err = config.LoadConfig()
		}
		if err != nil {
			return err
		}

		// Flags override whatever the config file provided
		flags := rootCmd.PersistentFlags()
		if flags.Changed("directory") {
			cfg.Scan.Directory = directory
		}
		if flags.Changed("level") {
			cfg.Scan.Level = level
		}
		if flags.Changed("blacklist") {
			cfg.Scan.Blacklist = blacklist
		}
		if flags.Changed("whitelist") {
			cfg.Scan.Whitelist = whitelist
		}
		if flags.Changed("debug") {
			cfg.Debug = debug
		}
		cfg.Normalize()
		if err := cfg.Validate(); err != nil {
			return err
		}

		log.SetDebug(cfg.Debug)
		return nil
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/renum/config.yaml)")
	flags.StringVarP(&directory, "directory", "d", ".", "directory to scan")
	flags.IntVarP(&level, "level", "l", 1, "recursion depth beyond the top directory")
	flags.StringArrayVarP(&blacklist, "blacklist", "b", nil, "extension to exclude (repeatable)")
	flags.StringArrayVarP(&whitelist, "whitelist", "w", nil, "extension to include (repeatable; overrides the blacklist)")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(NewAnalyzeCmd())
	rootCmd.AddCommand(NewRenameCmd())

	return rootCmd
}

// newScanContext resolves the configured scan directory to an absolute path
// and builds the scanner over the OS filesystem.
func newScanContext() (billy.Filesystem, *scan.Scanner, string, error) {
	dir, err := filepath.Abs(cfg.Scan.Directory)
	if err != nil {
		return nil, nil, "", err
	}

	fsys := osfs.New("/")
	scanner, err := scan.NewWithIgnore(fsys, cfg.Scan.Ignore)
	if err != nil {
		return nil, nil, "", err
	}
	return fsys, scanner, dir, nil
}
