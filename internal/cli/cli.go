package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lovrop/codeforces-scraper/internal/config"
	"github.com/lovrop/codeforces-scraper/internal/contest"
	"github.com/lovrop/codeforces-scraper/internal/fetch"
	"github.com/lovrop/codeforces-scraper/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagWorkers   int
	flagOutputDir string
	flagConfig    string
	flagVerbose   bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codeforces-scraper <contest>",
		Short: "Download sample tests for every problem in a Codeforces contest",
		Long: `Download sample tests for every problem in a Codeforces contest.

The contest argument is either a numeric contest ID or a full contest URI.
Each problem's samples are written to a directory named after the problem,
as <id>.in.<n> and <id>.out.<n> files.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runScrape,
	}

	cmd.Flags().IntVar(&flagWorkers, "workers", 0, "Concurrent problem downloads (default from config, 5)")
	cmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "Directory to write sample files into (default from config, \".\")")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Config file (default: ~/.config/codeforces-scraper/config.yml)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")

	return cmd
}

// runScrape resolves configuration and runs the pipeline.
func runScrape(cmd *cobra.Command, args []string) error {
	cfgPath := flagConfig
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// Flags override config.
	if flagWorkers > 0 {
		cfg.Workers = flagWorkers
	}
	if flagOutputDir != "" {
		cfg.OutputDir = flagOutputDir
	}

	client := fetch.NewWithOptions(cfg.Timeout(), cfg.UserAgent)
	writer, err := storage.New(cfg.OutputDir)
	if err != nil {
		return err
	}

	contestURI := contest.ResolveURI(args[0], cfg.BaseURL)
	out := newReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), flagVerbose)

	return run(contestURI, cfg.Workers, client, writer, out)
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
