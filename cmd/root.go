package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/itsmostafa/llmstxt/internal/builder"
	"github.com/itsmostafa/llmstxt/internal/config"
	"github.com/itsmostafa/llmstxt/internal/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	quiet      bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "llmstxt",
	Short: "Generate llms.txt files from a markdown documentation tree",
	Long: `llmstxt turns a directory of markdown pages into files for language models:
an llms.txt index for the site and for each documentation section, an
llms-full.txt with every page, and a clean copy of each page.

Reference: https://llmstxt.org`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("llmstxt %s\n", version.String()))

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default llms.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only print errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug output")
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// chunkFlags are the chunking flags shared by build and plan.
type chunkFlags struct {
	depth    int
	minFiles int
}

func (f *chunkFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.depth, "depth", "d", 1, "Directory levels that get their own llms.txt")
	cmd.Flags().IntVar(&f.minFiles, "min-files", 2, "Minimum files for a section llms.txt")
}

func (f *chunkFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("depth") {
		cfg.Depth = f.depth
	}
	if cmd.Flags().Changed("min-files") {
		cfg.MinFilesPerChunk = f.minFiles
	}
}

// loadConfig reads the config file and environment, then applies the docs
// directory argument. Flag overrides are applied by the caller before
// normalizing.
func loadConfig(args []string) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if len(args) > 0 {
		cfg.DocsDir = args[0]
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command) *builder.Logger {
	return builder.NewLogger(cmd.OutOrStdout(), cmd.ErrOrStderr(), quiet, verbose)
}
