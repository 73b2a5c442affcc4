package cmd

import (
	"fmt"

	"github.com/itsmostafa/llmstxt/internal/builder"
	"github.com/spf13/cobra"
)

var buildChunk chunkFlags
var buildOutDir string
var buildDomain string
var buildNoNavigation bool
var buildCleanURLs bool
var buildLinksExt string
var buildConcurrency int
var buildReport string

var buildCmd = &cobra.Command{
	Use:   "build [docs-dir]",
	Short: "Generate llms.txt, llms-full.txt and page copies",
	Long: `Scan the docs directory for markdown pages and write llms.txt index files,
llms-full.txt and an LLM-friendly copy of every page to the output directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(args)
		if err != nil {
			return err
		}

		buildChunk.apply(cmd, &cfg)
		flags := cmd.Flags()
		if flags.Changed("out") {
			cfg.OutDir = buildOutDir
		}
		if flags.Changed("domain") {
			cfg.Domain = buildDomain
		}
		if flags.Changed("no-navigation") {
			cfg.IncludeNavigation = !buildNoNavigation
		}
		if flags.Changed("clean-urls") {
			cfg.CleanURLs = buildCleanURLs
		}
		if flags.Changed("links-ext") {
			cfg.LinksExtension = buildLinksExt
		}
		if flags.Changed("concurrency") {
			cfg.Concurrency = buildConcurrency
		}
		if flags.Changed("report") {
			cfg.ReportFile = buildReport
		}
		if err := cfg.Normalize(); err != nil {
			return err
		}

		report, err := builder.New(cfg, newLogger(cmd)).Run(cmd.Context())
		if err != nil {
			return err
		}
		if n := report.FailureCount(); n > 0 {
			return fmt.Errorf("build finished with %d failed item(s)", n)
		}
		return nil
	},
}

func init() {
	buildChunk.register(buildCmd)
	buildCmd.Flags().StringVarP(&buildOutDir, "out", "o", "dist", "Output directory")
	buildCmd.Flags().StringVar(&buildDomain, "domain", "", "Domain prepended to generated links")
	buildCmd.Flags().BoolVar(&buildNoNavigation, "no-navigation", false, "Omit navigation links from section llms.txt files")
	buildCmd.Flags().BoolVar(&buildCleanURLs, "clean-urls", false, "Generate links without an extension")
	buildCmd.Flags().StringVar(&buildLinksExt, "links-ext", ".md", "Extension used in generated links")
	buildCmd.Flags().IntVarP(&buildConcurrency, "concurrency", "j", 0, "Files written in parallel (0 = number of CPUs)")
	buildCmd.Flags().StringVar(&buildReport, "report", "", "Write a JSON build report to this file")
	rootCmd.AddCommand(buildCmd)
}
