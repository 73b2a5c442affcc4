package cmd

import (
	"github.com/itsmostafa/llmstxt/internal/builder"
	"github.com/spf13/cobra"
)

var planChunk chunkFlags

var planCmd = &cobra.Command{
	Use:   "plan [docs-dir]",
	Short: "Show which llms.txt files a build would write",
	Long:  `Load the docs directory and print the chunk hierarchy without writing anything.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(args)
		if err != nil {
			return err
		}
		planChunk.apply(cmd, &cfg)
		if err := cfg.Normalize(); err != nil {
			return err
		}

		site, _, err := builder.New(cfg, newLogger(cmd)).Plan(cmd.Context())
		if err != nil {
			return err
		}
		builder.FormatChunkPlan(cmd.OutOrStdout(), site.Chunks)
		return nil
	},
}

func init() {
	planChunk.register(planCmd)
	rootCmd.AddCommand(planCmd)
}
