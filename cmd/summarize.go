package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/muu0726/Tech-Information/internal/ai"
	"github.com/muu0726/Tech-Information/internal/config"
	"github.com/muu0726/Tech-Information/internal/logger"
	"github.com/muu0726/Tech-Information/internal/news"
	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Translate titles and write bullet summaries with an LLM",
	Long: `Rewrite up to ai.max_per_run articles that have not been summarized yet:
the title is translated into ai.language and the summary becomes three
bullet lines. The original title is kept in original_title.

Without an API key the command does nothing and exits successfully.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if !cfg.AIEnabled() {
			logger.Warnf("no AI API key configured, skipping summarize")
			fmt.Fprintln(cmd.OutOrStdout(), "No AI API key configured; nothing to do.")
			return nil
		}

		s, err := ai.New(cmd.Context(), cfg.AI, cfg.AIKey())
		if err != nil {
			return fmt.Errorf("creating summarizer: %w", err)
		}
		_, err = runSummarize(cmd.Context(), cmd.OutOrStdout(), cfg, s)
		return err
	},
}

func runSummarize(ctx context.Context, w io.Writer, cfg *config.Config, s ai.Summarizer) (int, error) {
	path := cfg.DataPath()
	items, err := news.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading feed document: %w", err)
	}

	n := ai.Enrich(ctx, s, items, cfg.AIMaxPerRun(), cfg.AIDelay())
	if n == 0 {
		fmt.Fprintln(w, "No articles were summarized.")
		return 0, nil
	}
	if err := news.WriteFile(path, items); err != nil {
		return 0, fmt.Errorf("writing feed document: %w", err)
	}
	fmt.Fprintf(w, "%s %d articles.\n", color.GreenString("Summarized"), n)
	return n, nil
}
