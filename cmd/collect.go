package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fatih/color"
	"github.com/muu0726/Tech-Information/internal/config"
	"github.com/muu0726/Tech-Information/internal/feed"
	"github.com/muu0726/Tech-Information/internal/news"
	"github.com/spf13/cobra"
)

var flagIfOlderThan string

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Fetch the configured RSS sources into the feed document",
	Long: `Fetch every enabled source, keep entries that mention a configured
keyword, and prepend the new ones to the feed document (data_file).
The document is capped at max_items.

With --if-older-than the run is skipped when the previous collect is more
recent than the given duration (e.g. 6h, 1d).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if flagIfOlderThan != "" {
			d, err := parseSince(flagIfOlderThan)
			if err != nil {
				return fmt.Errorf("invalid --if-older-than value: %w", err)
			}
			if !st.NeedsCollect(d) {
				fmt.Fprintf(cmd.OutOrStdout(), "Skipped: last collect at %s.\n", st.LastCollect().Format(time.DateTime))
				return nil
			}
		}

		fetcher := feed.NewRSSFetcher(
			&http.Client{Timeout: cfg.FetchTimeoutDuration()},
			cfg.Keywords,
			cfg.GetSummaryLength(),
		)
		if _, err := runCollect(cmd.Context(), cmd.OutOrStdout(), cfg, fetcher); err != nil {
			return err
		}
		return st.SetLastCollect()
	},
}

func init() {
	collectCmd.Flags().StringVar(&flagIfOlderThan, "if-older-than", "", "skip unless the last collect is older than this (e.g. 6h, 1d)")
}

// runCollect fetches all enabled sources and merges new items into the
// feed document. It returns how many items were added.
func runCollect(ctx context.Context, w io.Writer, cfg *config.Config, fetcher feed.Fetcher) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeoutDuration())
	defer cancel()

	sources := cfg.EnabledSources()
	fmt.Fprintf(w, "Fetching %d sources...\n", len(sources))
	result := feed.FetchAll(ctx, fetcher, sources)
	for _, e := range result.Errors {
		fmt.Fprintf(w, "  %s %v\n", color.YellowString("[warn]"), e)
	}

	path := cfg.DataPath()
	existing, err := news.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading feed document: %w", err)
	}

	fresh := result.Items
	news.SortByUpdated(fresh)
	merged, added := news.Merge(existing, fresh, cfg.GetMaxItems())
	if added == 0 {
		fmt.Fprintln(w, "No new articles.")
		return 0, nil
	}

	if err := news.WriteFile(path, merged); err != nil {
		return 0, fmt.Errorf("writing feed document: %w", err)
	}
	fmt.Fprintf(w, "%s %d new articles (%d total) in %s\n", color.GreenString("Added"), added, len(merged), path)
	return added, nil
}

func parseSince(s string) (time.Duration, error) {
	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour, nil
		}
	}
	return time.ParseDuration(s)
}
