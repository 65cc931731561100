package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/muu0726/Tech-Information/internal/config"
	"github.com/muu0726/Tech-Information/internal/feed"
	"github.com/muu0726/Tech-Information/internal/logger"
	"github.com/muu0726/Tech-Information/internal/news"
	"github.com/muu0726/Tech-Information/internal/store"
	"github.com/muu0726/Tech-Information/internal/tui"
	"github.com/muu0726/Tech-Information/internal/update"
	"github.com/muu0726/Tech-Information/internal/view"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig   string
	flagFeed     string
	flagCategory string
	flagCheck    bool
)

var rootCmd = &cobra.Command{
	Use:   "technews",
	Short: "Terminal reader for AI, programming and IT news",
	Long: `technews shows a curated tech news feed in the terminal. Articles can be
filtered by category, saved for later, and opened in the browser; saved
and read markers are kept locally between runs.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagFeed, "feed", "", "feed URL or path (overrides config)")
	rootCmd.Flags().StringVar(&flagCategory, "category", "all", "initial tab: all, AI, Programming or IT")

	versionCmd.Flags().BoolVar(&flagCheck, "check", false, "check GitHub for a newer release")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(statsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "technews %s (commit: %s, built: %s)\n", version, commit, date)
		if !flagCheck {
			return
		}
		res, err := (&update.Checker{}).Check(cmd.Context(), version)
		switch {
		case err != nil:
			logger.Warnf("update check: %v", err)
		case res != nil:
			fmt.Fprintf(cmd.OutOrStdout(), "A newer version is available: %s\n", res.LatestVersion)
		default:
			fmt.Fprintln(cmd.OutOrStdout(), "You are on the latest version.")
		}
	},
}

func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		logger.Sync()
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// loadConfig reads the config, applies --feed and starts logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagFeed != "" {
		cfg.Feed = flagFeed
	}
	if err := logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
	}); err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	return cfg, nil
}

func openStore() (*store.Store, error) {
	st, err := store.Open(config.StatePath())
	if err != nil {
		return nil, fmt.Errorf("opening state: %w", err)
	}
	return st, nil
}

func parseCategory(s string) (news.Category, error) {
	cat, ok := news.ParseCategory(s)
	if !ok {
		return "", fmt.Errorf("unknown category %q (valid: all, AI, Programming, IT)", s)
	}
	return cat, nil
}

// loadFeed fetches the feed once with the configured timeout.
func loadFeed(ctx context.Context, cfg *config.Config) ([]news.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeoutDuration())
	defer cancel()
	r := &feed.Reader{}
	return r.Load(ctx, cfg.FeedLocation())
}

func runTUI(cmd *cobra.Command, args []string) error {
	cat, err := parseCategory(flagCategory)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Log.File == "" {
		// stderr output would draw over the UI
		logger.Silence()
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	location := cfg.FeedLocation()
	reader := &feed.Reader{}
	return tui.Run(tui.RunOpts{
		Controller: view.New(st),
		Load: func(ctx context.Context) ([]news.Item, error) {
			return reader.Load(ctx, location)
		},
		Timeout:  cfg.FetchTimeoutDuration(),
		Theme:    cfg.Theme,
		Locale:   cfg.Locale,
		Category: cat,
	})
}
