package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/muu0726/Tech-Information/internal/config"
	"github.com/muu0726/Tech-Information/internal/news"
	"github.com/muu0726/Tech-Information/internal/store"
	"github.com/muu0726/Tech-Information/internal/view"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show feed and local state statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dbPath := config.StatePath()
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctrl := view.New(st)
		items, err := loadFeed(cmd.Context(), cfg)
		if err != nil {
			// the local counters are still worth printing
			ctrl.Fail(err)
		} else {
			ctrl.Load(items)
		}

		size, _ := store.Size(dbPath)
		w := cmd.OutOrStdout()
		label := color.New(color.FgCyan)

		label.Fprint(w, "Feed:      ")
		fmt.Fprintln(w, cfg.FeedLocation())
		label.Fprint(w, "Articles:  ")
		if err != nil {
			fmt.Fprintln(w, color.RedString("unavailable (%v)", err))
		} else {
			fmt.Fprintf(w, "%d (%s)\n", len(items), categoryCounts(ctrl))
		}
		label.Fprint(w, "Saved:     ")
		fmt.Fprintln(w, len(ctrl.SavedIDs()))
		label.Fprint(w, "Read:      ")
		fmt.Fprintln(w, len(ctrl.ReadIDs()))
		label.Fprint(w, "State:     ")
		fmt.Fprintf(w, "%s (%s)\n", dbPath, formatBytes(size))
		label.Fprint(w, "Collected: ")
		if t := st.LastCollect(); t.IsZero() {
			fmt.Fprintln(w, "never")
		} else {
			fmt.Fprintln(w, t.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func categoryCounts(ctrl *view.Controller) string {
	var out string
	for _, c := range news.Categories()[1:] {
		n := len(ctrl.SelectCategory(c).Cards)
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("%s %d", c, n)
	}
	ctrl.SelectCategory(news.All)
	return out
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
