package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/muu0726/Tech-Information/internal/view"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

var (
	flagListCategory string
	flagListSaved    bool
	flagListJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the feed as a table",
	Long: `Print the articles visible under a tab, newest first. With --saved only
saved articles are listed; with --json the cards are printed as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := parseCategory(flagListCategory)
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctrl := view.New(st)
		items, err := loadFeed(cmd.Context(), cfg)
		if err != nil {
			ctrl.Fail(err)
			return fmt.Errorf("loading feed: %w", err)
		}
		ctrl.Load(items)

		v := ctrl.SelectCategory(cat)
		if flagListSaved {
			v = ctrl.ToggleSavedOnly()
		}

		if flagListJSON {
			return writeCardsJSON(cmd.OutOrStdout(), v.Cards)
		}
		return writeCardsTable(cmd.OutOrStdout(), v)
	},
}

func init() {
	listCmd.Flags().StringVar(&flagListCategory, "category", "all", "tab: all, AI, Programming or IT")
	listCmd.Flags().BoolVar(&flagListSaved, "saved", false, "only saved articles")
	listCmd.Flags().BoolVar(&flagListJSON, "json", false, "print JSON instead of a table")
}

type cardJSON struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Link     string `json:"link"`
	Source   string `json:"source"`
	Category string `json:"category"`
	Updated  string `json:"updated"`
	Saved    bool   `json:"saved"`
	Read     bool   `json:"read"`
}

func writeCardsJSON(w io.Writer, cards []view.Card) error {
	out := make([]cardJSON, 0, len(cards))
	for _, c := range cards {
		updated := ""
		if !c.Item.Updated.IsZero() {
			updated = c.Item.Updated.Format("2006-01-02T15:04:05")
		}
		out = append(out, cardJSON{
			ID:       c.Item.ID,
			Title:    c.Item.Title,
			Link:     c.Item.Link,
			Source:   c.Item.Source,
			Category: c.Item.Category,
			Updated:  updated,
			Saved:    c.Saved,
			Read:     c.Read,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeCardsTable(w io.Writer, v view.View) error {
	if v.Status == view.Empty {
		fmt.Fprintln(w, color.YellowString("No articles."))
		return nil
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)

	rows := make([][]string, 0, len(v.Cards))
	for _, c := range v.Cards {
		rows = append(rows, cardRow(c))
	}
	table.Header([]string{"", "ID", "Updated", "Category", "Source", "Title"})
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("building table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	fmt.Fprintf(w, "\n%d articles, %d saved\n", len(v.Cards), v.SavedCount)
	return nil
}

func cardRow(c view.Card) []string {
	mark := " "
	if c.Saved {
		mark = color.YellowString("★")
	}
	title := truncate(c.Item.Title, 60)
	if c.Read {
		title = color.New(color.Faint).Sprint(title)
	}
	updated := "-"
	if !c.Item.Updated.IsZero() {
		updated = c.Item.Updated.Format("2006-01-02 15:04")
	}
	return []string{mark, c.Item.ID, updated, c.Item.Category, color.GreenString(c.Item.Source), title}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
