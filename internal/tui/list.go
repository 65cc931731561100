package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muu0726/Tech-Information/internal/view"
)

func renderListItem(c view.Card, selected bool, width int, l layout) string {
	if width < 10 {
		width = 30
	}

	mark := "  "
	if c.Saved {
		mark = l.st.savedMark.Render("★ ")
	}

	text := truncateStr(c.Item.Title, width-4)
	var title string
	switch {
	case selected:
		title = l.st.itemSelected.Render("> " + text)
	case c.Read:
		title = l.st.itemRead.Render("  " + text)
	default:
		title = l.st.itemTitle.Render("  " + text)
	}

	meta := "  " + mark + l.st.itemSource.Render(c.Item.Source)
	if rel := l.loc.relativeTime(c.Item.Updated.Time, l.now); rel != "" {
		meta += " " + l.st.itemTime.Render("· "+rel)
	}

	return title + "\n" + meta
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func renderList(cards []view.Card, cursor, height, width int, l layout) string {
	// Each item is 2 lines + 1 blank line = 3 lines
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(cards) {
		end = len(cards)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(cards[i], i == cursor, width, l))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

func center(s string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s)
}
