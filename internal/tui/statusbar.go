package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muu0726/Tech-Information/internal/view"
)

func renderStatusBar(v view.View, l layout) string {
	label := l.loc.tab(v.State.Category)
	if v.State.SavedOnly {
		label = l.loc.savedOnly
	}
	left := fmt.Sprintf(" %d %s · %s", len(v.Cards), l.loc.articles, label)
	if l.notice != "" {
		left = " " + l.st.errorText.Render(l.notice)
	}

	right := " " + l.hints + " "

	gap := l.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return l.st.statusBar.Width(l.width).Render(bar)
}
