package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muu0726/Tech-Information/internal/news"
	"github.com/muu0726/Tech-Information/internal/view"
)

// renderTabs draws the category tabs followed by the saved-only toggle.
// The category tab is only highlighted outside the saved-only view.
func renderTabs(state view.State, savedCount int, l layout) string {
	sep := l.st.tabSeparator.Render(" · ")
	var parts []string

	for _, c := range news.Categories() {
		style := l.st.tabInactive
		if !state.SavedOnly && state.Category == c {
			style = l.st.tabActive
		}
		parts = append(parts, style.Render(l.loc.tab(c)))
	}

	saved := "★ " + l.loc.savedOnly
	if savedCount > 0 {
		saved += " " + l.st.badge.Render(fmt.Sprintf("(%d)", savedCount))
	}
	if state.SavedOnly {
		parts = append(parts, l.st.tabActive.Render(saved))
	} else {
		parts = append(parts, l.st.tabInactive.Render(saved))
	}

	// stop adding tabs once the row would overflow
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > l.width && row != "" {
			break
		}
		row = candidate
	}

	return l.st.tabBar.Width(l.width).Render(row)
}
