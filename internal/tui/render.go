package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muu0726/Tech-Information/internal/view"
)

// layout is everything besides the View that a frame depends on.
type layout struct {
	width  int
	height int
	cursor int
	scroll int
	now    time.Time

	spinner  string // current spinner frame
	hints    string // short key help for the status bar
	fullHelp string // non-empty while the help overlay is open
	notice   string // last action error

	st  styles
	loc locale
}

// render draws one frame. It has no side effects.
func render(v view.View, l layout) string {
	if l.width == 0 {
		return l.st.header.Render(l.loc.appName)
	}
	if l.fullHelp != "" {
		return renderHelp(l)
	}

	switch v.Status {
	case view.Loading:
		return center(l.st.spinner.Render(l.spinner)+" "+l.st.message.Render(l.loc.loading), l.width, l.height)
	case view.Error:
		msg := l.st.errorText.Render(l.loc.loadFailed)
		if v.Err != nil {
			msg = lipgloss.JoinVertical(lipgloss.Center, msg, "", l.st.helpDim.Render(v.Err.Error()))
		}
		return center(msg, l.width, l.height)
	}

	headerHeight := 1
	tabsHeight := 1
	statusHeight := 1
	contentHeight := l.height - headerHeight - tabsHeight - statusHeight - 2 // borders
	if contentHeight < 3 {
		contentHeight = 3
	}

	header := renderHeader(l)
	tabs := renderTabs(v.State, v.SavedCount, l)
	status := renderStatusBar(v, l)

	var content string
	if v.Status == view.Empty {
		msg := l.loc.empty
		if v.State.SavedOnly {
			msg = l.loc.emptySaved
		}
		content = center(l.st.message.Render(msg), l.width, contentHeight+2)
	} else {
		content = renderPanes(v.Cards, contentHeight, l)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, tabs, content, status)
}

func renderHeader(l layout) string {
	left := l.st.header.Render(l.loc.appName)
	right := l.st.headerDate.Render(l.now.Format(l.loc.shortDate))
	gap := l.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + fmt.Sprintf("%*s", gap, "") + right
}

func renderPanes(cards []view.Card, height int, l layout) string {
	listWidth := int(float64(l.width) * 0.4)
	previewWidth := l.width - listWidth

	innerListW := listWidth - 4 // border + padding
	listContent := renderList(cards, l.cursor, height, innerListW, l)
	listPane := l.st.listPane.Width(listWidth - 2).Height(height).Render(listContent)

	var selected *view.Card
	if l.cursor >= 0 && l.cursor < len(cards) {
		selected = &cards[l.cursor]
	}
	innerPreviewW := previewWidth - 4
	previewContent := renderPreview(selected, innerPreviewW, height, l.scroll, l)
	previewPane := l.st.previewPane.Width(previewWidth - 2).Height(height).Render(previewContent)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)
}

func renderHelp(l layout) string {
	title := l.st.itemSelected.Render(l.loc.appName)
	card := l.st.helpCard.Render(title + "\n\n" + l.fullHelp)
	return center(card, l.width, l.height)
}
