package view

import (
	"github.com/muu0726/Tech-Information/internal/news"
	"github.com/samber/lo"
)

// Filter returns the items visible under state, in input order. isSaved
// reports saved-set membership.
func Filter(items []news.Item, state State, isSaved func(id string) bool) []news.Item {
	return lo.Filter(items, func(it news.Item, _ int) bool {
		if state.SavedOnly && !isSaved(it.ID) {
			return false
		}
		return InCategory(it, state.Category)
	})
}

// InCategory reports whether item belongs under the tab. IT also takes
// every category that is neither AI nor Programming.
func InCategory(item news.Item, cat news.Category) bool {
	switch cat {
	case news.AI:
		return item.Category == string(news.AI)
	case news.Programming:
		return item.Category == string(news.Programming)
	case news.IT:
		return item.Category != string(news.AI) && item.Category != string(news.Programming)
	}
	return true
}
