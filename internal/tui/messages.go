package tui

import "github.com/muu0726/Tech-Information/internal/news"

type feedLoadedMsg struct {
	items []news.Item
}

type feedErrMsg struct {
	err error
}

// readRefreshMsg redraws after the read marker delay.
type readRefreshMsg struct{}

type openErrMsg struct {
	err error
}
