package tui

import (
	"fmt"
	"time"

	"github.com/muu0726/Tech-Information/internal/news"
)

// locale holds the UI strings for one language.
type locale struct {
	appName        string
	tabs           map[news.Category]string
	savedOnly      string
	loading        string
	loadFailed     string
	empty          string
	emptySaved     string
	selectArticle  string
	summaryPending string
	readMore       string
	articles       string
	dateFormat     string
	justNow        string
	minutesAgo     string
	hoursAgo       string
	daysAgo        string
	shortDate      string
}

var locales = map[string]locale{
	"en": {
		appName: "Tech News",
		tabs: map[news.Category]string{
			news.All:         "All",
			news.AI:          "AI",
			news.Programming: "Programming",
			news.IT:          "IT",
		},
		savedOnly:      "Saved",
		loading:        "Loading news...",
		loadFailed:     "Could not load the news feed.",
		empty:          "No articles in this tab",
		emptySaved:     "No saved articles yet",
		selectArticle:  "Select an article",
		summaryPending: "Summary pending",
		readMore:       "Read more: ",
		articles:       "articles",
		dateFormat:     "Jan 2, 2006 15:04",
		justNow:        "just now",
		minutesAgo:     "%dm ago",
		hoursAgo:       "%dh ago",
		daysAgo:        "%dd ago",
		shortDate:      "Jan 2",
	},
	"ja": {
		appName: "Tech News",
		tabs: map[news.Category]string{
			news.All:         "すべて",
			news.AI:          "AI",
			news.Programming: "プログラミング",
			news.IT:          "IT",
		},
		savedOnly:      "保存済み",
		loading:        "ニュースを読み込み中...",
		loadFailed:     "ニュースを読み込めませんでした。",
		empty:          "このタブに記事はありません",
		emptySaved:     "保存した記事はまだありません",
		selectArticle:  "記事を選択してください",
		summaryPending: "要約は準備中です",
		readMore:       "続きを読む: ",
		articles:       "件",
		dateFormat:     "2006年1月2日 15:04",
		justNow:        "たった今",
		minutesAgo:     "%d分前",
		hoursAgo:       "%d時間前",
		daysAgo:        "%d日前",
		shortDate:      "1月2日",
	},
}

// localeFor returns the strings for code, falling back to English.
func localeFor(code string) locale {
	if l, ok := locales[code]; ok {
		return l
	}
	return locales["en"]
}

func (l locale) tab(c news.Category) string {
	if s, ok := l.tabs[c]; ok {
		return s
	}
	return string(c)
}

func (l locale) relativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return l.justNow
	case d < time.Hour:
		return fmt.Sprintf(l.minutesAgo, int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf(l.hoursAgo, int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf(l.daysAgo, int(d.Hours()/24))
	default:
		return t.Format(l.shortDate)
	}
}
