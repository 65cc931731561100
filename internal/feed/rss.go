package feed

import (
	"context"
	"crypto/md5"
	"fmt"
	"html"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	"github.com/muu0726/Tech-Information/internal/classify"
	"github.com/muu0726/Tech-Information/internal/config"
	"github.com/muu0726/Tech-Information/internal/logger"
	"github.com/muu0726/Tech-Information/internal/news"
)

const userAgent = "technews/1.0 (+https://github.com/muu0726/Tech-Information)"

type Fetcher interface {
	Fetch(ctx context.Context, source config.Source) ([]news.Item, error)
}

type RSSFetcher struct {
	parser        *gofeed.Parser
	keywords      []string
	summaryLength int
	now           func() time.Time
}

// NewRSSFetcher keeps only entries matching keywords and cuts summaries to
// summaryLength runes.
func NewRSSFetcher(client *http.Client, keywords []string, summaryLength int) *RSSFetcher {
	p := gofeed.NewParser()
	p.UserAgent = userAgent
	if client != nil {
		p.Client = client
	}
	return &RSSFetcher{
		parser:        p,
		keywords:      keywords,
		summaryLength: summaryLength,
		now:           time.Now,
	}
}

func (f *RSSFetcher) Fetch(ctx context.Context, source config.Source) ([]news.Item, error) {
	feed, err := f.parser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source.Name, err)
	}

	fixed, hasFixed := news.ParseCategory(source.Category)
	hasFixed = hasFixed && fixed != news.All

	now := f.now()
	items := make([]news.Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		if entry.Link == "" {
			continue
		}
		desc := entry.Description
		if desc == "" {
			desc = entry.Content
		}
		desc = stripHTML(desc)

		if !classify.Relevant(entry.Title, desc, f.keywords) {
			continue
		}

		pub := now
		if entry.PublishedParsed != nil {
			pub = *entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			pub = *entry.UpdatedParsed
		}

		cat := fixed
		if !hasFixed {
			cat = classify.Infer(entry.Title, desc)
		}

		items = append(items, news.Item{
			ID:       articleID(entry.Link),
			Title:    strings.TrimSpace(entry.Title),
			Link:     entry.Link,
			Source:   source.Name,
			Category: string(cat),
			Summary:  truncate(desc, f.summaryLength),
			Updated:  news.NewTimestamp(pub.Local()),
		})
	}
	logger.Debugf("feed %s: %d of %d entries kept", source.Name, len(items), len(feed.Items))
	return items, nil
}

func articleID(link string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(link)))
}

// truncate keeps n runes and marks the cut with "...".
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

var textPolicy = bluemonday.StrictPolicy()

// stripHTML reduces a feed description to plain text with entities
// decoded and whitespace collapsed.
func stripHTML(s string) string {
	if s == "" {
		return ""
	}
	text := html.UnescapeString(textPolicy.Sanitize(s))
	return strings.Join(strings.Fields(text), " ")
}

type FetchResult struct {
	Items  []news.Item
	Errors []error
}

// FetchAll fetches every source concurrently. Items come back grouped in
// source order; a failing source only adds to Errors.
func FetchAll(ctx context.Context, fetcher Fetcher, sources []config.Source) FetchResult {
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result FetchResult
	)
	perSource := make([][]news.Item, len(sources))

	for i, src := range sources {
		wg.Add(1)
		go func(i int, s config.Source) {
			defer wg.Done()
			items, err := fetcher.Fetch(ctx, s)
			if err != nil {
				logger.Warnf("source %s: %v", s.Name, err)
				mu.Lock()
				result.Errors = append(result.Errors, err)
				mu.Unlock()
				return
			}
			perSource[i] = items
		}(i, src)
	}

	wg.Wait()
	for _, items := range perSource {
		result.Items = append(result.Items, items...)
	}
	return result
}
