package ai

import (
	"context"
	"time"

	"github.com/muu0726/Tech-Information/internal/logger"
	"github.com/muu0726/Tech-Information/internal/news"
)

// Enrich summarizes up to max items that are not yet done, in document
// order, rewriting them in place. The original title is kept in
// OriginalTitle. A failed item is logged and left for the next run.
// Enrich waits delay after each summarized item and returns how many
// were summarized.
func Enrich(ctx context.Context, s Summarizer, items []news.Item, max int, delay time.Duration) int {
	done := 0
	for i := range items {
		if max > 0 && done >= max {
			break
		}
		if ctx.Err() != nil {
			break
		}
		it := &items[i]
		if it.AISummaryDone {
			continue
		}

		logger.Infof("summarizing %s: %s", it.ID, it.Title)
		d, err := s.Summarize(ctx, it.Title, it.Summary)
		if err != nil {
			logger.Warnf("summarizing %s: %v", it.ID, err)
			continue
		}

		it.OriginalTitle = it.Title
		if d.TranslatedTitle != "" {
			it.Title = d.TranslatedTitle
		}
		if d.Summary != "" {
			it.Summary = d.Summary
		}
		it.AISummaryDone = true
		done++

		if delay > 0 {
			select {
			case <-ctx.Done():
				return done
			case <-time.After(delay):
			}
		}
	}
	return done
}
