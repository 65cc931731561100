// Package feed reads the published news document and collects new entries
// from RSS/Atom sources.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/muu0726/Tech-Information/internal/news"
)

// ErrStatus is returned when the feed server answers with a non-2xx status.
var ErrStatus = errors.New("unexpected status")

// Reader loads the feed document the viewer displays.
type Reader struct {
	Client *http.Client
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Load fetches location over HTTP(S) or reads it as a local path.
func (r *Reader) Load(ctx context.Context, location string) ([]news.Item, error) {
	if location == "" {
		return nil, errors.New("no feed location configured")
	}
	if !isRemote(location) {
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("opening feed: %w", err)
		}
		defer f.Close()
		return news.Decode(f)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetching feed: %w: %d", ErrStatus, resp.StatusCode)
	}
	return news.Decode(resp.Body)
}
