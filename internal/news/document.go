package news

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Decode reads a feed document: a JSON array of items.
func Decode(r io.Reader) ([]Item, error) {
	var items []Item
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("decoding feed: %w", err)
	}
	return items, nil
}

// ReadFile loads a feed document. A missing file is an empty document.
func ReadFile(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening feed file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// WriteFile writes items as an indented JSON array, creating parent
// directories as needed.
func WriteFile(path string, items []Item) error {
	if items == nil {
		items = []Item{}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating feed dir: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("encoding feed: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// SortByUpdated orders items newest first. Equal timestamps keep their
// input order.
func SortByUpdated(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Updated.After(items[j].Updated.Time)
	})
}

// Merge prepends the fresh items whose id is not already in existing and
// caps the result at limit (no cap when limit <= 0). It reports how many
// fresh items were added.
func Merge(existing, fresh []Item, limit int) ([]Item, int) {
	seen := make(map[string]bool, len(existing)+len(fresh))
	for _, it := range existing {
		seen[it.ID] = true
	}

	var added []Item
	for _, it := range fresh {
		if seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		added = append(added, it)
	}

	out := make([]Item, 0, len(added)+len(existing))
	out = append(out, added...)
	out = append(out, existing...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, len(added)
}
