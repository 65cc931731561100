// Package news holds the feed document model shared by the reader, the
// collector and the summarizer.
package news

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Category is a feed tab. The zero value is All.
type Category string

const (
	All         Category = "all"
	AI          Category = "AI"
	Programming Category = "Programming"
	IT          Category = "IT"
)

// Categories returns the tabs in display order.
func Categories() []Category {
	return []Category{All, AI, Programming, IT}
}

// ParseCategory maps a tab value to a Category, ignoring case.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return All, true
	case "ai":
		return AI, true
	case "programming":
		return Programming, true
	case "it":
		return IT, true
	}
	return All, false
}

// Item is one entry of the feed document.
type Item struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Link     string    `json:"link"`
	Source   string    `json:"source"`
	Category string    `json:"category"`
	Summary  string    `json:"summary"`
	Updated  Timestamp `json:"updated"`

	OriginalTitle string `json:"original_title,omitempty"`
	AISummaryDone bool   `json:"ai_summary_done"`
}

// TimeLayout is how the collector writes Updated.
const TimeLayout = "2006-01-02T15:04:05"

// Layouts carrying their own offset, or a bare date, which is midnight UTC.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02",
}

// Date-times without an offset are wall-clock times in the local zone.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	TimeLayout,
	"2006-01-02 15:04:05",
}

// Timestamp decodes the loosely formatted "updated" field. Values that
// match none of the known layouts decode as the zero time. The original
// text is kept so rewriting a document does not change it.
type Timestamp struct {
	time.Time
	raw string
}

// NewTimestamp wraps t for writing in TimeLayout.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func ParseTimestamp(s string) Timestamp {
	s = strings.TrimSpace(s)
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t, raw: s}
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return Timestamp{Time: t, raw: s}
		}
	}
	return Timestamp{raw: s}
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// numbers and other shapes are tolerated the same way as bad strings
		*t = Timestamp{}
		return nil
	}
	*t = ParseTimestamp(s)
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	switch {
	case t.raw != "":
		return json.Marshal(t.raw)
	case t.IsZero():
		return []byte(`""`), nil
	}
	return json.Marshal(t.Format(TimeLayout))
}
