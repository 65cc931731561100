package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muu0726/Tech-Information/internal/ai"
	"github.com/muu0726/Tech-Information/internal/config"
	"github.com/muu0726/Tech-Information/internal/news"
	"github.com/muu0726/Tech-Information/internal/view"
)

type stubFetcher map[string][]news.Item

func (s stubFetcher) Fetch(_ context.Context, src config.Source) ([]news.Item, error) {
	items, ok := s[src.Name]
	if !ok {
		return nil, errors.New("unreachable")
	}
	return items, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DataFile: filepath.Join(t.TempDir(), "data", "news.json"),
		MaxItems: 3,
		Sources: []config.Source{
			{Name: "A", URL: "https://a.example/feed", Enabled: true},
			{Name: "B", URL: "https://b.example/feed", Enabled: true},
			{Name: "Off", URL: "https://off.example/feed", Enabled: false},
		},
		AI: &config.AIConfig{Delay: "0s"},
	}
}

func stamped(id, updated string) news.Item {
	return news.Item{ID: id, Title: "t" + id, Category: "AI", Updated: news.ParseTimestamp(updated)}
}

func TestRunCollect(t *testing.T) {
	cfg := testConfig(t)
	fetcher := stubFetcher{
		"A": {stamped("a1", "2025-01-01T00:00:00"), stamped("a2", "2025-01-03T00:00:00")},
	}
	var out bytes.Buffer

	added, err := runCollect(context.Background(), &out, cfg, fetcher)
	if err != nil {
		t.Fatalf("runCollect: %v", err)
	}
	if added != 2 {
		t.Errorf("expected 2 added, got %d", added)
	}
	if !strings.Contains(out.String(), "[warn]") {
		t.Errorf("expected warning for failing source:\n%s", out.String())
	}

	items, err := news.ReadFile(cfg.DataPath())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(items) != 2 || items[0].ID != "a2" {
		t.Errorf("expected newest first, got %+v", items)
	}

	// second run: one known, two new; cap at 3
	fetcher["A"] = append(fetcher["A"], stamped("a3", "2025-01-04T00:00:00"))
	fetcher["B"] = []news.Item{stamped("b1", "2025-01-05T00:00:00")}
	added, err = runCollect(context.Background(), &out, cfg, fetcher)
	if err != nil {
		t.Fatalf("runCollect: %v", err)
	}
	if added != 2 {
		t.Errorf("expected 2 added on second run, got %d", added)
	}
	items, _ = news.ReadFile(cfg.DataPath())
	if len(items) != 3 || items[0].ID != "b1" || items[2].ID != "a2" {
		t.Errorf("unexpected merged document: %v", itemIDs(items))
	}
}

func TestRunCollectNothingNew(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer
	added, err := runCollect(context.Background(), &out, cfg, stubFetcher{})
	if err != nil || added != 0 {
		t.Fatalf("runCollect = %d, %v", added, err)
	}
	if !strings.Contains(out.String(), "No new articles.") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestRunCollectKeepsCorruptDocument(t *testing.T) {
	cfg := testConfig(t)
	path := cfg.DataPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	corrupt := []byte(`[{"id": "x",`)
	if err := os.WriteFile(path, corrupt, 0o644); err != nil {
		t.Fatal(err)
	}

	fetcher := stubFetcher{"A": {stamped("a1", "2025-01-01T00:00:00")}}
	var out bytes.Buffer
	if _, err := runCollect(context.Background(), &out, cfg, fetcher); err == nil {
		t.Fatal("expected error for corrupt feed document")
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, corrupt) {
		t.Errorf("corrupt document was overwritten: %s", got)
	}
}

type stubSummarizer struct{}

func (stubSummarizer) Summarize(_ context.Context, title, _ string) (ai.Digest, error) {
	return ai.Digest{TranslatedTitle: "JP " + title, Summary: "・s"}, nil
}

func TestRunSummarize(t *testing.T) {
	cfg := testConfig(t)
	doc := []news.Item{stamped("1", "2025-01-01T00:00:00"), stamped("2", "2025-01-02T00:00:00")}
	doc[1].AISummaryDone = true
	if err := news.WriteFile(cfg.DataPath(), doc); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	n, err := runSummarize(context.Background(), &out, cfg, stubSummarizer{})
	if err != nil || n != 1 {
		t.Fatalf("runSummarize = %d, %v", n, err)
	}

	items, _ := news.ReadFile(cfg.DataPath())
	if items[0].Title != "JP t1" || items[0].OriginalTitle != "t1" || !items[0].AISummaryDone {
		t.Errorf("item not rewritten: %+v", items[0])
	}
	if items[1].Title != "t2" {
		t.Errorf("done item changed: %+v", items[1])
	}
}

func TestWriteCardsJSON(t *testing.T) {
	cards := []view.Card{
		{Item: stamped("x", "2025-01-02T03:04:05"), Saved: true},
		{Item: news.Item{ID: "y"}, Read: true},
	}
	var buf bytes.Buffer
	if err := writeCardsJSON(&buf, cards); err != nil {
		t.Fatalf("writeCardsJSON: %v", err)
	}
	var got []cardJSON
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(got) != 2 || !got[0].Saved || got[0].Updated != "2025-01-02T03:04:05" || !got[1].Read || got[1].Updated != "" {
		t.Errorf("unexpected cards %+v", got)
	}

	buf.Reset()
	if err := writeCardsJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("expected empty array, got %q", buf.String())
	}
}

func TestWriteCardsTable(t *testing.T) {
	v := view.View{
		Status:     view.Populated,
		Cards:      []view.Card{{Item: news.Item{ID: "abc", Title: "Hello", Source: "Zenn", Category: "Programming"}, Saved: true}},
		SavedCount: 1,
	}
	var buf bytes.Buffer
	if err := writeCardsTable(&buf, v); err != nil {
		t.Fatalf("writeCardsTable: %v", err)
	}
	for _, want := range []string{"abc", "Hello", "Zenn", "1 articles, 1 saved"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected %q in table:\n%s", want, buf.String())
		}
	}

	buf.Reset()
	if err := writeCardsTable(&buf, view.View{Status: view.Empty}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No articles.") {
		t.Errorf("unexpected empty output %q", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := truncate("日本語のとても長いタイトル", 6); got != "日本語..." {
		t.Errorf("got %q", got)
	}
}

func itemIDs(items []news.Item) []string {
	var ids []string
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}
