package view

import (
	"errors"
	"strings"
	"testing"

	"github.com/muu0726/Tech-Information/internal/news"
)

type memStore struct {
	data   map[string][]string
	writes map[string]int
	fail   error
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]string{}, writes: map[string]int{}}
}

func (m *memStore) LoadIDs(key string) []string {
	return append([]string{}, m.data[key]...)
}

func (m *memStore) SaveIDs(key string, ids []string) error {
	m.writes[key]++
	if m.fail != nil {
		return m.fail
	}
	m.data[key] = append([]string{}, ids...)
	return nil
}

func item(id, category, updated string) news.Item {
	return news.Item{ID: id, Title: "Item " + id, Category: category, Updated: news.ParseTimestamp(updated)}
}

func sampleFeed() []news.Item {
	return []news.Item{
		item("p1", "Programming", "2024-01-03"),
		item("a1", "AI", "2024-01-05"),
		item("i1", "IT", "2024-01-01"),
		item("s1", "Security", "2024-01-04"),
		item("a2", "AI", "2024-01-02"),
	}
}

func cardIDs(v View) string {
	ids := make([]string, len(v.Cards))
	for i, c := range v.Cards {
		ids[i] = c.Item.ID
	}
	return strings.Join(ids, ",")
}

func TestStartsLoading(t *testing.T) {
	c := New(newMemStore())
	v := c.Snapshot()
	if v.Status != Loading {
		t.Errorf("expected Loading, got %v", v.Status)
	}
	if v.State != (State{Category: news.All}) {
		t.Errorf("expected default state, got %+v", v.State)
	}
}

func TestLoadSortsNewestFirst(t *testing.T) {
	c := New(newMemStore())
	v := c.Load(sampleFeed())
	if v.Status != Populated {
		t.Fatalf("expected Populated, got %v", v.Status)
	}
	if got := cardIDs(v); got != "a1,s1,p1,a2,i1" {
		t.Errorf("order = %s, want a1,s1,p1,a2,i1", got)
	}
	if v.Total != 5 {
		t.Errorf("expected total 5, got %d", v.Total)
	}
}

func TestLoadDoesNotMutateInput(t *testing.T) {
	feed := sampleFeed()
	New(newMemStore()).Load(feed)
	if feed[0].ID != "p1" {
		t.Errorf("input slice was reordered: first is %s", feed[0].ID)
	}
}

func TestLoadTiesKeepInputOrder(t *testing.T) {
	c := New(newMemStore())
	v := c.Load([]news.Item{
		item("x", "AI", "2024-01-01"),
		item("y", "AI", "2024-01-01"),
		item("z", "AI", "2024-01-01"),
	})
	if got := cardIDs(v); got != "x,y,z" {
		t.Errorf("ties reordered: %s", got)
	}
}

func TestCategoryFilters(t *testing.T) {
	tests := []struct {
		cat  news.Category
		want string
	}{
		{news.All, "a1,s1,p1,a2,i1"},
		{news.AI, "a1,a2"},
		{news.Programming, "p1"},
		{news.IT, "s1,i1"},
	}
	c := New(newMemStore())
	c.Load(sampleFeed())
	for _, tt := range tests {
		v := c.SelectCategory(tt.cat)
		if got := cardIDs(v); got != tt.want {
			t.Errorf("category %s: got %s, want %s", tt.cat, got, tt.want)
		}
	}
}

func TestITIsCatchAll(t *testing.T) {
	c := New(newMemStore())
	c.Load([]news.Item{
		item("1", "AI", "2024-01-02"),
		item("2", "Other", "2024-01-01"),
	})
	v := c.SelectCategory(news.IT)
	if got := cardIDs(v); got != "2" {
		t.Errorf("IT tab = %s, want 2", got)
	}
}

func TestSavedOnly(t *testing.T) {
	st := newMemStore()
	st.data[KeySaved] = []string{"1"}
	c := New(st)
	c.Load([]news.Item{{ID: "1"}, {ID: "2"}})

	v := c.ToggleSavedOnly()
	if !v.State.SavedOnly || v.State.Category != news.All {
		t.Fatalf("unexpected state %+v", v.State)
	}
	if got := cardIDs(v); got != "1" {
		t.Errorf("saved-only view = %s, want 1", got)
	}
	if !v.Cards[0].Saved {
		t.Error("expected card to be marked saved")
	}
}

func TestSavedOnlyCombinesWithCategory(t *testing.T) {
	c := New(newMemStore())
	c.Load(sampleFeed())
	c.ToggleSaved("a1")
	c.ToggleSaved("p1")

	c.SelectCategory(news.AI)
	v := c.ToggleSavedOnly()
	if got := cardIDs(v); got != "a1" {
		t.Errorf("saved AI items = %s, want a1", got)
	}
}

func TestSelectCategoryLeavesSavedOnly(t *testing.T) {
	c := New(newMemStore())
	c.Load(sampleFeed())
	c.ToggleSavedOnly()
	v := c.SelectCategory(news.AI)
	if v.State.SavedOnly {
		t.Error("selecting a tab should clear saved-only")
	}
}

func TestLeavingSavedOnlyResetsCategory(t *testing.T) {
	c := New(newMemStore())
	c.Load(sampleFeed())
	c.SelectCategory(news.Programming)
	c.ToggleSavedOnly()
	v := c.ToggleSavedOnly()
	if v.State != (State{Category: news.All}) {
		t.Errorf("expected reset to All, got %+v", v.State)
	}
}

func TestToggleSavedRoundTrip(t *testing.T) {
	st := newMemStore()
	c := New(st)
	c.Load(sampleFeed())

	v, err := c.ToggleSaved("a1")
	if err != nil {
		t.Fatalf("ToggleSaved: %v", err)
	}
	if !c.IsSaved("a1") || v.SavedCount != 1 {
		t.Errorf("expected a1 saved, count 1; got saved=%v count=%d", c.IsSaved("a1"), v.SavedCount)
	}
	if got := strings.Join(st.data[KeySaved], ","); got != "a1" {
		t.Errorf("persisted saved set = %q, want a1", got)
	}

	v, _ = c.ToggleSaved("a1")
	if c.IsSaved("a1") || v.SavedCount != 0 {
		t.Error("expected a1 unsaved after second toggle")
	}
	if len(st.data[KeySaved]) != 0 {
		t.Errorf("expected empty persisted set, got %v", st.data[KeySaved])
	}
	if st.writes[KeySaved] != 2 {
		t.Errorf("expected a write per toggle, got %d", st.writes[KeySaved])
	}
}

func TestToggleSavedKeepsInsertionOrder(t *testing.T) {
	st := newMemStore()
	c := New(st)
	c.ToggleSaved("b")
	c.ToggleSaved("a")
	c.ToggleSaved("c")
	c.ToggleSaved("a")
	if got := strings.Join(st.data[KeySaved], ","); got != "b,c" {
		t.Errorf("persisted order = %s, want b,c", got)
	}
}

func TestMarkReadIdempotent(t *testing.T) {
	st := newMemStore()
	c := New(st)
	c.Load(sampleFeed())

	c.MarkRead("p1")
	once := c.ReadIDs()
	v, err := c.MarkRead("p1")
	if err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	twice := c.ReadIDs()

	if strings.Join(once, ",") != strings.Join(twice, ",") || len(twice) != 1 {
		t.Errorf("read set changed on second mark: %v -> %v", once, twice)
	}
	if st.writes[KeyRead] != 1 {
		t.Errorf("expected one write, got %d", st.writes[KeyRead])
	}
	for _, card := range v.Cards {
		if card.Item.ID == "p1" && !card.Read {
			t.Error("expected p1 card marked read")
		}
	}
}

func TestPersistedSetsLoadedAtStart(t *testing.T) {
	st := newMemStore()
	st.data[KeySaved] = []string{"a2", "gone"}
	st.data[KeyRead] = []string{"i1"}
	c := New(st)
	v := c.Load(sampleFeed())

	if v.SavedCount != 2 {
		t.Errorf("expected saved count to include stale id, got %d", v.SavedCount)
	}
	v = c.ToggleSavedOnly()
	if got := cardIDs(v); got != "a2" {
		t.Errorf("stale id should not render: got %s", got)
	}
	if !c.IsRead("i1") {
		t.Error("expected i1 read from store")
	}
}

func TestEmptyStates(t *testing.T) {
	c := New(newMemStore())
	v := c.Load(nil)
	if v.Status != Empty {
		t.Errorf("empty feed: expected Empty, got %v", v.Status)
	}
	if v.Cards != nil {
		t.Errorf("expected no cards, got %d", len(v.Cards))
	}

	c = New(newMemStore())
	c.Load([]news.Item{item("1", "AI", "2024-01-01")})
	v = c.SelectCategory(news.Programming)
	if v.Status != Empty {
		t.Errorf("filtered-out feed: expected Empty, got %v", v.Status)
	}
	v = c.SelectCategory(news.AI)
	if v.Status != Populated {
		t.Errorf("expected Populated after switching back, got %v", v.Status)
	}

	v = c.ToggleSavedOnly()
	if v.Status != Empty {
		t.Errorf("saved-only with nothing saved: expected Empty, got %v", v.Status)
	}
}

func TestFailIsTerminal(t *testing.T) {
	c := New(newMemStore())
	boom := errors.New("HTTP 404")
	v := c.Fail(boom)
	if v.Status != Error || !errors.Is(v.Err, boom) {
		t.Fatalf("expected Error with cause, got %v %v", v.Status, v.Err)
	}

	if v := c.Load(sampleFeed()); v.Status != Error {
		t.Errorf("Load after Fail: expected Error, got %v", v.Status)
	}
	if v := c.SelectCategory(news.AI); v.Status != Error {
		t.Errorf("SelectCategory after Fail: expected Error, got %v", v.Status)
	}
	if v, _ := c.ToggleSaved("x"); v.Status != Error || v.Cards != nil {
		t.Errorf("ToggleSaved after Fail: expected Error with no cards, got %v", v.Status)
	}
}

func TestActionsNeverReturnToLoading(t *testing.T) {
	c := New(newMemStore())
	c.Load(sampleFeed())
	views := []View{
		c.SelectCategory(news.IT),
		c.ToggleSavedOnly(),
		c.ToggleSavedOnly(),
	}
	v, _ := c.ToggleSaved("a1")
	views = append(views, v)
	v, _ = c.MarkRead("a1")
	views = append(views, v)
	for i, v := range views {
		if v.Status == Loading {
			t.Errorf("action %d returned Loading", i)
		}
	}
}

func TestPersistFailureKeepsMemoryState(t *testing.T) {
	st := newMemStore()
	st.fail = errors.New("disk full")
	c := New(st)
	c.Load(sampleFeed())

	v, err := c.ToggleSaved("a1")
	if err == nil {
		t.Fatal("expected persistence error")
	}
	if !errors.Is(err, st.fail) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
	if !c.IsSaved("a1") || v.SavedCount != 1 {
		t.Error("in-memory saved set should keep the toggle")
	}

	if _, err := c.MarkRead("a1"); err == nil {
		t.Error("expected persistence error from MarkRead")
	}
	if !c.IsRead("a1") {
		t.Error("in-memory read set should keep the mark")
	}
}

func TestItemLookup(t *testing.T) {
	c := New(newMemStore())
	c.Load(sampleFeed())
	if it, ok := c.Item("s1"); !ok || it.Category != "Security" {
		t.Errorf("Item(s1) = %+v, %v", it, ok)
	}
	if _, ok := c.Item("missing"); ok {
		t.Error("expected missing item lookup to fail")
	}
}

func TestStatusString(t *testing.T) {
	if Populated.String() != "populated" || Status(42).String() != "Status(42)" {
		t.Errorf("unexpected Status strings: %s %s", Populated, Status(42))
	}
}
