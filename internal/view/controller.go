// Package view owns the reader's state: the loaded feed, the saved and
// read markers, and the active tab. Every action returns a fresh View for
// the presentation layer to draw.
package view

import (
	"fmt"

	"github.com/muu0726/Tech-Information/internal/logger"
	"github.com/muu0726/Tech-Information/internal/news"
	"github.com/samber/lo"
)

// Persisted keys for the two id sets.
const (
	KeySaved = "savedIds"
	KeyRead  = "readIds"
)

// Store persists id sets. LoadIDs must not fail: missing or malformed
// values come back empty.
type Store interface {
	LoadIDs(key string) []string
	SaveIDs(key string, ids []string) error
}

// Status is the render state of the page.
type Status int

const (
	Loading Status = iota
	Empty
	Populated
	Error
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Empty:
		return "empty"
	case Populated:
		return "populated"
	case Error:
		return "error"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// State is the transient tab selection.
type State struct {
	Category  news.Category
	SavedOnly bool
}

// Card is one visible item with its markers.
type Card struct {
	Item  news.Item
	Saved bool
	Read  bool
}

// View is an immutable snapshot of what to draw.
type View struct {
	Status     Status
	State      State
	Cards      []Card
	SavedCount int
	Total      int
	Err        error
}

// Controller is not safe for concurrent use; all calls are expected from
// one event loop.
type Controller struct {
	store  Store
	items  []news.Item
	saved  *idSet
	read   *idSet
	state  State
	status Status
	err    error
}

// New reads both id sets from store and starts in Loading with the
// default tab.
func New(store Store) *Controller {
	return &Controller{
		store:  store,
		saved:  newIDSet(store.LoadIDs(KeySaved)),
		read:   newIDSet(store.LoadIDs(KeyRead)),
		state:  State{Category: news.All},
		status: Loading,
	}
}

// Load installs the fetched feed, newest first. It is ignored after Fail.
func (c *Controller) Load(items []news.Item) View {
	if c.status == Error {
		return c.Snapshot()
	}
	sorted := make([]news.Item, len(items))
	copy(sorted, items)
	news.SortByUpdated(sorted)
	c.items = sorted
	c.status = Populated
	return c.Snapshot()
}

// Fail records a feed fetch failure. Error is terminal.
func (c *Controller) Fail(err error) View {
	c.items = nil
	c.status = Error
	c.err = err
	return c.Snapshot()
}

// ToggleSaved flips id in the saved set and persists the whole set. The
// in-memory change stands even when the write fails; the error is
// returned alongside the new view.
func (c *Controller) ToggleSaved(id string) (View, error) {
	if !c.saved.remove(id) {
		c.saved.add(id)
	}
	err := c.persist(KeySaved, c.saved)
	return c.Snapshot(), err
}

// MarkRead adds id to the read set. Marking an id twice writes once.
func (c *Controller) MarkRead(id string) (View, error) {
	if !c.read.add(id) {
		return c.Snapshot(), nil
	}
	err := c.persist(KeyRead, c.read)
	return c.Snapshot(), err
}

// SelectCategory switches tab and leaves the saved-only view.
func (c *Controller) SelectCategory(cat news.Category) View {
	c.state.Category = cat
	c.state.SavedOnly = false
	return c.Snapshot()
}

// ToggleSavedOnly flips the saved-only view. Leaving it returns to All.
func (c *Controller) ToggleSavedOnly() View {
	c.state.SavedOnly = !c.state.SavedOnly
	if !c.state.SavedOnly {
		c.state.Category = news.All
	}
	return c.Snapshot()
}

// IsSaved reports saved-set membership, for stale ids too.
func (c *Controller) IsSaved(id string) bool { return c.saved.has(id) }

// IsRead reports read-set membership.
func (c *Controller) IsRead(id string) bool { return c.read.has(id) }

// SavedIDs returns the saved set in insertion order.
func (c *Controller) SavedIDs() []string { return c.saved.list() }

// ReadIDs returns the read set in insertion order.
func (c *Controller) ReadIDs() []string { return c.read.list() }

// Item looks up a loaded item by id.
func (c *Controller) Item(id string) (news.Item, bool) {
	return lo.Find(c.items, func(it news.Item) bool { return it.ID == id })
}

// Snapshot builds the current View without changing anything.
func (c *Controller) Snapshot() View {
	v := View{
		Status:     c.status,
		State:      c.state,
		SavedCount: c.saved.len(),
		Total:      len(c.items),
		Err:        c.err,
	}
	if c.status == Loading || c.status == Error {
		return v
	}

	visible := Filter(c.items, c.state, c.saved.has)
	if len(visible) == 0 {
		v.Status = Empty
		return v
	}
	v.Status = Populated
	v.Cards = make([]Card, len(visible))
	for i, it := range visible {
		v.Cards[i] = Card{Item: it, Saved: c.saved.has(it.ID), Read: c.read.has(it.ID)}
	}
	return v
}

func (c *Controller) persist(key string, set *idSet) error {
	if err := c.store.SaveIDs(key, set.list()); err != nil {
		logger.Warnf("[view] persisting %s: %v", key, err)
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}
