package view

import "github.com/samber/lo"

// idSet is an insertion-ordered set of item ids. The order is what gets
// persisted.
type idSet struct {
	order []string
	index map[string]struct{}
}

func newIDSet(ids []string) *idSet {
	s := &idSet{index: make(map[string]struct{}, len(ids))}
	for _, id := range lo.Uniq(ids) {
		s.add(id)
	}
	return s
}

func (s *idSet) has(id string) bool {
	_, ok := s.index[id]
	return ok
}

func (s *idSet) add(id string) bool {
	if s.has(id) {
		return false
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

func (s *idSet) remove(id string) bool {
	if !s.has(id) {
		return false
	}
	delete(s.index, id)
	s.order = lo.Without(s.order, id)
	return true
}

func (s *idSet) len() int { return len(s.order) }

func (s *idSet) list() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
