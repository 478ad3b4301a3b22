package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store holds discharged items, most recent first.
type Store struct {
	items []Item
	now   func() time.Time
	newID func() string
}

// NewStore returns an empty store. Nil hooks fall back to time.Now and uuid.
func NewStore(now func() time.Time, newID func() string) *Store {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &Store{now: now, newID: newID}
}

// Append classifies text and prepends a new item.
// It returns ErrEmptyText, and stores nothing, when text is blank,
// and ErrUnknownMode when mode is outside the closed set.
func (s *Store) Append(text string, mode Mode, manual Category) (Item, error) {
	if !mode.Valid() {
		return Item{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	t := strings.TrimSpace(text)
	if t == "" {
		return Item{}, ErrEmptyText
	}

	it := Item{
		ID:        s.newID(),
		Text:      t,
		Category:  Classify(t, manual),
		Mode:      mode,
		CreatedAt: s.now(),
	}
	s.items = append([]Item{it}, s.items...)
	return it, nil
}

// Remove deletes the item with id. Unknown ids are ignored.
func (s *Store) Remove(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// Recategorize changes only the category of the item with id.
func (s *Store) Recategorize(id string, c Category) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items[i].Category = c
	return true
}

// Query returns the matching items in store order. The slice is never shared.
func (s *Store) Query(q Query) []Item {
	return q.filter(s.items)
}

func (s *Store) Get(id string) (Item, bool) {
	i := s.index(id)
	if i < 0 {
		return Item{}, false
	}
	return s.items[i], true
}

func (s *Store) Len() int { return len(s.items) }

// Load replaces the contents with items, newest CreatedAt first.
// Items sharing a timestamp keep their relative input order.
func (s *Store) Load(items []Item) {
	cp := make([]Item, len(items))
	copy(cp, items)
	sort.SliceStable(cp, func(i, j int) bool {
		return cp[i].CreatedAt.After(cp[j].CreatedAt)
	})
	s.items = cp
}

func (s *Store) index(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
