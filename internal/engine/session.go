package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Journal receives every successful mutation of a Session so it can be
// persisted outside the engine.
type Journal interface {
	ItemAdded(ctx context.Context, it Item) error
	ItemRemoved(ctx context.Context, id string) error
	ItemRecategorized(ctx context.Context, id string, c Category) error
	StreakSaved(ctx context.Context, s Streak) error
}

// Session owns the item store and the streak of one user.
type Session struct {
	mu      sync.Mutex
	store   *Store
	streak  Streak
	now     func() time.Time
	newID   func() string
	loc     *time.Location
	journal Journal
	logger  *slog.Logger
}

type Option func(*Session)

func WithClock(now func() time.Time) Option { return func(s *Session) { s.now = now } }

func WithIDGenerator(newID func() string) Option { return func(s *Session) { s.newID = newID } }

func WithJournal(j Journal) Option { return func(s *Session) { s.journal = j } }

func WithLogger(l *slog.Logger) Option { return func(s *Session) { s.logger = l } }

// WithLocation sets the time zone used to decide which calendar day a
// discharge belongs to.
func WithLocation(loc *time.Location) Option { return func(s *Session) { s.loc = loc } }

func NewSession(opts ...Option) *Session {
	s := &Session{now: time.Now, loc: time.Local}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	s.store = NewStore(s.now, s.newID)
	return s
}

// Discharge classifies and stores text, then records the day's activity.
func (s *Session) Discharge(ctx context.Context, text string, mode Mode, manual Category) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.store.Append(text, mode, manual)
	if err != nil {
		return Item{}, err
	}
	if s.journal != nil {
		if err := s.journal.ItemAdded(ctx, it); err != nil {
			s.store.Remove(it.ID)
			return Item{}, fmt.Errorf("journal item: %w", err)
		}
	}

	s.streak = s.streak.RecordActivity(DayOf(it.CreatedAt.In(s.loc)))
	s.logger.Debug("discharged", "id", it.ID, "mode", it.Mode, "category", it.Category, "streak", s.streak.Count)

	if s.journal != nil {
		if err := s.journal.StreakSaved(ctx, s.streak); err != nil {
			s.logger.Warn("streak not saved", "error", err)
			return it, fmt.Errorf("journal streak: %w", err)
		}
	}
	return it, nil
}

// Remove deletes an item. It reports false, without error, for unknown ids.
func (s *Session) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.store.Get(id)
	if !ok {
		return false, nil
	}
	if s.journal != nil {
		if err := s.journal.ItemRemoved(ctx, id); err != nil {
			return false, fmt.Errorf("journal remove: %w", err)
		}
	}
	s.store.Remove(id)
	s.logger.Debug("removed", "id", id, "category", prev.Category)
	return true, nil
}

// Recategorize moves an item to c. It reports false, without error, for unknown ids.
func (s *Session) Recategorize(ctx context.Context, id string, c Category) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.Get(id); !ok {
		return false, nil
	}
	if s.journal != nil {
		if err := s.journal.ItemRecategorized(ctx, id, c); err != nil {
			return false, fmt.Errorf("journal recategorize: %w", err)
		}
	}
	s.store.Recategorize(id, c)
	s.logger.Debug("recategorized", "id", id, "category", c)
	return true, nil
}

func (s *Session) Query(q Query) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Query(q)
}

func (s *Session) Get(id string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Get(id)
}

func (s *Session) Streak() Streak {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streak
}

func (s *Session) Location() *time.Location { return s.loc }

// Weekly returns the seven-day histogram of mode ending on ref.
func (s *Session) Weekly(mode Mode, ref time.Time) Histogram {
	return WeeklyHistogram(s.Query(Query{}), mode, ref.In(s.loc))
}

// Report renders the text export of mode as of ref.
func (s *Session) Report(mode Mode, ref time.Time) string {
	s.mu.Lock()
	items := s.store.Query(Query{})
	count := s.streak.Count
	s.mu.Unlock()
	return FormatReport(items, mode, count, ref.In(s.loc))
}

// Restore replaces the session state without notifying the journal.
func (s *Session) Restore(items []Item, streak Streak) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Load(items)
	s.streak = streak
}
