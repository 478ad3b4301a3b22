package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ramanasai/mindclean/internal/engine"
)

// LockedText replaces the text of items that cannot be decrypted.
const LockedText = "🔒 (texte chiffré)"

// fixed width so created_at sorts lexically
const tsLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Journal persists session changes to sqlite. It implements engine.Journal.
type Journal struct {
	db     *sql.DB
	sealer *Sealer
	logger *slog.Logger
}

// NewJournal wraps dbh. sealer may be nil; logger may be nil.
func NewJournal(dbh *sql.DB, sealer *Sealer, logger *slog.Logger) *Journal {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Journal{db: dbh, sealer: sealer, logger: logger}
}

var _ engine.Journal = (*Journal)(nil)

func (j *Journal) ItemAdded(ctx context.Context, it engine.Item) error {
	text, encrypted := it.Text, false
	if it.Mode == engine.ModeConfide {
		var err error
		if text, encrypted, err = j.sealer.Seal(it.Text); err != nil {
			return err
		}
	}

	_, err := j.db.ExecContext(ctx, `
		INSERT INTO items (id, text, category, mode, created_at, encrypted)
		VALUES (?, ?, ?, ?, ?, ?)
	`, it.ID, text, string(it.Category), string(it.Mode), it.CreatedAt.UTC().Format(tsLayout), encrypted)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

func (j *Journal) ItemRemoved(ctx context.Context, id string) error {
	if _, err := j.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

func (j *Journal) ItemRecategorized(ctx context.Context, id string, c engine.Category) error {
	if _, err := j.db.ExecContext(ctx, `UPDATE items SET category = ? WHERE id = ?`, string(c), id); err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return nil
}

func (j *Journal) StreakSaved(ctx context.Context, s engine.Streak) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO streak (id, count, last_day) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET count = excluded.count, last_day = excluded.last_day
	`, s.Count, s.LastDay.String())
	if err != nil {
		return fmt.Errorf("failed to save streak: %w", err)
	}
	return nil
}

// LoadItems returns every stored item, newest first.
// Rows that cannot be decrypted keep their metadata and get LockedText.
func (j *Journal) LoadItems(ctx context.Context) ([]engine.Item, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, text, category, mode, created_at, encrypted
		FROM items
		ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []engine.Item
	for rows.Next() {
		var (
			it        engine.Item
			text, ts  string
			cat, mode string
			encrypted bool
		)
		if err := rows.Scan(&it.ID, &text, &cat, &mode, &ts, &encrypted); err != nil {
			return nil, err
		}
		it.Category = engine.Category(cat)
		it.Mode = engine.Mode(mode)
		if it.CreatedAt, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			return nil, fmt.Errorf("item %s: bad created_at %q: %w", it.ID, ts, err)
		}
		it.Text, err = j.sealer.Open(text, encrypted)
		if err != nil {
			j.logger.Warn("cannot decrypt item", "id", it.ID, "err", err)
			it.Text = LockedText
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// LoadStreak returns the stored streak, or the zero streak on a fresh database.
func (j *Journal) LoadStreak(ctx context.Context) (engine.Streak, error) {
	var (
		s   engine.Streak
		day string
	)
	err := j.db.QueryRowContext(ctx, `SELECT count, last_day FROM streak WHERE id = 1`).Scan(&s.Count, &day)
	if errors.Is(err, sql.ErrNoRows) {
		return engine.Streak{}, nil
	}
	if err != nil {
		return engine.Streak{}, err
	}
	if s.LastDay, err = engine.ParseDay(day); err != nil {
		return engine.Streak{}, err
	}
	return s, nil
}

// Restore loads items and streak into s.
func (j *Journal) Restore(ctx context.Context, s *engine.Session) error {
	items, err := j.LoadItems(ctx)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}
	streak, err := j.LoadStreak(ctx)
	if err != nil {
		return fmt.Errorf("load streak: %w", err)
	}
	s.Restore(items, streak)
	j.logger.Debug("session restored", "items", len(items), "streak", streak.Count)
	return nil
}

// CountByDay returns item counts per local day for mode in [from, to).
func (j *Journal) CountByDay(ctx context.Context, mode engine.Mode, from, to time.Time) (map[engine.Day]int, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT created_at FROM items
		WHERE mode = ? AND created_at >= ? AND created_at < ?
	`, string(mode), from.UTC().Format(tsLayout), to.UTC().Format(tsLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loc := from.Location()
	counts := make(map[engine.Day]int)
	for rows.Next() {
		var ts string
		if err := rows.Scan(&ts); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			continue
		}
		counts[engine.DayOf(t.In(loc))]++
	}
	return counts, rows.Err()
}
