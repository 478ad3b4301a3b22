package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrEmptyText is returned when a discharge carries no text once trimmed.
	ErrEmptyText = errors.New("empty text")
	// ErrUnknownCategory is returned by ParseCategory.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownMode is returned by ParseMode.
	ErrUnknownMode = errors.New("unknown mode")
)

// Category is the bucket an item is filed under.
type Category string

const (
	CategoryTodo       Category = "todo"
	CategoryDelegate   Category = "delegate"
	CategoryIntrospect Category = "introspect"
	CategoryForget     Category = "forget"
)

// Categories lists every category in display and export order.
var Categories = []Category{CategoryTodo, CategoryDelegate, CategoryIntrospect, CategoryForget}

func (c Category) Valid() bool {
	switch c {
	case CategoryTodo, CategoryDelegate, CategoryIntrospect, CategoryForget:
		return true
	default:
		return false
	}
}

func (c Category) Label() string {
	switch c {
	case CategoryTodo:
		return "À faire"
	case CategoryDelegate:
		return "À déléguer"
	case CategoryIntrospect:
		return "Introspection"
	case CategoryForget:
		return "À oublier"
	default:
		return string(c)
	}
}

func (c Category) Icon() string {
	switch c {
	case CategoryTodo:
		return "✅"
	case CategoryDelegate:
		return "🤝"
	case CategoryIntrospect:
		return "🧘"
	case CategoryForget:
		return "🗑️"
	default:
		return "💭"
	}
}

// ParseCategory accepts a category id or its French label, case-insensitively.
func ParseCategory(input string) (Category, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	for _, c := range Categories {
		if s == string(c) || s == strings.ToLower(c.Label()) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, input)
}

// Mode is the capture context an item was created in.
type Mode string

const (
	ModeDump    Mode = "dump"
	ModeConfide Mode = "confide"
)

var Modes = []Mode{ModeDump, ModeConfide}

func (m Mode) Valid() bool {
	return m == ModeDump || m == ModeConfide
}

func (m Mode) Label() string {
	switch m {
	case ModeDump:
		return "Vider ma tête"
	case ModeConfide:
		return "Se confier"
	default:
		return string(m)
	}
}

func (m Mode) Icon() string {
	if m == ModeConfide {
		return "💭"
	}
	return "🧠"
}

// ParseMode accepts a mode id or its French label, case-insensitively.
func ParseMode(input string) (Mode, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	for _, m := range Modes {
		if s == string(m) || s == strings.ToLower(m.Label()) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, input)
}

// Item is one discharged thought.
type Item struct {
	ID        string    `json:"id" yaml:"id"`
	Text      string    `json:"text" yaml:"text"`
	Category  Category  `json:"category" yaml:"category"`
	Mode      Mode      `json:"mode" yaml:"mode"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Query selects items. Zero-valued fields match anything.
type Query struct {
	Mode     Mode
	Category Category
}

func (q Query) Match(it Item) bool {
	if q.Mode != "" && it.Mode != q.Mode {
		return false
	}
	if q.Category != "" && it.Category != q.Category {
		return false
	}
	return true
}

// Day is a calendar day, independent of time of day.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar day of t in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

func (d Day) IsZero() bool { return d == Day{} }

// Start returns midnight of d in loc.
func (d Day) Start(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays moves d by n calendar days.
func (d Day) AddDays(n int) Day {
	return DayOf(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC))
}

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// ParseDay parses the YYYY-MM-DD form produced by Day.String.
// An empty string yields the zero Day.
func ParseDay(s string) (Day, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Day{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return DayOf(t), nil
}

func (d Day) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Day) UnmarshalText(b []byte) error {
	parsed, err := ParseDay(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
