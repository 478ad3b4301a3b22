package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/ramanasai/mindclean/internal/config"
)

const defaultHour = 20

// NextAt computes the next occurrence of the reminder time that is on a configured workday and not a holiday.
// ok is false when no weekday is enabled.
func NextAt(now time.Time, cfg config.Config) (next time.Time, ok bool) {
	loc := cfg.Location()
	now = now.In(loc)

	// parse "HH:MM"
	hour, min := defaultHour, 0
	if t, err := time.Parse("15:04", strings.TrimSpace(cfg.Reminder.Time)); err == nil {
		hour, min = t.Hour(), t.Minute()
	}
	workdays := map[string]bool{}
	for _, d := range cfg.Reminder.Workdays {
		workdays[d] = true
	}
	if len(workdays) == 0 {
		return time.Time{}, false
	}
	holidays := map[string]bool{}
	for _, h := range cfg.Reminder.Holidays {
		holidays[strings.TrimSpace(h)] = true
	}
	usable := func(t time.Time) bool {
		return workdays[t.Weekday().String()[:3]] && !holidays[t.Format("2006-01-02")]
	}

	// candidate today at hh:mm
	cand := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, loc)
	if !now.Before(cand) {
		cand = cand.AddDate(0, 0, 1)
	}
	// a year of holidays is the worst case
	for i := 0; i < 366; i++ {
		if usable(cand) {
			return cand, true
		}
		cand = cand.AddDate(0, 0, 1)
	}
	return time.Time{}, false
}

// RunConfigured runs the reminder callback at the configured schedule until ctx is canceled.
func RunConfigured(ctx context.Context, cfg config.Config, f func()) {
	next, ok := NextAt(time.Now(), cfg)
	if !ok {
		return
	}
	t := time.NewTimer(time.Until(next))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			f()
			if next, ok = NextAt(time.Now(), cfg); !ok {
				return
			}
			t.Reset(time.Until(next))
		}
	}
}
