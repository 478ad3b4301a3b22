package engine

import "time"

// WeekDays is the length of the trailing window used by WeeklyHistogram.
const WeekDays = 7

// DayCount is one bar of the weekly histogram.
type DayCount struct {
	Day   Day    `json:"day" yaml:"day"`
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// Histogram is the trailing seven-day activity of one mode.
type Histogram struct {
	Days     [WeekDays]DayCount `json:"days" yaml:"days"`
	Total    int                `json:"total" yaml:"total"`
	MaxCount int                `json:"max_count" yaml:"max_count"`
}

// WeeklyHistogram counts items of mode per calendar day, from six days before
// ref up to ref itself. Days are compared in ref's location.
// MaxCount is floored at 1 so it can always be used as a divisor.
func WeeklyHistogram(items []Item, mode Mode, ref time.Time) Histogram {
	loc := ref.Location()
	today := DayOf(ref)

	var h Histogram
	index := make(map[Day]int, WeekDays)
	for i := 0; i < WeekDays; i++ {
		d := today.AddDays(i - (WeekDays - 1))
		h.Days[i] = DayCount{Day: d, Label: shortWeekday(d.Start(loc).Weekday())}
		index[d] = i
	}

	for _, it := range items {
		if it.Mode != mode {
			continue
		}
		if i, ok := index[DayOf(it.CreatedAt.In(loc))]; ok {
			h.Days[i].Count++
		}
	}

	h.MaxCount = 1
	for _, d := range h.Days {
		h.Total += d.Count
		if d.Count > h.MaxCount {
			h.MaxCount = d.Count
		}
	}
	return h
}
