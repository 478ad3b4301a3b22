package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	agoRe      = regexp.MustCompile(`^(\d+)\s*(d|day|days|w|week|weeks)\s+ago$`)
	ilYaRe     = regexp.MustCompile(`^il y a (\d+)\s*(j|jour|jours|s|semaine|semaines)$`)
	dayFormats = []string{
		"2006-01-02",
		"2006/01/02",
		"02/01/2006", // French order
		"2 Jan 2006",
		"January 2, 2006",
	}
)

// ParseRefDate resolves a --date value to a reference time in loc.
// Empty input and "today" give now; named days and explicit dates give noon of that day.
func ParseRefDate(input string, now time.Time, loc *time.Location) (time.Time, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	now = now.In(loc)
	noon := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, loc)
	}

	switch input {
	case "", "today", "now", "aujourd'hui", "auj":
		return now, nil
	case "yesterday", "hier":
		return noon(now.AddDate(0, 0, -1)), nil
	case "last week", "semaine dernière", "la semaine dernière":
		return noon(now.AddDate(0, 0, -7)), nil
	}

	if m := agoRe.FindStringSubmatch(input); m != nil {
		return noon(now.AddDate(0, 0, -daysFor(m[1], m[2]))), nil
	}
	if m := ilYaRe.FindStringSubmatch(input); m != nil {
		return noon(now.AddDate(0, 0, -daysFor(m[1], m[2]))), nil
	}

	for _, format := range dayFormats {
		if t, err := time.ParseInLocation(format, input, loc); err == nil {
			return noon(t), nil
		}
	}
	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t.In(loc), nil
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", input)
}

func daysFor(num, unit string) int {
	n, _ := strconv.Atoi(num)
	if strings.HasPrefix(unit, "w") || strings.HasPrefix(unit, "s") {
		return n * 7
	}
	return n
}

// DayRange returns [start of the day days-1 before ref, start of the day after ref).
func DayRange(ref time.Time, days int) (time.Time, time.Time) {
	loc := ref.Location()
	end := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	return end.AddDate(0, 0, -max(days, 1)), end
}
