package engine

// Streak counts the distinct days on which something was discharged.
//
// It is a lifetime counter: any change of day increments it, even after a gap
// of several days, and it never resets.
type Streak struct {
	Count   int
	LastDay Day
}

// RecordActivity returns the streak after a discharge on today.
func (s Streak) RecordActivity(today Day) Streak {
	switch {
	case s.LastDay.IsZero():
		s.Count = 1
	case today == s.LastDay:
	default:
		s.Count++
	}
	s.LastDay = today
	return s
}
