package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreakRecordActivity(t *testing.T) {
	d1 := Day{Year: 2026, Month: 10, Day: 1}
	d2 := Day{Year: 2026, Month: 10, Day: 2}
	d9 := Day{Year: 2026, Month: 10, Day: 9}

	var s Streak
	s = s.RecordActivity(d1)
	assert.Equal(t, Streak{Count: 1, LastDay: d1}, s)

	s = s.RecordActivity(d1)
	assert.Equal(t, 1, s.Count, "same day must not inflate the streak")

	s = s.RecordActivity(d2)
	assert.Equal(t, Streak{Count: 2, LastDay: d2}, s)

	s = s.RecordActivity(d9)
	assert.Equal(t, Streak{Count: 3, LastDay: d9}, s, "gaps are not detected")
}

func TestStreakGoingBackInTimeStillCountsAsNewDay(t *testing.T) {
	s := Streak{Count: 4, LastDay: Day{Year: 2026, Month: 10, Day: 5}}
	s = s.RecordActivity(Day{Year: 2026, Month: 10, Day: 3})
	assert.Equal(t, 5, s.Count)
}

func TestDayHelpers(t *testing.T) {
	d := Day{Year: 2026, Month: 2, Day: 28}
	assert.Equal(t, Day{Year: 2026, Month: 3, Day: 1}, d.AddDays(1))
	assert.Equal(t, Day{Year: 2026, Month: 2, Day: 22}, d.AddDays(-6))
	assert.Equal(t, "2026-02-28", d.String())

	parsed, err := ParseDay("2026-02-28")
	assert.NoError(t, err)
	assert.Equal(t, d, parsed)

	zero, err := ParseDay("")
	assert.NoError(t, err)
	assert.True(t, zero.IsZero())
}
