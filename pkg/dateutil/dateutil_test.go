package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ref = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestTimeAgo(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"seconds", ref.Add(-30 * time.Second), "30 seconds ago"},
		{"one minute", ref.Add(-time.Minute), "1 minute ago"},
		{"hours", ref.Add(-3 * time.Hour), "3 hours ago"},
		{"days", ref.Add(-48 * time.Hour), "2 days ago"},
		{"weeks", ref.Add(-14 * 24 * time.Hour), "2 weeks ago"},
		{"months", ref.Add(-60 * 24 * time.Hour), "2 months ago"},
		{"years", ref.Add(-800 * 24 * time.Hour), "2 years ago"},
		{"just now", ref, "just now"},
		{"future", ref.Add(time.Hour), "in the future"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeAgo(tt.t, ref))
		})
	}
}

func TestTimeUntil(t *testing.T) {
	assert.Equal(t, "in 2 hours", TimeUntil(ref.Add(2*time.Hour), ref))
	assert.Equal(t, "in 1 day", TimeUntil(ref.Add(25*time.Hour), ref))
	assert.Equal(t, "now", TimeUntil(ref, ref))
	assert.Equal(t, "already passed", TimeUntil(ref.Add(-time.Minute), ref))
}

func TestBusinessDaysBetween(t *testing.T) {
	// Mon 2024-06-10 through Fri 2024-06-14 inclusive of start, exclusive of end.
	mon := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	nextMon := mon.AddDate(0, 0, 7)

	assert.Equal(t, 5, BusinessDaysBetween(mon, nextMon, nil))

	// A holiday on Wednesday drops one.
	wed := mon.AddDate(0, 0, 2)
	assert.Equal(t, 4, BusinessDaysBetween(mon, nextMon, []time.Time{wed}))

	// Empty and inverted ranges count zero.
	assert.Equal(t, 0, BusinessDaysBetween(mon, mon, nil))
	assert.Equal(t, 0, BusinessDaysBetween(nextMon, mon, nil))
}

func TestAddBusinessDays(t *testing.T) {
	fri := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)

	// One business day after Friday is Monday.
	got := AddBusinessDays(fri, 1, nil)
	assert.Equal(t, time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC), got)

	// Monday holiday pushes it to Tuesday.
	mon := time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)
	got = AddBusinessDays(fri, 1, []time.Time{mon})
	assert.Equal(t, time.Date(2024, 6, 18, 0, 0, 0, 0, time.UTC), got)

	// Zero days returns the start of day.
	assert.Equal(t, fri, AddBusinessDays(fri, 0, nil))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name        string
		d           time.Duration
		granularity int
		want        string
	}{
		{"zero", 0, 2, "0 seconds"},
		{"seconds only", 45 * time.Second, 2, "45 seconds"},
		{"capped at two units", 25*time.Hour + 30*time.Minute + 10*time.Second, 2, "1 day, 1 hour"},
		{"three units", 25*time.Hour + 30*time.Minute, 3, "1 day, 1 hour, 30 minutes"},
		{"singular", time.Minute + time.Second, 2, "1 minute, 1 second"},
		{"default granularity", 90 * time.Minute, 0, "1 hour, 30 minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.d, tt.granularity))
		})
	}
}

func TestWeekDates(t *testing.T) {
	// 2024-06-15 is a Saturday.
	sat := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	monWeek := WeekDates(sat, true)
	require.Len(t, monWeek, 7)
	assert.Equal(t, time.Monday, monWeek[0].Weekday())
	assert.Equal(t, 10, monWeek[0].Day())
	assert.Equal(t, time.Sunday, monWeek[6].Weekday())

	sunWeek := WeekDates(sat, false)
	assert.Equal(t, time.Sunday, sunWeek[0].Weekday())
	assert.Equal(t, 9, sunWeek[0].Day())
}

func TestMonthDates(t *testing.T) {
	assert.Len(t, MonthDates(2024, time.February), 29)
	assert.Len(t, MonthDates(2023, time.February), 28)
	assert.Len(t, MonthDates(2024, time.June), 30)

	june := MonthDates(2024, time.June)
	assert.Equal(t, 1, june[0].Day())
	assert.Equal(t, 30, june[len(june)-1].Day())
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)))  // Saturday
	assert.True(t, IsWeekend(time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)))  // Sunday
	assert.False(t, IsWeekend(time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC))) // Monday
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2024))
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(2023))
	assert.False(t, IsLeapYear(1900))
}

func TestAge(t *testing.T) {
	birth := time.Date(1990, 6, 20, 0, 0, 0, 0, time.UTC)

	// Birthday not yet reached in the reference year.
	assert.Equal(t, 33, Age(birth, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)))
	// On the birthday.
	assert.Equal(t, 34, Age(birth, time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)))
	// After the birthday.
	assert.Equal(t, 34, Age(birth, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)))
}

func TestQuarter(t *testing.T) {
	assert.Equal(t, 1, Quarter(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, Quarter(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2, Quarter(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 4, Quarter(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestQuarterRange(t *testing.T) {
	start, end, err := QuarterRange(2024, 2)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), end)

	for _, q := range []int{0, 5, -1} {
		_, _, err := QuarterRange(2024, q)
		assert.Error(t, err, "quarter %d", q)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2024-06-15", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"2024/06/15", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"January 2, 2024", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"2024-06-15 13:45:00", time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v", got)
		})
	}
}

func TestParseDateCustomLayout(t *testing.T) {
	got, err := ParseDate("15.06.2024", "02.01.2006")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateNoMatch(t *testing.T) {
	_, err := ParseDate("not a date")
	assert.Error(t, err)
}
