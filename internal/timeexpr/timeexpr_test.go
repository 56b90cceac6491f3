package timeexpr

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 4, 19, 12, 30, 15, 0, time.UTC)

func TestParse_Relative(t *testing.T) {
	for _, n := range []int{1, 5, 30, 90, 240} {
		t.Run(fmt.Sprintf("%dh", n), func(t *testing.T) {
			expr, err := Parse(fmt.Sprintf("%dh", n), testNow)
			require.NoError(t, err)
			assert.Equal(t, KindRelative, expr.Kind)
			assert.Equal(t, int64(n*3600), expr.Seconds())
			assert.Equal(t, testNow.Add(time.Duration(n)*time.Hour), expr.Target)
		})
		t.Run(fmt.Sprintf("%dm", n), func(t *testing.T) {
			expr, err := Parse(fmt.Sprintf("%dM", n), testNow)
			require.NoError(t, err)
			assert.Equal(t, int64(n*60), expr.Seconds())
			assert.WithinDuration(t, testNow.Add(time.Duration(n)*time.Minute), expr.Target, time.Second)
		})
	}
}

func TestParse_DailyFutureIsToday(t *testing.T) {
	expr, err := Parse("18:45tc", testNow)
	require.NoError(t, err)

	assert.Equal(t, KindDaily, expr.Kind)
	assert.Equal(t, time.Date(2025, 4, 19, 18, 45, 0, 0, time.UTC), expr.Target)
	assert.Equal(t, expr.Target.Sub(testNow), expr.Duration)
}

func TestParse_DailyPastIsTomorrow(t *testing.T) {
	expr, err := Parse("08:00TC", testNow)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 4, 20, 8, 0, 0, 0, time.UTC), expr.Target)
}

func TestParse_DailyRollsOverMonth(t *testing.T) {
	now := time.Date(2025, 4, 30, 23, 0, 0, 0, time.UTC)
	expr, err := Parse("22:00tc", now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 5, 1, 22, 0, 0, 0, time.UTC), expr.Target)
}

func TestParse_DailyInvalidRange(t *testing.T) {
	_, err := Parse("24:00tc", testNow)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Parse("12:60tc", testNow)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestParse_DateFuture(t *testing.T) {
	expr, err := Parse("20:15tc at 01.05.2025", testNow)
	require.NoError(t, err)

	assert.Equal(t, KindDate, expr.Kind)
	assert.Equal(t, time.Date(2025, 5, 1, 20, 15, 0, 0, time.UTC), expr.Target)
	assert.Equal(t, expr.Target.Sub(testNow), expr.Duration)
}

func TestParse_DatePastFails(t *testing.T) {
	_, err := Parse("20:15tc at 01.01.2025", testNow)
	assert.ErrorIs(t, err, ErrNotInFuture)

	_, err = Parse("12:30tc at 19.04.2025", testNow)
	assert.ErrorIs(t, err, ErrNotInFuture)
}

func TestParse_DateInvalidCalendar(t *testing.T) {
	_, err := Parse("10:00tc at 31.02.2026", testNow)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Parse("10:00tc at 01.13.2026", testNow)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestParse_DateTakesPrecedence(t *testing.T) {
	// a date rule failure must not fall through to the daily rule
	_, err := Parse("25:00tc at 01.05.2025", testNow)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestParse_InvalidFormat(t *testing.T) {
	for _, input := range []string{"", "soon", "5", "5d", "h5", "5 hours", "12:00", "12:00tc tomorrow", "-5m", "5h30m"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input, testNow)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestParse_RelativeOutOfRange(t *testing.T) {
	_, err := Parse("0m", testNow)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Parse("99999999h", testNow)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFormatRemaining(t *testing.T) {
	assert.Equal(t, "1h 2m 3s", FormatRemaining(time.Hour+2*time.Minute+3*time.Second))
	assert.Equal(t, "30m 0s", FormatRemaining(30*time.Minute))
	assert.Equal(t, "0m 0s", FormatRemaining(-time.Second))
}
