package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_BusinessDaysBetween(t *testing.T) {
	t.Run("skips weekends, keeps order", func(t *testing.T) {
		// thu jan 2 2025 through mon jan 6 2025
		days := BusinessDaysBetween(NewDate(2025, 1, 2), NewDate(2025, 1, 6))
		require.Equal(t, []time.Time{
			NewDate(2025, 1, 2),
			NewDate(2025, 1, 3),
			NewDate(2025, 1, 6),
		}, days)
	})

	t.Run("single weekday range is that day", func(t *testing.T) {
		days := BusinessDaysBetween(NewDate(2025, 1, 3), NewDate(2025, 1, 3))
		require.Equal(t, []time.Time{NewDate(2025, 1, 3)}, days)
	})

	t.Run("weekend-only range is empty", func(t *testing.T) {
		days := BusinessDaysBetween(NewDate(2025, 1, 4), NewDate(2025, 1, 5))
		require.Empty(t, days)
	})

	t.Run("inverted range is empty", func(t *testing.T) {
		days := BusinessDaysBetween(NewDate(2025, 1, 6), NewDate(2025, 1, 2))
		require.Empty(t, days)
	})

	t.Run("timestamps are truncated to midnight", func(t *testing.T) {
		start := time.Date(2025, 1, 2, 15, 30, 0, 0, time.UTC)
		days := BusinessDaysBetween(start, start)
		require.Equal(t, []time.Time{NewDate(2025, 1, 2)}, days)
	})
}

func Test_PreviousBusinessDay(t *testing.T) {
	// monday rolls back over the weekend to friday
	require.Equal(t, NewDate(2025, 1, 3), PreviousBusinessDay(NewDate(2025, 1, 6)))
	// tuesday rolls back one day
	require.Equal(t, NewDate(2025, 1, 7), PreviousBusinessDay(NewDate(2025, 1, 8)))
	// sunday rolls back to friday
	require.Equal(t, NewDate(2025, 1, 3), PreviousBusinessDay(NewDate(2025, 1, 5)))
}

func Test_DateLte(t *testing.T) {
	require.True(t, DateLte(NewDate(2025, 1, 2), NewDate(2025, 1, 3)))
	require.True(t, DateLte(NewDate(2025, 1, 3), NewDate(2025, 1, 3)))
	// same calendar day with a later clock time still counts
	require.True(t, DateLte(time.Date(2025, 1, 3, 23, 0, 0, 0, time.UTC), NewDate(2025, 1, 3)))
	require.False(t, DateLte(NewDate(2025, 1, 4), NewDate(2025, 1, 3)))
}

func Test_IsBusinessDay(t *testing.T) {
	require.True(t, IsBusinessDay(NewDate(2025, 1, 3)))  // friday
	require.False(t, IsBusinessDay(NewDate(2025, 1, 4))) // saturday
	require.False(t, IsBusinessDay(NewDate(2025, 1, 5))) // sunday
	require.True(t, IsBusinessDay(NewDate(2025, 1, 6)))  // monday
}
