package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Midnight truncates a timestamp to its UTC calendar day.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}

func SameDate(t1, t2 time.Time) bool {
	return t1.Format(layout) == t2.Format(layout)
}

func IsBusinessDay(t time.Time) bool {
	return t.Weekday() != time.Saturday && t.Weekday() != time.Sunday
}

// BusinessDaysBetween lists every weekday from start through end, inclusive,
// in ascending order. Exchange holidays are not excluded; callers that care
// rely on price fallbacks instead.
func BusinessDaysBetween(start, end time.Time) []time.Time {
	start = Midnight(start)
	end = Midnight(end)

	days := []time.Time{}
	for d := start; DateLte(d, end); d = d.AddDate(0, 0, 1) {
		if IsBusinessDay(d) {
			days = append(days, d)
		}
	}
	return days
}

// PreviousBusinessDay returns the closest weekday strictly before t.
func PreviousBusinessDay(t time.Time) time.Time {
	d := Midnight(t).AddDate(0, 0, -1)
	for !IsBusinessDay(d) {
		d = d.AddDate(0, 0, -1)
	}
	return d
}
