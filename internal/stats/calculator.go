// Package stats derives cooking-log statistics from recipe save timestamps.
package stats

import "time"

// CookingEvent represents one saved-recipe event. Only the calendar date of
// OccurredAt matters for streaks and calendar marks; the time of day is
// ignored and no timezone conversion is applied.
type CookingEvent struct {
	OccurredAt time.Time
}

// UsageSummary holds the derived statistics for one reference month.
type UsageSummary struct {
	CurrentMonthCount int          `json:"current_month_count"`
	CurrentStreak     int          `json:"current_streak"`
	TotalCount        int          `json:"total_count"`
	CalendarMarks     map[int]bool `json:"calendar_marks"`
}

type day struct {
	year  int
	month time.Month
	day   int
}

func dayOf(t time.Time) day {
	y, m, d := t.Date()
	return day{y, m, d}
}

// previous returns the calendar day before d, crossing month and year
// boundaries via time.Date normalization.
func (d day) previous() day {
	return dayOf(time.Date(d.year, d.month, d.day-1, 0, 0, 0, 0, time.UTC))
}

// DaysInMonth returns the number of days in ref's month, leap years included.
func DaysInMonth(ref time.Time) int {
	y, m, _ := ref.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Summarize computes the usage summary for the month of ref. The reference
// date is supplied by the caller rather than read from a clock, so repeated
// calls with the same inputs yield identical results. The input slice is
// never modified and may be empty.
func Summarize(events []CookingEvent, ref time.Time) UsageSummary {
	cookedOn := make(map[day]bool, len(events))
	refYear, refMonth, _ := ref.Date()

	monthCount := 0
	for _, e := range events {
		d := dayOf(e.OccurredAt)
		cookedOn[d] = true
		if d.year == refYear && d.month == refMonth {
			monthCount++
		}
	}

	streak := 0
	for d := dayOf(ref); cookedOn[d]; d = d.previous() {
		streak++
	}

	marks := make(map[int]bool, DaysInMonth(ref))
	for n := 1; n <= DaysInMonth(ref); n++ {
		marks[n] = cookedOn[day{refYear, refMonth, n}]
	}

	return UsageSummary{
		CurrentMonthCount: monthCount,
		CurrentStreak:     streak,
		TotalCount:        len(events),
		CalendarMarks:     marks,
	}
}

// MonthGrid lays out the days of ref's month as Monday-first weeks of seven
// cells. Cells outside the month are zero so a renderer can leave them blank.
func MonthGrid(ref time.Time) [][7]int {
	y, m, _ := ref.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) + 6) % 7 // Monday = 0

	var weeks [][7]int
	week := [7]int{}
	col := offset
	for n := 1; n <= DaysInMonth(ref); n++ {
		week[col] = n
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}
