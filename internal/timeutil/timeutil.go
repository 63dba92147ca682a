package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// rolloverHour is the local hour before which requests still belong to the previous day,
// so games that run past midnight are reported under the day they started.
const rolloverHour = 5

// TargetDate is the civil date the scoreboard feed is keyed by.
type TargetDate struct {
	Year  int
	Month int
	Day   int
}

// ResolveTargetDate picks the scoreboard date for a request made at now (in now's location).
func ResolveTargetDate(now time.Time) TargetDate {
	if now.Hour() < rolloverHour {
		now = now.AddDate(0, 0, -1)
	}
	return TargetDate{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

// YearString returns the 4-digit year.
func (d TargetDate) YearString() string { return fmt.Sprintf("%04d", d.Year) }

// MonthString returns the zero-padded 2-digit month.
func (d TargetDate) MonthString() string { return fmt.Sprintf("%02d", d.Month) }

// DayString returns the zero-padded 2-digit day.
func (d TargetDate) DayString() string { return fmt.Sprintf("%02d", d.Day) }

func (d TargetDate) String() string {
	return d.YearString() + "-" + d.MonthString() + "-" + d.DayString()
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// ParseTargetDate parses a YYYY-MM-DD string into a TargetDate.
func ParseTargetDate(value string) (TargetDate, error) {
	t, err := ParseDate(value)
	if err != nil {
		return TargetDate{}, err
	}
	return TargetDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

// ResolveLocation returns a location for a tz name, or time.Local when empty or invalid.
func ResolveLocation(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}
