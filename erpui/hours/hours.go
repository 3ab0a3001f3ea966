// Package hours derives worked hours from the entry time, exit time, and
// lunch duration of a work log.
package hours

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sitecrew/erpui/erpui/form"
)

const (
	// LunchThreshold is the lunch duration (minutes) above which the lunch
	// deduction applies.  A lunch of exactly LunchThreshold is not deducted.
	LunchThreshold = 30
	// LunchDeduction is the flat number of minutes deducted for a lunch
	// longer than LunchThreshold, regardless of its actual length.
	LunchDeduction = 30
)

// ErrBadTime is returned for time strings that are not of the form HH:MM or
// HH:MM:SS.
var ErrBadTime = errors.New("invalid time")

// Minutes converts an HH:MM time string to minutes since midnight.  A
// trailing seconds part, as sent by time inputs with a seconds step, is
// ignored.
func Minutes(hhmm string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(hhmm), ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadTime, hhmm)
	}
	m, sec, _ := strings.Cut(m, ":")
	if _, err := strconv.Atoi(sec); sec != "" && err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadTime, hhmm)
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadTime, hhmm)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadTime, hhmm)
	}
	return hours*60 + minutes, nil
}

// ParseLunch reads the leading integer of a lunch duration field.  Empty or
// non-numeric input counts as no lunch.
func ParseLunch(s string) int {
	n, ok := form.LeadingInt(s)
	if !ok {
		return 0
	}
	return n
}

// Deduction returns the minutes deducted for the given lunch duration.
func Deduction(lunch int) int {
	if lunch > LunchThreshold {
		return LunchDeduction
	}
	return 0
}

// Worked returns the hours worked between entry and exit (minutes since
// midnight) after the lunch deduction.  The result is never negative.
func Worked(entry, exit, lunch int) float64 {
	total := exit - entry - Deduction(lunch)
	if total < 0 {
		return 0
	}
	return float64(total) / 60
}

// Format renders worked hours the way the hours display shows them.
func Format(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}

// Display computes the text of the hours display from the raw field values.
// It returns false when there is nothing to display: entry or exit is empty
// or not a time.
func Display(entry, exit, lunch string) (string, bool) {
	if strings.TrimSpace(entry) == "" || strings.TrimSpace(exit) == "" {
		return "", false
	}
	in, err := Minutes(entry)
	if err != nil {
		return "", false
	}
	out, err := Minutes(exit)
	if err != nil {
		return "", false
	}
	return Format(Worked(in, out, ParseLunch(lunch))), true
}

// Entry is a single work log line.
type Entry struct {
	Date  time.Time
	Entry string
	Exit  string
	Lunch int
}

// Hours returns the worked hours of the entry.
func (e Entry) Hours() (float64, error) {
	in, err := Minutes(e.Entry)
	if err != nil {
		return 0, err
	}
	out, err := Minutes(e.Exit)
	if err != nil {
		return 0, err
	}
	return Worked(in, out, e.Lunch), nil
}

// WeekOf returns the Monday and Sunday of the week containing d.
func WeekOf(d time.Time) (time.Time, time.Time) {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	offset := (int(day.Weekday()) + 6) % 7 // days since Monday
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// Summary is the payroll of one employee over a set of work log entries.
type Summary struct {
	Hours     float64
	AmountDue float64
}

// Payroll sums the worked hours of the entries falling in the week of
// weekDate and prices them at the hourly rate.
func Payroll(entries []Entry, rate float64, weekDate time.Time) (Summary, error) {
	start, end := WeekOf(weekDate)
	next := end.AddDate(0, 0, 1)
	var sum Summary
	for _, e := range entries {
		if e.Date.Before(start) || !e.Date.Before(next) {
			continue
		}
		h, err := e.Hours()
		if err != nil {
			return Summary{}, fmt.Errorf("entry on %s: %w", e.Date.Format("2006-01-02"), err)
		}
		sum.Hours += h
	}
	sum.AmountDue = sum.Hours * rate
	return sum, nil
}
