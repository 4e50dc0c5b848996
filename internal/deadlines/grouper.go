// Package deadlines buckets admission deadlines for the calendar view:
// a near-term "upcoming" window with urgency flags and relative labels,
// and the full list grouped by calendar month.
package deadlines

import (
	"fmt"
	"math"
	"time"

	"bschool-portal/models"
)

// Contract thresholds of the calendar view, in whole days.
const (
	UpcomingWindowDays = 30
	UrgentWindowDays   = 7
)

// DaysUntil возвращает разницу в целых днях (потолок) между датой и "сейчас".
func DaysUntil(date, now time.Time) int {
	diff := date.Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}

// RelativeLabel renders the human-relative label for a deadline date.
func RelativeLabel(date, now time.Time) string {
	days := DaysUntil(date, now)
	switch {
	case days < 0:
		return fmt.Sprintf("%d days ago", -days)
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("In %d days", days)
	}
}

// IsUpcoming reports whether the date falls in the inclusive [0, 30] day
// window from now.
func IsUpcoming(date, now time.Time) bool {
	days := DaysUntil(date, now)
	return days >= 0 && days <= UpcomingWindowDays
}

// IsUrgent reports whether an upcoming date is within 7 days.
func IsUrgent(date, now time.Time) bool {
	days := DaysUntil(date, now)
	return days >= 0 && days <= UrgentWindowDays
}

// Entry is a deadline decorated for display.
type Entry struct {
	models.Deadline
	RelativeDate string `json:"relative_date"`
	Urgent       bool   `json:"urgent"`
}

// Upcoming returns the entries of the [0, 30] day window, in input order.
func Upcoming(list []models.Deadline, now time.Time) []Entry {
	entries := make([]Entry, 0)
	for _, d := range list {
		if !IsUpcoming(d.DeadlineDate, now) {
			continue
		}
		entries = append(entries, Entry{
			Deadline:     d,
			RelativeDate: RelativeLabel(d.DeadlineDate, now),
			Urgent:       IsUrgent(d.DeadlineDate, now),
		})
	}
	return entries
}

// MonthGroup is one calendar month of deadlines.
type MonthGroup struct {
	Month     string            `json:"month"`
	Deadlines []models.Deadline `json:"deadlines"`
}

// GroupByMonth partitions the list by month-and-year. Group order follows
// the first occurrence of each month in the input; in-group order is
// inherited from the input (which arrives date-ascending).
func GroupByMonth(list []models.Deadline) []MonthGroup {
	index := make(map[string]int)
	groups := make([]MonthGroup, 0)
	for _, d := range list {
		key := d.DeadlineDate.Format("January 2006")
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, MonthGroup{Month: key})
		}
		groups[i].Deadlines = append(groups[i].Deadlines, d)
	}
	return groups
}
