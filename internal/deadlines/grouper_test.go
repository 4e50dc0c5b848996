package deadlines

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bschool-portal/models"
)

var now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func deadlineOn(id string, date time.Time) models.Deadline {
	return models.Deadline{ID: id, Title: "Deadline " + id, DeadlineDate: date, IsActive: true}
}

func TestRelativeLabels(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{now, "Today"},
		{now.AddDate(0, 0, 1), "Tomorrow"},
		{now.AddDate(0, 0, -3), "3 days ago"},
		{now.AddDate(0, 0, 12), "In 12 days"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RelativeLabel(tc.date, now))
	}
}

func TestDaysUntilIsCeiling(t *testing.T) {
	// Полтора дня вперёд округляются вверх до двух.
	assert.Equal(t, 2, DaysUntil(now.Add(36*time.Hour), now))
	assert.Equal(t, 1, DaysUntil(now.Add(2*time.Hour), now))
	assert.Equal(t, 0, DaysUntil(now, now))
	assert.Equal(t, -1, DaysUntil(now.Add(-30*time.Hour), now))
}

func TestUpcomingWindowBoundaries(t *testing.T) {
	assert.True(t, IsUpcoming(now, now), "day 0 is inside the window")
	assert.True(t, IsUpcoming(now.AddDate(0, 0, 30), now), "day 30 is inside the window")
	assert.False(t, IsUpcoming(now.AddDate(0, 0, 31), now), "day 31 is outside")
	assert.False(t, IsUpcoming(now.AddDate(0, 0, -1), now), "the past is outside")
}

func TestUrgentThreshold(t *testing.T) {
	assert.True(t, IsUrgent(now.AddDate(0, 0, 7), now))
	assert.False(t, IsUrgent(now.AddDate(0, 0, 8), now))
	assert.False(t, IsUrgent(now.AddDate(0, 0, -1), now))
}

func TestUpcomingEntries(t *testing.T) {
	list := []models.Deadline{
		deadlineOn("past", now.AddDate(0, 0, -5)),
		deadlineOn("soon", now.AddDate(0, 0, 3)),
		deadlineOn("later", now.AddDate(0, 0, 20)),
		deadlineOn("far", now.AddDate(0, 0, 45)),
	}

	entries := Upcoming(list, now)
	require.Len(t, entries, 2)

	assert.Equal(t, "soon", entries[0].ID)
	assert.Equal(t, "In 3 days", entries[0].RelativeDate)
	assert.True(t, entries[0].Urgent)

	assert.Equal(t, "later", entries[1].ID)
	assert.False(t, entries[1].Urgent)
}

func TestGroupByMonthFirstSeenOrder(t *testing.T) {
	list := []models.Deadline{
		deadlineOn("a", time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)),
		deadlineOn("b", time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC)),
		deadlineOn("c", time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)),
		deadlineOn("d", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)),
	}

	groups := GroupByMonth(list)
	require.Len(t, groups, 3)

	assert.Equal(t, "March 2025", groups[0].Month)
	require.Len(t, groups[0].Deadlines, 2)
	assert.Equal(t, "a", groups[0].Deadlines[0].ID)
	assert.Equal(t, "b", groups[0].Deadlines[1].ID)

	assert.Equal(t, "April 2025", groups[1].Month)
	// Март следующего года - отдельная группа.
	assert.Equal(t, "March 2026", groups[2].Month)
}

func TestGroupByMonthEmptyInput(t *testing.T) {
	assert.Empty(t, GroupByMonth(nil))
}
