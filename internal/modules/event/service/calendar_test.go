package service

import (
	"testing"
	"time"

	"brik.community/portal/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildMonthGridPadsToFullWeeks(t *testing.T) {
	// March 2025 starts on a Saturday and ends on a Monday.
	weeks := buildMonthGrid(2025, time.March, day(2025, 3, 10), nil)

	require.Len(t, weeks, 6)
	for _, week := range weeks {
		require.Len(t, week, 7)
	}

	assert.Equal(t, "2025-02-23", weeks[0][0].Date)
	assert.False(t, weeks[0][0].InMonth)
	assert.Equal(t, "2025-03-01", weeks[0][6].Date)
	assert.True(t, weeks[0][6].InMonth)
	assert.Equal(t, "2025-04-05", weeks[5][6].Date)
	assert.False(t, weeks[5][6].InMonth)
}

func TestBuildMonthGridExactWeeks(t *testing.T) {
	// February 2026 is exactly four Sunday-to-Saturday weeks.
	weeks := buildMonthGrid(2026, time.February, day(2026, 2, 1), nil)

	require.Len(t, weeks, 4)
	assert.Equal(t, "2026-02-01", weeks[0][0].Date)
	assert.Equal(t, "2026-02-28", weeks[3][6].Date)
	for _, week := range weeks {
		for _, cell := range week {
			assert.True(t, cell.InMonth)
		}
	}
}

func TestBuildMonthGridMarksToday(t *testing.T) {
	weeks := buildMonthGrid(2025, time.March, day(2025, 3, 10), nil)

	var marked []string
	for _, week := range weeks {
		for _, cell := range week {
			if cell.Today {
				marked = append(marked, cell.Date)
			}
		}
	}
	assert.Equal(t, []string{"2025-03-10"}, marked)
}

func TestBuildMonthGridPlacesMultiDayEvents(t *testing.T) {
	end := day(2025, 3, 5)
	events := []*entity.CalendarEvent{
		{Title: "Hack week", Date: day(2025, 3, 3), EndDate: &end},
		{Title: "Standup", Date: day(2025, 3, 3)},
	}

	weeks := buildMonthGrid(2025, time.March, day(2025, 3, 1), events)

	counts := map[string]int{}
	for _, week := range weeks {
		for _, cell := range week {
			counts[cell.Date] = len(cell.Events)
		}
	}

	assert.Equal(t, 2, counts["2025-03-03"])
	assert.Equal(t, 1, counts["2025-03-04"])
	assert.Equal(t, 1, counts["2025-03-05"])
	assert.Equal(t, 0, counts["2025-03-06"])
	assert.Equal(t, 0, counts["2025-03-02"])
}

func TestStartOfWeek(t *testing.T) {
	assert.Equal(t, day(2025, 3, 2), startOfWeek(day(2025, 3, 5)))
	assert.Equal(t, day(2025, 3, 2), startOfWeek(day(2025, 3, 2)))
	assert.Equal(t, day(2025, 2, 23), startOfWeek(day(2025, 3, 1)))
}
