package service

import (
	"time"

	"brik.community/portal/internal/entity"
	eventDto "brik.community/portal/internal/modules/event/dto"
)

// startOfWeek returns the Sunday on or before d, at midnight UTC.
func startOfWeek(d time.Time) time.Time {
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// buildMonthGrid lays the month out as full Sunday-to-Saturday weeks, padding
// the first and last week with the neighboring months' days. Each cell carries
// the events whose date range covers that day.
func buildMonthGrid(year int, month time.Month, today time.Time, events []*entity.CalendarEvent) [][]eventDto.DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	gridStart := startOfWeek(first)
	gridEnd := startOfWeek(last).AddDate(0, 0, 6)

	var weeks [][]eventDto.DayCell
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 7) {
		week := make([]eventDto.DayCell, 0, 7)
		for i := 0; i < 7; i++ {
			cur := day.AddDate(0, 0, i)
			cell := eventDto.DayCell{
				Date:    cur.Format("2006-01-02"),
				Day:     cur.Day(),
				InMonth: cur.Month() == month && cur.Year() == year,
				Today:   sameDay(cur, today),
				Events:  []eventDto.EventResponse{},
			}
			for _, e := range events {
				if eventCoversDay(e, cur) {
					cell.Events = append(cell.Events, buildResponse(e))
				}
			}
			week = append(week, cell)
		}
		weeks = append(weeks, week)
	}

	return weeks
}

func eventCoversDay(e *entity.CalendarEvent, day time.Time) bool {
	start := time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, time.UTC)
	end := start
	if e.EndDate != nil {
		end = time.Date(e.EndDate.Year(), e.EndDate.Month(), e.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	}
	return !day.Before(start) && !day.After(end)
}
