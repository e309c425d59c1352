// ABOUTME: Calendar views over the workout store.
// ABOUTME: Monday-first weeks and whole months annotated with workout presence.
package calendar

import (
	"context"
	"fmt"
	"time"
)

// DateLayout is the YYYY-MM-DD form dates take at the store boundary.
const DateLayout = "2006-01-02"

// FormatDate normalizes a local time to a calendar date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string as a local date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekRange returns the Monday and Sunday of the week containing t.
func WeekRange(t time.Time) (start, end time.Time) {
	t = midnight(t)
	offset := (int(t.Weekday()) + 6) % 7
	start = t.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// MonthRange returns the first and last day of a month.
func MonthRange(year int, month time.Month, loc *time.Location) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, -1)
}

// YearRange returns January 1st and December 31st of a year.
func YearRange(year int, loc *time.Location) (start, end time.Time) {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
		time.Date(year, time.December, 31, 0, 0, 0, 0, loc)
}

// Day is one calendar cell.
type Day struct {
	Date       string       `json:"date"`
	Weekday    time.Weekday `json:"weekday"`
	HasWorkout bool         `json:"has_workout"`
	IsToday    bool         `json:"is_today"`
}

// DayLister is the store query a calendar needs.
type DayLister interface {
	GetWorkoutDays(ctx context.Context, start, end string) ([]string, error)
}

// Service builds calendar views from a store.
type Service struct {
	store DayLister
	now   func() time.Time
}

// NewService returns a Service reading from store.
func NewService(store DayLister) *Service {
	return &Service{store: store, now: time.Now}
}

// Week returns the seven days, Monday first, of the week containing ref.
func (s *Service) Week(ctx context.Context, ref time.Time) ([]Day, error) {
	start, end := WeekRange(ref)
	return s.span(ctx, start, end)
}

// Month returns every day of the given month.
func (s *Service) Month(ctx context.Context, year int, month time.Month) ([]Day, error) {
	start, end := MonthRange(year, month, time.Local)
	return s.span(ctx, start, end)
}

// WorkoutDays returns the set of dates in a year that have workouts.
func (s *Service) WorkoutDays(ctx context.Context, year int) (map[string]bool, error) {
	start, end := YearRange(year, time.Local)
	days, err := s.store.GetWorkoutDays(ctx, FormatDate(start), FormatDate(end))
	if err != nil {
		return nil, fmt.Errorf("load workout days: %w", err)
	}
	set := make(map[string]bool, len(days))
	for _, d := range days {
		set[d] = true
	}
	return set, nil
}

func (s *Service) span(ctx context.Context, start, end time.Time) ([]Day, error) {
	days, err := s.store.GetWorkoutDays(ctx, FormatDate(start), FormatDate(end))
	if err != nil {
		return nil, fmt.Errorf("load workout days: %w", err)
	}
	trained := make(map[string]bool, len(days))
	for _, d := range days {
		trained[d] = true
	}

	today := FormatDate(s.now())
	var out []Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := FormatDate(d)
		out = append(out, Day{
			Date:       date,
			Weekday:    d.Weekday(),
			HasWorkout: trained[date],
			IsToday:    date == today,
		})
	}
	return out, nil
}
