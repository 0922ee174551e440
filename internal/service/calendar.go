package service

import (
	"context"
	"errors"
	"time"

	"evermore/couple-app/internal/domain"
	"evermore/couple-app/internal/repository"
)

var ErrInvalidDate = errors.New("invalid calendar date")

// MonthSummary is the calendar view of one month: the matching history
// entries in log order, a per-day density map keyed by ISO date (the heatmap
// source), and the total count.
type MonthSummary struct {
	Year            int                               `json:"year"`
	Month           int                               `json:"month"`
	Activities      []domain.ActivityEntry            `json:"activities"`
	ActivityDensity map[string][]domain.ActivityEntry `json:"activityDensity"`
	TotalActivities int                               `json:"totalActivities"`
}

// DaySummary lists everything completed on one calendar date.
type DaySummary struct {
	Date          string                 `json:"date"`
	Activities    []domain.ActivityEntry `json:"activities"`
	ActivityCount int                    `json:"activityCount"`
}

// CalendarService produces read-only calendar views by replaying a couple's
// activity history. It never mutates state; every query is recomputed from
// the log, so the views stay a pure function of the history.
type CalendarService interface {
	MonthSummary(ctx context.Context, coupleID string, year, month int) (*MonthSummary, error)
	DaySummary(ctx context.Context, coupleID string, year, month, day int) (*DaySummary, error)
}

type calendarService struct {
	coupleRepo repository.CoupleDataRepository
}

// NewCalendarService creates a new instance of calendarService.
func NewCalendarService(coupleRepo repository.CoupleDataRepository) CalendarService {
	return &calendarService{coupleRepo: coupleRepo}
}

// MonthSummary replays the history log for entries falling in (year, month).
func (s *calendarService) MonthSummary(ctx context.Context, coupleID string, year, month int) (*MonthSummary, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidDate
	}

	data, err := s.loadCouple(ctx, coupleID)
	if err != nil {
		return nil, err
	}

	activities := []domain.ActivityEntry{}
	density := map[string][]domain.ActivityEntry{}
	for _, entry := range data.ActivityHistory {
		date, err := time.Parse(domain.DateLayout, entry.CompletedDate)
		if err != nil {
			continue
		}
		if date.Year() != year || int(date.Month()) != month {
			continue
		}
		activities = append(activities, entry)
		density[entry.CompletedDate] = append(density[entry.CompletedDate], entry)
	}

	return &MonthSummary{
		Year:            year,
		Month:           month,
		Activities:      activities,
		ActivityDensity: density,
		TotalActivities: len(activities),
	}, nil
}

// DaySummary replays the history log for entries on the exact date.
func (s *calendarService) DaySummary(ctx context.Context, coupleID string, year, month, day int) (*DaySummary, error) {
	target, err := calendarDate(year, month, day)
	if err != nil {
		return nil, err
	}
	targetStr := target.Format(domain.DateLayout)

	data, err := s.loadCouple(ctx, coupleID)
	if err != nil {
		return nil, err
	}

	activities := []domain.ActivityEntry{}
	for _, entry := range data.ActivityHistory {
		if entry.CompletedDate == targetStr {
			activities = append(activities, entry)
		}
	}

	return &DaySummary{
		Date:          targetStr,
		Activities:    activities,
		ActivityCount: len(activities),
	}, nil
}

func (s *calendarService) loadCouple(ctx context.Context, coupleID string) (*domain.CoupleData, error) {
	data, err := s.coupleRepo.GetByCoupleID(ctx, coupleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCoupleNotFound
		}
		return nil, err
	}
	return data, nil
}

// calendarDate validates year/month/day as a real calendar date. time.Date
// normalizes overflow (day 32 rolls into the next month), so a round trip
// that moves the date means the input was malformed.
func calendarDate(year, month, day int) (time.Time, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, ErrInvalidDate
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}
