package guest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"katwate/models"
	"katwate/utils"
)

// occupies reports whether g holds a room on date. Guests without a check-out
// date occupy every day from check-in on.
func occupies(g models.Guest, date string) bool {
	return g.CheckIn <= date && (g.CheckOut == "" || g.CheckOut >= date)
}

func (s *DefaultGuestService) SummaryMetrics(ctx context.Context, date string) (*models.SummaryMetrics, error) {
	guests, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return summaryMetrics(guests, dateOnly(date)), nil
}

func summaryMetrics(guests []models.Guest, day string) *models.SummaryMetrics {
	m := &models.SummaryMetrics{}
	for _, g := range guests {
		switch {
		case g.CheckIn == day && g.Status == models.StatusCheckedIn:
			m.CheckIns++
		case g.CheckIn == day && g.Status == models.StatusConfirmed:
			m.Pending++
		}
		if g.CheckOut == day && g.Status == models.StatusCheckedOut {
			m.CheckOuts++
		}
	}
	return m
}

func (s *DefaultGuestService) RoomAvailability(ctx context.Context, date string) (*models.RoomAvailability, error) {
	guests, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.availability(guests, dateOnly(date)), nil
}

func (s *DefaultGuestService) availability(guests []models.Guest, day string) *models.RoomAvailability {
	booked := map[string]int{}
	for _, g := range guests {
		if occupies(g, day) {
			booked[strings.ToLower(normalizeRoomType(g.RoomType))]++
		}
	}
	return &models.RoomAvailability{
		Single: s.Totals.Single - booked["single room"],
		Double: s.Totals.Double - booked["double room"],
		Suite:  s.Totals.Suite - booked["suite"],
	}
}

// Dashboard computes the metrics and availability for date, defaulting to
// today in the resort timezone.
func (s *DefaultGuestService) Dashboard(ctx context.Context, date string) (*models.Dashboard, error) {
	day := dateOnly(date)
	if day == "" {
		day = s.today()
	}
	if _, err := time.Parse(utils.DateLayout, day); err != nil {
		return nil, utils.NewValidationError("Invalid date")
	}
	guests, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return &models.Dashboard{
		Date:         day,
		Metrics:      *summaryMetrics(guests, day),
		Availability: *s.availability(guests, day),
	}, nil
}

// MonthlyBookings counts check-ins per month of year.
func (s *DefaultGuestService) MonthlyBookings(ctx context.Context, year int) ([]int, error) {
	guests, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	months := make([]int, 12)
	for _, g := range guests {
		t, err := time.Parse(utils.DateLayout, g.CheckIn)
		if err != nil || t.Year() != year {
			continue
		}
		months[t.Month()-1]++
	}
	return months, nil
}

// BookedDays marks each day of the month that at least one guest occupies.
func (s *DefaultGuestService) BookedDays(ctx context.Context, year int, month time.Month) ([]models.CalendarDay, error) {
	if month < time.January || month > time.December {
		return nil, utils.NewValidationError(fmt.Sprintf("Invalid month %d", month))
	}
	guests, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	days := make([]models.CalendarDay, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := first.AddDate(0, 0, d-1).Format(utils.DateLayout)
		booked := false
		for _, g := range guests {
			if occupies(g, date) {
				booked = true
				break
			}
		}
		days = append(days, models.CalendarDay{Day: d, Date: date, Booked: booked})
	}
	return days, nil
}
