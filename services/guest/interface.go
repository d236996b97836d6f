package guest

import (
	"context"
	"time"

	"katwate/database/repository"
	"katwate/models"
)

// DefaultPerPage is the guest table page size.
const DefaultPerPage = 6

// ReminderQueue schedules guest reminders for delivery.
type ReminderQueue interface {
	EnqueueReminder(ctx context.Context, p models.ReminderPayload, fireAt time.Time) error
}

// GuestService manages reservations from the admin dashboard.
type GuestService interface {
	Save(ctx context.Context, g *models.Guest) (string, error)
	List(ctx context.Context, page, perPage int) (*models.GuestPage, error)
	Get(ctx context.Context, id string) (*models.Guest, error)
	Delete(ctx context.Context, id string) error
	SummaryMetrics(ctx context.Context, date string) (*models.SummaryMetrics, error)
	RoomAvailability(ctx context.Context, date string) (*models.RoomAvailability, error)
	Dashboard(ctx context.Context, date string) (*models.Dashboard, error)
	MonthlyBookings(ctx context.Context, year int) ([]int, error)
	BookedDays(ctx context.Context, year int, month time.Month) ([]models.CalendarDay, error)
	SendReminder(ctx context.Context, id string) (*models.ReminderPayload, error)
}

// DefaultGuestService implements GuestService.
type DefaultGuestService struct {
	Repo      repository.GuestRepository
	Reminders ReminderQueue
	// Totals is the number of rooms per category.
	Totals   models.RoomAvailability
	Location *time.Location
	Now      func() time.Time
}

func NewGuestService(repo repository.GuestRepository, reminders ReminderQueue, totals models.RoomAvailability, tz string) *DefaultGuestService {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	return &DefaultGuestService{
		Repo:      repo,
		Reminders: reminders,
		Totals:    totals,
		Location:  loc,
		Now:       time.Now,
	}
}

func (s *DefaultGuestService) today() string {
	return s.Now().In(s.Location).Format("2006-01-02")
}
