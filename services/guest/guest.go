package guest

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"katwate/database"
	"katwate/models"
	"katwate/utils"

	"go.uber.org/zap"
)

// ErrGuestNotFound is returned when a guest id does not exist.
var ErrGuestNotFound = errors.New("guest not found")

// ErrNotConfirmed is returned when a reminder is requested for a guest that
// has already checked in or out.
var ErrNotConfirmed = errors.New("guest is not in Confirmed status")

var avatarColors = []string{"#ffe8cc", "#d1e7dd", "#d3d3d3", "#f5c6cb"}

// reminderHour is when, on the day before check-in, reminders go out.
const reminderHour = 10

// Save adds g when it has no id and updates it otherwise. It returns the
// message shown to staff.
func (s *DefaultGuestService) Save(ctx context.Context, g *models.Guest) (string, error) {
	isNew := g.ID == ""
	if err := validate(g, s.today(), isNew); err != nil {
		return "", err
	}
	g.RoomType = normalizeRoomType(g.RoomType)

	if isNew {
		g.AvatarColor = avatarColors[rand.IntN(len(avatarColors))]
		id, err := s.Repo.Create(ctx, g)
		if err != nil {
			return "", err
		}
		utils.GetLogger().Info("Guest added", zap.String("guestId", id))
		return "Guest added successfully", nil
	}

	if err := s.Repo.Update(ctx, g); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return "", ErrGuestNotFound
		}
		return "", err
	}
	utils.GetLogger().Info("Guest updated", zap.String("guestId", g.ID))
	return "Guest updated successfully", nil
}

// List returns one page of guests ordered by check-in date. Pages past the
// end are clamped to the last page.
func (s *DefaultGuestService) List(ctx context.Context, page, perPage int) (*models.GuestPage, error) {
	guests, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	total := len(guests)
	totalPages := (total + perPage - 1) / perPage
	if page < 1 {
		page = 1
	}
	if last := max(1, totalPages); page > last {
		page = last
	}

	start := min((page-1)*perPage, total)
	end := min(start+perPage, total)
	return &models.GuestPage{
		Guests:      guests[start:end],
		Page:        page,
		PerPage:     perPage,
		TotalPages:  totalPages,
		TotalGuests: total,
		DisplayTo:   end,
	}, nil
}

func (s *DefaultGuestService) all(ctx context.Context) ([]models.Guest, error) {
	guests, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(guests, func(i, j int) bool {
		if guests[i].CheckIn != guests[j].CheckIn {
			return guests[i].CheckIn < guests[j].CheckIn
		}
		return guests[i].Name < guests[j].Name
	})
	return guests, nil
}

func (s *DefaultGuestService) Get(ctx context.Context, id string) (*models.Guest, error) {
	g, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrGuestNotFound
	}
	return g, err
}

func (s *DefaultGuestService) Delete(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return ErrGuestNotFound
	}
	if err == nil {
		utils.GetLogger().Info("Guest deleted", zap.String("guestId", id))
	}
	return err
}

// SendReminder queues an arrival reminder for a confirmed guest. It fires at
// 10:00 the day before check-in, or straight away when that has passed.
func (s *DefaultGuestService) SendReminder(ctx context.Context, id string) (*models.ReminderPayload, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.Status != models.StatusConfirmed {
		return nil, ErrNotConfirmed
	}

	payload := models.ReminderPayload{GuestID: g.ID, Name: g.Name, Email: g.Email, CheckIn: g.CheckIn}
	fireAt := s.Now()
	if checkIn, err := time.ParseInLocation(utils.DateLayout, g.CheckIn, s.Location); err == nil {
		at := checkIn.AddDate(0, 0, -1).Add(reminderHour * time.Hour)
		if at.After(fireAt) {
			fireAt = at
		}
	}
	if err := s.Reminders.EnqueueReminder(ctx, payload, fireAt); err != nil {
		return nil, fmt.Errorf("queue reminder for %s: %w", id, err)
	}
	utils.GetLogger().Info("Reminder queued",
		zap.String("guestId", id), zap.Time("fireAt", fireAt))
	return &payload, nil
}

// dateOnly accepts either YYYY-MM-DD or a full RFC 3339 timestamp.
func dateOnly(date string) string {
	if i := strings.IndexByte(date, 'T'); i >= 0 {
		return date[:i]
	}
	return date
}
