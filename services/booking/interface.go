package booking

import (
	"context"
	"time"

	"katwate/models"
	"katwate/services/catalog"
	"katwate/services/events"
	"katwate/services/notification"
)

// BookingService prices, validates and formats public booking requests.
type BookingService interface {
	Validate(req models.ReservationRequest) (models.RoomOffering, models.RoomType, error)
	ValidateEvent(req models.EventEnquiry) error
	Quote(req models.ReservationRequest) (*models.Quote, error)
	ReservationMessage(req models.ReservationRequest, roomLabel string, b models.PriceBreakdown) string
	EventMessage(req models.EventEnquiry) string
	Submit(ctx context.Context, req models.ReservationRequest) (*models.SubmissionResult, error)
	SubmitEvent(ctx context.Context, req models.EventEnquiry) (*models.SubmissionResult, error)
	Defaults(roomID string, pkg models.PackageType, ac bool) (*models.BookingDefaults, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Catalog         catalog.CatalogService
	Publisher       events.Publisher
	NotificationSvc notification.NotificationService
	ResortName      string
	OwnerNumber     string
	Location        *time.Location
	// Now is the clock used for date validation and defaults.
	Now func() time.Time
}

// NewBookingService wires the booking service. The resort timezone falls back
// to UTC when tz cannot be loaded.
func NewBookingService(
	cat catalog.CatalogService,
	pub events.Publisher,
	notifSvc notification.NotificationService,
	resortName, ownerNumber, tz string,
) *DefaultBookingService {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	return &DefaultBookingService{
		Catalog:         cat,
		Publisher:       pub,
		NotificationSvc: notifSvc,
		ResortName:      resortName,
		OwnerNumber:     ownerNumber,
		Location:        loc,
		Now:             time.Now,
	}
}

// today returns midnight of the current day in the resort timezone.
func (s *DefaultBookingService) today() time.Time {
	now := s.Now().In(s.Location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.Location)
}
