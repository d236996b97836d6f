package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"katwate/models"
	"katwate/services/catalog"
	"katwate/services/events"
	"katwate/services/pricing"
	"katwate/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submit validates a reservation request and returns the WhatsApp link that
// hands it to the resort. Staff are notified and an enquiry event is
// published on the way; neither failure blocks the guest.
func (s *DefaultBookingService) Submit(ctx context.Context, req models.ReservationRequest) (*models.SubmissionResult, error) {
	room, rt, err := s.Validate(req)
	if err != nil {
		return nil, err
	}
	b, err := pricing.Resolve(room, selectionOf(room, req))
	if err != nil {
		return nil, utils.NewValidationError(err.Error())
	}
	summary := s.summarize(room, req, b)
	text := s.ReservationMessage(req, rt.Label, b)

	event := models.EnquiryEvent{
		ID:         uuid.NewString(),
		Kind:       "reservation",
		RoomID:     room.ID,
		Package:    req.PackageType,
		CheckIn:    req.CheckInDate,
		Adults:     req.AdultCount,
		Children:   req.ChildCount,
		TotalPrice: b.TotalPrice,
		CreatedAt:  s.Now().UTC().Format(time.RFC3339),
	}
	if req.PackageType == models.PackageNight {
		event.CheckOut = req.CheckOutDate
	}
	s.dispatch(ctx, events.RoutingReservation, event, func(ctx context.Context) error {
		return s.NotificationSvc.NotifyReservation(ctx, event, room.Name)
	})

	return &models.SubmissionResult{
		EnquiryID:   event.ID,
		Message:     text,
		WhatsAppURL: WhatsAppLink(s.OwnerNumber, text),
		Summary:     &summary,
	}, nil
}

// SubmitEvent validates an event enquiry and returns its WhatsApp link.
func (s *DefaultBookingService) SubmitEvent(ctx context.Context, req models.EventEnquiry) (*models.SubmissionResult, error) {
	if err := s.ValidateEvent(req); err != nil {
		return nil, err
	}
	text := s.EventMessage(req)

	event := models.EnquiryEvent{
		ID:        uuid.NewString(),
		Kind:      "event",
		Package:   models.PackageEvent,
		EventType: capitalize(strings.TrimSpace(req.EventType)),
		CheckIn:   req.CheckInDate,
		CheckOut:  req.CheckOutDate,
		Adults:    req.Adults,
		Children:  req.Children,
		CreatedAt: s.Now().UTC().Format(time.RFC3339),
	}
	s.dispatch(ctx, events.RoutingEvent, event, func(ctx context.Context) error {
		return s.NotificationSvc.NotifyEventEnquiry(ctx, event)
	})

	return &models.SubmissionResult{
		EnquiryID:   event.ID,
		Message:     text,
		WhatsAppURL: WhatsAppLink(s.OwnerNumber, text),
	}, nil
}

func (s *DefaultBookingService) dispatch(ctx context.Context, key string, event models.EnquiryEvent, notify func(context.Context) error) {
	logger := utils.GetLogger()
	if s.Publisher != nil {
		if err := s.Publisher.Publish(ctx, key, event); err != nil {
			logger.Warn("Failed to publish enquiry event", zap.String("enquiryId", event.ID), zap.Error(err))
		}
	}
	if s.NotificationSvc != nil {
		if err := notify(ctx); err != nil {
			logger.Warn("Failed to notify staff", zap.String("enquiryId", event.ID), zap.Error(err))
		}
	}
}

// Defaults returns the values a booking form opens with for a room: the
// room's minimum adult count, check-in tomorrow and, for night packages,
// check-out the day after.
func (s *DefaultBookingService) Defaults(roomID string, pkg models.PackageType, ac bool) (*models.BookingDefaults, error) {
	room, ok := s.Catalog.RoomByID(roomID)
	if !ok {
		return nil, fmt.Errorf("defaults for %s: %w", roomID, ErrRoomNotFound)
	}
	if room.Pricing == models.PricingOnRequest {
		return nil, utils.NewValidationError("Events are booked through the event enquiry form")
	}
	if pkg == "" && len(room.Packages) > 0 {
		pkg = room.Packages[0]
	}
	if !room.OffersPackage(pkg) {
		return nil, utils.NewValidationError(fmt.Sprintf("%s is not available with the %s", room.Name, pkg.Label()))
	}

	ac = ac && room.HasACOption
	today := s.today()
	tomorrow := today.AddDate(0, 0, 1)
	d := &models.BookingDefaults{
		PackageType: pkg,
		ACOption:    ac,
		AdultCount:  catalog.MinAdults(room, ac),
		MinAdults:   catalog.MinAdults(room, ac),
		MaxAdults:   catalog.MaxAdults(room),
		CheckInDate: tomorrow.Format(utils.DateLayout),
		MinDate:     today.Format(utils.DateLayout),
	}
	if rt, ok := s.Catalog.ResolveRoomType(room.ID); ok {
		d.RoomType = rt.Value
	}
	if pkg == models.PackageNight {
		d.CheckOutDate = tomorrow.AddDate(0, 0, 1).Format(utils.DateLayout)
	}
	return d, nil
}
