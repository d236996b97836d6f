package booking

import (
	"fmt"
	"strings"
	"time"

	"katwate/models"
	"katwate/services/catalog"
	"katwate/utils"
)

// Validate checks a reservation request against the catalog and the calendar
// and returns the room it refers to.
func (s *DefaultBookingService) Validate(req models.ReservationRequest) (models.RoomOffering, models.RoomType, error) {
	room, rt, err := s.selectRoom(req)
	if err != nil {
		return room, rt, err
	}
	if err := validateGuests(room, req.AdultCount, req.ChildCount); err != nil {
		return room, rt, err
	}

	if strings.TrimSpace(req.CheckInDate) == "" {
		return room, rt, utils.NewValidationError("Check-in date is required")
	}
	checkIn, err := s.parseDate(req.CheckInDate)
	if err != nil {
		return room, rt, utils.NewValidationError("Invalid check-in date")
	}
	if checkIn.Before(s.today()) {
		return room, rt, utils.NewValidationError("Check-in date cannot be in the past")
	}

	if req.PackageType == models.PackageNight {
		if strings.TrimSpace(req.CheckOutDate) == "" {
			return room, rt, utils.NewValidationError("Check-out date is required for night packages")
		}
		checkOut, err := s.parseDate(req.CheckOutDate)
		if err != nil {
			return room, rt, utils.NewValidationError("Invalid check-out date")
		}
		if !checkOut.After(checkIn) {
			return room, rt, utils.NewValidationError("Check-out date must be after check-in date")
		}
	}
	return room, rt, nil
}

// selectRoom resolves the package and room type of a request.
func (s *DefaultBookingService) selectRoom(req models.ReservationRequest) (models.RoomOffering, models.RoomType, error) {
	if !req.PackageType.Valid() {
		return models.RoomOffering{}, models.RoomType{}, utils.NewValidationError("Please select a day or night package")
	}
	if strings.TrimSpace(req.RoomType) == "" {
		return models.RoomOffering{}, models.RoomType{}, utils.NewValidationError("Please select a room type")
	}
	rt, ok := s.Catalog.ResolveRoomType(req.RoomType)
	if !ok {
		return models.RoomOffering{}, rt, utils.NewValidationError("Unknown room type")
	}
	room, ok := s.Catalog.RoomByID(rt.RoomID)
	if !ok {
		return room, rt, fmt.Errorf("room type %s: %w", rt.Value, ErrRoomNotFound)
	}
	if !room.OffersPackage(req.PackageType) {
		return room, rt, utils.NewValidationError(fmt.Sprintf("%s is not available with the %s", rt.Label, req.PackageType.Label()))
	}
	return room, rt, nil
}

func validateGuests(room models.RoomOffering, adults, children int) error {
	if adults < 1 {
		return utils.NewValidationError("At least one adult is required")
	}
	if children < 0 {
		return utils.NewValidationError("Children cannot be negative")
	}
	if limit := catalog.MaxAdults(room); adults > limit {
		return utils.NewValidationError(fmt.Sprintf("Maximum %d adults allowed for %s", limit, room.Name))
	}
	return nil
}

// ValidateEvent checks an event enquiry. The end date is optional.
func (s *DefaultBookingService) ValidateEvent(req models.EventEnquiry) error {
	if strings.TrimSpace(req.EventType) == "" {
		return utils.NewValidationError("Please select an event type")
	}
	if strings.TrimSpace(req.CheckInDate) == "" {
		return utils.NewValidationError("Event date is required")
	}
	start, err := s.parseDate(req.CheckInDate)
	if err != nil {
		return utils.NewValidationError("Invalid event date")
	}
	if start.Before(s.today()) {
		return utils.NewValidationError("Event date cannot be in the past")
	}
	if strings.TrimSpace(req.CheckOutDate) != "" {
		end, err := s.parseDate(req.CheckOutDate)
		if err != nil {
			return utils.NewValidationError("Invalid end date")
		}
		if end.Before(start) {
			return utils.NewValidationError("End date cannot be before the event date")
		}
	}
	if req.Adults < 1 {
		return utils.NewValidationError("At least one adult is required")
	}
	if req.Children < 0 {
		return utils.NewValidationError("Children cannot be negative")
	}
	return nil
}

func (s *DefaultBookingService) parseDate(value string) (time.Time, error) {
	return time.ParseInLocation(utils.DateLayout, strings.TrimSpace(value), s.Location)
}
