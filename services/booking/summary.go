package booking

import (
	"fmt"

	"katwate/models"
	"katwate/services/pricing"
	"katwate/utils"
)

const summaryDateLayout = "Mon, Jan 2"

// Quote prices a possibly incomplete form. Dates are optional here; they are
// only enforced when the request is submitted.
func (s *DefaultBookingService) Quote(req models.ReservationRequest) (*models.Quote, error) {
	room, _, err := s.selectRoom(req)
	if err != nil {
		return nil, err
	}
	if err := validateGuests(room, req.AdultCount, req.ChildCount); err != nil {
		return nil, err
	}
	b, err := pricing.Resolve(room, selectionOf(room, req))
	if err != nil {
		return nil, utils.NewValidationError(err.Error())
	}
	return &models.Quote{Breakdown: b, Summary: s.summarize(room, req, b)}, nil
}

func selectionOf(room models.RoomOffering, req models.ReservationRequest) models.BookingSelection {
	return models.BookingSelection{
		RoomID:   room.ID,
		Package:  req.PackageType,
		AC:       req.ACOption,
		Adults:   req.AdultCount,
		Children: req.ChildCount,
		CheckIn:  req.CheckInDate,
		CheckOut: req.CheckOutDate,
	}
}

func (s *DefaultBookingService) summarize(room models.RoomOffering, req models.ReservationRequest, b models.PriceBreakdown) models.BookingSummary {
	summary := models.BookingSummary{
		RoomName:    room.Name,
		PackageType: req.PackageType.Label(),
		Adults:      req.AdultCount,
		Children:    req.ChildCount,
		BasePrice:   "N/A",
		TotalPrice:  "N/A",
		Inclusions:  b.Inclusions,
		Timing:      room.Timing,
	}
	if room.HasACOption {
		label := "Non-AC"
		if req.ACOption {
			label = "AC"
		}
		summary.ACOption = &label
	}

	if b.BasePrice != nil {
		summary.BasePrice = utils.FormatRupees(*b.BasePrice)
		switch {
		case b.TierApplied:
			summary.BasePrice += fmt.Sprintf(" for %d adults", req.AdultCount)
		case b.PerPerson:
			summary.BasePrice += " per person"
		}
	}
	if b.ExtraPersonCost.IsPositive() {
		v := utils.FormatRupees(b.ExtraPersonCost)
		summary.ExtraPersonCost = &v
	}
	if b.ExtraChildCost.IsPositive() {
		v := utils.FormatRupees(b.ExtraChildCost)
		summary.ExtraChildCost = &v
	}
	if b.TotalPrice != nil {
		summary.TotalPrice = utils.FormatRupees(*b.TotalPrice) + " (Inclusive of GST)"
	}

	summary.CheckInDate = s.displayDate(req.CheckInDate)
	if req.PackageType == models.PackageNight {
		summary.CheckOutDate = s.displayDate(req.CheckOutDate)
	}
	return summary
}

// displayDate renders an ISO date as "Mon, Jan 2", or nil when unset or
// unparseable.
func (s *DefaultBookingService) displayDate(value string) *string {
	if value == "" {
		return nil
	}
	t, err := s.parseDate(value)
	if err != nil {
		return nil
	}
	out := t.Format(summaryDateLayout)
	return &out
}
