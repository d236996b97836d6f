package pricing

import (
	"errors"
	"fmt"

	"katwate/models"
	"katwate/services/catalog"

	"github.com/shopspring/decimal"
)

// DefaultBaseCapacity applies to flat priced rooms whose capacity text has no number.
const DefaultBaseCapacity = 2

var (
	ErrInvalidPackage    = errors.New("package type must be day or night")
	ErrInvalidGuestCount = errors.New("at least one adult is required and children cannot be negative")
)

// Resolve computes the price of a selection for a room.
//
// A missing package price never turns into zero: the breakdown comes back
// with Available=false and nil base and total prices.
func Resolve(room models.RoomOffering, sel models.BookingSelection) (models.PriceBreakdown, error) {
	if !sel.Package.Valid() {
		return models.PriceBreakdown{}, fmt.Errorf("resolve %s: %w", room.ID, ErrInvalidPackage)
	}
	if sel.Adults < 1 || sel.Children < 0 {
		return models.PriceBreakdown{}, fmt.Errorf("resolve %s: %w", room.ID, ErrInvalidGuestCount)
	}

	out := models.PriceBreakdown{
		PerPerson:       room.Pricing == models.PricingPerPerson,
		ExtraPersonCost: decimal.Zero,
		ExtraChildCost:  decimal.Zero,
		Inclusions:      room.Inclusions(sel.Package),
	}
	if out.Inclusions == nil {
		out.Inclusions = []string{}
	}
	if room.Pricing == models.PricingOnRequest {
		return out, nil
	}

	variant := room.Variant(sel.AC)
	base := variant.Price(sel.Package)
	if base == nil {
		return out, nil
	}

	basePrice := *base
	var total decimal.Decimal
	switch room.Pricing {
	case models.PricingPerPerson:
		if t, ok := matchTier(variant.TiersFor(sel.Package), sel.Adults); ok {
			basePrice = t.Price
			total = t.Price
			out.TierApplied = true
		} else {
			total = basePrice.Mul(decimal.NewFromInt(int64(sel.Adults)))
		}
	default:
		total = basePrice
		out.ExtraPersonCost, out.ExtraChildCost = surcharges(room, variant, sel)
		total = total.Add(out.ExtraPersonCost).Add(out.ExtraChildCost)
	}

	out.Available = true
	out.BasePrice = &basePrice
	out.TotalPrice = &total
	return out, nil
}

// matchTier finds the tier for exactly persons adults.
func matchTier(tiers []models.PersonTier, persons int) (models.PersonTier, bool) {
	for _, t := range tiers {
		if t.Persons == persons {
			return t, true
		}
	}
	return models.PersonTier{}, false
}

// surcharges charges adults beyond the room's base capacity and every child,
// each only when the variant defines the matching rate.
func surcharges(room models.RoomOffering, v models.PriceVariant, sel models.BookingSelection) (decimal.Decimal, decimal.Decimal) {
	capacity := catalog.ParseCapacity(room.Capacity)
	if capacity == 0 {
		capacity = DefaultBaseCapacity
	}

	extraPerson := decimal.Zero
	if extra := sel.Adults - capacity; extra > 0 && v.ExtraPerson != nil {
		extraPerson = v.ExtraPerson.Mul(decimal.NewFromInt(int64(extra)))
	}
	extraChild := decimal.Zero
	if sel.Children > 0 && v.ExtraChild != nil {
		extraChild = v.ExtraChild.Mul(decimal.NewFromInt(int64(sel.Children)))
	}
	return extraPerson, extraChild
}
