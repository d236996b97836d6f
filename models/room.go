package models

import "github.com/shopspring/decimal"

// PackageType is the kind of stay a guest books.
type PackageType string

const (
	PackageDay   PackageType = "day"
	PackageNight PackageType = "night"
	PackageEvent PackageType = "event"
)

// Label returns the display name used in summaries and messages.
func (p PackageType) Label() string {
	switch p {
	case PackageDay:
		return "Day Package"
	case PackageNight:
		return "Night Package"
	case PackageEvent:
		return "Event"
	}
	return string(p)
}

// Valid reports whether p is one of the bookable package types.
func (p PackageType) Valid() bool {
	return p == PackageDay || p == PackageNight
}

// PricingMode tells the resolver how a room's base price scales with guests.
type PricingMode string

const (
	// PricingPerPerson multiplies the base price by the adult count unless a
	// person tier matches.
	PricingPerPerson PricingMode = "per_person"
	// PricingFlat charges the base price for the room, plus surcharges for
	// guests beyond the stated capacity.
	PricingFlat PricingMode = "flat"
	// PricingOnRequest rooms are never priced online.
	PricingOnRequest PricingMode = "on_request"
)

// PersonTier is the total price for an exact number of adults.
type PersonTier struct {
	Persons int             `json:"persons"`
	Price   decimal.Decimal `json:"price"`
}

// PriceVariant holds the prices of a room for one AC setting. A nil price
// means the package is not offered under this variant.
type PriceVariant struct {
	DayPrice    *decimal.Decimal             `json:"dayPrice"`
	NightPrice  *decimal.Decimal             `json:"nightPrice"`
	Capacity    string                       `json:"capacity,omitempty"`
	Tiers       map[PackageType][]PersonTier `json:"personPricing,omitempty"`
	ExtraPerson *decimal.Decimal             `json:"extraPerson,omitempty"`
	ExtraChild  *decimal.Decimal             `json:"extraChild,omitempty"`
}

// Price returns the package price, or nil when the package is unavailable.
func (v PriceVariant) Price(pkg PackageType) *decimal.Decimal {
	switch pkg {
	case PackageDay:
		return v.DayPrice
	case PackageNight:
		return v.NightPrice
	}
	return nil
}

// TiersFor returns the person tiers defined for a package.
func (v PriceVariant) TiersFor(pkg PackageType) []PersonTier {
	if v.Tiers == nil {
		return nil
	}
	return v.Tiers[pkg]
}

// RoomOffering is one entry of the tariff catalog.
type RoomOffering struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	Images          []string      `json:"images"`
	Capacity        string        `json:"capacity"`
	DayInclusions   []string      `json:"dayInclusions"`
	NightInclusions []string      `json:"nightInclusions"`
	HasACOption     bool          `json:"hasACOption"`
	Timing          string        `json:"timing,omitempty"`
	Badge           string        `json:"badge,omitempty"`
	Pricing         PricingMode   `json:"pricing"`
	Packages        []PackageType `json:"packages"`
	AC              PriceVariant  `json:"ac"`
	NonAC           PriceVariant  `json:"nonAc"`
}

// Variant returns the price table for the AC selection. Rooms without an AC
// choice always use the non-AC table.
func (r RoomOffering) Variant(ac bool) PriceVariant {
	if ac && r.HasACOption {
		return r.AC
	}
	return r.NonAC
}

// Inclusions returns what the package includes.
func (r RoomOffering) Inclusions(pkg PackageType) []string {
	if pkg == PackageNight {
		return r.NightInclusions
	}
	return r.DayInclusions
}

// OffersPackage reports whether the room can be booked under pkg.
func (r RoomOffering) OffersPackage(pkg PackageType) bool {
	for _, p := range r.Packages {
		if p == pkg {
			return true
		}
	}
	return false
}

// RoomType maps a booking form value to a catalog room.
type RoomType struct {
	Value       string        `json:"value"`
	Label       string        `json:"label"`
	RoomID      string        `json:"roomId"`
	ForPackages []PackageType `json:"forPackages"`
}

// TariffCard is a room as shown on the tariffs section for one view.
type TariffCard struct {
	Room               RoomOffering `json:"room"`
	CurrentPrice       string       `json:"currentPrice"`
	Inclusions         []string     `json:"inclusions"`
	PersonPricing      []PersonTier `json:"personPricing"`
	ExtraPerson        *string      `json:"extraPerson,omitempty"`
	ExtraChild         *string      `json:"extraChild,omitempty"`
	HasExtraCharges    bool         `json:"hasExtraCharges"`
	MinPersons         *int         `json:"minPersons,omitempty"`
	SelectedACVariant  bool         `json:"acSelected"`
	SelectedPackage    PackageType  `json:"packageType"`
	BookingRoomTypeRef string       `json:"roomType"`
}
