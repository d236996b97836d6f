package catalog

import (
	"regexp"
	"strconv"

	"katwate/models"
	"katwate/utils"
)

// DefaultMaxAdults caps guest counters for rooms without a numeric capacity.
const DefaultMaxAdults = 20

var (
	capacityPattern   = regexp.MustCompile(`(\d+)`)
	minPersonsPattern = regexp.MustCompile(`(?i)Min\.\s*(\d+)`)
)

// CatalogService exposes the tariff catalog. The returned offerings share
// their slices with the catalog and must be treated as read-only.
type CatalogService interface {
	Rooms() []models.RoomOffering
	RoomByID(id string) (models.RoomOffering, bool)
	RoomTypes() []models.RoomType
	ResolveRoomType(value string) (models.RoomType, bool)
	RoomTypesFor(pkg models.PackageType) []models.RoomType
	VisibleRooms(view models.PackageType, ac bool) []models.RoomOffering
	Tariffs(view models.PackageType, ac bool) []models.TariffCard
	SpecialEvents() string
}

// DefaultCatalogService serves the built-in resort tariffs.
type DefaultCatalogService struct {
	rooms     []models.RoomOffering
	roomTypes []models.RoomType
}

// NewCatalogService returns the catalog with the resort's published tariffs.
func NewCatalogService() *DefaultCatalogService {
	return &DefaultCatalogService{
		rooms:     defaultRooms(),
		roomTypes: defaultRoomTypes(),
	}
}

func (s *DefaultCatalogService) Rooms() []models.RoomOffering {
	return s.rooms
}

func (s *DefaultCatalogService) RoomByID(id string) (models.RoomOffering, bool) {
	for _, r := range s.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return models.RoomOffering{}, false
}

func (s *DefaultCatalogService) RoomTypes() []models.RoomType {
	return s.roomTypes
}

// ResolveRoomType accepts either a booking form value ("standard") or a
// room id ("standard-room").
func (s *DefaultCatalogService) ResolveRoomType(value string) (models.RoomType, bool) {
	for _, rt := range s.roomTypes {
		if rt.Value == value || rt.RoomID == value {
			return rt, true
		}
	}
	return models.RoomType{}, false
}

func (s *DefaultCatalogService) RoomTypesFor(pkg models.PackageType) []models.RoomType {
	var out []models.RoomType
	for _, rt := range s.roomTypes {
		for _, p := range rt.ForPackages {
			if p == pkg {
				out = append(out, rt)
				break
			}
		}
	}
	return out
}

// VisibleRooms lists the rooms priced for view under the selected AC variant.
// Event rooms are never shown as tariff cards.
func (s *DefaultCatalogService) VisibleRooms(view models.PackageType, ac bool) []models.RoomOffering {
	var out []models.RoomOffering
	for _, r := range s.rooms {
		if r.Pricing == models.PricingOnRequest {
			continue
		}
		if r.Variant(ac).Price(view) != nil {
			out = append(out, r)
		}
	}
	return out
}

func (s *DefaultCatalogService) Tariffs(view models.PackageType, ac bool) []models.TariffCard {
	rooms := s.VisibleRooms(view, ac)
	cards := make([]models.TariffCard, 0, len(rooms))
	for _, r := range rooms {
		v := r.Variant(ac)
		card := models.TariffCard{
			Room:              r,
			CurrentPrice:      CurrentPrice(r, view, ac),
			Inclusions:        r.Inclusions(view),
			PersonPricing:     v.TiersFor(view),
			HasExtraCharges:   v.ExtraPerson != nil || v.ExtraChild != nil,
			SelectedACVariant: ac && r.HasACOption,
			SelectedPackage:   view,
		}
		if card.PersonPricing == nil {
			card.PersonPricing = []models.PersonTier{}
		}
		if v.ExtraPerson != nil {
			amount := utils.FormatRupees(*v.ExtraPerson)
			card.ExtraPerson = &amount
		}
		if v.ExtraChild != nil {
			amount := utils.FormatRupees(*v.ExtraChild)
			card.ExtraChild = &amount
		}
		if n := MinAdults(r, ac); n > 0 && r.Pricing == models.PricingPerPerson && ParseMinPersons(r.Capacity) > 0 {
			card.MinPersons = &n
		}
		if rt, ok := s.ResolveRoomType(r.ID); ok {
			card.BookingRoomTypeRef = rt.Value
		}
		cards = append(cards, card)
	}
	return cards
}

func (s *DefaultCatalogService) SpecialEvents() string {
	return specialEvents
}

// CurrentPrice is the headline price of a tariff card.
func CurrentPrice(r models.RoomOffering, view models.PackageType, ac bool) string {
	if r.Pricing == models.PricingOnRequest {
		return "Contact for Pricing"
	}
	p := r.Variant(ac).Price(view)
	if p == nil {
		return "N/A"
	}
	return utils.FormatRupees(*p)
}

// ParseCapacity returns the first integer in a capacity description, or 0.
func ParseCapacity(text string) int {
	m := capacityPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// ParseMinPersons extracts N from "Min. N" in a capacity description, or 0.
func ParseMinPersons(text string) int {
	m := minPersonsPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// MinAdults is the adult count a booking form starts from for the room under
// the selected AC variant.
func MinAdults(r models.RoomOffering, ac bool) int {
	switch r.Pricing {
	case models.PricingOnRequest:
		return 0
	case models.PricingPerPerson:
		if n := ParseMinPersons(r.Variant(ac).Capacity); n > 0 {
			return n
		}
		if n := ParseMinPersons(r.Capacity); n > 0 {
			return n
		}
	}
	if n := ParseCapacity(r.Capacity); n > 0 {
		return n
	}
	return 1
}

// MaxAdults bounds the adult counter. Flat priced rooms accept extra adults
// for a surcharge, so they are capped only by DefaultMaxAdults.
func MaxAdults(r models.RoomOffering) int {
	if r.Pricing != models.PricingPerPerson || ParseMinPersons(r.Capacity) > 0 {
		return DefaultMaxAdults
	}
	if n := ParseCapacity(r.Capacity); n > 0 {
		return n
	}
	return DefaultMaxAdults
}
