package catalog

import (
	"katwate/models"

	"github.com/shopspring/decimal"
)

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func tier(persons int, v int64) models.PersonTier {
	return models.PersonTier{Persons: persons, Price: decimal.NewFromInt(v)}
}

const specialEvents = "Special arrangement for Wedding, Birthday Party, Corporate Event and other events. (Party Hall 1000sq. ft.)"

func defaultRooms() []models.RoomOffering {
	return []models.RoomOffering{
		{
			ID:   "day-pass",
			Name: "Day Pass",
			Images: []string{
				"/assets/images/resort-lounge.jpg",
				"/assets/images/resort-pool.jpg",
				"/assets/images/resort-lunch-food.jpg",
			},
			Description: "Access to resort facilities without overnight stay",
			Capacity:    "Per Person (Min. 6-10 Persons)",
			DayInclusions: []string{
				"Standard Room Access",
				"Morning Breakfast",
				"High Tea",
				"Buffet Lunch (Veg or Non-veg)",
				"Open Garden Access",
				"Swimming Pool Access",
				"Free WiFi",
			},
			NightInclusions: []string{},
			HasACOption:     true,
			Timing:          "9:30 AM to 5:00 PM",
			Badge:           "Popular",
			Pricing:         models.PricingPerPerson,
			Packages:        []models.PackageType{models.PackageDay},
			AC: models.PriceVariant{
				DayPrice: price(950),
				Capacity: "Per Person (Min. 6 Persons)",
			},
			NonAC: models.PriceVariant{
				DayPrice: price(850),
				Capacity: "Per Person (Min. 10 Persons)",
			},
		},
		{
			ID:   "standard-room",
			Name: "Standard Room",
			Images: []string{
				"/assets/images/tariffs/standard-room-1.jpg",
				"/assets/images/tariffs/standard-room-2.jpg",
				"/assets/images/standard-room-3.jpg",
			},
			Description:   "Comfortable accommodation for groups",
			Capacity:      "5 Adults",
			DayInclusions: []string{},
			NightInclusions: []string{
				"Overnight Stay",
				"Morning Breakfast",
				"High Tea",
				"Buffet Lunch",
				"Buffet Dinner (Veg or Non-veg)",
				"Open Garden Access",
				"Swimming Pool Access",
				"Free WiFi",
			},
			HasACOption: true,
			Pricing:     models.PricingPerPerson,
			Packages:    []models.PackageType{models.PackageNight},
			AC: models.PriceVariant{
				NightPrice: price(2200),
				Tiers: map[models.PackageType][]models.PersonTier{
					models.PackageNight: {tier(5, 2200), tier(4, 2400), tier(3, 2600)},
				},
			},
			NonAC: models.PriceVariant{
				NightPrice: price(1900),
				Tiers: map[models.PackageType][]models.PersonTier{
					models.PackageNight: {tier(5, 1900), tier(4, 2000), tier(3, 2200)},
				},
			},
		},
		{
			ID:   "couple-package",
			Name: "Couple Package",
			Images: []string{
				"/assets/images/tariffs/deluxe-room-1.jpg",
				"/assets/images/tariffs/deluxe-room-2.jpg",
				"/assets/images/family-suite-3.jpg",
			},
			Description:   "Perfect for couples with all meals included",
			Capacity:      "2 Adults",
			DayInclusions: []string{},
			NightInclusions: []string{
				"Overnight Stay",
				"Morning Breakfast",
				"3 Tea or Coffee",
				"Buffet Lunch",
				"Buffet Dinner (Veg or Non-veg)",
				"Open Garden Access",
				"Swimming Pool Access",
			},
			HasACOption: true,
			Badge:       "Best Value",
			Pricing:     models.PricingFlat,
			Packages:    []models.PackageType{models.PackageNight},
			AC: models.PriceVariant{
				NightPrice:  price(6000),
				ExtraPerson: price(1800),
				ExtraChild:  price(1400),
			},
			NonAC: models.PriceVariant{
				NightPrice:  price(5000),
				ExtraPerson: price(1600),
				ExtraChild:  price(1100),
			},
		},
		{
			ID:   "deluxe-room",
			Name: "Deluxe Room",
			Images: []string{
				"/assets/images/tariffs/family-suite-1.jpg",
				"/assets/images/tariffs/deluxe-room-2.jpg",
				"/assets/images/deluxe-room-3.jpg",
			},
			Description:   "Spacious room with additional amenities",
			Capacity:      "10 Adults",
			DayInclusions: []string{},
			NightInclusions: []string{
				"Overnight Stay",
				"Morning Breakfast",
				"High Tea",
				"Buffet Lunch",
				"Buffet Dinner (Veg or Non-veg)",
				"Open Garden Access",
				"Swimming Pool Access",
				"Free WiFi",
			},
			HasACOption: true,
			Pricing:     models.PricingPerPerson,
			Packages:    []models.PackageType{models.PackageNight},
			AC:          models.PriceVariant{NightPrice: price(2300)},
			NonAC:       models.PriceVariant{NightPrice: price(2000)},
		},
		{
			ID:   "corporate-event",
			Name: "Corporate/Other Event",
			Images: []string{
				"/assets/images/tariffs/party-hall-1.jpg",
				"/assets/images/tariffs/party-hall-2.jpg",
			},
			Description: specialEvents,
			Capacity:    "Custom (Contact for details)",
			DayInclusions: []string{
				"Party Hall Access (1000 sq. ft.)",
				"Customizable Catering",
				"Event Planning Support",
				"Open Garden Access",
				"Free WiFi",
			},
			NightInclusions: []string{},
			HasACOption:     false,
			Timing:          "Custom (Contact for details)",
			Badge:           "Special Events",
			Pricing:         models.PricingOnRequest,
			Packages:        []models.PackageType{models.PackageEvent},
		},
	}
}

func defaultRoomTypes() []models.RoomType {
	return []models.RoomType{
		{Value: "standard", Label: "Standard Room", RoomID: "standard-room", ForPackages: []models.PackageType{models.PackageNight}},
		{Value: "deluxe", Label: "Deluxe Room", RoomID: "deluxe-room", ForPackages: []models.PackageType{models.PackageNight}},
		{Value: "day-pass", Label: "Day Pass", RoomID: "day-pass", ForPackages: []models.PackageType{models.PackageDay}},
		{Value: "couple-package", Label: "Couple Package", RoomID: "couple-package", ForPackages: []models.PackageType{models.PackageNight}},
	}
}
