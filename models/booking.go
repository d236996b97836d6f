package models

import "github.com/shopspring/decimal"

// BookingSelection is the input of the pricing resolver.
type BookingSelection struct {
	RoomID   string      `json:"roomId"`
	Package  PackageType `json:"packageType"`
	AC       bool        `json:"acOption"`
	Adults   int         `json:"adults"`
	Children int         `json:"children"`
	CheckIn  string      `json:"checkIn"`
	CheckOut string      `json:"checkOut,omitempty"`
}

// PriceBreakdown is the output of the pricing resolver. BasePrice and
// TotalPrice are nil when the selected package has no price.
type PriceBreakdown struct {
	Available       bool             `json:"available"`
	BasePrice       *decimal.Decimal `json:"basePrice"`
	PerPerson       bool             `json:"perPerson"`
	TierApplied     bool             `json:"tierApplied"`
	ExtraPersonCost decimal.Decimal  `json:"extraPersonCost"`
	ExtraChildCost  decimal.Decimal  `json:"extraChildCost"`
	TotalPrice      *decimal.Decimal `json:"totalPrice"`
	Inclusions      []string         `json:"inclusions"`
}

// ReservationRequest is the public booking form.
type ReservationRequest struct {
	PackageType     PackageType `json:"packageType"`
	RoomType        string      `json:"roomType"`
	CheckInDate     string      `json:"checkInDate"`
	CheckOutDate    string      `json:"checkOutDate"`
	AdultCount      int         `json:"adultCount"`
	ChildCount      int         `json:"childCount"`
	SpecialRequests string      `json:"specialRequests"`
	ACOption        bool        `json:"acOption"`
}

// EventEnquiry is the public event enquiry form.
type EventEnquiry struct {
	EventType       string `json:"eventType"`
	CheckInDate     string `json:"checkInDate"`
	CheckOutDate    string `json:"checkOutDate"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
	SpecialRequests string `json:"specialRequests"`
}

// BookingSummary is the human readable view of a quote shown beside the form.
type BookingSummary struct {
	RoomName        string   `json:"roomName"`
	PackageType     string   `json:"packageType"`
	ACOption        *string  `json:"acOption"`
	Adults          int      `json:"adults"`
	Children        int      `json:"children"`
	BasePrice       string   `json:"basePrice"`
	ExtraPersonCost *string  `json:"extraPersonCost"`
	ExtraChildCost  *string  `json:"extraChildCost"`
	TotalPrice      string   `json:"totalPrice"`
	Inclusions      []string `json:"inclusions"`
	CheckInDate     *string  `json:"checkInDate"`
	CheckOutDate    *string  `json:"checkOutDate"`
	Timing          string   `json:"timing,omitempty"`
}

// Quote bundles the breakdown with its display summary.
type Quote struct {
	Breakdown PriceBreakdown `json:"breakdown"`
	Summary   BookingSummary `json:"summary"`
}

// SubmissionResult is returned once a booking or enquiry has been formatted.
type SubmissionResult struct {
	EnquiryID   string          `json:"enquiryId"`
	Message     string          `json:"message"`
	WhatsAppURL string          `json:"whatsappUrl"`
	Summary     *BookingSummary `json:"summary,omitempty"`
}

// BookingDefaults pre-populates the booking form for a room.
type BookingDefaults struct {
	PackageType  PackageType `json:"packageType"`
	RoomType     string      `json:"roomType"`
	ACOption     bool        `json:"acOption"`
	AdultCount   int         `json:"adultCount"`
	MinAdults    int         `json:"minAdults"`
	MaxAdults    int         `json:"maxAdults"`
	CheckInDate  string      `json:"checkInDate"`
	CheckOutDate string      `json:"checkOutDate,omitempty"`
	MinDate      string      `json:"minDate"`
}

// EnquiryEvent is published for every reservation request or event enquiry.
type EnquiryEvent struct {
	ID         string           `json:"id"`
	Kind       string           `json:"kind"`
	RoomID     string           `json:"roomId,omitempty"`
	Package    PackageType      `json:"packageType,omitempty"`
	EventType  string           `json:"eventType,omitempty"`
	CheckIn    string           `json:"checkIn"`
	CheckOut   string           `json:"checkOut,omitempty"`
	Adults     int              `json:"adults"`
	Children   int              `json:"children"`
	TotalPrice *decimal.Decimal `json:"totalPrice,omitempty"`
	CreatedAt  string           `json:"createdAt"`
}
