package models

// Guest statuses used by the dashboard metrics.
const (
	StatusConfirmed  = "Confirmed"
	StatusCheckedIn  = "Checked In"
	StatusCheckedOut = "Checked Out"
)

// Guest is a reservation managed from the admin dashboard. Dates are stored
// as YYYY-MM-DD strings so that lexical and chronological order agree.
type Guest struct {
	ID             string `json:"id" firestore:"-" bson:"_id"`
	Name           string `json:"name" firestore:"name" bson:"name"`
	Email          string `json:"email" firestore:"email" bson:"email"`
	Mobile         string `json:"mobile" firestore:"mobile" bson:"mobile"`
	RoomType       string `json:"roomType" firestore:"roomType" bson:"roomType"`
	RoomNumber     string `json:"roomNumber" firestore:"roomNumber" bson:"roomNumber"`
	NumberOfGuests int    `json:"numberOfGuests" firestore:"numberOfGuests" bson:"numberOfGuests"`
	CheckIn        string `json:"checkIn" firestore:"checkIn" bson:"checkIn"`
	CheckOut       string `json:"checkOut" firestore:"checkOut" bson:"checkOut"`
	Status         string `json:"status" firestore:"status" bson:"status"`
	IDType         string `json:"idType" firestore:"idType" bson:"idType"`
	IDNumber       string `json:"idNumber" firestore:"idNumber" bson:"idNumber"`
	AvatarColor    string `json:"avatarColor" firestore:"avatarColor" bson:"avatarColor"`
}

// GuestPage is one page of the guest table.
type GuestPage struct {
	Guests      []Guest `json:"guests"`
	Page        int     `json:"page"`
	PerPage     int     `json:"perPage"`
	TotalPages  int     `json:"totalPages"`
	TotalGuests int     `json:"totalGuests"`
	DisplayTo   int     `json:"displayItemsTo"`
}

// SummaryMetrics are the day counters at the top of the dashboard.
type SummaryMetrics struct {
	CheckIns  int `json:"checkIns"`
	CheckOuts int `json:"checkOuts"`
	Pending   int `json:"pending"`
}

// RoomAvailability is the number of free rooms per category for a date.
type RoomAvailability struct {
	Single int `json:"single"`
	Double int `json:"double"`
	Suite  int `json:"suite"`
}

// CalendarDay marks whether any guest occupies a day of the month.
type CalendarDay struct {
	Day    int    `json:"day"`
	Date   string `json:"date"`
	Booked bool   `json:"booked"`
}

// Dashboard bundles the figures shown on the admin landing page.
type Dashboard struct {
	Date         string           `json:"date"`
	Metrics      SummaryMetrics   `json:"metrics"`
	Availability RoomAvailability `json:"availability"`
}

// ReminderPayload is the queued reminder for a confirmed guest.
type ReminderPayload struct {
	GuestID string `json:"guestId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	CheckIn string `json:"checkIn"`
}
