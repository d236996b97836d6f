package booking

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"katwate/models"
	"katwate/services/catalog"
	"katwate/services/events"
	"katwate/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	keys   []string
	events []models.EnquiryEvent
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, key string, e models.EnquiryEvent) error {
	f.keys = append(f.keys, key)
	f.events = append(f.events, e)
	return f.err
}

func (f *fakePublisher) Close() error { return nil }

type fakeNotifier struct {
	reservations []string
	enquiries    int
}

func (f *fakeNotifier) NotifyReservation(_ context.Context, _ models.EnquiryEvent, roomName string) error {
	f.reservations = append(f.reservations, roomName)
	return nil
}

func (f *fakeNotifier) NotifyEventEnquiry(context.Context, models.EnquiryEvent) error {
	f.enquiries++
	return nil
}

func (f *fakeNotifier) SendGuestReminder(context.Context, models.ReminderPayload) error { return nil }

func newTestService() (*DefaultBookingService, *fakePublisher, *fakeNotifier) {
	pub := &fakePublisher{}
	notif := &fakeNotifier{}
	svc := NewBookingService(catalog.NewCatalogService(), pub, notif, "Katwate's Resort", "+91 72167073", "UTC")
	svc.Now = func() time.Time { return time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC) }
	return svc, pub, notif
}

func nightRequest() models.ReservationRequest {
	return models.ReservationRequest{
		PackageType:  models.PackageNight,
		RoomType:     "standard",
		CheckInDate:  "2026-11-02",
		CheckOutDate: "2026-11-03",
		AdultCount:   5,
	}
}

func TestValidate(t *testing.T) {
	svc, _, _ := newTestService()

	room, rt, err := svc.Validate(nightRequest())
	require.NoError(t, err)
	assert.Equal(t, "standard-room", room.ID)
	assert.Equal(t, "Standard Room", rt.Label)

	cases := map[string]func(r *models.ReservationRequest){
		"event package":        func(r *models.ReservationRequest) { r.PackageType = models.PackageEvent },
		"unknown room":         func(r *models.ReservationRequest) { r.RoomType = "villa" },
		"room not for package": func(r *models.ReservationRequest) { r.RoomType = "day-pass" },
		"no adults":            func(r *models.ReservationRequest) { r.AdultCount = 0 },
		"negative children":    func(r *models.ReservationRequest) { r.ChildCount = -1 },
		"over capacity":        func(r *models.ReservationRequest) { r.AdultCount = 6 },
		"missing check-in":     func(r *models.ReservationRequest) { r.CheckInDate = "" },
		"bad check-in":         func(r *models.ReservationRequest) { r.CheckInDate = "02/11/2026" },
		"past check-in":        func(r *models.ReservationRequest) { r.CheckInDate = "2026-10-18" },
		"missing check-out":    func(r *models.ReservationRequest) { r.CheckOutDate = "" },
		"same day check-out":   func(r *models.ReservationRequest) { r.CheckOutDate = r.CheckInDate },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := nightRequest()
			mutate(&req)
			_, _, err := svc.Validate(req)
			require.Error(t, err)
			assert.True(t, utils.IsValidationError(err), err.Error())
		})
	}
}

func TestValidateDayPackageIgnoresCheckOut(t *testing.T) {
	svc, _, _ := newTestService()
	_, _, err := svc.Validate(models.ReservationRequest{
		PackageType:  models.PackageDay,
		RoomType:     "day-pass",
		CheckInDate:  "2026-10-19",
		CheckOutDate: "2026-10-01",
		AdultCount:   8,
	})
	assert.NoError(t, err)
}

func TestQuoteSummary(t *testing.T) {
	svc, _, _ := newTestService()

	req := nightRequest()
	req.AdultCount = 2
	q, err := svc.Quote(req)
	require.NoError(t, err)
	assert.Equal(t, "Standard Room", q.Summary.RoomName)
	assert.Equal(t, "Night Package", q.Summary.PackageType)
	require.NotNil(t, q.Summary.ACOption)
	assert.Equal(t, "Non-AC", *q.Summary.ACOption)
	assert.Equal(t, "₹1900 per person", q.Summary.BasePrice)
	assert.Equal(t, "₹3800 (Inclusive of GST)", q.Summary.TotalPrice)
	assert.Nil(t, q.Summary.ExtraPersonCost)
	require.NotNil(t, q.Summary.CheckInDate)
	assert.Equal(t, "Mon, Nov 2", *q.Summary.CheckInDate)
	require.NotNil(t, q.Summary.CheckOutDate)
	assert.Equal(t, "Tue, Nov 3", *q.Summary.CheckOutDate)

	req.AdultCount = 5
	q, err = svc.Quote(req)
	require.NoError(t, err)
	assert.Equal(t, "₹1900 for 5 adults", q.Summary.BasePrice)
	assert.Equal(t, "₹1900 (Inclusive of GST)", q.Summary.TotalPrice)
}

func TestQuoteCoupleExtras(t *testing.T) {
	svc, _, _ := newTestService()
	q, err := svc.Quote(models.ReservationRequest{
		PackageType: models.PackageNight,
		RoomType:    "couple-package",
		AdultCount:  3,
		ChildCount:  1,
		ACOption:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "₹6000", q.Summary.BasePrice)
	require.NotNil(t, q.Summary.ExtraPersonCost)
	assert.Equal(t, "₹1800", *q.Summary.ExtraPersonCost)
	require.NotNil(t, q.Summary.ExtraChildCost)
	assert.Equal(t, "₹1400", *q.Summary.ExtraChildCost)
	assert.Equal(t, "₹9200 (Inclusive of GST)", q.Summary.TotalPrice)
	assert.Nil(t, q.Summary.CheckInDate)
}

func TestReservationMessage(t *testing.T) {
	svc, _, _ := newTestService()
	req := nightRequest()
	req.SpecialRequests = "Late arrival"

	q, err := svc.Quote(req)
	require.NoError(t, err)
	msg := svc.ReservationMessage(req, "Standard Room", q.Breakdown)

	want := strings.Join([]string{
		"New Reservation Request",
		"",
		"Katwate's Resort",
		"----------------------------------",
		"Package Type     : Night Package",
		"Room / Package   : Standard Room",
		"Check-in Date    : 2026-11-02",
		"Check-out Date   : 2026-11-03",
		"Adults           : 5",
		"Children         : 0",
		"AC Option        : No",
		"Estimated Price  : ₹1900 (Inclusive of GST)",
		"Special Requests : Late arrival",
		"",
		"----------------------------------",
		"Thank you for the reservation request.",
		"Kindly confirm availability at your earliest convenience.",
	}, "\n")
	assert.Equal(t, want, msg)
}

func TestReservationMessageWithoutPrice(t *testing.T) {
	svc, _, _ := newTestService()
	msg := svc.ReservationMessage(models.ReservationRequest{
		PackageType: models.PackageDay,
		CheckInDate: "2026-10-20",
		AdultCount:  6,
	}, "Day Pass", models.PriceBreakdown{})

	assert.Contains(t, msg, "Date             : 2026-10-20\n")
	assert.Contains(t, msg, "Price            : To be confirmed\n")
	assert.NotContains(t, msg, "₹0")
	assert.NotContains(t, msg, "Special Requests")
}

func TestEventMessage(t *testing.T) {
	svc, _, _ := newTestService()
	msg := svc.EventMessage(models.EventEnquiry{
		EventType:   "wedding",
		CheckInDate: "2026-12-01",
		Adults:      120,
		Children:    15,
	})

	want := strings.Join([]string{
		"New Event Enquiry from Katwate's Resort Website:",
		"* Event Type: Wedding",
		"* Start Date: 2026-12-01",
		"* Adults: 120",
		"* Children: 15",
		"* Price: To be confirmed (inclusive of GST)",
		"Thank you for your enquiry. We will confirm availability and pricing shortly.",
	}, "\n")
	assert.Equal(t, want, msg)
}

func TestValidateEvent(t *testing.T) {
	svc, _, _ := newTestService()
	ok := models.EventEnquiry{EventType: "birthday", CheckInDate: "2026-12-01", CheckOutDate: "2026-12-01", Adults: 10}
	assert.NoError(t, svc.ValidateEvent(ok))

	bad := ok
	bad.CheckOutDate = "2026-11-30"
	assert.True(t, utils.IsValidationError(svc.ValidateEvent(bad)))

	bad = ok
	bad.EventType = " "
	assert.True(t, utils.IsValidationError(svc.ValidateEvent(bad)))

	bad = ok
	bad.CheckInDate = "2026-01-01"
	assert.True(t, utils.IsValidationError(svc.ValidateEvent(bad)))
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("+91 72167073", "Hi there! (2 adults) & 'AC'\n₹")
	assert.Equal(t, "https://wa.me/9172167073?text=Hi%20there!%20(2%20adults)%20%26%20'AC'%0A%E2%82%B9", link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Hi there! (2 adults) & 'AC'\n₹", u.Query().Get("text"))
}

func TestSubmitPublishesAndNotifies(t *testing.T) {
	svc, pub, notif := newTestService()

	res, err := svc.Submit(context.Background(), nightRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, res.EnquiryID)
	assert.True(t, strings.HasPrefix(res.WhatsAppURL, "https://wa.me/9172167073?text=New%20Reservation%20Request"))
	require.NotNil(t, res.Summary)

	require.Len(t, pub.events, 1)
	assert.Equal(t, events.RoutingReservation, pub.keys[0])
	assert.Equal(t, res.EnquiryID, pub.events[0].ID)
	assert.Equal(t, "2026-11-03", pub.events[0].CheckOut)
	assert.Equal(t, []string{"Standard Room"}, notif.reservations)
}

func TestSubmitSurvivesPublishFailure(t *testing.T) {
	svc, pub, _ := newTestService()
	pub.err = errors.New("broker down")

	res, err := svc.Submit(context.Background(), nightRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, res.WhatsAppURL)
}

func TestSubmitRejectsInvalidRequest(t *testing.T) {
	svc, pub, _ := newTestService()
	req := nightRequest()
	req.CheckInDate = ""

	_, err := svc.Submit(context.Background(), req)
	assert.True(t, utils.IsValidationError(err))
	assert.Empty(t, pub.events)
}

func TestSubmitEvent(t *testing.T) {
	svc, pub, notif := newTestService()

	res, err := svc.SubmitEvent(context.Background(), models.EventEnquiry{EventType: "corporate", CheckInDate: "2026-11-10", Adults: 40})
	require.NoError(t, err)
	assert.Nil(t, res.Summary)
	require.Len(t, pub.events, 1)
	assert.Equal(t, events.RoutingEvent, pub.keys[0])
	assert.Equal(t, "Corporate", pub.events[0].EventType)
	assert.Equal(t, 1, notif.enquiries)
}

func TestDefaults(t *testing.T) {
	svc, _, _ := newTestService()

	d, err := svc.Defaults("standard-room", "", false)
	require.NoError(t, err)
	assert.Equal(t, models.PackageNight, d.PackageType)
	assert.Equal(t, "standard", d.RoomType)
	assert.Equal(t, 5, d.AdultCount)
	assert.Equal(t, "2026-10-20", d.CheckInDate)
	assert.Equal(t, "2026-10-21", d.CheckOutDate)
	assert.Equal(t, "2026-10-19", d.MinDate)

	d, err = svc.Defaults("day-pass", models.PackageDay, true)
	require.NoError(t, err)
	assert.Equal(t, 6, d.AdultCount)
	assert.Empty(t, d.CheckOutDate)

	d, err = svc.Defaults("couple-package", models.PackageNight, true)
	require.NoError(t, err)
	assert.Equal(t, 2, d.AdultCount)

	_, err = svc.Defaults("penthouse", "", false)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = svc.Defaults("corporate-event", "", false)
	assert.True(t, utils.IsValidationError(err))
}
