package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"katwate/handlers"
	"katwate/models"
	"katwate/services/auth"
	"katwate/services/booking"
	"katwate/services/catalog"
	"katwate/services/content"
	"katwate/services/events"
	"katwate/services/guest"
	"katwate/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminToken = "token-admin"

type fakeAuth struct {
	loggedOut []string
	throttle  *auth.LoginThrottle
	keys      map[string]bool
}

func (f *fakeAuth) Login(ctx context.Context, email, password, clientKey string) (*models.AuthResponse, error) {
	key := auth.Key(email, clientKey)
	f.keys[key] = true
	if f.throttle != nil {
		if err := f.throttle.Allow(ctx, key); err != nil {
			return nil, err
		}
	}
	switch {
	case email == "desk@katwate.in":
		return nil, auth.ErrNotAdmin
	case password != "s3cret!":
		if f.throttle != nil {
			_ = f.throttle.RecordFailure(ctx, key)
		}
		return nil, fmt.Errorf("sign in: %w", auth.ErrInvalidCredentials)
	}
	return &models.AuthResponse{UID: "uid-owner", Token: adminToken, Email: email, Role: models.RoleAdmin}, nil
}

func (f *fakeAuth) Logout(_ context.Context, uid string) error {
	f.loggedOut = append(f.loggedOut, uid)
	return nil
}

func (f *fakeAuth) ResetPassword(_ context.Context, email string) error {
	if email == "" {
		return utils.NewValidationError("Please enter your email address")
	}
	return nil
}

func (f *fakeAuth) AdminData(_ context.Context, uid string) (*models.StaffProfile, error) {
	return &models.StaffProfile{UID: uid, Name: "Owner", Role: models.RoleAdmin}, nil
}

func (f *fakeAuth) ValidateSession(_ context.Context, token string) (*utils.AdminSession, error) {
	if token != adminToken {
		return nil, auth.ErrSessionInvalid
	}
	return &utils.AdminSession{UID: "uid-owner", Role: models.RoleAdmin}, nil
}

type fakeStaff struct{}

func (fakeStaff) AddStaff(_ context.Context, req models.NewStaffRequest) (*models.StaffProfile, error) {
	if req.Email == "taken@katwate.in" {
		return nil, auth.ErrEmailExists
	}
	return &models.StaffProfile{UID: "uid-new", Email: req.Email, Name: req.Name, Role: req.Role}, nil
}

func (fakeStaff) StaffByEmail(_ context.Context, email string) (*models.StaffProfile, error) {
	return nil, auth.ErrProfileNotFound
}

type fakeGuests struct {
	saved []models.Guest
}

func (f *fakeGuests) Save(_ context.Context, g *models.Guest) (string, error) {
	if g.Name == "" {
		return "", utils.NewValidationError("Name is required")
	}
	if g.ID == "" {
		g.ID = "g-new"
		f.saved = append(f.saved, *g)
		return "Guest added successfully", nil
	}
	return "", guest.ErrGuestNotFound
}

func (f *fakeGuests) List(_ context.Context, page, perPage int) (*models.GuestPage, error) {
	return &models.GuestPage{Guests: []models.Guest{}, Page: page, PerPage: perPage}, nil
}

func (f *fakeGuests) Get(context.Context, string) (*models.Guest, error) {
	return nil, guest.ErrGuestNotFound
}

func (f *fakeGuests) Delete(context.Context, string) error { return nil }

func (f *fakeGuests) SummaryMetrics(context.Context, string) (*models.SummaryMetrics, error) {
	return &models.SummaryMetrics{}, nil
}

func (f *fakeGuests) RoomAvailability(context.Context, string) (*models.RoomAvailability, error) {
	return &models.RoomAvailability{}, nil
}

func (f *fakeGuests) Dashboard(_ context.Context, date string) (*models.Dashboard, error) {
	return &models.Dashboard{Date: date}, nil
}

func (f *fakeGuests) MonthlyBookings(context.Context, int) ([]int, error) {
	return make([]int, 12), nil
}

func (f *fakeGuests) BookedDays(_ context.Context, _ int, month time.Month) ([]models.CalendarDay, error) {
	if month > time.December {
		return nil, utils.NewValidationError("Invalid month 13")
	}
	return []models.CalendarDay{{Day: 1, Date: "2026-10-01"}}, nil
}

func (f *fakeGuests) SendReminder(_ context.Context, id string) (*models.ReminderPayload, error) {
	if id == "checked-in" {
		return nil, guest.ErrNotConfirmed
	}
	return &models.ReminderPayload{GuestID: id, Name: "Asha"}, nil
}

type fakeGallery struct {
	uploaded []string
}

func (f *fakeGallery) List(context.Context) ([]models.GalleryItem, error) {
	return []models.GalleryItem{{ID: "g1", URL: "https://cdn.test/g1.jpg"}}, nil
}

func (f *fakeGallery) Upload(_ context.Context, file io.Reader, filename, caption, _ string) (*models.GalleryItem, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	f.uploaded = append(f.uploaded, filename+":"+string(data))
	return &models.GalleryItem{ID: "g2", Caption: caption}, nil
}

func (f *fakeGallery) Delete(context.Context, string) error { return nil }

type testServer struct {
	engine  *gin.Engine
	auth    *fakeAuth
	guests  *fakeGuests
	gallery *fakeGallery
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.NewCatalogService()
	bookingSvc := booking.NewBookingService(cat, events.NoopPublisher{}, nil, "Katwate's Resort", "9172167073", "UTC")
	bookingSvc.Now = func() time.Time { return time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC) }

	ts := &testServer{auth: &fakeAuth{keys: map[string]bool{}}, guests: &fakeGuests{}, gallery: &fakeGallery{}}
	hb := handlers.NewHandlerBundle(
		ts.auth,
		&handlers.ContentHandler{ContentService: content.NewContentService()},
		&handlers.CatalogHandler{CatalogService: cat},
		&handlers.BookingHandler{BookingService: bookingSvc, CatalogService: cat},
		&handlers.GalleryHandler{GalleryService: ts.gallery},
		&handlers.AdminHandler{AuthService: ts.auth, StaffService: fakeStaff{}},
		&handlers.GuestHandler{GuestService: ts.guests},
	)

	ts.engine = gin.New()
	require.NoError(t, ts.engine.SetTrustedProxies(nil))
	RegisterRoutes(ts.engine, hb, 1000)
	return ts
}

func (ts *testServer) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestPublicContentRoutes(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/api/content/faq", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var faqs []models.FAQ
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &faqs))
	assert.Len(t, faqs, 7)

	w = ts.do(http.MethodGet, "/api/content/reviews?highlighted=true", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var reviews []models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	assert.Len(t, reviews, 3)

	assert.NotEmpty(t, ts.do(http.MethodGet, "/health", nil, "").Header().Get(utils.RequestIDHeader))
}

func TestTariffRoutes(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/api/tariffs?view=night&ac=true", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "night", body["view"])
	assert.Equal(t, true, body["acOption"])
	assert.NotEmpty(t, body["rooms"])

	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/tariffs?view=weekly", nil, "").Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/rooms/couple-package", nil, "").Code)
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/rooms/penthouse", nil, "").Code)
}

func TestBookingRoutes(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/api/booking/room-types?package=night", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var types []models.RoomType
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &types))
	assert.NotEmpty(t, types)

	w = ts.do(http.MethodGet, "/api/booking/defaults?roomId=standard-room&package=night", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2026-10-20", decode(t, w)["checkInDate"])
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/booking/defaults?roomId=penthouse", nil, "").Code)

	req := models.ReservationRequest{
		PackageType:  models.PackageNight,
		RoomType:     "standard",
		CheckInDate:  "2026-11-02",
		CheckOutDate: "2026-11-03",
		AdultCount:   2,
	}
	w = ts.do(http.MethodPost, "/api/booking/reservation", req, "")
	require.Equal(t, http.StatusOK, w.Code)
	res := decode(t, w)
	assert.True(t, strings.HasPrefix(res["whatsappUrl"].(string), "https://wa.me/9172167073?text="))

	req.CheckInDate = "2026-10-01"
	w = ts.do(http.MethodPost, "/api/booking/reservation", req, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Check-in date cannot be in the past", decode(t, w)["message"])

	w = ts.do(http.MethodPost, "/api/booking/event", models.EventEnquiry{EventType: "wedding", CheckInDate: "2026-12-12", Adults: 80}, "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAdminLoginErrors(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/admin/login", gin.H{"email": "owner@katwate.in", "password": "nope"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decode(t, w)["message"])

	w = ts.do(http.MethodPost, "/api/admin/login", gin.H{"email": "desk@katwate.in", "password": "x"}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Access denied: Not an admin", decode(t, w)["message"])

	w = ts.do(http.MethodPost, "/api/admin/login", gin.H{"email": "owner@katwate.in", "password": "s3cret!"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, adminToken, decode(t, w)["token"])

	w = ts.do(http.MethodPost, "/api/admin/password-reset", gin.H{"email": ""}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminLoginLockoutIgnoresForgedForwardedFor(t *testing.T) {
	ts := newTestServer(t)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	ts.auth.throttle = auth.NewLoginThrottle(client, 5, 5*time.Minute)

	login := func(forged, password string) int {
		b, _ := json.Marshal(gin.H{"email": "owner@katwate.in", "password": password})
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "203.0.113.7:5555"
		req.Header.Set("X-Forwarded-For", forged)
		req.Header.Set("X-Real-IP", forged)
		w := httptest.NewRecorder()
		ts.engine.ServeHTTP(w, req)
		return w.Code
	}

	for i := 1; i <= 5; i++ {
		assert.Equal(t, http.StatusUnauthorized, login(fmt.Sprintf("198.51.100.%d", i), "wrong"))
		mr.FastForward(2 * time.Second)
	}
	assert.Equal(t, http.StatusTooManyRequests, login("198.51.100.99", "s3cret!"))
	assert.Equal(t, map[string]bool{auth.Key("owner@katwate.in", "203.0.113.7"): true}, ts.auth.keys)
}

func TestAdminRoutesNeedSession(t *testing.T) {
	ts := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodGet, "/api/admin/guests", nil, "").Code)
	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodGet, "/api/admin/guests", nil, "stale").Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/admin/guests?page=2", nil, adminToken).Code)

	w := ts.do(http.MethodPost, "/api/admin/logout", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"uid-owner"}, ts.auth.loggedOut)
}

func TestAdminGuestRoutes(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/admin/guests", models.Guest{ID: "ignored", Name: "Asha"}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, ts.guests.saved, 1)
	assert.Equal(t, "g-new", ts.guests.saved[0].ID)

	w = ts.do(http.MethodPost, "/api/admin/guests", models.Guest{}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name is required", decode(t, w)["message"])

	w = ts.do(http.MethodPut, "/api/admin/guests/missing", models.Guest{Name: "X"}, adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(http.MethodPost, "/api/admin/guests/checked-in/reminder", nil, adminToken)
	assert.Equal(t, http.StatusConflict, w.Code)
	w = ts.do(http.MethodPost, "/api/admin/guests/g1/reminder", nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Reminder sent to Asha", decode(t, w)["message"])

	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/admin/calendar?year=2026&month=10", nil, adminToken).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/admin/calendar?year=2026&month=13", nil, adminToken).Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/admin/bookings/monthly?year=2026", nil, adminToken).Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/admin/dashboard?date=2026-10-19", nil, adminToken).Code)
}

func TestAdminStaffRoutes(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/admin/staff", models.NewStaffRequest{Email: "new@katwate.in", Name: "New", Role: "manager"}, adminToken)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = ts.do(http.MethodPost, "/api/admin/staff", models.NewStaffRequest{Email: "taken@katwate.in"}, adminToken)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = ts.do(http.MethodGet, "/api/admin/staff?email=who@katwate.in", nil, adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User profile not found", decode(t, w)["message"])
}

func TestGalleryRoutes(t *testing.T) {
	ts := newTestServer(t)

	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/gallery", nil, "").Code)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "pool.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("caption", "Pool"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/gallery", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []string{"pool.jpg:jpeg-bytes"}, ts.gallery.uploaded)

	w = ts.do(http.MethodPost, "/api/admin/gallery", nil, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, http.StatusOK, ts.do(http.MethodDelete, "/api/admin/gallery/g1", nil, adminToken).Code)
}
