package handlers

import (
	"katwate/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Sessions middleware.SessionValidator

	HealthHandler gin.HandlerFunc

	// Content endpoints
	FAQHandler         gin.HandlerFunc
	ReviewsHandler     gin.HandlerFunc
	LocationHandler    gin.HandlerFunc
	AttractionsHandler gin.HandlerFunc
	ContactHandler     gin.HandlerFunc
	SectionsHandler    gin.HandlerFunc

	// Catalog endpoints
	TariffsHandler gin.HandlerFunc
	RoomsHandler   gin.HandlerFunc
	RoomHandler    gin.HandlerFunc

	// Booking endpoints
	RoomTypesHandler   gin.HandlerFunc
	DefaultsHandler    gin.HandlerFunc
	QuoteHandler       gin.HandlerFunc
	ReservationHandler gin.HandlerFunc
	EventHandler       gin.HandlerFunc

	// Gallery endpoints
	GalleryListHandler   gin.HandlerFunc
	GalleryUploadHandler gin.HandlerFunc
	GalleryDeleteHandler gin.HandlerFunc

	// Admin endpoints
	AdminLoginHandler         gin.HandlerFunc
	AdminPasswordResetHandler gin.HandlerFunc
	AdminLogoutHandler        gin.HandlerFunc
	AdminMeHandler            gin.HandlerFunc
	AddStaffHandler           gin.HandlerFunc
	GetStaffHandler           gin.HandlerFunc

	// Guest endpoints
	ListGuestsHandler      gin.HandlerFunc
	GetGuestHandler        gin.HandlerFunc
	CreateGuestHandler     gin.HandlerFunc
	UpdateGuestHandler     gin.HandlerFunc
	DeleteGuestHandler     gin.HandlerFunc
	SendReminderHandler    gin.HandlerFunc
	DashboardHandler       gin.HandlerFunc
	CalendarHandler        gin.HandlerFunc
	MonthlyBookingsHandler gin.HandlerFunc
}

// NewHandlerBundle wires the handler structs into a bundle.
func NewHandlerBundle(
	sessions middleware.SessionValidator,
	contentH *ContentHandler,
	catalogH *CatalogHandler,
	bookingH *BookingHandler,
	galleryH *GalleryHandler,
	adminH *AdminHandler,
	guestH *GuestHandler,
) *HandlerBundle {
	return &HandlerBundle{
		Sessions:      sessions,
		HealthHandler: HealthHandler,

		FAQHandler:         contentH.FAQHandler,
		ReviewsHandler:     contentH.ReviewsHandler,
		LocationHandler:    contentH.LocationHandler,
		AttractionsHandler: contentH.AttractionsHandler,
		ContactHandler:     contentH.ContactHandler,
		SectionsHandler:    contentH.SectionsHandler,

		TariffsHandler: catalogH.TariffsHandler,
		RoomsHandler:   catalogH.RoomsHandler,
		RoomHandler:    catalogH.RoomHandler,

		RoomTypesHandler:   bookingH.RoomTypesHandler,
		DefaultsHandler:    bookingH.DefaultsHandler,
		QuoteHandler:       bookingH.QuoteHandler,
		ReservationHandler: bookingH.ReservationHandler,
		EventHandler:       bookingH.EventHandler,

		GalleryListHandler:   galleryH.ListHandler,
		GalleryUploadHandler: galleryH.UploadHandler,
		GalleryDeleteHandler: galleryH.DeleteHandler,

		AdminLoginHandler:         adminH.LoginHandler,
		AdminPasswordResetHandler: adminH.PasswordResetHandler,
		AdminLogoutHandler:        adminH.LogoutHandler,
		AdminMeHandler:            adminH.MeHandler,
		AddStaffHandler:           adminH.AddStaffHandler,
		GetStaffHandler:           adminH.GetStaffHandler,

		ListGuestsHandler:      guestH.ListGuestsHandler,
		GetGuestHandler:        guestH.GetGuestHandler,
		CreateGuestHandler:     guestH.CreateGuestHandler,
		UpdateGuestHandler:     guestH.UpdateGuestHandler,
		DeleteGuestHandler:     guestH.DeleteGuestHandler,
		SendReminderHandler:    guestH.SendReminderHandler,
		DashboardHandler:       guestH.DashboardHandler,
		CalendarHandler:        guestH.CalendarHandler,
		MonthlyBookingsHandler: guestH.MonthlyBookingsHandler,
	}
}
