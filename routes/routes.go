package routes

import (
	"time"

	"katwate/handlers"
	"katwate/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterContentRoutes registers the static site content endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/content")
	{
		api.GET("/faq", hb.FAQHandler)
		api.GET("/reviews", hb.ReviewsHandler)
		api.GET("/location", hb.LocationHandler)
		api.GET("/attractions", hb.AttractionsHandler)
		api.GET("/contact", hb.ContactHandler)
		api.GET("/sections", hb.SectionsHandler)
	}
}

// RegisterCatalogRoutes registers tariff and room endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/tariffs", hb.TariffsHandler)
	r.GET("/api/rooms", hb.RoomsHandler)
	r.GET("/api/rooms/:id", hb.RoomHandler)
}

func RegisterGalleryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/gallery", hb.GalleryListHandler)
}

// RegisterBookingRoutes sets up the public booking form endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.GET("/room-types", hb.RoomTypesHandler)
		bookingGroup.GET("/defaults", hb.DefaultsHandler)
		bookingGroup.POST("/quote", hb.QuoteHandler)
		bookingGroup.POST("/reservation", hb.ReservationHandler)
		bookingGroup.POST("/event", hb.EventHandler)
	}
}

// RegisterAdminRoutes sets up the dashboard endpoints. Everything except
// sign-in and password reset needs a live admin session.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.AdminLoginHandler)
		adminGroup.POST("/password-reset", hb.AdminPasswordResetHandler)

		protected := adminGroup.Group("")
		protected.Use(middleware.AdminAuthMiddleware(hb.Sessions))
		protected.POST("/logout", hb.AdminLogoutHandler)
		protected.GET("/me", hb.AdminMeHandler)

		protected.GET("/guests", hb.ListGuestsHandler)
		protected.POST("/guests", hb.CreateGuestHandler)
		protected.GET("/guests/:id", hb.GetGuestHandler)
		protected.PUT("/guests/:id", hb.UpdateGuestHandler)
		protected.DELETE("/guests/:id", hb.DeleteGuestHandler)
		protected.POST("/guests/:id/reminder", hb.SendReminderHandler)

		protected.GET("/dashboard", hb.DashboardHandler)
		protected.GET("/calendar", hb.CalendarHandler)
		protected.GET("/bookings/monthly", hb.MonthlyBookingsHandler)

		protected.POST("/staff", hb.AddStaffHandler)
		protected.GET("/staff", hb.GetStaffHandler)

		protected.POST("/gallery", hb.GalleryUploadHandler)
		protected.DELETE("/gallery/:id", hb.GalleryDeleteHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, maxRequestsPerMin int) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.AccessLogMiddleware())
	r.Use(middleware.RateLimitMiddleware(maxRequestsPerMin))

	RegisterHealthRoute(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterGalleryRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
