package handlers

import (
	"net/http"
	"time"

	"katwate/models"
	"katwate/services/guest"

	"github.com/gin-gonic/gin"
)

// GuestHandler serves the reservation table and dashboard figures.
type GuestHandler struct {
	GuestService guest.GuestService
	Now          func() time.Time
}

func (h *GuestHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// ListGuestsHandler handles GET /api/admin/guests?page=&perPage=.
func (h *GuestHandler) ListGuestsHandler(c *gin.Context) {
	page, err := h.GuestService.List(c.Request.Context(), queryInt(c, "page", 1), queryInt(c, "perPage", guest.DefaultPerPage))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *GuestHandler) GetGuestHandler(c *gin.Context) {
	g, err := h.GuestService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

func (h *GuestHandler) CreateGuestHandler(c *gin.Context) {
	var g models.Guest
	if err := c.ShouldBindJSON(&g); err != nil {
		badRequest(c, err)
		return
	}
	g.ID = ""
	msg, err := h.GuestService.Save(c.Request.Context(), &g)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg, "guest": g})
}

func (h *GuestHandler) UpdateGuestHandler(c *gin.Context) {
	var g models.Guest
	if err := c.ShouldBindJSON(&g); err != nil {
		badRequest(c, err)
		return
	}
	g.ID = c.Param("id")
	msg, err := h.GuestService.Save(c.Request.Context(), &g)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "guest": g})
}

func (h *GuestHandler) DeleteGuestHandler(c *gin.Context) {
	if err := h.GuestService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Guest deleted successfully"})
}

func (h *GuestHandler) SendReminderHandler(c *gin.Context) {
	p, err := h.GuestService.SendReminder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder sent to " + p.Name, "reminder": p})
}

// DashboardHandler handles GET /api/admin/dashboard?date=YYYY-MM-DD.
func (h *GuestHandler) DashboardHandler(c *gin.Context) {
	d, err := h.GuestService.Dashboard(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// CalendarHandler handles GET /api/admin/calendar?year=&month=. Both default
// to the current month.
func (h *GuestHandler) CalendarHandler(c *gin.Context) {
	now := h.now()
	year := queryInt(c, "year", now.Year())
	month := time.Month(queryInt(c, "month", int(now.Month())))
	days, err := h.GuestService.BookedDays(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "month": int(month), "days": days})
}

func (h *GuestHandler) MonthlyBookingsHandler(c *gin.Context) {
	year := queryInt(c, "year", h.now().Year())
	months, err := h.GuestService.MonthlyBookings(c.Request.Context(), year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "bookings": months})
}
