package handlers

import (
	"net/http"

	"katwate/models"
	"katwate/services/booking"
	"katwate/services/catalog"
	"katwate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	BookingService booking.BookingService
	CatalogService catalog.CatalogService
}

// RoomTypesHandler handles GET /api/booking/room-types?package=day|night.
// Without a package every room type is listed.
func (h *BookingHandler) RoomTypesHandler(c *gin.Context) {
	pkg := queryPackage(c, "package", "")
	if pkg == "" {
		c.JSON(http.StatusOK, h.CatalogService.RoomTypes())
		return
	}
	if !pkg.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "package must be day or night", "")
		return
	}
	c.JSON(http.StatusOK, h.CatalogService.RoomTypesFor(pkg))
}

// DefaultsHandler handles GET /api/booking/defaults?roomId=&package=&ac=.
func (h *BookingHandler) DefaultsHandler(c *gin.Context) {
	roomID := c.Query("roomId")
	if roomID == "" {
		utils.JSONError(c, http.StatusBadRequest, "roomId is required", "")
		return
	}
	d, err := h.BookingService.Defaults(roomID, queryPackage(c, "package", ""), queryBool(c, "ac"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *BookingHandler) QuoteHandler(c *gin.Context) {
	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	q, err := h.BookingService.Quote(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// ReservationHandler handles POST /api/booking/reservation and answers with
// the WhatsApp link the guest is sent to.
func (h *BookingHandler) ReservationHandler(c *gin.Context) {
	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.BookingService.Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("Reservation request prepared",
		zap.String("enquiryId", res.EnquiryID),
		zap.String("roomType", req.RoomType))
	c.JSON(http.StatusOK, res)
}

func (h *BookingHandler) EventHandler(c *gin.Context) {
	var req models.EventEnquiry
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.BookingService.SubmitEvent(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("Event enquiry prepared", zap.String("enquiryId", res.EnquiryID))
	c.JSON(http.StatusOK, res)
}
