package handlers

import (
	"errors"
	"net/http"

	"katwate/services/auth"
	"katwate/services/booking"
	"katwate/services/gallery"
	"katwate/services/guest"
	"katwate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{auth.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{auth.ErrProfileNotFound, http.StatusNotFound, "User profile not found"},
	{auth.ErrNotAdmin, http.StatusForbidden, "Access denied: Not an admin"},
	{auth.ErrTooManyAttempts, http.StatusTooManyRequests, "Too many login attempts. Please try again later."},
	{auth.ErrLoginInProgress, http.StatusTooManyRequests, "Login already in progress. Please wait."},
	{auth.ErrSessionInvalid, http.StatusUnauthorized, "Session expired, please sign in again"},
	{auth.ErrEmailExists, http.StatusConflict, "A user with this email already exists"},
	{guest.ErrGuestNotFound, http.StatusNotFound, "Guest not found"},
	{guest.ErrNotConfirmed, http.StatusConflict, "Reminders can only be sent to confirmed guests"},
	{booking.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{gallery.ErrItemNotFound, http.StatusNotFound, "Image not found"},
}

// respondError writes err as a JSON error with the matching status. Unknown
// errors are logged and hidden behind a generic message.
func respondError(c *gin.Context, err error) {
	var ve *utils.ValidationError
	if errors.As(err, &ve) {
		utils.JSONError(c, http.StatusBadRequest, ve.Message, "")
		return
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			utils.JSONError(c, m.status, m.message, "")
			return
		}
	}
	getLogger(c).Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Message: "Something went wrong. Please try again."})
}

func badRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
}
