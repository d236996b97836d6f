package handlers

import (
	"net/http"

	"katwate/models"
	"katwate/services/auth"
	"katwate/services/staff"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves admin sign-in and staff management.
type AdminHandler struct {
	AuthService  auth.AuthService
	StaffService staff.StaffService
}

func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.AuthService.Login(c.Request.Context(), req.Email, req.Password, c.ClientIP())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) PasswordResetHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.AuthService.ResetPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent. Please check your inbox."})
}

func (h *AdminHandler) LogoutHandler(c *gin.Context) {
	uid := c.GetString("uid")
	if err := h.AuthService.Logout(c.Request.Context(), uid); err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("Admin signed out", zap.String("uid", uid))
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// MeHandler returns the signed-in admin's profile.
func (h *AdminHandler) MeHandler(c *gin.Context) {
	profile, err := h.AuthService.AdminData(c.Request.Context(), c.GetString("uid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *AdminHandler) AddStaffHandler(c *gin.Context) {
	var req models.NewStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	profile, err := h.StaffService.AddStaff(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Staff member added. A password reset link has been sent to " + profile.Email,
		"staff":   profile,
	})
}

// GetStaffHandler handles GET /api/admin/staff?email=.
func (h *AdminHandler) GetStaffHandler(c *gin.Context) {
	profile, err := h.StaffService.StaffByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
