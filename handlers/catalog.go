package handlers

import (
	"net/http"

	"katwate/models"
	"katwate/services/catalog"
	"katwate/utils"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	CatalogService catalog.CatalogService
}

// TariffsHandler handles GET /api/tariffs?view=day|night&ac=true.
func (h *CatalogHandler) TariffsHandler(c *gin.Context) {
	view := queryPackage(c, "view", models.PackageDay)
	if !view.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "view must be day or night", "")
		return
	}
	ac := queryBool(c, "ac")
	c.JSON(http.StatusOK, gin.H{
		"view":          view,
		"acOption":      ac,
		"rooms":         h.CatalogService.Tariffs(view, ac),
		"specialEvents": h.CatalogService.SpecialEvents(),
	})
}

func (h *CatalogHandler) RoomsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.CatalogService.Rooms())
}

func (h *CatalogHandler) RoomHandler(c *gin.Context) {
	room, ok := h.CatalogService.RoomByID(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Room not found", "")
		return
	}
	c.JSON(http.StatusOK, room)
}
