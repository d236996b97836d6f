package handlers

import (
	"net/http"

	"katwate/services/content"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	ContentService content.ContentService
}

func (h *ContentHandler) FAQHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.ContentService.FAQs())
}

// ReviewsHandler handles GET /api/content/reviews. ?highlighted=true limits
// the list to the reviews featured on the landing page.
func (h *ContentHandler) ReviewsHandler(c *gin.Context) {
	if queryBool(c, "highlighted") {
		c.JSON(http.StatusOK, h.ContentService.HighlightedReviews())
		return
	}
	c.JSON(http.StatusOK, h.ContentService.Reviews())
}

func (h *ContentHandler) LocationHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.ContentService.Location())
}

func (h *ContentHandler) AttractionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.ContentService.Attractions())
}

func (h *ContentHandler) ContactHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.ContentService.Contact())
}

func (h *ContentHandler) SectionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.ContentService.Sections())
}
