package handlers

import (
	"net/http"

	"katwate/services/gallery"
	"katwate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxImageSize caps gallery uploads.
const maxImageSize = 10 << 20

type GalleryHandler struct {
	GalleryService gallery.GalleryService
}

func (h *GalleryHandler) ListHandler(c *gin.Context) {
	items, err := h.GalleryService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// UploadHandler handles multipart POST /api/admin/gallery with an "image"
// file and optional "caption" and "category" fields.
func (h *GalleryHandler) UploadHandler(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please choose an image to upload", "")
		return
	}
	if fh.Size > maxImageSize {
		utils.JSONError(c, http.StatusRequestEntityTooLarge, "Image must be 10 MB or smaller", "")
		return
	}
	file, err := fh.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	item, err := h.GalleryService.Upload(c.Request.Context(), file, fh.Filename, c.PostForm("caption"), c.PostForm("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("Gallery image uploaded", zap.String("id", item.ID), zap.String("uid", c.GetString("uid")))
	c.JSON(http.StatusCreated, item)
}

func (h *GalleryHandler) DeleteHandler(c *gin.Context) {
	if err := h.GalleryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}
