package galleryRepo

import (
	"context"

	"katwate/models"
)

// GalleryRepository stores gallery image metadata.
type GalleryRepository interface {
	GetAll(ctx context.Context) ([]models.GalleryItem, error)
	GetByID(ctx context.Context, id string) (*models.GalleryItem, error)
	Create(ctx context.Context, item *models.GalleryItem) (string, error)
	Delete(ctx context.Context, id string) error
}
