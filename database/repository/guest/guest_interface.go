package guestRepo

import (
	"context"

	"katwate/models"
)

// GuestRepository defines methods for guest reservation data access.
type GuestRepository interface {
	// GetAll retrieves every guest in the collection.
	GetAll(ctx context.Context) ([]models.Guest, error)
	// GetByID retrieves a guest by its document ID.
	GetByID(ctx context.Context, id string) (*models.Guest, error)
	// Create adds a guest under a generated ID and returns that ID.
	Create(ctx context.Context, guest *models.Guest) (string, error)
	// Update overwrites the stored fields of an existing guest.
	Update(ctx context.Context, guest *models.Guest) error
	// Delete removes a guest by its document ID.
	Delete(ctx context.Context, id string) error
}
