package galleryRepo

import (
	"context"
	"fmt"
	"time"

	"katwate/database"
	"katwate/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collectionName = "gallery"

type FirestoreGalleryRepo struct {
	coll *firestore.CollectionRef
}

func NewFirestoreGalleryRepo(client *firestore.Client) GalleryRepository {
	return &FirestoreGalleryRepo{coll: client.Collection(collectionName)}
}

// GetAll returns the newest images first.
func (r *FirestoreGalleryRepo) GetAll(ctx context.Context) ([]models.GalleryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	snaps, err := r.coll.OrderBy("createdAt", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gallery: %w", err)
	}
	items := make([]models.GalleryItem, 0, len(snaps))
	for _, snap := range snaps {
		var it models.GalleryItem
		if err := snap.DataTo(&it); err != nil {
			return nil, fmt.Errorf("failed to decode gallery item %s: %w", snap.Ref.ID, err)
		}
		it.ID = snap.Ref.ID
		items = append(items, it)
	}
	return items, nil
}

func (r *FirestoreGalleryRepo) GetByID(ctx context.Context, id string) (*models.GalleryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	snap, err := r.coll.Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, fmt.Errorf("gallery item %s: %w", id, database.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gallery item %s: %w", id, err)
	}
	var it models.GalleryItem
	if err := snap.DataTo(&it); err != nil {
		return nil, fmt.Errorf("failed to decode gallery item %s: %w", id, err)
	}
	it.ID = snap.Ref.ID
	return &it, nil
}

func (r *FirestoreGalleryRepo) Create(ctx context.Context, item *models.GalleryItem) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ref, _, err := r.coll.Add(ctx, item)
	if err != nil {
		return "", fmt.Errorf("failed to create gallery item: %w", err)
	}
	item.ID = ref.ID
	return ref.ID, nil
}

func (r *FirestoreGalleryRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.Doc(id).Delete(ctx, firestore.Exists)
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("gallery item %s: %w", id, database.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to delete gallery item %s: %w", id, err)
	}
	return nil
}
