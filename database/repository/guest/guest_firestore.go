package guestRepo

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

const collectionName = "guests"

// FirestoreGuestRepo implements GuestRepository on a Firestore collection.
type FirestoreGuestRepo struct {
	coll *firestore.CollectionRef
}

func NewFirestoreGuestRepo(client *firestore.Client) GuestRepository {
	return &FirestoreGuestRepo{coll: client.Collection(collectionName)}
}

// newContext derives a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *FirestoreGuestRepo) GetAll(ctx context.Context) ([]models.Guest, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	snaps, err := r.coll.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guests: %w", err)
	}
	guests := make([]models.Guest, 0, len(snaps))
	for _, snap := range snaps {
		var g models.Guest
		if err := snap.DataTo(&g); err != nil {
			return nil, fmt.Errorf("failed to decode guest %s: %w", snap.Ref.ID, err)
		}
		g.ID = snap.Ref.ID
		guests = append(guests, g)
	}
	return guests, nil
}

func (r *FirestoreGuestRepo) GetByID(ctx context.Context, id string) (*models.Guest, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	snap, err := r.coll.Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, fmt.Errorf("guest %s: %w", id, database.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guest %s: %w", id, err)
	}
	var g models.Guest
	if err := snap.DataTo(&g); err != nil {
		return nil, fmt.Errorf("failed to decode guest %s: %w", id, err)
	}
	g.ID = snap.Ref.ID
	return &g, nil
}

func (r *FirestoreGuestRepo) Create(ctx context.Context, guest *models.Guest) (string, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	ref, _, err := r.coll.Add(ctx, guest)
	if err != nil {
		return "", fmt.Errorf("failed to create guest: %w", err)
	}
	guest.ID = ref.ID
	return ref.ID, nil
}

func (r *FirestoreGuestRepo) Update(ctx context.Context, guest *models.Guest) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.Doc(guest.ID).Update(ctx, []firestore.Update{
		{Path: "name", Value: guest.Name},
		{Path: "email", Value: guest.Email},
		{Path: "mobile", Value: guest.Mobile},
		{Path: "roomType", Value: guest.RoomType},
		{Path: "roomNumber", Value: guest.RoomNumber},
		{Path: "numberOfGuests", Value: guest.NumberOfGuests},
		{Path: "checkIn", Value: guest.CheckIn},
		{Path: "checkOut", Value: guest.CheckOut},
		{Path: "status", Value: guest.Status},
		{Path: "idType", Value: guest.IDType},
		{Path: "idNumber", Value: guest.IDNumber},
	})
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("guest %s: %w", guest.ID, database.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to update guest %s: %w", guest.ID, err)
	}
	return nil
}

func (r *FirestoreGuestRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.Doc(id).Delete(ctx, firestore.Exists)
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("guest %s: %w", id, database.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to delete guest %s: %w", id, err)
	}
	return nil
}
