package profileRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"katwate/database"
	"katwate/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collectionName = "users"

// FirestoreProfileRepo implements ProfileRepository on the users collection.
type FirestoreProfileRepo struct {
	coll *firestore.CollectionRef
}

func NewFirestoreProfileRepo(client *firestore.Client) ProfileRepository {
	return &FirestoreProfileRepo{coll: client.Collection(collectionName)}
}

func (r *FirestoreProfileRepo) GetByUID(ctx context.Context, uid string) (*models.StaffProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	snap, err := r.coll.Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, fmt.Errorf("profile %s: %w", uid, database.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile %s: %w", uid, err)
	}
	return decode(snap)
}

func (r *FirestoreProfileRepo) GetByEmail(ctx context.Context, email string) (*models.StaffProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	iter := r.coll.Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, fmt.Errorf("profile %s: %w", email, database.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query profile %s: %w", email, err)
	}
	return decode(snap)
}

func (r *FirestoreProfileRepo) Save(ctx context.Context, profile *models.StaffProfile) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.Doc(profile.UID).Set(ctx, profile); err != nil {
		return fmt.Errorf("failed to save profile %s: %w", profile.UID, err)
	}
	return nil
}

func decode(snap *firestore.DocumentSnapshot) (*models.StaffProfile, error) {
	var p models.StaffProfile
	if err := snap.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", snap.Ref.ID, err)
	}
	p.UID = snap.Ref.ID
	return &p, nil
}
