package guestRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"katwate/database"
	"katwate/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoGuestRepo implements GuestRepository using MongoDB.
type MongoGuestRepo struct {
	coll *mongo.Collection
}

// NewMongoGuestRepo creates a new instance of GuestRepository using MongoDB.
func NewMongoGuestRepo(db *mongo.Database) GuestRepository {
	repo := &MongoGuestRepo{coll: db.Collection(collectionName)}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create guest indexes: %v\n", err)
	}
	return repo
}

// ensureIndexes creates indexes for the dashboard date lookups.
func (r *MongoGuestRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "checkIn", Value: 1}}},
		{Keys: bson.D{{Key: "checkOut", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoGuestRepo) GetAll(ctx context.Context) ([]models.Guest, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "checkIn", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guests: %w", err)
	}
	defer cursor.Close(ctx)

	guests := []models.Guest{}
	if err := cursor.All(ctx, &guests); err != nil {
		return nil, fmt.Errorf("failed to decode guests: %w", err)
	}
	return guests, nil
}

func (r *MongoGuestRepo) GetByID(ctx context.Context, id string) (*models.Guest, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var g models.Guest
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("guest %s: %w", id, database.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guest %s: %w", id, err)
	}
	return &g, nil
}

func (r *MongoGuestRepo) Create(ctx context.Context, guest *models.Guest) (string, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	guest.ID = uuid.NewString()
	if _, err := r.coll.InsertOne(ctx, guest); err != nil {
		return "", fmt.Errorf("failed to create guest: %w", err)
	}
	return guest.ID, nil
}

func (r *MongoGuestRepo) Update(ctx context.Context, guest *models.Guest) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	existing, err := r.GetByID(ctx, guest.ID)
	if err != nil {
		return err
	}
	// avatar colour is assigned once on creation
	guest.AvatarColor = existing.AvatarColor

	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": guest.ID}, guest)
	if err != nil {
		return fmt.Errorf("failed to update guest %s: %w", guest.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("guest %s: %w", guest.ID, database.ErrNotFound)
	}
	return nil
}

func (r *MongoGuestRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete guest %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("guest %s: %w", id, database.ErrNotFound)
	}
	return nil
}
