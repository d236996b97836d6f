package profileRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"katwate/database"
	"katwate/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

func NewMongoProfileRepo(db *mongo.Database) ProfileRepository {
	repo := &MongoProfileRepo{coll: db.Collection(collectionName)}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		fmt.Printf("failed to create profile indexes: %v\n", err)
	}
	return repo
}

func (r *MongoProfileRepo) findOne(ctx context.Context, filter bson.M, key string) (*models.StaffProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.StaffProfile
	err := r.coll.FindOne(ctx, filter).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("profile %s: %w", key, database.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile %s: %w", key, err)
	}
	return &p, nil
}

func (r *MongoProfileRepo) GetByUID(ctx context.Context, uid string) (*models.StaffProfile, error) {
	return r.findOne(ctx, bson.M{"_id": uid}, uid)
}

func (r *MongoProfileRepo) GetByEmail(ctx context.Context, email string) (*models.StaffProfile, error) {
	return r.findOne(ctx, bson.M{"email": email}, email)
}

func (r *MongoProfileRepo) Save(ctx context.Context, profile *models.StaffProfile) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": profile.UID}, profile, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save profile %s: %w", profile.UID, err)
	}
	return nil
}
