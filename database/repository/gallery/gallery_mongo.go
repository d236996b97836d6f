package galleryRepo

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

type MongoGalleryRepo struct {
	coll *mongo.Collection
}

func NewMongoGalleryRepo(db *mongo.Database) GalleryRepository {
	return &MongoGalleryRepo{coll: db.Collection(collectionName)}
}

func (r *MongoGalleryRepo) GetAll(ctx context.Context) ([]models.GalleryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gallery: %w", err)
	}
	defer cursor.Close(ctx)

	items := []models.GalleryItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode gallery: %w", err)
	}
	return items, nil
}

func (r *MongoGalleryRepo) GetByID(ctx context.Context, id string) (*models.GalleryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var it models.GalleryItem
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&it)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("gallery item %s: %w", id, database.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gallery item %s: %w", id, err)
	}
	return &it, nil
}

func (r *MongoGalleryRepo) Create(ctx context.Context, item *models.GalleryItem) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	item.ID = uuid.NewString()
	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return "", fmt.Errorf("failed to create gallery item: %w", err)
	}
	return item.ID, nil
}

func (r *MongoGalleryRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete gallery item %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("gallery item %s: %w", id, database.ErrNotFound)
	}
	return nil
}
