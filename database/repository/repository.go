package repository

import (
	"fmt"

	galleryRepo "katwate/database/repository/gallery"
	guestRepo "katwate/database/repository/guest"
	profileRepo "katwate/database/repository/profile"

	"cloud.google.com/go/firestore"
	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the GuestRepository interface and constructors.
type GuestRepository = guestRepo.GuestRepository

var (
	NewFirestoreGuestRepo = guestRepo.NewFirestoreGuestRepo
	NewMongoGuestRepo     = guestRepo.NewMongoGuestRepo
)

// Re-export the ProfileRepository interface and constructors.
type ProfileRepository = profileRepo.ProfileRepository

var (
	NewFirestoreProfileRepo = profileRepo.NewFirestoreProfileRepo
	NewMongoProfileRepo     = profileRepo.NewMongoProfileRepo
)

// Re-export the GalleryRepository interface and constructors.
type GalleryRepository = galleryRepo.GalleryRepository

var (
	NewFirestoreGalleryRepo = galleryRepo.NewFirestoreGalleryRepo
	NewMongoGalleryRepo     = galleryRepo.NewMongoGalleryRepo
)

// Backends accepted by NewStores.
const (
	BackendFirestore = "firestore"
	BackendMongo     = "mongo"
)

// Stores groups the repositories of one document store backend.
type Stores struct {
	Guests   GuestRepository
	Profiles ProfileRepository
	Gallery  GalleryRepository
}

// NewStores builds the repositories for backend. Only the client of the
// chosen backend needs to be non-nil.
func NewStores(backend string, fs *firestore.Client, db *mongo.Database) (Stores, error) {
	switch backend {
	case BackendFirestore:
		if fs == nil {
			return Stores{}, fmt.Errorf("firestore backend selected but no client is open")
		}
		return Stores{
			Guests:   NewFirestoreGuestRepo(fs),
			Profiles: NewFirestoreProfileRepo(fs),
			Gallery:  NewFirestoreGalleryRepo(fs),
		}, nil
	case BackendMongo:
		if db == nil {
			return Stores{}, fmt.Errorf("mongo backend selected but no database is open")
		}
		return Stores{
			Guests:   NewMongoGuestRepo(db),
			Profiles: NewMongoProfileRepo(db),
			Gallery:  NewMongoGalleryRepo(db),
		}, nil
	}
	return Stores{}, fmt.Errorf("unknown store backend %q", backend)
}
