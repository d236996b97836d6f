package gallery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"katwate/database"
	galleryRepo "katwate/database/repository/gallery"
	"katwate/models"
	"katwate/services/storage"
	"katwate/utils"

	"go.uber.org/zap"
)

// Folder is where gallery uploads land on the media host.
const Folder = "gallery"

var ErrItemNotFound = errors.New("gallery item not found")

type GalleryService interface {
	List(ctx context.Context) ([]models.GalleryItem, error)
	Upload(ctx context.Context, file io.Reader, filename, caption, category string) (*models.GalleryItem, error)
	Delete(ctx context.Context, id string) error
}

type DefaultGalleryService struct {
	Repo    galleryRepo.GalleryRepository
	Storage storage.StorageService
	Now     func() time.Time
}

func NewGalleryService(repo galleryRepo.GalleryRepository, store storage.StorageService) *DefaultGalleryService {
	return &DefaultGalleryService{Repo: repo, Storage: store, Now: time.Now}
}

func (s *DefaultGalleryService) List(ctx context.Context) ([]models.GalleryItem, error) {
	items, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.GalleryItem{}
	}
	return items, nil
}

// Upload stores the image and records its metadata. The uploaded file is
// removed again when the metadata cannot be written.
func (s *DefaultGalleryService) Upload(ctx context.Context, file io.Reader, filename, caption, category string) (*models.GalleryItem, error) {
	if file == nil {
		return nil, utils.NewValidationError("Please choose an image to upload")
	}
	if s.Storage == nil {
		return nil, fmt.Errorf("gallery storage is not configured")
	}
	logger := utils.GetLogger().With(zap.String("filename", filename))

	up, err := s.Storage.UploadFile(ctx, file, filename, Folder)
	if err != nil {
		logger.Error("Gallery upload failed", zap.Error(err))
		return nil, err
	}

	item := &models.GalleryItem{
		PublicID:  up.PublicID,
		URL:       up.URL,
		Caption:   strings.TrimSpace(caption),
		Category:  strings.ToLower(strings.TrimSpace(category)),
		CreatedAt: s.Now().UTC(),
	}
	if _, err := s.Repo.Create(ctx, item); err != nil {
		if derr := s.Storage.DeleteFile(ctx, up.PublicID); derr != nil {
			logger.Warn("Failed to remove orphaned upload", zap.String("publicId", up.PublicID), zap.Error(derr))
		}
		return nil, err
	}
	logger.Info("Gallery item added", zap.String("id", item.ID))
	return item, nil
}

// Delete removes the stored file and then its metadata.
func (s *DefaultGalleryService) Delete(ctx context.Context, id string) error {
	item, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fmt.Errorf("delete %s: %w", id, ErrItemNotFound)
		}
		return err
	}
	if s.Storage != nil && item.PublicID != "" {
		if err := s.Storage.DeleteFile(ctx, item.PublicID); err != nil {
			return err
		}
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fmt.Errorf("delete %s: %w", id, ErrItemNotFound)
		}
		return err
	}
	return nil
}
