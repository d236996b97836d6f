package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"katwate/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CloudinaryStorage implements StorageService on Cloudinary.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStorage(cld *cloudinary.Cloudinary) StorageService {
	return &CloudinaryStorage{cld: cld}
}

// UploadFile uploads file into destFolder and returns its public id and
// secure URL.
func (s *CloudinaryStorage) UploadFile(ctx context.Context, file io.Reader, filename, destFolder string) (*Upload, error) {
	params := uploader.UploadParams{
		Folder:    destFolder,
		PublicID:  publicIDFor(filename),
		Overwrite: api.Bool(false),
	}
	result, err := s.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("failed to upload file: %s", result.Error.Message)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("no public ID returned")
	}
	utils.GetLogger().Debug("Uploaded media", zap.String("publicId", result.PublicID))
	return &Upload{PublicID: result.PublicID, URL: result.SecureURL}, nil
}

// DeleteFile deletes a file given its public ID.
func (s *CloudinaryStorage) DeleteFile(ctx context.Context, publicID string) error {
	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	if result.Error.Message != "" {
		return fmt.Errorf("failed to delete file: %s", result.Error.Message)
	}
	return nil
}

// publicIDFor keeps the upload name readable and suffixes a random id so two
// files with the same name never share an asset. Cloudinary adds the folder.
func publicIDFor(filename string) string {
	suffix := uuid.NewString()
	if base := slug(filename); base != "" {
		return base + "-" + suffix
	}
	return suffix
}

func slug(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.ToLower(strings.TrimSpace(base))
	if base == "" || base == "." {
		return ""
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '-'
		}
		return -1
	}, base)
}
