package storage

import (
	"context"
	"io"
)

// Upload is what the media host hands back for a stored file.
type Upload struct {
	PublicID string
	URL      string
}

// StorageService stores public media files.
type StorageService interface {
	UploadFile(ctx context.Context, file io.Reader, filename, destFolder string) (*Upload, error)
	DeleteFile(ctx context.Context, publicID string) error
}
