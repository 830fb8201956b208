package storage

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService stores proof-of-delivery artifacts (photos and signature
// images) and returns their permanent URLs.
type StorageService interface {
	UploadFile(ctx context.Context, file io.Reader, destFolder string) (string, error)
	UploadDataURI(ctx context.Context, dataURI, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
}

// StorageServiceImpl is the Cloudinary-backed StorageService.
type StorageServiceImpl struct {
	cld *cloudinary.Cloudinary
}
