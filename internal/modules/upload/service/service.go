package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"brik.community/portal/pkg/apperror"
	"brik.community/portal/pkg/storage"
	"github.com/google/uuid"
)

const MaxImageSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type UploadService interface {
	UploadImage(ctx context.Context, userID uuid.UUID, file *multipart.FileHeader) (string, error)
}

type uploadService struct {
	fileStorage storage.ImageStorage
}

func NewUploadService(fileStorage storage.ImageStorage) UploadService {
	return &uploadService{fileStorage: fileStorage}
}

// UploadImage validates the file server-side and stores it. The content type
// is sniffed from the first bytes rather than trusted from the request header.
func (s *uploadService) UploadImage(ctx context.Context, userID uuid.UUID, file *multipart.FileHeader) (string, error) {
	if file.Size > MaxImageSize {
		return "", fmt.Errorf("%w: file exceeds the 5MB limit", apperror.ErrBadRequest)
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && n == 0 {
		return "", fmt.Errorf("%w: could not read file", apperror.ErrBadRequest)
	}
	contentType := http.DetectContentType(head[:n])
	if !allowedImageTypes[contentType] {
		return "", fmt.Errorf("%w: unsupported image type %s", apperror.ErrBadRequest, contentType)
	}

	if _, err := f.Seek(0, 0); err != nil {
		return "", err
	}

	url, err := s.fileStorage.UploadImage(ctx, f, "uploads", file.Filename)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return url, nil
}
