package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"career-guide/internal/infrastructure/storage"
)

type ObjectStorage interface {
	Put(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

type UploadUsecase interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

type Uploads struct {
	storage ObjectStorage
}

// NewUploadUsecase accepts a nil storage; uploads then report ErrUnavailable.
func NewUploadUsecase(s ObjectStorage) *Uploads {
	return &Uploads{storage: s}
}

func (u *Uploads) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if u.storage == nil {
		return "", ErrUnavailable
	}
	filename = filepath.Base(strings.TrimSpace(filename))
	if filename == "" || filename == "." || len(data) == 0 {
		return "", ErrInvalidInput
	}
	if len(data) > MaxDocumentSize {
		return "", ErrTooLarge
	}
	url, err := u.storage.Put(ctx, filename, contentType, data)
	if err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			return "", ErrUnavailable
		}
		return "", fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return url, nil
}
