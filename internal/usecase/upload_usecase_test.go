package usecase

import (
	"context"
	"errors"
	"testing"

	"career-guide/internal/infrastructure/storage"
)

func TestUpload(t *testing.T) {
	if _, err := NewUploadUsecase(nil).Upload(context.Background(), "a.pdf", "application/pdf", []byte("x")); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	s := &fakeStorage{url: "https://cdn.example.com/uploads/a.pdf"}
	uc := NewUploadUsecase(s)

	if _, err := uc.Upload(context.Background(), "", "text/plain", []byte("x")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.Upload(context.Background(), "a.txt", "text/plain", make([]byte, MaxDocumentSize+1)); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}

	url, err := uc.Upload(context.Background(), "../../a.pdf", "application/pdf", []byte("%PDF"))
	if err != nil || url != s.url {
		t.Fatalf("unexpected upload result %q err=%v", url, err)
	}

	s.err = storage.ErrNotConfigured
	if _, err := uc.Upload(context.Background(), "a.pdf", "application/pdf", []byte("x")); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
