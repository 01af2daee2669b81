package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/finmex/onboarding_backend/internal/apperrors"
)

// LocalStorage stores document blobs on the local filesystem under a base
// directory, addressed by generated UUID filenames. The returned storage URL
// is the base URL joined with the filename.
type LocalStorage struct {
	baseDir string
	baseURL string
}

// NewLocalStorage creates the base directory if needed and returns the store.
func NewLocalStorage(baseDir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", baseDir, err)
	}
	return &LocalStorage{baseDir: baseDir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

var _ FileStorage = (*LocalStorage)(nil)

func (s *LocalStorage) Save(ctx context.Context, contentType string, size int64, content io.Reader) (string, error) {
	ext, ok := allowedContentTypes[contentType]
	if !ok {
		return "", fmt.Errorf("%w: content type %s is not accepted", apperrors.ErrUnsupportedMedia, contentType)
	}
	if size > MaxDocumentSizeBytes {
		return "", fmt.Errorf("%w: document exceeds %d bytes", apperrors.ErrPayloadTooLarge, MaxDocumentSizeBytes)
	}

	filename := uuid.NewString() + ext
	path := filepath.Join(s.baseDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create document file: %w", err)
	}
	defer f.Close()

	// Declared sizes can lie; re-enforce the ceiling while copying.
	written, err := io.Copy(f, io.LimitReader(content, MaxDocumentSizeBytes+1))
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write document file: %w", err)
	}
	if written > MaxDocumentSizeBytes {
		os.Remove(path)
		return "", fmt.Errorf("%w: document exceeds %d bytes", apperrors.ErrPayloadTooLarge, MaxDocumentSizeBytes)
	}

	return s.baseURL + "/" + filename, nil
}

func (s *LocalStorage) Open(ctx context.Context, storageURL string) (io.ReadCloser, error) {
	filename := filepath.Base(storageURL)
	f, err := os.Open(filepath.Join(s.baseDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: stored document %s", apperrors.ErrNotFound, filename)
		}
		return nil, fmt.Errorf("failed to open stored document: %w", err)
	}
	return f, nil
}
