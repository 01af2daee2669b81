package storage

import (
	"context"
	"io"
)

// MaxDocumentSizeBytes is the upload ceiling for a single document blob.
const MaxDocumentSizeBytes = 5 << 20

// allowedContentTypes are the accepted document formats.
var allowedContentTypes = map[string]string{
	"application/pdf": ".pdf",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
}

// FileStorage persists document blobs and returns a durable locator for
// each. Implementations enforce the size and content-type limits so no
// unvalidated blob ever reaches disk.
type FileStorage interface {
	// Save writes the blob and returns its storage URL. Returns
	// ErrPayloadTooLarge when the content exceeds MaxDocumentSizeBytes and
	// ErrUnsupportedMedia for content types outside the allowed set.
	Save(ctx context.Context, contentType string, size int64, content io.Reader) (string, error)

	// Open retrieves a previously stored blob by its storage URL.
	Open(ctx context.Context, storageURL string) (io.ReadCloser, error)
}
