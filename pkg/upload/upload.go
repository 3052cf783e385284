package upload

import (
	"context"
	"io"
	"time"

	verrors "github.com/vango-dev/vadmin/internal/errors"
)

// Sentinel errors shared by all stores. Compare with errors.Is.
var (
	// ErrNotFound means the staged file does not exist or was already claimed.
	ErrNotFound = verrors.New("E121")

	// ErrTooLarge means the file exceeds the store's size limit.
	ErrTooLarge = verrors.New("E120")
)

// Store is a staging backend for admin file fields. Files are held
// temporarily until the owning document is saved, then claimed exactly once.
type Store interface {
	// Save stages an uploaded file and returns its staging id.
	Save(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error)

	// Claim retrieves and consumes a staged file. A second claim of the
	// same id returns ErrNotFound.
	Claim(ctx context.Context, id string) (*File, error)

	// Cleanup removes staged files older than maxAge. Call it periodically.
	Cleanup(ctx context.Context, maxAge time.Duration) error
}

// File is a claimed upload.
type File struct {
	// ID is the staging id the file was claimed by.
	ID string

	// Filename is the client's original filename.
	Filename string

	// ContentType is the MIME type reported at upload time.
	ContentType string

	// Size is the stored size in bytes.
	Size int64

	// Path is the local filesystem path. Empty for remote stores.
	Path string

	// URL is a presigned access URL. Empty for local stores.
	URL string

	// Reader streams the contents. Closing it releases the staged file.
	Reader io.ReadCloser
}

// Close closes the file reader if open.
func (f *File) Close() error {
	if f.Reader != nil {
		return f.Reader.Close()
	}
	return nil
}

// Config holds upload handler settings.
type Config struct {
	// MaxFileSize is the per-file size limit in bytes. Default 10MB.
	MaxFileSize int64

	// StagingExpiry is how long unclaimed files live. Default 1 hour.
	StagingExpiry time.Duration
}

// DefaultConfig returns the default upload settings.
func DefaultConfig() Config {
	return Config{
		MaxFileSize:   10 << 20,
		StagingExpiry: time.Hour,
	}
}
