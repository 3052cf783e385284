package upload

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DiskStore stages uploads on the local filesystem. Metadata is kept in
// memory and mirrored to a sidecar file so staged uploads survive restarts.
type DiskStore struct {
	dir     string
	maxSize int64

	mu    sync.Mutex
	metas map[string]*diskMeta
}

type diskMeta struct {
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewDiskStore creates a disk store rooted at dir. maxSize of 0 means no
// per-file limit.
func NewDiskStore(dir string, maxSize int64) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{
		dir:     dir,
		maxSize: maxSize,
		metas:   make(map[string]*diskMeta),
	}, nil
}

// Save stages the file and returns its staging id.
func (s *DiskStore) Save(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	if s.maxSize > 0 && size > s.maxSize {
		return "", ErrTooLarge
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := newStagingID()
	path := filepath.Join(s.dir, id)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	reader := r
	if s.maxSize > 0 {
		// One extra byte so an at-limit stream is distinguishable from an
		// over-limit one.
		reader = io.LimitReader(r, s.maxSize+1)
	}

	written, err := io.Copy(f, reader)
	if err != nil {
		os.Remove(path)
		return "", err
	}
	if s.maxSize > 0 && written > s.maxSize {
		os.Remove(path)
		return "", ErrTooLarge
	}

	meta := &diskMeta{
		Filename:    filename,
		ContentType: contentType,
		Size:        written,
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	s.metas[id] = meta
	s.mu.Unlock()

	if err := s.writeMeta(id, meta); err != nil {
		os.Remove(path)
		s.mu.Lock()
		delete(s.metas, id)
		s.mu.Unlock()
		return "", err
	}

	return id, nil
}

// Claim consumes a staged file. The returned reader deletes the staged
// data when closed.
func (s *DiskStore) Claim(ctx context.Context, id string) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	meta, ok := s.metas[id]
	if ok {
		delete(s.metas, id)
	}
	s.mu.Unlock()

	if !ok {
		// The process may have restarted since the upload.
		var err error
		meta, err = s.readMeta(id)
		if err != nil {
			return nil, ErrNotFound
		}
	}

	path := filepath.Join(s.dir, id)
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrNotFound
	}

	return &File{
		ID:          id,
		Filename:    meta.Filename,
		ContentType: meta.ContentType,
		Size:        meta.Size,
		Path:        path,
		Reader:      &claimedReader{File: f, paths: []string{path, s.metaPath(id)}},
	}, nil
}

// Cleanup removes staged files older than maxAge.
func (s *DiskStore) Cleanup(ctx context.Context, maxAge time.Duration) error {
	cutoff := time.Now().Add(-maxAge)

	s.mu.Lock()
	for id, meta := range s.metas {
		if meta.CreatedAt.Before(cutoff) {
			delete(s.metas, id)
			os.Remove(filepath.Join(s.dir, id))
			os.Remove(s.metaPath(id))
		}
	}
	s.mu.Unlock()

	// Orphans left by a previous process.
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(filepath.Join(s.dir, entry.Name()))
		}
	}
	return nil
}

func (s *DiskStore) metaPath(id string) string {
	return filepath.Join(s.dir, id+".meta")
}

func (s *DiskStore) writeMeta(id string, meta *diskMeta) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return os.WriteFile(s.metaPath(id), data, 0o644)
}

func (s *DiskStore) readMeta(id string) (*diskMeta, error) {
	data, err := os.ReadFile(s.metaPath(id))
	if err != nil {
		return nil, err
	}
	var meta diskMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func newStagingID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// claimedReader deletes the staged file and its metadata on close.
type claimedReader struct {
	*os.File
	paths []string
}

func (r *claimedReader) Close() error {
	err := r.File.Close()
	for _, p := range r.paths {
		os.Remove(p)
	}
	return err
}
