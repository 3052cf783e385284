package upload

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDiskStoreSaveClaim(t *testing.T) {
	ctx := context.Background()
	store, err := NewDiskStore(t.TempDir(), 0)
	if err != nil {
		t.Fatal(err)
	}

	id, err := store.Save(ctx, "avatar.png", "image/png", 5, strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if id == "" {
		t.Fatal("Save returned an empty id")
	}

	file, err := store.Claim(ctx, id)
	if err != nil {
		t.Fatalf("Claim failed: %v", err)
	}
	if file.Filename != "avatar.png" || file.ContentType != "image/png" || file.Size != 5 {
		t.Errorf("Claimed metadata wrong: %+v", file)
	}

	data, err := io.ReadAll(file.Reader)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" {
		t.Errorf("Contents = %q", data)
	}
	file.Close()

	// Closing releases the staged file.
	if _, err := os.Stat(file.Path); !os.IsNotExist(err) {
		t.Error("Staged file survived its claim")
	}
}

func TestDiskStoreClaimConsumes(t *testing.T) {
	ctx := context.Background()
	store, _ := NewDiskStore(t.TempDir(), 0)

	id, _ := store.Save(ctx, "a.txt", "text/plain", 1, strings.NewReader("x"))
	first, err := store.Claim(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	first.Close()

	if _, err := store.Claim(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Second claim = %v, want ErrNotFound", err)
	}
}

func TestDiskStoreClaimUnknown(t *testing.T) {
	store, _ := NewDiskStore(t.TempDir(), 0)
	if _, err := store.Claim(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Claim of unknown id = %v, want ErrNotFound", err)
	}
}

func TestDiskStoreSizeLimit(t *testing.T) {
	ctx := context.Background()
	store, _ := NewDiskStore(t.TempDir(), 4)

	// Declared size over the limit is rejected up front.
	if _, err := store.Save(ctx, "big", "", 100, strings.NewReader("irrelevant")); !errors.Is(err, ErrTooLarge) {
		t.Errorf("Oversized declared size = %v, want ErrTooLarge", err)
	}

	// A stream that lies about its size is caught while copying.
	if _, err := store.Save(ctx, "liar", "", 1, strings.NewReader("way too long")); !errors.Is(err, ErrTooLarge) {
		t.Errorf("Oversized stream = %v, want ErrTooLarge", err)
	}

	// Exactly at the limit is fine.
	if _, err := store.Save(ctx, "fits", "", 4, strings.NewReader("1234")); err != nil {
		t.Errorf("At-limit save failed: %v", err)
	}
}

func TestDiskStoreMetaSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, _ := NewDiskStore(dir, 0)

	id, _ := store.Save(ctx, "doc.pdf", "application/pdf", 3, strings.NewReader("pdf"))

	// A new store over the same directory simulates a process restart.
	restarted, _ := NewDiskStore(dir, 0)
	file, err := restarted.Claim(ctx, id)
	if err != nil {
		t.Fatalf("Claim after restart failed: %v", err)
	}
	defer file.Close()
	if file.Filename != "doc.pdf" {
		t.Errorf("Filename = %q, metadata not recovered", file.Filename)
	}
}

func TestDiskStoreCleanup(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, _ := NewDiskStore(dir, 0)

	old, _ := store.Save(ctx, "old", "", 1, strings.NewReader("a"))
	fresh, _ := store.Save(ctx, "fresh", "", 1, strings.NewReader("b"))

	// Age the first file past the cutoff.
	past := time.Now().Add(-2 * time.Hour)
	os.Chtimes(filepath.Join(dir, old), past, past)
	os.Chtimes(filepath.Join(dir, old+".meta"), past, past)
	store.mu.Lock()
	store.metas[old].CreatedAt = past
	store.mu.Unlock()

	if err := store.Cleanup(ctx, time.Hour); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Claim(ctx, old); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expired file survived cleanup: %v", err)
	}
	if file, err := store.Claim(ctx, fresh); err != nil {
		t.Errorf("Fresh file removed by cleanup: %v", err)
	} else {
		file.Close()
	}
}
