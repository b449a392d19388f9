package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/radioconsole/persist/pkg/codec"
)

func testFileBacking(t *testing.T, useMmap bool) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.img")

	fb, err := NewFileBacking(FileBackingConfig{Path: path, UseMmap: useMmap})
	if err != nil {
		t.Fatalf("failed to create file backing: %v", err)
	}

	// Fresh file reads as an all-zero, invalid image.
	im, err := fb.ReadImage()
	if err != nil {
		t.Fatalf("failed to read fresh backing: %v", err)
	}
	if im.IsValid() {
		t.Error("fresh zero-filled backing must not validate")
	}

	// Write a sealed image and read it back.
	want := codec.NewDefaultImage()
	if err := fb.WriteImage(want); err != nil {
		t.Fatalf("failed to write image: %v", err)
	}
	got, err := fb.ReadImage()
	if err != nil {
		t.Fatalf("failed to read image: %v", err)
	}
	if !bytes.Equal(got.Payload[:], want.Payload[:]) || got.Checksum != want.Checksum {
		t.Error("image not preserved through file backing")
	}

	if err := fb.Close(); err != nil {
		t.Fatalf("failed to close backing: %v", err)
	}

	// Content survives reopen, like warm-reset backup RAM.
	fb2, err := NewFileBacking(FileBackingConfig{Path: path, UseMmap: useMmap})
	if err != nil {
		t.Fatalf("failed to reopen backing: %v", err)
	}
	defer fb2.Close()

	got2, err := fb2.ReadImage()
	if err != nil {
		t.Fatalf("failed to read reopened backing: %v", err)
	}
	if !got2.IsValid() {
		t.Error("persisted image must survive reopen intact")
	}
}

func TestFileBacking_ReadWrite(t *testing.T) {
	testFileBacking(t, false)
}

func TestFileBacking_ReadWriteMmap(t *testing.T) {
	testFileBacking(t, true)
}

func TestFileBacking_ResizesWrongSizedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.img")

	// Pre-existing file of the wrong size gets resized to one image.
	if err := os.WriteFile(path, []byte("short"), 0600); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	fb, err := NewFileBacking(FileBackingConfig{Path: path})
	if err != nil {
		t.Fatalf("failed to open backing: %v", err)
	}
	defer fb.Close()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("failed to stat file: %v", err)
	}
	if info.Size() != codec.ImageSize {
		t.Errorf("file size: got %d, want %d", info.Size(), codec.ImageSize)
	}
}

func TestStoreOverFileBacking_Lifecycle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.img")

	fb, err := NewFileBacking(FileBackingConfig{Path: path, UseMmap: true})
	if err != nil {
		t.Fatalf("failed to create backing: %v", err)
	}
	s, err := NewSettingsStore(SettingsStoreConfig{Backing: fb})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if err := s.Open(); err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	s.SetTunedFrequency(145_500_000)
	if err := s.Persist(); err != nil {
		t.Fatalf("failed to persist: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	// New process, same file.
	fb2, err := NewFileBacking(FileBackingConfig{Path: path, UseMmap: true})
	if err != nil {
		t.Fatalf("failed to reopen backing: %v", err)
	}
	s2, err := NewSettingsStore(SettingsStoreConfig{Backing: fb2})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if err := s2.Open(); err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer s2.Close()

	if got := s2.TunedFrequency(); got != 145_500_000 {
		t.Errorf("tuned frequency after restart: got %d, want 145500000", got)
	}
}
