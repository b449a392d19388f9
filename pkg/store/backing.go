package store

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/radioconsole/persist/pkg/codec"
)

// Backing is the physical image device. It survives process restarts but is
// assumed to read as arbitrary bytes after a cold start or corruption event;
// the store never trusts its content without the checksum gate.
type Backing interface {
	// ReadImage reads the full image from the device.
	ReadImage() (*codec.Image, error)

	// WriteImage writes the full image to the device as one contiguous
	// write. Atomicity against power loss mid-write is not guaranteed.
	WriteImage(*codec.Image) error

	Close() error
}

// FileBackingConfig holds configuration for a file-backed image device.
type FileBackingConfig struct {
	// Path is the backing file. It is created (zero-filled, hence invalid)
	// if missing, and truncated or extended to the image size.
	Path string

	// UseMmap maps the file instead of using read/write syscalls.
	UseMmap bool
}

// FileBacking holds the image in a fixed-size file, optionally memory-mapped.
type FileBacking struct {
	file *os.File
	mmap []byte // nil when mmap is disabled
}

// NewFileBacking opens (or creates) the backing file and sizes it to exactly
// one image. A fresh zero-filled file fails the checksum gate on first Open,
// which is the intended cold-start behavior.
func NewFileBacking(cfg FileBackingConfig) (*FileBacking, error) {
	f, err := os.OpenFile(cfg.Path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open backing file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat backing file: %w", err)
	}
	if info.Size() != codec.ImageSize {
		if err := f.Truncate(codec.ImageSize); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to size backing file: %w", err)
		}
	}

	fb := &FileBacking{file: f}
	if cfg.UseMmap {
		m, err := unix.Mmap(int(f.Fd()), 0, codec.ImageSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to mmap backing file: %w", err)
		}
		fb.mmap = m
	}

	return fb, nil
}

// ReadImage reads the device bytes into a fresh image.
func (fb *FileBacking) ReadImage() (*codec.Image, error) {
	buf := make([]byte, codec.ImageSize)
	if fb.mmap != nil {
		copy(buf, fb.mmap)
	} else {
		if _, err := fb.file.ReadAt(buf, 0); err != nil {
			return nil, fmt.Errorf("failed to read backing file: %w", err)
		}
	}

	im := &codec.Image{}
	if err := im.UnmarshalBinary(buf); err != nil {
		return nil, err
	}
	return im, nil
}

// WriteImage writes the image as one contiguous block and syncs it.
func (fb *FileBacking) WriteImage(im *codec.Image) error {
	buf, err := im.MarshalBinary()
	if err != nil {
		return err
	}

	if fb.mmap != nil {
		copy(fb.mmap, buf)
		return unix.Msync(fb.mmap, unix.MS_SYNC)
	}

	if _, err := fb.file.WriteAt(buf, 0); err != nil {
		return fmt.Errorf("failed to write backing file: %w", err)
	}
	return fb.file.Sync()
}

// Close unmaps and closes the backing file.
func (fb *FileBacking) Close() error {
	var firstErr error
	if fb.mmap != nil {
		if err := unix.Munmap(fb.mmap); err != nil {
			firstErr = err
		}
		fb.mmap = nil
	}
	if err := fb.file.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// MemBacking is an in-memory image device for tests and ephemeral use. The
// zero value reads as an all-zero (invalid) image, like a cold-started
// device.
type MemBacking struct {
	data [codec.ImageSize]byte
}

// NewMemBacking returns an empty in-memory device.
func NewMemBacking() *MemBacking {
	return &MemBacking{}
}

// ReadImage reads the stored bytes into a fresh image.
func (mb *MemBacking) ReadImage() (*codec.Image, error) {
	im := &codec.Image{}
	if err := im.UnmarshalBinary(mb.data[:]); err != nil {
		return nil, err
	}
	return im, nil
}

// WriteImage stores the image bytes.
func (mb *MemBacking) WriteImage(im *codec.Image) error {
	buf, err := im.MarshalBinary()
	if err != nil {
		return err
	}
	copy(mb.data[:], buf)
	return nil
}

// Close is a no-op.
func (mb *MemBacking) Close() error { return nil }

// Bytes exposes the raw device bytes so tests can corrupt them.
func (mb *MemBacking) Bytes() []byte { return mb.data[:] }
