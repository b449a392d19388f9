package store

import (
	"encoding/binary"
	"fmt"

	"github.com/radioconsole/persist/pkg/codec"
)

// SettingsStore mirrors one register image in memory and synchronizes it with
// the backing device on demand.
type SettingsStore struct {
	backing Backing
	tuning  FrequencyRange
	onPPB   CorrectionListener

	cache  codec.Image
	stats  Stats
	isOpen bool
}

// NewSettingsStore creates a store over the given backing device. The cache
// holds defaults until Open is called.
func NewSettingsStore(cfg SettingsStoreConfig) (*SettingsStore, error) {
	if cfg.Backing == nil {
		return nil, &StoreError{"backing device is required"}
	}
	tuning := cfg.TuningRange
	if tuning == nil {
		tuning = DefaultTuningRange
	}
	return &SettingsStore{
		backing: cfg.Backing,
		tuning:  tuning,
		onPPB:   cfg.OnCorrectionChange,
		cache:   *codec.NewDefaultImage(),
	}, nil
}

// Open reads the physical image and adopts it verbatim when its checksum
// holds; otherwise the cache is overwritten with compiled-in defaults. This
// is the only place cold corruption is detected, and it is repaired wholesale:
// a failed checksum discards the entire record, never single fields.
func (s *SettingsStore) Open() error {
	im, err := s.backing.ReadImage()
	if err != nil {
		return fmt.Errorf("failed to read backing image: %w", err)
	}

	if im.IsValid() {
		s.cache = *im
	} else {
		s.stats.IntegrityFailures++
		s.Defaults()
	}

	s.isOpen = true
	return nil
}

// Defaults unconditionally overwrites the cache with the compiled-in default
// image. Exposed for factory-reset callers; Open uses it as the fallback.
func (s *SettingsStore) Defaults() {
	s.cache = *codec.NewDefaultImage()
}

// Persist seals the cache and writes the full image to the backing device.
// Mutations are never persisted implicitly; this is the only durability
// point.
func (s *SettingsStore) Persist() error {
	if !s.isOpen {
		return ErrNotOpen
	}
	s.cache.Seal()
	if err := s.backing.WriteImage(&s.cache); err != nil {
		return fmt.Errorf("failed to persist image: %w", err)
	}
	s.stats.Persists++
	return nil
}

// Close releases the backing device. The cache is discarded; unpersisted
// mutations are lost.
func (s *SettingsStore) Close() error {
	if !s.isOpen {
		return nil
	}
	s.isOpen = false
	return s.backing.Close()
}

// Stats returns activity counters since construction.
func (s *SettingsStore) Stats() Stats {
	return s.stats
}

// Image returns a copy of the cache, sealed, for snapshotting.
func (s *SettingsStore) Image() codec.Image {
	im := s.cache
	im.Seal()
	return im
}

// LoadImage replaces the cache with a previously captured image. The image
// must pass the checksum gate; a stale or tampered snapshot is refused rather
// than half-trusted. The caller persists explicitly.
func (s *SettingsStore) LoadImage(im codec.Image) error {
	if !im.IsValid() {
		s.stats.IntegrityFailures++
		return ErrBadImage
	}
	s.cache = im
	return nil
}

// Settings decodes the full typed record from the cache. Reads through this
// path bypass range repair; use the field accessors for self-healing reads.
func (s *SettingsStore) Settings() codec.Settings {
	return s.cache.Settings()
}

// Raw payload access helpers. Offsets come from the codec layout table; the
// cache keeps raw bytes (not a decoded struct) so that a valid persisted
// image is adopted verbatim, reserved words included.

func (s *SettingsStore) u32(off int) uint32 {
	return binary.LittleEndian.Uint32(s.cache.Payload[off:])
}

func (s *SettingsStore) putU32(off int, v uint32) {
	binary.LittleEndian.PutUint32(s.cache.Payload[off:], v)
}

func (s *SettingsStore) i32(off int) int32 {
	return int32(s.u32(off))
}

func (s *SettingsStore) putI32(off int, v int32) {
	s.putU32(off, uint32(v))
}

func (s *SettingsStore) i64(off int) int64 {
	return int64(binary.LittleEndian.Uint64(s.cache.Payload[off:]))
}

func (s *SettingsStore) putI64(off int, v int64) {
	binary.LittleEndian.PutUint64(s.cache.Payload[off:], uint64(v))
}

// rangedI32 implements the reset-if-outside read policy for int32 fields: a
// stored value outside r is rewritten in the cache to reset before being
// returned, so the cache self-heals on first read.
func (s *SettingsStore) rangedI32(off int, r Range[int32], reset int32) int32 {
	v := s.i32(off)
	if !r.Contains(v) {
		v = reset
		s.putI32(off, v)
		s.stats.Repairs++
	}
	return v
}
