package store

// SettingsStoreConfig holds construction parameters for a SettingsStore.
type SettingsStoreConfig struct {
	// Backing is the physical device the image is read from and persisted to.
	Backing Backing

	// TuningRange is the clamp/reset policy for the tuned-frequency field.
	// Nil selects DefaultTuningRange.
	TuningRange FrequencyRange

	// OnCorrectionChange, when non-nil, is invoked with the clipped value
	// every time the correction offset is set, so a downstream frequency
	// reference can re-tune.
	OnCorrectionChange CorrectionListener
}

// FrequencyRange is the opaque range policy consulted for the tuned-frequency
// field. It is supplied by the RF subsystem; the store only asks it to test
// and to clip.
type FrequencyRange interface {
	Contains(hz int64) bool
	Clip(hz int64) int64
}

// DefaultTuningRange covers the receiver's full tunable span.
var DefaultTuningRange FrequencyRange = Range[int64]{Min: 0, Max: 7_200_000_000}

// CorrectionListener receives the clipped parts-per-billion value whenever
// the correction offset is written.
type CorrectionListener interface {
	CorrectionChanged(ppb int32)
}

// CorrectionListenerFunc adapts a plain function to CorrectionListener.
type CorrectionListenerFunc func(ppb int32)

// CorrectionChanged calls f.
func (f CorrectionListenerFunc) CorrectionChanged(ppb int32) { f(ppb) }

// Stats counts store activity since Open.
type Stats struct {
	// Repairs is the number of out-of-range values rewritten to their reset
	// value by getters.
	Repairs uint64

	// Persists is the number of completed Persist calls.
	Persists uint64

	// IntegrityFailures is 1 when Open found an invalid image and installed
	// defaults, plus one per rejected LoadImage.
	IntegrityFailures uint64
}

// Errors
var (
	ErrNotOpen      = &StoreError{"store is not open"}
	ErrBadImage     = &StoreError{"image failed integrity check"}
	ErrUnknownField = &StoreError{"unknown field"}
	ErrUnknownFlag  = &StoreError{"unknown flag"}
)

// StoreError represents a settings store error.
type StoreError struct {
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}
