// Package store holds the in-memory settings cache and synchronizes it with
// the physical backing device.
//
// A SettingsStore mirrors one register image in memory. Open reads the
// physical image and either adopts it verbatim (checksum valid) or installs
// compiled-in defaults; Persist seals the cache and writes the whole image
// back in one contiguous write. Nothing persists implicitly: field setters
// touch only the cache, so many small writes during a session amortize into
// one physical write.
//
// Field accessors enforce per-field legal ranges. Getters repair on read: a
// stored value outside its range is rewritten in the cache to the field's
// reset value before being returned. Setters saturate into the range rather
// than fail. The two policies are deliberately distinct per field and must
// not be unified.
//
// A SettingsStore is not safe for concurrent use. It assumes a single logical
// owner; callers that share one across goroutines (such as the HTTP layer)
// must serialize access themselves.
package store
