package api

import (
	"github.com/radioconsole/persist/pkg/store"
)

// fieldAccessor binds one external field name to the store's getter/setter
// pair. Values travel as int64; every register field fits.
type fieldAccessor struct {
	get func(*store.SettingsStore) int64
	set func(*store.SettingsStore, int64)
}

// fieldTable maps the external field names to store accessors. Clamping and
// reset-if-outside behavior stays in the store; this layer only converts.
var fieldTable = map[string]fieldAccessor{
	"tuned_frequency": {
		get: func(s *store.SettingsStore) int64 { return s.TunedFrequency() },
		set: func(s *store.SettingsStore, v int64) { s.SetTunedFrequency(v) },
	},
	"correction_ppb": {
		get: func(s *store.SettingsStore) int64 { return int64(s.CorrectionPPB()) },
		set: func(s *store.SettingsStore, v int64) { s.SetCorrectionPPB(clampI32(v)) },
	},
	"tone_mix": {
		get: func(s *store.SettingsStore) int64 { return int64(s.ToneMix()) },
		set: func(s *store.SettingsStore, v int64) { s.SetToneMix(clampI32(v)) },
	},
	"afsk_mark_freq": {
		get: func(s *store.SettingsStore) int64 { return int64(s.AFSKMarkFreq()) },
		set: func(s *store.SettingsStore, v int64) { s.SetAFSKMarkFreq(clampI32(v)) },
	},
	"afsk_space_freq": {
		get: func(s *store.SettingsStore) int64 { return int64(s.AFSKSpaceFreq()) },
		set: func(s *store.SettingsStore, v int64) { s.SetAFSKSpaceFreq(clampI32(v)) },
	},
	"modem_baudrate": {
		get: func(s *store.SettingsStore) int64 { return int64(s.ModemBaudrate()) },
		set: func(s *store.SettingsStore, v int64) { s.SetModemBaudrate(clampI32(v)) },
	},
	"modem_bandwidth": {
		get: func(s *store.SettingsStore) int64 { return int64(s.ModemBandwidth()) },
		set: func(s *store.SettingsStore, v int64) { s.SetModemBandwidth(clampI32(v)) },
	},
	"modem_repeat": {
		get: func(s *store.SettingsStore) int64 { return int64(s.ModemRepeat()) },
		set: func(s *store.SettingsStore, v int64) { s.SetModemRepeat(clampI32(v)) },
	},
	"modem_def_index": {
		get: func(s *store.SettingsStore) int64 { return int64(s.ModemDefIndex()) },
		set: func(s *store.SettingsStore, v int64) { s.SetModemDefIndex(uint32(v)) },
	},
	"clkout_freq": {
		get: func(s *store.SettingsStore) int64 { return int64(s.ClkoutFreq()) },
		set: func(s *store.SettingsStore, v int64) { s.SetClkoutFreq(uint32(v)) },
	},
	"backlight_timer_index": {
		get: func(s *store.SettingsStore) int64 { return int64(s.BacklightTimerIndex()) },
		set: func(s *store.SettingsStore, v int64) { s.SetBacklightTimerIndex(uint32(v)) },
	},
	"pager_last_address": {
		get: func(s *store.SettingsStore) int64 { return int64(s.PagerLastAddress()) },
		set: func(s *store.SettingsStore, v int64) { s.SetPagerLastAddress(uint32(v)) },
	},
	"pager_ignore_address": {
		get: func(s *store.SettingsStore) int64 { return int64(s.PagerIgnoreAddress()) },
		set: func(s *store.SettingsStore, v int64) { s.SetPagerIgnoreAddress(uint32(v)) },
	},
	"hardware_config": {
		get: func(s *store.SettingsStore) int64 { return int64(s.HardwareConfig()) },
		set: func(s *store.SettingsStore, v int64) { s.SetHardwareConfig(uint8(v)) },
	},
}

// clampI32 saturates an int64 into int32 before handing it to a store setter,
// which then applies its own field range.
func clampI32(v int64) int32 {
	if v > 1<<31-1 {
		return 1<<31 - 1
	}
	if v < -(1 << 31) {
		return -(1 << 31)
	}
	return int32(v)
}

// FieldNames returns the supported field names, for discovery endpoints and
// CLI help.
func FieldNames() []string {
	names := make([]string, 0, len(fieldTable))
	for name := range fieldTable {
		names = append(names, name)
	}
	return names
}

// ReadField returns the current value of a named field. The second return is
// false when the name is unknown.
func ReadField(s *store.SettingsStore, name string) (int64, bool) {
	accessor, ok := fieldTable[name]
	if !ok {
		return 0, false
	}
	return accessor.get(s), true
}

// WriteField sets a named field and returns the value actually stored, after
// the store's clamping.
func WriteField(s *store.SettingsStore, name string, value int64) (int64, bool) {
	accessor, ok := fieldTable[name]
	if !ok {
		return 0, false
	}
	accessor.set(s, value)
	return accessor.get(s), true
}
