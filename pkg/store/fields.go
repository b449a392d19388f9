package store

import (
	"github.com/radioconsole/persist/pkg/codec"
)

// Field ranges. Getters reset-if-outside, setters clip, except where noted.
var (
	correctionPPBRange = Range[int32]{Min: -99_000, Max: 99_000}
	toneMixRange       = Range[int32]{Min: 10, Max: 99}
	afskFreqRange      = Range[int32]{Min: 1, Max: 4000}
	modemBaudrateRange = Range[int32]{Min: 50, Max: 9600}
	modemBWRange       = Range[int32]{Min: 1000, Max: 50_000}
	modemRepeatRange   = Range[int32]{Min: 1, Max: 99}
	clkoutFreqRange    = Range[uint32]{Min: 10, Max: 60_000}
)

// backlightSeconds maps the 3-bit backlight timer index to seconds; index 0
// is the "always on" sentinel.
var backlightSeconds = [8]uint32{0, 5, 15, 30, 60, 180, 300, 600}

// TunedFrequency returns the tuned frequency in Hz, repaired to the reset
// value when outside the injected tuning-range policy.
func (s *SettingsStore) TunedFrequency() int64 {
	v := s.i64(codec.OffTunedFrequency)
	if !s.tuning.Contains(v) {
		v = codec.DefaultTunedFrequency
		s.putI64(codec.OffTunedFrequency, v)
		s.stats.Repairs++
	}
	return v
}

// SetTunedFrequency clips the frequency into the tuning range and stores it.
func (s *SettingsStore) SetTunedFrequency(hz int64) {
	s.putI64(codec.OffTunedFrequency, s.tuning.Clip(hz))
}

// CorrectionPPB returns the frequency-correction offset in parts per billion.
func (s *SettingsStore) CorrectionPPB() int32 {
	return s.rangedI32(codec.OffCorrectionPPB, correctionPPBRange, codec.DefaultCorrectionPPB)
}

// SetCorrectionPPB clips and stores the correction offset, then notifies the
// registered listener with the clipped value so the frequency reference can
// re-tune.
func (s *SettingsStore) SetCorrectionPPB(ppb int32) {
	clipped := correctionPPBRange.Clip(ppb)
	s.putI32(codec.OffCorrectionPPB, clipped)
	if s.onPPB != nil {
		s.onPPB.CorrectionChanged(clipped)
	}
}

// TouchCalibration returns the touch calibration. A mismatched magic word
// means the blob was never written by this module; defaults are installed
// (setting the magic) before returning.
func (s *SettingsStore) TouchCalibration() codec.Calibration {
	if s.u32(codec.OffCalibrationMagic) != codec.CalibrationMagic {
		s.SetTouchCalibration(codec.DefaultCalibration())
		s.stats.Repairs++
	}
	return codec.DecodeCalibration(s.cache.Payload[codec.OffCalibration:])
}

// SetTouchCalibration stores the calibration and stamps the magic word.
func (s *SettingsStore) SetTouchCalibration(c codec.Calibration) {
	codec.EncodeCalibration(s.cache.Payload[codec.OffCalibration:], c)
	s.putU32(codec.OffCalibrationMagic, codec.CalibrationMagic)
}

// ToneMix returns the audio tone-mix level.
func (s *SettingsStore) ToneMix() int32 {
	return s.rangedI32(codec.OffToneMix, toneMixRange, codec.DefaultToneMix)
}

// SetToneMix clips and stores the tone-mix level.
func (s *SettingsStore) SetToneMix(v int32) {
	s.putI32(codec.OffToneMix, toneMixRange.Clip(v))
}

// AFSKMarkFreq returns the AFSK mark tone in Hz.
func (s *SettingsStore) AFSKMarkFreq() int32 {
	return s.rangedI32(codec.OffAFSKMarkFreq, afskFreqRange, codec.DefaultAFSKMarkFreq)
}

// SetAFSKMarkFreq clips and stores the AFSK mark tone.
func (s *SettingsStore) SetAFSKMarkFreq(v int32) {
	s.putI32(codec.OffAFSKMarkFreq, afskFreqRange.Clip(v))
}

// AFSKSpaceFreq returns the AFSK space tone in Hz.
func (s *SettingsStore) AFSKSpaceFreq() int32 {
	return s.rangedI32(codec.OffAFSKSpaceFreq, afskFreqRange, codec.DefaultAFSKSpaceFreq)
}

// SetAFSKSpaceFreq clips and stores the AFSK space tone.
func (s *SettingsStore) SetAFSKSpaceFreq(v int32) {
	s.putI32(codec.OffAFSKSpaceFreq, afskFreqRange.Clip(v))
}

// ModemBaudrate returns the modem baud rate.
func (s *SettingsStore) ModemBaudrate() int32 {
	return s.rangedI32(codec.OffModemBaudrate, modemBaudrateRange, codec.DefaultModemBaudrate)
}

// SetModemBaudrate clips and stores the baud rate.
func (s *SettingsStore) SetModemBaudrate(v int32) {
	s.putI32(codec.OffModemBaudrate, modemBaudrateRange.Clip(v))
}

// ModemBandwidth returns the modem bandwidth in Hz.
func (s *SettingsStore) ModemBandwidth() int32 {
	return s.rangedI32(codec.OffModemBandwidth, modemBWRange, codec.DefaultModemBandwidth)
}

// SetModemBandwidth clips and stores the modem bandwidth.
func (s *SettingsStore) SetModemBandwidth(v int32) {
	s.putI32(codec.OffModemBandwidth, modemBWRange.Clip(v))
}

// ModemRepeat returns the message repeat count.
func (s *SettingsStore) ModemRepeat() int32 {
	return s.rangedI32(codec.OffModemRepeat, modemRepeatRange, codec.DefaultModemRepeat)
}

// SetModemRepeat clips and stores the repeat count.
func (s *SettingsStore) SetModemRepeat(v int32) {
	s.putI32(codec.OffModemRepeat, modemRepeatRange.Clip(v))
}

// ModemDefIndex returns the modem definition selector. No declared range.
func (s *SettingsStore) ModemDefIndex() uint32 {
	return s.u32(codec.OffModemDefIndex)
}

// SetModemDefIndex stores the modem definition selector.
func (s *SettingsStore) SetModemDefIndex(v uint32) {
	s.putU32(codec.OffModemDefIndex, v)
}

// SerialFormat returns the modem serial framing.
func (s *SettingsStore) SerialFormat() codec.SerialFormat {
	p := &s.cache.Payload
	return codec.SerialFormat{
		DataBits: p[codec.OffSerialFormat],
		Parity:   p[codec.OffSerialFormat+1],
		StopBits: p[codec.OffSerialFormat+2],
		BitOrder: p[codec.OffSerialFormat+3],
	}
}

// SetSerialFormat stores the modem serial framing.
func (s *SettingsStore) SetSerialFormat(f codec.SerialFormat) {
	p := &s.cache.Payload
	p[codec.OffSerialFormat] = f.DataBits
	p[codec.OffSerialFormat+1] = f.Parity
	p[codec.OffSerialFormat+2] = f.StopBits
	p[codec.OffSerialFormat+3] = f.BitOrder
}

// PagerLastAddress returns the last received paging address. No declared
// range.
func (s *SettingsStore) PagerLastAddress() uint32 {
	return s.u32(codec.OffPagerLast)
}

// SetPagerLastAddress stores the last received paging address.
func (s *SettingsStore) SetPagerLastAddress(addr uint32) {
	s.putU32(codec.OffPagerLast, addr)
}

// PagerIgnoreAddress returns the paging address to ignore. No declared range.
func (s *SettingsStore) PagerIgnoreAddress() uint32 {
	return s.u32(codec.OffPagerIgnore)
}

// SetPagerIgnoreAddress stores the paging address to ignore.
func (s *SettingsStore) SetPagerIgnoreAddress(addr uint32) {
	s.putU32(codec.OffPagerIgnore, addr)
}

// HardwareConfig returns the hardware configuration byte.
func (s *SettingsStore) HardwareConfig() uint8 {
	return uint8(s.u32(codec.OffHardwareConfig))
}

// SetHardwareConfig stores the hardware configuration byte. Only the low 8
// bits of the register word are meaningful.
func (s *SettingsStore) SetHardwareConfig(v uint8) {
	s.putU32(codec.OffHardwareConfig, uint32(v))
}

// UI register access.

func (s *SettingsStore) uiConfig() UIConfig {
	return UIConfig(s.u32(codec.OffUIConfig))
}

func (s *SettingsStore) putUIConfig(u UIConfig) {
	s.putU32(codec.OffUIConfig, uint32(u))
}

// Flag reports the literal state of one UI flag bit.
func (s *SettingsStore) Flag(f Flag) bool {
	return s.uiConfig().Test(f)
}

// SetFlag clears then conditionally sets one UI flag bit, leaving every other
// bit of the register untouched.
func (s *SettingsStore) SetFlag(f Flag, v bool) {
	s.putUIConfig(s.uiConfig().WithFlag(f, v))
}

// BacklightTimer returns the backlight timeout in seconds. The second return
// is false when the index is the "always on" sentinel.
func (s *SettingsStore) BacklightTimer() (uint32, bool) {
	idx := s.uiConfig().BacklightIndex()
	if idx == 0 {
		return 0, false
	}
	return backlightSeconds[idx], true
}

// BacklightTimerIndex returns the raw backlight timer table index.
func (s *SettingsStore) BacklightTimerIndex() uint32 {
	return s.uiConfig().BacklightIndex()
}

// SetBacklightTimerIndex stores the backlight timer table index, masked to
// the 3-bit sub-field.
func (s *SettingsStore) SetBacklightTimerIndex(i uint32) {
	s.putUIConfig(s.uiConfig().WithBacklightIndex(i))
}

// ClkoutFreq returns the CLKOUT frequency sub-field, repaired to its reset
// value when the stored bits fall outside the legal range. Unlike the scalar
// setters, SetClkoutFreq does not clip, so an out-of-range write is healed
// here on the next read.
func (s *SettingsStore) ClkoutFreq() uint32 {
	u := s.uiConfig()
	freq := u.ClkoutRaw()
	if !clkoutFreqRange.Contains(freq) {
		s.putUIConfig(u.WithClkoutRaw(codec.DefaultClkoutFreq))
		s.stats.Repairs++
		return codec.DefaultClkoutFreq
	}
	return freq
}

// SetClkoutFreq stores the CLKOUT frequency, masked to the 16-bit sub-field
// so it cannot disturb adjacent bits. Range repair happens on read.
func (s *SettingsStore) SetClkoutFreq(freq uint32) {
	s.putUIConfig(s.uiConfig().WithClkoutRaw(freq))
}

// Named flag accessors, one pair per bit of the UI register.

// ShowReturnIcon reports whether the touch menu shows a return icon.
func (s *SettingsStore) ShowReturnIcon() bool { return s.Flag(FlagReturnIcon) }

// SetShowReturnIcon sets the return-icon flag.
func (s *SettingsStore) SetShowReturnIcon(v bool) { s.SetFlag(FlagReturnIcon, v) }

// LoadAppSettings reports whether saved app settings load on app start.
func (s *SettingsStore) LoadAppSettings() bool { return s.Flag(FlagLoadAppSettings) }

// SetLoadAppSettings sets the load-app-settings flag.
func (s *SettingsStore) SetLoadAppSettings(v bool) { s.SetFlag(FlagLoadAppSettings, v) }

// SaveAppSettings reports whether app settings save on app close.
func (s *SettingsStore) SaveAppSettings() bool { return s.Flag(FlagSaveAppSettings) }

// SetSaveAppSettings sets the save-app-settings flag.
func (s *SettingsStore) SetSaveAppSettings(v bool) { s.SetFlag(FlagSaveAppSettings, v) }

// BigQRCode reports whether QR codes render at double size.
func (s *SettingsStore) BigQRCode() bool { return s.Flag(FlagBigQRCode) }

// SetBigQRCode sets the big-QR-code flag.
func (s *SettingsStore) SetBigQRCode(v bool) { s.SetFlag(FlagBigQRCode, v) }

// TouchDisabled reports whether the touchscreen is disabled.
func (s *SettingsStore) TouchDisabled() bool { return s.Flag(FlagTouchDisabled) }

// SetTouchDisabled sets the touch-disabled flag.
func (s *SettingsStore) SetTouchDisabled(v bool) { s.SetFlag(FlagTouchDisabled, v) }

// HideClock reports whether the clock is hidden from the main menu.
func (s *SettingsStore) HideClock() bool { return s.Flag(FlagHideClock) }

// SetHideClock sets the hide-clock flag.
func (s *SettingsStore) SetHideClock(v bool) { s.SetFlag(FlagHideClock, v) }

// ClockWithDate reports whether the clock shows the date.
func (s *SettingsStore) ClockWithDate() bool { return s.Flag(FlagClockWithDate) }

// SetClockWithDate sets the clock-with-date flag.
func (s *SettingsStore) SetClockWithDate(v bool) { s.SetFlag(FlagClockWithDate, v) }

// ClkoutEnabled reports whether the CLKOUT output is enabled.
func (s *SettingsStore) ClkoutEnabled() bool { return s.Flag(FlagClkoutEnabled) }

// SetClkoutEnabled sets the CLKOUT-enabled flag.
func (s *SettingsStore) SetClkoutEnabled(v bool) { s.SetFlag(FlagClkoutEnabled, v) }

// Speaker reports the literal state of the speaker bit. The bit's meaning is
// historically inverted relative to its name on some hardware revisions; the
// stored polarity is reported as-is, not reinterpreted.
func (s *SettingsStore) Speaker() bool { return s.Flag(FlagSpeaker) }

// SetSpeaker sets the speaker bit literally, without polarity correction.
func (s *SettingsStore) SetSpeaker(v bool) { s.SetFlag(FlagSpeaker, v) }

// StealthMode reports whether stealth mode is on.
func (s *SettingsStore) StealthMode() bool { return s.Flag(FlagStealthMode) }

// SetStealthMode sets the stealth-mode flag.
func (s *SettingsStore) SetStealthMode(v bool) { s.SetFlag(FlagStealthMode, v) }

// LoginRequired reports whether a login is required at boot.
func (s *SettingsStore) LoginRequired() bool { return s.Flag(FlagLoginRequired) }

// SetLoginRequired sets the login-required flag.
func (s *SettingsStore) SetLoginRequired(v bool) { s.SetFlag(FlagLoginRequired, v) }

// ShowSplash reports whether the splash screen shows at boot.
func (s *SettingsStore) ShowSplash() bool { return s.Flag(FlagShowSplash) }

// SetShowSplash sets the show-splash flag.
func (s *SettingsStore) SetShowSplash(v bool) { s.SetFlag(FlagShowSplash, v) }
