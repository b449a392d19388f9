package store

// UIConfig is the bit-packed UI/feature register.
//
// Bit layout (bit 0 = LSB):
//
//	bits 0-2   backlight timer table index (0 = always on)
//	bit  3     reserved
//	bits 4-19  CLKOUT frequency sub-field
//	bits 20-31 single-bit flags, see the table below
type UIConfig uint32

// Flag identifies one single-bit field of the UI register by bit position.
type Flag uint

// Single-bit flags of the UI register.
const (
	FlagReturnIcon      Flag = 20 // show return icon in touch menu
	FlagLoadAppSettings Flag = 21 // load saved app settings on app start
	FlagSaveAppSettings Flag = 22 // save app settings on app close
	FlagBigQRCode       Flag = 23 // show bigger QR code
	FlagTouchDisabled   Flag = 24 // touchscreen disabled
	FlagHideClock       Flag = 25 // hide clock on main menu
	FlagClockWithDate   Flag = 26 // clock shows date
	FlagClkoutEnabled   Flag = 27 // CLKOUT output enabled
	FlagSpeaker         Flag = 28 // speaker bit; see polarity note below
	FlagStealthMode     Flag = 29 // stealth mode
	FlagLoginRequired   Flag = 30 // login required at boot
	FlagShowSplash      Flag = 31 // show splash screen
)

// FlagInfo names a flag for external surfaces (API, CLI).
type FlagInfo struct {
	Flag Flag
	Name string
	Help string
}

// flagTable is the single definition of flag names and semantics. The
// speaker bit is historically inverted relative to its name on some hardware
// revisions; the stored polarity is preserved as-is and reported literally.
var flagTable = []FlagInfo{
	{FlagReturnIcon, "return-icon", "show return icon in touch menu"},
	{FlagLoadAppSettings, "load-app-settings", "load saved app settings on app start"},
	{FlagSaveAppSettings, "save-app-settings", "save app settings on app close"},
	{FlagBigQRCode, "big-qr-code", "show bigger QR code"},
	{FlagTouchDisabled, "touch-disabled", "disable touchscreen"},
	{FlagHideClock, "hide-clock", "hide clock on main menu"},
	{FlagClockWithDate, "clock-date", "clock shows date"},
	{FlagClkoutEnabled, "clkout", "CLKOUT output enabled"},
	{FlagSpeaker, "speaker", "speaker bit (historically inverted polarity, stored as-is)"},
	{FlagStealthMode, "stealth", "stealth mode"},
	{FlagLoginRequired, "login", "login required at boot"},
	{FlagShowSplash, "splash", "show splash screen"},
}

// Flags returns the flag table, in bit order.
func Flags() []FlagInfo {
	out := make([]FlagInfo, len(flagTable))
	copy(out, flagTable)
	return out
}

// FlagByName resolves an external flag name. The second return is false for
// names not in the table.
func FlagByName(name string) (Flag, bool) {
	for _, fi := range flagTable {
		if fi.Name == name {
			return fi.Flag, true
		}
	}
	return 0, false
}

// Test reports the literal state of one flag bit.
func (u UIConfig) Test(f Flag) bool {
	return u&(1<<f) != 0
}

// WithFlag returns the register with one flag bit cleared then conditionally
// set; all other bits are untouched.
func (u UIConfig) WithFlag(f Flag, v bool) UIConfig {
	u &^= 1 << f
	if v {
		u |= 1 << f
	}
	return u
}

// Multi-bit sub-fields. Both use masked read-modify-write so that adjacent
// bits are never disturbed.
const (
	backlightMask = 0x00000007

	clkoutShift = 4
	clkoutWidth = 16
	clkoutMask  = ((1 << clkoutWidth) - 1) << clkoutShift
)

// BacklightIndex extracts the 3-bit backlight timer table index.
func (u UIConfig) BacklightIndex() uint32 {
	return uint32(u) & backlightMask
}

// WithBacklightIndex returns the register with the backlight index replaced.
// The index is masked to the sub-field width.
func (u UIConfig) WithBacklightIndex(i uint32) UIConfig {
	return (u &^ backlightMask) | UIConfig(i&backlightMask)
}

// ClkoutRaw extracts the stored 16-bit CLKOUT sub-field without any range
// repair; the store's getter applies reset-if-outside on top of it.
func (u UIConfig) ClkoutRaw() uint32 {
	return (uint32(u) & clkoutMask) >> clkoutShift
}

// WithClkoutRaw returns the register with the CLKOUT sub-field replaced. The
// value is masked to the sub-field width so it cannot spill into neighbors.
func (u UIConfig) WithClkoutRaw(freq uint32) UIConfig {
	return (u &^ clkoutMask) | UIConfig(freq<<clkoutShift)&clkoutMask
}
