package store

import (
	"testing"

	"github.com/radioconsole/persist/pkg/codec"
)

func allFlags() []Flag {
	infos := Flags()
	flags := make([]Flag, len(infos))
	for i, fi := range infos {
		flags[i] = fi.Flag
	}
	return flags
}

func TestFlags_SetAndClear(t *testing.T) {
	s, _ := newTestStore(t)

	for _, f := range allFlags() {
		s.SetFlag(f, true)
		if !s.Flag(f) {
			t.Errorf("flag bit %d not set", f)
		}
		s.SetFlag(f, false)
		if s.Flag(f) {
			t.Errorf("flag bit %d not cleared", f)
		}
	}
}

func TestFlags_Independence(t *testing.T) {
	// Setting any one flag must not alter any other flag bit or either
	// multi-bit sub-field of the same register.
	for _, f := range allFlags() {
		s, _ := newTestStore(t)

		s.SetBacklightTimerIndex(5)
		s.SetClkoutFreq(42_000)
		before := s.uiConfig()

		s.SetFlag(f, !before.Test(f))
		after := s.uiConfig()

		if diff := uint32(before ^ after); diff != 1<<f {
			t.Errorf("flag bit %d disturbed other bits: register diff 0x%08X", f, diff)
		}
		if after.BacklightIndex() != 5 {
			t.Errorf("flag bit %d disturbed backlight index", f)
		}
		if after.ClkoutRaw() != 42_000 {
			t.Errorf("flag bit %d disturbed CLKOUT sub-field", f)
		}
	}
}

func TestSubFields_DoNotDisturbFlags(t *testing.T) {
	s, _ := newTestStore(t)

	s.SetFlag(FlagStealthMode, true)
	s.SetFlag(FlagShowSplash, false)

	s.SetBacklightTimerIndex(3)
	s.SetClkoutFreq(60_000)

	if !s.Flag(FlagStealthMode) || s.Flag(FlagShowSplash) {
		t.Error("sub-field write disturbed flag bits")
	}
	if got := s.uiConfig().BacklightIndex(); got != 3 {
		t.Errorf("backlight index: got %d, want 3", got)
	}
	if got := s.ClkoutFreq(); got != 60_000 {
		t.Errorf("CLKOUT: got %d, want 60000", got)
	}
}

func TestBacklightTimer_Table(t *testing.T) {
	s, _ := newTestStore(t)

	testCases := []struct {
		index   uint32
		seconds uint32
		enabled bool
	}{
		{0, 0, false}, // always-on sentinel
		{1, 5, true},
		{2, 15, true},
		{3, 30, true},
		{4, 60, true},
		{5, 180, true},
		{6, 300, true},
		{7, 600, true},
	}

	for _, tc := range testCases {
		s.SetBacklightTimerIndex(tc.index)
		secs, enabled := s.BacklightTimer()
		if secs != tc.seconds || enabled != tc.enabled {
			t.Errorf("index %d: got (%d, %v), want (%d, %v)", tc.index, secs, enabled, tc.seconds, tc.enabled)
		}
	}

	// Index is masked to the sub-field width.
	s.SetBacklightTimerIndex(0xFF)
	if got := s.uiConfig().BacklightIndex(); got != 7 {
		t.Errorf("masked index: got %d, want 7", got)
	}
}

func TestSpeakerBit_LiteralPolarity(t *testing.T) {
	s, _ := newTestStore(t)

	// The default register carries the speaker bit set; the accessor reports
	// the stored bit literally, without polarity correction.
	if !s.Speaker() {
		t.Error("default speaker bit should read set")
	}
	s.SetSpeaker(false)
	if s.uiConfig().Test(FlagSpeaker) {
		t.Error("speaker bit not cleared literally")
	}
}

func TestFlagByName(t *testing.T) {
	f, ok := FlagByName("stealth")
	if !ok || f != FlagStealthMode {
		t.Errorf("stealth: got (%d, %v)", f, ok)
	}
	if _, ok := FlagByName("no-such-flag"); ok {
		t.Error("unknown name should not resolve")
	}
}

func TestDefaultRegister_NamedAccessors(t *testing.T) {
	s, _ := newTestStore(t)

	if !s.ShowSplash() {
		t.Error("splash should default on")
	}
	if s.StealthMode() || s.LoginRequired() || s.HideClock() {
		t.Error("unset flags should default off")
	}
	if got := s.ClkoutFreq(); got != codec.DefaultClkoutFreq {
		t.Errorf("default CLKOUT: got %d, want %d", got, uint32(codec.DefaultClkoutFreq))
	}
	if secs, enabled := s.BacklightTimer(); !enabled || secs != 600 {
		t.Errorf("default backlight: got (%d, %v), want (600, true)", secs, enabled)
	}
}
