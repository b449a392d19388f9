package codec

import (
	"encoding/binary"
	"testing"
)

func TestSettings_EncodeDecodeRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		s    Settings
	}{
		{
			name: "defaults",
			s:    DefaultSettings(),
		},
		{
			name: "negative correction and custom modem block",
			s: Settings{
				TunedFrequency:   433_920_000,
				CorrectionPPB:    -54_321,
				CalibrationMagic: CalibrationMagic,
				Calibration:      Calibration{A: -300, B: 12, C: 7, D: 1, E: 299, F: -4, K: 512},
				ModemDefIndex:    3,
				SerialFormat:     SerialFormat{DataBits: 8, Parity: ParityNone, StopBits: 2, BitOrder: MSBFirst},
				ModemBandwidth:   25_000,
				AFSKMarkFreq:     2125,
				AFSKSpaceFreq:    2295,
				ModemBaudrate:    300,
				ModemRepeat:      12,
				UIConfig:         0xDEADBEEF,
				PagerLastAddress: 1234567,
				PagerIgnoreAddress: 7654321,
				ToneMix:          55,
				HardwareConfig:   0xA5,
			},
		},
		{
			name: "zero record",
			s:    Settings{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.s.Encode()
			got := DecodeSettings(&p)
			if got != tc.s {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, tc.s)
			}
		})
	}
}

func TestSettings_EncodeLayoutOffsets(t *testing.T) {
	s := DefaultSettings()
	s.TunedFrequency = 0x0102030405060708
	s.UIConfig = 0x11223344
	s.ToneMix = 77
	p := s.Encode()

	if got := binary.LittleEndian.Uint64(p[OffTunedFrequency:]); got != 0x0102030405060708 {
		t.Errorf("tuned frequency bytes at offset %d: got 0x%016X", OffTunedFrequency, got)
	}
	if p[OffTunedFrequency] != 0x08 {
		t.Error("tuned frequency must be stored little-endian")
	}
	if got := binary.LittleEndian.Uint32(p[OffUIConfig:]); got != 0x11223344 {
		t.Errorf("ui register bytes at offset %d: got 0x%08X", OffUIConfig, got)
	}
	if got := int32(binary.LittleEndian.Uint32(p[OffToneMix:])); got != 77 {
		t.Errorf("tone mix bytes at offset %d: got %d", OffToneMix, got)
	}
}

func TestSettings_EncodeZeroesPadding(t *testing.T) {
	s := DefaultSettings()
	p := s.Encode()
	for i := settingsEnd; i < PayloadSize; i++ {
		if p[i] != 0 {
			t.Fatalf("padding byte %d not zero", i)
		}
	}
}

func TestDefaultSettings_UIRegisterComposition(t *testing.T) {
	ui := DefaultSettings().UIConfig

	if ui&(1<<31) == 0 {
		t.Error("splash bit should be set by default")
	}
	if ui&(1<<28) == 0 {
		t.Error("speaker bit should be set by default")
	}
	if got := (ui >> 4) & 0xFFFF; got != DefaultClkoutFreq {
		t.Errorf("default CLKOUT sub-field: got %d, want %d", got, DefaultClkoutFreq)
	}
	if got := ui & 0x7; got != DefaultBacklightIndex {
		t.Errorf("default backlight index: got %d, want %d", got, uint32(DefaultBacklightIndex))
	}
}
