package codec

import (
	"encoding/binary"
)

// Reset values for the ranged fields. A field found outside its legal range
// is rewritten to its reset value on read.
const (
	DefaultTunedFrequency = 100_000_000 // Hz

	DefaultCorrectionPPB = 0

	DefaultAFSKMarkFreq  = 1200
	DefaultAFSKSpaceFreq = 2200

	DefaultModemBaudrate  = 1200
	DefaultModemBandwidth = 15000
	DefaultModemRepeat    = 5

	DefaultToneMix = 20

	DefaultClkoutFreq = 10000

	DefaultBacklightIndex = 7
)

// Parity values for SerialFormat.
const (
	ParityNone uint8 = iota
	ParityEven
	ParityOdd
)

// Bit order values for SerialFormat.
const (
	LSBFirst uint8 = iota
	MSBFirst
)

// SerialFormat describes the serial framing used by the modem: data bits,
// parity, stop bits and bit order. It packs into one register word.
type SerialFormat struct {
	DataBits uint8
	Parity   uint8
	StopBits uint8
	BitOrder uint8
}

// DefaultSerialFormat returns the 7E1 LSB-first framing used by the paging
// decoder.
func DefaultSerialFormat() SerialFormat {
	return SerialFormat{DataBits: 7, Parity: ParityEven, StopBits: 1, BitOrder: LSBFirst}
}

// Calibration holds the affine transform mapping raw touch panel samples to
// screen coordinates:
//
//	x = (A*px + B*py + C) / K
//	y = (D*px + E*py + F) / K
type Calibration struct {
	A, B, C int32
	D, E, F int32
	K       int32
}

// DefaultCalibration returns an identity-scaled transform, usable until the
// panel has been calibrated for real.
func DefaultCalibration() Calibration {
	return Calibration{A: 1024, E: 1024, K: 1024}
}

// Settings is the typed view of the register payload. It mirrors the payload
// layout field for field; reserved words are not represented and encode as
// zero.
type Settings struct {
	TunedFrequency   int64
	CorrectionPPB    int32
	CalibrationMagic uint32
	Calibration      Calibration

	ModemDefIndex  uint32
	SerialFormat   SerialFormat
	ModemBandwidth int32
	AFSKMarkFreq   int32
	AFSKSpaceFreq  int32
	ModemBaudrate  int32
	ModemRepeat    int32

	UIConfig uint32

	PagerLastAddress   uint32
	PagerIgnoreAddress uint32

	ToneMix int32

	HardwareConfig uint32
}

// DefaultSettings returns the compiled-in defaults. The UI register comes up
// with splash shown, the speaker bit set (historical polarity, see the store's
// flag table), CLKOUT at its reset frequency and the backlight timer at the
// top table index.
func DefaultSettings() Settings {
	return Settings{
		TunedFrequency:   DefaultTunedFrequency,
		CorrectionPPB:    DefaultCorrectionPPB,
		CalibrationMagic: CalibrationMagic,
		Calibration:      DefaultCalibration(),

		ModemDefIndex:  0,
		SerialFormat:   DefaultSerialFormat(),
		ModemBandwidth: DefaultModemBandwidth,
		AFSKMarkFreq:   DefaultAFSKMarkFreq,
		AFSKSpaceFreq:  DefaultAFSKSpaceFreq,
		ModemBaudrate:  DefaultModemBaudrate,
		ModemRepeat:    DefaultModemRepeat,

		UIConfig: 1<<31 | // show splash
			1<<28 | // speaker bit, set by default
			DefaultClkoutFreq<<4 |
			DefaultBacklightIndex,

		PagerLastAddress:   0,
		PagerIgnoreAddress: 0,

		ToneMix: DefaultToneMix,

		HardwareConfig: 0,
	}
}

// Encode serializes the settings into a fresh payload. Reserved and padding
// bytes are zero.
func (s *Settings) Encode() [PayloadSize]byte {
	var p [PayloadSize]byte

	binary.LittleEndian.PutUint64(p[OffTunedFrequency:], uint64(s.TunedFrequency))
	binary.LittleEndian.PutUint32(p[OffCorrectionPPB:], uint32(s.CorrectionPPB))
	binary.LittleEndian.PutUint32(p[OffCalibrationMagic:], s.CalibrationMagic)
	EncodeCalibration(p[OffCalibration:], s.Calibration)

	binary.LittleEndian.PutUint32(p[OffModemDefIndex:], s.ModemDefIndex)
	p[OffSerialFormat] = s.SerialFormat.DataBits
	p[OffSerialFormat+1] = s.SerialFormat.Parity
	p[OffSerialFormat+2] = s.SerialFormat.StopBits
	p[OffSerialFormat+3] = s.SerialFormat.BitOrder
	binary.LittleEndian.PutUint32(p[OffModemBandwidth:], uint32(s.ModemBandwidth))
	binary.LittleEndian.PutUint32(p[OffAFSKMarkFreq:], uint32(s.AFSKMarkFreq))
	binary.LittleEndian.PutUint32(p[OffAFSKSpaceFreq:], uint32(s.AFSKSpaceFreq))
	binary.LittleEndian.PutUint32(p[OffModemBaudrate:], uint32(s.ModemBaudrate))
	binary.LittleEndian.PutUint32(p[OffModemRepeat:], uint32(s.ModemRepeat))

	binary.LittleEndian.PutUint32(p[OffUIConfig:], s.UIConfig)

	binary.LittleEndian.PutUint32(p[OffPagerLast:], s.PagerLastAddress)
	binary.LittleEndian.PutUint32(p[OffPagerIgnore:], s.PagerIgnoreAddress)

	binary.LittleEndian.PutUint32(p[OffToneMix:], uint32(s.ToneMix))
	binary.LittleEndian.PutUint32(p[OffHardwareConfig:], s.HardwareConfig)

	return p
}

// DecodeSettings reads the typed record back out of a payload.
func DecodeSettings(p *[PayloadSize]byte) Settings {
	return Settings{
		TunedFrequency:   int64(binary.LittleEndian.Uint64(p[OffTunedFrequency:])),
		CorrectionPPB:    int32(binary.LittleEndian.Uint32(p[OffCorrectionPPB:])),
		CalibrationMagic: binary.LittleEndian.Uint32(p[OffCalibrationMagic:]),
		Calibration:      DecodeCalibration(p[OffCalibration:]),

		ModemDefIndex: binary.LittleEndian.Uint32(p[OffModemDefIndex:]),
		SerialFormat: SerialFormat{
			DataBits: p[OffSerialFormat],
			Parity:   p[OffSerialFormat+1],
			StopBits: p[OffSerialFormat+2],
			BitOrder: p[OffSerialFormat+3],
		},
		ModemBandwidth: int32(binary.LittleEndian.Uint32(p[OffModemBandwidth:])),
		AFSKMarkFreq:   int32(binary.LittleEndian.Uint32(p[OffAFSKMarkFreq:])),
		AFSKSpaceFreq:  int32(binary.LittleEndian.Uint32(p[OffAFSKSpaceFreq:])),
		ModemBaudrate:  int32(binary.LittleEndian.Uint32(p[OffModemBaudrate:])),
		ModemRepeat:    int32(binary.LittleEndian.Uint32(p[OffModemRepeat:])),

		UIConfig: binary.LittleEndian.Uint32(p[OffUIConfig:]),

		PagerLastAddress:   binary.LittleEndian.Uint32(p[OffPagerLast:]),
		PagerIgnoreAddress: binary.LittleEndian.Uint32(p[OffPagerIgnore:]),

		ToneMix: int32(binary.LittleEndian.Uint32(p[OffToneMix:])),

		HardwareConfig: binary.LittleEndian.Uint32(p[OffHardwareConfig:]),
	}
}

// EncodeCalibration writes the calibration blob at the start of b as seven
// little-endian int32 words.
func EncodeCalibration(b []byte, c Calibration) {
	vals := [7]int32{c.A, c.B, c.C, c.D, c.E, c.F, c.K}
	for i, v := range vals {
		binary.LittleEndian.PutUint32(b[i*4:], uint32(v))
	}
}

// DecodeCalibration reads the calibration blob from the start of b.
func DecodeCalibration(b []byte) Calibration {
	var vals [7]int32
	for i := range vals {
		vals[i] = int32(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return Calibration{A: vals[0], B: vals[1], C: vals[2], D: vals[3], E: vals[4], F: vals[5], K: vals[6]}
}
