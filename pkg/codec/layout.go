package codec

// Image dimensions. The payload is a 63-word register file; the 64th word is
// the check value.
const (
	PayloadWords = 63
	PayloadSize  = PayloadWords * 4
	ImageSize    = PayloadSize + 4
)

// Byte offsets of each settings field within the payload. All multi-byte
// fields are little-endian. This table is the single definition of the
// record layout; Encode, Decode and the store's field accessors all read it.
const (
	OffTunedFrequency   = 0  // int64
	OffCorrectionPPB    = 8  // int32
	OffCalibrationMagic = 12 // uint32
	OffCalibration      = 16 // 7 x int32
	OffModemDefIndex    = 44 // uint32
	OffSerialFormat     = 48 // 4 x uint8
	OffModemBandwidth   = 52 // int32
	OffAFSKMarkFreq     = 56 // int32
	OffAFSKSpaceFreq    = 60 // int32
	OffModemBaudrate    = 64 // int32
	OffModemRepeat      = 68 // int32
	offReservedPlaydead = 72 // 3 x uint32, dead fields kept for layout parity
	OffUIConfig         = 84 // uint32, bit-packed flag register
	OffPagerLast        = 88 // uint32
	OffPagerIgnore      = 92 // uint32
	OffToneMix          = 96 // int32
	OffHardwareConfig   = 100 // uint32, low 8 bits meaningful

	settingsEnd = 104 // bytes 104..251 are zero padding
)

// CalibrationMagic marks the touch-calibration blob as having been written
// by this module. Anything else in the magic word means the blob is
// uninitialized or stale and defaults must be installed.
const CalibrationMagic = 0x074AF82F
