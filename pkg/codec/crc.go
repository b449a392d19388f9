package codec

// Checksum algorithm constants.
const (
	// CRC32Polynomial is the CRC-32 polynomial (0x04C11DB7), applied MSB-first.
	CRC32Polynomial = 0x04C11DB7

	// CRC32InitialValue is the initial CRC register value
	CRC32InitialValue = 0xFFFFFFFF

	// CRC32FinalXOR is XORed into the register after the last byte
	CRC32FinalXOR = 0xFFFFFFFF

	// crc32HighBitMask is the high bit mask for the shift-out test
	crc32HighBitMask = 0x80000000

	bitsPerByte = 8
)

// Checksum computes the check word over a full register payload.
//
// The payload is taken as a fixed-size array so that a buffer of the wrong
// size cannot be passed; there is no runtime length check because there is
// nothing sensible to do on mismatch.
//
// Note: stdlib hash/crc32 only implements reflected CRC variants, so the
// non-reflected form required here is written out bitwise.
func Checksum(payload *[PayloadSize]byte) uint32 {
	return crcUpdate(CRC32InitialValue, payload[:]) ^ CRC32FinalXOR
}

// crcUpdate folds data into the CRC register, MSB-first, one byte at a time.
func crcUpdate(crc uint32, data []byte) uint32 {
	for _, b := range data {
		crc ^= uint32(b) << (32 - bitsPerByte)
		for i := 0; i < bitsPerByte; i++ {
			if crc&crc32HighBitMask != 0 {
				crc = (crc << 1) ^ CRC32Polynomial
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
