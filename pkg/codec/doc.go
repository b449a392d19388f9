// Package codec defines the binary register image that holds device settings
// and the checksum protocol that decides whether a stored image is trusted.
//
// # Image Format
//
// An image is exactly 256 bytes:
//
//	[Payload(252)][Checksum(4)]
//
// The payload is a 63-word register file holding the settings record at fixed
// little-endian offsets (see layout.go). The trailing word is a CRC-32 over
// the payload. An image is valid iff the stored checksum matches the
// recomputed one; any other relationship means the payload is garbage and
// must be replaced wholesale with defaults.
//
// # Checksum
//
// The check word is a CRC-32 with polynomial 0x04C11DB7, initial register
// 0xFFFFFFFF and final XOR 0xFFFFFFFF, processed one byte at a time MSB-first
// with no reflection. Payload bytes are fed in storage order, so each 32-bit
// register word contributes its bytes low-to-high.
//
// # Layout Discipline
//
// The byte layout is defined once, in layout.go, and all access goes through
// the pure Settings Encode/Decode pair or through the offset constants. No
// struct is ever aliased onto raw memory.
package codec
