package codec

import (
	"encoding/binary"
	"fmt"
)

// Image is one full backing record: the register payload plus its check word.
// It is the unit of trust: the payload is either adopted whole or discarded
// whole; there is no partial-field recovery.
type Image struct {
	Payload  [PayloadSize]byte
	Checksum uint32
}

// NewDefaultImage builds an image holding the compiled-in defaults, sealed so
// that IsValid reports true on it immediately.
func NewDefaultImage() *Image {
	s := DefaultSettings()
	im := &Image{Payload: s.Encode()}
	im.Seal()
	return im
}

// IsValid recomputes the checksum over the payload and compares it to the
// stored check word.
//
// A corruption that happens to collide with the CRC is accepted; that false
// negative is inherent to a 32-bit check and is a documented limitation.
func (im *Image) IsValid() bool {
	return Checksum(&im.Payload) == im.Checksum
}

// Seal recomputes and stores the check word, making the image valid for its
// current payload.
func (im *Image) Seal() {
	im.Checksum = Checksum(&im.Payload)
}

// Settings decodes the typed record from the payload.
func (im *Image) Settings() Settings {
	return DecodeSettings(&im.Payload)
}

// MarshalBinary renders the image in its on-device form: payload bytes
// followed by the little-endian check word.
func (im *Image) MarshalBinary() ([]byte, error) {
	buf := make([]byte, ImageSize)
	copy(buf, im.Payload[:])
	binary.LittleEndian.PutUint32(buf[PayloadSize:], im.Checksum)
	return buf, nil
}

// UnmarshalBinary parses an image from its on-device form. The input must be
// exactly ImageSize bytes; anything else is a caller bug, not corruption.
func (im *Image) UnmarshalBinary(data []byte) error {
	if len(data) != ImageSize {
		return fmt.Errorf("image must be %d bytes, got %d", ImageSize, len(data))
	}
	copy(im.Payload[:], data[:PayloadSize])
	im.Checksum = binary.LittleEndian.Uint32(data[PayloadSize:])
	return nil
}
