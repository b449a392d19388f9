package codec

import "testing"

func TestChecksum_KnownVector(t *testing.T) {
	// CRC-32/BZIP2 check value for "123456789": same polynomial, init and
	// final XOR as the register check word, MSB-first, no reflection.
	got := crcUpdate(CRC32InitialValue, []byte("123456789")) ^ CRC32FinalXOR
	if got != 0xFC891918 {
		t.Errorf("check value mismatch: got 0x%08X, want 0xFC891918", got)
	}
}

func TestChecksum_Deterministic(t *testing.T) {
	var payload [PayloadSize]byte
	for i := range payload {
		payload[i] = byte(i * 7)
	}

	first := Checksum(&payload)
	second := Checksum(&payload)
	if first != second {
		t.Errorf("checksum not deterministic: 0x%08X vs 0x%08X", first, second)
	}
}

func TestChecksum_SensitiveToEveryByte(t *testing.T) {
	var payload [PayloadSize]byte
	base := Checksum(&payload)

	for i := 0; i < PayloadSize; i++ {
		flipped := payload
		flipped[i] ^= 0x01
		if Checksum(&flipped) == base {
			t.Errorf("single-bit flip at byte %d not detected", i)
		}
	}
}

func TestChecksum_ZeroPayloadIsNonZero(t *testing.T) {
	// A freshly zeroed backing region must not accidentally validate: the
	// check word of an all-zero payload is distinct from zero because of the
	// initial register value and final XOR.
	var payload [PayloadSize]byte
	if Checksum(&payload) == 0 {
		t.Error("all-zero payload produced zero checksum; cold-start garbage would validate")
	}
}
