package codec

import (
	"bytes"
	"testing"
)

func TestNewDefaultImage_IsValid(t *testing.T) {
	im := NewDefaultImage()
	if !im.IsValid() {
		t.Fatal("default image must validate without a prior Seal call")
	}

	s := im.Settings()
	if s.TunedFrequency != DefaultTunedFrequency {
		t.Errorf("default tuned frequency: got %d, want %d", s.TunedFrequency, int64(DefaultTunedFrequency))
	}
	if s.CorrectionPPB != 0 {
		t.Errorf("default correction: got %d, want 0", s.CorrectionPPB)
	}
	if s.ModemBaudrate != DefaultModemBaudrate {
		t.Errorf("default baudrate: got %d, want %d", s.ModemBaudrate, DefaultModemBaudrate)
	}
	if s.CalibrationMagic != CalibrationMagic {
		t.Errorf("default calibration magic: got 0x%08X, want 0x%08X", s.CalibrationMagic, uint32(CalibrationMagic))
	}
}

func TestImage_PayloadFlipInvalidates(t *testing.T) {
	im := NewDefaultImage()

	for _, off := range []int{0, OffCorrectionPPB, OffUIConfig, PayloadSize - 1} {
		corrupted := *im
		corrupted.Payload[off] ^= 0x80
		if corrupted.IsValid() {
			t.Errorf("bit flip in payload byte %d went undetected", off)
		}
	}
}

func TestImage_ChecksumFlipInvalidates(t *testing.T) {
	im := NewDefaultImage()

	corrupted := *im
	corrupted.Checksum ^= 1
	if corrupted.IsValid() {
		t.Error("bit flip in check word went undetected")
	}
}

func TestImage_SealRepairsValidity(t *testing.T) {
	im := NewDefaultImage()
	im.Payload[OffToneMix] = 42
	if im.IsValid() {
		t.Fatal("mutated image should not validate before Seal")
	}

	im.Seal()
	if !im.IsValid() {
		t.Error("sealed image must validate")
	}
}

func TestImage_MarshalRoundTrip(t *testing.T) {
	im := NewDefaultImage()

	data, err := im.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	if len(data) != ImageSize {
		t.Fatalf("marshaled size: got %d, want %d", len(data), ImageSize)
	}

	var back Image
	if err := back.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}

	if !bytes.Equal(back.Payload[:], im.Payload[:]) {
		t.Error("payload not preserved through marshal round trip")
	}
	if back.Checksum != im.Checksum {
		t.Errorf("check word not preserved: got 0x%08X, want 0x%08X", back.Checksum, im.Checksum)
	}
}

func TestImage_UnmarshalRejectsWrongSize(t *testing.T) {
	var im Image
	for _, n := range []int{0, 1, PayloadSize, ImageSize - 1, ImageSize + 1} {
		if err := im.UnmarshalBinary(make([]byte, n)); err == nil {
			t.Errorf("expected error for %d-byte input", n)
		}
	}
}
