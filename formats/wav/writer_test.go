package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestWriteWAV16_Header(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := WriteWAV16(&out, 48000, 2, []int16{1, 2, 3, 4}); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	raw := out.Bytes()
	if len(raw) != 44+8 {
		t.Fatalf("file size = %d, want 52", len(raw))
	}

	if string(raw[0:4]) != "RIFF" || string(raw[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE markers")
	}
	if got := binary.LittleEndian.Uint16(raw[22:24]); got != 2 {
		t.Errorf("channel count = %d, want 2", got)
	}
	if got := binary.LittleEndian.Uint32(raw[24:28]); got != 48000 {
		t.Errorf("sample rate = %d, want 48000", got)
	}
	if got := binary.LittleEndian.Uint16(raw[34:36]); got != 16 {
		t.Errorf("bits per sample = %d, want 16", got)
	}
	if got := binary.LittleEndian.Uint32(raw[40:44]); got != 8 {
		t.Errorf("data size = %d, want 8", got)
	}

	// First sample, little endian.
	if got := binary.LittleEndian.Uint16(raw[44:46]); got != 1 {
		t.Errorf("first sample = %d, want 1", got)
	}
}

func TestWriteWAV16_InvalidChannels(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := WriteWAV16(&out, 48000, 0, nil); !errors.Is(err, ErrInvalidChannelCount) {
		t.Errorf("WriteWAV16(channels=0) error = %v, want ErrInvalidChannelCount", err)
	}
}

func TestWriteWAV16_Empty(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := WriteWAV16(&out, 8000, 1, nil); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
	if out.Len() != 44 {
		t.Errorf("empty file size = %d, want 44 (header only)", out.Len())
	}
}

func TestWriteWAV16_LargePayload(t *testing.T) {
	t.Parallel()

	// Crosses the internal chunking boundary.
	samples := make([]int16, 10000)
	for i := range samples {
		samples[i] = int16(i)
	}

	var out bytes.Buffer
	if err := WriteWAV16(&out, 8000, 1, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
	if out.Len() != 44+20000 {
		t.Errorf("file size = %d, want %d", out.Len(), 44+20000)
	}

	raw := out.Bytes()
	last := binary.LittleEndian.Uint16(raw[len(raw)-2:])
	if int16(last) != 9999 {
		t.Errorf("last sample = %d, want 9999", int16(last))
	}
}
