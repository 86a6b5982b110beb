// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

// fakeMP3 serves canned 16-bit PCM bytes like gomp3.Decoder would.
type fakeMP3 struct {
	data []byte
	pos  int
	rate int
}

func (f *fakeMP3) SampleRate() int { return f.rate }

func (f *fakeMP3) Read(p []byte) (int, error) {
	if f.pos >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func pcmBytes(samples ...int16) []byte {
	var buf bytes.Buffer
	for _, s := range samples {
		binary.Write(&buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &fakeMP3{data: pcmBytes(16384, -16384, 8192, 0), rate: 44100},
		sampleRate: 44100,
	}

	if s.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", s.Channels())
	}
	if s.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", s.SampleRate())
	}

	buf := make([]float32, 4)
	n, err := s.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}

	want := []float32{0.5, -0.5, 0.25, 0}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &fakeMP3{data: pcmBytes(16384), rate: 44100},
		sampleRate: 44100,
	}

	buf := make([]float32, 4)
	if n, _ := s.ReadSamples(buf); n != 1 {
		t.Fatalf("ReadSamples() n = %d, want 1", n)
	}

	n, err := s.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestDecoder_InvalidData(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("not an mp3 frame"))); err == nil {
		t.Error("Decode(garbage) error = nil, want error")
	}
}
