// SPDX-License-Identifier: EPL-2.0

package mixdown

import (
	"fmt"

	"github.com/mixdown/mixdown/mixer"
)

// Stream adapts a Mixer to the audio.Source interface so the live mix can be
// consumed like any decoded stream. A mixer never runs out: with no active
// slots it produces silence, so ReadSamples never returns io.EOF.
type Stream struct {
	m    *mixer.Mixer
	rate int
}

func NewStream(m *mixer.Mixer, sampleRate int) *Stream {
	return &Stream{m: m, rate: sampleRate}
}

func (s *Stream) SampleRate() int { return s.rate }
func (s *Stream) Channels() int   { return 2 }
func (s *Stream) BufSize() int    { return 4096 }

// Close releases the underlying mixer's slots.
func (s *Stream) Close() error {
	if err := s.m.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples renders as many whole stereo frames as fit in dst. A trailing
// odd float is left untouched.
func (s *Stream) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / 2

	if err := s.m.Render(dst[:frames*2], frames); err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	return frames * 2, nil
}
