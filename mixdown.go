// SPDX-License-Identifier: EPL-2.0

package mixdown

import (
	"fmt"
	"io"

	"github.com/mixdown/mixdown/audio"
	"github.com/mixdown/mixdown/formats/wav"
	"github.com/mixdown/mixdown/mixer"
	"github.com/mixdown/mixdown/utils"
)

// LoadSound turns any decoded source into a buffer the mixer can play:
// resampled to sampleRate when needed, folded to mono, and read fully into
// memory. bufferSize controls the pipeline read chunk (4096 is a good
// default).
//
// The returned slice is owned by the caller; Play copies it again, so one
// loaded sound can be played on several slots at once.
func LoadSound(src audio.Source, sampleRate int, bufferSize int) ([]float32, error) {
	pipe := src

	if src.SampleRate() != sampleRate {
		res, err := audio.NewResampler(pipe, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		pipe = res
	}

	if pipe.Channels() != 1 {
		pipe = audio.NewDownmixer(pipe)
	}

	samples, err := audio.Collect(pipe, bufferSize)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return samples, nil
}

// MixToWAV renders frames stereo frames from m and writes them to w as a
// 16-bit PCM WAV file at sampleRate. Rendering happens in fixed chunks, so
// long bounces do not hold the mixer lock for the whole duration.
func MixToWAV(w io.Writer, m *mixer.Mixer, sampleRate, frames int) error {
	if frames < 0 {
		return mixer.ErrInvalidFrameCount
	}

	const chunkFrames = 4096

	pcm := make([]int16, 0, frames*2)
	buf := make([]float32, chunkFrames*2)

	for remaining := frames; remaining > 0; {
		n := min(remaining, chunkFrames)

		if err := m.Render(buf[:n*2], n); err != nil {
			return fmt.Errorf("%w", err)
		}
		for _, v := range buf[:n*2] {
			pcm = append(pcm, utils.Float32ToInt16(v))
		}

		remaining -= n
	}

	if err := wav.WriteWAV16(w, sampleRate, 2, pcm); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
