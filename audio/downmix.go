// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Downmixer folds a multi-channel Source into mono by averaging the channels
// of every frame. A mono source passes through untouched.
type Downmixer struct {
	src Source
	tmp []float32
}

func NewDownmixer(src Source) *Downmixer {
	return &Downmixer{src: src}
}

func (d *Downmixer) SampleRate() int { return d.src.SampleRate() }
func (d *Downmixer) Channels() int   { return 1 }
func (d *Downmixer) BufSize() int    { return d.src.BufSize() }

func (d *Downmixer) Close() error {
	if err := d.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with one mono sample per source frame.
func (d *Downmixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := d.src.Channels()
	if channels == 1 {
		return d.src.ReadSamples(dst)
	}

	need := len(dst) * channels
	if cap(d.tmp) < need {
		d.tmp = make([]float32, need)
	}

	n, err := d.src.ReadSamples(d.tmp[:need])
	if n == 0 {
		return 0, err
	}

	frames := n / channels
	scale := 1 / float32(channels)

	if channels == 2 {
		// Stereo fast path.
		for f := 0; f < frames; f++ {
			dst[f] = (d.tmp[f*2] + d.tmp[f*2+1]) * 0.5
		}
		return frames, err
	}

	for f := 0; f < frames; f++ {
		var sum float32
		base := f * channels
		for c := 0; c < channels; c++ {
			sum += d.tmp[base+c]
		}
		dst[f] = sum * scale
	}

	return frames, err
}
