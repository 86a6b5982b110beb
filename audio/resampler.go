// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/mixdown/mixdown/utils"
)

// Resampler converts src to a different sample rate using Catmull-Rom cubic
// interpolation. It works on interleaved samples and preserves the channel
// count.
//
// The interpolation window holds four consecutive frames; the stream edges
// are padded by repeating the first and last real frame, so short sources
// resample without warm-up artifacts.
type Resampler struct {
	src      Source
	channels int
	dstRate  int

	// step is how far the read position moves through the source per output
	// frame; frac is the fractional position between window frames 1 and 2.
	step float64
	frac float64

	// window holds 4 interleaved frames: t-1, t0, t+1, t+2. Output frames
	// interpolate between t0 and t+1.
	window   []float32
	frameBuf []float32
	primed   bool
	pad      int
	eof      bool
	readErr  error
}

func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 {
		return nil, ErrInvalidRate
	}

	channels := src.Channels()

	return &Resampler{
		src:      src,
		channels: channels,
		dstRate:  dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
		window:   make([]float32, 4*channels),
		frameBuf: make([]float32, channels),
	}, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// fill loads one source frame into window slot i, or repeats the previous
// slot once the source is exhausted. Each repeated frame counts as padding;
// the stream is over when the padding reaches slot 1.
func (r *Resampler) fill(slot int) {
	dst := r.window[slot*r.channels : (slot+1)*r.channels]

	if !r.eof {
		n, err := r.src.ReadSamples(r.frameBuf)
		if n >= r.channels {
			copy(dst, r.frameBuf[:r.channels])
			if err == io.EOF {
				r.eof = true
			}
			return
		}
		if err != nil && err != io.EOF {
			r.readErr = err
		}
		r.eof = true
	}

	copy(dst, r.window[(slot-1)*r.channels:slot*r.channels])
	r.pad++
}

func (r *Resampler) prime() error {
	n, err := r.src.ReadSamples(r.frameBuf)
	if n < r.channels {
		if err == nil || err == io.EOF {
			return io.EOF
		}
		return fmt.Errorf("%w", err)
	}
	if err == io.EOF {
		r.eof = true
	}

	// Pad the leading edge by doubling the first frame.
	copy(r.window[:r.channels], r.frameBuf[:r.channels])
	copy(r.window[r.channels:2*r.channels], r.frameBuf[:r.channels])

	r.fill(2)
	r.fill(3)
	r.primed = true

	return nil
}

// advance shifts the window one source frame forward.
func (r *Resampler) advance() {
	copy(r.window, r.window[r.channels:])
	r.fill(3)
}

// ReadSamples produces samples at the destination rate. dst length must be a
// multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		for r.frac >= 1 {
			r.frac--
			r.advance()
		}

		if r.readErr != nil {
			return written * r.channels, fmt.Errorf("%w", r.readErr)
		}
		if r.pad >= 3 {
			// Interpolation window moved past the last real frame.
			return written * r.channels, io.EOF
		}

		alpha := float32(r.frac)
		for c := 0; c < r.channels; c++ {
			dst[written*r.channels+c] = utils.CubicInterpolate(
				r.window[c],
				r.window[r.channels+c],
				r.window[2*r.channels+c],
				r.window[3*r.channels+c],
				alpha,
			)
		}

		written++
		r.frac += r.step
	}

	return written * r.channels, nil
}
