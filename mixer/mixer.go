// SPDX-License-Identifier: EPL-2.0

package mixer

import "sync"

// NoChannel is the slot index returned by Play when the sound could not be
// admitted.
const NoChannel = -1

// channel is one playback slot. A slot is free when samples is nil; a free
// slot contributes silence. While active it exclusively owns its sample
// buffer, which is a private copy of what the caller handed to Play.
type channel struct {
	samples   []float32
	pos       int
	leftGain  float32
	rightGain float32
	loop      bool
}

// State is a read-only snapshot of one playback slot, taken under the mixer
// lock. It is safe to keep after the slot has been reused.
type State struct {
	Active    bool
	Position  int
	Length    int
	LeftGain  float32
	RightGain float32
	Loop      bool
}

// Mixer combines concurrently playing mono sounds into one interleaved stereo
// stream. The slot pool is sized once at construction and never grows; Render
// allocates nothing, so it is safe to call from an audio callback.
//
// Play and Render may be called from different goroutines. Slot state is
// guarded by a mutex; both calls are short and never block on anything but
// each other.
type Mixer struct {
	mtx      sync.Mutex
	channels []channel
	gain     float32
}

// New creates a mixer with channelCount playback slots and a global gain
// applied to every channel's output. All slots start free.
func New(channelCount int, gain float32) (*Mixer, error) {
	if channelCount <= 0 {
		return nil, ErrInvalidChannelCount
	}

	return &Mixer{
		channels: make([]channel, channelCount),
		gain:     gain,
	}, nil
}

// ChannelCount returns the fixed number of playback slots.
func (m *Mixer) ChannelCount() int { return len(m.channels) }

// Gain returns the global gain factor.
func (m *Mixer) Gain() float32 {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return m.gain
}

// SetGain replaces the global gain factor. Takes effect on the next frame.
func (m *Mixer) SetGain(gain float32) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.gain = gain
}

// ActiveChannels returns how many slots currently hold a sound.
func (m *Mixer) ActiveChannels() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	active := 0
	for i := range m.channels {
		if m.channels[i].samples != nil {
			active++
		}
	}

	return active
}

// State snapshots slot i. The second return value is false when i is out of
// range.
func (m *Mixer) State(i int) (State, bool) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if i < 0 || i >= len(m.channels) {
		return State{}, false
	}

	ch := &m.channels[i]

	return State{
		Active:    ch.samples != nil,
		Position:  ch.pos,
		Length:    len(ch.samples),
		LeftGain:  ch.leftGain,
		RightGain: ch.rightGain,
		Loop:      ch.loop,
	}, true
}

// Play admits a mono sound into the first free slot, scanning slots in index
// order so the lowest free index always wins. The samples are copied; the
// caller may reuse its buffer immediately. leftGain and rightGain position
// the sound in the stereo field, loop makes it repeat until the mixer is
// closed.
//
// Returns the slot index, or (NoChannel, ErrNoFreeChannel) when every slot is
// busy — the sound is dropped, there is no queueing. An empty samples slice
// returns (NoChannel, ErrNoSamples).
func (m *Mixer) Play(samples []float32, leftGain, rightGain float32, loop bool) (int, error) {
	if len(samples) == 0 {
		return NoChannel, ErrNoSamples
	}

	m.mtx.Lock()
	defer m.mtx.Unlock()

	for i := range m.channels {
		ch := &m.channels[i]
		if ch.samples != nil {
			continue
		}

		owned := make([]float32, len(samples))
		copy(owned, samples)

		*ch = channel{
			samples:   owned,
			leftGain:  leftGain,
			rightGain: rightGain,
			loop:      loop,
		}

		return i, nil
	}

	return NoChannel, ErrNoFreeChannel
}

// Render writes exactly frames interleaved stereo frames (left, right, left,
// right, ...) into dst, fully overwriting the first 2*frames values. dst must
// hold at least 2*frames floats.
//
// Per frame, every active channel's current sample is scaled by its gain pair
// and the global gain, then folded into the running left/right totals with
// the screen-blend law
//
//	mixed = a + b - a*b
//
// which soft-limits simultaneous loud channels toward 1.0 instead of clipping
// like plain summation. A non-looping channel that exhausted its samples on
// an earlier frame is released during the scan, one frame after its last
// sample was mixed; its slot is free for Play from then on.
func (m *Mixer) Render(dst []float32, frames int) error {
	if frames < 0 {
		return ErrInvalidFrameCount
	}
	if len(dst) < frames*2 {
		return ErrShortOutput
	}

	m.mtx.Lock()
	defer m.mtx.Unlock()

	for frame := 0; frame < frames; frame++ {
		var left, right float32

		for i := range m.channels {
			ch := &m.channels[i]
			if ch.samples == nil {
				continue
			}

			if ch.pos >= len(ch.samples) {
				// Ran out on an earlier frame; release the slot.
				*ch = channel{}
				continue
			}

			sample := ch.samples[ch.pos]
			l := sample * ch.leftGain * m.gain
			r := sample * ch.rightGain * m.gain

			left = left + l - left*l
			right = right + r - right*r

			ch.pos++
			if ch.loop && ch.pos >= len(ch.samples) {
				ch.pos = 0
			}
		}

		dst[frame*2] = left
		dst[frame*2+1] = right
	}

	return nil
}

// Close releases every slot's sample buffer. The mixer remains usable but
// silent; any looping sounds are cut off.
func (m *Mixer) Close() error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	for i := range m.channels {
		m.channels[i] = channel{}
	}

	return nil
}
