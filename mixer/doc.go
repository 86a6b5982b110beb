// SPDX-License-Identifier: EPL-2.0

// Package mixer combines multiple mono sounds into one interleaved stereo
// stream.
//
// A Mixer owns a fixed pool of playback slots. A sound is admitted with Play,
// which copies the caller's samples into the first free slot, and the mix is
// produced with Render, which walks every active slot once per output frame.
// There is no stop operation: a sound ends by running out of samples, or
// never, when it loops.
//
// # Quick Start
//
//	m, err := mixer.New(8, 1.0)
//	if err != nil {
//	    return err
//	}
//	defer m.Close()
//
//	slot, err := m.Play(samples, 0.7, 0.7, false)
//	if err != nil {
//	    return err // all slots busy, sound dropped
//	}
//	_ = slot
//
//	out := make([]float32, 2*512)
//	m.Render(out, 512) // 512 stereo frames
//
// # Mixing Law
//
// Channels are combined with the screen-blend operator rather than summed:
//
//	mixed = a + b - a*b
//
// For inputs in [0, 1] the result approaches 1.0 asymptotically as channels
// stack up, so many simultaneous sounds saturate softly instead of clipping.
// The operator is commutative and associative, which makes the mix
// independent of slot order.
//
// # Slot Lifecycle
//
// A slot is free when it holds no sample buffer and contributes silence.
// Play moves it to active; a non-looping sound plays to its end and the slot
// is released on the following Render frame, after which it can be reused.
// Looping sounds wrap their cursor back to zero and stay active until Close.
//
// # Concurrency
//
// All methods are safe for concurrent use. The intended shape is one
// goroutine calling Render from the audio callback and another issuing Play;
// slot state is protected by a single mutex and neither call blocks on
// anything else.
//
// # Failure Modes
//
// There are only two: construction with a non-positive slot count, and
// admission when every slot is busy. Both are reported as sentinel errors;
// see errors.go. Render never fails once handed a large enough buffer.
package mixer
