// SPDX-License-Identifier: EPL-2.0

// Package mixdown mixes concurrently playing sounds into one stereo stream.
//
// The core lives in the mixer subpackage: a fixed pool of playback slots,
// per-slot panning gain and looping, a global gain stage, and a
// soft-saturating screen-blend combination law. This root package ties the
// mixer to the decoding pipeline so real audio files become playable sounds.
//
// # Supported Formats
//
// The formats subpackages decode:
//   - WAV (PCM) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Quick Start
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//
//	// Bring the file to the session rate as a mono buffer.
//	samples, err := mixdown.LoadSound(src, 48000, 4096)
//	if err != nil {
//	    return err
//	}
//
//	m, err := mixer.New(8, 1.0)
//	if err != nil {
//	    return err
//	}
//	defer m.Close()
//
//	left, right := utils.Pan(-0.5) // slightly left of center
//	m.Play(samples, left, right, false)
//
//	out := make([]float32, 2*512)
//	m.Render(out, 512)
//
// The caller owns the output buffer and any device integration; Render can
// be invoked directly from an audio callback since it does not allocate.
//
// # Composing With the Pipeline
//
// Stream makes a mixer look like any other audio.Source, so its output can
// be post-processed or collected like a decoded file. MixToWAV renders a
// fixed number of frames straight to a WAV file, which is handy for bouncing
// a mix offline.
package mixdown
