// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and writes WAV (RIFF) PCM audio.
//
// Decoding is backed by github.com/go-audio/wav and accepts 8, 16, 24 and
// 32-bit PCM with any channel count; samples come out as normalized float32
// through the audio.Source interface:
//
//	src, err := wav.Decoder{}.Decode(file)
//
// WriteWAV16 produces canonical 16-bit PCM files and takes a channel count,
// so both mono source material and the mixer's interleaved stereo renders
// can be written:
//
//	wav.WriteWAV16(out, 48000, 2, pcm)
package wav
