// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio via github.com/go-audio/aiff.
//
// Only 16-bit PCM is supported. Samples are exposed as normalized float32
// through the audio.Source interface:
//
//	src, err := aiff.Decoder{}.Decode(file)
package aiff
