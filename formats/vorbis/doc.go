// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio via github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes natively to float32, so samples pass through without a PCM
// conversion step:
//
//	src, err := vorbis.Decoder{}.Decode(file)
package vorbis
