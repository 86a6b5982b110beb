// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer III audio via github.com/hajimehoshi/go-mp3.
//
// The decoder always produces stereo 16-bit PCM, exposed here as normalized
// float32 through the audio.Source interface. Feed it to a Downmixer before
// handing the result to the mixer:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	mono := audio.NewDownmixer(src)
package mp3
