// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives that feed the mixer.
//
// This package contains the building blocks for turning decoded audio into
// mixer-playable mono buffers:
//   - Source interface for audio input
//   - Resampler for sample rate conversion
//   - Downmixer for folding multi-channel audio to mono
//   - Collect for draining a stream into memory
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All decoders and processors implement this interface, so they chain
// together into pipelines.
//
// # Preparing Mixer Input
//
// The mixer plays mono float32 buffers at a single session rate. A decoded
// file of any rate and channel layout becomes one with:
//
//	res, _ := audio.NewResampler(source, 48000)
//	mono := audio.NewDownmixer(res)
//	samples, err := audio.Collect(mono, 4096)
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// # Error Handling
//
// Processing functions return io.EOF when no more data is available. Other
// errors indicate problems with the source:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // Process n samples from buf
//	}
package audio
