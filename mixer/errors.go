// SPDX-License-Identifier: EPL-2.0

package mixer

import "errors"

var (
	ErrInvalidChannelCount = errors.New("channel count must be positive")
	ErrNoSamples           = errors.New("no samples to play")
	ErrNoFreeChannel       = errors.New("no free channel")
	ErrInvalidFrameCount   = errors.New("frame count must be non-negative")
	ErrShortOutput         = errors.New("output buffer shorter than 2*frames")
)
