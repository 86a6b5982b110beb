// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Collect drains src into memory and returns every sample it produced.
// bufferSize controls the read chunk; values below 1 fall back to 4096.
//
// The returned slice is exactly what a mixer expects to be handed for
// playback once the source is mono.
func Collect(src Source, bufferSize int) ([]float32, error) {
	if bufferSize < 1 {
		bufferSize = 4096
	}

	var samples []float32
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			return samples, nil
		}
		if err != nil {
			return samples, fmt.Errorf("%w", err)
		}
	}
}
