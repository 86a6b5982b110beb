// SPDX-License-Identifier: EPL-2.0

package mixdown_test

import (
	"bytes"
	"fmt"

	"github.com/mixdown/mixdown"
	"github.com/mixdown/mixdown/formats/wav"
	"github.com/mixdown/mixdown/internal/audiotest"
	"github.com/mixdown/mixdown/mixer"
	"github.com/mixdown/mixdown/utils"
)

// Example_loadAndMix runs the full path: prepare a sound for the session
// rate, admit it into the mixer, and render the stereo mix.
func Example_loadAndMix() {
	// A stereo test tone standing in for a decoded file.
	src := audiotest.NewConstantSource(48000, 2, 4, 0.5)

	samples, err := mixdown.LoadSound(src, 48000, 4096)
	if err != nil {
		fmt.Println("load error:", err)
		return
	}

	m, err := mixer.New(8, 1.0)
	if err != nil {
		fmt.Println("create error:", err)
		return
	}
	defer m.Close()

	slot, err := m.Play(samples, 1, 0, false) // hard left
	if err != nil {
		fmt.Println("play error:", err)
		return
	}

	out := make([]float32, 2*2)
	m.Render(out, 2)

	fmt.Println("slot:", slot)
	fmt.Println("loaded samples:", len(samples))
	fmt.Println("frame 0:", out[0], out[1])
	// Output:
	// slot: 0
	// loaded samples: 4
	// frame 0: 0.5 0
}

// Example_mixToWAV bounces a short mix straight to a WAV file in memory.
func Example_mixToWAV() {
	m, err := mixer.New(4, 1.0)
	if err != nil {
		fmt.Println("create error:", err)
		return
	}
	defer m.Close()

	left, right := utils.Pan(0)
	m.Play([]float32{0.5, 0.5, 0.5, 0.5}, left, right, false)

	var file bytes.Buffer
	if err := mixdown.MixToWAV(&file, m, 48000, 4); err != nil {
		fmt.Println("bounce error:", err)
		return
	}

	// 44-byte header + 4 frames * 2 channels * 2 bytes.
	fmt.Println("file bytes:", file.Len())

	// The bounce decodes like any other WAV.
	src, err := wav.Decoder{}.Decode(&file)
	if err != nil {
		fmt.Println("decode error:", err)
		return
	}
	fmt.Println("channels:", src.Channels())
	// Output:
	// file bytes: 60
	// channels: 2
}
