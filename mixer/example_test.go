// SPDX-License-Identifier: EPL-2.0

package mixer_test

import (
	"fmt"

	"github.com/mixdown/mixdown/mixer"
)

// Example demonstrates playing two panned sounds and rendering a few frames.
func Example() {
	m, err := mixer.New(4, 1.0)
	if err != nil {
		fmt.Println("create error:", err)
		return
	}
	defer m.Close()

	// One sound hard left, one hard right.
	left, _ := m.Play([]float32{0.5, 0.5}, 1, 0, false)
	right, _ := m.Play([]float32{0.25, 0.25}, 0, 1, false)

	fmt.Println("slots:", left, right)

	out := make([]float32, 2*2)
	if err := m.Render(out, 2); err != nil {
		fmt.Println("render error:", err)
		return
	}

	fmt.Println("frame 0:", out[0], out[1])
	fmt.Println("frame 1:", out[2], out[3])
	// Output:
	// slots: 0 1
	// frame 0: 0.5 0.25
	// frame 1: 0.5 0.25
}

// Example_screenBlend shows the soft-saturating mixing law: two channels at
// 0.5 mix to 0.75, not 1.0.
func Example_screenBlend() {
	m, err := mixer.New(2, 1.0)
	if err != nil {
		fmt.Println("create error:", err)
		return
	}
	defer m.Close()

	m.Play([]float32{0.5}, 1, 1, false)
	m.Play([]float32{0.5}, 1, 1, false)

	out := make([]float32, 2)
	m.Render(out, 1)

	fmt.Println("mixed:", out[0])
	// Output:
	// mixed: 0.75
}
