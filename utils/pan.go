// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Pan converts a stereo position into a constant-power gain pair for the
// mixer. p ranges from -1 (hard left) through 0 (center) to +1 (hard right)
// and is clamped to that range.
//
// Constant-power panning keeps perceived loudness steady as a sound moves
// across the field: at center both gains are cos(pi/4) ~ 0.707 rather than
// 0.5, so left^2 + right^2 == 1 everywhere.
func Pan(p float32) (left, right float32) {
	if p < -1 {
		p = -1
	} else if p > 1 {
		p = 1
	}

	angle := (float64(p) + 1) * math.Pi / 4

	return float32(math.Cos(angle)), float32(math.Sin(angle))
}
