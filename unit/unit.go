// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit converts device independent pixels to device pixels.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device. Layout passes run in dps; pixels, or px,
are only used to rasterize their results.
*/
package unit

import (
	"gioui.org/sizemod/f32"
)

// Metric converts dp values to pixels.
type Metric struct {
	// PxPerDp is the device dependent density of dp values.
	// Zero is treated as 1.
	PxPerDp float32
}

// Size converts a size in dp to pixels.
func (m Metric) Size(dp f32.Point) f32.Point {
	return dp.Mul(m.density())
}

func (m Metric) density() float32 {
	if m.PxPerDp == 0 {
		return 1
	}
	return m.PxPerDp
}
