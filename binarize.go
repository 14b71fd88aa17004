// Copyright 2024 Topp Roots Lab.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package stability

import (
	"image"
	"image/color"
)

// Binarize classifies every pixel of plane as soil or background.
// Soil is the dark class: pixels at or below the threshold come out
// black (0), everything brighter comes out white (255). Submerged
// water and the dish background land in the bright class. The
// polarity must not be flipped; doing so inverts every downstream
// stability index. Reapplying Binarize with the same threshold is a
// no-op on an already binarized plane.
func Binarize(plane *image.Gray, threshold uint8) *image.Gray {
	b := plane.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if plane.GrayAt(x, y).Y <= threshold {
				out.SetGray(x-b.Min.X, y-b.Min.Y, color.Gray{0})
			} else {
				out.SetGray(x-b.Min.X, y-b.Min.Y, color.Gray{255})
			}
		}
	}
	return out
}
