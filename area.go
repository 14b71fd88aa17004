// Copyright 2024 Topp Roots Lab.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package stability

import "image"

// Area counts the pixels of plane whose intensity is strictly greater
// than the threshold. Note that this counts the bright class, the
// opposite polarity to Binarize; the mismatch is longstanding and is
// kept intact so that new indices stay comparable with existing result
// tables. See DESIGN.md.
func Area(plane *image.Gray, threshold uint8) int {
	n := 0
	b := plane.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if plane.GrayAt(x, y).Y > threshold {
				n++
			}
		}
	}
	return n
}

// MeanArea reduces per-channel areas to a single scalar by averaging
// the counts across planes. thresholds must hold one threshold per
// plane, as produced by Thresholds.
func MeanArea(planes []*image.Gray, thresholds []uint8) float64 {
	if len(planes) == 0 {
		return 0
	}
	sum := 0
	for i, p := range planes {
		sum += Area(p, thresholds[i])
	}
	return float64(sum) / float64(len(planes))
}
