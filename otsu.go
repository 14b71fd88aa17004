// Copyright 2024 Topp Roots Lab.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package stability

import "image"

// Otsu selects a binarization threshold for one intensity plane using
// Otsu's method: the returned level t maximises the between-class
// variance of the two pixel populations {<= t} and {> t} over the
// 256 bin histogram, which is equivalent to minimising the intensity
// variance within the classes. Ties pick the lowest level, so the
// result is deterministic for identical pixel data.
//
// A plane containing a single intensity has no class boundary; that
// intensity itself is returned.
func Otsu(plane *image.Gray) uint8 {
	var hist [256]int
	b := plane.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			hist[plane.GrayAt(x, y).Y]++
		}
	}

	lo, hi := -1, 0
	total := 0
	for i, n := range hist {
		if n == 0 {
			continue
		}
		if lo == -1 {
			lo = i
		}
		hi = i
		total += n
	}
	if lo == -1 || lo == hi {
		// empty or single-intensity plane
		if lo == -1 {
			return 0
		}
		return uint8(lo)
	}

	sum := 0.0
	for i, n := range hist {
		sum += float64(i) * float64(n)
	}

	sumB := 0.0
	wB := 0
	best := lo
	maxVariance := 0.0
	for t := lo; t < hi; t++ {
		wB += hist[t]
		if wB == 0 {
			continue
		}
		wF := total - wB
		if wF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		mB := sumB / float64(wB)
		mF := (sum - sumB) / float64(wF)
		variance := float64(wB) * float64(wF) * (mB - mF) * (mB - mF)
		if variance > maxVariance {
			maxVariance = variance
			best = t
		}
	}
	return uint8(best)
}

// Thresholds maps Otsu across a set of channel planes, returning one
// threshold per plane. Each channel is thresholded independently.
func Thresholds(planes []*image.Gray) []uint8 {
	ts := make([]uint8, len(planes))
	for i, p := range planes {
		ts[i] = Otsu(p)
	}
	return ts
}
