// Copyright 2024 Topp Roots Lab.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package stability

import (
	"image"
	"image/color"
	"testing"
)

func TestBinarizePolarity(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 1))
	for i, v := range []uint8{10, 100, 101, 255} {
		img.SetGray(i, 0, color.Gray{v})
	}

	out := Binarize(img, 100)

	// at or below the threshold is soil (black); above is background
	expected := []uint8{0, 0, 255, 255}
	for i, want := range expected {
		if got := out.GrayAt(i, 0).Y; got != want {
			t.Errorf("Pixel %d binarized to %d, expected %d", i, got, want)
		}
	}
}

func TestBinarizeIdempotent(t *testing.T) {
	img := grayImage(10, 10, 50, 5, 200)
	for _, threshold := range []uint8{0, 50, 100, 254} {
		once := Binarize(img, threshold)
		twice := Binarize(once, threshold)
		if !imgsequal(once, twice) {
			t.Errorf("Binarize not idempotent at threshold %d", threshold)
		}
	}
}
