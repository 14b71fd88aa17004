// Copyright 2024 Topp Roots Lab.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package stability

import (
	"image"
	"image/color"
	"testing"
)

func TestOtsuBimodal(t *testing.T) {
	cases := []struct {
		name   string
		img    *image.Gray
		minexp uint8
		maxexp uint8
	}{
		{"equalclasses", grayImage(10, 10, 200, 7, 50), 50, 199},
		{"smallblock", grayImage(10, 10, 50, 3, 200), 50, 199},
		{"adjacent", grayImage(4, 4, 100, 2, 101), 100, 100},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Otsu(c.img)
			if got < c.minexp || got > c.maxexp {
				t.Errorf("Threshold %d outside expected range [%d, %d]", got, c.minexp, c.maxexp)
			}
			if again := Otsu(c.img); again != got {
				t.Errorf("Threshold not deterministic: %d then %d", got, again)
			}
		})
	}
}

func TestOtsuSingleIntensity(t *testing.T) {
	for _, v := range []uint8{0, 77, 255} {
		img := grayImage(8, 8, v, 0, 0)
		if got := Otsu(img); got != v {
			t.Errorf("Single intensity %d returned threshold %d", v, got)
		}
	}
}

func TestOtsuWithinIntensityRange(t *testing.T) {
	// a full gradient plane, one column per intensity level
	img := image.NewGray(image.Rect(0, 0, 256, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 256; x++ {
			img.SetGray(x, y, color.Gray{uint8(x)})
		}
	}
	got := Otsu(img)
	if got < 1 || got > 254 {
		t.Errorf("Gradient threshold %d not strictly inside the intensity range", got)
	}
}

func TestThresholds(t *testing.T) {
	planes := []*image.Gray{
		grayImage(8, 8, 10, 0, 0),
		grayImage(10, 10, 50, 5, 200),
	}
	ts := Thresholds(planes)
	if len(ts) != 2 {
		t.Fatalf("Expected 2 thresholds, got %d", len(ts))
	}
	if ts[0] != 10 {
		t.Errorf("Uniform plane threshold was %d, expected 10", ts[0])
	}
	if ts[1] < 50 || ts[1] >= 200 {
		t.Errorf("Bimodal plane threshold %d outside [50, 200)", ts[1])
	}
}
