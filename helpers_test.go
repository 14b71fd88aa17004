// Copyright 2024 Topp Roots Lab.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package stability

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// grayImage builds a w x h plane filled with bg, with a blocksize x
// blocksize square of fg pixels in the top left corner. A blocksize
// of 0 gives a uniform plane.
func grayImage(w, h int, bg uint8, blocksize int, fg uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := bg
			if x < blocksize && y < blocksize {
				v = fg
			}
			img.SetGray(x, y, color.Gray{v})
		}
	}
	return img
}

func imgsequal(img1 *image.Gray, img2 *image.Gray) bool {
	b := img1.Bounds()
	if !b.Eq(img2.Bounds()) {
		return false
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img1.GrayAt(x, y) != img2.GrayAt(x, y) {
				return false
			}
		}
	}
	return true
}

// writePNG encodes img to dir/name and returns the full path.
func writePNG(t *testing.T, dir string, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Could not create file %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Could not encode %s: %v", path, err)
	}
	return path
}

// writeSample creates a sample folder under parent holding a
// conventionally named initial/final photograph pair, 10x10 pixels
// with soil blocks of the given sizes.
func writeSample(t *testing.T, parent string, name string, initialBlock int, finalBlock int) string {
	t.Helper()
	folder := filepath.Join(parent, name)
	if err := os.Mkdir(folder, 0700); err != nil {
		t.Fatalf("Could not create sample folder %s: %v", folder, err)
	}
	writePNG(t, folder, name+"_0_c1_p1.png", grayImage(10, 10, 50, initialBlock, 200))
	writePNG(t, folder, name+"_601_c1_p1.png", grayImage(10, 10, 50, finalBlock, 200))
	return folder
}
