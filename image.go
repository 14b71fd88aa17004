// Copyright 2024 Topp Roots Lab.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package stability

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// DecodeError is returned when an image file cannot be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("could not decode image %s: %v", e.Path, e.Err)
}

func (e DecodeError) Unwrap() error {
	return e.Err
}

// LoadImage decodes the image file at path. JPEG, PNG, TIFF and BMP
// are recognised.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, DecodeError{Path: path, Err: err}
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, DecodeError{Path: path, Err: err}
	}
	return img, nil
}

// Grayscale reduces img to a single intensity plane using the standard
// luminance weighting.
func Grayscale(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray
}

// Planes splits img into one grayscale plane per colour channel, in
// red, green, blue order. Every thresholding and measuring operation
// in this package works on a single plane at a time; cross-channel
// mixing only happens in the named reductions (Thresholds, MeanArea).
func Planes(img image.Image) []*image.Gray {
	b := img.Bounds()
	red := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	green := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	blue := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			red.SetGray(x-b.Min.X, y-b.Min.Y, color.Gray{uint8(r >> 8)})
			green.SetGray(x-b.Min.X, y-b.Min.Y, color.Gray{uint8(g >> 8)})
			blue.SetGray(x-b.Min.X, y-b.Min.Y, color.Gray{uint8(bl >> 8)})
		}
	}
	return []*image.Gray{red, green, blue}
}
