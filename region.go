// Copyright 2024 Topp Roots Lab.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package stability

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// CropRect is a fixed crop window in pixel coordinates, tuned once per
// camera rig. The ranges are half open: pixels with X0 <= x < X1 and
// Y0 <= y < Y1 are kept. The zero value means no rectangular crop.
type CropRect struct {
	X0, X1, Y0, Y1 int
}

// Empty reports whether r is the zero value, ie no crop is configured.
func (r CropRect) Empty() bool {
	return r == CropRect{}
}

func (r CropRect) String() string {
	return fmt.Sprintf("x[%d:%d] y[%d:%d]", r.X0, r.X1, r.Y0, r.Y1)
}

// CropBoundsError is returned when a configured crop window or circle
// diameter does not fit inside the image it is applied to. As crop
// settings are fixed per rig this usually means a photograph from a
// different camera setup sneaked into a batch.
type CropBoundsError struct {
	Op     string // "rectangle" or "circle"
	Req    string // requested region
	Bounds image.Rectangle
}

func (e CropBoundsError) Error() string {
	return fmt.Sprintf("%s crop %s exceeds image bounds %v", e.Op, e.Req, e.Bounds)
}

// CropRectangle copies the window r out of img. The result is a new
// image of exactly (X1-X0)x(Y1-Y0) pixels; img is left untouched.
func CropRectangle(img image.Image, r CropRect) (image.Image, error) {
	b := img.Bounds()
	if r.X0 < 0 || r.Y0 < 0 || r.X0 >= r.X1 || r.Y0 >= r.Y1 || r.X1 > b.Dx() || r.Y1 > b.Dy() {
		return nil, CropBoundsError{Op: "rectangle", Req: r.String(), Bounds: b}
	}
	out := image.NewRGBA(image.Rect(0, 0, r.X1-r.X0, r.Y1-r.Y0))
	draw.Draw(out, out.Bounds(), img, image.Pt(b.Min.X+r.X0, b.Min.Y+r.Y0), draw.Src)
	return out, nil
}

// CropCircle zeroes every pixel whose Euclidean distance from the
// image centre is greater than diameter/2 - 1; pixels at or inside
// that radius pass through unchanged. The circle is always centred on
// (width/2, height/2) regardless of where the dish sits, so the caller
// must have rectangle cropped the image to centre the dish first.
//
// The radius and centre use integer division to stay consistent with
// previously published results.
func CropCircle(img image.Image, diameter int) (image.Image, error) {
	b := img.Bounds()
	if diameter < 2 || diameter > b.Dx() || diameter > b.Dy() {
		return nil, CropBoundsError{Op: "circle", Req: fmt.Sprintf("diameter %d", diameter), Bounds: b}
	}
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)

	cx := b.Dx() / 2
	cy := b.Dy() / 2
	radius := diameter/2 - 1
	black := color.RGBA{0, 0, 0, 255}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dx := x - cx
			dy := y - cy
			if dx*dx+dy*dy > radius*radius {
				out.SetRGBA(x, y, black)
			}
		}
	}
	return out, nil
}
