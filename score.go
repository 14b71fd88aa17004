// Copyright 2024 Topp Roots Lab.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package stability

import (
	"fmt"
	"image"
)

// Scorer computes the stability index for one sample from its two
// photographs. Both photographs go through the same fixed pipeline:
// rectangle crop, optional circular dish mask, grayscale reduction,
// Otsu threshold selection and area measurement. The index is the
// initial soil area divided by the final soil area.
//
// Every step is deterministic, so a failed sample will fail the same
// way on every run; there is no point retrying.
type Scorer struct {
	Crop           CropRect
	CircleDiameter int // 0 disables the circular mask
}

// Score runs the pipeline over the initial and final photographs of
// one sample and returns the stability index. Errors carry the typed
// cause (DecodeError, CropBoundsError) so callers can classify them
// with errors.As.
func (s Scorer) Score(initialPath, finalPath string) (float64, error) {
	initial, err := s.measure(initialPath)
	if err != nil {
		return 0, err
	}
	final, err := s.measure(finalPath)
	if err != nil {
		return 0, err
	}
	return initial / final, nil
}

// measure runs one photograph through isolation, thresholding and area
// counting.
func (s Scorer) measure(path string) (float64, error) {
	img, err := LoadImage(path)
	if err != nil {
		return 0, err
	}
	img, err = s.isolate(img)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	planes := []*image.Gray{Grayscale(img)}
	thresholds := Thresholds(planes)
	return MeanArea(planes, thresholds), nil
}

// isolate applies the configured rectangle crop and circular mask.
func (s Scorer) isolate(img image.Image) (image.Image, error) {
	var err error
	if !s.Crop.Empty() {
		img, err = CropRectangle(img, s.Crop)
		if err != nil {
			return nil, err
		}
	}
	if s.CircleDiameter > 0 {
		img, err = CropCircle(img, s.CircleDiameter)
		if err != nil {
			return nil, err
		}
	}
	return img, nil
}
