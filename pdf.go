// Copyright 2024 Topp Roots Lab.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package stability

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/nickjwhite/gofpdf"
)

const reportMargin = 36  // page margin in pts
const reportImageH = 320 // maximum height of each photograph on a page

// Report is a PDF report of a batch, with one page per scored sample
// showing the photographs from either side of submersion and the
// computed index. Only JPEG and PNG photographs can be embedded.
type Report struct {
	fpdf *gofpdf.Fpdf
}

// Setup creates a new PDF with appropriate settings and fonts
func (p *Report) Setup() error {
	p.fpdf = gofpdf.New("P", "pt", "A4", "")
	p.fpdf.SetFont("Helvetica", "", 11)
	p.fpdf.SetAutoPageBreak(false, 0)
	return p.fpdf.Error()
}

// AddSample adds a page to the pdf with the two photographs of one
// sample and its stability index
func (p *Report) AddSample(res Result) error {
	pageW, _ := p.fpdf.GetPageSize()
	usable := pageW - 2*reportMargin

	p.fpdf.AddPage()
	p.fpdf.SetXY(reportMargin, reportMargin)
	sample := filepath.Base(filepath.Dir(res.InitialImage))
	p.fpdf.CellFormat(usable, 14, fmt.Sprintf("Sample %s    stability index %.4f", sample, res.Index), "", 2, "L", false, 0, "")

	y := reportMargin + 28.0
	for _, photo := range []struct{ label, path string }{
		{"before submersion", res.InitialImage},
		{"after submersion", res.FinalImage},
	} {
		w, h, err := fitImage(photo.path, usable, reportImageH)
		if err != nil {
			return err
		}
		_ = p.fpdf.RegisterImageOptions(photo.path, gofpdf.ImageOptions{})
		p.fpdf.ImageOptions(photo.path, reportMargin, y, w, h, false, gofpdf.ImageOptions{}, 0, "")
		p.fpdf.SetXY(reportMargin, y+reportImageH+4)
		p.fpdf.CellFormat(usable, 12, fmt.Sprintf("%s (%s)", filepath.Base(photo.path), photo.label), "", 2, "L", false, 0, "")
		y += reportImageH + 28
	}
	return p.fpdf.Error()
}

// fitImage scales an image's pixel dimensions to fit a bounding box,
// preserving the aspect ratio.
func fitImage(path string, maxW, maxH float64) (float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("could not open image %s: %v", path, err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, DecodeError{Path: path, Err: err}
	}
	w := float64(cfg.Width)
	h := float64(cfg.Height)
	scale := maxW / w
	if maxH/h < scale {
		scale = maxH / h
	}
	return w * scale, h * scale, nil
}

// Save saves the PDF to the file at path
func (p *Report) Save(path string) error {
	return p.fpdf.OutputFileAndClose(path)
}
