// Copyright 2024 Topp Roots Lab.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package stability

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const maxticks = 40

// stableCutoff marks a perfectly stable sample; indices above it lost
// soil during submersion.
const stableCutoff = 1.0

// createLine creates a horizontal line with a particular y value for
// a graph
func createLine(xvalues []float64, y float64, c drawing.Color) chart.ContinuousSeries {
	var yvalues []float64
	for range xvalues {
		yvalues = append(yvalues, y)
	}
	return chart.ContinuousSeries{
		XValues: xvalues,
		YValues: yvalues,
		Style: chart.Style{
			StrokeColor: c,
		},
	}
}

// Graph creates a graph of the stability index of each sample in a
// batch, in the order the samples were scored, with a guideline at a
// fully stable index of 1 and annotations on the samples in the top
// and bottom deciles.
func Graph(results []Result, title string, w io.Writer) error {
	if len(results) < 2 {
		return errors.New("Not enough results to graph")
	}

	var xvalues, yvalues []float64
	var ticks []chart.Tick
	tickevery := len(results) / maxticks
	if tickevery < 1 {
		tickevery = 1
	}
	ymax := stableCutoff
	for i, res := range results {
		x := float64(i + 1)
		xvalues = append(xvalues, x)
		yvalues = append(yvalues, res.Index)
		if res.Index > ymax {
			ymax = res.Index
		}
		if i%tickevery == 0 {
			ticks = append(ticks, chart.Tick{Value: x, Label: fmt.Sprintf("%.0f", x)})
		}
	}
	// Make last tick the final sample
	final := float64(len(results))
	ticks[len(ticks)-1] = chart.Tick{Value: final, Label: fmt.Sprintf("%.0f", final)}

	mainSeries := chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			FillColor:   chart.ColorAlternateBlue,
		},
		XValues: xvalues,
		YValues: yvalues,
	}

	stableSeries := createLine(xvalues, stableCutoff, chart.ColorAlternateGreen)

	// Find the index values bounding the top and bottom 10% of
	// samples, so the outliers can be annotated.
	sorted := make([]float64, len(yvalues))
	copy(sorted, yvalues)
	sort.Float64s(sorted)
	low := sorted[len(sorted)/10]
	high := sorted[(len(sorted)/10)*9]

	var annotations []chart.Value2
	for i, res := range results {
		if res.Index > high || res.Index < low {
			annotations = append(annotations, chart.Value2{
				Label:  filepath.Base(filepath.Dir(res.InitialImage)),
				XValue: float64(i + 1),
				YValue: res.Index,
			})
		}
	}

	graph := chart.Chart{
		Title:  title,
		Width:  3840,
		Height: 2160,
		XAxis: chart.XAxis{
			Name: "Sample number",
			Range: &chart.ContinuousRange{
				Min: 0.0,
			},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Stability index",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: ymax * 1.1,
			},
		},
		Series: []chart.Series{
			mainSeries,
			stableSeries,
			chart.AnnotationSeries{
				Annotations: annotations,
			},
		},
	}
	return graph.Render(chart.PNG, w)
}
