// Copyright 2024 Topp Roots Lab.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// stability computes a wet aggregate stability index for batches of
// soil sample photographs taken before and after water submersion.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	stability "github.com/Topp-Roots-Lab/soil-analysis-scripts"
)

const usage = `Usage: stability [-v] [-xmin n] [-xmax n] [-ymin n] [-ymax n] [-circle n] [-workers n] [-graph] [-pdf] [parentdir]

Computes a wet aggregate stability index for every sample folder
directly under parentdir. Each sample folder must contain exactly two
photographs following the rig naming convention,
<prefix>_0_c<n>_p<n>.<ext> for the shot before submersion and
<prefix>_601_c<n>_p<n>.<ext> for the shot taken after ten minutes
under water. Results are written to a timestamped CSV in parentdir;
samples that cannot be scored are skipped with a diagnostic.

When run without a parentdir argument a graphical folder picker opens
instead.
`

// null writer to enable non-verbose logging to be discarded
type NullWriter bool

func (w NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func main() {
	verbose := flag.Bool("v", false, "verbose")
	xmin := flag.Int("xmin", defaultXMin, "left edge of the dish crop window")
	xmax := flag.Int("xmax", defaultXMax, "right edge of the dish crop window")
	ymin := flag.Int("ymin", defaultYMin, "top edge of the dish crop window")
	ymax := flag.Int("ymax", defaultYMax, "bottom edge of the dish crop window")
	circle := flag.Int("circle", defaultCircleDiameter, "diameter in pixels of the circular dish mask; 0 to disable")
	workers := flag.Int("workers", 1, "number of sample folders to process concurrently")
	graph := flag.Bool("graph", false, "also write a PNG chart of the indices")
	pdf := flag.Bool("pdf", false, "also write a PDF report with the photographs")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	var verboselog *log.Logger
	if *verbose {
		verboselog = log.New(os.Stdout, "", 0)
	} else {
		var n NullWriter
		verboselog = log.New(n, "", 0)
	}

	crop := stability.CropRect{X0: *xmin, X1: *xmax, Y0: *ymin, Y1: *ymax}

	if flag.NArg() < 1 {
		err := startGui(crop, *circle, *workers, *graph, *pdf)
		if err != nil {
			log.Fatalln("Error running GUI:", err)
		}
		return
	}

	results, outpath, err := runBatch(flag.Arg(0), crop, *circle, *workers, *graph, *pdf, verboselog, confirmStdin)
	if err != nil {
		var conflict stability.OutputConflictError
		if errors.As(err, &conflict) {
			fmt.Fprintln(os.Stderr, "Aborted:", err)
			os.Exit(1)
		}
		log.Fatalln("Error running batch:", err)
	}
	fmt.Printf("Scored %d samples, results in %s\n", len(results), outpath)
}

// runBatch runs the full batch plus any requested extra artifacts; it
// is shared between the CLI and GUI entry points.
func runBatch(dir string, crop stability.CropRect, circle, workers int, graph, pdf bool, logger *log.Logger, confirm func(string) (bool, error)) ([]stability.Result, string, error) {
	runner := &stability.Runner{
		ParentDir:      dir,
		Crop:           crop,
		CircleDiameter: circle,
		Workers:        workers,
		Confirm:        confirm,
		Logger:         logger,
	}
	results, outpath, err := runner.Run()
	if err != nil {
		return nil, "", err
	}

	// A failed chart or report leaves the already written CSV valid,
	// so neither aborts.
	base := strings.TrimSuffix(outpath, ".csv")
	if graph {
		if err := writeGraph(results, filepath.Base(dir), base+".png"); err != nil {
			fmt.Fprintln(os.Stderr, "Error writing graph:", err)
		}
	}
	if pdf {
		if err := writeReport(results, base+".pdf"); err != nil {
			fmt.Fprintln(os.Stderr, "Error writing PDF report:", err)
		}
	}
	return results, outpath, nil
}

func writeGraph(results []stability.Result, title string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return stability.Graph(results, title, f)
}

func writeReport(results []stability.Result, path string) error {
	var report stability.Report
	if err := report.Setup(); err != nil {
		return err
	}
	for _, res := range results {
		if err := report.AddSample(res); err != nil {
			return err
		}
	}
	return report.Save(path)
}

// confirmStdin asks on the terminal whether an existing results file
// should be overwritten.
func confirmStdin(path string) (bool, error) {
	fmt.Printf("%s already exists. Overwrite? (y/n) ", path)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
