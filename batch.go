// Copyright 2024 Topp Roots Lab.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package stability

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Result is the outcome for one successfully scored sample.
type Result struct {
	Index        float64
	InitialImage string
	FinalImage   string
}

// OutputConflictError is returned when the results file already exists
// and overwriting it was declined. It aborts the whole run before any
// sample is processed.
type OutputConflictError struct {
	Path string
}

func (e OutputConflictError) Error() string {
	return fmt.Sprintf("results file %s already exists and overwriting was declined", e.Path)
}

// Runner scores every sample subdirectory of a parent directory and
// writes the cumulative result table.
type Runner struct {
	// ParentDir holds one subdirectory per sample.
	ParentDir string

	// Crop and CircleDiameter configure the region isolation for
	// every sample; see Scorer.
	Crop           CropRect
	CircleDiameter int

	// Workers is the number of sample folders processed
	// concurrently. Zero or one processes them sequentially.
	// Whatever the setting, result rows are written in folder
	// enumeration order.
	Workers int

	// Confirm is consulted before an existing results file is
	// overwritten. A nil Confirm declines.
	Confirm func(path string) (bool, error)

	// Logger receives per-sample diagnostics. Defaults to stdout.
	Logger *log.Logger

	// test hooks
	now    func() time.Time
	create func(path string) (io.WriteCloser, error)
}

// indexedResult carries one folder's outcome back from a worker.
type indexedResult struct {
	i   int
	res Result
	err error
}

// Run enumerates the immediate subdirectories of ParentDir, scores
// each as one sample, and appends a row per success to a timestamped
// CSV in ParentDir. A sample that cannot be paired, decoded or cropped
// is logged and skipped; it never aborts the batch. The only fatal
// pre-processing condition is an existing results file whose overwrite
// is declined. Run returns the collected results and the path of the
// table it wrote.
func (r *Runner) Run() ([]Result, string, error) {
	if r.Logger == nil {
		r.Logger = log.New(os.Stdout, "", 0)
	}
	tnow := time.Now()
	if r.now != nil {
		tnow = r.now()
	}

	outpath := filepath.Join(r.ParentDir, fmt.Sprintf("results_%s.csv", tnow.Format("2006-01-02-1504")))
	if _, err := os.Stat(outpath); err == nil {
		ok := false
		if r.Confirm != nil {
			ok, err = r.Confirm(outpath)
			if err != nil {
				return nil, "", fmt.Errorf("could not confirm overwrite of %s: %w", outpath, err)
			}
		}
		if !ok {
			return nil, "", OutputConflictError{Path: outpath}
		}
	}

	entries, err := os.ReadDir(r.ParentDir)
	if err != nil {
		return nil, "", fmt.Errorf("could not read parent directory %s: %w", r.ParentDir, err)
	}
	var folders []string
	for _, entry := range entries {
		if entry.IsDir() {
			folders = append(folders, filepath.Join(r.ParentDir, entry.Name()))
		}
	}

	create := r.create
	if create == nil {
		create = func(path string) (io.WriteCloser, error) { return os.Create(path) }
	}
	f, err := create(outpath)
	if err != nil {
		return nil, "", fmt.Errorf("could not create results file %s: %w", outpath, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	w.Write([]string{"Stability Index", "Initial Image Filename"})
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("could not write results header to %s: %w", outpath, err)
	}

	scorer := Scorer{Crop: r.Crop, CircleDiameter: r.CircleDiameter}

	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	// Both channels hold every job, so no goroutine can ever block
	// on a send and leak if an append fails mid-batch.
	jobs := make(chan int, len(folders))
	for i := range folders {
		jobs <- i
	}
	close(jobs)
	outcomes := make(chan indexedResult, len(folders))
	for i := 0; i < workers; i++ {
		go func() {
			for i := range jobs {
				res, err := r.process(scorer, folders[i])
				outcomes <- indexedResult{i: i, res: res, err: err}
			}
		}()
	}

	// Reassemble outcomes into folder order so the table reads the
	// same however many workers ran.
	var results []Result
	pending := make(map[int]indexedResult)
	next := 0
	for range folders {
		outcome := <-outcomes
		pending[outcome.i] = outcome
		for {
			o, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if o.err != nil {
				r.Logger.Printf("Skipping %s: %v", folders[o.i], o.err)
				continue
			}
			w.Write([]string{strconv.FormatFloat(o.res.Index, 'f', -1, 64), o.res.InitialImage})
			w.Flush()
			if err := w.Error(); err != nil {
				return results, outpath, fmt.Errorf("could not append result for %s: %w", folders[o.i], err)
			}
			results = append(results, o.res)
		}
	}

	return results, outpath, nil
}

// process locates and scores the pair in one sample folder.
func (r *Runner) process(scorer Scorer, folder string) (Result, error) {
	pair, err := LocatePair(folder, r.Logger)
	if err != nil {
		return Result{}, err
	}
	r.Logger.Println("Scoring", folder)
	index, err := scorer.Score(pair.Initial, pair.Final)
	if err != nil {
		return Result{}, err
	}
	return Result{Index: index, InitialImage: pair.Initial, FinalImage: pair.Final}, nil
}
