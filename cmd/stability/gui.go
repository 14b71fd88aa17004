// Copyright 2024 Topp Roots Lab.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	stability "github.com/Topp-Roots-Lab/soil-analysis-scripts"
)

// copyStdoutToChan creates a pipe to copy anything written
// to stdout instead to a rune channel
func copyStdoutToChan() (chan rune, error) {
	c := make(chan rune)

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		return c, fmt.Errorf("Error creating pipe for stdout redirection: %v", err)
	}
	os.Stdout = w

	bufReader := bufio.NewReader(r)

	go func() {
		defer func() {
			close(c)
			w.Close()
			os.Stdout = origStdout
		}()
		for {
			r, _, err := bufReader.ReadRune()
			if err != nil && err != io.EOF {
				return
			}
			c <- r
			if err == io.EOF {
				return
			}
		}
	}()

	return c, nil
}

// startGui opens the folder picker window and runs batches from it
func startGui(crop stability.CropRect, circle int, workers int, graph bool, pdf bool) error {
	myApp := app.New()
	myWindow := myApp.NewWindow("Aggregate Stability")

	var gobtn *widget.Button

	dir := widget.NewEntry()
	dir.SetPlaceHolder("Parent folder of the sample folders")
	dir.OnChanged = func(s string) {
		// TODO: also check if string is a directory, and only enable if so
		if dir.Text != "" {
			gobtn.Enable()
		} else {
			gobtn.Disable()
		}
	}

	openbtn := widget.NewButtonWithIcon("Choose folder", theme.FolderOpenIcon(), func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err == nil && uri != nil {
				dir.SetText(uri.Path())
			}
		}, myWindow)
	})

	progressBar := widget.NewProgressBar()

	logarea := widget.NewMultiLineEntry()
	logarea.Disable()

	// confirm asks about overwriting an existing results file with a
	// dialog rather than the terminal prompt the CLI uses.
	confirm := func(path string) (bool, error) {
		answer := make(chan bool)
		dialog.ShowConfirm("Results file exists",
			fmt.Sprintf("%s already exists. Overwrite it?", filepath.Base(path)),
			func(ok bool) { answer <- ok }, myWindow)
		return <-answer, nil
	}

	gobtn = widget.NewButtonWithIcon("Score samples", theme.MediaPlayIcon(), func() {
		if dir.Text == "" {
			return
		}

		gobtn.Disable()
		gobtn.SetText("Scoring...")
		progressBar.SetValue(0.5)

		stdout, err := copyStdoutToChan()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error copying stdout to chan: %v\n", err)
			return
		}

		// update log area with output from stdout in a concurrent goroutine
		go func() {
			for r := range stdout {
				logarea.SetText(logarea.Text + string(r))
				logarea.CursorRow = strings.Count(logarea.Text, "\n")
			}
		}()

		go func() {
			guilog := log.New(os.Stdout, "", 0)
			results, outpath, err := runBatch(dir.Text, crop, circle, workers, graph, pdf, guilog, confirm)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
			} else {
				fmt.Printf("Scored %d samples, results in %s\n", len(results), outpath)
			}
			progressBar.SetValue(1.0)
			gobtn.SetText("Score samples")
			gobtn.Enable()
		}()
	})
	gobtn.Disable()

	diropener := container.New(layout.NewGridLayout(2), dir, openbtn)

	content := container.NewVBox(diropener, gobtn, progressBar, logarea)

	myWindow.SetContent(content)

	myWindow.Show()
	myApp.Run()

	return nil
}
