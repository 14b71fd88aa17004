// Copyright 2024 Topp Roots Lab.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package main

// Crop window and dish mask defaults for the lab camera rig. The
// petri dish always sits in the same spot under the fixed camera, so
// these are tuned once per rig; use the -xmin/-xmax/-ymin/-ymax and
// -circle flags for any other setup.
const (
	defaultXMin = 800
	defaultXMax = 1800
	defaultYMin = 500
	defaultYMax = 1500

	// defaultCircleDiameter masks out the corners of the square
	// crop window, which show the tray around the petri dish.
	defaultCircleDiameter = 950
)
