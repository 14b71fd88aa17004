// Copyright 2024 Topp Roots Lab.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
The stability package measures the wet aggregate stability of soil
samples from paired photographs, one taken before a ten minute water
submersion and one after.

For each sample the pipeline isolates the petri dish region (a fixed
rectangular crop, optionally followed by a centred circular mask),
reduces the photograph to grayscale, picks a binarization threshold
automatically with Otsu's method, and measures the soil covered area in
both photographs. The stability index reported for the sample is the
ratio of the initial area to the final area; an index near 1 means the
aggregates held together, larger values mean more soil was lost to
slaking during submersion.

Batches are driven by a Runner, which expects a parent directory
containing one subdirectory per sample. Each sample directory holds
exactly two photographs named following the camera rig convention

  <prefix>_0_c<n>_p<n>.<ext>    photograph before submersion
  <prefix>_601_c<n>_p<n>.<ext>  photograph after submersion

The Runner scores every sample folder it can, skips (with a logged
diagnostic) any folder whose images are missing, unreadable or smaller
than the configured crop, and writes a timestamped CSV of indices to
the parent directory. Charts and PDF reports of a batch can be produced
with Graph and Report.

The stability command in cmd/stability wraps all of this in a CLI, and
opens a graphical folder picker when run without arguments.
*/
package stability
