// Copyright 2024 Topp Roots Lab.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package stability

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
)

// Role is the part a photograph plays in a sample pair.
type Role int

const (
	RoleUnclassified Role = iota
	RoleInitial           // taken before submersion, token 0
	RoleFinal             // taken after submersion, token 601
)

func (r Role) String() string {
	switch r {
	case RoleInitial:
		return "initial"
	case RoleFinal:
		return "final"
	}
	return "unclassified"
}

// The camera rig names photographs <prefix>_<token>_c<n>_p<n>.<ext>,
// where the token is 0 for the pre-submersion shot and 601 for the
// shot taken after ten minutes (600 seconds) under water. The leading
// underscore anchors the token so that 601 never matches the 0 rule.
var (
	initialPattern = regexp.MustCompile(`_0_c[0-9]+_p[0-9]+\.[^.]+$`)
	finalPattern   = regexp.MustCompile(`_601_c[0-9]+_p[0-9]+\.[^.]+$`)
)

// ClassifyRole determines the role of a photograph from its filename
// alone. Filenames outside the rig convention are RoleUnclassified.
func ClassifyRole(name string) Role {
	switch {
	case initialPattern.MatchString(name):
		return RoleInitial
	case finalPattern.MatchString(name):
		return RoleFinal
	}
	return RoleUnclassified
}

// SamplePair holds the paths of the two photographs of one sample.
type SamplePair struct {
	Initial string
	Final   string
}

// MissingPairError is returned when a sample folder does not contain
// exactly one photograph for a role.
type MissingPairError struct {
	Folder string
	Role   Role
	Count  int
}

func (e MissingPairError) Error() string {
	return fmt.Sprintf("found %d %s images in %s, need exactly 1", e.Count, e.Role, e.Folder)
}

// LocatePair scans the files directly inside folder (non-recursively)
// and identifies the initial and final photographs by filename. The
// naming convention is a strict contract: a misnamed pair cannot be
// detected from pixel data and would silently corrupt the score, so
// anything other than exactly one file per role is a MissingPairError.
// A folder holding other than two files gets a warning on logger but
// classification still proceeds.
func LocatePair(folder string, logger *log.Logger) (SamplePair, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return SamplePair{}, fmt.Errorf("could not read sample folder %s: %w", folder, err)
	}

	var initials, finals []string
	nfiles := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		nfiles++
		switch ClassifyRole(entry.Name()) {
		case RoleInitial:
			initials = append(initials, entry.Name())
		case RoleFinal:
			finals = append(finals, entry.Name())
		}
	}
	if nfiles != 2 && logger != nil {
		logger.Printf("Warning: %s contains %d files, expected 2", folder, nfiles)
	}

	if len(initials) != 1 {
		return SamplePair{}, MissingPairError{Folder: folder, Role: RoleInitial, Count: len(initials)}
	}
	if len(finals) != 1 {
		return SamplePair{}, MissingPairError{Folder: folder, Role: RoleFinal, Count: len(finals)}
	}
	return SamplePair{
		Initial: filepath.Join(folder, initials[0]),
		Final:   filepath.Join(folder, finals[0]),
	}, nil
}
