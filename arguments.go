// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package sqfstool

import (
	"github.com/fwscan/go-sqfstool/platform"
	"github.com/fwscan/go-sqfstool/resolver"
)

// FormatParameters describe the layout of the image to extract.
type FormatParameters struct {
	// LittleEndian selects little endian extraction.
	LittleEndian bool `json:"little_endian"`

	// BigEndian selects big endian extraction.
	BigEndian bool `json:"big_endian"`

	// V4 selects the SquashFS 4.x layout. Only meaningful with BigEndian.
	V4 bool `json:"v4"`
}

// Validate checks that the parameters describe a possible layout.
func (p FormatParameters) Validate() error {
	if p.LittleEndian && p.BigEndian {
		return ErrConflictingEndianness
	}
	if p.V4 && !p.BigEndian {
		return ErrV4RequiresBigEndian
	}
	return nil
}

// Arguments returns the ordered arguments for a tool of the given kind on the
// given platform. The placeholder is always the last argument and appears
// exactly once.
//
// The archive tool ignores the parameters, it detects the layout on its own.
// Native tools select the byte order through flags. A v4 big endian request
// on Windows adds ownership flags for the bundled port, on Unix it switches
// the byte order flag to the sasquatch specific one.
func Arguments(profile platform.Profile, kind resolver.Kind, params FormatParameters, placeholder string) []string {
	if kind == resolver.KindArchiver {
		return []string{"x", "-y", "-o.", placeholder}
	}

	var args []string
	if profile == platform.Windows {
		// quiet, overwrite, into the working directory
		args = append(args, "-n", "-f", "-d", ".")
		switch {
		case params.LittleEndian:
			args = append(args, "-le")
		case params.BigEndian:
			args = append(args, "-be")
			if params.V4 {
				args = append(args, "-force-uid", "0", "-force-gid", "0")
			}
		}
		return append(args, placeholder)
	}

	args = append(args, "-dest", ".")
	switch {
	case params.LittleEndian:
		args = append(args, "-le")
	case params.BigEndian && params.V4:
		args = append(args, "-be-v4")
	case params.BigEndian:
		args = append(args, "-be")
	}
	return append(args, "-silent", "-force", placeholder)
}

// exitCodes returns the exit codes a tool of the given kind ends with on
// success. Native extractors exit 2 when some entries could not be restored,
// which still leaves a usable tree behind.
func exitCodes(kind resolver.Kind) []int {
	if kind == resolver.KindNative {
		return []int{0, 2}
	}
	return []int{0}
}
