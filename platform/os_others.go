// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package platform

import "os"

// IsExecutable reports whether path is a regular file. There is no executable
// bit on this platform, so existence is all that can be checked.
func (o *Os) IsExecutable(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
