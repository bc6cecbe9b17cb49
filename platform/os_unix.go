// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

//go:build unix

package platform

import (
	"os"

	"golang.org/x/sys/unix"
)

// IsExecutable reports whether path is a regular file the current user is
// allowed to execute.
func (o *Os) IsExecutable(path string) bool {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}
