// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package platform

import "context"

//go:generate mockgen -destination=mock_platform/mock_environment.go -package=mock_platform github.com/fwscan/go-sqfstool/platform Environment

// Environment is the capability a tool lookup is performed against. Implementations
// must not cache: every call reflects the current state of the host.
type Environment interface {
	// Profile returns the platform family paths are spelled for.
	Profile() Profile

	// Getenv returns the value of the environment variable key, or "" if unset.
	Getenv(key string) string

	// Exists reports whether anything exists at path.
	Exists(path string) bool

	// IsExecutable reports whether path is a regular file the current user may
	// execute. On platforms without an executable bit this equals existence of a
	// regular file.
	IsExecutable(path string) bool

	// Executable returns the path of the running binary.
	Executable() (string, error)

	// Run spawns name with args and waits for it to exit. Output is discarded.
	// The returned error is non-nil only if the process could not be spawned;
	// a process that ran and exited non-zero reports its exit code with a nil error.
	Run(ctx context.Context, name string, args ...string) (int, error)
}
