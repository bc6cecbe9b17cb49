// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Os is the [Environment] of the host the binary runs on.
type Os struct{}

// NewOs creates a new [Os].
func NewOs() *Os {
	return &Os{}
}

// Profile returns the profile of the host.
func (o *Os) Profile() Profile {
	return Host()
}

// Getenv returns the value of the environment variable key.
func (o *Os) Getenv(key string) string {
	return os.Getenv(key)
}

// Exists reports whether anything exists at path.
func (o *Os) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Executable returns the path of the running binary.
func (o *Os) Executable() (string, error) {
	return os.Executable()
}

// Run spawns name with args and waits for it. Stdout and stderr are connected
// to the null device.
func (o *Os) Run(ctx context.Context, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	err := cmd.Run()

	// the process ran, its exit code is the answer
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, fmt.Errorf("cannot run %s: %w", name, err)
	}
	return 0, nil
}
