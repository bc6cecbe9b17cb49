// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"context"
	"fmt"
	"io/fs"
	"strings"
	"sync"
)

// Memory is an in-memory [Environment]. It holds a set of environment variables, a
// set of files (each optionally executable) and a set of commands that can be spawned
// together with the exit code they report. Paths are compared case-insensitively for
// the [Windows] profile, matching the host filesystem there.
//
// A name can be spawned by [Memory.Run] if it was registered with [Memory.AddCommand],
// or if it is the path of an executable file added with [Memory.AddFile]. Every spawn
// attempt is recorded and can be inspected with [Memory.Runs].
type Memory struct {
	mu         sync.Mutex
	profile    Profile
	env        map[string]string
	files      map[string]bool // path -> executable
	commands   map[string]int  // name -> exit code
	executable string
	runs       []string
}

// NewMemory creates an empty in-memory environment for profile.
func NewMemory(profile Profile) *Memory {
	return &Memory{
		profile:  profile,
		env:      make(map[string]string),
		files:    make(map[string]bool),
		commands: make(map[string]int),
	}
}

// key normalizes path for map lookups.
func (m *Memory) key(path string) string {
	if m.profile == Windows {
		return strings.ToLower(path)
	}
	return path
}

// Setenv sets the environment variable key to value.
func (m *Memory) Setenv(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.env[key] = value
}

// AddFile creates a file at path. executable marks it as spawnable.
func (m *Memory) AddFile(path string, executable bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[m.key(path)] = executable
}

// AddCommand registers name as a command that spawns and exits with exitCode.
func (m *Memory) AddCommand(name string, exitCode int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands[m.key(name)] = exitCode
}

// SetExecutable sets the path reported for the running binary. An empty
// path makes [Memory.Executable] fail.
func (m *Memory) SetExecutable(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.executable = path
}

// Runs returns every spawn attempt as "name arg...", in order.
func (m *Memory) Runs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.runs...)
}

// Profile returns the profile the environment pretends to be.
func (m *Memory) Profile() Profile {
	return m.profile
}

// Getenv returns the value of key.
func (m *Memory) Getenv(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.env[key]
}

// Exists reports whether a file was added at path.
func (m *Memory) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[m.key(path)]
	return ok
}

// IsExecutable reports whether an executable file was added at path.
func (m *Memory) IsExecutable(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.files[m.key(path)]
}

// Executable returns the path set with [Memory.SetExecutable].
func (m *Memory) Executable() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.executable == "" {
		return "", fmt.Errorf("executable path: %w", fs.ErrNotExist)
	}
	return m.executable, nil
}

// Run records the attempt and reports the registered exit code. Executable files
// without a registered command exit with 0. Anything else fails to spawn.
func (m *Memory) Run(ctx context.Context, name string, args ...string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, strings.Join(append([]string{name}, args...), " "))

	if err := ctx.Err(); err != nil {
		return -1, fmt.Errorf("cannot run %s: %w", name, err)
	}
	if code, ok := m.commands[m.key(name)]; ok {
		return code, nil
	}
	if m.files[m.key(name)] {
		return 0, nil
	}
	return -1, fmt.Errorf("cannot run %s: %w", name, fs.ErrNotExist)
}
