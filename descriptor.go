// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package sqfstool

import (
	"context"
	"fmt"
	"slices"

	"github.com/fwscan/go-sqfstool/resolver"
)

// fileExtensionSquashfs is the file extension of squashfs images.
const fileExtensionSquashfs = "sqsh"

// UtilityType discriminates the utility of a [Descriptor].
type UtilityType int

const (
	// UtilityNone is an unconfigured utility.
	UtilityNone UtilityType = iota

	// UtilityInternal is a function implemented in process.
	UtilityInternal

	// UtilityExternal is a command spawned as a subprocess.
	UtilityExternal
)

// String returns the name of the utility type.
func (u UtilityType) String() string {
	switch u {
	case UtilityNone:
		return "none"
	case UtilityInternal:
		return "internal"
	case UtilityExternal:
		return "external"
	}
	return fmt.Sprintf("UtilityType(%d)", int(u))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (u UtilityType) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// InternalFunc extracts src into dst in process.
type InternalFunc func(ctx context.Context, src, dst string) error

// Utility is what a [Descriptor] runs.
type Utility struct {
	Type     UtilityType  `json:"type"`
	Command  string       `json:"command,omitempty"`
	Internal InternalFunc `json:"-"`
}

// External returns a utility that spawns command.
func External(command string) Utility {
	return Utility{Type: UtilityExternal, Command: command}
}

// Descriptor is the declarative record handed to the component that spawns the
// utility. Arguments of an extraction descriptor contain [Descriptor.Placeholder]
// exactly once; creation descriptors carry concrete paths.
type Descriptor struct {
	Utility     Utility             `json:"utility"`
	Extension   string              `json:"extension"`
	Arguments   []string            `json:"arguments"`
	ExitCodes   []int               `json:"exit_codes"`
	Placeholder string              `json:"placeholder,omitempty"`
	Operation   resolver.Operation  `json:"operation"`
	Tool        resolver.Tool       `json:"tool"`
	Confidence  resolver.Confidence `json:"confidence"`
}

// Succeeded reports whether code is one of the accepted exit codes.
func (d *Descriptor) Succeeded(code int) bool {
	return slices.Contains(d.ExitCodes, code)
}

// Validate checks that the descriptor has an external utility and, for
// extraction descriptors, that the placeholder appears exactly once.
func (d *Descriptor) Validate() error {
	if d.Utility.Type != UtilityExternal || len(d.Utility.Command) == 0 {
		return ErrNoUtility
	}
	if d.Operation == resolver.OperationCreate {
		return nil
	}

	count := 0
	for _, arg := range d.Arguments {
		if arg == d.Placeholder {
			count++
		}
	}
	switch {
	case len(d.Placeholder) == 0 || count == 0:
		return ErrNoPlaceholder
	case count > 1:
		return ErrDuplicatePlaceholder
	}
	return nil
}

// Command returns the executable and the arguments to spawn it with, the
// placeholder replaced by src.
func (d *Descriptor) Command(src string) (string, []string, error) {
	if err := d.Validate(); err != nil {
		return "", nil, fmt.Errorf("invalid %s descriptor: %w", d.Operation, err)
	}

	args := make([]string, len(d.Arguments))
	for i, arg := range d.Arguments {
		if d.Operation != resolver.OperationCreate && arg == d.Placeholder {
			arg = src
		}
		args[i] = arg
	}
	return d.Utility.Command, args, nil
}
