// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package sqfstool

import "errors"

var (
	// ErrNoPlaceholder is returned when an extraction descriptor carries no
	// source file placeholder in its arguments.
	ErrNoPlaceholder = errors.New("no source file placeholder in arguments")

	// ErrDuplicatePlaceholder is returned when the source file placeholder
	// appears more than once in the arguments.
	ErrDuplicatePlaceholder = errors.New("source file placeholder appears more than once")

	// ErrNoUtility is returned when a descriptor has no external utility to spawn.
	ErrNoUtility = errors.New("no external utility configured")

	// ErrConflictingEndianness is returned when both byte orders are requested.
	ErrConflictingEndianness = errors.New("little endian and big endian are mutually exclusive")

	// ErrV4RequiresBigEndian is returned when the v4 layout is requested without big endian.
	ErrV4RequiresBigEndian = errors.New("v4 layout requires big endian")

	// ErrMaxInputSizeExceeded is returned when more input is read than configured.
	ErrMaxInputSizeExceeded = errors.New("maximum input size exceeded")
)
