// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package resolver

import (
	"fmt"
	"strings"
)

// Names of the utilities the resolver knows about.
const (
	Sasquatch     = "sasquatch"      // Sasquatch is the vendor-tolerant unsquashfs fork.
	SasquatchV4BE = "sasquatch-v4be" // SasquatchV4BE is the sasquatch build for big endian v4 images.
	Unsquashfs    = "unsquashfs"     // Unsquashfs is the squashfs-tools extractor.
	Mksquashfs    = "mksquashfs"     // Mksquashfs is the squashfs-tools packer.
	SevenZip      = "7z"             // SevenZip is the 7-Zip command line tool.
)

// bundledDir is the directory the Windows ports of squashfs-tools ship in,
// next to the executable that uses them.
const bundledDir = "sqfs_for_win"

// archiverDir is the directory 7-Zip installs into.
const archiverDir = "7-Zip"

var (
	// windowsExtractCandidates are checked in order on Windows.
	windowsExtractCandidates = []string{
		`sqfs_for_win\unsquashfs.exe`,
		`.\sqfs_for_win\unsquashfs.exe`,
		`unsquashfs.exe`,
		`sasquatch.exe`,
	}

	// windowsArchiverPaths are the conventional 7-Zip install locations.
	windowsArchiverPaths = []string{
		`C:\Program Files\7-Zip\7z.exe`,
		`C:\Program Files (x86)\7-Zip\7z.exe`,
		`.\7z.exe`,
		`.\7-Zip\7z.exe`,
	}

	// unixExtractTools are looked up in PATH in order.
	unixExtractTools = []string{Sasquatch, Unsquashfs}

	// unixArchiverTools are the names 7-Zip is packaged under.
	unixArchiverTools = []string{"7z", "7za", "7zr"}
)

const (
	windowsExtractTool = `sqfs_for_win\unsquashfs.exe`
	windowsV4BETool    = `sqfs_for_win\unsquashfs.exe`
	windowsCreateTool  = `sqfs_for_win\mksquashfs.exe`
	windowsArchiverExe = "7z.exe"
)

// Operation is what the resolved utility is going to be used for.
type Operation int

const (
	// OperationExtract extracts an image of unspecified byte order.
	OperationExtract Operation = iota

	// OperationExtractLittleEndian extracts a little endian image.
	OperationExtractLittleEndian

	// OperationExtractBigEndian extracts a big endian image.
	OperationExtractBigEndian

	// OperationExtractV4BigEndian extracts a big endian SquashFS 4.x image.
	OperationExtractV4BigEndian

	// OperationCreate packs a directory into an image.
	OperationCreate
)

var operationNames = map[Operation]string{
	OperationExtract:             "extract",
	OperationExtractLittleEndian: "extract-le",
	OperationExtractBigEndian:    "extract-be",
	OperationExtractV4BigEndian:  "extract-v4-be",
	OperationCreate:              "create",
}

// String returns the name of the operation.
func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (o Operation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Kind is the family a resolved tool belongs to. It decides which arguments
// the tool gets and which exit codes count as success.
type Kind int

const (
	// KindNative is an unsquashfs compatible extractor.
	KindNative Kind = iota

	// KindArchiver is the generic archive tool (7-Zip).
	KindArchiver

	// KindPacker is an image creation tool.
	KindPacker
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNative:
		return "native"
	case KindArchiver:
		return "archiver"
	case KindPacker:
		return "packer"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Confidence tells how a [Result] came about.
type Confidence int

const (
	// Found means a native tool was located.
	Found Confidence = iota

	// Fallback means the generic archive tool stands in for a native tool.
	Fallback

	// Unconfirmed means nothing was located and the result is a default name.
	Unconfirmed
)

// String returns the name of the confidence level.
func (c Confidence) String() string {
	switch c {
	case Found:
		return "found"
	case Fallback:
		return "fallback"
	case Unconfirmed:
		return "unconfirmed"
	}
	return fmt.Sprintf("Confidence(%d)", int(c))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (c Confidence) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Tool is a resolved utility.
type Tool struct {
	// Name is what gets spawned: a bare command name or a path.
	Name string `json:"name"`

	// Path is where the lookup found the tool. It is empty if the tool was not found.
	Path string `json:"path,omitempty"`

	// Kind is the family of the tool.
	Kind Kind `json:"kind"`
}

// Result is the outcome of a resolution.
type Result struct {
	Operation  Operation  `json:"operation"`
	Tool       Tool       `json:"tool"`
	Confidence Confidence `json:"confidence"`
}

// IsArchiver reports whether name refers to the generic archive tool.
func IsArchiver(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "7z") || strings.Contains(lower, "7-zip")
}
