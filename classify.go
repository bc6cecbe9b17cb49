// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package sqfstool

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// magicBytesSquashfs are the magic bytes of squashfs images, both byte orders
// appear in the wild.
var magicBytesSquashfs = [][]byte{
	[]byte("hsqs"), // little endian
	[]byte("sqsh"), // big endian
}

var (
	// lzmaHeader is the canonical start of an LZMA stream: properties 0x5d
	// followed by the low bytes of an 8 MiB dictionary size.
	lzmaHeader = []byte{0x5d, 0x00, 0x00, 0x80}

	// lzmaRelaxedPrefix tolerates other dictionary sizes.
	lzmaRelaxedPrefix = []byte{0x5d, 0x00, 0x00}
)

const (
	// minClassifyLength is the length a buffer must exceed to be classified.
	minClassifyLength = 24

	// superblockCompressionOffset is where this format family stores its
	// compression id.
	superblockCompressionOffset = 24

	// compressionIDLZMA is the compression id of LZMA.
	compressionIDLZMA = 0x02

	// relaxedWindowSize is the window the relaxed scan slides over.
	relaxedWindowSize = 6

	// headerWindowSize is how much of a file the header window scan reads.
	headerWindowSize = 1024
)

// Signal is a named predicate over the bytes of a squashfs image that hints at
// LZMA compression.
type Signal struct {
	Name  string
	Match func(data []byte) bool
}

// Signals are evaluated in order by [Classify]. Any match classifies the image
// as LZMA compressed.
var Signals = []Signal{
	{Name: "lzma-header", Match: hasLZMAHeader},
	{Name: "superblock-compression", Match: hasSuperblockLZMA},
	{Name: "lzma-relaxed", Match: hasRelaxedLZMA},
}

// HeaderWindowSignals are the byte sequences [ClassifyFile] looks for in the
// first bytes of a file it could not classify.
var HeaderWindowSignals = [][]byte{
	lzmaHeader,
	{0x5d, 0x00, 0x00, 0x00},
}

// Verdict is the outcome of [Classify].
type Verdict struct {
	// Recognized is false if the data is not a squashfs image.
	Recognized bool `json:"recognized"`

	// LZMA is the best-effort compression verdict.
	LZMA bool `json:"lzma"`

	// Signals names every signal that matched, in evaluation order.
	Signals []string `json:"signals,omitempty"`
}

// IsSquashfs checks if the header matches the squashfs magic bytes.
func IsSquashfs(header []byte) bool {
	for _, mb := range magicBytesSquashfs {
		if len(header) >= len(mb) && bytes.Equal(header[:len(mb)], mb) {
			return true
		}
	}
	return false
}

// Classify inspects the raw bytes of an image and tells whether it looks LZMA
// compressed. Data of at most 24 bytes or without squashfs magic is not
// recognized. The verdict is a heuristic that favours recall, it is never
// authoritative.
func Classify(data []byte) Verdict {
	if len(data) <= minClassifyLength || !IsSquashfs(data) {
		return Verdict{}
	}

	v := Verdict{Recognized: true}
	for _, s := range Signals {
		if s.Match(data) {
			v.Signals = append(v.Signals, s.Name)
		}
	}
	v.LZMA = len(v.Signals) > 0
	return v
}

// hasLZMAHeader reports whether any 4-byte window is the canonical LZMA header.
func hasLZMAHeader(data []byte) bool {
	return bytes.Contains(data, lzmaHeader)
}

// hasSuperblockLZMA checks the compression id field of the superblock.
func hasSuperblockLZMA(data []byte) bool {
	off := superblockCompressionOffset
	if len(data) <= off+2 {
		return false
	}
	if data[off] == compressionIDLZMA {
		return true
	}
	return len(data) > off+3 && bytes.Equal(data[off:off+len(lzmaHeader)], lzmaHeader)
}

// hasRelaxedLZMA reports whether any 6-byte window starts with the relaxed prefix.
func hasRelaxedLZMA(data []byte) bool {
	for i := 0; i+relaxedWindowSize <= len(data); i++ {
		if bytes.Equal(data[i:i+len(lzmaRelaxedPrefix)], lzmaRelaxedPrefix) {
			return true
		}
	}
	return false
}

// scanHeaderWindow reports whether any of the [HeaderWindowSignals] occurs in
// the first bytes of header.
func scanHeaderWindow(header []byte) bool {
	if len(header) > headerWindowSize {
		header = header[:headerWindowSize]
	}
	for _, sig := range HeaderWindowSignals {
		if bytes.Contains(header, sig) {
			return true
		}
	}
	return false
}

// ClassifyReader reads r completely and classifies the data. At most
// [Config.MaxInputSize] bytes are read.
func ClassifyReader(r io.Reader, cfg *Config) (Verdict, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	lr := newLimitErrorReader(r, cfg.MaxInputSize())
	data, err := io.ReadAll(lr)
	if err != nil {
		return Verdict{}, fmt.Errorf("cannot read input after %d bytes: %w", lr.ReadBytes(), err)
	}
	v := Classify(data)
	cfg.Logger().Debug("lzma detection", "size", lr.ReadBytes(), "recognized", v.Recognized, "lzma", v.LZMA)
	return v, nil
}

// ClassifyFile tells whether the file at path looks LZMA compressed. If the
// file is not recognized as a squashfs image, the first 1024 bytes are scanned
// for LZMA headers instead. Errors are logged and reported as false.
func ClassifyFile(path string, cfg *Config) bool {
	if cfg == nil {
		cfg = NewConfig()
	}
	log := cfg.Logger()

	f, err := os.Open(path)
	if err != nil {
		log.Debug("cannot open file for lzma detection", "path", path, "error", err)
		return false
	}
	defer f.Close()

	hr, err := newHeaderReader(f, headerWindowSize)
	if err != nil {
		log.Debug("cannot read file for lzma detection", "path", path, "error", err)
		return false
	}
	header := hr.PeekHeader()

	// only squashfs images are worth reading completely
	if IsSquashfs(header) {
		data, err := io.ReadAll(newLimitErrorReader(hr, cfg.MaxInputSize()))
		if err == nil {
			if v := Classify(data); v.Recognized {
				log.Debug("lzma detection", "path", path, "lzma", v.LZMA, "signals", v.Signals)
				return v.LZMA
			}
		} else {
			log.Debug("cannot read file for lzma detection", "path", path, "error", err)
		}
	}

	found := scanHeaderWindow(header)
	log.Debug("lzma detection in header window", "path", path, "lzma", found)
	return found
}
