// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package sqfstool

import (
	"bytes"

	"github.com/ulikunitz/xz/lzma"
)

// VerifyLZMAStream returns the offset of the first canonical LZMA header in data
// that starts a stream the lzma decoder accepts: a valid properties byte,
// dictionary size and size field followed by a range coder preamble. It is an
// attribution aid and does not change the verdict of [Classify].
func VerifyLZMAStream(data []byte) (int, bool) {
	off := 0
	for {
		i := bytes.Index(data[off:], lzmaHeader)
		if i < 0 || off+i+lzma.HeaderLen > len(data) {
			return 0, false
		}
		off += i
		if isLZMAStream(data[off:]) {
			return off, true
		}
		off++
	}
}

// isLZMAStream reports whether stream starts with a header and preamble the
// lzma reader accepts.
func isLZMAStream(stream []byte) bool {
	if !lzma.ValidHeader(stream[:lzma.HeaderLen]) {
		return false
	}
	_, err := lzma.NewReader(bytes.NewReader(stream))
	return err == nil
}
