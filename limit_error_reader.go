// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package sqfstool

import (
	"io"
)

// limitErrorReader is a reader that returns [ErrMaxInputSizeExceeded] if the
// underlying reader holds more than the limit. Reading exactly up to the limit
// ends with the error of the underlying reader, usually io.EOF.
// If the limit is -1, all data from the original reader is read.
type limitErrorReader struct {
	R io.Reader // underlying reader
	L int64     // limit
	N int64     // number of bytes read
}

// Read reads from the underlying reader and fills up p.
func (l *limitErrorReader) Read(p []byte) (int, error) {
	if l.L == -1 {
		n, err := l.R.Read(p)
		l.N += int64(n)
		return n, err
	}

	// at the limit, only the end of the input is acceptable
	m := l.L - l.N
	if m <= 0 {
		var probe [1]byte
		n, err := l.R.Read(probe[:])
		if n > 0 {
			return 0, ErrMaxInputSizeExceeded
		}
		return 0, err
	}

	if m > int64(len(p)) {
		m = int64(len(p))
	}

	// read from underlying reader and preserve error type
	n, err := l.R.Read(p[:m])
	l.N += int64(n)
	return n, err
}

// ReadBytes returns how many bytes have been read from the underlying reader
func (l *limitErrorReader) ReadBytes() int64 {
	return l.N
}

// newLimitErrorReader returns a new limitErrorReader that reads from r
func newLimitErrorReader(r io.Reader, limit int64) *limitErrorReader {
	return &limitErrorReader{R: r, L: limit, N: 0}
}
