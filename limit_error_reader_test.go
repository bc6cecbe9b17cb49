// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package sqfstool

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadBytes(t *testing.T) {
	tests := []struct {
		name       string
		limit      int64
		input      string
		bufferSize int
		expectN    int64
		wantErr    bool
	}{
		{
			name:       "Under limit",
			limit:      10,
			input:      "12345",
			bufferSize: 5,
			expectN:    5,
			wantErr:    false,
		},
		{
			name:       "At limit",
			limit:      5,
			input:      "12345",
			bufferSize: 5,
			expectN:    5,
			wantErr:    false,
		},
		{
			name:       "Over limit",
			limit:      4,
			input:      "12345",
			bufferSize: 5,
			expectN:    4,
			wantErr:    false,
		},
		{
			name:       "Under limit with buffer",
			limit:      10,
			input:      "12345",
			bufferSize: 2,
			expectN:    2,
			wantErr:    false,
		},
		{
			name:       "Unlimited",
			limit:      -1,
			input:      "12345",
			bufferSize: 5,
			expectN:    5,
			wantErr:    false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := strings.NewReader(test.input)
			l := newLimitErrorReader(r, test.limit)
			buf := make([]byte, test.bufferSize)
			n, err := l.Read(buf)
			if (err != nil) != test.wantErr {
				t.Fatalf("Read() error = %v, wantErr %v", err, test.wantErr)
			}
			if int64(n) != test.expectN {
				t.Errorf("Read() = %v, want %v", n, test.expectN)
			}
			if l.ReadBytes() != test.expectN {
				t.Errorf("ReadBytes() = %v, want %v", l.ReadBytes(), test.expectN)
			}
		})
	}
}

// TestLimitErrorReaderReadAll tests reading a complete input through limitErrorReader
func TestLimitErrorReaderReadAll(t *testing.T) {
	tests := []struct {
		name    string
		limit   int64
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "Under limit",
			limit: 10,
			input: "12345",
			want:  "12345",
		},
		{
			name:  "At limit",
			limit: 5,
			input: "12345",
			want:  "12345",
		},
		{
			name:    "Over limit",
			limit:   4,
			input:   "12345",
			want:    "1234",
			wantErr: ErrMaxInputSizeExceeded,
		},
		{
			name:  "Empty input with zero limit",
			limit: 0,
			input: "",
			want:  "",
		},
		{
			name:  "Unlimited",
			limit: -1,
			input: strings.Repeat("x", 4096),
			want:  strings.Repeat("x", 4096),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l := newLimitErrorReader(strings.NewReader(test.input), test.limit)
			got, err := io.ReadAll(l)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("ReadAll() error = %v, want %v", err, test.wantErr)
			}
			if string(got) != test.want {
				t.Errorf("ReadAll() = %q, want %q", got, test.want)
			}
		})
	}
}
