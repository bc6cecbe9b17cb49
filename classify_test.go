// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package sqfstool_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sqfstool "github.com/fwscan/go-sqfstool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// image returns a buffer of size bytes starting with magic and carrying each
// patch at its offset.
func image(magic string, size int, patches map[int][]byte) []byte {
	data := make([]byte, size)
	copy(data, magic)
	for off, p := range patches {
		copy(data[off:], p)
	}
	return data
}

var (
	lzmaHeader  = []byte{0x5d, 0x00, 0x00, 0x80}
	lzmaRelaxed = []byte{0x5d, 0x00, 0x00, 0x01, 0x02, 0x03}
)

// TestClassify implements test cases
func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want sqfstool.Verdict
	}{
		{
			name: "28 byte little endian image with lzma header",
			data: image("hsqs", 28, map[int][]byte{10: lzmaHeader}),
			want: sqfstool.Verdict{Recognized: true, LZMA: true, Signals: []string{"lzma-header", "lzma-relaxed"}},
		},
		{
			name: "big endian image with compression id",
			data: image("sqsh", 40, map[int][]byte{24: {0x02}}),
			want: sqfstool.Verdict{Recognized: true, LZMA: true, Signals: []string{"superblock-compression"}},
		},
		{
			name: "lzma header in superblock field of 28 byte image",
			data: image("hsqs", 28, map[int][]byte{24: lzmaHeader}),
			want: sqfstool.Verdict{Recognized: true, LZMA: true, Signals: []string{"lzma-header", "superblock-compression"}},
		},
		{
			name: "relaxed signature only",
			data: image("hsqs", 32, map[int][]byte{8: lzmaRelaxed}),
			want: sqfstool.Verdict{Recognized: true, LZMA: true, Signals: []string{"lzma-relaxed"}},
		},
		{
			name: "valid magic without signals",
			data: image("hsqs", 64, nil),
			want: sqfstool.Verdict{Recognized: true, LZMA: false},
		},
		{
			name: "compression id ignored in 26 byte image",
			data: image("hsqs", 26, map[int][]byte{24: {0x02}}),
			want: sqfstool.Verdict{Recognized: true, LZMA: false},
		},
		{
			name: "compression id honored in 27 byte image",
			data: image("hsqs", 27, map[int][]byte{24: {0x02}}),
			want: sqfstool.Verdict{Recognized: true, LZMA: true, Signals: []string{"superblock-compression"}},
		},
		{
			name: "wrong magic with lzma header",
			data: image("shsq", 64, map[int][]byte{10: lzmaHeader, 24: {0x02}}),
			want: sqfstool.Verdict{},
		},
		{
			name: "xz magic",
			data: image("\xfd7zXZ\x00", 64, map[int][]byte{10: lzmaHeader}),
			want: sqfstool.Verdict{},
		},
		{
			name: "24 bytes are too short",
			data: image("hsqs", 24, map[int][]byte{10: lzmaHeader}),
			want: sqfstool.Verdict{},
		},
		{
			name: "empty",
			data: nil,
			want: sqfstool.Verdict{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sqfstool.Classify(tc.data))
		})
	}
}

func TestClassifySignalsAreIndependent(t *testing.T) {
	// a stream with a different dictionary size only matches the relaxed scan
	data := image("hsqs", 64, map[int][]byte{30: {0x5d, 0x00, 0x00, 0x00, 0x00, 0x01}})
	v := sqfstool.Classify(data)
	assert.True(t, v.LZMA)
	assert.Equal(t, []string{"lzma-relaxed"}, v.Signals)

	names := make([]string, 0, len(sqfstool.Signals))
	for _, s := range sqfstool.Signals {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"lzma-header", "superblock-compression", "lzma-relaxed"}, names)
}

// TestIsSquashfs implements test cases
func TestIsSquashfs(t *testing.T) {
	cases := []struct {
		header string
		want   bool
	}{
		{"hsqs", true},
		{"sqsh", true},
		{"hsqs\x00\x00", true},
		{"hsq", false},
		{"qshs", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := sqfstool.IsSquashfs([]byte(tc.header)); got != tc.want {
			t.Errorf("IsSquashfs(%q) = %v, want %v", tc.header, got, tc.want)
		}
	}
}

// TestClassifyFile implements test cases
func TestClassifyFile(t *testing.T) {
	far := make([]byte, 2048)
	copy(far[2000:], lzmaHeader)

	cases := []struct {
		name string
		data []byte
		opts []sqfstool.ConfigOption
		want bool
	}{
		{
			name: "lzma image",
			data: image("hsqs", 512, map[int][]byte{96: lzmaHeader}),
			want: true,
		},
		{
			name: "image without signals",
			data: image("sqsh", 512, nil),
			want: false,
		},
		{
			name: "recognized verdict wins over header window",
			data: image("hsqs", 512, map[int][]byte{508: {0x5d, 0x00, 0x00, 0x00}}),
			want: false,
		},
		{
			name: "unknown container with lzma header in first kilobyte",
			data: image("ABCD", 512, map[int][]byte{200: lzmaHeader}),
			want: true,
		},
		{
			name: "unknown container with loose lzma header",
			data: image("ABCD", 512, map[int][]byte{200: {0x5d, 0x00, 0x00, 0x00}}),
			want: true,
		},
		{
			name: "lzma header beyond first kilobyte",
			data: far,
			want: false,
		},
		{
			name: "short image falls back to header window",
			data: image("hsqs", 20, map[int][]byte{8: {0x5d, 0x00, 0x00, 0x00}}),
			want: true,
		},
		{
			name: "oversized image falls back to header window",
			data: image("hsqs", 4096, map[int][]byte{100: {0x5d, 0x00, 0x00, 0x00}, 24: {0x02}}),
			opts: []sqfstool.ConfigOption{sqfstool.WithMaxInputSize(1024)},
			want: true,
		},
		{
			name: "oversized image without header signature",
			data: image("hsqs", 4096, map[int][]byte{24: {0x02}}),
			opts: []sqfstool.ConfigOption{sqfstool.WithMaxInputSize(1024)},
			want: false,
		},
		{
			name: "empty file",
			data: nil,
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "image.bin")
			require.NoError(t, os.WriteFile(path, tc.data, 0640))

			got := sqfstool.ClassifyFile(path, sqfstool.NewConfig(tc.opts...))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassifyFileErrors(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, sqfstool.ClassifyFile(filepath.Join(dir, "missing"), nil))
	assert.False(t, sqfstool.ClassifyFile(dir, nil))
}

func TestClassifyReader(t *testing.T) {
	data := image("hsqs", 128, map[int][]byte{40: lzmaHeader})

	v, err := sqfstool.ClassifyReader(bytes.NewReader(data), nil)
	require.NoError(t, err)
	assert.True(t, v.Recognized)
	assert.True(t, v.LZMA)

	cfg := sqfstool.NewConfig(sqfstool.WithMaxInputSize(64))
	_, err = sqfstool.ClassifyReader(bytes.NewReader(data), cfg)
	assert.True(t, errors.Is(err, sqfstool.ErrMaxInputSizeExceeded))

	cfg = sqfstool.NewConfig(sqfstool.WithMaxInputSize(-1))
	v, err = sqfstool.ClassifyReader(strings.NewReader("not an image at all, just text"), cfg)
	require.NoError(t, err)
	assert.False(t, v.Recognized)
}
