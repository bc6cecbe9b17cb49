// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"runtime"
	"strings"
)

// Profile is the family of host platform a lookup is performed for. Path spelling,
// the PATH list separator and the executable suffix all derive from it.
type Profile int

const (
	// Unix covers Linux, macOS and the BSDs.
	Unix Profile = iota

	// Windows uses backslash separated paths and ".exe" suffixed executables.
	Windows
)

// Host returns the profile of the platform the binary was built for.
func Host() Profile {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Unix
}

// String returns the name of the profile.
func (p Profile) String() string {
	switch p {
	case Windows:
		return "windows"
	default:
		return "unix"
	}
}

// Separator returns the preferred path separator.
func (p Profile) Separator() string {
	if p == Windows {
		return `\`
	}
	return "/"
}

// separators lists every byte accepted as a path separator.
func (p Profile) separators() string {
	if p == Windows {
		return `\/`
	}
	return "/"
}

// ListSeparator returns the separator of the PATH environment variable.
func (p Profile) ListSeparator() string {
	if p == Windows {
		return ";"
	}
	return ":"
}

// ExecutableSuffix returns the file suffix executables carry, if any.
func (p Profile) ExecutableSuffix() string {
	if p == Windows {
		return ".exe"
	}
	return ""
}

// HasExecutableSuffix reports whether name already ends with the executable
// suffix, ignoring case. It is always true for profiles without a suffix.
func (p Profile) HasExecutableSuffix(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), p.ExecutableSuffix())
}

// ContainsSeparator reports whether name is a path rather than a bare command name.
func (p Profile) ContainsSeparator(name string) bool {
	return strings.ContainsAny(name, p.separators())
}

// SplitList splits a PATH-like value into its entries. Empty entries are dropped.
func (p Profile) SplitList(value string) []string {
	var dirs []string
	for _, dir := range strings.Split(value, p.ListSeparator()) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// Join joins path elements with the profile's separator. Empty elements are
// skipped and redundant separators at the element boundaries are dropped. Unlike
// [path/filepath.Join] the result is not cleaned, so "." prefixes survive.
func (p Profile) Join(elem ...string) string {
	var b strings.Builder
	for _, e := range elem {
		if e == "" {
			continue
		}
		if b.Len() > 0 {
			e = strings.TrimLeft(e, p.separators())
			if cur := b.String(); !strings.ContainsRune(p.separators(), rune(cur[len(cur)-1])) {
				b.WriteString(p.Separator())
			}
		}
		b.WriteString(e)
	}
	return b.String()
}

// Dir returns everything before the final separator of path. A path without a
// separator yields ".".
func (p Profile) Dir(path string) string {
	i := strings.LastIndexAny(path, p.separators())
	switch {
	case i < 0:
		return "."
	case i == 0:
		return path[:1]
	default:
		return path[:i]
	}
}

// Base returns the last element of path.
func (p Profile) Base(path string) string {
	path = strings.TrimRight(path, p.separators())
	if i := strings.LastIndexAny(path, p.separators()); i >= 0 {
		return path[i+1:]
	}
	return path
}
