// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package resolver

import (
	"context"
)

// probeFlag is passed to every candidate. It is harmless for all known tools.
const probeFlag = "--help"

// IsAvailable reports whether tool can actually be invoked. It is meant for hosts
// where a resolved name may not be spawnable as is, which in practice means Windows.
//
// The strategies are tried in order and the first success wins:
//
//  1. spawn tool directly; exit codes 0 and 1 count, many tools exit 1 after printing usage
//  2. spawn every existing variant of tool: bare, current directory relative and
//     bundled directory relative, each also with the executable suffix appended
//  3. spawn tool from every PATH directory where it exists
//  4. spawn tool from the directory of the running binary, or its bundled subdirectory
//
// In strategies 2 to 4 any exit code counts, the spawn itself is the proof.
func (r *Resolver) IsAvailable(ctx context.Context, tool string) bool {
	if code, ok := r.spawn(ctx, tool); ok && (code == 0 || code == 1) {
		r.logger.Debug("tool can be invoked directly", "tool", tool)
		return true
	}

	for _, path := range r.variants(tool) {
		if r.spawnExisting(ctx, path) {
			r.logger.Debug("found invocable tool", "tool", tool, "path", path)
			return true
		}
	}

	profile := r.env.Profile()
	for _, dir := range profile.SplitList(r.env.Getenv("PATH")) {
		for _, path := range r.withSuffix(profile.Join(dir, tool), tool) {
			if r.spawnExisting(ctx, path) {
				r.logger.Debug("found invocable tool in PATH", "tool", tool, "path", path)
				return true
			}
		}
	}

	if dir, ok := r.executableDir(); ok {
		path := profile.Join(dir, tool)
		if r.spawnExisting(ctx, path) {
			r.logger.Debug("found invocable tool next to executable", "tool", tool, "path", path)
			return true
		}
		path = profile.Join(dir, bundledDir, profile.Base(tool))
		if r.spawnExisting(ctx, path) {
			r.logger.Debug("found invocable tool in bundled directory", "tool", tool, "path", path)
			return true
		}
	}

	r.logger.Debug("tool cannot be invoked", "tool", tool)
	return false
}

// variants returns the relative spellings of tool that strategy 2 tries.
func (r *Resolver) variants(tool string) []string {
	profile := r.env.Profile()
	dot := "." + profile.Separator()
	bases := []string{
		tool,
		dot + tool,
		profile.Join(bundledDir, tool),
		dot + profile.Join(bundledDir, tool),
	}
	if profile.HasExecutableSuffix(tool) {
		return bases
	}
	for _, b := range bases[:4] {
		bases = append(bases, b+profile.ExecutableSuffix())
	}
	return bases
}

// withSuffix returns path and, if tool carries no executable suffix, path with
// the suffix appended.
func (r *Resolver) withSuffix(path, tool string) []string {
	profile := r.env.Profile()
	if profile.HasExecutableSuffix(tool) {
		return []string{path}
	}
	return []string{path, path + profile.ExecutableSuffix()}
}

// spawnExisting spawns path if it exists and reports whether the spawn worked.
func (r *Resolver) spawnExisting(ctx context.Context, path string) bool {
	if !r.env.Exists(path) {
		return false
	}
	_, ok := r.spawn(ctx, path)
	return ok
}

// spawn runs name with the probe flag, bounded by the probe timeout.
func (r *Resolver) spawn(ctx context.Context, name string) (int, bool) {
	if r.probeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.probeTimeout)
		defer cancel()
	}
	code, err := r.env.Run(ctx, name, probeFlag)
	if err != nil {
		r.logger.Debug("probe spawn failed", "tool", name, "error", err)
		return code, false
	}
	return code, true
}
