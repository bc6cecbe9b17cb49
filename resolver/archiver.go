// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package resolver

import "github.com/fwscan/go-sqfstool/platform"

// FindArchiver looks for the 7-Zip command line tool and returns what should be
// spawned to run it.
//
// On Windows the conventional install directories are checked first, then every
// PATH entry, then the directory of the running binary and its 7-Zip subdirectory.
// Elsewhere the names 7-Zip is packaged under are looked up in PATH.
func (r *Resolver) FindArchiver() (string, bool) {
	if r.env.Profile() != platform.Windows {
		for _, name := range unixArchiverTools {
			if _, ok := r.which(name); ok {
				return name, true
			}
		}
		r.logger.Debug("7-Zip not found")
		return "", false
	}

	profile := r.env.Profile()

	for _, path := range windowsArchiverPaths {
		if r.env.Exists(path) {
			r.logger.Debug("found 7-Zip in install directory", "path", path)
			return path, true
		}
	}

	for _, dir := range profile.SplitList(r.env.Getenv("PATH")) {
		path := profile.Join(dir, windowsArchiverExe)
		if r.env.Exists(path) {
			r.logger.Debug("found 7-Zip in PATH", "path", path)
			return path, true
		}
	}

	if dir, ok := r.executableDir(); ok {
		path := profile.Join(dir, windowsArchiverExe)
		if r.env.Exists(path) {
			r.logger.Debug("found 7-Zip next to executable", "path", path)
			return path, true
		}
		path = profile.Join(dir, archiverDir, windowsArchiverExe)
		if r.env.Exists(path) {
			r.logger.Debug("found 7-Zip in executable subdirectory", "path", path)
			return path, true
		}
	}

	r.logger.Debug("7-Zip not found")
	return "", false
}
