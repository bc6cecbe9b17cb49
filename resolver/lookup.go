// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package resolver

// which looks name up the way a shell does: a name containing a separator is
// checked as is, a bare name is searched for in every PATH directory. Only
// executable files count. It returns the location that matched.
func (r *Resolver) which(name string) (string, bool) {
	profile := r.env.Profile()
	if profile.ContainsSeparator(name) {
		return name, r.env.IsExecutable(name)
	}

	for _, dir := range profile.SplitList(r.env.Getenv("PATH")) {
		candidate := profile.Join(dir, name)
		if r.env.IsExecutable(candidate) {
			return candidate, true
		}
		if !profile.HasExecutableSuffix(name) {
			candidate += profile.ExecutableSuffix()
			if r.env.IsExecutable(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}

// executableDir returns the directory of the running binary.
func (r *Resolver) executableDir() (string, bool) {
	exe, err := r.env.Executable()
	if err != nil {
		r.logger.Debug("cannot determine executable path", "error", err)
		return "", false
	}
	return r.env.Profile().Dir(exe), true
}
