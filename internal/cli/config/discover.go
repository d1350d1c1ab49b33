package config

import (
	"os"
	"path/filepath"

	"github.com/lintrc/lintrc/pkg/rcfile/pyproject"
)

// rcFileNames are the artifact names probed in each directory, in the
// order the consumer probes them. pyproject.toml participates only when
// it actually carries a [tool.pylint] table.
var rcFileNames = []string{"pylintrc", ".pylintrc"}

// FindRCFile searches upward from startDir for a pylint configuration
// file, mirroring the consumer's own discovery: pylintrc, then .pylintrc,
// then pyproject.toml with a [tool.pylint] table. The search is bounded
// by maxUpwardSearchLevels.
func FindRCFile(startDir string) (string, bool) {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if path, ok := rcFileIn(dir); ok {
			return path, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return "", false
}

// rcFileIn probes a single directory for a usable configuration file.
func rcFileIn(dir string) (string, bool) {
	for _, name := range rcFileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}

	candidate := filepath.Join(dir, pyproject.FileName)
	if info, err := os.Stat(candidate); err != nil || info.IsDir() {
		return "", false
	}
	// A pyproject.toml without a pylint table is someone else's file.
	if _, err := pyproject.Load(candidate); err != nil {
		return "", false
	}
	return candidate, true
}

// IsPyproject reports whether path names a pyproject.toml file, which
// commands parse through the TOML bridge instead of the ini decoder.
func IsPyproject(path string) bool {
	return filepath.Base(path) == pyproject.FileName
}
