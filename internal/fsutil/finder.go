// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultTaskfileNames lists the taskfile names probed when no explicit path
// is given, in priority order.
var DefaultTaskfileNames = []string{
	"taskmill.hcl",
	"taskmill.yaml",
	"taskmill.yml",
	"taskmill.toml",
}

// FindTaskfile searches dir for a default-named taskfile and returns the
// path of the first candidate that exists as a regular file.
func FindTaskfile(dir string) (string, error) {
	for _, name := range DefaultTaskfileNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", fmt.Errorf("error accessing %s: %w", path, err)
		}
		if info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", fmt.Errorf("no taskfile found in %s (looked for %s)", dir, strings.Join(DefaultTaskfileNames, ", "))
}
