// Package setup prepares the working directory for the discovery server:
// runtime directories, config presence gate and the optional config.yaml
// overrides.
package setup

import (
	"fmt"
	"os"
)

// EnsureDirs creates every directory in dirs, including missing parents.
// Directories that already exist are fine. The first filesystem error is
// returned wrapped instead of crashing the startup sequence.
func EnsureDirs(dirs []string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// ConfigPresent reports whether the configuration file exists. Pure
// existence check: the file is never opened, an empty file counts.
func ConfigPresent(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
