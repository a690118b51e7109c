// =============================================================================
// Honeybee 3DM - File Utilities
// =============================================================================
//
// Small file helpers shared by the CLI commands: output directory handling,
// output naming and extension checks.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultOutputName is used when no --name is provided.
const DefaultOutputName = "unnamed"

// EnsureDir creates the directory (and parents) when it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("utils: failed to create directory %s: %w", dir, err)
	}
	return nil
}

// OutputPath joins folder and name with the given extension. An empty name
// falls back to DefaultOutputName; an empty folder means the current
// directory.
func OutputPath(folder, name, ext string) string {
	if name == "" {
		name = DefaultOutputName
	}
	if folder == "" {
		folder = "."
	}
	return filepath.Join(folder, name+ext)
}

// HasExtension reports whether path carries the extension, ignoring case.
func HasExtension(path, ext string) bool {
	return strings.EqualFold(filepath.Ext(path), ext)
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
