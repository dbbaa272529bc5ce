package site

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveRoot returns the absolute served directory for root.
// Relative roots are joined onto the directory of the running executable.
func ResolveRoot(root string) (string, error) {
	if filepath.IsAbs(root) {
		return filepath.Clean(root), nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return joinRoot(filepath.Dir(exe), root), nil
}

func joinRoot(base, root string) string {
	return filepath.Join(base, filepath.FromSlash(root))
}
