package testutil

import (
	"os"
	"testing"
)

// AssertSymlink checks that path is a symlink pointing at target
func AssertSymlink(t *testing.T, path, target string) {
	t.Helper()

	info, err := os.Lstat(path)
	if err != nil {
		t.Errorf("Expected symlink at %s: %v", path, err)
		return
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Errorf("Expected %s to be a symlink, got mode %v", path, info.Mode())
		return
	}

	got, err := os.Readlink(path)
	if err != nil {
		t.Errorf("Failed to read symlink %s: %v", path, err)
		return
	}
	if got != target {
		t.Errorf("Symlink %s points to %q, want %q", path, got, target)
	}
}

// AssertNotExists checks that nothing, not even a dangling symlink, is at path
func AssertNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Lstat(path); err == nil {
		t.Errorf("Expected nothing at %s", path)
	} else if !os.IsNotExist(err) {
		t.Errorf("Unexpected error checking %s: %v", path, err)
	}
}
