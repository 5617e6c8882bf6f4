// Package testutil provides filesystem fixtures for classifier tests.
// All files live under t.TempDir() and are cleaned up automatically.
package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// Fixture is a scratch directory tree for a single test.
type Fixture struct {
	T       *testing.T
	RootDir string
}

// NewFixture creates an empty fixture rooted in a temp directory
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	return &Fixture{T: t, RootDir: t.TempDir()}
}

// CreateFile creates a file with the given content and returns its path.
// Parent directories are created as needed.
func (f *Fixture) CreateFile(relPath string, content []byte) string {
	f.T.Helper()

	fullPath := filepath.Join(f.RootDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		f.T.Fatalf("failed to create directory for %s: %v", fullPath, err)
	}
	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		f.T.Fatalf("failed to create file %s: %v", fullPath, err)
	}
	return fullPath
}

// CreateText creates a file from a string
func (f *Fixture) CreateText(relPath, content string) string {
	f.T.Helper()
	return f.CreateFile(relPath, []byte(content))
}

// CreateDir creates a directory and returns its path
func (f *Fixture) CreateDir(relPath string) string {
	f.T.Helper()

	fullPath := filepath.Join(f.RootDir, relPath)
	if err := os.MkdirAll(fullPath, 0755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", fullPath, err)
	}
	return fullPath
}

// CreateSymlink creates a symbolic link at linkPath pointing to target
func (f *Fixture) CreateSymlink(target, linkPath string) string {
	f.T.Helper()

	fullPath := filepath.Join(f.RootDir, linkPath)
	if err := os.Symlink(target, fullPath); err != nil {
		f.T.Fatalf("failed to create symlink %s: %v", fullPath, err)
	}
	return fullPath
}

// Path joins a relative path onto the fixture root
func (f *Fixture) Path(relPath string) string {
	return filepath.Join(f.RootDir, relPath)
}

// Exists reports whether a relative path exists in the fixture
func (f *Fixture) Exists(relPath string) bool {
	_, err := os.Lstat(f.Path(relPath))
	return err == nil
}

// ListNames returns the sorted names of the immediate children of a
// fixture-relative directory.
func (f *Fixture) ListNames(relPath string) []string {
	f.T.Helper()

	entries, err := os.ReadDir(f.Path(relPath))
	if err != nil {
		f.T.Fatalf("failed to list %s: %v", relPath, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

// ReadFile returns the content of a fixture-relative file
func (f *Fixture) ReadFile(relPath string) []byte {
	f.T.Helper()

	data, err := os.ReadFile(f.Path(relPath))
	if err != nil {
		f.T.Fatalf("failed to read %s: %v", relPath, err)
	}
	return data
}
