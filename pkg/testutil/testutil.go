// Package testutil provides shared helpers for wheelhouse tests.
package testutil

import (
	"crypto/sha256"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
)

// RecordHash returns the RECORD-style hash field for the given content:
// base64-url-encoded SHA-256 digest with "=" padding stripped
func RecordHash(content string) string {
	digest := sha256.Sum256([]byte(content))
	return "sha256=" + base64.RawURLEncoding.EncodeToString(digest[:])
}

// WriteFile creates a file with content under dir, creating intermediate
// directories as needed, and returns its path
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// NewProject creates a throwaway project directory containing a
// pyproject.toml with the given content and returns its path
func NewProject(t *testing.T, pyprojectContent string) string {
	t.Helper()

	dir := t.TempDir()
	WriteFile(t, dir, "pyproject.toml", pyprojectContent)
	return dir
}

// MinimalPyproject is a valid configuration carrying only the fields a
// build strictly needs
const MinimalPyproject = `[build-system]
requires = ["wheelhouse"]
build-backend = "wheelhouse"

[project]
name = "sample"
version = "0.1.0"
`
