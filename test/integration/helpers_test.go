//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// assertFileExists fails the test when path is missing or not a regular file.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file %s: %v", path, err)
	}
	if info.IsDir() {
		t.Fatalf("expected file %s, found directory", path)
	}
}

// assertDirExists fails the test when path is missing or not a directory.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected directory %s: %v", path, err)
	}
	if !info.IsDir() {
		t.Fatalf("expected directory %s, found file", path)
	}
}

// assertNotExists fails the test when path exists.
func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected %s to not exist", path)
	}
}

// rewriteDescription replaces the scaffolded empty description in the
// package's SKILL.md, standing in for the operator's editing pass.
func rewriteDescription(t *testing.T, pkgDir, description string) {
	t.Helper()
	path := filepath.Join(pkgDir, "SKILL.md")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	content := strings.Replace(string(data), `description: ""`, "description: "+description, 1)
	if content == string(data) {
		t.Fatal("placeholder description not found in scaffolded SKILL.md")
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
