package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/skillsmith-labs/skillsmith/internal/skillfile"
)

func writeSkill(t *testing.T, root, dirName, content string) {
	t.Helper()
	dir := filepath.Join(root, dirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, skillfile.FileName), []byte(content), 0644); err != nil {
		t.Fatalf("writing SKILL.md: %v", err)
	}
}

const plannerSkill = `---
name: sprint-planner
description: Plans sprints. Use when the user asks to plan a sprint.
metadata:
  author: Dana
  version: 1.2.0
---

# Sprint Planner
`

const notesSkill = `---
name: meeting-notes
description: Summarizes meetings. Use for note taking.
---

# Meeting Notes
`

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "sprint-planner", plannerSkill)
	writeSkill(t, root, "meeting-notes", notesSkill)

	// Noise that must be skipped: a bare directory and a plain file.
	if err := os.MkdirAll(filepath.Join(root, "not-a-skill"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "stray.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	d := NewDiscovery(WithRoots(root))
	pkgs, err := d.Discover()
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}

	if len(pkgs) != 2 {
		t.Fatalf("got %d packages, want 2", len(pkgs))
	}
	// Sorted by name.
	if pkgs[0].Name != "meeting-notes" || pkgs[1].Name != "sprint-planner" {
		t.Errorf("order = [%s, %s], want sorted by name", pkgs[0].Name, pkgs[1].Name)
	}

	planner := pkgs[1]
	if planner.Version != "1.2.0" {
		t.Errorf("Version = %q, want %q", planner.Version, "1.2.0")
	}
	if planner.Description == "" {
		t.Error("Description should be populated from frontmatter")
	}
	if planner.Dir != filepath.Join(root, "sprint-planner") {
		t.Errorf("Dir = %q, want package directory", planner.Dir)
	}

	// No nested metadata means no version.
	if pkgs[0].Version != "" {
		t.Errorf("Version = %q, want empty without metadata", pkgs[0].Version)
	}
}

func TestDiscover_MultipleRoots(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	writeSkill(t, rootA, "sprint-planner", plannerSkill)
	writeSkill(t, rootB, "meeting-notes", notesSkill)

	d := NewDiscovery(WithRoots(rootA, rootB, filepath.Join(rootB, "missing")))
	pkgs, err := d.Discover()
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(pkgs) != 2 {
		t.Errorf("got %d packages, want 2 (unreadable root skipped)", len(pkgs))
	}
}

func TestDiscover_NameFallsBackToDirectory(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "unnamed-skill", "---\ndescription: Use when needed.\n---\n\nBody.\n")

	pkgs, err := NewDiscovery(WithRoots(root)).Discover()
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(pkgs) != 1 {
		t.Fatalf("got %d packages, want 1", len(pkgs))
	}
	if pkgs[0].Name != "unnamed-skill" {
		t.Errorf("Name = %q, want directory fallback", pkgs[0].Name)
	}
}

func TestDiscover_EmptyRoot(t *testing.T) {
	pkgs, err := NewDiscovery(WithRoots(t.TempDir())).Discover()
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(pkgs) != 0 {
		t.Errorf("got %d packages, want 0", len(pkgs))
	}
}
