package skillfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDoc = `---
name: sprint-planner
description: Plans sprints from backlog items. Use when the user asks to plan a sprint.
metadata:
  author: Dana
  version: 1.0.0
  category: productivity
  tags: [agile, planning]
  created: 2026-08-24
---

# Sprint Planner

Body text.
`

func TestSplit(t *testing.T) {
	t.Run("well-formed document", func(t *testing.T) {
		fm, body, ok := Split(sampleDoc)
		if !ok {
			t.Fatal("Split() ok = false, want true")
		}
		if !strings.Contains(fm, "name: sprint-planner") {
			t.Errorf("frontmatter missing name line: %q", fm)
		}
		if strings.Contains(fm, "Sprint Planner") {
			t.Error("frontmatter should not contain body content")
		}
		if !strings.Contains(body, "# Sprint Planner") {
			t.Errorf("body missing heading: %q", body)
		}
		if strings.Contains(body, "name: sprint-planner") {
			t.Error("body should not contain frontmatter content")
		}
	})

	t.Run("missing opening delimiter", func(t *testing.T) {
		content := "name: x\n---\nbody\n"
		_, body, ok := Split(content)
		if ok {
			t.Error("Split() ok = true, want false")
		}
		if body != content {
			t.Errorf("body = %q, want full content", body)
		}
	})

	t.Run("missing closing delimiter", func(t *testing.T) {
		_, _, ok := Split("---\nname: x\nbody without closing\n")
		if ok {
			t.Error("Split() ok = true, want false")
		}
	})

	t.Run("empty header region", func(t *testing.T) {
		_, _, ok := Split("---\n---\nbody\n")
		if ok {
			t.Error("Split() ok = true, want false for blank header")
		}
	})

	t.Run("delimiter with trailing whitespace", func(t *testing.T) {
		_, _, ok := Split("--- \nname: x\n---\t\nbody\n")
		if !ok {
			t.Error("Split() ok = false, want true for padded delimiters")
		}
	})
}

func TestDecode(t *testing.T) {
	fm, _, ok := Split(sampleDoc)
	if !ok {
		t.Fatal("Split() failed on sample document")
	}

	decoded, err := Decode(fm)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if decoded.Name != "sprint-planner" {
		t.Errorf("Name = %q, want %q", decoded.Name, "sprint-planner")
	}
	if !strings.Contains(decoded.Description, "Use when") {
		t.Errorf("Description = %q, want trigger phrase retained", decoded.Description)
	}
	if decoded.Metadata.Author != "Dana" {
		t.Errorf("Metadata.Author = %q, want %q", decoded.Metadata.Author, "Dana")
	}
	if decoded.Metadata.Version != "1.0.0" {
		t.Errorf("Metadata.Version = %q, want %q", decoded.Metadata.Version, "1.0.0")
	}
	if len(decoded.Metadata.Tags) != 2 {
		t.Errorf("Metadata.Tags = %v, want 2 entries", decoded.Metadata.Tags)
	}
}

func TestDecode_BlockScalarDescription(t *testing.T) {
	fm := "name: my-skill\ndescription: >\n  First line of the description.\n  Use when the user asks for it.\n"
	decoded, err := Decode(fm)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !strings.Contains(decoded.Description, "Use when the user asks") {
		t.Errorf("Description = %q, want folded block scalar joined", decoded.Description)
	}
}

func TestDecode_InvalidYAML(t *testing.T) {
	if _, err := Decode("name: [unclosed"); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestParse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(sampleDoc), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	doc, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if doc.Frontmatter.Name != "sprint-planner" {
		t.Errorf("Frontmatter.Name = %q, want %q", doc.Frontmatter.Name, "sprint-planner")
	}
	if doc.Raw != sampleDoc {
		t.Error("Raw should hold the full document text")
	}
}

func TestParse_NotFound(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), FileName)); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestParseBytes_MissingDelimiters(t *testing.T) {
	if _, err := ParseBytes([]byte("no frontmatter here\n"), "SKILL.md"); err == nil {
		t.Fatal("expected error for missing delimiters, got nil")
	}
}

func TestIsKebabCase(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"sprint-planner", true},
		{"a", true},
		{"skill2-v3", true},
		{"", false},
		{"My-Skill", false},
		{"my_skill", false},
		{"-leading", false},
		{"trailing-", false},
		{"double--hyphen", false},
	}
	for _, tt := range tests {
		if got := IsKebabCase(tt.name); got != tt.want {
			t.Errorf("IsKebabCase(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestReservedKeyword(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"claude-helper", "claude"},
		{"my-anthropic-tool", "anthropic"},
		{"Claude-Helper", "claude"},
		{"sprint-planner", ""},
	}
	for _, tt := range tests {
		if got := ReservedKeyword(tt.name); got != tt.want {
			t.Errorf("ReservedKeyword(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestHasTriggerSignal(t *testing.T) {
	tests := []struct {
		desc string
		want bool
	}{
		{"Use when the user asks to plan a sprint.", true},
		{"USE FOR sprint planning.", true},
		{"Activates on demand.", true},
		{"Triggered by planning requests.", true},
		{"Plans sprints from backlog items.", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := HasTriggerSignal(tt.desc); got != tt.want {
			t.Errorf("HasTriggerSignal(%q) = %v, want %v", tt.desc, got, tt.want)
		}
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("one two\tthree\nfour"); got != 4 {
		t.Errorf("WordCount = %d, want 4", got)
	}
	if got := WordCount("   "); got != 0 {
		t.Errorf("WordCount = %d, want 0", got)
	}
}
