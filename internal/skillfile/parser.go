package skillfile

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Document is a parsed SKILL.md: the raw text, the split frontmatter and
// body regions, and the decoded frontmatter fields.
type Document struct {
	Raw            string
	FrontmatterRaw string
	Body           string
	Frontmatter    Frontmatter
}

// Split separates content into the frontmatter region and the body.
// The first line must be the boundary marker and a second marker must
// appear on its own line later in the file. ok is false when either
// marker is missing or the region between them is blank; body then
// carries the full content so downstream checks can still run.
func Split(content string) (frontmatter, body string, ok bool) {
	lines := strings.Split(content, "\n")
	if strings.TrimRight(lines[0], " \t\r") != Delimiter {
		return "", content, false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t\r") != Delimiter {
			continue
		}
		frontmatter = strings.Join(lines[1:i], "\n")
		body = strings.Join(lines[i+1:], "\n")
		if strings.TrimSpace(frontmatter) == "" {
			return frontmatter, body, false
		}
		return frontmatter, body, true
	}
	return "", content, false
}

// Decode unmarshals a frontmatter region into a Frontmatter.
func Decode(frontmatterRaw string) (*Frontmatter, error) {
	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(frontmatterRaw), &fm); err != nil {
		return nil, fmt.Errorf("decoding frontmatter: %w", err)
	}
	return &fm, nil
}

// Parse reads a SKILL.md file and returns the fully parsed document.
func Parse(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading skill file %s: %w", path, err)
	}
	return ParseBytes(data, path)
}

// ParseBytes parses SKILL.md content already in memory. path is used for
// error messages only.
func ParseBytes(data []byte, path string) (*Document, error) {
	raw := string(data)
	fmRaw, body, ok := Split(raw)
	if !ok {
		return nil, fmt.Errorf("parsing %s: frontmatter delimiters missing or header region empty", path)
	}

	fm, err := Decode(fmRaw)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &Document{
		Raw:            raw,
		FrontmatterRaw: fmRaw,
		Body:           body,
		Frontmatter:    *fm,
	}, nil
}
