package skillfile

import (
	"regexp"
	"strings"
)

// FileName is the required primary document name. The comparison is
// case-sensitive even on case-insensitive filesystems.
const FileName = "SKILL.md"

// CompanionFile must not exist at the package root. A repo-level README
// is fine, but not inside the skill directory.
const CompanionFile = "README.md"

// Delimiter is the boundary marker that opens and closes the frontmatter
// block, each occurrence on its own line.
const Delimiter = "---"

// Publication limits.
const (
	// MaxDescriptionChars is the character (not byte) ceiling for the
	// frontmatter description.
	MaxDescriptionChars = 1024

	// MaxWords is the whitespace-delimited word ceiling for the full
	// document, frontmatter included.
	MaxWords = 5000
)

// ReservedKeywords may not appear anywhere in a skill name.
var ReservedKeywords = []string{"claude", "anthropic"}

// TriggerSignals are the phrases of which the description must contain at
// least one, so the hosting agent knows when to invoke the skill.
var TriggerSignals = []string{"use when", "use for", "trigger", "activate"}

var kebabCase = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// IsKebabCase reports whether s is lowercase alphanumeric words joined by
// single hyphens, with no leading or trailing hyphen.
func IsKebabCase(s string) bool {
	return kebabCase.MatchString(s)
}

// ReservedKeyword returns the first reserved keyword contained in name
// (case-insensitive), or "" when name is clean.
func ReservedKeyword(name string) string {
	lower := strings.ToLower(name)
	for _, r := range ReservedKeywords {
		if strings.Contains(lower, r) {
			return r
		}
	}
	return ""
}

// HasTriggerSignal reports whether the description contains at least one
// recognized trigger phrase (case-insensitive).
func HasTriggerSignal(description string) bool {
	lower := strings.ToLower(description)
	for _, sig := range TriggerSignals {
		if strings.Contains(lower, sig) {
			return true
		}
	}
	return false
}

// WordCount returns the whitespace-delimited word count of text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Frontmatter holds the key-value header block of a SKILL.md document.
type Frontmatter struct {
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	License       string   `yaml:"license,omitempty"`
	Compatibility string   `yaml:"compatibility,omitempty"`
	AllowedTools  []string `yaml:"allowed-tools,omitempty"`
	Metadata      Metadata `yaml:"metadata,omitempty"`
}

// Metadata is the fixed-shape record nested under the metadata key. Only
// these fields are ever read back; unknown keys are rejected by the schema.
type Metadata struct {
	Author   string   `yaml:"author,omitempty"`
	Version  string   `yaml:"version,omitempty"`
	Category string   `yaml:"category,omitempty"`
	Tags     []string `yaml:"tags,omitempty"`
	Created  string   `yaml:"created,omitempty"`
}
