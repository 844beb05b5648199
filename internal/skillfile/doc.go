// Package skillfile defines the skill package layout and the SKILL.md
// primary document format: a YAML frontmatter block delimited by "---"
// markers followed by a free-form markdown body. It provides parsing,
// splitting, and JSON Schema validation of the frontmatter shape.
package skillfile
