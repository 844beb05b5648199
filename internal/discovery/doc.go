// Package discovery finds skill packages on disk. A package is any
// directory directly containing a SKILL.md file; its name, description,
// and version are read from the document's YAML frontmatter.
package discovery
