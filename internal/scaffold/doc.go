// Package scaffold generates new skill packages from an embedded
// template. It powers the "skillsmith create" command, producing the
// package directory with a prefilled SKILL.md stub and optional scripts/,
// references/, and assets/ subdirectories. Name and version are validated
// before anything touches the filesystem, and an existing target is never
// overwritten.
package scaffold
