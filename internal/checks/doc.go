// Package checks runs the publication rule battery against a skill
// package directory. The 13 rules are evaluated independently and in a
// fixed order; a rule whose precondition is missing (unreadable SKILL.md,
// unparseable frontmatter) is reported as failed with the precondition
// named, never skipped. Only a target path that cannot be opened as a
// directory aborts the run.
package checks
