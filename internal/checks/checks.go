package checks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/skillsmith-labs/skillsmith/internal/logging"
	"github.com/skillsmith-labs/skillsmith/internal/skillfile"
)

// RuleCount is the fixed number of publication rules.
const RuleCount = 13

// Rule identifiers, in evaluation order.
const (
	RuleSkillFileExists     = "skill-file-exists"
	RuleNoCompanionFile     = "no-companion-file"
	RuleDirKebabCase        = "dir-kebab-case"
	RuleDelimiters          = "frontmatter-delimiters"
	RuleNameKebabCase       = "name-kebab-case"
	RuleNameMatchesDir      = "name-matches-dir"
	RuleNameReserved        = "name-reserved-keywords"
	RuleDescriptionPresent  = "description-present"
	RuleDescriptionLength   = "description-length"
	RuleDescriptionBrackets = "description-angle-brackets"
	RuleDescriptionTrigger  = "description-trigger-signal"
	RuleBodyBrackets        = "body-angle-brackets"
	RuleWordCount           = "word-count"
)

// Result is the outcome of a single rule.
type Result struct {
	ID     string
	Num    int
	Label  string
	Passed bool
	Detail string // measured value or missing-precondition note
	Fix    string // remediation hint, failures only
}

// Report is the ordered outcome of a full run.
type Report struct {
	Dir     string
	Results []Result
}

// Passed reports whether every rule passed.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// Failed returns the number of failed rules.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed {
			n++
		}
	}
	return n
}

// Run evaluates all publication rules against the package at dir. The
// error return is reserved for a target that cannot be opened as a
// directory; every other problem is reported as a failed rule.
func Run(dir string) (*Report, error) {
	log := logging.GetLogger("checks")

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving package path %s: %w", dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("opening package directory %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("opening package directory %s: not a directory", abs)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("reading package directory %s: %w", abs, err)
	}

	folderName := filepath.Base(abs)
	report := &Report{Dir: abs}
	add := func(id, label string, passed bool, detail, fix string) {
		report.Results = append(report.Results, Result{
			ID:     id,
			Num:    len(report.Results) + 1,
			Label:  label,
			Passed: passed,
			Detail: detail,
			Fix:    fix,
		})
	}

	// Rule 1: SKILL.md exists with exact casing.
	haveExact := false
	wrongCase := ""
	for _, e := range entries {
		if e.Name() == skillfile.FileName {
			haveExact = true
		} else if strings.EqualFold(e.Name(), skillfile.FileName) {
			wrongCase = e.Name()
		}
	}
	detail := ""
	if !haveExact {
		detail = skillfile.FileName + " not found"
		if wrongCase != "" {
			detail = fmt.Sprintf("found %q instead", wrongCase)
		}
	}
	add(RuleSkillFileExists, "SKILL.md exists with exact casing", haveExact,
		detail, "Rename the file to exactly 'SKILL.md' (case-sensitive).")

	// Rule 2: no README.md at the package root.
	hasCompanion := false
	for _, e := range entries {
		if strings.EqualFold(e.Name(), skillfile.CompanionFile) {
			hasCompanion = true
			break
		}
	}
	add(RuleNoCompanionFile, "no README.md at the package root", !hasCompanion,
		"", "Remove README.md from the package. A repo-level README is fine, but not inside the skill directory.")

	// Rule 3: directory name is kebab-case.
	add(RuleDirKebabCase, fmt.Sprintf("directory name is kebab-case: %s", folderName),
		skillfile.IsKebabCase(folderName),
		"", "Rename the directory using only lowercase letters, digits, and hyphens (e.g., 'my-skill').")

	// Read the primary document. When it is missing or unreadable every
	// content rule fails with the precondition named.
	var raw string
	precondition := ""
	if haveExact {
		data, readErr := os.ReadFile(filepath.Join(abs, skillfile.FileName))
		if readErr != nil {
			precondition = fmt.Sprintf("%s not readable: %v", skillfile.FileName, readErr)
			log.Warn().Err(readErr).Msg("skill file unreadable")
		} else {
			raw = string(data)
		}
	} else {
		precondition = skillfile.FileName + " missing; cannot evaluate"
	}

	fmRaw, body, splitOK := "", "", false
	var fm skillfile.Frontmatter
	fmNote := precondition
	if precondition == "" {
		fmRaw, body, splitOK = skillfile.Split(raw)
		decoded, decodeErr := skillfile.Decode(fmRaw)
		if decodeErr != nil {
			fmNote = "frontmatter not parseable"
			log.Debug().Err(decodeErr).Msg("frontmatter decode failed")
		} else {
			fm = *decoded
		}
	}

	name := strings.TrimSpace(fm.Name)
	desc := strings.TrimSpace(fm.Description)

	// Rule 4: frontmatter delimiters are well-formed.
	add(RuleDelimiters, "frontmatter delimiters are well-formed",
		precondition == "" && splitOK, precondition,
		"Open the file with '---' on the first line and close the header with a second '---' line.")

	// Rule 5: name is kebab-case.
	d := fmNote
	if d == "" && name == "" {
		d = "name field missing"
	}
	add(RuleNameKebabCase, "name is kebab-case", name != "" && skillfile.IsKebabCase(name),
		d, "Use only lowercase letters, digits, and hyphens in the name field.")

	// Rule 6: name matches the directory name.
	d = fmNote
	if d == "" && name != "" && name != folderName {
		d = fmt.Sprintf("%q != %q", name, folderName)
	}
	add(RuleNameMatchesDir, "name matches the directory name", name != "" && name == folderName,
		d, fmt.Sprintf("Either rename the directory to match the name field or set 'name: %s'.", folderName))

	// Rule 7: name avoids reserved keywords. Evaluated on the literal
	// value, so an absent name passes vacuously.
	reserved := skillfile.ReservedKeyword(name)
	d = precondition
	if reserved != "" {
		d = fmt.Sprintf("contains %q", reserved)
	}
	add(RuleNameReserved, "name avoids reserved keywords (claude, anthropic)",
		precondition == "" && reserved == "", d,
		"Remove the reserved keyword from the skill name.")

	// Rule 8: description is present.
	add(RuleDescriptionPresent, "description is present", desc != "", fmNote,
		"Add a description field to the frontmatter.")

	// Rule 9: description length. An empty description has nothing to
	// measure and fails alongside rule 8.
	n := utf8.RuneCountInString(desc)
	d = fmt.Sprintf("%d chars (limit %d)", n, skillfile.MaxDescriptionChars)
	fix := "Write the description before measuring its length."
	if n > skillfile.MaxDescriptionChars {
		fix = fmt.Sprintf("Shorten the description by %d characters.", n-skillfile.MaxDescriptionChars)
	}
	if desc == "" {
		d = "no description to measure"
	}
	add(RuleDescriptionLength, "description is at most 1024 characters",
		desc != "" && n <= skillfile.MaxDescriptionChars, d, fix)

	// Rule 10: no angle brackets in the description. An empty value
	// passes vacuously; an unreadable file does not.
	add(RuleDescriptionBrackets, "description has no angle brackets",
		precondition == "" && !strings.ContainsAny(desc, "<>"), precondition,
		"Remove all < and > characters from the description.")

	// Rule 11: description contains a trigger signal.
	add(RuleDescriptionTrigger, "description contains a trigger signal",
		skillfile.HasTriggerSignal(desc), fmNote,
		"Add 'Use when the user asks to ...' or a similar trigger condition to the description.")

	// Rule 12: no angle brackets in the body. With malformed delimiters
	// the whole document counts as body.
	d = precondition
	add(RuleBodyBrackets, "body has no angle brackets",
		precondition == "" && !strings.ContainsAny(body, "<>"), d,
		"Remove all < and > characters from the SKILL.md body.")

	// Rule 13: total word count, frontmatter included.
	wc := skillfile.WordCount(raw)
	d = fmt.Sprintf("%d words (limit %d)", wc, skillfile.MaxWords)
	if precondition != "" {
		d = precondition
	}
	add(RuleWordCount, "document is at most 5000 words",
		precondition == "" && wc <= skillfile.MaxWords, d,
		"Move detailed documentation to a references/ file and link to it from SKILL.md.")

	log.Debug().Str("dir", abs).Int("failed", report.Failed()).Msg("checks complete")
	return report, nil
}
