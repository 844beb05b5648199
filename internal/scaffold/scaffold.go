package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/skillsmith-labs/skillsmith/internal/logging"
	"github.com/skillsmith-labs/skillsmith/internal/skillfile"
)

//go:embed scaffolds
var scaffoldFS embed.FS

const skillTemplate = "scaffolds/SKILL.md.tmpl"

// Recoverable scaffold failures, distinguishable with errors.Is. All are
// raised before any filesystem write, so a failed call leaves no partial
// state behind.
var (
	ErrInvalidName  = errors.New("name is not kebab-case")
	ErrReservedName = errors.New("name contains a reserved keyword")
	ErrTargetExists = errors.New("target directory already exists")
)

// Params holds the caller-supplied inputs for one scaffold run.
type Params struct {
	Name       string
	Author     string
	Category   string
	Tags       []string
	Version    string // semver, defaults to 1.0.0
	License    string
	Scripts    bool
	References bool
	Assets     bool
	OutputDir  string // parent directory, defaults to "."
	DryRun     bool
}

// Result holds the outcome of a scaffold run. Files and Dirs are relative
// to PackageDir; on a dry run they describe what would have been created.
type Result struct {
	PackageDir string
	Files      []string
	Dirs       []string
	Warnings   []string
	DryRun     bool
}

// templateData is the variable set available to the SKILL.md template.
type templateData struct {
	Name     string
	Title    string // "sprint-planner" -> "Sprint Planner"
	Author   string
	Category string
	Version  string
	License  string
	Tags     string // comma-joined
	Created  string // ISO date
}

// Generate scaffolds a new skill package under p.OutputDir. Inputs are
// validated first; with DryRun set the planned layout is returned without
// touching the filesystem.
func Generate(p Params) (*Result, error) {
	log := logging.GetLogger("scaffold")

	name := strings.TrimSpace(p.Name)
	if !skillfile.IsKebabCase(name) {
		return nil, fmt.Errorf("%w: %q (use lowercase letters, digits, and hyphens, e.g. 'my-cool-skill')",
			ErrInvalidName, name)
	}
	if reserved := skillfile.ReservedKeyword(name); reserved != "" {
		return nil, fmt.Errorf("%w: %q contains %q", ErrReservedName, name, reserved)
	}

	version := p.Version
	if version == "" {
		version = "1.0.0"
	}
	if _, err := semver.StrictNewVersion(version); err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", version, err)
	}

	outputDir := p.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	parent, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("resolving output directory %s: %w", outputDir, err)
	}
	pkgDir := filepath.Join(parent, name)

	if _, err := os.Stat(pkgDir); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrTargetExists, pkgDir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking target %s: %w", pkgDir, err)
	}

	content, err := renderSkillFile(name, version, p)
	if err != nil {
		return nil, err
	}

	result := &Result{
		PackageDir: pkgDir,
		Files:      []string{skillfile.FileName},
		DryRun:     p.DryRun,
	}
	for _, aux := range []struct {
		name string
		want bool
	}{
		{"scripts", p.Scripts},
		{"references", p.References},
		{"assets", p.Assets},
	} {
		if !aux.want {
			continue
		}
		result.Dirs = append(result.Dirs, aux.name)
		result.Files = append(result.Files, filepath.Join(aux.name, ".gitkeep"))
	}

	if p.DryRun {
		log.Debug().Str("dir", pkgDir).Strs("files", result.Files).Msg("dry run, nothing written")
		return result, nil
	}

	if err := os.MkdirAll(pkgDir, 0755); err != nil {
		return nil, fmt.Errorf("creating package directory %s: %w", pkgDir, err)
	}
	skillPath := filepath.Join(pkgDir, skillfile.FileName)
	if err := os.WriteFile(skillPath, content, 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", skillPath, err)
	}
	for _, dir := range result.Dirs {
		auxDir := filepath.Join(pkgDir, dir)
		if err := os.MkdirAll(auxDir, 0755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", auxDir, err)
		}
		keep := filepath.Join(auxDir, ".gitkeep")
		if err := os.WriteFile(keep, nil, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", keep, err)
		}
	}

	// Self-check the generated frontmatter shape; problems become
	// warnings rather than failures.
	if doc, parseErr := skillfile.Parse(skillPath); parseErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not re-parse generated SKILL.md: %v", parseErr))
	} else if sr, schemaErr := skillfile.ValidateSchema(doc.FrontmatterRaw); schemaErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate generated frontmatter: %v", schemaErr))
	} else if !sr.Valid {
		for _, issue := range sr.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			result.Warnings = append(result.Warnings, msg)
		}
	}

	log.Info().Str("dir", pkgDir).Int("files", len(result.Files)).Msg("package scaffolded")
	return result, nil
}

// renderSkillFile executes the embedded SKILL.md template.
func renderSkillFile(name, version string, p Params) ([]byte, error) {
	tmplBytes, err := scaffoldFS.ReadFile(skillTemplate)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", skillTemplate, err)
	}
	tmpl, err := template.New(filepath.Base(skillTemplate)).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", skillTemplate, err)
	}

	var tags []string
	for _, t := range p.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	author := p.Author
	if author == "" {
		author = "Unknown"
	}
	category := p.Category
	if category == "" {
		category = "productivity"
	}

	data := templateData{
		Name:     name,
		Title:    cases.Title(language.English).String(strings.ReplaceAll(name, "-", " ")),
		Author:   author,
		Category: category,
		Version:  version,
		License:  p.License,
		Tags:     strings.Join(tags, ", "),
		Created:  time.Now().Format("2006-01-02"),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", skillTemplate, err)
	}
	return buf.Bytes(), nil
}

// Tree renders the package layout as a simple ASCII tree, used by the
// create command for both the dry-run plan and the success summary.
func (r *Result) Tree() string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s/\n", filepath.Base(r.PackageDir))
	for _, dir := range r.Dirs {
		fmt.Fprintf(&b, "  ├── %s/\n", dir)
		fmt.Fprintf(&b, "  │   └── .gitkeep\n")
	}
	fmt.Fprintf(&b, "  └── %s\n", skillfile.FileName)
	return b.String()
}
