package discovery

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"

	"github.com/skillsmith-labs/skillsmith/internal/logging"
	"github.com/skillsmith-labs/skillsmith/internal/skillfile"
)

// Package is a discovered skill package.
type Package struct {
	Name        string
	Description string
	Version     string
	Dir         string
}

// Discovery scans configured root directories for skill packages.
type Discovery struct {
	roots []string
}

// Option configures a Discovery.
type Option func(*Discovery)

// WithRoots sets the directories scanned for packages.
func WithRoots(roots ...string) Option {
	return func(d *Discovery) {
		d.roots = roots
	}
}

// NewDiscovery creates a Discovery. Without options it scans the current
// directory.
func NewDiscovery(opts ...Option) *Discovery {
	d := &Discovery{roots: []string{"."}}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Discover returns every package directly beneath the roots, sorted by
// name. Unreadable roots and directories without a SKILL.md are skipped.
func (d *Discovery) Discover() ([]*Package, error) {
	log := logging.GetLogger("discovery")
	var pkgs []*Package

	for _, root := range d.roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			log.Debug().Err(err).Str("root", root).Msg("skipping unreadable root")
			continue
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			dir := filepath.Join(root, entry.Name())
			pkg, err := load(filepath.Join(dir, skillfile.FileName))
			if err != nil {
				continue
			}
			if pkg.Name == "" {
				pkg.Name = entry.Name()
			}
			pkg.Dir = dir
			pkgs = append(pkgs, pkg)
		}
	}

	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].Name < pkgs[j].Name })
	return pkgs, nil
}

// load reads a SKILL.md and extracts frontmatter fields via goldmark's
// meta extension.
func load(path string) (*Package, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading skill file: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, fmt.Errorf("parsing markdown: %w", err)
	}

	fields := meta.Get(pctx)
	pkg := &Package{}
	if name, ok := fields["name"].(string); ok {
		pkg.Name = name
	}
	if desc, ok := fields["description"].(string); ok {
		pkg.Description = desc
	}
	pkg.Version = nestedString(fields["metadata"], "version")
	return pkg, nil
}

// nestedString pulls a string value out of a nested frontmatter mapping.
// goldmark-meta decodes nested maps with interface{} keys.
func nestedString(v interface{}, key string) string {
	switch m := v.(type) {
	case map[string]interface{}:
		if s, ok := m[key].(string); ok {
			return s
		}
	case map[interface{}]interface{}:
		if s, ok := m[key].(string); ok {
			return s
		}
	}
	return ""
}
