package template

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultID is the identifier every registry resolves unknown names to.
const DefaultID = "default"

// Extension is the file extension of template files and rendered documents.
const Extension = ".tex"

// Insertion point keys. Templates reference them as {{key}}.
const (
	KeyTitle  = "title"
	KeyAuthor = "author"
	KeyDate   = "date"
)

// Template represents a document template with metadata and body.
type Template struct {
	// Metadata from frontmatter
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     int    `yaml:"version,omitempty"`
	Layout      string `yaml:"layout,omitempty"` // preferred layout when none is configured

	// Body after frontmatter
	Content string `yaml:"-"`

	// Source location for display
	Source string `yaml:"-"`
}

// Info provides template metadata for listing.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source"`              // "built-in", "user"
	Overrides   string `json:"overrides,omitempty"` // source replaced by this entry
	Layout      string `json:"layout,omitempty"`    // preferred layout, empty for any
}

// Registry maps template identifiers to template bodies.
// It is populated once and read-only afterwards.
type Registry struct {
	templates map[string]*Template
	overrides map[string]string
}

// NewRegistry loads the built-in templates and then any *.tex files found in
// dir, which replace built-ins of the same name. An empty or missing dir is
// not an error.
func NewRegistry(dir string) (*Registry, error) {
	reg, err := newBuiltinRegistry()
	if err != nil {
		return nil, err
	}

	user, err := loadDir(dir)
	if err != nil {
		return nil, err
	}
	for name, tmpl := range user {
		if prev, ok := reg.templates[name]; ok {
			reg.overrides[name] = prev.Source
		}
		reg.templates[name] = tmpl
	}

	return reg, nil
}

// newBuiltinRegistry returns a registry holding only the embedded templates.
func newBuiltinRegistry() (*Registry, error) {
	builtins, err := loadBuiltins()
	if err != nil {
		return nil, err
	}
	if _, ok := builtins[DefaultID]; !ok {
		return nil, fmt.Errorf("built-in template %q missing", DefaultID)
	}
	return &Registry{
		templates: builtins,
		overrides: make(map[string]string),
	}, nil
}

// Lookup returns the template registered under id.
func (r *Registry) Lookup(id string) (*Template, bool) {
	tmpl, ok := r.templates[id]
	return tmpl, ok
}

// Layout returns the layout preferred by the template id resolves to, or ""
// when it has no preference. Unknown ids resolve to the default template.
func (r *Registry) Layout(id string) string {
	tmpl, ok := r.templates[id]
	if !ok {
		tmpl = r.templates[DefaultID]
	}
	return tmpl.Layout
}

// Render substitutes title, author and date into the template registered
// under id. Unknown ids render the default template and report usedFallback.
func (r *Registry) Render(id, title, author, date string) (text string, usedFallback bool) {
	tmpl, ok := r.templates[id]
	if !ok {
		tmpl = r.templates[DefaultID]
		usedFallback = true
	}
	return Substitute(tmpl.Content, map[string]string{
		KeyTitle:  title,
		KeyAuthor: author,
		KeyDate:   date,
	}), usedFallback
}

// List returns info for every registered template, sorted by name.
func (r *Registry) List() []Info {
	infos := make([]Info, 0, len(r.templates))
	for name, tmpl := range r.templates {
		infos = append(infos, Info{
			Name:        name,
			Description: tmpl.Description,
			Source:      tmpl.Source,
			Overrides:   r.overrides[name],
			Layout:      tmpl.Layout,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Substitute replaces every {{key}} in content with its value.
// Replacement is literal: values are not escaped and unknown keys are left alone.
func Substitute(content string, vars map[string]string) string {
	pairs := make([]string, 0, 2*len(vars))
	for key, val := range vars {
		pairs = append(pairs, "{{"+key+"}}", val)
	}
	return strings.NewReplacer(pairs...).Replace(content)
}

// loadDir loads every *.tex template in dir, keyed by file name.
func loadDir(dir string) (map[string]*Template, error) {
	result := make(map[string]*Template)
	if dir == "" {
		return result, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return result, nil
		}
		return nil, fmt.Errorf("reading template directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", path, err)
		}

		tmpl, err := parseTemplate(string(data))
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", path, err)
		}
		tmpl.Source = "user"
		result[strings.TrimSuffix(entry.Name(), Extension)] = tmpl
	}

	return result, nil
}

// parseTemplate parses a template from raw content with YAML frontmatter.
func parseTemplate(raw string) (*Template, error) {
	frontmatter, content := splitFrontmatter(raw)

	var tmpl Template
	if frontmatter != "" {
		if err := yaml.Unmarshal([]byte(frontmatter), &tmpl); err != nil {
			return nil, fmt.Errorf("invalid frontmatter: %w", err)
		}
	}

	tmpl.Content = strings.TrimSpace(content) + "\n"
	return &tmpl, nil
}

// splitFrontmatter separates YAML frontmatter from content.
// Frontmatter is delimited by --- at the start and end.
func splitFrontmatter(raw string) (frontmatter, content string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "---") {
		return "", raw
	}

	rest := raw[3:]
	before, after, ok := strings.Cut(rest, "\n---")
	if !ok {
		return "", raw
	}

	return strings.TrimSpace(before), strings.TrimSpace(after)
}
