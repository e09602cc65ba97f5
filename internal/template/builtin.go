package template

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed templates/*.tex
var builtinFS embed.FS

// loadBuiltins parses every embedded template, keyed by file name.
func loadBuiltins() (map[string]*Template, error) {
	dirEntries, err := builtinFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("reading built-in templates: %w", err)
	}

	templates := make(map[string]*Template, len(dirEntries))
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}

		path := "templates/" + entry.Name()
		data, err := builtinFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading built-in template %s: %w", path, err)
		}

		tmpl, err := parseTemplate(string(data))
		if err != nil {
			return nil, fmt.Errorf("built-in template %s: %w", path, err)
		}
		tmpl.Source = "built-in"
		templates[strings.TrimSuffix(entry.Name(), Extension)] = tmpl
	}

	return templates, nil
}
