package mcp

import (
	"errors"
	"strings"

	"github.com/gorewood/texcli/internal/scaffold"
	"github.com/gorewood/texcli/internal/template"
	"github.com/gorewood/texcli/internal/workspace"
)

// ErrUnsafeTitle is returned when a tool-supplied title would leave the
// documents root once it becomes a path segment.
var ErrUnsafeTitle = errors.New(`title must not contain path separators or be "." or ".."`)

// resolveScaffold fills omitted input fields from defaults. The layout falls
// back from the input to the configured default, then to the template's
// preferred layout.
func resolveScaffold(input ScaffoldInput, defaults Defaults, registry *template.Registry) (scaffold.Request, scaffold.Options, error) {
	req := scaffold.Request{
		Title:      firstNonEmpty(input.Title, "Opgave "+defaults.Today),
		Date:       firstNonEmpty(input.Date, defaults.Today),
		Author:     firstNonEmpty(input.Author, defaults.Author),
		TemplateID: firstNonEmpty(input.Template, defaults.Template, template.DefaultID),
	}
	if err := checkTitle(req.Title); err != nil {
		return scaffold.Request{}, scaffold.Options{}, err
	}

	layout, err := workspace.ParseKind(firstNonEmpty(input.Layout, string(defaults.Layout), registry.Layout(req.TemplateID)))
	if err != nil {
		return scaffold.Request{}, scaffold.Options{}, err
	}

	opts := scaffold.Options{
		Root:      defaults.Root,
		Layout:    layout,
		Separator: firstNonEmpty(input.Separator, defaults.Separator),
		DryRun:    input.DryRun,
	}
	return req, opts, nil
}

// checkTitle rejects titles that would escape the root as a file or
// directory name.
func checkTitle(title string) error {
	if strings.ContainsAny(title, `/\`) || title == "." || title == ".." {
		return ErrUnsafeTitle
	}
	return nil
}

// firstNonEmpty returns the first non-empty value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
