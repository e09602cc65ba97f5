// Package scaffold renders a document template and lays it out on disk.
//
// It is the straight-line pipeline shared by the CLI and the MCP server:
// Render feeds Materialize. Environment lookups (date, author, documents
// directory) arrive as plain values so the pipeline never queries the host.
package scaffold

import (
	"errors"

	"github.com/gorewood/texcli/internal/template"
	"github.com/gorewood/texcli/internal/workspace"
)

// ErrNoRoot is returned when Options.Root is empty.
var ErrNoRoot = errors.New("no output directory")

// Request is the immutable input of one scaffold run.
type Request struct {
	Title      string `json:"title"`
	Date       string `json:"date"`
	Author     string `json:"author"`
	TemplateID string `json:"template"`
}

// Options controls where and how the document is written.
type Options struct {
	Root      string
	Layout    workspace.Kind
	Separator string
	DryRun    bool
}

// Outcome is the result of a scaffold run.
type Outcome struct {
	Document     string           `json:"-"`
	UsedFallback bool             `json:"used_fallback"`
	Result       workspace.Result `json:"result"`
}

// Renderer renders a template by id.
type Renderer interface {
	Render(id, title, author, date string) (text string, usedFallback bool)
}

// Service runs scaffold requests against a renderer and a filesystem.
type Service struct {
	renderer Renderer
	fsys     workspace.FS
}

// NewService creates a Service. A nil fsys uses the real filesystem.
func NewService(renderer Renderer, fsys workspace.FS) *Service {
	if fsys == nil {
		fsys = workspace.OSFS{}
	}
	return &Service{renderer: renderer, fsys: fsys}
}

// Run renders req and materializes it under opts.Root. With opts.DryRun the
// document is rendered but only previewed on disk.
func (s *Service) Run(req Request, opts Options) (Outcome, error) {
	if opts.Root == "" {
		return Outcome{}, ErrNoRoot
	}

	templateID := req.TemplateID
	if templateID == "" {
		templateID = template.DefaultID
	}

	text, fallback := s.renderer.Render(templateID, req.Title, req.Author, req.Date)
	outcome := Outcome{Document: text, UsedFallback: fallback}

	cfg := workspace.Config{
		Kind:      opts.Layout,
		Title:     req.Title,
		Separator: opts.Separator,
	}

	var (
		result workspace.Result
		err    error
	)
	if opts.DryRun {
		result, err = workspace.Preview(s.fsys, opts.Root, cfg)
	} else {
		result, err = workspace.Materialize(s.fsys, opts.Root, cfg, text)
	}
	if err != nil {
		return outcome, err
	}

	outcome.Result = result
	return outcome, nil
}
