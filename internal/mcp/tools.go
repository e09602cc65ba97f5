package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/texcli/internal/scaffold"
	"github.com/gorewood/texcli/internal/template"
	"github.com/gorewood/texcli/internal/workspace"
)

// --- List templates tool ---

// ListTemplatesInput is the input for the list_templates tool (no parameters needed).
type ListTemplatesInput struct{}

// TemplateSummary describes one template.
type TemplateSummary struct {
	Name        string `json:"name"                  jsonschema:"template identifier"`
	Description string `json:"description,omitempty" jsonschema:"short description"`
	Source      string `json:"source"                jsonschema:"built-in or user"`
	Overrides   string `json:"overrides,omitempty"   jsonschema:"source this template replaces"`
	Layout      string `json:"layout,omitempty"      jsonschema:"layout used when none is requested"`
}

// ListTemplatesOutput is the output for the list_templates tool.
type ListTemplatesOutput struct {
	Templates []TemplateSummary `json:"templates" jsonschema:"available templates sorted by name"`
}

func handleListTemplates(registry *template.Registry) mcp.ToolHandlerFor[ListTemplatesInput, ListTemplatesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListTemplatesInput) (*mcp.CallToolResult, ListTemplatesOutput, error) {
		infos := registry.List()
		out := ListTemplatesOutput{Templates: make([]TemplateSummary, 0, len(infos))}
		for _, info := range infos {
			out.Templates = append(out.Templates, TemplateSummary(info))
		}
		return nil, out, nil
	}
}

// --- Scaffold tool ---

// ScaffoldInput is the input for the scaffold_document tool.
type ScaffoldInput struct {
	Title     string `json:"title,omitempty"     jsonschema:"document title without path separators (default: Opgave <today>)"`
	Date      string `json:"date,omitempty"      jsonschema:"document date (default: today, YYYY-MM-DD)"`
	Author    string `json:"author,omitempty"    jsonschema:"author name (default: the user's real name)"`
	Template  string `json:"template,omitempty"  jsonschema:"template identifier (default: default)"`
	Layout    string `json:"layout,omitempty"    jsonschema:"flat or project (default: configured, else the template's preference, else flat)"`
	Separator string `json:"separator,omitempty" jsonschema:"character replacing spaces in file names: _ or -"`
	DryRun    bool   `json:"dry_run,omitempty"   jsonschema:"report the planned files without writing"`
}

// ScaffoldOutput is the output for the scaffold_document tool.
type ScaffoldOutput struct {
	Path         string           `json:"path"              jsonschema:"primary document path"`
	Layout       string           `json:"layout"            jsonschema:"layout used"`
	Title        string           `json:"title"             jsonschema:"title used"`
	Date         string           `json:"date"              jsonschema:"date used"`
	Author       string           `json:"author"            jsonschema:"author used"`
	Template     string           `json:"template"          jsonschema:"template requested"`
	UsedFallback bool             `json:"used_fallback"     jsonschema:"true when the template was unknown and default was used"`
	Steps        []workspace.Step `json:"steps"             jsonschema:"per-file results"`
	Warning      string           `json:"warning,omitempty" jsonschema:"non-fatal warning message"`
}

func handleScaffold(svc *scaffold.Service, registry *template.Registry, defaults Defaults) mcp.ToolHandlerFor[ScaffoldInput, ScaffoldOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ScaffoldInput) (*mcp.CallToolResult, ScaffoldOutput, error) {
		req, opts, err := resolveScaffold(input, defaults, registry)
		if err != nil {
			return nil, ScaffoldOutput{}, err
		}

		outcome, err := svc.Run(req, opts)
		if err != nil {
			return nil, ScaffoldOutput{}, fmt.Errorf("scaffolding %q: %w", req.Title, err)
		}

		out := ScaffoldOutput{
			Path:         outcome.Result.Primary,
			Layout:       string(outcome.Result.Kind),
			Title:        req.Title,
			Date:         req.Date,
			Author:       req.Author,
			Template:     req.TemplateID,
			UsedFallback: outcome.UsedFallback,
			Steps:        outcome.Result.Steps,
		}
		if outcome.UsedFallback {
			out.Warning = fmt.Sprintf("template %q unrecognised, used %q", req.TemplateID, template.DefaultID)
		}
		return nil, out, nil
	}
}
