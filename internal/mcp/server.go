// Package mcp provides a Model Context Protocol server for texcli.
// It exposes template listing and document scaffolding as MCP tools.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/texcli/internal/scaffold"
	"github.com/gorewood/texcli/internal/template"
	"github.com/gorewood/texcli/internal/workspace"
)

// Defaults supplies the values a tool call may omit. They are resolved from
// the host environment once, when the server starts.
type Defaults struct {
	Root      string
	Today     string
	Author    string
	Template  string
	Layout    workspace.Kind // empty defers to the template's preference
	Separator string
}

// NewServer creates an MCP server with all texcli tools registered.
func NewServer(version string, registry *template.Registry, svc *scaffold.Service, defaults Defaults) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "texcli",
		Version: version,
	}, nil)
	registerTools(server, registry, svc, defaults)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// registerTools adds all texcli tools to the server.
func registerTools(server *mcp.Server, registry *template.Registry, svc *scaffold.Service, defaults Defaults) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_templates",
		Description: "List the document templates available to scaffold_document, with their source (built-in or user).",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  boolPtr(false),
		},
	}, handleListTemplates(registry))

	mcp.AddTool(server, &mcp.Tool{
		Name: "scaffold_document",
		Description: "Render a LaTeX template with a title, date and author and write it under the documents directory. " +
			"Fails without writing if the document already exists.",
		Annotations: &mcp.ToolAnnotations{
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleScaffold(svc, registry, defaults))
}
