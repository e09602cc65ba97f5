package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/texcli/internal/config"
	texclimcp "github.com/gorewood/texcli/internal/mcp"
	"github.com/gorewood/texcli/internal/output"
	"github.com/gorewood/texcli/internal/scaffold"
	"github.com/gorewood/texcli/internal/template"
	"github.com/gorewood/texcli/internal/workspace"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run texcli as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "texcli": {
        "command": "texcli",
        "args": ["serve"]
      }
    }
  }

Available tools: list_templates, scaffold_document`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := template.NewRegistry(env.templatesDir)
			if err != nil {
				return output.NewUserError(err.Error())
			}
			defaults, err := serveDefaults(env)
			if err != nil {
				return err
			}
			svc := scaffold.NewService(registry, nil)
			server := texclimcp.NewServer(buildVersion(), registry, svc, defaults)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}

// serveDefaults resolves tool-call defaults from config and the host.
func serveDefaults(env *environment) (texclimcp.Defaults, error) {
	cfg, err := config.Load(env.configPath)
	if err != nil {
		return texclimcp.Defaults{}, output.NewUserError(err.Error())
	}

	opts, err := buildOptions(env, cfg, &newFlags{}, "")
	if err != nil {
		return texclimcp.Defaults{}, err
	}

	// Leave the layout unset unless configured so templates can pick theirs.
	var layout workspace.Kind
	if cfg.Layout != "" {
		layout = opts.Layout
	}

	return texclimcp.Defaults{
		Root:      opts.Root,
		Today:     config.Today(env.now()),
		Author:    firstNonEmpty(cfg.Author, env.realName()),
		Template:  firstNonEmpty(cfg.Template, template.DefaultID),
		Layout:    layout,
		Separator: firstNonEmpty(opts.Separator, workspace.DefaultSeparator),
	}, nil
}
