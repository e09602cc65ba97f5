package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/texcli/internal/output"
	"github.com/gorewood/texcli/internal/template"
)

// templatesResult is the JSON output of the templates command.
type templatesResult struct {
	Dir       string          `json:"dir"`
	Templates []template.Info `json:"templates"`
}

// newTemplatesCmd creates the templates command.
func newTemplatesCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available document templates",
		Long: `List the built-in templates and any user templates.

User templates are *.tex files in the templates directory. A user template
with the same name as a built-in replaces it. A template may name a
preferred layout in its frontmatter ("layout: project"); it is used when
neither --layout nor the config file sets one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTemplates(cmd, env)
		},
	}
}

func runTemplates(cmd *cobra.Command, env *environment) error {
	printer := newPrinter(cmd)

	registry, err := template.NewRegistry(env.templatesDir)
	if err != nil {
		return fail(printer, output.NewUserError(err.Error()))
	}
	infos := registry.List()

	if printer.IsJSON() {
		return printer.WriteJSON(templatesResult{Dir: env.templatesDir, Templates: infos})
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		source := info.Source
		if info.Overrides != "" {
			source += " (overrides " + info.Overrides + ")"
		}
		layout := info.Layout
		if layout == "" {
			layout = "any"
		}
		rows = append(rows, []string{info.Name, source, layout, info.Description})
	}
	printer.Table([]string{"NAME", "SOURCE", "LAYOUT", "DESCRIPTION"}, rows)

	if env.templatesDir != "" {
		printer.Println()
		printer.Println(printer.Styles().Dim.Render("User templates: " + env.templatesDir))
	}
	return nil
}
