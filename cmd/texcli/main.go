// Package main provides the entry point for the texcli CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/texcli/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves the --color persistent flag against TTY detection of
// the command's output.
func useColor(cmd *cobra.Command) bool {
	mode := output.ColorAuto
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter creates a printer for cmd with errors routed to its stderr.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd(defaultEnvironment())
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the texcli CLI.
func newRootCmd(env *environment) *cobra.Command {
	flags := &newFlags{}

	cmd := &cobra.Command{
		Use:   "texcli [TITLE] [DATE] [AUTHOR] [TEMPLATE]",
		Short: "Quick LaTeX file generator",
		Long: `texcli - Quick LaTeX file generator.

Renders a LaTeX template with a title, date and author, writes it under your
Documents directory and opens it in your editor.

Arguments (all optional):
  TITLE     Title of the document (default: "Opgave YYYY-MM-DD")
  DATE      Document date (default: today's date)
  AUTHOR    Author name (default: your real name)
  TEMPLATE  Template name (default: "default")

Spaces in TITLE are replaced with underscores (or --separator) in file and
folder names. texcli aborts if the document already exists.`,
		Example: `  texcli "Differentialregning opgave" "2025-08-03" "Johan" default
  texcli --layout project "Vektorer i planen"
  texcli -i
  texcli`,
		Args:          cobra.MaximumNArgs(4),
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			mode, _ := cmd.Root().PersistentFlags().GetString("color")
			if _, err := output.ParseColorMode(mode); err != nil {
				return fail(newPrinter(cmd), output.NewUserError(err.Error()))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, env, flags, args)
		},
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")
	addNewFlags(cmd, flags)

	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newTemplatesCmd(env))
	cmd.AddCommand(newServeCmd(env))

	return cmd
}
