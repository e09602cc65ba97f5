package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/texcli/internal/config"
	"github.com/gorewood/texcli/internal/editor"
	"github.com/gorewood/texcli/internal/output"
	"github.com/gorewood/texcli/internal/scaffold"
	"github.com/gorewood/texcli/internal/template"
	"github.com/gorewood/texcli/internal/workspace"
)

// newFlags holds the command-line flags for document generation.
type newFlags struct {
	layout      string
	separator   string
	root        string
	editor      string
	noOpen      bool
	dryRun      bool
	interactive bool
}

// newResult is the JSON output of a generation run.
type newResult struct {
	Status       string           `json:"status"` // "ok" or "dry_run"
	Title        string           `json:"title"`
	Date         string           `json:"date"`
	Author       string           `json:"author"`
	Template     string           `json:"template"`
	UsedFallback bool             `json:"used_fallback"`
	Layout       workspace.Kind   `json:"layout"`
	Path         string           `json:"path"`
	Steps        []workspace.Step `json:"steps"`
	Editor       *editor.Result   `json:"editor,omitempty"`
}

// addNewFlags registers the generation flags on cmd.
func addNewFlags(cmd *cobra.Command, flags *newFlags) {
	cmd.Flags().StringVar(&flags.layout, "layout", "", "Output layout: flat or project (default: the template's preference, else flat)")
	cmd.Flags().StringVar(&flags.separator, "separator", "", `Character replacing spaces in file names: "_" or "-" (default "_")`)
	cmd.Flags().StringVar(&flags.root, "root", "", "Output directory (default: your Documents directory)")
	cmd.Flags().StringVar(&flags.editor, "editor", "", "Editor command (default: code, or $TEXCLI_EDITOR)")
	cmd.Flags().BoolVar(&flags.noOpen, "no-open", false, "Do not open the document in an editor")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show what would be written without writing")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "Prompt for title, date, author and template")
}

// runNew renders the requested template, writes it and opens the editor.
func runNew(cmd *cobra.Command, env *environment, flags *newFlags, args []string) error {
	printer := newPrinter(cmd)

	cfg, err := config.Load(env.configPath)
	if err != nil {
		return fail(printer, output.NewUserError(err.Error()))
	}

	registry, err := template.NewRegistry(env.templatesDir)
	if err != nil {
		return fail(printer, output.NewUserError(err.Error()))
	}

	req := buildRequest(env, cfg, args)
	if flags.interactive {
		req, err = promptRequest(env.prompter, req, templateNames(registry))
		if err != nil {
			return fail(printer, err)
		}
	}

	opts, err := buildOptions(env, cfg, flags, registry.Layout(req.TemplateID))
	if err != nil {
		return fail(printer, err)
	}

	if !printer.IsJSON() {
		printer.KeyValue("Title", req.Title)
		printer.KeyValue("Date", req.Date)
		printer.KeyValue("Author", req.Author)
		printer.KeyValue("Template name", req.TemplateID)
	}

	outcome, err := scaffold.NewService(registry, nil).Run(req, opts)
	if outcome.UsedFallback {
		printer.Warn("Template %q unrecognised, will use %s", req.TemplateID, template.DefaultID)
	}
	if err != nil {
		return fail(printer, classifyError(err))
	}

	result := newResult{
		Status:       "ok",
		Title:        req.Title,
		Date:         req.Date,
		Author:       req.Author,
		Template:     req.TemplateID,
		UsedFallback: outcome.UsedFallback,
		Layout:       outcome.Result.Kind,
		Path:         outcome.Result.Primary,
		Steps:        outcome.Result.Steps,
	}

	if opts.DryRun {
		result.Status = "dry_run"
		return reportResult(printer, result)
	}

	if !printer.IsJSON() {
		printWritten(printer, result)
	}

	if !flags.noOpen {
		launch := openEditor(cmd, env, printer, firstNonEmpty(flags.editor, cfg.Editor), result.Path)
		result.Editor = &launch
		if !printer.IsJSON() {
			printer.Println(launch.Message())
		}
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}
	return nil
}

// buildRequest fills the request from positional args, then config, then
// environment defaults.
func buildRequest(env *environment, cfg config.File, args []string) scaffold.Request {
	today := config.Today(env.now())

	author := cfg.Author
	if author == "" {
		author = env.realName()
	}

	req := scaffold.Request{
		Title:      "Opgave " + today,
		Date:       today,
		Author:     author,
		TemplateID: firstNonEmpty(cfg.Template, template.DefaultID),
	}

	fields := []*string{&req.Title, &req.Date, &req.Author, &req.TemplateID}
	for i, arg := range args {
		if i < len(fields) {
			*fields[i] = arg
		}
	}
	return req
}

// buildOptions resolves layout, separator and root from flags, then config,
// then defaults. templateLayout is the template's preferred layout and only
// applies when neither a flag nor the config names one.
func buildOptions(env *environment, cfg config.File, flags *newFlags, templateLayout string) (scaffold.Options, error) {
	layout, err := workspace.ParseKind(firstNonEmpty(flags.layout, cfg.Layout, templateLayout))
	if err != nil {
		return scaffold.Options{}, output.NewUserError(err.Error())
	}

	separator := firstNonEmpty(flags.separator, cfg.Separator, workspace.DefaultSeparator)
	if err := workspace.ValidateSeparator(separator); err != nil {
		return scaffold.Options{}, output.NewUserError(err.Error())
	}

	root := firstNonEmpty(flags.root, cfg.Root)
	if root == "" {
		root, err = env.documentsDir()
		if err != nil {
			return scaffold.Options{}, output.NewDirectoryError(err.Error(), err)
		}
	}

	return scaffold.Options{
		Root:      root,
		Layout:    layout,
		Separator: separator,
		DryRun:    flags.dryRun,
	}, nil
}

// classifyError maps scaffold errors onto CLI exit errors.
func classifyError(err error) error {
	var (
		existsErr *workspace.ExistsError
		ioErr     *workspace.IOError
	)
	switch {
	case errors.As(err, &existsErr):
		return output.NewConflictError(
			fmt.Sprintf("File '%s' already exists. Aborting to avoid overwrite.", existsErr.Path), err)
	case errors.As(err, &ioErr) && ioErr.Op == "mkdir":
		return output.NewDirectoryError(fmt.Sprintf("Could not create directory '%s': %v", ioErr.Path, ioErr.Err), err)
	case errors.As(err, &ioErr):
		return output.NewWriteError(fmt.Sprintf("Failed to write '%s': %v", ioErr.Path, ioErr.Err), err)
	case errors.Is(err, scaffold.ErrNoRoot):
		return output.NewDirectoryError(err.Error(), err)
	default:
		return output.NewUserError(err.Error())
	}
}

// printWritten reports the primary document and any auxiliary steps.
func printWritten(printer *output.Printer, result newResult) {
	printer.Println(printer.Styles().Success.Render("Written LaTeX file to: " + result.Path))
	for _, step := range result.Steps {
		if step.Name == workspace.StepDocument {
			continue
		}
		printer.Step(step.Status, step.Name, step.Path, step.Message)
	}
}

// reportResult prints a dry-run plan.
func reportResult(printer *output.Printer, result newResult) error {
	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printer.Println(printer.Styles().Bold.Render("Dry run, nothing written:"))
	for _, step := range result.Steps {
		printer.Step(step.Status, step.Name, step.Path, step.Message)
	}
	return nil
}

// openEditor launches the configured editor on path. The child gets the
// terminal; in JSON mode its stdout is redirected to stderr.
func openEditor(cmd *cobra.Command, env *environment, printer *output.Printer, command, path string) editor.Result {
	runner := env.runner
	if runner == nil {
		stdout := cmd.OutOrStdout()
		if printer.IsJSON() {
			stdout = cmd.ErrOrStderr()
		}
		runner = editor.ExecRunner{Stdin: cmd.InOrStdin(), Stdout: stdout, Stderr: cmd.ErrOrStderr()}
	}

	launcher := editor.Launcher{Command: command, Runner: runner}
	return launcher.Open(cmd.Context(), path)
}

// fail reports err in JSON mode and returns it. In human mode fang renders
// the returned error.
func fail(printer *output.Printer, err error) error {
	if printer.IsJSON() {
		printer.Error(err)
	}
	return err
}

// templateNames lists registered template identifiers.
func templateNames(registry *template.Registry) []string {
	infos := registry.List()
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
	}
	return names
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
