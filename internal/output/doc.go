// Package output provides structured output and error handling for the
// texcli CLI.
//
// The Printer switches between human-readable and JSON output:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, isTTY)
//	printer.KeyValue("Title", title)
//	printer.Error(err)
//
// Human output uses lipgloss styles that are disabled when output is piped
// or --color=never is given. Errors and warnings go to stderr when a
// separate writer is set with WithStderr.
//
// # Exit Codes
//
//	output.ExitSuccess // 0: success or help shown
//	output.ExitFailure // 1: any failure
//
// ExitError carries a Kind (usage, conflict, directory, write) that is
// reported in JSON errors: {"error": "...", "code": 1, "kind": "conflict"}.
package output
