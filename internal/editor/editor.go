// Package editor opens a written document in an external editor.
//
// Launching is advisory: a missing binary or a non-zero exit is reported in
// Result and never turned into a failure of the caller.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// DefaultCommand is used when no editor is configured.
const DefaultCommand = "code"

// Runner runs an external command to completion.
// Implementations must be safe for stubbing in tests.
type Runner interface {
	// Run returns the exit code when the process ran (even non-zero).
	// It returns an error only when the process could not be started.
	Run(ctx context.Context, name string, args []string) (int, error)
}

// ExecRunner is the production Runner. The child inherits the given streams
// so terminal editors work.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes name with args.
func (r ExecRunner) Run(ctx context.Context, name string, args []string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// Result describes one launch attempt.
type Result struct {
	Command  string `json:"command"`
	Opened   bool   `json:"opened"`
	ExitCode int    `json:"exit_code"`
	Error    string `json:"error,omitempty"`
}

// Message returns a one-line human summary of the launch.
func (r Result) Message() string {
	switch {
	case r.Opened:
		return "Opened file in " + r.Command + "."
	case r.Error != "":
		return fmt.Sprintf("Failed to open %s: %s", r.Command, r.Error)
	default:
		return fmt.Sprintf("%s exited with status %d", r.Command, r.ExitCode)
	}
}

// Launcher opens files with a configured editor command line.
type Launcher struct {
	Command string // e.g. "code" or "emacsclient -n"
	Runner  Runner
}

// Open launches the editor with path as its final argument.
func (l Launcher) Open(ctx context.Context, path string) Result {
	command := l.Command
	if command == "" {
		command = DefaultCommand
	}
	result := Result{Command: command, ExitCode: -1}

	words, err := shellquote.Split(command)
	if err != nil {
		result.Error = fmt.Sprintf("parsing editor command: %v", err)
		return result
	}
	if len(words) == 0 {
		result.Error = "empty editor command"
		return result
	}

	runner := l.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	args := append(words[1:len(words):len(words)], path)
	code, err := runner.Run(ctx, words[0], args)
	result.ExitCode = code
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Opened = code == 0
	return result
}
