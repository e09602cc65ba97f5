package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/gorewood/texcli/internal/config"
)

// stubRunner records editor launches instead of starting processes.
type stubRunner struct {
	code  int
	err   error
	calls [][]string
}

func (r *stubRunner) Run(_ context.Context, name string, args []string) (int, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.code, r.err
}

// stubPrompter answers prompts from a fixed list, in order.
type stubPrompter struct {
	answers []string
	err     error
	asked   []string
}

func (p *stubPrompter) next(message, def string) (string, error) {
	p.asked = append(p.asked, message)
	if p.err != nil {
		return "", p.err
	}
	if len(p.answers) == 0 {
		return def, nil
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (p *stubPrompter) Input(message, def string) (string, error) {
	return p.next(message, def)
}

func (p *stubPrompter) Select(message string, _ []string, def string) (string, error) {
	return p.next(message, def)
}

// testEnv returns an environment rooted in a temp dir with a fixed clock
// and author.
func testEnv(t *testing.T) (*environment, string, *stubRunner) {
	t.Helper()
	t.Setenv("TEXCLI_EDITOR", "")

	root := t.TempDir()
	cfgDir := t.TempDir()
	runner := &stubRunner{}

	env := &environment{
		now:          func() time.Time { return time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC) },
		realName:     func() string { return "Anna" },
		documentsDir: func() (string, error) { return root, nil },
		configPath:   filepath.Join(cfgDir, "config.yaml"),
		templatesDir: filepath.Join(cfgDir, "templates"),
		runner:       runner,
		prompter:     &stubPrompter{err: errors.New("unexpected prompt")},
	}
	return env, root, runner
}

// noDocuments simulates a host without a resolvable documents directory.
func noDocuments() (string, error) {
	return "", config.ErrNoDocumentsDir
}

// execute runs the root command with args and returns stdout, stderr and
// the error.
func execute(t *testing.T, env *environment, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(env)
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
