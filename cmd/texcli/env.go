package main

import (
	"time"

	"github.com/gorewood/texcli/internal/config"
	"github.com/gorewood/texcli/internal/editor"
)

// environment holds the host lookups and side-effecting collaborators the
// commands consume. Tests replace them to stay off the real host.
type environment struct {
	now          func() time.Time
	realName     func() string
	documentsDir func() (string, error)
	configPath   string
	templatesDir string
	runner       editor.Runner // nil launches real processes
	prompter     prompter
}

// defaultEnvironment resolves everything from the running host.
func defaultEnvironment() *environment {
	return &environment{
		now:          time.Now,
		realName:     config.RealName,
		documentsDir: config.DocumentsDir,
		configPath:   config.FilePath(),
		templatesDir: config.TemplatesDir(),
		prompter:     surveyPrompter{},
	}
}
