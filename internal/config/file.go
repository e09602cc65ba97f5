package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk configuration (config.yaml). Every field is optional;
// command-line flags take precedence.
type File struct {
	Root      string `yaml:"root,omitempty"`      // output directory, default DocumentsDir()
	Layout    string `yaml:"layout,omitempty"`    // "flat" or "project"
	Separator string `yaml:"separator,omitempty"` // "_" or "-"
	Editor    string `yaml:"editor,omitempty"`    // editor command line
	Template  string `yaml:"template,omitempty"`  // default template id
	Author    string `yaml:"author,omitempty"`    // default author
}

// Load reads the config file at path. A missing file or empty path yields
// an empty File. $TEXCLI_EDITOR overrides the editor.
func Load(path string) (File, error) {
	var cfg File

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return File{}, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return File{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if editor := os.Getenv("TEXCLI_EDITOR"); editor != "" {
		cfg.Editor = editor
	}

	return cfg, nil
}
