package workspace

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind selects the directory layout.
type Kind string

// Supported layouts.
const (
	KindFlat    Kind = "flat"
	KindProject Kind = "project"
)

// DefaultSeparator replaces spaces in titles for file and directory names.
const DefaultSeparator = "_"

// DocumentExt is the extension of the primary document.
const DocumentExt = ".tex"

// NotebookExt is the extension of the companion notebook.
const NotebookExt = ".ipynb"

// Step names reported in Result.
const (
	StepDocument = "document"
	StepFigure   = "figure"
	StepNotebook = "notebook"
)

// ParseKind validates a layout name. Empty selects KindFlat.
func ParseKind(name string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(name))) {
	case "", KindFlat:
		return KindFlat, nil
	case KindProject:
		return KindProject, nil
	default:
		return "", fmt.Errorf("unknown layout %q (want %q or %q)", name, KindFlat, KindProject)
	}
}

// ValidateSeparator accepts "_" and "-".
func ValidateSeparator(sep string) error {
	if sep != "_" && sep != "-" {
		return fmt.Errorf("invalid separator %q (want \"_\" or \"-\")", sep)
	}
	return nil
}

// Config describes what to lay out for one document.
type Config struct {
	Kind      Kind
	Title     string
	Separator string // defaults to DefaultSeparator
}

// AuxFile is a fixed-content file written only when absent.
type AuxFile struct {
	Name string
	Path string
	Data []byte
}

// Layout is the set of paths computed for one document. Computing it does
// not touch the filesystem.
type Layout struct {
	Kind      Kind
	Dirs      []string
	Primary   string
	Auxiliary []AuxFile
}

// Sanitize replaces every space in title with sep.
func Sanitize(title, sep string) string {
	return strings.ReplaceAll(title, " ", sep)
}

// Plan computes the layout for cfg under root.
func Plan(root string, cfg Config) (Layout, error) {
	sep := cfg.Separator
	if sep == "" {
		sep = DefaultSeparator
	}
	if err := ValidateSeparator(sep); err != nil {
		return Layout{}, err
	}
	name := Sanitize(cfg.Title, sep)

	switch cfg.Kind {
	case KindFlat, "":
		return Layout{
			Kind:    KindFlat,
			Dirs:    []string{root},
			Primary: filepath.Join(root, name+DocumentExt),
		}, nil
	case KindProject:
		projectDir := filepath.Join(root, name)
		documentDir := filepath.Join(projectDir, "document")
		figureDir := filepath.Join(documentDir, "figure")
		notebookDir := filepath.Join(projectDir, "notebook")
		return Layout{
			Kind:    KindProject,
			Dirs:    []string{documentDir, figureDir, notebookDir},
			Primary: filepath.Join(documentDir, name+DocumentExt),
			Auxiliary: []AuxFile{
				{Name: StepFigure, Path: filepath.Join(figureDir, SampleFigureName), Data: SampleFigure},
				{Name: StepNotebook, Path: filepath.Join(notebookDir, name+NotebookExt), Data: NotebookSkeleton},
			},
		}, nil
	default:
		return Layout{}, fmt.Errorf("unknown layout %q", cfg.Kind)
	}
}
