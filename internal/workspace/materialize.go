package workspace

import (
	"errors"
	"os"
)

// Step statuses.
const (
	StatusWritten = "written"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
	StatusPlanned = "planned"
)

// Step records what happened to one file.
type Step struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Result reports the files written or skipped by Materialize.
type Result struct {
	Kind    Kind   `json:"layout"`
	Primary string `json:"path"`
	Steps   []Step `json:"steps"`
}

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Materialize creates the directories of the layout for cfg under root,
// writes document as the primary file and seeds any auxiliary files.
//
// It returns an *ExistsError (matching ErrAlreadyExists) without writing
// anything when the primary file is present; directories created up to that
// point are left in place. Directory and primary write failures are returned
// as *IOError. Auxiliary write failures are recorded as failed steps.
func Materialize(fsys FS, root string, cfg Config, document string) (Result, error) {
	layout, err := Plan(root, cfg)
	if err != nil {
		return Result{}, err
	}

	for _, dir := range layout.Dirs {
		if err := fsys.MkdirAll(dir, dirPerm); err != nil {
			return Result{}, &IOError{Op: "mkdir", Path: dir, Err: err}
		}
	}

	exists, err := fileExists(fsys, layout.Primary)
	if err != nil {
		return Result{}, &IOError{Op: "stat", Path: layout.Primary, Err: err}
	}
	if exists {
		return Result{}, &ExistsError{Path: layout.Primary}
	}

	result := Result{Kind: layout.Kind, Primary: layout.Primary}
	for _, aux := range layout.Auxiliary {
		result.Steps = append(result.Steps, writeAuxiliary(fsys, aux))
	}

	if err := fsys.WriteFile(layout.Primary, []byte(document), filePerm); err != nil {
		return Result{}, &IOError{Op: "write", Path: layout.Primary, Err: err}
	}
	result.Steps = append([]Step{{Name: StepDocument, Path: layout.Primary, Status: StatusWritten}}, result.Steps...)

	return result, nil
}

// Preview reports what Materialize would do without creating or writing
// anything. The primary step is "failed" when the file already exists.
func Preview(fsys FS, root string, cfg Config) (Result, error) {
	layout, err := Plan(root, cfg)
	if err != nil {
		return Result{}, err
	}

	result := Result{Kind: layout.Kind, Primary: layout.Primary}

	primary := Step{Name: StepDocument, Path: layout.Primary, Status: StatusPlanned}
	if exists, _ := fileExists(fsys, layout.Primary); exists {
		primary.Status = StatusFailed
		primary.Message = "already exists"
	}
	result.Steps = append(result.Steps, primary)

	for _, aux := range layout.Auxiliary {
		step := Step{Name: aux.Name, Path: aux.Path, Status: StatusPlanned}
		if exists, _ := fileExists(fsys, aux.Path); exists {
			step.Status = StatusSkipped
			step.Message = "already exists"
		}
		result.Steps = append(result.Steps, step)
	}

	return result, nil
}

// writeAuxiliary writes aux unless it already exists.
func writeAuxiliary(fsys FS, aux AuxFile) Step {
	step := Step{Name: aux.Name, Path: aux.Path}

	exists, err := fileExists(fsys, aux.Path)
	switch {
	case err != nil:
		step.Status = StatusFailed
		step.Message = err.Error()
		return step
	case exists:
		step.Status = StatusSkipped
		step.Message = "already exists"
		return step
	}

	if err := fsys.WriteFile(aux.Path, aux.Data, filePerm); err != nil {
		step.Status = StatusFailed
		step.Message = err.Error()
		return step
	}

	step.Status = StatusWritten
	return step
}

// fileExists reports whether path exists. Only not-exist errors are treated
// as absence.
func fileExists(fsys FS, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
