package workspace

import (
	"bytes"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// stubFS delegates to OSFS and fails selected operations by path.
type stubFS struct {
	OSFS
	failMkdir map[string]error
	failStat  map[string]error
	failWrite map[string]error
	writes    []string
}

func (s *stubFS) MkdirAll(path string, perm os.FileMode) error {
	if err, ok := s.failMkdir[path]; ok {
		return err
	}
	return s.OSFS.MkdirAll(path, perm)
}

func (s *stubFS) Stat(path string) (iofs.FileInfo, error) {
	if err, ok := s.failStat[path]; ok {
		return nil, err
	}
	return s.OSFS.Stat(path)
}

func (s *stubFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	if err, ok := s.failWrite[path]; ok {
		return err
	}
	s.writes = append(s.writes, path)
	return s.OSFS.WriteFile(path, data, perm)
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return data
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		title string
		sep   string
		want  string
	}{
		{"Calculus Homework One", "_", "Calculus_Homework_One"},
		{"Calculus Homework One", "-", "Calculus-Homework-One"},
		{"NoSpaces", "_", "NoSpaces"},
		{"double  space", "_", "double__space"},
		{" edge ", "_", "_edge_"},
		{"", "_", ""},
	}

	for _, tt := range tests {
		got := Sanitize(tt.title, tt.sep)
		if got != tt.want {
			t.Errorf("Sanitize(%q, %q) = %q, want %q", tt.title, tt.sep, got, tt.want)
		}
		if strings.Contains(got, " ") {
			t.Errorf("Sanitize(%q, %q) left a space: %q", tt.title, tt.sep, got)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"", KindFlat, false},
		{"flat", KindFlat, false},
		{"Project", KindProject, false},
		{"nested", "", true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlan(t *testing.T) {
	root := filepath.Join("home", "anna", "Documents")

	flat, err := Plan(root, Config{Kind: KindFlat, Title: "Test Opgave"})
	if err != nil {
		t.Fatalf("Plan(flat) error = %v", err)
	}
	if want := filepath.Join(root, "Test_Opgave.tex"); flat.Primary != want {
		t.Errorf("Plan(flat).Primary = %q, want %q", flat.Primary, want)
	}
	if len(flat.Auxiliary) != 0 {
		t.Errorf("Plan(flat) has %d auxiliary files, want 0", len(flat.Auxiliary))
	}

	project, err := Plan(root, Config{Kind: KindProject, Title: "Test Opgave", Separator: "-"})
	if err != nil {
		t.Fatalf("Plan(project) error = %v", err)
	}
	base := filepath.Join(root, "Test-Opgave")
	want := Layout{
		Kind: KindProject,
		Dirs: []string{
			filepath.Join(base, "document"),
			filepath.Join(base, "document", "figure"),
			filepath.Join(base, "notebook"),
		},
		Primary: filepath.Join(base, "document", "Test-Opgave.tex"),
		Auxiliary: []AuxFile{
			{Name: StepFigure, Path: filepath.Join(base, "document", "figure", "sample.png"), Data: SampleFigure},
			{Name: StepNotebook, Path: filepath.Join(base, "notebook", "Test-Opgave.ipynb"), Data: NotebookSkeleton},
		},
	}
	if diff := cmp.Diff(want, project); diff != "" {
		t.Errorf("Plan(project) mismatch (-want +got):\n%s", diff)
	}

	if _, err := Plan(root, Config{Kind: KindFlat, Title: "x", Separator: "."}); err == nil {
		t.Error("Plan() expected error for invalid separator")
	}
	if _, err := Plan(root, Config{Kind: "tree", Title: "x"}); err == nil {
		t.Error("Plan() expected error for unknown layout")
	}
}

func TestMaterialize_Flat(t *testing.T) {
	root := t.TempDir()
	doc := "\\title{Test Opgave}\n\\author{Anna}\n\\date{2025-01-01}\n"

	result, err := Materialize(OSFS{}, root, Config{Kind: KindFlat, Title: "Test Opgave"}, doc)
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	wantPath := filepath.Join(root, "Test_Opgave.tex")
	if result.Primary != wantPath {
		t.Errorf("Primary = %q, want %q", result.Primary, wantPath)
	}
	if got := string(readFile(t, wantPath)); got != doc {
		t.Errorf("document content = %q, want %q", got, doc)
	}

	wantSteps := []Step{{Name: StepDocument, Path: wantPath, Status: StatusWritten}}
	if diff := cmp.Diff(wantSteps, result.Steps); diff != "" {
		t.Errorf("Steps mismatch (-want +got):\n%s", diff)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("flat layout created %d entries, want 1", len(entries))
	}
}

func TestMaterialize_CreatesMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "Documents", "nested")

	result, err := Materialize(OSFS{}, root, Config{Kind: KindFlat, Title: "a"}, "x")
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	if got := string(readFile(t, result.Primary)); got != "x" {
		t.Errorf("content = %q, want %q", got, "x")
	}
}

func TestMaterialize_Project(t *testing.T) {
	root := t.TempDir()

	result, err := Materialize(OSFS{}, root, Config{Kind: KindProject, Title: "Test Opgave"}, "doc")
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	base := filepath.Join(root, "Test_Opgave")
	primary := filepath.Join(base, "document", "Test_Opgave.tex")
	figure := filepath.Join(base, "document", "figure", "sample.png")
	notebook := filepath.Join(base, "notebook", "Test_Opgave.ipynb")

	wantSteps := []Step{
		{Name: StepDocument, Path: primary, Status: StatusWritten},
		{Name: StepFigure, Path: figure, Status: StatusWritten},
		{Name: StepNotebook, Path: notebook, Status: StatusWritten},
	}
	if diff := cmp.Diff(wantSteps, result.Steps); diff != "" {
		t.Errorf("Steps mismatch (-want +got):\n%s", diff)
	}

	if !bytes.Equal(readFile(t, figure), SampleFigure) {
		t.Error("figure content differs from bundled asset")
	}
	if !bytes.HasPrefix(readFile(t, figure), []byte("\x89PNG")) {
		t.Error("figure is not a PNG")
	}
	if !bytes.Equal(readFile(t, notebook), NotebookSkeleton) {
		t.Error("notebook content differs from skeleton")
	}
	if string(readFile(t, primary)) != "doc" {
		t.Error("primary document content mismatch")
	}
}

func TestMaterialize_ExistingPrimaryAborts(t *testing.T) {
	for _, kind := range []Kind{KindFlat, KindProject} {
		t.Run(string(kind), func(t *testing.T) {
			root := t.TempDir()
			cfg := Config{Kind: kind, Title: "Test Opgave"}

			first, err := Materialize(OSFS{}, root, cfg, "original")
			if err != nil {
				t.Fatalf("first Materialize() error = %v", err)
			}

			_, err = Materialize(OSFS{}, root, cfg, "replacement")
			if !errors.Is(err, ErrAlreadyExists) {
				t.Fatalf("second Materialize() error = %v, want ErrAlreadyExists", err)
			}

			var existsErr *ExistsError
			if !errors.As(err, &existsErr) {
				t.Fatalf("error %T is not *ExistsError", err)
			}
			if existsErr.Path != first.Primary {
				t.Errorf("ExistsError.Path = %q, want %q", existsErr.Path, first.Primary)
			}

			if got := string(readFile(t, first.Primary)); got != "original" {
				t.Errorf("primary overwritten: got %q", got)
			}
		})
	}
}

func TestMaterialize_ExistingPrimaryWritesNothing(t *testing.T) {
	root := t.TempDir()
	primary := filepath.Join(root, "T", "document", "T.tex")
	if err := os.MkdirAll(filepath.Dir(primary), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(primary, []byte("keep"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fsys := &stubFS{}
	_, err := Materialize(fsys, root, Config{Kind: KindProject, Title: "T"}, "new")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("Materialize() error = %v, want ErrAlreadyExists", err)
	}
	if len(fsys.writes) != 0 {
		t.Errorf("Materialize() wrote %v, want no writes", fsys.writes)
	}
	if _, err := os.Stat(filepath.Join(root, "T", "notebook")); err != nil {
		t.Errorf("directories should persist after abort: %v", err)
	}
}

func TestMaterialize_SharedAuxiliarySkipped(t *testing.T) {
	root := t.TempDir()
	figure := filepath.Join(root, "Shared", "document", "figure", "sample.png")
	if err := os.MkdirAll(filepath.Dir(figure), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(figure, []byte("custom figure"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	result, err := Materialize(OSFS{}, root, Config{Kind: KindProject, Title: "Shared"}, "doc")
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	if result.Steps[1].Status != StatusSkipped {
		t.Errorf("figure step = %+v, want skipped", result.Steps[1])
	}
	if got := string(readFile(t, figure)); got != "custom figure" {
		t.Errorf("existing auxiliary file disturbed: %q", got)
	}
	if result.Steps[2].Status != StatusWritten {
		t.Errorf("notebook step = %+v, want written", result.Steps[2])
	}
}

func TestMaterialize_IndependentTitles(t *testing.T) {
	root := t.TempDir()

	a, err := Materialize(OSFS{}, root, Config{Kind: KindProject, Title: "First One"}, "a")
	if err != nil {
		t.Fatalf("Materialize(a) error = %v", err)
	}
	b, err := Materialize(OSFS{}, root, Config{Kind: KindProject, Title: "Second One"}, "b")
	if err != nil {
		t.Fatalf("Materialize(b) error = %v", err)
	}

	if string(readFile(t, a.Primary)) != "a" || string(readFile(t, b.Primary)) != "b" {
		t.Error("documents interfered with each other")
	}
	for _, step := range append(a.Steps, b.Steps...) {
		if step.Status != StatusWritten {
			t.Errorf("step %+v, want written", step)
		}
	}
}

func TestMaterialize_IOFailures(t *testing.T) {
	root := t.TempDir()
	cause := errors.New("disk full")
	primary := filepath.Join(root, "T", "document", "T.tex")

	tests := []struct {
		name   string
		fsys   *stubFS
		wantOp string
	}{
		{
			name:   "mkdir",
			fsys:   &stubFS{failMkdir: map[string]error{filepath.Join(root, "T", "document"): cause}},
			wantOp: "mkdir",
		},
		{
			name:   "stat",
			fsys:   &stubFS{failStat: map[string]error{primary: cause}},
			wantOp: "stat",
		},
		{
			name:   "write",
			fsys:   &stubFS{failWrite: map[string]error{primary: cause}},
			wantOp: "write",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Materialize(tt.fsys, root, Config{Kind: KindProject, Title: "T"}, "doc")
			var ioErr *IOError
			if !errors.As(err, &ioErr) {
				t.Fatalf("Materialize() error = %v, want *IOError", err)
			}
			if ioErr.Op != tt.wantOp {
				t.Errorf("IOError.Op = %q, want %q", ioErr.Op, tt.wantOp)
			}
			if !errors.Is(err, cause) {
				t.Errorf("IOError does not wrap cause: %v", err)
			}
			if errors.Is(err, ErrAlreadyExists) {
				t.Error("IOError should not match ErrAlreadyExists")
			}
		})
	}
}

func TestMaterialize_AuxiliaryFailureIsNotFatal(t *testing.T) {
	root := t.TempDir()
	notebook := filepath.Join(root, "T", "notebook", "T.ipynb")
	fsys := &stubFS{failWrite: map[string]error{notebook: errors.New("read-only")}}

	result, err := Materialize(fsys, root, Config{Kind: KindProject, Title: "T"}, "doc")
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	last := result.Steps[len(result.Steps)-1]
	if last.Name != StepNotebook || last.Status != StatusFailed || last.Message != "read-only" {
		t.Errorf("notebook step = %+v, want failed with message", last)
	}
	if string(readFile(t, result.Primary)) != "doc" {
		t.Error("primary should still be written")
	}
}

func TestPreview(t *testing.T) {
	root := t.TempDir()
	cfg := Config{Kind: KindProject, Title: "T"}

	before, err := Preview(OSFS{}, root, cfg)
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	for _, step := range before.Steps {
		if step.Status != StatusPlanned {
			t.Errorf("step %+v, want planned", step)
		}
	}
	if entries, _ := os.ReadDir(root); len(entries) != 0 {
		t.Errorf("Preview() touched the filesystem: %d entries", len(entries))
	}

	if _, err := Materialize(OSFS{}, root, cfg, "doc"); err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	after, err := Preview(OSFS{}, root, cfg)
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	want := []string{StatusFailed, StatusSkipped, StatusSkipped}
	for i, step := range after.Steps {
		if step.Status != want[i] {
			t.Errorf("step %d status = %q, want %q", i, step.Status, want[i])
		}
	}
}

func TestOSFS_WriteFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.tex")
	if err := (OSFS{}).WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("mode = %v, want 0644", info.Mode().Perm())
	}
}
