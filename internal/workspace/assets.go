package workspace

import _ "embed"

// SampleFigure is the bundled image seeded into a project's figure folder.
//
//go:embed assets/sample.png
var SampleFigure []byte

// NotebookSkeleton is an empty nbformat 4.5 notebook.
//
//go:embed assets/notebook.ipynb
var NotebookSkeleton []byte

// SampleFigureName is the file name of SampleFigure inside the figure folder.
const SampleFigureName = "sample.png"
