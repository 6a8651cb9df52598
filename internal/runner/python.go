package runner

import "context"

// PythonHandler hands the block to the interpreter inline via -c; nothing is
// written to the scratch directory.
type PythonHandler struct {
	Bin string
}

func (h *PythonHandler) Language() string { return "python" }

func (h *PythonHandler) Run(ctx context.Context, code string, scratch *ScratchDir) (string, error) {
	return runCommand(ctx, scratch.Path(), h.Bin, "-c", code)
}
