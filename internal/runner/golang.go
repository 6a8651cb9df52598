package runner

import "context"

// GoHandler runs a block through `go run`; compile and run are one step.
type GoHandler struct {
	Bin string
}

func (h *GoHandler) Language() string { return "go" }

func (h *GoHandler) Run(ctx context.Context, code string, scratch *ScratchDir) (string, error) {
	src, err := scratch.WriteFile("main.go", code)
	if err != nil {
		return "", err
	}
	return runCommand(ctx, scratch.Path(), h.Bin, "run", src)
}
