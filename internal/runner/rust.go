package runner

import (
	"context"
	"path/filepath"
)

// RustHandler compiles a block with rustc and executes the resulting binary.
type RustHandler struct {
	Compiler string
}

func (h *RustHandler) Language() string { return "rust" }

// Run writes main.rs into scratch, compiles it to a.out, and executes it.
// Compiler diagnostics short-circuit the run step.
func (h *RustHandler) Run(ctx context.Context, code string, scratch *ScratchDir) (string, error) {
	src, err := scratch.WriteFile("main.rs", code)
	if err != nil {
		return "", err
	}
	bin := filepath.Join(scratch.Path(), "a.out")
	if _, err := runCommand(ctx, scratch.Path(), h.Compiler, src, "-o", bin); err != nil {
		return "", err
	}
	return runCommand(ctx, scratch.Path(), bin)
}
