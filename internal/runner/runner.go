// Package runner executes extracted blocks through each language's external
// toolchain. The language set is closed: rust, java, go, python. There is no
// plugin surface; config may rename toolchain binaries or disable a language
// but never add one.
//
// No timeout exists: a hung child process blocks the whole run. Handlers take
// a context so a caller could bound them, but the CLI passes Background.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	translator "aiupstart.com/translator"
	"aiupstart.com/translator/internal/config"
	"aiupstart.com/translator/internal/utils"
)

// Result carries the outcome of one block's execution: captured stdout on
// success, or an error describing the failure (compiler or runtime stderr,
// an OS spawn error, or an unsupported language).
type Result struct {
	Output string
	Err    error
}

// Handler executes source code for one language. scratch is a fresh directory
// the handler may write files into; the registry removes it after Run returns.
type Handler interface {
	Language() string
	Run(ctx context.Context, code string, scratch *ScratchDir) (string, error)
}

// Registry maps lowercase language tokens to their handlers.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry builds the registry for the supported languages, applying any
// binary renames or disables from cfg. A nil cfg means stock toolchains.
func NewRegistry(cfg *config.Config) *Registry {
	r := &Registry{handlers: make(map[string]Handler)}
	r.register(cfg, &RustHandler{Compiler: cfg.Compiler("rust", "rustc")})
	r.register(cfg, &JavaHandler{Compiler: cfg.Compiler("java", "javac"), Runtime: cfg.Bin("java", "java")})
	r.register(cfg, &GoHandler{Bin: cfg.Bin("go", "go")})
	r.register(cfg, &PythonHandler{Bin: cfg.Bin("python", "python")})
	return r
}

func (r *Registry) register(cfg *config.Config, h Handler) {
	if !cfg.Enabled(h.Language()) {
		utils.Logger.Debug().Str("language", h.Language()).Msg("Toolchain disabled by config")
		return
	}
	r.handlers[h.Language()] = h
}

// Run dispatches one block and blocks until its toolchain finishes. A fresh
// scratch directory is created per block and removed on every return path.
// Blocks are never retried; one block's failure does not affect the next.
func (r *Registry) Run(ctx context.Context, block translator.Block) Result {
	handler, ok := r.handlers[strings.ToLower(block.Language)]
	if !ok {
		return Result{Err: fmt.Errorf("Unsupported language: %s", block.Language)}
	}
	scratch, err := NewScratchDir()
	if err != nil {
		return Result{Err: err}
	}
	defer scratch.Remove()
	utils.Logger.Debug().
		Str("block", block.ID).
		Str("dir", scratch.Path()).
		Msg("Temp dir created")
	out, err := handler.Run(ctx, block.Code, scratch)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Output: out}
}

// runCommand spawns bin with args, captures stdout and stderr wholesale, and
// returns stdout once the process exits zero. Exit status is the sole success
// criterion: a non-zero exit returns the captured stderr as the error text,
// a spawn failure (missing binary, permissions) returns the OS error.
func runCommand(ctx context.Context, dir, bin string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", errors.New(stderr.String())
		}
		return "", err
	}
	return stdout.String(), nil
}
