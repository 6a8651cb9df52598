package runner

import "context"

// JavaHandler compiles a block with javac and runs the Main class.
// The block must declare `public class Main`; the file is always Main.java.
type JavaHandler struct {
	Compiler string
	Runtime  string
}

func (h *JavaHandler) Language() string { return "java" }

func (h *JavaHandler) Run(ctx context.Context, code string, scratch *ScratchDir) (string, error) {
	src, err := scratch.WriteFile("Main.java", code)
	if err != nil {
		return "", err
	}
	if _, err := runCommand(ctx, scratch.Path(), h.Compiler, src); err != nil {
		return "", err
	}
	return runCommand(ctx, scratch.Path(), h.Runtime, "-cp", scratch.Path(), "Main")
}
