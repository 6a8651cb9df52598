package runner

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	translator "aiupstart.com/translator"
	"aiupstart.com/translator/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireTool(t *testing.T, bin string) {
	t.Helper()
	if _, err := exec.LookPath(bin); err != nil {
		t.Skipf("%s not installed", bin)
	}
}

func TestRegistryRun_UnsupportedLanguage(t *testing.T) {
	r := NewRegistry(nil)
	res := r.Run(context.Background(), translator.NewBlock("ruby", "puts 1"))
	require.Error(t, res.Err)
	assert.EqualError(t, res.Err, "Unsupported language: ruby")
}

func TestRegistryRun_TokenCasePreservedInError(t *testing.T) {
	r := NewRegistry(nil)
	res := r.Run(context.Background(), translator.NewBlock("Ruby", "puts 1"))
	assert.EqualError(t, res.Err, "Unsupported language: Ruby")
}

func TestRegistryRun_PythonSuccess(t *testing.T) {
	requireTool(t, "python")
	r := NewRegistry(nil)
	res := r.Run(context.Background(), translator.NewBlock("python", `print("ok")`))
	require.NoError(t, res.Err)
	assert.Contains(t, res.Output, "ok")
}

func TestRegistryRun_CaseInsensitiveDispatch(t *testing.T) {
	requireTool(t, "python")
	r := NewRegistry(nil)
	res := r.Run(context.Background(), translator.NewBlock("Python", `print("ok")`))
	require.NoError(t, res.Err)
	assert.Contains(t, res.Output, "ok")
}

func TestRegistryRun_PythonFailureCarriesStderr(t *testing.T) {
	requireTool(t, "python")
	r := NewRegistry(nil)
	code := "import sys\nsys.stderr.write(\"boom\")\nsys.exit(1)\n"
	res := r.Run(context.Background(), translator.NewBlock("python", code))
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "boom")
}

func TestRegistryRun_GoCompileError(t *testing.T) {
	requireTool(t, "go")
	r := NewRegistry(nil)
	code := "package main\nfunc main() { this does not compile }\n"
	res := r.Run(context.Background(), translator.NewBlock("go", code))
	require.Error(t, res.Err)
	assert.NotEmpty(t, res.Err.Error())
}

func TestRegistryRun_SpawnErrorSurfacesOSError(t *testing.T) {
	cfg := &config.Config{Toolchains: []config.ToolchainEntry{
		{Language: "python", Bin: "definitely-not-a-real-binary"},
	}}
	r := NewRegistry(cfg)
	res := r.Run(context.Background(), translator.NewBlock("python", "print(1)"))
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "definitely-not-a-real-binary")
}

func TestRegistryRun_DisabledLanguageIsUnsupported(t *testing.T) {
	off := false
	cfg := &config.Config{Toolchains: []config.ToolchainEntry{
		{Language: "python", Enabled: &off},
	}}
	r := NewRegistry(cfg)
	res := r.Run(context.Background(), translator.NewBlock("python", "print(1)"))
	assert.EqualError(t, res.Err, "Unsupported language: python")
}

func TestRegistryRun_ScratchDirRemovedAfterDispatch(t *testing.T) {
	requireTool(t, "python")
	before, err := filepath.Glob(filepath.Join(os.TempDir(), "translator-exec-*"))
	require.NoError(t, err)

	r := NewRegistry(nil)
	res := r.Run(context.Background(), translator.NewBlock("python", `print("ok")`))
	require.NoError(t, res.Err)

	after, err := filepath.Glob(filepath.Join(os.TempDir(), "translator-exec-*"))
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after))
}
