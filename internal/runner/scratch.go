package runner

import (
	"os"
	"path/filepath"

	"aiupstart.com/translator/internal/utils"
)

// ScratchDir is a throwaway working directory scoped to a single block run.
type ScratchDir struct {
	path string
}

// NewScratchDir creates a fresh directory under the OS temp root.
func NewScratchDir() (*ScratchDir, error) {
	path, err := os.MkdirTemp("", "translator-exec-")
	if err != nil {
		return nil, err
	}
	return &ScratchDir{path: path}, nil
}

func (s *ScratchDir) Path() string { return s.path }

// WriteFile places a source file inside the scratch directory and returns its
// full path.
func (s *ScratchDir) WriteFile(name, content string) (string, error) {
	path := filepath.Join(s.path, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// Remove deletes the directory and everything in it. Safe to call from defer.
func (s *ScratchDir) Remove() {
	if err := os.RemoveAll(s.path); err != nil {
		utils.Logger.Warn().Err(err).Str("dir", s.path).Msg("Failed to remove scratch dir")
	}
}
