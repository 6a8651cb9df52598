package translator

import "github.com/google/uuid"

// Block represents one marked code region lifted out of a scanned file.
// A Block is immutable once produced and is consumed exactly once by the
// runner.
type Block struct {
	ID       string // correlation id for log lines, not part of the marker syntax
	Language string // e.g. "python", "rust", "java", "go"
	Code     string // captured body, surrounding whitespace trimmed
}

// NewBlock builds a Block with a fresh correlation id.
func NewBlock(language, code string) Block {
	return Block{
		ID:       uuid.NewString(),
		Language: language,
		Code:     code,
	}
}
