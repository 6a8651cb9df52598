package translator

import (
	"strings"

	"aiupstart.com/translator/internal/utils"
)

// MarkerPrefix opens a translator block when a line, ignoring surrounding
// whitespace, starts with it. The text after the first ':' is the language
// spec; the language name is everything before the spec's first '('.
const MarkerPrefix = "|> translator:"

// BlockExtractor defines the interface for pulling translator blocks out of text.
type BlockExtractor interface {
	ExtractBlocks(input string) []Block
}

// MarkerBlockExtractor implements BlockExtractor for the `|> translator:` syntax.
//
// Parenthesis nesting is counted textually across every captured line, string
// literals and comments included. A ')' inside a string literal closes the
// block early. This is a known limitation of the marker syntax, kept on
// purpose: the extractor never parses the target language.
type MarkerBlockExtractor struct{}

// ExtractBlocks scans input line by line and returns the closed blocks in file
// order. Depth starts at 1 on the marker line; every following line is
// appended to the body (closing line included) while its '('/')' characters
// adjust the depth. Blocks whose depth never returns to zero before end of
// input are dropped.
func (MarkerBlockExtractor) ExtractBlocks(input string) []Block {
	var blocks []Block
	lines := strings.Split(input, "\n")
	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, MarkerPrefix) {
			spec := line[strings.Index(line, ":")+1:]
			lang := strings.TrimSpace(strings.SplitN(spec, "(", 2)[0])
			if lang != "" {
				var code strings.Builder
				i++
				depth := 1
				for i < len(lines) && depth > 0 {
					codeLine := lines[i]
					for _, c := range codeLine {
						switch c {
						case '(':
							depth++
						case ')':
							depth--
						}
					}
					code.WriteString(codeLine)
					code.WriteByte('\n')
					i++
				}
				if depth == 0 {
					block := NewBlock(lang, strings.TrimSpace(code.String()))
					blocks = append(blocks, block)
					utils.Logger.Debug().
						Str("block", block.ID).
						Str("language", block.Language).
						Msg("Extracted block")
				} else {
					utils.Logger.Debug().
						Str("language", lang).
						Msg("Unclosed block dropped")
				}
				continue
			}
		}
		i++
	}
	return blocks
}
