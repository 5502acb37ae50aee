package reader

import (
	"strings"

	"github.com/heartmarshall/lesehilfe/internal/domain"
)

// Token is one whitespace-separated piece of a text. Word is the piece
// without surrounding punctuation; it is empty for pure punctuation such
// as "–", which cannot be selected.
type Token struct {
	Text string
	Word string
	Line int
}

// Selectable reports whether the token can be sent for analysis.
func (t Token) Selectable() bool { return t.Word != "" }

// Tokenize splits text into lines and each line into tokens. Empty lines
// are kept so that paragraph breaks survive rendering.
func Tokenize(text string) [][]Token {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	rawLines := strings.Split(text, "\n")

	lines := make([][]Token, len(rawLines))
	for i, raw := range rawLines {
		fields := strings.Fields(raw)
		line := make([]Token, 0, len(fields))
		for _, f := range fields {
			line = append(line, Token{Text: f, Word: domain.TrimWord(f), Line: i})
		}
		lines[i] = line
	}
	return lines
}

// position addresses a token inside the output of Tokenize.
type position struct {
	line, col int
}

func selectablePositions(lines [][]Token) []position {
	var out []position
	for i, line := range lines {
		for j, tok := range line {
			if tok.Selectable() {
				out = append(out, position{line: i, col: j})
			}
		}
	}
	return out
}
