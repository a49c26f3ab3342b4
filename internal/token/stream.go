package token

import (
	"fmt"
	"strings"
)

// Significant returns the tokens that are not Whitespace, in order.
// Comments are kept: they are significant for formatters and doc tools.
func Significant(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for _, t := range toks {
		if t.Kind != Whitespace {
			out = append(out, t)
		}
	}
	return out
}

// Reconstruct concatenates lexemes. For a lexer-produced stream the result is
// the source with every whitespace run between tokens shortened to its first
// character.
func Reconstruct(toks []Token) string {
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(t.Text)
	}
	return sb.String()
}

// Verify checks that toks account for every character of src: each lexeme
// is the source text at its position, positions never go back, and any gap
// between tokens is whitespace directly following a Whitespace token.
func Verify(src string, toks []Token) error {
	off := 0
	for i, t := range toks {
		if t.Pos.Index < off {
			return fmt.Errorf("token %d (%s %q) at %d overlaps previous token ending at %d", i, t.Kind, t.Text, t.Pos.Index, off)
		}
		if err := checkGap(src, toks, i, off, t.Pos.Index); err != nil {
			return err
		}
		if t.End() > len(src) || src[t.Pos.Index:t.End()] != t.Text {
			return fmt.Errorf("token %d (%s %q) does not match source at %d", i, t.Kind, t.Text, t.Pos.Index)
		}
		if t.Text == "" {
			return fmt.Errorf("token %d (%s) at %d is empty", i, t.Kind, t.Pos.Index)
		}
		off = t.End()
	}
	return checkGap(src, toks, len(toks), off, len(src))
}

func checkGap(src string, toks []Token, i, from, to int) error {
	if from == to {
		return nil
	}
	if i == 0 || toks[i-1].Kind != Whitespace {
		return fmt.Errorf("source bytes %d..%d are not covered by any token", from, to)
	}
	if !IsWhitespace(src[from:to]) {
		return fmt.Errorf("collapsed run %d..%d contains non-whitespace %q", from, to, src[from:to])
	}
	return nil
}
