package token

import (
	"javalex/internal/source"
)

// Token is a classified lexeme with the position of its first character.
type Token struct {
	Kind Kind
	Text string
	Pos  source.Position
}

// End returns the byte offset right after the token text.
func (t Token) End() int { return t.Pos.Index + len(t.Text) }

// Span converts the token location into a file span.
func (t Token) Span(file source.FileID) source.Span {
	return source.SpanOf(file, t.Pos, t.Text)
}

// IsTrivia reports whether the token carries no syntax (whitespace, comments).
func (t Token) IsTrivia() bool {
	switch t.Kind {
	case Whitespace, LineComment, BlockComment:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether the token is a numeric, string or char literal.
// true/false/null are keywords here, as in the tables.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case String, Char, Number, HexNumber, BinaryNumber:
		return true
	default:
		return false
	}
}
