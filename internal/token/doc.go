// Package token defines Java token kinds, the fixed lexeme tables and the
// classifiers the lexer uses to finalize accumulated lexemes.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Pos is the position of the first character of Text.
//   - A run of whitespace is one Whitespace token whose Text is the run's
//     first character; the rest of the run only moves positions.
//   - Classify is pure: the same lexeme always yields the same Kind.
package token
