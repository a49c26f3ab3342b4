package lexer

import (
	"unicode/utf8"

	"javalex/internal/token"
)

// Классификаторы символов. Все ASCII-only: не-ASCII символ вне строк и
// комментариев становится Unknown.

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isHexOrBinaryDigit(c rune, binary bool) bool {
	if binary {
		return c == '0' || c == '1'
	}
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isNumericTypeSuffix: f F d D всегда, l L только если supportsLong
// (литерал без точки и экспоненты).
func isNumericTypeSuffix(c rune, supportsLong bool) bool {
	switch c {
	case 'f', 'F', 'd', 'D':
		return true
	case 'l', 'L':
		return supportsLong
	}
	return false
}

func canStartNumber(c, next rune) bool {
	return isDigit(c) || (c == '.' && isDigit(next))
}

func isInNumericRange(c rune, isBinary, isHex bool) bool {
	if isBinary || isHex {
		return isHexOrBinaryDigit(c, isBinary)
	}
	return isDigit(c)
}

// scanUnderscoreRun validates the '_' at src[index] inside a numeric literal.
// It returns the whole run of underscores plus the digit that ends it, or ""
// when the run is misplaced: the left neighbour must be a digit in range and
// the run must end in one. The run is scanned once.
func scanUnderscoreRun(src string, index int, isBinary, isHex bool) string {
	if index <= 0 || index >= len(src) || src[index] != '_' {
		return ""
	}
	if !isInNumericRange(rune(src[index-1]), isBinary, isHex) {
		return ""
	}
	j := index
	for j < len(src) && src[j] == '_' {
		j++
	}
	if j >= len(src) || !isInNumericRange(rune(src[j]), isBinary, isHex) {
		return ""
	}
	return src[index : j+1]
}

func isASCII(c rune) bool { return c >= 0 && c < utf8.RuneSelf }

func isWhitespace(c rune) bool { return isASCII(c) && token.IsWhitespaceByte(byte(c)) }

func isIdentStart(c rune) bool { return isASCII(c) && token.IsIdentifierStart(byte(c)) }

func isIdentLetter(c rune) bool { return isASCII(c) && token.IsIdentifierByte(byte(c)) }

func isOperatorStart(c rune) bool { return isASCII(c) && token.IsOperatorStart(string(c)) }

func isSymbolStart(c rune) bool { return isASCII(c) && token.IsSymbol(string(c)) }
