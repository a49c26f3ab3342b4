package token

// IsKeyword reports whether s is a reserved word (including true, false,
// null, _ and @interface). Case-sensitive.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// IsOperator reports whether s is a complete operator.
func IsOperator(s string) bool {
	_, ok := operators[s]
	return ok
}

// IsSymbol reports whether s is a separator, including "->" and "::".
func IsSymbol(s string) bool {
	_, ok := symbols[s]
	return ok
}

// IsOperatorStart reports whether the first character of s can start an operator.
func IsOperatorStart(s string) bool {
	return s != "" && isOperatorStartByte(s[0])
}

func isOperatorStartByte(b byte) bool {
	return b < 128 && operatorStarters[b]
}

// CanExtendOperator reports whether appending ch to the accumulated operator
// op still yields an operator (maximal munch) or the lambda arrow.
func CanExtendOperator(op string, ch rune) bool {
	if ch >= 128 || !isOperatorStartByte(byte(ch)) {
		return false
	}
	ext := op + string(ch)
	return IsOperator(ext) || ext == LambdaArrow
}

// IsIdentifierStart reports whether b may open an identifier: [A-Za-z_$].
func IsIdentifierStart(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsIdentifierByte reports whether b may continue an identifier: [A-Za-z0-9_$].
func IsIdentifierByte(b byte) bool {
	return IsIdentifierStart(b) || (b >= '0' && b <= '9')
}

// IsIdentifierLetter reports whether s is exactly one identifier character.
func IsIdentifierLetter(s string) bool {
	return len(s) == 1 && IsIdentifierByte(s[0])
}

// IsIdentifier reports whether s matches [A-Za-z_$][A-Za-z0-9_$]*.
func IsIdentifier(s string) bool {
	if s == "" || !IsIdentifierStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !IsIdentifierByte(s[i]) {
			return false
		}
	}
	return true
}

// IsWhitespaceByte reports whether b is one of " \t\n\v\f\r".
func IsWhitespaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsWhitespace reports whether s is a non-empty run of whitespace.
func IsWhitespace(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsWhitespaceByte(s[i]) {
			return false
		}
	}
	return true
}

// IsAnnotation reports whether s is '@' followed by an identifier that is not
// itself a reserved word.
func IsAnnotation(s string) bool {
	if len(s) < 2 || s[0] != '@' {
		return false
	}
	name := s[1:]
	return IsIdentifier(name) && !IsKeyword(name)
}

// Classify maps a finished lexeme to its kind with the fixed precedence
// keyword > operator > identifier > whitespace > symbol > annotation > unknown.
// "->" is a Symbol: it never appears in the operator table.
func Classify(lexeme string) Kind {
	switch {
	case IsKeyword(lexeme):
		return Keyword
	case IsOperator(lexeme):
		return Operator
	case IsIdentifier(lexeme):
		return Identifier
	case IsWhitespace(lexeme):
		return Whitespace
	case IsSymbol(lexeme):
		return Symbol
	case IsAnnotation(lexeme):
		return Annotation
	default:
		return Unknown
	}
}
