package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Unknown marks text that starts no recognized construct, unterminated
	// literals and prefix-only hex/binary literals.
	Unknown Kind = iota
	Keyword
	LineComment
	BlockComment
	String
	Char
	Identifier
	Annotation
	Number
	HexNumber
	BinaryNumber
	Operator
	Symbol
	Whitespace
)

var kindNames = [...]string{
	Unknown:      "Unknown",
	Keyword:      "Keyword",
	LineComment:  "LineComment",
	BlockComment: "BlockComment",
	String:       "String",
	Char:         "Char",
	Identifier:   "Identifier",
	Annotation:   "Annotation",
	Number:       "Number",
	HexNumber:    "HexNumber",
	BinaryNumber: "BinaryNumber",
	Operator:     "Operator",
	Symbol:       "Symbol",
	Whitespace:   "Whitespace",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return Unknown, fmt.Errorf("unknown token kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("invalid token kind %d", k)
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
