package lexer

// State — состояние автомата; активно ровно одно.
type State uint8

const (
	Neutral State = iota
	InWord
	InLineComment
	InBlockComment
	InString
	InChar
	InOperator
	InNumber
	InHex
	InBinary
)

func (s State) String() string {
	switch s {
	case Neutral:
		return "Neutral"
	case InWord:
		return "InWord"
	case InLineComment:
		return "InLineComment"
	case InBlockComment:
		return "InBlockComment"
	case InString:
		return "InString"
	case InChar:
		return "InChar"
	case InOperator:
		return "InOperator"
	case InNumber:
		return "InNumber"
	case InHex:
		return "InHex"
	case InBinary:
		return "InBinary"
	}
	return "Invalid"
}

// numberScan живёт один прогон InNumber.
type numberScan struct {
	usedDecimalPoint bool
	usedExponent     bool
}
