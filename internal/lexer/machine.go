package lexer

import (
	"fmt"
	"unicode/utf8"

	"javalex/internal/diag"
	"javalex/internal/token"
)

// step передаёт символ обработчику активного состояния. false означает, что
// символ не потреблён и должен быть обработан заново в новом состоянии.
func (lx *Lexer) step(ch, next rune) bool {
	switch lx.state {
	case Neutral:
		return lx.lexNeutral(ch, next)
	case InWord:
		return lx.lexWord(ch)
	case InLineComment:
		return lx.lexLineComment(ch)
	case InBlockComment:
		return lx.lexBlockComment(ch)
	case InString:
		return lx.lexQuoted(ch, '"', token.String, diag.LexUnterminatedString)
	case InChar:
		return lx.lexQuoted(ch, '\'', token.Char, diag.LexUnterminatedChar)
	case InOperator:
		return lx.lexOperator(ch)
	case InNumber:
		return lx.lexNumber(ch, next)
	case InHex:
		return lx.lexRadix(ch, false)
	case InBinary:
		return lx.lexRadix(ch, true)
	}
	panic(fmt.Sprintf("lexer: unhandled state %s", lx.state))
}

// enter потребляет первый символ конструкции и переключает состояние.
func (lx *Lexer) enter(s State) bool {
	lx.bump()
	lx.state = s
	return true
}

func (lx *Lexer) lexNeutral(ch, next rune) bool {
	start := lx.cursor.Pos
	lx.mark = lx.cursor.Mark()

	switch {
	case ch == '/' && next == '/':
		return lx.enter(InLineComment)
	case ch == '/' && next == '*':
		lx.blockStart = start
		return lx.enter(InBlockComment)
	case ch == '"':
		return lx.enter(InString)
	case ch == '\'':
		return lx.enter(InChar)
	case ch == '0' && (next == 'x' || next == 'X'):
		return lx.enter(InHex)
	case ch == '0' && (next == 'b' || next == 'B'):
		return lx.enter(InBinary)
	case ch == '@' && isIdentStart(next):
		return lx.enter(InWord)
	case canStartNumber(ch, next):
		lx.number = numberScan{usedDecimalPoint: ch == '.'}
		return lx.enter(InNumber)
	case isOperatorStart(ch):
		return lx.enter(InOperator)
	case isSymbolStart(ch):
		lx.bump()
		if ch == ':' && next == ':' {
			lx.bump()
		}
		lx.emitAt(token.Symbol, start)
	case isWhitespace(ch):
		lx.bump()
		// один Whitespace на всю серию
		if lx.emitted == 0 || lx.last != token.Whitespace {
			lx.emitAt(token.Whitespace, start)
		} else {
			lx.discard()
		}
	case isIdentStart(ch):
		return lx.enter(InWord)
	default:
		lx.bump()
		tok := lx.emitAt(token.Unknown, start)
		lx.report(diag.LexUnknownChar, diag.SevError, tok.Pos, tok.Text, unknownCharMessage(ch, tok.Text))
	}
	return true
}

func unknownCharMessage(ch rune, text string) string {
	if ch == utf8.RuneError && len(text) == 1 {
		return fmt.Sprintf("invalid UTF-8 byte 0x%02x", text[0])
	}
	return fmt.Sprintf("unexpected character %q", ch)
}

func (lx *Lexer) lexWord(ch rune) bool {
	if isIdentLetter(ch) {
		lx.bump()
		return true
	}
	tok := lx.emit(token.Classify(lx.lexeme()))
	if tok.Kind == token.Unknown {
		// "@" + зарезервированное слово
		lx.report(diag.LexUnknownChar, diag.SevError, tok.Pos, tok.Text,
			fmt.Sprintf("%q cannot be used as an annotation name", tok.Text[1:]))
	}
	return false
}

func (lx *Lexer) lexLineComment(ch rune) bool {
	if ch == '\n' {
		lx.emit(token.LineComment)
		return false
	}
	lx.bump()
	return true
}

func (lx *Lexer) lexBlockComment(ch rune) bool {
	// "*" открывающего "/*" тоже считается: "/*/" уже закрыт
	closes := lx.prev == '*' && ch == '/'
	lx.bump()
	if closes {
		lx.emitAt(token.BlockComment, lx.blockStart)
	}
	return true
}

func (lx *Lexer) reportUnterminatedComment(tok token.Token) {
	lx.report(diag.LexUnterminatedBlockComment, diag.SevError, tok.Pos, tok.Text, "block comment is not closed")
}

// lexQuoted сканирует строковый и символьный литерал. Кавычка закрывает
// литерал, только если перед ней не "\\"; поэтому "\\\\" не закрыт.
func (lx *Lexer) lexQuoted(ch, quote rune, kind token.Kind, code diag.Code) bool {
	if ch == '\n' {
		tok := lx.emit(token.Unknown)
		lx.report(code, diag.SevError, tok.Pos, tok.Text, fmt.Sprintf("missing closing %c", quote))
		return false
	}
	closes := ch == quote && lx.prev != '\\'
	lx.bump()
	if closes {
		lx.emit(kind)
	}
	return true
}

// lexOperator: максимальный захват — символ добавляется, пока результат
// остаётся оператором (или "->").
func (lx *Lexer) lexOperator(ch rune) bool {
	if token.CanExtendOperator(lx.lexeme(), ch) {
		lx.bump()
		return true
	}
	lx.emit(token.Classify(lx.lexeme()))
	return false
}

func (lx *Lexer) lexNumber(ch, next rune) bool {
	if run := scanUnderscoreRun(lx.cursor.Source(), lx.cursor.Off, false, false); run != "" {
		lx.bumpBytes(len(run))
		return true
	}

	n := &lx.number
	switch {
	case isDigit(ch):
	case n.usedExponent && (lx.prev == 'e' || lx.prev == 'E') && (ch == '+' || ch == '-'):
	case ch == '.' && !n.usedDecimalPoint && !n.usedExponent:
		n.usedDecimalPoint = true
	case (ch == 'e' || ch == 'E') && !n.usedExponent && (isDigit(next) || next == '+' || next == '-'):
		n.usedExponent = true
	default:
		return lx.finishNumber(ch)
	}
	lx.bump()
	return true
}

func (lx *Lexer) finishNumber(ch rune) bool {
	n := lx.number
	lx.reportBadUnderscore(ch)
	danglingExponent := n.usedExponent && (lx.prev == '+' || lx.prev == '-')

	suffix := isNumericTypeSuffix(ch, !n.usedDecimalPoint && !n.usedExponent)
	if suffix {
		lx.bump()
	}
	tok := lx.emit(token.Number)
	if danglingExponent {
		lx.report(diag.LexBadNumber, diag.SevWarning, tok.Pos, tok.Text, "exponent has no digits")
	}
	return suffix
}

// lexRadix сканирует 0x.../0b...: префикс принимается без проверки.
func (lx *Lexer) lexRadix(ch rune, binary bool) bool {
	if run := scanUnderscoreRun(lx.cursor.Source(), lx.cursor.Off, binary, !binary); run != "" {
		lx.bumpBytes(len(run))
		return true
	}
	if len(lx.lexeme()) == 1 || isHexOrBinaryDigit(ch, binary) {
		lx.bump()
		return true
	}

	lx.reportBadUnderscore(ch)
	hasDigits := len(lx.lexeme()) > 2
	suffix := ch == 'l' || ch == 'L'
	if suffix {
		lx.bump()
	}

	kind, name := token.HexNumber, "hexadecimal"
	if binary {
		kind, name = token.BinaryNumber, "binary"
	}
	if !hasDigits {
		kind = token.Unknown
	}
	tok := lx.emit(kind)
	if !hasDigits {
		lx.report(diag.LexBadNumber, diag.SevError, tok.Pos, tok.Text, fmt.Sprintf("%s literal has no digits", name))
	}
	return suffix
}

// reportBadUnderscore: '_', на котором остановился числовой литерал, стоит не
// между цифрами. Сам символ уйдёт в следующий токен.
func (lx *Lexer) reportBadUnderscore(ch rune) {
	if ch != '_' {
		return
	}
	lx.report(diag.LexBadUnderscore, diag.SevWarning, lx.cursor.Pos, "_", "underscore must be placed between digits")
}
