package lexer

import (
	"fmt"

	"javalex/internal/source"
	"javalex/internal/token"
	"javalex/internal/trace"
)

// Lexer is a character-at-a-time state machine over Java source text.
// It never fails: malformed input becomes Unknown tokens and, when a
// Reporter is set, diagnostics.
type Lexer struct {
	cursor Cursor
	opts   Options

	state      State
	mark       Mark // начало накапливаемой лексемы
	prev       rune // последний потреблённый символ
	blockStart source.Position
	number     numberScan

	last    token.Kind
	emitted int

	queue []token.Token
	head  int
	done  bool

	traceTokens bool
}

func New(src string, opts Options) *Lexer {
	return &Lexer{
		cursor:      NewCursor(src),
		opts:        opts,
		prev:        noRune,
		traceTokens: trace.Active(opts.Tracer, trace.ScopeToken),
	}
}

// ForFile creates a lexer over the content of f; diagnostics point into f.
func ForFile(f *source.File, opts Options) *Lexer {
	opts.File = f.ID
	return New(string(f.Content), opts)
}

// Tokenize lexes the whole of src.
func Tokenize(src string, opts Options) []token.Token {
	lx := New(src, opts)
	out := make([]token.Token, 0, len(src)/3+1)
	for {
		tok, ok := lx.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

// Next возвращает следующий токен (включая Whitespace и комментарии).
// После конца ввода всегда возвращает false.
func (lx *Lexer) Next() (token.Token, bool) {
	for lx.head == len(lx.queue) {
		if lx.done {
			return token.Token{}, false
		}
		lx.queue = lx.queue[:0]
		lx.head = 0
		lx.advance()
	}
	tok := lx.queue[lx.head]
	lx.head++
	return tok, true
}

// State returns the active state (Neutral between tokens).
func (lx *Lexer) State() State { return lx.state }

// Pos returns the position of the next unread character.
func (lx *Lexer) Pos() source.Position { return lx.cursor.Pos }

// advance обрабатывает один символ: вызывает обработчик состояния, пока
// тот не потребит символ. Нейтральное состояние потребляет всегда, поэтому
// повторов не больше одного.
func (lx *Lexer) advance() {
	if lx.cursor.EOF() {
		lx.finish()
		lx.done = true
		return
	}
	ch, size := lx.cursor.Peek()
	next := lx.cursor.PeekAfter(size)
	for consumed := false; !consumed; {
		consumed = lx.step(ch, next)
	}
}

// finish дописывает незавершённую лексему в конце ввода так, как если бы
// за ней шёл перевод строки. Сам перевод строки никуда не попадает.
func (lx *Lexer) finish() {
	switch lx.state {
	case Neutral:
		return
	case InBlockComment:
		tok := lx.emitAt(token.Unknown, lx.blockStart)
		lx.reportUnterminatedComment(tok)
		return
	}
	lx.step('\n', noRune)
}

func (lx *Lexer) bump() {
	if r := lx.cursor.Bump(); r != noRune {
		lx.prev = r
	}
}

// bumpBytes потребляет n байт ASCII-текста (подчёркивания, "::").
func (lx *Lexer) bumpBytes(n int) {
	for range n {
		lx.bump()
	}
}

func (lx *Lexer) lexeme() string {
	return lx.cursor.From(lx.mark)
}

// emit завершает лексему; позиция вычисляется назад от курсора.
func (lx *Lexer) emit(kind token.Kind) token.Token {
	return lx.emitAt(kind, lx.cursor.Pos.Rewind(lx.lexeme()))
}

func (lx *Lexer) emitAt(kind token.Kind, pos source.Position) token.Token {
	tok := token.Token{Kind: kind, Text: lx.lexeme(), Pos: pos}
	lx.queue = append(lx.queue, tok)
	lx.last = kind
	lx.emitted++
	if lx.traceTokens {
		trace.Point(lx.opts.Tracer, trace.ScopeToken, "token",
			fmt.Sprintf("%s %q @%s", kind, tok.Text, pos), lx.opts.TraceParent)
	}
	lx.discard()
	return tok
}

// discard сбрасывает буфер и возвращает автомат в Neutral.
func (lx *Lexer) discard() {
	lx.mark = lx.cursor.Mark()
	lx.state = Neutral
	lx.number = numberScan{}
}
