package source

import "fmt"

// Position указывает на один символ исходного текста.
// Index — байтовое смещение (с нуля), Line/Column — 1-based, колонки считаются в символах.
type Position struct {
	Index  int
	Line   int
	Column int
}

// Start returns the position of the first character of any source.
func Start() Position {
	return Position{Index: 0, Line: 1, Column: 1}
}

// Advance moves the position past one consumed character of size bytes.
// A newline starts the next line.
func (p *Position) Advance(r rune, size int) {
	if size <= 0 {
		size = 1
	}
	p.Index += size
	if r == '\n' {
		p.Line++
		p.Column = 1
		return
	}
	p.Column++
}

// Rewind returns the position of the first character of text, where p is the
// position right after it. text must not contain a newline.
func (p Position) Rewind(text string) Position {
	return Position{
		Index:  p.Index - len(text),
		Line:   p.Line,
		Column: p.Column - runeCount(text),
	}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// runeCount считает символы так же, как их декодирует курсор лексера:
// каждый невалидный байт — отдельный символ.
func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
