package lexer

import (
	"unicode/utf8"

	"javalex/internal/source"
)

// noRune обозначает отсутствие символа (конец ввода или начало без предыдущего).
const noRune rune = -1

// Cursor представляет собой позицию в исходном тексте.
// Off — байтовое смещение, Pos — та же точка в строках/колонках.
type Cursor struct {
	src string
	Off int
	Pos source.Position
}

// NewCursor creates a cursor at the first character of src.
func NewCursor(src string) Cursor {
	return Cursor{src: src, Pos: source.Start()}
}

// EOF проверяет, достигнут ли конец текста
func (c *Cursor) EOF() bool {
	return c.Off >= len(c.src)
}

// Peek декодирует текущий символ. Невалидный байт возвращается как
// utf8.RuneError размером 1; на EOF — noRune, 0.
func (c *Cursor) Peek() (r rune, size int) {
	return decodeAt(c.src, c.Off)
}

// PeekAfter возвращает символ, следующий за текущим символом размера size.
func (c *Cursor) PeekAfter(size int) rune {
	r, _ := decodeAt(c.src, c.Off+size)
	return r
}

// Bump перемещает курсор на один символ вперед и возвращает его.
func (c *Cursor) Bump() rune {
	r, size := c.Peek()
	if size == 0 {
		return noRune
	}
	c.Off += size
	c.Pos.Advance(r, size)
	return r
}

// Mark это метка начала накапливаемой лексемы
type Mark int

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// From возвращает текст от метки до курсора (срез исходника, без копии).
func (c *Cursor) From(m Mark) string {
	return c.src[m:c.Off]
}

// Source возвращает весь исходный текст.
func (c *Cursor) Source() string {
	return c.src
}

func decodeAt(src string, off int) (rune, int) {
	if off >= len(src) {
		return noRune, 0
	}
	if b := src[off]; b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(src[off:])
}
