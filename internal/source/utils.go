package source

import (
	"bytes"
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"fortio.org/safecast"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// normalizeCRLF заменяет все \r\n на \n, не трогая одиночные \r.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, []byte("\r\n")) {
		return content, false
	}
	return bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n")), true
}

func removeBOM(content []byte) ([]byte, bool) {
	if bytes.HasPrefix(content, utf8BOM) {
		return content[len(utf8BOM):], true
	}
	return content, false
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, bytes.Count(content, []byte{'\n'}))
	for i, b := range content {
		if b != '\n' {
			continue
		}
		off, err := safecast.Conv[uint32](i)
		if err != nil {
			panic(fmt.Errorf("line index overflow: %w", err))
		}
		out = append(out, off)
	}
	return out
}

// lineStart возвращает смещение начала строки line (1-based).
func lineStart(lineIdx []uint32, line int) uint32 {
	if line <= 1 {
		return 0
	}
	return lineIdx[line-2] + 1
}

// toLineCol переводит байтовое смещение в строку/колонку; колонка считается в символах.
func toLineCol(content []byte, lineIdx []uint32, off uint32) LineCol {
	// бинпоиск: количество '\n' строго до off
	lo, hi := 0, len(lineIdx)
	for lo < hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	line := lo + 1
	start := lineStart(lineIdx, line)
	end := min(int(off), len(content))
	col := 1
	if int(start) < end {
		col += utf8.RuneCount(content[start:end])
	}
	lineU, err := safecast.Conv[uint32](line)
	if err != nil {
		panic(fmt.Errorf("line overflow: %w", err))
	}
	colU, err := safecast.Conv[uint32](col)
	if err != nil {
		panic(fmt.Errorf("column overflow: %w", err))
	}
	return LineCol{Line: lineU, Col: colU}
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
