package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"javalex/internal/diag"
	"javalex/internal/source"
)

const tabWidth = 4

type prettyPalette struct {
	err, warn, info, code, gutter, caret, note *color.Color
}

func newPalette(enabled bool) prettyPalette {
	p := prettyPalette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p prettyPalette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		if fs == nil || int(d.Primary.File) >= fs.Len() {
			fmt.Fprintf(w, "%s %s: %s\n", p.severity(d.Severity).Sprint(d.Severity), p.code.Sprint(d.Code.ID()), d.Message)
			continue
		}
		file := fs.Get(d.Primary.File)
		start, end := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			formatPath(file.Path, opts.PathMode, opts.BaseDir), start.Line, start.Col,
			p.severity(d.Severity).Sprint(d.Severity), p.code.Sprint(d.Code.ID()), d.Message)
		writeContext(w, file, start, end, int(opts.Context), p)

		if !opts.ShowNotes {
			continue
		}
		for _, note := range d.Notes {
			if int(note.Span.File) >= fs.Len() {
				fmt.Fprintf(w, "  %s %s\n", p.note.Sprint("note:"), note.Msg)
				continue
			}
			nstart, _ := fs.Resolve(note.Span)
			nfile := fs.Get(note.Span.File)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"),
				formatPath(nfile.Path, opts.PathMode, opts.BaseDir), nstart.Line, nstart.Col, note.Msg)
		}
	}
}

// writeContext печатает строку диагностики с соседями и подчёркивание под ней.
func writeContext(w io.Writer, file *source.File, start, end source.LineCol, context int, p prettyPalette) {
	if context < 0 {
		context = 0
	}
	totalLines := len(file.LineIdx) + 1
	first := max(int(start.Line)-context, 1)
	last := min(int(start.Line)+context, totalLines)
	gutterWidth := len(fmt.Sprint(last))

	for line := first; line <= last; line++ {
		text := expandTabs(file.GetLine(uint32(line))) // #nosec G115 -- line <= totalLines
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, line), text)
		if line != int(start.Line) {
			continue
		}
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*s |", gutterWidth, ""), p.caret.Sprint(underline(file.GetLine(start.Line), start, end)))
	}
}

// underline строит "^~~~" под [start, end) в пределах одной строки.
func underline(line string, start, end source.LineCol) string {
	runes := []rune(line)
	from := min(int(start.Col)-1, len(runes))
	to := len(runes)
	if end.Line == start.Line {
		to = min(int(end.Col)-1, len(runes))
	}
	pad := runewidth.StringWidth(expandTabs(string(runes[:from])))
	width := runewidth.StringWidth(expandTabs(string(runes[from:max(to, from)])))
	if width < 1 {
		width = 1
	}
	return strings.Repeat(" ", pad) + "^" + strings.Repeat("~", width-1)
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
