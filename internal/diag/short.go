package diag

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"javalex/internal/source"
)

type shortLine struct {
	sev       string
	code      string
	path      string
	line, col uint32
	msg       string
}

func (l shortLine) compare(o shortLine) int {
	return cmp.Or(
		strings.Compare(l.path, o.path),
		cmp.Compare(l.line, o.line),
		cmp.Compare(l.col, o.col),
		strings.Compare(l.sev, o.sev),
		strings.Compare(l.code, o.code),
		strings.Compare(l.msg, o.msg),
	)
}

// FormatShortDiagnostics renders one line per diagnostic:
//
//	severity CODE path:line:col message
//
// Notes become "note" lines when includeNotes is set. Lines are sorted by
// location and joined without a trailing newline. Spans pointing outside fs
// are skipped.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil {
		return ""
	}
	var lines []shortLine
	add := func(sev string, code Code, sp source.Span, msg string) {
		if int(sp.File) >= fs.Len() {
			return
		}
		pos, _ := fs.Resolve(sp)
		lines = append(lines, shortLine{
			sev:  sev,
			code: code.ID(),
			path: strings.TrimPrefix(fs.Get(sp.File).Path, "./"),
			line: pos.Line,
			col:  pos.Col,
			msg:  oneLine(msg),
		})
	}
	for _, d := range diags {
		add(d.Severity.label(), d.Code, d.Primary, d.Message)
		if includeNotes {
			for _, n := range d.Notes {
				add("note", d.Code, n.Span, n.Msg)
			}
		}
	}
	slices.SortStableFunc(lines, shortLine.compare)

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = fmt.Sprintf("%s %s %s:%d:%d %s", l.sev, l.code, l.path, l.line, l.col, l.msg)
	}
	return strings.Join(out, "\n")
}

// oneLine склеивает многострочное сообщение в одну строку.
func oneLine(msg string) string {
	return strings.TrimSpace(strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(msg))
}
