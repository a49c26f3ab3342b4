package diag

import (
	"testing"

	"javalex/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Add("./src/Sample.java", []byte("a\nb\n"), 0)

	diags := []Diagnostic{
		NewWarning(LexBadUnderscore, source.Span{File: file, Start: 2, End: 3}, "another"),
		NewError(LexUnterminatedString, source.Span{File: file, Start: 0, End: 1}, "first line\r\nsecond").
			WithNote(source.Span{File: 42}, "skip me").
			WithNote(source.Span{File: file, Start: 2, End: 3}, "note line"),
	}

	want := "error LEX1002 src/Sample.java:1:1 first line second\n" +
		"note LEX1002 src/Sample.java:2:1 note line\n" +
		"warning LEX1006 src/Sample.java:2:1 another"
	if got := FormatShortDiagnostics(diags, fs, true); got != want {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", want, got)
	}

	// без заметок остаются только основные строки
	if got := FormatShortDiagnostics(diags, fs, false); got != "error LEX1002 src/Sample.java:1:1 first line second\nwarning LEX1006 src/Sample.java:2:1 another" {
		t.Fatalf("notes leaked: %q", got)
	}
}

func TestFormatShortDiagnosticsEmpty(t *testing.T) {
	if got := FormatShortDiagnostics(nil, source.NewFileSet(), false); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	if got := FormatShortDiagnostics([]Diagnostic{{}}, nil, false); got != "" {
		t.Fatalf("nil file set must render nothing, got %q", got)
	}
}
