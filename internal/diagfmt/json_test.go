package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"javalex/internal/diag"
	"javalex/internal/source"
)

// TestJSONBasic проверяет базовое JSON форматирование
func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("class A {\n\tString s = \"unterminated\n}")
	fileID := fs.AddVirtual("src/A.java", content)

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 22, End: 35},
		"missing closing \"",
	))

	var buf bytes.Buffer
	err := JSON(&buf, bag, fs, JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
	})
	require.NoError(t, err)

	// Парсим JSON чтобы убедиться что он валидный
	var output DiagnosticsOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output), buf.String())
	require.Equal(t, 1, output.Count)
	require.Len(t, output.Diagnostics, 1)

	d := output.Diagnostics[0]
	require.Equal(t, "ERROR", d.Severity)
	require.Equal(t, "LEX1002", d.Code)
	require.Equal(t, "A.java", d.Location.File)
	require.Equal(t, uint32(22), d.Location.StartByte)
	require.Equal(t, uint32(35), d.Location.EndByte)
	require.Equal(t, uint32(2), d.Location.StartLine)
	require.Equal(t, uint32(13), d.Location.StartCol)
}

func TestJSONNotesAndMax(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("A.java", []byte("int x = 0x;"))

	bag := diag.NewBag(0)
	first := diag.New(diag.SevError, diag.LexBadNumber, source.Span{File: fileID, Start: 8, End: 10}, "hexadecimal literal has no digits").
		WithNote(source.Span{File: fileID, Start: 0, End: 3}, "declared here")
	bag.Add(first)
	bag.Add(diag.NewWarning(diag.LexBadUnderscore, source.Span{File: fileID, Start: 9, End: 10}, "underscore"))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1, IncludeNotes: true})
	require.Equal(t, 1, out.Count)
	require.Equal(t, 1, out.Omitted)
	require.Equal(t, 1, out.Errors)
	require.Zero(t, out.Warnings)
	require.Equal(t, "Bad number", out.Diagnostics[0].Title)
	require.Len(t, out.Diagnostics[0].Notes, 1)
	require.Equal(t, "declared here", out.Diagnostics[0].Notes[0].Message)
	// без IncludePositions строк/колонок нет
	require.Zero(t, out.Diagnostics[0].Location.StartLine)

	out = BuildDiagnosticsOutput(bag, fs, JSONOpts{})
	require.Equal(t, 2, out.Count)
	require.Empty(t, out.Diagnostics[0].Notes)
	require.Equal(t, "WARNING", out.Diagnostics[1].Severity)
	require.Equal(t, 1, out.Warnings)
	require.Zero(t, out.Omitted)
}

func TestJSONUnknownFile(t *testing.T) {
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: 5}, "cannot read"))
	out := BuildDiagnosticsOutput(bag, source.NewFileSet(), JSONOpts{IncludePositions: true})
	require.Equal(t, "", out.Diagnostics[0].Location.File)
	require.Equal(t, "IO4001", out.Diagnostics[0].Code)
}
