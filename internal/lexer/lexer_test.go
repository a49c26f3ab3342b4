package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"javalex/internal/diag"
	"javalex/internal/lexer"
	"javalex/internal/source"
	"javalex/internal/token"
	"javalex/internal/trace"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

// Report реализует интерфейс diag.Reporter
func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

// Codes возвращает коды диагностик в порядке поступления
func (r *testReporter) Codes() []diag.Code {
	codes := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		codes = append(codes, d.Code)
	}
	return codes
}

// ErrorMessages возвращает список сообщений для вывода в тестах
func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// lexeme — токен без позиции, для сравнения последовательностей
type lexeme struct {
	Kind token.Kind
	Text string
}

func lx(kind token.Kind, text string) lexeme { return lexeme{Kind: kind, Text: text} }

func tokenize(input string) ([]token.Token, *testReporter) {
	reporter := &testReporter{}
	return lexer.Tokenize(input, lexer.Options{Reporter: reporter}), reporter
}

func lexemes(toks []token.Token) []lexeme {
	out := make([]lexeme, 0, len(toks))
	for _, t := range toks {
		out = append(out, lexeme{Kind: t.Kind, Text: t.Text})
	}
	return out
}

// expectSignificant сравнивает токены без Whitespace
func expectSignificant(t *testing.T, input string, expected []lexeme) {
	t.Helper()
	toks, reporter := tokenize(input)
	got := lexemes(token.Significant(toks))
	if len(expected) == 0 {
		expected = []lexeme{}
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("input %q: tokens mismatch (-want +got):\n%s\ndiagnostics: %v", input, diff, reporter.ErrorMessages())
	}
}

// expectAll сравнивает полный поток, включая Whitespace
func expectAll(t *testing.T, input string, expected []lexeme) {
	t.Helper()
	toks, _ := tokenize(input)
	if diff := cmp.Diff(expected, lexemes(toks)); diff != "" {
		t.Errorf("input %q: tokens mismatch (-want +got):\n%s", input, diff)
	}
}

func TestOperators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []lexeme
	}{
		{"simple a+b", "a+b", []lexeme{
			lx(token.Identifier, "a"), lx(token.Operator, "+"), lx(token.Identifier, "b"),
		}},
		{"whitespace a + b", "\ta + b\n", []lexeme{
			lx(token.Identifier, "a"), lx(token.Operator, "+"), lx(token.Identifier, "b"),
		}},
		{"complex expression", "(a+b)*c", []lexeme{
			lx(token.Symbol, "("), lx(token.Identifier, "a"), lx(token.Operator, "+"), lx(token.Identifier, "b"),
			lx(token.Symbol, ")"), lx(token.Operator, "*"), lx(token.Identifier, "c"),
		}},
		{"complex operator sequence", "a--+-b++-~a", []lexeme{
			lx(token.Identifier, "a"), lx(token.Operator, "--"), lx(token.Operator, "+"), lx(token.Operator, "-"),
			lx(token.Identifier, "b"), lx(token.Operator, "++"), lx(token.Operator, "-"), lx(token.Operator, "~"),
			lx(token.Identifier, "a"),
		}},
		{"maximal munch", "x>>>=1<<=y", []lexeme{
			lx(token.Identifier, "x"), lx(token.Operator, ">>>="), lx(token.Number, "1"),
			lx(token.Operator, "<<="), lx(token.Identifier, "y"),
		}},
		{"decrement then compare", "i-->0", []lexeme{
			lx(token.Identifier, "i"), lx(token.Operator, "--"), lx(token.Operator, ">"), lx(token.Number, "0"),
		}},
		{"assign negative", "x=-1", []lexeme{
			lx(token.Identifier, "x"), lx(token.Operator, "="), lx(token.Operator, "-"), lx(token.Number, "1"),
		}},
		{"logical", "a&&!b||c", []lexeme{
			lx(token.Identifier, "a"), lx(token.Operator, "&&"), lx(token.Operator, "!"), lx(token.Identifier, "b"),
			lx(token.Operator, "||"), lx(token.Identifier, "c"),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectSignificant(t, tt.input, tt.want)
		})
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []lexeme
	}{
		{"simple string literal", `"Hello, World!"`, []lexeme{lx(token.String, `"Hello, World!"`)}},
		{"string with escape sequences", `"Hello\nWorld\t!"`, []lexeme{lx(token.String, `"Hello\nWorld\t!"`)}},
		{"empty string literal", `""`, []lexeme{lx(token.String, `""`)}},
		{"character literal", "'a'", []lexeme{lx(token.Char, "'a'")}},
		{"character with escape sequence", `'\n'`, []lexeme{lx(token.Char, `'\n'`)}},
		{"backslash before closing quote in char", `'\\' x`, []lexeme{lx(token.Unknown, `'\\' x`)}},
		{"unterminated string literal", `"Hello`, []lexeme{lx(token.Unknown, `"Hello`)}},
		{"unterminated character literal", "'a", []lexeme{lx(token.Unknown, "'a")}},
		{"string with special characters", `"!@#$%^&*()_+-=<>?"`, []lexeme{lx(token.String, `"!@#$%^&*()_+-=<>?"`)}},
		{"escaped quotes", `"Hello\"World\""`, []lexeme{lx(token.String, `"Hello\"World\""`)}},
		{"backslash before closing quote", `"\\" x`, []lexeme{lx(token.Unknown, `"\\" x`)}},
		{"backslash pair then newline", "\"\\\\\" x\ny", []lexeme{lx(token.Unknown, `"\\" x`), lx(token.Identifier, "y")}},
		{"comment markers inside string", `"// not /* a comment"`, []lexeme{lx(token.String, `"// not /* a comment"`)}},
		{"string stops at newline", "\"abc\nx", []lexeme{lx(token.Unknown, `"abc`), lx(token.Identifier, "x")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectSignificant(t, tt.input, tt.want)
		})
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  []lexeme
	}{
		{"1f", []lexeme{lx(token.Number, "1f")}},
		{"1_2f", []lexeme{lx(token.Number, "1_2f")}},
		{".0d", []lexeme{lx(token.Number, ".0d")}},
		{"0.1e-2f", []lexeme{lx(token.Number, "0.1e-2f")}},
		{"1_234", []lexeme{lx(token.Number, "1_234")}},
		{"24", []lexeme{lx(token.Number, "24")}},
		{"0x1A3", []lexeme{lx(token.HexNumber, "0x1A3")}},
		{"0b1010", []lexeme{lx(token.BinaryNumber, "0b1010")}},
		{"3_1.1___________141_592_653", []lexeme{lx(token.Number, "3_1.1___________141_592_653")}},
		{"10L", []lexeme{lx(token.Number, "10L")}},
		{"1e10", []lexeme{lx(token.Number, "1e10")}},
		{"1E+5D", []lexeme{lx(token.Number, "1E+5D")}},
		{"0XFFl", []lexeme{lx(token.HexNumber, "0XFFl")}},
		{"0xCAFE_BABE", []lexeme{lx(token.HexNumber, "0xCAFE_BABE")}},
		{"0B1_______1L", []lexeme{lx(token.BinaryNumber, "0B1_______1L")}},
		{"1.", []lexeme{lx(token.Number, "1.")}},
		// long-суффикс не разрешён после точки
		{"1.5L", []lexeme{lx(token.Number, "1.5"), lx(token.Identifier, "L")}},
		{"1e5L", []lexeme{lx(token.Number, "1e5"), lx(token.Identifier, "L")}},
		// вторая точка завершает литерал
		{"1..2", []lexeme{lx(token.Number, "1."), lx(token.Number, ".2")}},
		{"1e5.5", []lexeme{lx(token.Number, "1e5"), lx(token.Number, ".5")}},
		// 'e' без цифры или знака — не экспонента
		{"1else", []lexeme{lx(token.Number, "1"), lx(token.Keyword, "else")}},
		{"0b12", []lexeme{lx(token.BinaryNumber, "0b1"), lx(token.Number, "2")}},
		{"0x", []lexeme{lx(token.Unknown, "0x")}},
		{"0x;", []lexeme{lx(token.Unknown, "0x"), lx(token.Symbol, ";")}},
		{"0bL", []lexeme{lx(token.Unknown, "0bL")}},
		{"1e+", []lexeme{lx(token.Number, "1e+")}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSignificant(t, tt.input, tt.want)
		})
	}
}

func TestUnderscorePlacement(t *testing.T) {
	tests := []struct {
		input string
		want  []lexeme
	}{
		// '_' в конце литерала не поглощается и уходит в следующий токен
		{"1_", []lexeme{lx(token.Number, "1"), lx(token.Keyword, "_")}},
		{"1__x", []lexeme{lx(token.Number, "1"), lx(token.Identifier, "__x")}},
		{"1._5", []lexeme{lx(token.Number, "1."), lx(token.Identifier, "_5")}},
		{"0x_1", []lexeme{lx(token.Unknown, "0x"), lx(token.Identifier, "_1")}},
		{"0b1_2", []lexeme{lx(token.BinaryNumber, "0b1"), lx(token.Identifier, "_2")}},
		{"_1", []lexeme{lx(token.Identifier, "_1")}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSignificant(t, tt.input, tt.want)
		})
	}
}

func TestComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []lexeme
	}{
		{"single-line comment", "a + b // This is a comment", []lexeme{
			lx(token.Identifier, "a"), lx(token.Operator, "+"), lx(token.Identifier, "b"),
			lx(token.LineComment, "// This is a comment"),
		}},
		{"multi-line comment", "a + b /* This is a \n multi-line comment */ d", []lexeme{
			lx(token.Identifier, "a"), lx(token.Operator, "+"), lx(token.Identifier, "b"),
			lx(token.BlockComment, "/* This is a \n multi-line comment */"), lx(token.Identifier, "d"),
		}},
		{"line comment keeps newline out", "// c\nx", []lexeme{
			lx(token.LineComment, "// c"), lx(token.Identifier, "x"),
		}},
		{"empty block comment", "/**/x", []lexeme{lx(token.BlockComment, "/**/"), lx(token.Identifier, "x")}},
		{"slash star slash closes", "/*/ x", []lexeme{
			lx(token.BlockComment, "/*/"), lx(token.Identifier, "x"),
		}},
		{"javadoc", "/** doc **/", []lexeme{lx(token.BlockComment, "/** doc **/")}},
		{"unterminated block comment", "x /* open\nstill", []lexeme{
			lx(token.Identifier, "x"), lx(token.Unknown, "/* open\nstill"),
		}},
		{"division is not a comment", "a/b", []lexeme{
			lx(token.Identifier, "a"), lx(token.Operator, "/"), lx(token.Identifier, "b"),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectSignificant(t, tt.input, tt.want)
		})
	}
}

func TestOthers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []lexeme
	}{
		{"empty input", "", nil},
		{"annotation", "@Test", []lexeme{lx(token.Annotation, "@Test")}},
		{"invalid characters", "a + #", []lexeme{
			lx(token.Identifier, "a"), lx(token.Operator, "+"), lx(token.Unknown, "#"),
		}},
		{"method declaration with annotations", "@Override public void test() {}", []lexeme{
			lx(token.Annotation, "@Override"), lx(token.Keyword, "public"), lx(token.Keyword, "void"),
			lx(token.Identifier, "test"), lx(token.Symbol, "("), lx(token.Symbol, ")"),
			lx(token.Symbol, "{"), lx(token.Symbol, "}"),
		}},
		{"lambda expression", "($arg1)->{/*Comment*/}", []lexeme{
			lx(token.Symbol, "("), lx(token.Identifier, "$arg1"), lx(token.Symbol, ")"),
			lx(token.Symbol, "->"), lx(token.Symbol, "{"), lx(token.BlockComment, "/*Comment*/"),
			lx(token.Symbol, "}"),
		}},
		{"method reference", "String::valueOf", []lexeme{
			lx(token.Identifier, "String"), lx(token.Symbol, "::"), lx(token.Identifier, "valueOf"),
		}},
		{"ternary", "a?b:c", []lexeme{
			lx(token.Identifier, "a"), lx(token.Symbol, "?"), lx(token.Identifier, "b"),
			lx(token.Symbol, ":"), lx(token.Identifier, "c"),
		}},
		{"annotation type", "public @interface Marker", []lexeme{
			lx(token.Keyword, "public"), lx(token.Keyword, "@interface"), lx(token.Identifier, "Marker"),
		}},
		{"annotation with reserved word", "@public", []lexeme{lx(token.Unknown, "@public")}},
		{"lone at", "@ 1", []lexeme{lx(token.Symbol, "@"), lx(token.Number, "1")}},
		{"literals are keywords", "true false null", []lexeme{
			lx(token.Keyword, "true"), lx(token.Keyword, "false"), lx(token.Keyword, "null"),
		}},
		{"member access", "a.b", []lexeme{
			lx(token.Identifier, "a"), lx(token.Symbol, "."), lx(token.Identifier, "b"),
		}},
		{"non-ascii letter", "é", []lexeme{lx(token.Unknown, "é")}},
		{"invalid utf-8", "a\xffb", []lexeme{
			lx(token.Identifier, "a"), lx(token.Unknown, "\xff"), lx(token.Identifier, "b"),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectSignificant(t, tt.input, tt.want)
		})
	}
}

func TestWhitespaceRunCollapses(t *testing.T) {
	expectAll(t, "a \t\n  b", []lexeme{
		lx(token.Identifier, "a"), lx(token.Whitespace, " "), lx(token.Identifier, "b"),
	})
	// ведущий пробел тоже даёт токен
	expectAll(t, "\n\n  x\n", []lexeme{
		lx(token.Whitespace, "\n"), lx(token.Identifier, "x"), lx(token.Whitespace, "\n"),
	})
	// комментарий разрывает серию
	expectAll(t, " /**/ ", []lexeme{
		lx(token.Whitespace, " "), lx(token.BlockComment, "/**/"), lx(token.Whitespace, " "),
	})
}

func TestPositions(t *testing.T) {
	pos := func(index, line, col int) source.Position {
		return source.Position{Index: index, Line: line, Column: col}
	}
	tests := []struct {
		name  string
		input string
		want  []token.Token
	}{
		{"statements", "int a;\n  b = 'c';", []token.Token{
			{Kind: token.Keyword, Text: "int", Pos: pos(0, 1, 1)},
			{Kind: token.Whitespace, Text: " ", Pos: pos(3, 1, 4)},
			{Kind: token.Identifier, Text: "a", Pos: pos(4, 1, 5)},
			{Kind: token.Symbol, Text: ";", Pos: pos(5, 1, 6)},
			{Kind: token.Whitespace, Text: "\n", Pos: pos(6, 1, 7)},
			{Kind: token.Identifier, Text: "b", Pos: pos(9, 2, 3)},
			{Kind: token.Whitespace, Text: " ", Pos: pos(10, 2, 4)},
			{Kind: token.Operator, Text: "=", Pos: pos(11, 2, 5)},
			{Kind: token.Whitespace, Text: " ", Pos: pos(12, 2, 6)},
			{Kind: token.Char, Text: "'c'", Pos: pos(13, 2, 7)},
			{Kind: token.Symbol, Text: ";", Pos: pos(16, 2, 10)},
		}},
		{"block comment keeps opening position", "x /* a\nb */ y", []token.Token{
			{Kind: token.Identifier, Text: "x", Pos: pos(0, 1, 1)},
			{Kind: token.Whitespace, Text: " ", Pos: pos(1, 1, 2)},
			{Kind: token.BlockComment, Text: "/* a\nb */", Pos: pos(2, 1, 3)},
			{Kind: token.Whitespace, Text: " ", Pos: pos(11, 2, 5)},
			{Kind: token.Identifier, Text: "y", Pos: pos(12, 2, 6)},
		}},
		{"columns count characters", `"é" x`, []token.Token{
			{Kind: token.String, Text: `"é"`, Pos: pos(0, 1, 1)},
			{Kind: token.Whitespace, Text: " ", Pos: pos(4, 1, 4)},
			{Kind: token.Identifier, Text: "x", Pos: pos(5, 1, 5)},
		}},
		{"unterminated comment at eof", "a/*\nb", []token.Token{
			{Kind: token.Identifier, Text: "a", Pos: pos(0, 1, 1)},
			{Kind: token.Unknown, Text: "/*\nb", Pos: pos(1, 1, 2)},
		}},
		{"double colon", "A::b", []token.Token{
			{Kind: token.Identifier, Text: "A", Pos: pos(0, 1, 1)},
			{Kind: token.Symbol, Text: "::", Pos: pos(1, 1, 2)},
			{Kind: token.Identifier, Text: "b", Pos: pos(3, 1, 4)},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := tokenize(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		input string
		codes []diag.Code
		sev   diag.Severity
	}{
		{"#", []diag.Code{diag.LexUnknownChar}, diag.SevError},
		{`"abc`, []diag.Code{diag.LexUnterminatedString}, diag.SevError},
		{"'a\n", []diag.Code{diag.LexUnterminatedChar}, diag.SevError},
		{"/* open", []diag.Code{diag.LexUnterminatedBlockComment}, diag.SevError},
		{`"\\" x`, []diag.Code{diag.LexUnterminatedString}, diag.SevError},
		{"/*/ x", nil, diag.SevInfo},
		{"0x;", []diag.Code{diag.LexBadNumber}, diag.SevError},
		{"1_;", []diag.Code{diag.LexBadUnderscore}, diag.SevWarning},
		{"1e+;", []diag.Code{diag.LexBadNumber}, diag.SevWarning},
		{"@public", []diag.Code{diag.LexUnknownChar}, diag.SevError},
		{"int x = 0x1F; // ok", nil, diag.SevInfo},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, reporter := tokenize(tt.input)
			if diff := cmp.Diff(tt.codes, reporter.Codes(), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("codes mismatch (-want +got):\n%s\n%v", diff, reporter.ErrorMessages())
			}
			for _, d := range reporter.diagnostics {
				if d.Severity != tt.sev {
					t.Errorf("%s: severity %s, want %s", d.Code.ID(), d.Severity, tt.sev)
				}
			}
		})
	}
}

func TestDiagnosticSpans(t *testing.T) {
	reporter := &testReporter{}
	lexer.Tokenize("x = \"open\ny", lexer.Options{Reporter: reporter, File: 3})
	if len(reporter.diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %v", reporter.ErrorMessages())
	}
	sp := reporter.diagnostics[0].Primary
	if sp.File != 3 || sp.Start != 4 || sp.End != 9 {
		t.Fatalf("unexpected span %+v", sp)
	}

	// подчёркивание указывает ровно на '_'
	reporter = &testReporter{}
	lexer.Tokenize("12_", lexer.Options{Reporter: reporter})
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Primary.Start != 2 || reporter.diagnostics[0].Primary.Len() != 1 {
		t.Fatalf("unexpected underscore diagnostic: %+v", reporter.diagnostics)
	}
}

func TestNilReporterIsFine(t *testing.T) {
	toks := lexer.Tokenize(`"open`, lexer.Options{})
	if len(toks) != 1 || toks[0].Kind != token.Unknown {
		t.Fatalf("unexpected tokens %+v", toks)
	}
}

func TestNextIsLazyAndSticky(t *testing.T) {
	l := lexer.New("a b", lexer.Options{})
	var got []string
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		got = append(got, tok.Text)
	}
	if strings.Join(got, "|") != "a| |b" {
		t.Fatalf("unexpected tokens %q", got)
	}
	for range 3 {
		if _, ok := l.Next(); ok {
			t.Fatal("Next must keep returning false after the end")
		}
	}
	if l.State() != lexer.Neutral {
		t.Fatalf("state after end = %s", l.State())
	}
}

func TestForFile(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("Main.java", []byte("class Main {}"))
	fs.AddVirtual("Other.java", []byte(""))
	reporter := &testReporter{}
	l := lexer.ForFile(fs.Get(id), lexer.Options{Reporter: reporter})
	tok, ok := l.Next()
	if !ok || tok.Kind != token.Keyword || tok.Text != "class" {
		t.Fatalf("unexpected first token %+v", tok)
	}
}

func TestTokenTracing(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelDebug)
	toks := lexer.Tokenize("a+b", lexer.Options{Tracer: ring, TraceParent: 7})

	events := ring.Snapshot()
	if len(events) != len(toks) {
		t.Fatalf("expected %d token events, got %d", len(toks), len(events))
	}
	for _, ev := range events {
		if ev.Scope != trace.ScopeToken || ev.ParentID != 7 {
			t.Errorf("unexpected event %+v", ev)
		}
	}
	if !strings.Contains(events[1].Detail, `Operator "+"`) {
		t.Errorf("unexpected detail %q", events[1].Detail)
	}

	quiet := trace.NewRingTracer(64, trace.LevelDetail)
	lexer.Tokenize("a+b", lexer.Options{Tracer: quiet})
	if n := len(quiet.Snapshot()); n != 0 {
		t.Fatalf("token events must not be recorded below debug level, got %d", n)
	}
}

const demoSource = "package test;\n" +
	"import java;\n" +
	"\n" +
	"// Comment here\n" +
	"public class Test {\n" +
	"    /* This is multiline\n" +
	"        Comment Here */\n" +
	"\n" +
	"    @AnnotationTest\n" +
	"    public static void main(){\n" +
	"        double a = 3_1.1___________141_592_653;\n" +
	"        float b = 20.0f;\n" +
	"        int c = 0b1_______1;\n" +
	"        int d = 0xAF;\n" +
	"        if(a>8 && b > a) {\n" +
	"            a = b * 2;\n" +
	"        }\n" +
	"        System.out.println(\"Hello\\\"World\\\"\");\n" +
	"    }\n" +
	"}\n"

func TestDemoProgram(t *testing.T) {
	want := []lexeme{
		lx(token.Keyword, "package"), lx(token.Identifier, "test"), lx(token.Symbol, ";"),
		lx(token.Keyword, "import"), lx(token.Identifier, "java"), lx(token.Symbol, ";"),
		lx(token.LineComment, "// Comment here"),
		lx(token.Keyword, "public"), lx(token.Keyword, "class"), lx(token.Identifier, "Test"), lx(token.Symbol, "{"),
		lx(token.BlockComment, "/* This is multiline\n        Comment Here */"),
		lx(token.Annotation, "@AnnotationTest"),
		lx(token.Keyword, "public"), lx(token.Keyword, "static"), lx(token.Keyword, "void"),
		lx(token.Identifier, "main"), lx(token.Symbol, "("), lx(token.Symbol, ")"), lx(token.Symbol, "{"),
		lx(token.Keyword, "double"), lx(token.Identifier, "a"), lx(token.Operator, "="),
		lx(token.Number, "3_1.1___________141_592_653"), lx(token.Symbol, ";"),
		lx(token.Keyword, "float"), lx(token.Identifier, "b"), lx(token.Operator, "="),
		lx(token.Number, "20.0f"), lx(token.Symbol, ";"),
		lx(token.Keyword, "int"), lx(token.Identifier, "c"), lx(token.Operator, "="),
		lx(token.BinaryNumber, "0b1_______1"), lx(token.Symbol, ";"),
		lx(token.Keyword, "int"), lx(token.Identifier, "d"), lx(token.Operator, "="),
		lx(token.HexNumber, "0xAF"), lx(token.Symbol, ";"),
		lx(token.Keyword, "if"), lx(token.Symbol, "("), lx(token.Identifier, "a"), lx(token.Operator, ">"),
		lx(token.Number, "8"), lx(token.Operator, "&&"), lx(token.Identifier, "b"), lx(token.Operator, ">"),
		lx(token.Identifier, "a"), lx(token.Symbol, ")"), lx(token.Symbol, "{"),
		lx(token.Identifier, "a"), lx(token.Operator, "="), lx(token.Identifier, "b"), lx(token.Operator, "*"),
		lx(token.Number, "2"), lx(token.Symbol, ";"),
		lx(token.Symbol, "}"),
		lx(token.Identifier, "System"), lx(token.Symbol, "."), lx(token.Identifier, "out"), lx(token.Symbol, "."),
		lx(token.Identifier, "println"), lx(token.Symbol, "("), lx(token.String, `"Hello\"World\""`),
		lx(token.Symbol, ")"), lx(token.Symbol, ";"),
		lx(token.Symbol, "}"),
		lx(token.Symbol, "}"),
	}
	expectSignificant(t, demoSource, want)

	toks, reporter := tokenize(demoSource)
	if len(reporter.diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", reporter.ErrorMessages())
	}
	if err := token.Verify(demoSource, toks); err != nil {
		t.Errorf("Verify: %v", err)
	}
}
