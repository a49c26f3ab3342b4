package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	timer := NewTimer()
	timer.Record("load", 2*time.Millisecond, "")
	idx := timer.Begin("lex")
	timer.End(idx, "12 tokens")
	timer.End(42, "ignored")

	report := timer.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(report.Phases))
	}
	if p := report.Phases[0]; p.Name != "load" || p.DurationMS != 2 || p.Files != 1 {
		t.Fatalf("unexpected load phase %+v", p)
	}
	if report.Phases[1].Note != "12 tokens" {
		t.Fatalf("unexpected lex phase %+v", report.Phases[1])
	}
	if report.TotalMS < 2 {
		t.Fatalf("total %.3f must include recorded phase", report.TotalMS)
	}

	text := report.String()
	for _, want := range []string{"timings:", "load", "lex", "// 12 tokens", "total"} {
		if !strings.Contains(text, want) {
			t.Errorf("report misses %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "ms/file") {
		t.Errorf("single-file report must not show per-file averages:\n%s", text)
	}
}

func TestEmptyTimer(t *testing.T) {
	if r := NewTimer().Report(); r.TotalMS != 0 || len(r.Phases) != 0 {
		t.Fatalf("unexpected report %+v", r)
	}
}

func TestMerge(t *testing.T) {
	a := Report{TotalMS: 3, Phases: []PhaseReport{{Name: "load", DurationMS: 1, Files: 1}, {Name: "lex", DurationMS: 2, Files: 1, Note: "x"}}}
	b := Report{TotalMS: 4, Phases: []PhaseReport{{Name: "lex", DurationMS: 3, Files: 1}, {Name: "load", DurationMS: 1}}}

	m := Merge(a, b)
	if m.TotalMS != 7 || len(m.Phases) != 2 {
		t.Fatalf("unexpected merge %+v", m)
	}
	want := []PhaseReport{{Name: "load", DurationMS: 2, Files: 2}, {Name: "lex", DurationMS: 5, Files: 2}}
	for i, p := range want {
		if m.Phases[i] != p {
			t.Fatalf("phase %d = %+v, want %+v", i, m.Phases[i], p)
		}
	}
	if !strings.Contains(m.String(), "2 files, 2.500 ms/file") {
		t.Fatalf("per-file average missing:\n%s", m.String())
	}
	if got := Merge(); got.TotalMS != 0 || got.Phases != nil {
		t.Fatalf("empty merge = %+v", got)
	}
}
