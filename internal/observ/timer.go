// Package observ measures how long the driver spends loading and lexing
// files and prints the result for --timings.
package observ

import (
	"fmt"
	"strings"
	"time"
)

type phase struct {
	name    string
	started time.Time
	dur     time.Duration
	note    string
}

// Timer accumulates phases of one file. Parallel runs keep a Timer per file
// and combine the reports with Merge.
type Timer struct {
	phases []phase
}

func NewTimer() *Timer { return &Timer{} }

// Begin opens a phase; pass the result to End.
func (t *Timer) Begin(name string) int {
	t.phases = append(t.phases, phase{name: name, started: time.Now()})
	return len(t.phases) - 1
}

// End closes phase idx. Unknown indexes are ignored.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	t.phases[idx].dur = time.Since(t.phases[idx].started)
	t.phases[idx].note = note
}

// Record adds a phase whose duration was measured elsewhere, e.g. a load
// done before the file reached its worker.
func (t *Timer) Record(name string, dur time.Duration, note string) {
	t.phases = append(t.phases, phase{name: name, dur: dur, note: note})
}

// PhaseReport is one row of a Report. Files counts how many per-file reports
// were merged into the row.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Files      int     `json:"files,omitempty"`
	Note       string  `json:"note,omitempty"`
}

type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

func (t *Timer) Report() Report {
	var r Report
	for _, p := range t.phases {
		ms := millis(p.dur)
		r.TotalMS += ms
		r.Phases = append(r.Phases, PhaseReport{Name: p.name, DurationMS: ms, Files: 1, Note: p.note})
	}
	return r
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// String renders the table printed by --timings.
func (r Report) String() string {
	var b strings.Builder
	b.WriteString("timings:\n")
	row := func(name string, ms float64, extra string) {
		fmt.Fprintf(&b, "  %-20s %9.3f ms%s\n", name, ms, extra)
	}
	for _, p := range r.Phases {
		extra := ""
		if p.Files > 1 {
			extra = fmt.Sprintf("  %d files, %.3f ms/file", p.Files, p.DurationMS/float64(p.Files))
		}
		if p.Note != "" {
			extra += "  // " + p.Note
		}
		row(p.Name, p.DurationMS, extra)
	}
	row("total", r.TotalMS, "")
	return b.String()
}

// Merge sums phases with the same name across reports, keeping the order in
// which names first appear. Notes are per file and are dropped.
func Merge(reports ...Report) Report {
	var out Report
	pos := map[string]int{}
	for _, r := range reports {
		out.TotalMS += r.TotalMS
		for _, p := range r.Phases {
			i, seen := pos[p.Name]
			if !seen {
				i = len(out.Phases)
				pos[p.Name] = i
				out.Phases = append(out.Phases, PhaseReport{Name: p.Name})
			}
			out.Phases[i].DurationMS += p.DurationMS
			out.Phases[i].Files += max(p.Files, 1)
		}
	}
	return out
}
