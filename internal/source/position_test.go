package source

import "testing"

func TestPositionAdvance(t *testing.T) {
	p := Start()
	for _, r := range "ab\nc" {
		p.Advance(r, 1)
	}
	want := Position{Index: 4, Line: 2, Column: 2}
	if p != want {
		t.Fatalf("got %+v, want %+v", p, want)
	}
}

func TestPositionAdvanceMultibyte(t *testing.T) {
	p := Start()
	p.Advance('é', 2)
	if p.Index != 2 || p.Column != 2 {
		t.Fatalf("got %+v, want index 2 column 2", p)
	}
}

func TestPositionRewind(t *testing.T) {
	end := Position{Index: 12, Line: 3, Column: 9}
	got := end.Rewind("\"é\"")
	want := Position{Index: 8, Line: 3, Column: 6}
	if got != want {
		t.Fatalf("Rewind = %+v, want %+v", got, want)
	}
	if end.Rewind("") != end {
		t.Fatalf("Rewind of empty text must be identity")
	}
}

func TestSpanOf(t *testing.T) {
	sp := SpanOf(2, Position{Index: 5, Line: 1, Column: 6}, "abc")
	if sp.File != 2 || sp.Start != 5 || sp.End != 8 || sp.Len() != 3 {
		t.Fatalf("unexpected span %+v", sp)
	}
	if !SpanOf(0, Start(), "").Empty() {
		t.Fatalf("empty text must give empty span")
	}
	cover := Span{Start: 2, End: 4}.Cover(Span{Start: 3, End: 9})
	if cover.Start != 2 || cover.End != 9 {
		t.Fatalf("Cover = %+v", cover)
	}
}
