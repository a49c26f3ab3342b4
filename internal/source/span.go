package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Span is a half-open byte range inside one file.
type Span struct {
	File  FileID
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

// SpanOf builds the span covering text that starts at pos.
func SpanOf(file FileID, pos Position, text string) Span {
	start, err := safecast.Conv[uint32](pos.Index)
	if err != nil {
		panic(fmt.Errorf("span start overflow: %w", err))
	}
	size, err := safecast.Conv[uint32](len(text))
	if err != nil {
		panic(fmt.Errorf("span length overflow: %w", err))
	}
	return Span{File: file, Start: start, End: start + size}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	s.Start = min(s.Start, other.Start)
	s.End = max(s.End, other.End)
	return s
}
