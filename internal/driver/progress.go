package driver

import "time"

// Stage is the part of the pipeline an Event refers to.
type Stage string

const (
	StageLoad Stage = "load" // read and decode
	StageLex  Stage = "lex"  // lexer or cache replay
	StageEmit Stage = "emit" // all files finished, results returned
)

type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress of one file, or of the whole run when File is "".
// Tokens and Cached are set only by the event that finishes StageLex.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
	Tokens  int
	Cached  bool
}

// ProgressSink receives events from concurrent workers and must be safe for
// concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink sends events to Ch. A slow reader slows the workers down.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(ev Event) {
	if s.Ch != nil {
		s.Ch <- ev
	}
}

func report(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}
