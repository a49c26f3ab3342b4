// Package trace records what a javalex run is doing: the run itself, its
// passes (load, lex, emit), each file and, at debug level, every token.
//
// Sinks: Nop when disabled, StreamTracer writes each event as it happens,
// RingTracer keeps the tail in memory for a dump on exit, MultiTracer feeds
// both. Events are text or NDJSON lines.
//
//	javalex --trace=run.ndjson --trace-level=detail tokenize src/
//
// Spans nest through explicit parent IDs:
//
//	span := trace.Begin(t, trace.ScopeFile, "tokenize", parent)
//	defer span.End("")
//	trace.Point(t, trace.ScopeToken, "token", detail, span.ID())
package trace
