// Package diag defines the diagnostic model shared by the lexer, the driver
// and the CLI.
//
// Producers emit through a Reporter (directly or via ReportBuilder); BagReporter
// collects into a Bag that supports limits, sorting and deduplication.
// Rendering lives in internal/diagfmt; FormatShortDiagnostics (short.go) is the one
// plain-text form kept here because golden tests and the CLI both need it
// without color or source excerpts.
//
// Diagnostics never change the token stream: the lexer stays total and reports
// malformed constructs as Unknown tokens, the diagnostic is a side channel.
package diag
