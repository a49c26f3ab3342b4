package lexer

import (
	"javalex/internal/diag"
	"javalex/internal/source"
	"javalex/internal/trace"
)

type Options struct {
	Reporter diag.Reporter // может быть nil — тогда ошибки игнорируем (но продолжаем лексить)
	File     source.FileID // файл, к которому привязываются спаны диагностик
	// Tracer получает point-событие на каждый токен при LevelDebug.
	Tracer      trace.Tracer
	TraceParent uint64
}

func (lx *Lexer) report(code diag.Code, sev diag.Severity, pos source.Position, text, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	sp := source.SpanOf(lx.opts.File, pos, text)
	diag.NewReportBuilder(lx.opts.Reporter, sev, code, sp, msg).Emit()
}
