package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"javalex/internal/trace"
)

var (
	traceLevels  = []string{"off", "error", "phase", "detail", "debug"}
	traceModes   = []string{"stream", "ring", "both"}
	traceFormats = []string{"auto", "text", "ndjson"}
)

// traceConfig turns the --trace* flags into a tracer config. A zero Level
// means tracing stays off.
func traceConfig(cmd *cobra.Command) (trace.Config, error) {
	flags := rootFlags(cmd)
	cfg := trace.Config{
		OutputPath: flags.String("trace"),
		RingSize:   flags.Int("trace-ring-size"),
		Heartbeat:  flags.Duration("trace-heartbeat"),
	}
	levelName := flags.String("trace-level")
	modeName := flags.String("trace-mode")
	formatName := flags.String("trace-format")
	if err := flags.Err(); err != nil {
		return cfg, err
	}

	var err error
	if cfg.Level, err = trace.ParseLevel(levelName); err != nil {
		return cfg, unknownValueError("--trace-level", levelName, traceLevels)
	}
	// --trace без уровня включает фазы, иначе файл остался бы пустым
	if cfg.Level == trace.LevelOff && cfg.OutputPath != "" && !flags.Changed("trace-level") {
		cfg.Level = trace.LevelPhase
	}
	if cfg.Mode, err = trace.ParseMode(modeName); err != nil {
		return cfg, unknownValueError("--trace-mode", modeName, traceModes)
	}
	if cfg.Format, err = trace.ParseFormat(formatName); err != nil {
		return cfg, unknownValueError("--trace-format", formatName, traceFormats)
	}
	if cfg.Format == trace.FormatAuto {
		cfg.Format = trace.FormatForPath(cfg.OutputPath)
	}
	if toStderr(cfg.OutputPath) {
		// обёртка прячет Close: трассировщик не должен закрывать stderr
		cfg.Output = struct{ io.Writer }{cmd.ErrOrStderr()}
	}
	return cfg, nil
}

func toStderr(path string) bool { return path == "" || path == "-" }

// setupTracing installs the tracer into the command context. The returned
// cleanup stops the heartbeat, dumps a ring buffer and closes the output.
func setupTracing(cmd *cobra.Command) (func(), error) {
	cfg, err := traceConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg.Level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}

	tracer, err := trace.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))

	var hb *trace.Heartbeat
	if cfg.Heartbeat > 0 {
		hb = trace.StartHeartbeat(tracer, cfg.Heartbeat)
	}

	report := func(what string, err error) {
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: %s: %v\n", what, err)
		}
	}
	return func() {
		if hb != nil {
			hb.Stop()
		}
		if ring, ok := tracer.(*trace.RingTracer); ok {
			report("dump", dumpRing(cmd.ErrOrStderr(), ring, cfg))
		}
		report("flush", tracer.Flush())
		report("close", tracer.Close())
	}, nil
}

// dumpRing пишет накопленное кольцо: в файл трассы или в stderr.
func dumpRing(stderr io.Writer, ring *trace.RingTracer, cfg trace.Config) error {
	if toStderr(cfg.OutputPath) {
		return ring.Dump(stderr, cfg.Format)
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return err
	}
	if err := ring.Dump(f, cfg.Format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
