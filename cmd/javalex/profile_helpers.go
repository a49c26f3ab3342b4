package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"javalex/internal/prof"
)

// setupProfiling starts the Go profilers requested by --cpu-profile,
// --mem-profile and --runtime-trace.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	flags := rootFlags(cmd)
	opts := prof.Options{
		CPU:   flags.String("cpu-profile"),
		Mem:   flags.String("mem-profile"),
		Trace: flags.String("runtime-trace"),
	}
	if err := flags.Err(); err != nil {
		return nil, err
	}
	if !opts.Enabled() {
		return func() {}, nil
	}
	session, err := prof.Start(opts)
	if err != nil {
		return nil, err
	}
	return func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "profile: %v\n", err)
		}
	}, nil
}

// setupInstrumentation включает трассировку и профилирование; cleanup
// останавливает их в обратном порядке.
func setupInstrumentation(cmd *cobra.Command) (func(), error) {
	stopTracing, err := setupTracing(cmd)
	if err != nil {
		return nil, err
	}
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		stopTracing()
		return nil, err
	}
	return func() {
		stopProfiling()
		stopTracing()
	}, nil
}
