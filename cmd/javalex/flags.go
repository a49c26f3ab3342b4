package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagReader reads typed flags and keeps the first lookup error, so a run of
// reads is checked once with Err.
type flagReader struct {
	set *pflag.FlagSet
	err error
}

// rootFlags reads the persistent flags shared by every subcommand.
func rootFlags(cmd *cobra.Command) *flagReader {
	return &flagReader{set: cmd.Root().PersistentFlags()}
}

func (r *flagReader) note(name string, err error) {
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("failed to get %s flag: %w", name, err)
	}
}

func (r *flagReader) String(name string) string {
	v, err := r.set.GetString(name)
	r.note(name, err)
	return v
}

func (r *flagReader) Int(name string) int {
	v, err := r.set.GetInt(name)
	r.note(name, err)
	return v
}

func (r *flagReader) Bool(name string) bool {
	v, err := r.set.GetBool(name)
	r.note(name, err)
	return v
}

func (r *flagReader) Duration(name string) time.Duration {
	v, err := r.set.GetDuration(name)
	r.note(name, err)
	return v
}

func (r *flagReader) Changed(name string) bool { return r.set.Changed(name) }

func (r *flagReader) Err() error { return r.err }
