package main

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"javalex/internal/diagfmt"
	"javalex/internal/version"
)

const versionTagline = "every byte accounted for"

// versionPayload is both the JSON form and the source of the pretty form.
// Optional fields stay empty unless their flag asks for them.
type versionPayload struct {
	Tool         string   `json:"tool"`
	Version      string   `json:"version"`
	Tagline      string   `json:"tagline"`
	GoVersion    string   `json:"go_version"`
	GitCommit    string   `json:"git_commit,omitempty"`
	GitMessage   string   `json:"git_message,omitempty"`
	BuildDate    string   `json:"build_date,omitempty"`
	TokenFormats []string `json:"token_formats,omitempty"`
}

type versionFlags struct {
	format                    string
	hash, message, date, full bool
}

func newVersionCmd() *cobra.Command {
	var vf versionFlags
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show javalex build fingerprints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(cmd, vf)
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&vf.hash, "hash", false, "include git commit hash")
	flags.BoolVar(&vf.message, "message", false, "include git commit message")
	flags.BoolVar(&vf.date, "date", false, "include build timestamp")
	flags.BoolVar(&vf.full, "full", false, "show every recorded bit of build metadata")
	flags.StringVar(&vf.format, "format", "pretty", "output format (pretty|json)")
	return cmd
}

func runVersion(cmd *cobra.Command, vf versionFlags) error {
	format := strings.ToLower(strings.TrimSpace(vf.format))
	if format != "pretty" && format != "json" {
		return unknownValueError("--format", vf.format, []string{"pretty", "json"})
	}
	p := buildVersionPayload(vf)
	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}
	colored, err := useColor(cmd, fileOf(out))
	if err != nil {
		return err
	}
	printVersion(out, p, colored, vf.hash || vf.message || vf.date || vf.full)
	return nil
}

// buildVersionPayload fills build metadata from ldflags, falling back to
// the VCS stamp the Go toolchain embeds.
func buildVersionPayload(vf versionFlags) versionPayload {
	p := versionPayload{
		Tool:      "javalex",
		Version:   cmp.Or(strings.TrimSpace(version.Version), "dev"),
		Tagline:   versionTagline,
		GoVersion: runtime.Version(),
	}
	commit, date := strings.TrimSpace(version.GitCommit), strings.TrimSpace(version.BuildDate)
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				commit = cmp.Or(commit, s.Value)
			case "vcs.time":
				date = cmp.Or(date, s.Value)
			}
		}
	}
	if vf.hash || vf.full {
		p.GitCommit = cmp.Or(commit, "unknown")
	}
	if vf.message || vf.full {
		p.GitMessage = cmp.Or(strings.TrimSpace(version.GitMessage), "unknown")
	}
	if vf.date || vf.full {
		p.BuildDate = cmp.Or(date, "unknown")
	}
	if vf.full {
		p.TokenFormats = diagfmt.TokenFormatNames()
	}
	return p
}

func printVersion(out io.Writer, p versionPayload, colored, detailed bool) {
	v := p.Version
	if colored {
		v = version.Colored()
	}
	fmt.Fprintf(out, "javalex %s: %s\n", v, p.Tagline)
	rows := []struct{ label, value string }{
		{"commit:", p.GitCommit},
		{"message:", p.GitMessage},
		{"built:", p.BuildDate},
		{"formats:", strings.Join(p.TokenFormats, ", ")},
	}
	for _, r := range rows {
		if r.value != "" {
			fmt.Fprintf(out, "%-9s %s\n", r.label, r.value)
		}
	}
	if detailed {
		fmt.Fprintf(out, "%-9s %s\n", "go:", p.GoVersion)
	} else {
		fmt.Fprintln(out, "set --hash, --message, --date, or --full for more build trivia")
	}
}
