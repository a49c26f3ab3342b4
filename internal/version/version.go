package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/mod/semver"
)

// Version information for the javalex CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI, without the leading "v".
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Canonical returns Version in the "vMAJOR.MINOR.PATCH[-pre]" form used by
// golang.org/x/mod/semver, or "" when Version is not a semantic version.
func Canonical() string {
	v := strings.TrimSpace(Version)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return v
}

// Colored раскрашивает major/minor/patch; пре-релиз и build остаются как есть.
func Colored() string {
	v := Canonical()
	if v == "" || !strings.HasPrefix(v, semver.MajorMinor(v)+".") {
		return Version
	}
	rest := strings.TrimPrefix(v, semver.MajorMinor(v)+".")
	patch, suffix := rest, ""
	if i := strings.IndexAny(rest, "-+"); i >= 0 {
		patch, suffix = rest[:i], rest[i:]
	}
	major := strings.TrimPrefix(semver.Major(v), "v")
	minor := strings.TrimPrefix(semver.MajorMinor(v), semver.Major(v)+".")
	return versionMajorColor.Sprint(major) + "." + versionMinorColor.Sprint(minor) + "." + versionPatchColor.Sprint(patch) + suffix
}

// Satisfies reports whether the running version is at least required
// ("v0.2.0" or "0.2.0"). Pre-release builds compare below their release.
func Satisfies(required string) (bool, error) {
	req := strings.TrimSpace(required)
	if !strings.HasPrefix(req, "v") {
		req = "v" + req
	}
	if !semver.IsValid(req) {
		return false, fmt.Errorf("invalid version requirement %q", required)
	}
	current := Canonical()
	if current == "" {
		return false, fmt.Errorf("running version %q is not a semantic version", Version)
	}
	return semver.Compare(current, req) >= 0, nil
}
