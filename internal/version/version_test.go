package version

import (
	"testing"

	"github.com/fatih/color"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	orig := Version
	Version = v
	t.Cleanup(func() { Version = orig })
}

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if Canonical() == "" {
		t.Errorf("default Version %q must be a semantic version", Version)
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0.1.0", "v0.1.0"},
		{"v1.2.3", "v1.2.3"},
		{"1.0.0-beta.1", "v1.0.0-beta.1"},
		{"1.2.3-rc.1+build.123", "v1.2.3-rc.1+build.123"},
		{"dev", ""},
		{"", ""},
	}
	for _, tt := range tests {
		withVersion(t, tt.in)
		if got := Canonical(); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestColored(t *testing.T) {
	// без цвета Colored совпадает с каноническим видом без "v"
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	withVersion(t, "1.2.3-rc.1")
	if got := Colored(); got != "1.2.3-rc.1" {
		t.Fatalf("Colored = %q", got)
	}
	withVersion(t, "dev")
	if got := Colored(); got != "dev" {
		t.Fatalf("Colored = %q", got)
	}
}

func TestSatisfies(t *testing.T) {
	withVersion(t, "0.2.0")
	tests := []struct {
		required string
		ok       bool
		err      bool
	}{
		{"v0.1.0", true, false},
		{"0.2.0", true, false},
		{"v0.3.0", false, false},
		{"v0.2.0-dev", true, false},
		{"not-a-version", false, true},
	}
	for _, tt := range tests {
		ok, err := Satisfies(tt.required)
		if (err != nil) != tt.err || ok != tt.ok {
			t.Errorf("Satisfies(%q) = %v, %v", tt.required, ok, err)
		}
	}

	withVersion(t, "0.2.0-dev")
	if ok, _ := Satisfies("v0.2.0"); ok {
		t.Error("pre-release must compare below its release")
	}
	withVersion(t, "dev")
	if _, err := Satisfies("v0.1.0"); err == nil {
		t.Error("non-semver running version must be an error")
	}
}
