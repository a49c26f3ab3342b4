package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"javalex/internal/diag"
	"javalex/internal/diagfmt"
	"javalex/internal/source"
	"javalex/internal/version"
)

const configFileName = "javalex.toml"

type projectConfig struct {
	Path   string
	Config fileConfig
	meta   toml.MetaData
}

type fileConfig struct {
	Requires string         `toml:"requires"`
	Tokenize tokenizeConfig `toml:"tokenize"`
	Cache    cacheConfig    `toml:"cache"`
}

type tokenizeConfig struct {
	Format      string   `toml:"format"`
	Significant bool     `toml:"significant"`
	Encoding    string   `toml:"encoding"`
	Jobs        int      `toml:"jobs"`
	Include     []string `toml:"include"`
	UI          string   `toml:"ui"`
}

type cacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

var knownConfigKeys = []string{
	"requires",
	"tokenize", "tokenize.format", "tokenize.significant", "tokenize.encoding",
	"tokenize.jobs", "tokenize.include", "tokenize.ui",
	"cache", "cache.enabled", "cache.dir",
}

// configError — ошибка javalex.toml со своим кодом диагностики.
type configError struct {
	Path string
	Code diag.Code
	Msg  string
}

func (e *configError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Path, e.Code.ID(), e.Msg)
}

func findConfigFile(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig читает явно заданный файл или ищет javalex.toml вверх от startDir.
// Без файла возвращает nil, nil.
func loadConfig(explicit, startDir string) (*projectConfig, error) {
	path := explicit
	if path == "" {
		found, ok, err := findConfigFile(startDir)
		if err != nil || !ok {
			return nil, err
		}
		path = found
	}

	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	pc := &projectConfig{Path: path, Config: cfg, meta: meta}
	if err := pc.validate(); err != nil {
		return nil, err
	}
	return pc, nil
}

func (pc *projectConfig) fail(code diag.Code, format string, args ...any) error {
	return &configError{Path: pc.Path, Code: code, Msg: fmt.Sprintf(format, args...)}
}

func (pc *projectConfig) validate() error {
	if undecoded := pc.meta.Undecoded(); len(undecoded) > 0 {
		key := undecoded[0].String()
		msg := fmt.Sprintf("unknown key %q", key)
		if s := suggest(key, knownConfigKeys); s != "" {
			msg += fmt.Sprintf("; did you mean %q?", s)
		}
		return pc.fail(diag.CfgInvalidValue, "%s", msg)
	}

	if pc.meta.IsDefined("requires") {
		ok, err := version.Satisfies(pc.Config.Requires)
		if err != nil {
			return pc.fail(diag.CfgInvalidValue, "requires: %v", err)
		}
		if !ok {
			return pc.fail(diag.CfgVersionTooOld, "requires javalex %s, this is %s",
				pc.Config.Requires, version.Canonical())
		}
	}

	t := pc.Config.Tokenize
	if pc.meta.IsDefined("tokenize", "format") {
		if _, err := diagfmt.ParseTokenFormat(t.Format); err != nil {
			return pc.fail(diag.CfgInvalidValue, "[tokenize].format: %v", unknownValueError("format", t.Format, diagfmt.TokenFormatNames()))
		}
	}
	if pc.meta.IsDefined("tokenize", "encoding") {
		if _, err := source.CanonicalEncoding(t.Encoding); err != nil {
			return pc.fail(diag.CfgUnknownEncoding, "[tokenize].encoding: %v", err)
		}
	}
	if pc.meta.IsDefined("tokenize", "jobs") && t.Jobs < 0 {
		return pc.fail(diag.CfgInvalidValue, "[tokenize].jobs must not be negative, got %d", t.Jobs)
	}
	if pc.meta.IsDefined("tokenize", "ui") {
		if _, err := readUIMode(t.UI); err != nil {
			return pc.fail(diag.CfgInvalidValue, "[tokenize].ui: %v", err)
		}
	}
	for _, pattern := range t.Include {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return pc.fail(diag.CfgInvalidValue, "[tokenize].include: bad pattern %q", pattern)
		}
	}
	return nil
}

// tokenizeSettings — итоговые настройки после файла и флагов.
type tokenizeSettings struct {
	Format       diagfmt.TokenFormat
	Significant  bool
	Encoding     string
	Jobs         int
	Include      []string
	UI           uiMode
	CacheEnabled bool
	CacheDir     string
	DiagFormat   string
}

func defaultSettings() tokenizeSettings {
	return tokenizeSettings{
		Format:     diagfmt.TokenFormatPretty,
		UI:         uiModeAuto,
		DiagFormat: "pretty",
	}
}

// apply переносит в s только явно заданные в файле ключи.
func (pc *projectConfig) apply(s *tokenizeSettings) {
	if pc == nil {
		return
	}
	t := pc.Config.Tokenize
	if pc.meta.IsDefined("tokenize", "format") {
		s.Format, _ = diagfmt.ParseTokenFormat(t.Format)
	}
	if pc.meta.IsDefined("tokenize", "significant") {
		s.Significant = t.Significant
	}
	if pc.meta.IsDefined("tokenize", "encoding") {
		s.Encoding = t.Encoding
	}
	if pc.meta.IsDefined("tokenize", "jobs") {
		s.Jobs = t.Jobs
	}
	if pc.meta.IsDefined("tokenize", "include") {
		s.Include = append([]string(nil), t.Include...)
	}
	if pc.meta.IsDefined("tokenize", "ui") {
		s.UI, _ = readUIMode(t.UI)
	}
	if pc.meta.IsDefined("cache", "enabled") {
		s.CacheEnabled = pc.Config.Cache.Enabled
	}
	if pc.meta.IsDefined("cache", "dir") {
		dir := pc.Config.Cache.Dir
		if dir != "" && !filepath.IsAbs(dir) {
			dir = filepath.Join(filepath.Dir(pc.Path), dir)
		}
		s.CacheDir = dir
	}
}

// definedKeys перечисляет ключи файла в виде "tokenize.format".
func (pc *projectConfig) definedKeys() []string {
	if pc == nil {
		return nil
	}
	keys := make([]string, 0, len(pc.meta.Keys()))
	for _, k := range pc.meta.Keys() {
		keys = append(keys, strings.Join(k, "."))
	}
	sort.Strings(keys)
	return keys
}
