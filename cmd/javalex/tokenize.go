package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"javalex/internal/diag"
	"javalex/internal/diagfmt"
	"javalex/internal/driver"
	"javalex/internal/observ"
	"javalex/internal/source"
	"javalex/internal/trace"
)

const stdinName = "<stdin>"

var diagFormats = []string{"pretty", "json", "short"}

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file.java|dir|->",
		Short: "Tokenize Java source files",
		Long: `Tokenize splits Java source into classified tokens.
A directory is tokenized file by file in parallel; "-" reads stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: runTokenize,
	}
	flags := cmd.Flags()
	flags.String("format", "pretty", "output format ("+strings.Join(diagfmt.TokenFormatNames(), "|")+")")
	flags.Bool("significant", false, "drop whitespace tokens")
	flags.String("encoding", "", "source charset (default utf-8)")
	flags.Int("jobs", 0, "max parallel files for directories (0 = GOMAXPROCS)")
	flags.String("ui", "auto", "progress UI for directories (auto|on|off)")
	flags.Bool("cache", false, "reuse tokens from the on-disk cache")
	flags.String("cache-dir", "", "token cache directory (default: user cache dir)")
	flags.StringSlice("include", nil, "file name globs for directories (default *.java)")
	flags.String("diag-format", "pretty", "diagnostics format ("+strings.Join(diagFormats, "|")+")")
	return cmd
}

// resolveSettings собирает настройки: умолчания, затем javalex.toml, затем явные флаги.
func resolveSettings(cmd *cobra.Command) (tokenizeSettings, *projectConfig, error) {
	settings := defaultSettings()

	root := rootFlags(cmd)
	configPath := root.String("config")
	if err := root.Err(); err != nil {
		return settings, nil, err
	}
	pc, err := loadConfig(configPath, ".")
	if err != nil {
		return settings, nil, err
	}
	pc.apply(&settings)

	flags := cmd.Flags()
	if flags.Changed("format") {
		value, _ := flags.GetString("format")
		format, err := diagfmt.ParseTokenFormat(strings.ToLower(value))
		if err != nil {
			return settings, pc, unknownValueError("--format", value, diagfmt.TokenFormatNames())
		}
		settings.Format = format
	}
	if flags.Changed("significant") {
		settings.Significant, _ = flags.GetBool("significant")
	}
	if flags.Changed("encoding") {
		settings.Encoding, _ = flags.GetString("encoding")
	}
	if flags.Changed("jobs") {
		settings.Jobs, _ = flags.GetInt("jobs")
	}
	if flags.Changed("include") {
		settings.Include, _ = flags.GetStringSlice("include")
	}
	if flags.Changed("ui") {
		value, _ := flags.GetString("ui")
		mode, err := readUIMode(value)
		if err != nil {
			return settings, pc, err
		}
		settings.UI = mode
	}
	if flags.Changed("cache") {
		settings.CacheEnabled, _ = flags.GetBool("cache")
	}
	if flags.Changed("cache-dir") {
		settings.CacheDir, _ = flags.GetString("cache-dir")
	}
	if flags.Changed("diag-format") {
		value, _ := flags.GetString("diag-format")
		value = strings.ToLower(strings.TrimSpace(value))
		if !contains(diagFormats, value) {
			return settings, pc, unknownValueError("--diag-format", value, diagFormats)
		}
		settings.DiagFormat = value
	}

	if _, err := source.CanonicalEncoding(settings.Encoding); err != nil {
		return settings, pc, fmt.Errorf("%s %w", diag.CfgUnknownEncoding.ID(), err)
	}
	if settings.Jobs < 0 {
		return settings, pc, fmt.Errorf("--jobs must not be negative, got %d", settings.Jobs)
	}
	return settings, pc, nil
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cleanup, err := setupInstrumentation(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	settings, pc, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	root := rootFlags(cmd)
	maxDiagnostics := root.Int("max-diagnostics")
	quiet := root.Bool("quiet")
	timings := root.Bool("timings")
	if err := root.Err(); err != nil {
		return err
	}

	tracer := trace.FromContext(cmd.Context())
	if pc != nil && trace.Active(tracer, trace.ScopeDriver) {
		trace.Point(tracer, trace.ScopeDriver, "config", pc.Path+": "+strings.Join(pc.definedKeys(), ","), 0)
	}

	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Encoding:       settings.Encoding,
		Significant:    settings.Significant,
		Include:        settings.Include,
		Tracer:         tracer,
	}
	if settings.CacheEnabled {
		cache, err := openCache(settings.CacheDir)
		if err != nil {
			return err
		}
		opts.Cache = cache
	}

	out := cmd.OutOrStdout()
	outFile := fileOf(out)
	if settings.Format.Binary() && outFile != nil && isTerminal(outFile) {
		return fmt.Errorf("refusing to write %s to a terminal; redirect stdout", settings.Format)
	}
	colorOut, err := useColor(cmd, outFile)
	if err != nil {
		return err
	}
	tokOpts := diagfmt.TokenOpts{Color: colorOut, Width: lexemeWidth(outFile)}
	diagOut := diagnosticsOutput{
		cmd:    cmd,
		format: settings.DiagFormat,
		quiet:  quiet,
	}

	target := args[0]
	if target == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		decoded, err := source.Decode(content, settings.Encoding)
		if err != nil {
			return err
		}
		res := driver.TokenizeSource(stdinName, decoded, opts)
		return emitSingle(cmd, res, settings.Format, tokOpts, diagOut, timings)
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if !info.IsDir() {
		res, err := driver.Tokenize(target, opts)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
		return emitSingle(cmd, res, settings.Format, tokOpts, diagOut, timings)
	}

	files, err := driver.ListFiles(target, settings.Include)
	if err != nil {
		return err
	}
	var (
		fileSet *source.FileSet
		results []driver.TokenizeDirResult
	)
	if !quiet && len(files) > 0 && shouldUseTUI(settings.UI) {
		fileSet, results, err = runTokenizeWithUI(cmd.Context(), "tokenize "+target, files, opts, settings.Jobs)
	} else {
		fileSet, results, err = driver.TokenizeFiles(cmd.Context(), files, opts, settings.Jobs)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	return emitDir(cmd, fileSet, results, settings.Format, tokOpts, diagOut, timings)
}

func emitSingle(cmd *cobra.Command, res *driver.TokenizeResult, format diagfmt.TokenFormat, tokOpts diagfmt.TokenOpts, diagOut diagnosticsOutput, timings bool) error {
	if err := diagOut.write(res.Bag, res.FileSet); err != nil {
		return err
	}
	if err := diagfmt.FormatTokens(cmd.OutOrStdout(), res.Tokens, format, tokOpts); err != nil {
		return fmt.Errorf("failed to write tokens: %w", err)
	}
	if timings {
		fmt.Fprint(cmd.ErrOrStderr(), res.Timing.String())
	}
	if res.Bag.HasErrors() {
		return errDiagnostics
	}
	return nil
}

func emitDir(cmd *cobra.Command, fileSet *source.FileSet, results []driver.TokenizeDirResult, format diagfmt.TokenFormat, tokOpts diagfmt.TokenOpts, diagOut diagnosticsOutput, timings bool) error {
	combined := diag.NewBag(0)
	files := make([]diagfmt.FileTokens, 0, len(results))
	reports := make([]observ.Report, 0, len(results))
	for _, r := range results {
		if r.Bag != nil {
			combined.Merge(r.Bag)
		}
		reports = append(reports, r.Timing)
		if loadFailed(r) {
			continue
		}
		files = append(files, diagfmt.FileTokens{Path: r.Path, Tokens: r.Tokens})
	}
	combined.Sort()

	if err := diagOut.write(combined, fileSet); err != nil {
		return err
	}
	if err := diagfmt.FormatFileTokens(cmd.OutOrStdout(), files, format, tokOpts); err != nil {
		return fmt.Errorf("failed to write tokens: %w", err)
	}
	if timings {
		fmt.Fprint(cmd.ErrOrStderr(), observ.Merge(reports...).String())
	}
	if combined.HasErrors() {
		return errDiagnostics
	}
	return nil
}

func loadFailed(r driver.TokenizeDirResult) bool {
	if r.Bag == nil {
		return false
	}
	for _, d := range r.Bag.Items() {
		if d.Code == diag.IOLoadFileError {
			return true
		}
	}
	return false
}

type diagnosticsOutput struct {
	cmd    *cobra.Command
	format string
	quiet  bool
}

// write печатает диагностики в stderr; с --quiet остаются только ошибки.
func (o diagnosticsOutput) write(bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil {
		return nil
	}
	dropped := bag.Dropped()
	if o.quiet {
		bag = onlyErrors(bag)
	}
	if bag.Len() == 0 {
		return nil
	}
	w := o.cmd.ErrOrStderr()
	switch o.format {
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true})
	case "short":
		if _, err := io.WriteString(w, diag.FormatShortDiagnostics(bag.Items(), fs, true)+"\n"); err != nil {
			return err
		}
	default:
		colored, err := useColor(o.cmd, fileOf(w))
		if err != nil {
			return err
		}
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     colored,
			Context:   2,
			PathMode:  diagfmt.PathModeAuto,
			ShowNotes: true,
		})
	}
	if dropped > 0 {
		fmt.Fprintf(w, "javalex: %d more diagnostics not shown (see --max-diagnostics)\n", dropped)
	}
	return nil
}

func onlyErrors(bag *diag.Bag) *diag.Bag {
	out := diag.NewBag(0)
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError {
			out.Add(d)
		}
	}
	return out
}

func openCache(dir string) (*driver.TokenCache, error) {
	if dir == "" {
		var err error
		dir, err = driver.DefaultCacheDir("javalex")
		if err != nil {
			return nil, fmt.Errorf("%s cannot locate cache dir: %w", diag.IOCacheError.ID(), err)
		}
	}
	cache, err := driver.OpenTokenCache(dir)
	if err != nil {
		return nil, fmt.Errorf("%s cannot open cache: %w", diag.IOCacheError.ID(), err)
	}
	return cache, nil
}

// lexemeWidth оставляет под лексему то, что не занято номером, видом и позицией.
func lexemeWidth(f *os.File) int {
	if f == nil || !isTerminal(f) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
	if err != nil || width <= 40 {
		return 0
	}
	return width - 40
}

func fileOf(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
