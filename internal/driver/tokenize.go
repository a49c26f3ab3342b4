package driver

import (
	"fmt"

	"javalex/internal/diag"
	"javalex/internal/diagfmt"
	"javalex/internal/lexer"
	"javalex/internal/observ"
	"javalex/internal/source"
	"javalex/internal/token"
	"javalex/internal/trace"
)

// Options настраивают токенизацию одного файла или каталога.
type Options struct {
	MaxDiagnostics int      // <= 0 — без ограничения
	Encoding       string   // кодировка исходников, "" — UTF-8
	Significant    bool     // отбросить Whitespace
	Include        []string // glob по имени файла для TokenizeDir, по умолчанию *.java
	Cache          *TokenCache
	Tracer         trace.Tracer
	TraceParent    uint64
	Progress       ProgressSink
}

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	Timing  observ.Report
	Cached  bool // токены взяты из кэша
}

// Tokenize загружает файл и прогоняет его через лексер.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	timer := observ.NewTimer()
	span := trace.Begin(opts.Tracer, trace.ScopeFile, "tokenize", opts.TraceParent).WithExtra("path", path)
	defer span.End("")

	// Создаём FileSet и загружаем файл
	fs := source.NewFileSet()
	loadIdx := timer.Begin("load")
	fileID, err := fs.LoadWithEncoding(path, opts.Encoding)
	timer.End(loadIdx, "")
	if err != nil {
		return nil, err
	}

	res := tokenizeFile(fs, fileID, opts, span.ID(), timer)
	res.Timing = timer.Report()
	return res, nil
}

// TokenizeSource лексит текст, которого нет на диске (stdin, тесты).
func TokenizeSource(name string, content []byte, opts Options) *TokenizeResult {
	timer := observ.NewTimer()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	res := tokenizeFile(fs, fileID, opts, opts.TraceParent, timer)
	res.Timing = timer.Report()
	return res
}

// tokenizeFile лексит уже загруженный файл. Безопасна для параллельного вызова
// над разными файлами одного FileSet.
func tokenizeFile(fs *source.FileSet, fileID source.FileID, opts Options, parent uint64, timer *observ.Timer) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	res := &TokenizeResult{FileSet: fs, File: file, Bag: bag}

	lexIdx := timer.Begin("lex")
	var key Digest
	if opts.Cache != nil {
		key = CacheKey(file.Content)
		if toks, ok := lookupCache(opts.Cache, key, reporter, fileID); ok {
			res.Tokens = toks
			res.Cached = true
		}
	}
	if !res.Cached {
		res.Tokens = lexer.Tokenize(string(file.Content), lexer.Options{
			Reporter:    reporter,
			File:        fileID,
			Tracer:      opts.Tracer,
			TraceParent: parent,
		})
		if opts.Cache != nil {
			payload := &CachedTokens{
				Tokens:      diagfmt.Records(res.Tokens),
				Diagnostics: cachedDiagnostics(bag.Items()),
			}
			if err := opts.Cache.Put(key, payload); err != nil {
				diag.ReportWarning(reporter, diag.IOCacheError, source.Span{File: fileID},
					fmt.Sprintf("cannot store tokens in cache: %v", err)).Emit()
			}
		}
	}
	note := fmt.Sprintf("%d tokens", len(res.Tokens))
	if res.Cached {
		note += ", cached"
	}
	timer.End(lexIdx, note)

	if opts.Significant {
		res.Tokens = token.Significant(res.Tokens)
	}
	bag.Sort()
	return res
}

func lookupCache(cache *TokenCache, key Digest, reporter diag.Reporter, fileID source.FileID) ([]token.Token, bool) {
	var payload CachedTokens
	hit, err := cache.Get(key, &payload)
	if err == nil && hit {
		var toks []token.Token
		toks, err = diagfmt.TokensFromRecords(payload.Tokens)
		if err == nil {
			replay(reporter, fileID, payload.Diagnostics)
			return toks, true
		}
	}
	if err != nil {
		diag.ReportWarning(reporter, diag.IOCacheError, source.Span{File: fileID},
			fmt.Sprintf("ignoring unreadable cache entry %s: %v", key, err)).Emit()
	}
	return nil, false
}
