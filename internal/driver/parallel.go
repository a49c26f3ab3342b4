package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"javalex/internal/diag"
	"javalex/internal/observ"
	"javalex/internal/source"
	"javalex/internal/token"
	"javalex/internal/trace"
)

// DefaultInclude lists the file name globs used when Options.Include is empty.
var DefaultInclude = []string{"*.java"}

// TokenizeDirResult is the outcome for one file of a directory run.
type TokenizeDirResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
	Timing observ.Report
	Cached bool
}

// ListFiles walks dir and returns, sorted, the files whose base name
// matches one of include.
func ListFiles(dir string, include []string) ([]string, error) {
	if len(include) == 0 {
		include = DefaultInclude
	}
	for _, pattern := range include {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("bad include pattern %q: %w", pattern, err)
		}
	}
	matches := func(name string) bool {
		return slices.ContainsFunc(include, func(p string) bool {
			ok, _ := filepath.Match(p, name)
			return ok
		})
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() && matches(d.Name()) {
			files = append(files, path)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// TokenizeDir tokenizes every matching file under dir; see TokenizeFiles.
func TokenizeDir(ctx context.Context, dir string, opts Options, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListFiles(dir, opts.Include)
	if err != nil {
		return nil, nil, err
	}
	return TokenizeFiles(ctx, files, opts, jobs)
}

// loadedFile — итог предзагрузки одного пути.
type loadedFile struct {
	id   source.FileID
	err  error
	took time.Duration
}

// TokenizeFiles lexes files with up to jobs workers (GOMAXPROCS when jobs
// is 0). Results keep the order of files. A file that cannot be read gets an
// IO4001 diagnostic in its own Bag; only cancellation fails the call.
func TokenizeFiles(ctx context.Context, files []string, opts Options, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	span := trace.Begin(opts.Tracer, trace.ScopeDriver, "tokenize-dir", opts.TraceParent).
		WithExtra("files", fmt.Sprint(len(files)))
	defer span.End("")

	for _, path := range files {
		report(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}
	// FileSet не потокобезопасен на запись: всё грузим до старта воркеров.
	loaded := make([]loadedFile, len(files))
	for i, path := range files {
		started := time.Now()
		id, err := fileSet.LoadWithEncoding(path, opts.Encoding)
		took := time.Since(started)
		if err != nil {
			// пустой виртуальный файл даёт диагностике путь и позицию 1:1
			id = fileSet.AddVirtual(path, nil)
			report(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err, Elapsed: took})
		} else {
			report(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusDone, Elapsed: took})
		}
		loaded[i] = loadedFile{id: id, err: err, took: took}
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]TokenizeDirResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = lexLoaded(fileSet, path, loaded[i], opts, span.ID())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	report(opts.Progress, Event{Stage: StageEmit, Status: StatusDone})
	return fileSet, results, nil
}

// lexLoaded runs on a worker; it only reads fileSet.
func lexLoaded(fileSet *source.FileSet, path string, lf loadedFile, opts Options, parent uint64) TokenizeDirResult {
	if lf.err != nil {
		bag := diag.NewBag(opts.MaxDiagnostics)
		bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: lf.id}, "failed to load file: "+lf.err.Error()))
		return TokenizeDirResult{Path: path, FileID: lf.id, Bag: bag}
	}

	report(opts.Progress, Event{File: path, Stage: StageLex, Status: StatusWorking})
	started := time.Now()
	timer := observ.NewTimer()
	timer.Record("load", lf.took, "")
	res := tokenizeFile(fileSet, lf.id, opts, parent, timer)

	status := StatusDone
	if res.Bag.HasErrors() {
		status = StatusError
	}
	report(opts.Progress, Event{
		File:    path,
		Stage:   StageLex,
		Status:  status,
		Elapsed: time.Since(started),
		Tokens:  len(res.Tokens),
		Cached:  res.Cached,
	})
	return TokenizeDirResult{
		Path:   path,
		FileID: lf.id,
		Tokens: res.Tokens,
		Bag:    res.Bag,
		Timing: timer.Report(),
		Cached: res.Cached,
	}
}
