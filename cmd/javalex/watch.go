package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"javalex/internal/diagfmt"
	"javalex/internal/driver"
	"javalex/internal/trace"
)

// watchDebounce склеивает серию событий от одного сохранения в редакторе.
const watchDebounce = 100 * time.Millisecond

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [flags] <file.java>",
		Short: "Re-tokenize a file every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	cmd.Flags().Bool("significant", false, "drop whitespace tokens")
	cmd.Flags().String("encoding", "", "source charset (default utf-8)")
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	cleanup, err := setupInstrumentation(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	settings, _, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	root := rootFlags(cmd)
	maxDiagnostics := root.Int("max-diagnostics")
	quiet := root.Bool("quiet")
	if err := root.Err(); err != nil {
		return err
	}
	colored, err := useColor(cmd, fileOf(cmd.OutOrStdout()))
	if err != nil {
		return err
	}

	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Encoding:       settings.Encoding,
		Significant:    settings.Significant,
		Tracer:         trace.FromContext(cmd.Context()),
	}
	diagOut := diagnosticsOutput{cmd: cmd, format: settings.DiagFormat, quiet: quiet}
	render := func(res *driver.TokenizeResult) error {
		fmt.Fprintf(cmd.OutOrStdout(), "--- %s: %d tokens, %d diagnostics ---\n",
			args[0], len(res.Tokens), res.Bag.Len())
		if err := diagOut.write(res.Bag, res.FileSet); err != nil {
			return err
		}
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), res.Tokens, diagfmt.TokenOpts{Color: colored})
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return watchFile(ctx, args[0], opts, render, cmd.ErrOrStderr(), nil)
}

// watchFile токенизирует path сразу и после каждого изменения, пока не
// отменён ctx. Следит за каталогом: редакторы часто сохраняют через rename.
// ready закрывается, когда наблюдатель установлен.
func watchFile(ctx context.Context, path string, opts driver.Options, render func(*driver.TokenizeResult) error, errOut io.Writer, ready chan<- struct{}) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	var (
		lastHash [32]byte
		rendered bool
	)
	run := func() error {
		res, err := driver.Tokenize(target, opts)
		if err != nil {
			// файл мог исчезнуть между событиями; ждём следующего
			fmt.Fprintf(errOut, "javalex: %v\n", err)
			return nil
		}
		// сохранение без изменений (touch, autosave) не перерисовываем
		if rendered && res.File.Hash == lastHash {
			return nil
		}
		lastHash, rendered = res.File.Hash, true
		return render(res)
	}
	if err := run(); err != nil {
		return err
	}
	if ready != nil {
		close(ready)
	}

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				debounce.Reset(watchDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				debounce.Reset(watchDebounce)
				continue
			}
			return fmt.Errorf("watch %s: %w", path, err)
		case <-debounce.C:
			if err := run(); err != nil {
				return err
			}
		}
	}
}
