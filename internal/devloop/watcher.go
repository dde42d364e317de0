// Package devloop keeps a generated theme in sync with its token files
// during local development.
package devloop

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/yacobolo/themegen/internal/themegen"
)

// DefaultDebounce groups bursts of editor writes into one trigger.
const DefaultDebounce = 50 * time.Millisecond

// Options configures a Watcher.
type Options struct {
	TokensDir  string
	OutputPath string
	RootSize   float64
	Glob       string        // Relative to TokensDir, e.g. "**/*.json"
	IgnoreFile string        // Optional gitignore-style file
	Debounce   time.Duration // 0 triggers immediately

	// OnResult is called after every generation run.
	OnResult func(*themegen.WriteResult, error)
}

// Watcher regenerates the theme whenever token files change.
//
// Generation failures are logged and the previous theme file is left as is,
// so a dev server keeps serving the last good theme.
type Watcher struct {
	opts   Options
	filter *EventFilter
	runner *Runner
	logger *log.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a watcher. Call Run to start it.
func New(opts Options, logger *log.Logger) (*Watcher, error) {
	filter, err := NewEventFilter(opts.TokensDir, opts.OutputPath, opts.Glob, opts.IgnoreFile)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		opts:   opts,
		filter: filter,
		logger: logger,
	}
	w.runner = NewRunner(w.regenerate)
	return w, nil
}

// Run generates the theme once, then watches the tokens directory until ctx
// is done. An in-flight run is allowed to finish before Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fsw.Close()

	if err := w.addDirs(fsw); err != nil {
		return err
	}

	if files, err := w.filter.TokenFiles(); err == nil {
		w.logger.Info("watching design tokens", "dir", w.opts.TokensDir, "files", len(files))
	}

	w.runner.Trigger()

	defer func() {
		w.stopTimer()
		w.runner.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(fsw, event)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("file watcher error", "err", err)
		}
	}
}

// addDirs watches the tokens directory and every directory below it.
func (w *Watcher) addDirs(fsw *fsnotify.Watcher) error {
	return filepath.WalkDir(w.opts.TokensDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if err := fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) handleEvent(fsw *fsnotify.Watcher, event fsnotify.Event) {
	// New subdirectories are watched too
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := fsw.Add(event.Name); err != nil {
				w.logger.Warn("failed to watch directory", "path", event.Name, "err", err)
			}
			return
		}
	}

	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	if !w.filter.Relevant(event.Name) {
		return
	}

	w.logger.Debug("token file event", "op", event.Op.String(), "file", event.Name)
	w.schedule()
}

// schedule triggers a run after the debounce window. Further events inside
// the window restart it.
func (w *Watcher) schedule() {
	if w.opts.Debounce <= 0 {
		w.runner.Trigger()
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.opts.Debounce, func() {
		w.runner.Trigger()
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

// regenerate is the Runner task: one full generation run.
func (w *Watcher) regenerate() {
	result, err := themegen.WriteThemeToFile(themegen.WriteOptions{
		OutputPath: w.opts.OutputPath,
		TokensDir:  w.opts.TokensDir,
		RootSize:   w.opts.RootSize,
	})

	switch {
	case err != nil:
		w.logger.Error(themegen.FormatFailure(err))
	case result.Written:
		w.logger.Info("theme regenerated from tokens", "output", result.OutputPath)
	default:
		w.logger.Debug("theme unchanged", "output", result.OutputPath)
	}

	if w.opts.OnResult != nil {
		w.opts.OnResult(result, err)
	}
}
