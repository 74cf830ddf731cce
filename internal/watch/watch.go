// Package watch re-runs the batch whenever the cut list file changes.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultDebounce is the delay after the last file event before a re-run.
// Editors often emit several events per save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher re-runs a callback when one file changes. The parent directory
// is watched rather than the file itself so atomic save-and-rename
// patterns are picked up.
type Watcher struct {
	Path     string
	Debounce time.Duration
	Log      zerolog.Logger
}

// Run blocks until ctx is canceled, invoking rerun (debounced) after each
// change to the watched file. Errors from rerun are logged and do not
// stop watching.
func (w *Watcher) Run(ctx context.Context, rerun func(context.Context) error) error {
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	dir := filepath.Dir(w.Path)
	if err := fw.Add(dir); err != nil {
		return err
	}
	base := filepath.Base(w.Path)
	w.Log.Info().Str("path", w.Path).Msg("watching cut list for changes")

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case err, ok := <-fw.Errors:
				if !ok {
					return nil
				}
				w.Log.Warn().Err(err).Msg("watch error")
			}
		}
	})

	g.Go(func() error {
		timer := time.NewTimer(debounce)
		if !timer.Stop() {
			<-timer.C
		}
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-fw.Events:
				if !ok {
					return nil
				}
				if filepath.Base(ev.Name) != base {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				timer.Reset(debounce)
			case <-timer.C:
				w.Log.Info().Str("path", w.Path).Msg("cut list changed, re-running")
				if err := rerun(ctx); err != nil {
					w.Log.Error().Err(err).Msg("re-run failed")
				}
			}
		}
	})

	return g.Wait()
}
