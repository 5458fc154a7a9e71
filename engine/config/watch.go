package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/hubastard/trellis/engine/core"
)

// Watcher reports changes of one layout file. It watches the containing
// directory so editors that save by renaming a temp file are seen too.
type Watcher struct {
	path    string
	fs      *fsnotify.Watcher
	changes chan struct{}
}

// Watch starts watching path. Call Run to deliver events and Close when
// done.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %q: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %q: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %q: %w", path, err)
	}
	return &Watcher{
		path:    abs,
		fs:      fw,
		changes: make(chan struct{}, 1),
	}, nil
}

// Changes receives a value after the file was written, created or renamed
// into place. Bursts of events are coalesced into one pending value.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// Path is the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Run forwards file events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			core.Logger().Warn("config: watch error", "path", w.path, "err", err)
		}
	}
}

func (w *Watcher) Close() error { return w.fs.Close() }
