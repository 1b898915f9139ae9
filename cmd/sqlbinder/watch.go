package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watcher reruns a function whenever Go sources in a set of directories
// change. Bursts of events are coalesced into one run.
type watcher struct {
	dirs     []string
	suffix   string
	debounce time.Duration
	log      *slog.Logger
	run      func(context.Context) error
}

// Watch blocks until ctx is done.
func (w *watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer fw.Close()

	for _, d := range w.dirs {
		if err := fw.Add(d); err != nil {
			return fmt.Errorf("watch %s: %w", d, err)
		}
		w.log.Info("watching", "dir", d)
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.log.Debug("source changed", "file", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "err", err)
		case <-fire:
			fire = nil
			if err := w.run(ctx); err != nil {
				w.log.Error("generation failed", "err", err)
			}
		}
	}
}

// relevant reports whether ev touches a hand-written Go source file.
func (w *watcher) relevant(ev fsnotify.Event) bool {
	name := filepath.Base(ev.Name)
	switch {
	case !strings.HasSuffix(name, ".go"),
		strings.HasPrefix(name, "."),
		strings.HasSuffix(name, "_test.go"),
		strings.HasSuffix(name, w.suffix+".go"):
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
		ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}
