package prefs

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the preferences file whenever it changes on disk and passes
// the result to fn. The parent directory is watched so editors that replace
// the file are still seen. Watch returns once the watcher is running; it
// stops when ctx is cancelled.
func Watch(ctx context.Context, path string, fn func(Prefs)) error {
	resolved, err := ResolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go func() {
		defer func() { _ = watcher.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != resolved {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				p, _ := Load(resolved)
				fn(p)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("prefs watcher: %v", err)
			}
		}
	}()
	return nil
}
