package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch calls rebuild whenever path is written or recreated until ctx is
// done. Failing rebuilds are logged and do not stop watching.
func watch(ctx context.Context, path string, rebuild func() error) error {
	name, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed creating file watcher: %w", err)
	}
	defer watcher.Close()

	// Editors replace files on save, so watch the directory.
	if err := watcher.Add(filepath.Dir(name)); err != nil {
		return fmt.Errorf("failed watching %s: %w", path, err)
	}
	slog.Info("graphplot: watching", "file", name)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Name != name || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			slog.Debug("graphplot: input changed", "file", ev.Name, "op", ev.Op)
			if err := rebuild(); err != nil {
				slog.Error("graphplot: rebuild failed", "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("graphplot: watch error", "err", err)
		}
	}
}
