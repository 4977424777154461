package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the burst of events an editor save produces
const debounceDelay = 200 * time.Millisecond

// watchAndRender renders once, then again after every change to one of the
// target files, until ctx is cancelled. Failed re-renders are logged and
// watching continues.
func watchAndRender(ctx context.Context, targets []string, render func() error, logger *slog.Logger) error {
	if len(targets) == 0 {
		return errors.New("--watch needs a scene file or a config file")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// watch directories so editors that save by rename are still seen
	watched := make(map[string]bool)
	for i, target := range targets {
		targets[i] = filepath.Clean(target)
		dir := filepath.Dir(targets[i])
		if watched[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		watched[dir] = true
	}

	if err := render(); err != nil {
		logger.Error("render failed", "error", err)
	}
	logger.Info("watching for changes", "files", targets)

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if isTargetEvent(event, targets) {
				debounce = time.After(debounceDelay)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watcher error", "error", err)
		case <-debounce:
			debounce = nil
			logger.Info("change detected, re-rendering")
			if err := render(); err != nil {
				logger.Error("render failed", "error", err)
			}
		}
	}
}

// isTargetEvent reports whether event writes or replaces one of targets
func isTargetEvent(event fsnotify.Event, targets []string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Clean(event.Name)
	for _, target := range targets {
		if name == target {
			return true
		}
	}
	return false
}
