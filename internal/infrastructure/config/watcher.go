package config

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file when it changes on disk.
// It never blocks: Poll drains pending file events from the caller's goroutine.
type Watcher struct {
	fsw    *fsnotify.Watcher
	path   string
	logger *log.Logger
}

// NewWatcher watches the directory holding path so that editors replacing the
// file (rename + create) are still noticed.
func NewWatcher(path string, logger *log.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{fsw: fsw, path: abs, logger: logger}, nil
}

// Poll drains pending events and returns the newest valid config, if any.
// Invalid edits are logged and skipped, keeping the running config.
func (w *Watcher) Poll() (*GameConfig, bool) {
	var latest *GameConfig
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return latest, latest != nil
			}
			if filepath.Clean(ev.Name) != w.path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			cfg, err := LoadFile(w.path)
			if err != nil {
				w.logger.Warn("config reload rejected", "path", w.path, "err", err)
				continue
			}
			w.logger.Info("config reloaded", "path", w.path)
			latest = cfg
		case err, ok := <-w.fsw.Errors:
			if ok {
				w.logger.Warn("config watcher error", "err", err)
			}
		default:
			return latest, latest != nil
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
