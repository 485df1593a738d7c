package config

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watch monitors the config file at path and delivers each successfully
// reloaded Config on the returned channel. validate, when non-nil, is run
// on every reload before delivery; typically it checks the threshold rules
// against the known summary fields. A reload that fails to parse or fails
// validation is logged and not delivered, so consumers only ever see
// configs they can act on.
//
// The channel carries the latest config only: an update the consumer has
// not taken yet is replaced, not queued, so a slow report run never works
// through a backlog of stale configs. The channel is closed when ctx is
// cancelled or the watcher shuts down.
func Watch(ctx context.Context, path string, validate func(*Config) error) (<-chan *Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}

	updates := make(chan *Config, 1)
	go func() {
		defer close(updates)
		defer watcher.Close()

		slog.Info("config: watching for changes", "path", path)
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				// Editors often write via rename (atomic save), so catch
				// fsnotify.Create as well as fsnotify.Write.
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				cfg, err := Load(path)
				if err != nil {
					slog.Error("config: reload failed, keeping previous config",
						"path", path, "err", err)
					continue
				}
				if validate != nil {
					if err := validate(cfg); err != nil {
						slog.Error("config: reload rejected, keeping previous config",
							"path", path, "err", err)
						continue
					}
				}

				slog.Info("config: reloaded", "path", path)
				publish(updates, cfg)

				// Re-add the file in case an atomic save replaced the inode.
				_ = watcher.Add(path)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("config: watcher error", "err", err)
			}
		}
	}()
	return updates, nil
}

// publish puts cfg on the channel, evicting an undelivered update first.
// Safe because Watch is the only sender.
func publish(updates chan *Config, cfg *Config) {
	for {
		select {
		case updates <- cfg:
			return
		default:
		}
		select {
		case <-updates:
		default:
		}
	}
}
