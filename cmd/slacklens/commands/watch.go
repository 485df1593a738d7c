package commands

import (
	"context"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/slacklens/slacklens/internal/checks"
	"github.com/slacklens/slacklens/internal/config"
)

// watch <dump.yaml>: re-run the report whenever the analyzer rewrites the
// dump, e.g. between place-and-route iterations. The config file (when
// given) is hot-reloaded the same way.
func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dump.yaml>",
		Short: "Re-run the report whenever the analysis dump changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dumpPath := args[0]

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			var updates <-chan *config.Config
			if configPath != "" {
				var err error
				updates, err = config.Watch(ctx, configPath, func(c *config.Config) error {
					return checks.Validate(c.Checks)
				})
				if err != nil {
					return err
				}
			}

			// Initial report, then one per rewrite.
			if err := runReport(cmd.OutOrStdout(), cfg, dumpPath); err != nil {
				slog.Warn("watch: report failed", "err", err)
			}
			return watchDump(ctx, cmd.OutOrStdout(), cfg, dumpPath, updates)
		},
	}
}

// watchDump blocks until ctx is cancelled, re-running the report on every
// write or atomic-save rename of the dump file. A failed run (unreadable
// or half-written dump, firing critical check) is logged and the watch
// continues, since the next analyzer iteration produces a fresh dump.
//
// Config reloads are received on updates and applied before the next
// report; the active config is owned by this loop alone, so reloads never
// race a running report.
func watchDump(ctx context.Context, w io.Writer, current *config.Config, dumpPath string, updates <-chan *config.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dumpPath); err != nil {
		return err
	}

	slog.Info("watch: waiting for dump rewrites", "path", dumpPath)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			select {
			case updated, ok := <-updates:
				if !ok {
					updates = nil
				} else {
					current = updated
					slog.Info("watch: applying reloaded config")
				}
			default:
			}

			slog.Info("watch: dump rewritten", "path", dumpPath)
			if err := runReport(w, current, dumpPath); err != nil {
				slog.Warn("watch: report failed", "err", err)
			}

			// Re-add the file in case an atomic save replaced the inode.
			_ = watcher.Add(dumpPath)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch: watcher error", "err", err)
		}
	}
}
