package repl

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/diced/config"
	"github.com/ardnew/diced/log"
)

// reloadMsg carries a configuration reloaded after its file changed.
type reloadMsg struct {
	cfg config.Config
	err error
}

// settle is how long the watcher waits for a burst of file events to end
// before reloading.
const settle = 100 * time.Millisecond

// watch sends a reloadMsg whenever the configuration file at path is written
// or replaced. The parent directory is watched so that editors replacing the
// file are noticed. The returned function stops watching.
func watch(
	ctx context.Context,
	path string,
	send func(tea.Msg),
	logger log.Logger,
) (stop func() error, err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	path = filepath.Clean(path)

	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()

		return nil, err
	}

	go func() {
		timer := time.NewTimer(settle)
		timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-w.Events:
				if !ok {
					return
				}

				if filepath.Clean(ev.Name) != path ||
					!ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
					continue
				}

				logger.TraceContext(ctx, "repl config event",
					slog.String("path", ev.Name),
					slog.String("op", ev.Op.String()),
				)

				timer.Reset(settle)

			case <-timer.C:
				cfg, err := config.Load(path)
				send(reloadMsg{cfg: cfg, err: err})

			case err, ok := <-w.Errors:
				if !ok {
					return
				}

				logger.WarnContext(ctx, "repl config watch", slog.Any("error", err))
			}
		}
	}()

	return w.Close, nil
}
