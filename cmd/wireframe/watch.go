package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/taigrr/wireframe/pkg/models"
)

// reloadDelay coalesces the burst of events editors emit on save.
const reloadDelay = 150 * time.Millisecond

// reload carries a freshly loaded model or the error that prevented it.
type reload struct {
	obj *models.Object
	err error
}

// watchModel reloads path whenever it is written or recreated and sends
// the result on the returned channel. Only the latest result is kept if
// the receiver falls behind. The watcher stops when ctx is done.
func watchModel(ctx context.Context, path string, log *slog.Logger) (<-chan reload, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory so editors that replace the file are seen.
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	target := filepath.Clean(path)
	out := make(chan reload, 1)
	send := func(r reload) {
		select {
		case <-out:
		default:
		}
		out <- r
	}

	go func() {
		defer w.Close()

		timer := time.NewTimer(reloadDelay)
		timer.Stop()

		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					log.Debug("model changed", "path", ev.Name, "op", ev.Op.String())
					timer.Reset(reloadDelay)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				send(reload{err: err})
			case <-timer.C:
				obj, err := loadNormalized(path)
				send(reload{obj: obj, err: err})
			}
		}
	}()

	return out, nil
}
