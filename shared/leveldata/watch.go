package leveldata

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports level files that changed on disk. Events are delivered on a
// buffered channel; bursts beyond its capacity are dropped since a reload
// always reads the latest contents.
type Watcher struct {
	fsw    *fsnotify.Watcher
	events chan string
	done   chan struct{}
}

// Watch starts watching dir until ctx is cancelled or Close is called.
func Watch(ctx context.Context, dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("leveldata: create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("leveldata: watch %s: %w", dir, err)
	}

	w := &Watcher{
		fsw:    fsw,
		events: make(chan string, 8),
		done:   make(chan struct{}),
	}
	go w.run(ctx)
	return w, nil
}

// Events yields the paths of changed level files.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !IsLevelFile(ev.Name) {
				continue
			}
			select {
			case w.events <- filepath.Clean(ev.Name):
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn("level watcher error", "err", err)
		}
	}
}
