// Package filewatch runs a callback whenever a single file is written.
package filewatch

import (
	"context"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the parent directory of a file so that editors which
// replace the file on save are still picked up.
type Watcher struct {
	path     string
	name     string
	onChange func(path string)
	watcher  *fsnotify.Watcher
	wg       sync.WaitGroup
}

func New(path string, onChange func(path string)) *Watcher {
	return &Watcher{
		path:     path,
		name:     filepath.Base(path),
		onChange: onChange,
	}
}

func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return err
	}
	w.watcher = watcher

	w.wg.Add(1)
	go w.loop(ctx)

	log.Printf("Watch: watching %s for changes", w.path)
	return nil
}

// Stop closes the underlying watcher and waits for the loop to exit.
func (w *Watcher) Stop() {
	if w.watcher != nil {
		w.watcher.Close()
	}
	w.wg.Wait()
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != w.name {
				continue
			}

			// Only react to Write and Create events (ignore Chmod, Remove, etc.)
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				log.Printf("Watch: file change detected: %s", event.Name)
				w.onChange(w.path)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watch: watcher error: %v", err)

		case <-ctx.Done():
			return
		}
	}
}
