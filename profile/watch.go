package profile

import (
	"fmt"
	"path/filepath"
	"strings"

	"portside/bus"
	"portside/log"

	"github.com/fsnotify/fsnotify"
)

// ChangedEvent is the bus event published when the backing file changes on
// disk, after the store has reloaded.
const ChangedEvent = "profiles:changed"

// Watch reloads the store when its backing file is modified by another
// process and publishes ChangedEvent on b. The watch runs until stop is
// called. The directory is watched, not the file, because atomic saves
// replace the file by rename.
func (s *Store) Watch(b *bus.Bus) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !strings.EqualFold(filepath.Base(ev.Name), FileName) {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if err := s.reload(); err != nil {
					logReloadError(err)
					continue
				}
				b.Publish(ChangedEvent, s.path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.WarningLog.Printf("profile watcher error: %v", err)
			}
		}
	}()

	return func() { watcher.Close() }, nil
}
