// Package remote backs the file browser pane. Local is the default
// implementation working against the local filesystem; an SFTP-backed one
// would satisfy the same interface.
package remote

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"portside/bus"
	"portside/domains"
	"portside/log"
)

// Bus events published for operations that need UI the browser doesn't own
// (dialogs, pickers). The app layer subscribes and opens the surface.
const (
	EventPreview       = "file:preview"
	EventRename        = "file:rename"
	EventProperties    = "file:properties"
	EventUploadRequest = "file:upload-request"
	EventRefreshed     = "file:refreshed"
)

// Local is a file browser over the local filesystem.
type Local struct {
	bus      *bus.Bus
	notifier domains.Notifier

	mu      sync.Mutex
	path    string
	entries []domains.FileEntry
}

// NewLocal opens a browser rooted at startPath.
func NewLocal(startPath string, b *bus.Bus, notifier domains.Notifier) (*Local, error) {
	l := &Local{bus: b, notifier: notifier, path: startPath}
	if err := l.Navigate(startPath); err != nil {
		return nil, err
	}
	return l, nil
}

// CurrentPath returns the directory being browsed.
func (l *Local) CurrentPath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.path
}

// Entries returns the current directory listing, directories first.
func (l *Local) Entries() []domains.FileEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domains.FileEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Navigate switches the browser to path and lists it.
func (l *Local) Navigate(path string) error {
	entries, err := list(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	l.mu.Lock()
	l.path = path
	l.entries = entries
	l.mu.Unlock()
	return nil
}

// Refresh re-lists the current directory and announces it on the bus.
func (l *Local) Refresh() error {
	l.mu.Lock()
	path := l.path
	l.mu.Unlock()

	if err := l.Navigate(path); err != nil {
		return err
	}
	if l.bus != nil {
		l.bus.Publish(EventRefreshed, path)
	}
	return nil
}

func list(path string) ([]domains.FileEntry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	entries := make([]domains.FileEntry, 0, len(dirents))
	for _, d := range dirents {
		info, err := d.Info()
		if err != nil {
			log.WarningLog.Printf("failed to stat %s: %v", d.Name(), err)
			continue
		}
		entries = append(entries, domains.FileEntry{
			Name: d.Name(),
			Path: filepath.Join(path, d.Name()),
			Dir:  d.IsDir(),
			Size: info.Size(),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Dir != entries[j].Dir {
			return entries[i].Dir
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// Download copies entries into ~/Downloads.
func (l *Local) Download(entries []domains.FileEntry) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	dest := filepath.Join(homeDir, "Downloads")
	if err := os.MkdirAll(dest, 0755); err != nil {
		return fmt.Errorf("failed to create downloads directory: %w", err)
	}

	for _, e := range entries {
		if e.Dir {
			return fmt.Errorf("cannot download directory %s", e.Name)
		}
		if err := copyFile(e.Path, filepath.Join(dest, e.Name)); err != nil {
			return fmt.Errorf("failed to download %s: %w", e.Name, err)
		}
	}
	if l.notifier != nil {
		l.notifier.Info(fmt.Sprintf("Downloaded %d file(s) to %s", len(entries), dest))
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// Upload asks the app layer to run its file picker targeting dir.
func (l *Local) Upload(dir string) error {
	if l.bus != nil {
		l.bus.Publish(EventUploadRequest, dir)
	}
	return nil
}

// Delete removes entries; directories are removed recursively.
func (l *Local) Delete(entries []domains.FileEntry) error {
	for _, e := range entries {
		if err := os.RemoveAll(e.Path); err != nil {
			return fmt.Errorf("failed to delete %s: %w", e.Name, err)
		}
	}
	return l.Refresh()
}

// NewFolder creates "New Folder" (or a numbered variant) under dir.
func (l *Local) NewFolder(dir string) error {
	name := "New Folder"
	path := filepath.Join(dir, name)
	for i := 2; ; i++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		path = filepath.Join(dir, fmt.Sprintf("%s %d", name, i))
	}
	if err := os.Mkdir(path, 0755); err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}
	return l.Refresh()
}

// Rename moves an entry to a new name inside its directory.
func (l *Local) Rename(entry domains.FileEntry, newName string) error {
	dst := filepath.Join(filepath.Dir(entry.Path), newName)
	if err := os.Rename(entry.Path, dst); err != nil {
		return fmt.Errorf("failed to rename %s: %w", entry.Name, err)
	}
	return l.Refresh()
}

// Dialog hand-offs. The browser owns no modal UI; it announces intent on
// the bus and the app opens the surface.

func (l *Local) ShowFilePreview(entry domains.FileEntry) error {
	if l.bus != nil {
		l.bus.Publish(EventPreview, entry)
	}
	return nil
}

func (l *Local) ShowRenameDialog(entry domains.FileEntry) error {
	if l.bus != nil {
		l.bus.Publish(EventRename, entry)
	}
	return nil
}

func (l *Local) ShowFileProperties(entry domains.FileEntry) error {
	info, err := os.Stat(entry.Path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", entry.Name, err)
	}
	if l.bus != nil {
		l.bus.Publish(EventProperties, fmt.Sprintf("%s  %d bytes  %s",
			entry.Path, info.Size(), info.Mode()))
	}
	return nil
}

func (l *Local) ShowDirectoryProperties(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if l.bus != nil {
		l.bus.Publish(EventProperties, fmt.Sprintf("%s  %d items", path, len(entries)))
	}
	return nil
}
