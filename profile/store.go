// Package profile stores the sidebar's connection-profile tree in a JSON
// file and keeps it in sync across processes with a filesystem watch.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"portside/log"

	"github.com/google/uuid"
)

const FileName = "profiles.json"

// Profile is one connection entry in the tree.
type Profile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	ParentID string `json:"parent_id,omitempty"`
}

// Folder groups profiles and other folders. An empty ParentID means the
// folder sits at the root.
type Folder struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
}

type tree struct {
	Profiles []Profile `json:"profiles"`
	Folders  []Folder  `json:"folders"`
}

// Store is the profile tree backed by one JSON file. All methods are safe
// for concurrent use.
type Store struct {
	path string

	mu   sync.Mutex
	data tree
}

// Open loads the tree at path, creating an empty file when none exists.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// DefaultPath returns ~/.portside/profiles.json.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".portside", FileName), nil
}

// Path returns the backing file's path.
func (s *Store) Path() string { return s.path }

func (s *Store) reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read profiles file: %w", err)
	}

	var t tree
	if err := json.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("failed to parse profiles file: %w", err)
	}

	s.mu.Lock()
	s.data = t
	s.mu.Unlock()
	return nil
}

// Reload re-reads the backing file, replacing in-memory state.
func (s *Store) Reload() error { return s.reload() }

// save writes the tree atomically. Callers must hold s.mu.
func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create profiles directory: %w", err)
	}
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary profiles file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to atomically update profiles file: %w", err)
	}
	return nil
}

// Get returns the profile with the given id.
func (s *Store) Get(id string) (Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.data.Profiles {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// GetFolder returns the folder with the given id.
func (s *Store) GetFolder(id string) (Folder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.data.Folders {
		if f.ID == id {
			return f, true
		}
	}
	return Folder{}, false
}

// Profiles returns all profiles in storage order.
func (s *Store) Profiles() []Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Profile, len(s.data.Profiles))
	copy(out, s.data.Profiles)
	return out
}

// Folders returns all folders in storage order.
func (s *Store) Folders() []Folder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Folder, len(s.data.Folders))
	copy(out, s.data.Folders)
	return out
}

// Add inserts a profile, assigning a fresh id when none is set.
func (s *Store) Add(p Profile) (Profile, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Profiles = append(s.data.Profiles, p)
	return p, s.save()
}

// AddFolder inserts a folder, assigning a fresh id when none is set.
func (s *Store) AddFolder(f Folder) (Folder, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Folders = append(s.data.Folders, f)
	return f, s.save()
}

// Update replaces the profile with p's id.
func (s *Store) Update(p Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Profiles {
		if s.data.Profiles[i].ID == p.ID {
			s.data.Profiles[i] = p
			return s.save()
		}
	}
	return fmt.Errorf("profile %q not found", p.ID)
}

// UpdateFolder replaces the folder with f's id.
func (s *Store) UpdateFolder(f Folder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Folders {
		if s.data.Folders[i].ID == f.ID {
			s.data.Folders[i] = f
			return s.save()
		}
	}
	return fmt.Errorf("folder %q not found", f.ID)
}

// Duplicate creates a new profile with the source's fields, a fresh id, and
// a " copy" name suffix, placed next to the source.
func (s *Store) Duplicate(id string) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.data.Profiles {
		if p.ID == id {
			dup := p
			dup.ID = uuid.NewString()
			dup.Name = p.Name + " copy"
			s.data.Profiles = append(s.data.Profiles, dup)
			return dup, s.save()
		}
	}
	return Profile{}, fmt.Errorf("profile %q not found", id)
}

// Delete removes a profile.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.data.Profiles {
		if p.ID == id {
			s.data.Profiles = append(s.data.Profiles[:i], s.data.Profiles[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("profile %q not found", id)
}

// DeleteFolder removes a folder. With moveContents, children are reparented
// to the folder's parent; otherwise they are removed recursively.
func (s *Store) DeleteFolder(id string, moveContents bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var target *Folder
	idx := -1
	for i := range s.data.Folders {
		if s.data.Folders[i].ID == id {
			target = &s.data.Folders[i]
			idx = i
			break
		}
	}
	if target == nil {
		return fmt.Errorf("folder %q not found", id)
	}

	if moveContents {
		for i := range s.data.Profiles {
			if s.data.Profiles[i].ParentID == id {
				s.data.Profiles[i].ParentID = target.ParentID
			}
		}
		for i := range s.data.Folders {
			if s.data.Folders[i].ParentID == id {
				s.data.Folders[i].ParentID = target.ParentID
			}
		}
	} else {
		s.removeSubtree(id)
	}

	// Recompute the index; removeSubtree may have shifted it.
	idx = -1
	for i := range s.data.Folders {
		if s.data.Folders[i].ID == id {
			idx = i
			break
		}
	}
	if idx >= 0 {
		s.data.Folders = append(s.data.Folders[:idx], s.data.Folders[idx+1:]...)
	}
	return s.save()
}

// removeSubtree deletes every profile and folder under the folder id.
// Callers must hold s.mu.
func (s *Store) removeSubtree(id string) {
	kept := s.data.Profiles[:0]
	for _, p := range s.data.Profiles {
		if p.ParentID != id {
			kept = append(kept, p)
		}
	}
	s.data.Profiles = kept

	var children []string
	keptFolders := s.data.Folders[:0]
	for _, f := range s.data.Folders {
		if f.ParentID == id {
			children = append(children, f.ID)
			continue
		}
		keptFolders = append(keptFolders, f)
	}
	s.data.Folders = keptFolders

	for _, child := range children {
		s.removeSubtree(child)
	}
}

// logReloadError is shared by the watcher paths.
func logReloadError(err error) {
	log.WarningLog.Printf("profile store reload failed: %v", err)
}
