package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"portside/log"

	"github.com/gofrs/flock"
)

const StateFileName = "state.json"

// FavoriteStorage handles favorite-profile persistence
type FavoriteStorage interface {
	// IsFavorite reports whether the profile id is marked as a favorite
	IsFavorite(profileID string) bool
	// ToggleFavorite flips the favorite mark and reports the new value
	ToggleFavorite(profileID string) (bool, error)
	// Favorites returns the favorite profile ids, sorted
	Favorites() []string
}

// AppState handles application-level UI state
type AppState interface {
	// GetLastActiveTab returns the id of the tab active when the app closed
	GetLastActiveTab() string
	// SetLastActiveTab persists the active tab id
	SetLastActiveTab(tabID string) error
}

// StateManager combines favorite storage and app state management
type StateManager interface {
	FavoriteStorage
	AppState

	// RefreshState reloads state from disk to detect changes made by other processes
	RefreshState() error

	// Close releases any resources held by the state manager
	Close() error
}

// State represents the application state that persists between sessions
type State struct {
	// FavoriteProfiles maps profile ids to their favorite mark
	FavoriteProfiles map[string]bool `json:"favorite_profiles"`
	// LastActiveTab is the id of the tab active when the app closed
	LastActiveTab string `json:"last_active_tab"`
	// LastBrowsePath is the file browser's last directory
	LastBrowsePath string `json:"last_browse_path"`

	// Lock file for coordinating state access across processes
	lockFile    *flock.Flock  `json:"-"`
	lockTimeout time.Duration `json:"-"`
}

const (
	// DefaultLockTimeout is the default timeout for acquiring locks
	DefaultLockTimeout = 5 * time.Second
	// LockFileName is the name of the lock file
	LockFileName = "state.lock"
)

// DefaultState returns the default state
func DefaultState() *State {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		// Return a minimal state without locking if we can't get the config dir
		return &State{FavoriteProfiles: make(map[string]bool)}
	}

	lockPath := filepath.Join(configDir, LockFileName)
	return &State{
		FavoriteProfiles: make(map[string]bool),
		lockFile:         flock.New(lockPath),
		lockTimeout:      DefaultLockTimeout,
	}
}

// LoadState loads the state from disk with locking. If it cannot be done, we
// return the default state.
func LoadState() *State {
	state := DefaultState()
	if err := state.loadFromDisk(); err != nil {
		log.WarningLog.Printf("failed to load state from disk: %v", err)
	}
	return state
}

// loadFromDisk loads state from disk with a shared read lock
func (s *State) loadFromDisk() error {
	if s.lockFile == nil {
		log.WarningLog.Printf("lock file not initialized, loading state without locking")
		return s.loadFromDiskWithoutLocking()
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.lockTimeout)
	defer cancel()

	locked, err := s.lockFile.TryRLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to acquire read lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("could not acquire read lock within timeout")
	}
	defer s.lockFile.Unlock()

	return s.loadFromDiskWithoutLocking()
}

func (s *State) loadFromDiskWithoutLocking() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	statePath := filepath.Join(configDir, StateFileName)
	data, err := os.ReadFile(statePath)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist yet - keep the default state
			return nil
		}
		return fmt.Errorf("failed to read state file: %w", err)
	}

	var newState State
	if err := json.Unmarshal(data, &newState); err != nil {
		return fmt.Errorf("failed to parse state file: %w", err)
	}

	// Update our fields but keep the lock file and timeout
	s.FavoriteProfiles = newState.FavoriteProfiles
	if s.FavoriteProfiles == nil {
		s.FavoriteProfiles = make(map[string]bool)
	}
	s.LastActiveTab = newState.LastActiveTab
	s.LastBrowsePath = newState.LastBrowsePath
	return nil
}

// SaveState saves the state to disk with locking
func SaveState(state *State) error {
	// Merge favorites from disk first so we don't overwrite changes made by
	// other processes
	if err := state.mergeWithExistingState(); err != nil {
		log.WarningLog.Printf("failed to merge with existing state: %v", err)
		// Continue with save anyway
	}
	return state.saveToDisk()
}

// mergeWithExistingState unions favorites recorded on disk into the current
// state. A favorite added by another process survives; one explicitly
// removed here stays removed because the map stores false, not absence.
func (s *State) mergeWithExistingState() error {
	diskState := DefaultState()
	if err := diskState.loadFromDisk(); err != nil {
		return fmt.Errorf("failed to load existing state for merging: %w", err)
	}

	for id, fav := range diskState.FavoriteProfiles {
		if _, exists := s.FavoriteProfiles[id]; !exists {
			s.FavoriteProfiles[id] = fav
		}
	}
	return nil
}

// saveToDisk saves state to disk with an exclusive write lock
func (s *State) saveToDisk() error {
	if s.lockFile == nil {
		log.WarningLog.Printf("lock file not initialized, saving state without locking")
		return s.saveToDiskWithoutLocking()
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.lockTimeout)
	defer cancel()

	locked, err := s.lockFile.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("could not acquire write lock within timeout")
	}
	defer s.lockFile.Unlock()

	return s.saveToDiskWithoutLocking()
}

func (s *State) saveToDiskWithoutLocking() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	statePath := filepath.Join(configDir, StateFileName)
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	// Write to a temporary file first to ensure atomicity
	tmpPath := statePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary state file: %w", err)
	}
	if err := os.Rename(tmpPath, statePath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to atomically update state file: %w", err)
	}
	return nil
}

// FavoriteStorage interface implementation

// IsFavorite reports whether the profile id is marked as a favorite
func (s *State) IsFavorite(profileID string) bool {
	return s.FavoriteProfiles[profileID]
}

// ToggleFavorite flips the favorite mark and persists the state
func (s *State) ToggleFavorite(profileID string) (bool, error) {
	if s.FavoriteProfiles == nil {
		s.FavoriteProfiles = make(map[string]bool)
	}
	s.FavoriteProfiles[profileID] = !s.FavoriteProfiles[profileID]
	return s.FavoriteProfiles[profileID], SaveState(s)
}

// Favorites returns the favorite profile ids, sorted
func (s *State) Favorites() []string {
	ids := make([]string, 0, len(s.FavoriteProfiles))
	for id, fav := range s.FavoriteProfiles {
		if fav {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// AppState interface implementation

// GetLastActiveTab returns the id of the tab active when the app closed
func (s *State) GetLastActiveTab() string {
	return s.LastActiveTab
}

// SetLastActiveTab persists the active tab id
func (s *State) SetLastActiveTab(tabID string) error {
	s.LastActiveTab = tabID
	return SaveState(s)
}

// SetLastBrowsePath persists the file browser's directory
func (s *State) SetLastBrowsePath(path string) error {
	s.LastBrowsePath = path
	return SaveState(s)
}

// RefreshState reloads state from disk with locking
func (s *State) RefreshState() error {
	return s.loadFromDisk()
}

// Close releases any locks held by this state
func (s *State) Close() error {
	if s.lockFile != nil {
		return s.lockFile.Unlock()
	}
	return nil
}
