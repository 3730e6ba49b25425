package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	return s
}

func TestOpenMissingFileIsEmpty(t *testing.T) {
	s := newTestStore(t)
	assert.Empty(t, s.Profiles())
	assert.Empty(t, s.Folders())
}

func TestAddAssignsID(t *testing.T) {
	s := newTestStore(t)

	p, err := s.Add(Profile{Name: "staging", Host: "stage.example.com", Port: 22, User: "deploy"})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)

	got, ok := s.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, "staging", got.Name)
}

func TestAddKeepsExplicitID(t *testing.T) {
	s := newTestStore(t)

	p, err := s.Add(Profile{ID: "fixed", Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", p.ID)
}

func TestUpdateAndDelete(t *testing.T) {
	s := newTestStore(t)
	p, err := s.Add(Profile{Name: "old"})
	require.NoError(t, err)

	p.Name = "new"
	require.NoError(t, s.Update(p))
	got, _ := s.Get(p.ID)
	assert.Equal(t, "new", got.Name)

	require.NoError(t, s.Delete(p.ID))
	_, ok := s.Get(p.ID)
	assert.False(t, ok)

	assert.Error(t, s.Delete("missing"))
	assert.Error(t, s.Update(Profile{ID: "missing"}))
}

func TestSavePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	s, err := Open(path)
	require.NoError(t, err)
	p, err := s.Add(Profile{Name: "prod", Host: "prod.example.com"})
	require.NoError(t, err)

	reopened, err := Open(path)
	require.NoError(t, err)
	got, ok := reopened.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, "prod.example.com", got.Host)

	// The atomic save leaves no temporary file behind.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestDuplicate(t *testing.T) {
	s := newTestStore(t)
	orig, err := s.Add(Profile{Name: "staging", Host: "h", Port: 2222, User: "u", ParentID: "f1"})
	require.NoError(t, err)

	dup, err := s.Duplicate(orig.ID)
	require.NoError(t, err)
	assert.NotEqual(t, orig.ID, dup.ID)
	assert.Equal(t, "staging copy", dup.Name)
	assert.Equal(t, orig.Host, dup.Host)
	assert.Equal(t, orig.ParentID, dup.ParentID)

	assert.Len(t, s.Profiles(), 2)

	_, err = s.Duplicate("missing")
	assert.Error(t, err)
}

func TestDeleteFolderMovesContentsUp(t *testing.T) {
	s := newTestStore(t)
	parent, err := s.AddFolder(Folder{Name: "prod"})
	require.NoError(t, err)
	child, err := s.AddFolder(Folder{Name: "eu", ParentID: parent.ID})
	require.NoError(t, err)
	p, err := s.Add(Profile{Name: "web", ParentID: child.ID})
	require.NoError(t, err)

	require.NoError(t, s.DeleteFolder(child.ID, true))

	_, ok := s.GetFolder(child.ID)
	assert.False(t, ok)
	got, _ := s.Get(p.ID)
	assert.Equal(t, parent.ID, got.ParentID)
}

func TestDeleteFolderRecursive(t *testing.T) {
	s := newTestStore(t)
	top, err := s.AddFolder(Folder{Name: "prod"})
	require.NoError(t, err)
	nested, err := s.AddFolder(Folder{Name: "eu", ParentID: top.ID})
	require.NoError(t, err)
	_, err = s.Add(Profile{Name: "direct", ParentID: top.ID})
	require.NoError(t, err)
	_, err = s.Add(Profile{Name: "deep", ParentID: nested.ID})
	require.NoError(t, err)
	outside, err := s.Add(Profile{Name: "outside"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteFolder(top.ID, false))

	assert.Empty(t, s.Folders())
	profiles := s.Profiles()
	require.Len(t, profiles, 1)
	assert.Equal(t, outside.ID, profiles[0].ID)
}

func TestReloadPicksUpExternalEdit(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	s, err := Open(path)
	require.NoError(t, err)

	other, err := Open(path)
	require.NoError(t, err)
	p, err := other.Add(Profile{Name: "external"})
	require.NoError(t, err)

	_, ok := s.Get(p.ID)
	require.False(t, ok)
	require.NoError(t, s.Reload())
	_, ok = s.Get(p.ID)
	assert.True(t, ok)
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Open(path)
	assert.Error(t, err)
}
