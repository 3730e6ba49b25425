package domains

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portside/bus"
)

func sidebarIDs(ctx SidebarContext) []string {
	reg := NewSidebarRegistry(&fakeSidebar{}, bus.New(), &fakeConfirmer{}, &fakeNotifier{})
	var ids []string
	for _, it := range reg.Items(ctx) {
		if it.Separator {
			continue
		}
		ids = append(ids, it.ID)
	}
	return ids
}

func TestSidebarEnablementByKind(t *testing.T) {
	tests := []struct {
		name string
		ctx  SidebarContext
		want []string
	}{
		{
			"profile",
			SidebarContext{Kind: SidebarProfile, ID: "p1"},
			[]string{"connect", "connect-new-tab", "edit", "duplicate", "toggle-favorite", "properties", "delete-profile"},
		},
		{
			"folder",
			SidebarContext{Kind: SidebarFolder, ID: "f1"},
			[]string{"new-profile", "new-folder", "edit-folder", "delete-folder"},
		},
		{
			"root",
			SidebarContext{Kind: SidebarRoot},
			[]string{"new-profile", "new-folder", "search"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sidebarIDs(tt.ctx))
		})
	}
}

func TestToggleFavoritePublishes(t *testing.T) {
	b := bus.New()
	reg := NewSidebarRegistry(&fakeSidebar{}, b, &fakeConfirmer{}, &fakeNotifier{})

	var got ProfileEvent
	b.Subscribe(EventToggleFavorite, func(payload any) { got = payload.(ProfileEvent) })

	ctx := SidebarContext{Kind: SidebarProfile, ID: "p1", Name: "staging"}
	require.NoError(t, reg.Execute("toggle-favorite", ctx))
	assert.Equal(t, ProfileEvent{ProfileID: "p1", Name: "staging"}, got)
}

func TestPropertiesPublishes(t *testing.T) {
	b := bus.New()
	reg := NewSidebarRegistry(&fakeSidebar{}, b, &fakeConfirmer{}, &fakeNotifier{})

	events := 0
	b.Subscribe(EventShowProperties, func(any) { events++ })

	require.NoError(t, reg.Execute("properties", SidebarContext{Kind: SidebarProfile, ID: "p1"}))
	assert.Equal(t, 1, events)
}

func TestDeleteProfileConfirmed(t *testing.T) {
	store := &fakeSidebar{}
	conf := &fakeConfirmer{choice: 0}
	note := &fakeNotifier{}
	reg := NewSidebarRegistry(store, bus.New(), conf, note)

	ctx := SidebarContext{Kind: SidebarProfile, ID: "p1", Name: "staging"}
	require.NoError(t, reg.Execute("delete-profile", ctx))
	assert.Equal(t, []string{"delete-profile"}, store.calls)
	assert.Equal(t, "p1", store.lastID)
	require.Len(t, note.infos, 1)
	assert.Contains(t, note.infos[0], "staging")
}

func TestDeleteProfileCancelled(t *testing.T) {
	store := &fakeSidebar{}
	conf := &fakeConfirmer{choice: 1}
	reg := NewSidebarRegistry(store, bus.New(), conf, &fakeNotifier{})

	require.NoError(t, reg.Execute("delete-profile", SidebarContext{Kind: SidebarProfile, ID: "p1"}))
	assert.Empty(t, store.calls)
}

func TestDeleteFolderChoices(t *testing.T) {
	tests := []struct {
		name         string
		choice       int
		deleted      bool
		moveContents bool
	}{
		{"move contents up", 0, true, true},
		{"delete everything", 1, true, false},
		{"cancel", 2, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeSidebar{}
			conf := &fakeConfirmer{choice: tt.choice}
			reg := NewSidebarRegistry(store, bus.New(), conf, &fakeNotifier{})

			ctx := SidebarContext{Kind: SidebarFolder, ID: "f1", Name: "prod"}
			require.NoError(t, reg.Execute("delete-folder", ctx))
			if !tt.deleted {
				assert.Empty(t, store.calls)
				return
			}
			assert.Equal(t, []string{"delete-folder"}, store.calls)
			assert.Equal(t, tt.moveContents, store.moveContents)
		})
	}
}

func TestNewProfileTargetsParentFolder(t *testing.T) {
	store := &fakeSidebar{}
	reg := NewSidebarRegistry(store, bus.New(), &fakeConfirmer{}, &fakeNotifier{})

	require.NoError(t, reg.Execute("new-profile", SidebarContext{Kind: SidebarFolder, ID: "f1"}))
	assert.Equal(t, "create", store.panelMode)
	assert.Equal(t, "profile", store.panelKind)
	assert.Equal(t, "f1", store.panelParent)

	// Root invocations create at the top level.
	require.NoError(t, reg.Execute("new-folder", SidebarContext{Kind: SidebarRoot}))
	assert.Equal(t, "folder", store.panelKind)
	assert.Empty(t, store.panelParent)
}

func TestDismissedConfirmationPropagates(t *testing.T) {
	store := &fakeSidebar{}
	conf := &fakeConfirmer{choice: -1}
	reg := NewSidebarRegistry(store, bus.New(), conf, &fakeNotifier{})

	err := reg.Execute("delete-profile", SidebarContext{Kind: SidebarProfile, ID: "p1"})
	require.Error(t, err)
	assert.Empty(t, store.calls)
}
