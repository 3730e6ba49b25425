package domains

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func terminalItemIDs(ctx TerminalContext) []string {
	reg := NewTerminalRegistry(&fakeTerminal{}, &fakeClip{}, &fakeNotifier{})
	var ids []string
	for _, it := range reg.Items(ctx) {
		if it.Separator {
			continue
		}
		ids = append(ids, it.ID)
	}
	return ids
}

func TestTerminalEnablement(t *testing.T) {
	tests := []struct {
		name string
		ctx  TerminalContext
		want []string
	}{
		{
			"selection and clipboard",
			TerminalContext{Selection: "x", ClipboardHasText: true},
			[]string{"copy", "paste", "clear", "select-all", "restart-shell"},
		},
		{
			"no selection",
			TerminalContext{ClipboardHasText: true},
			[]string{"paste", "clear", "select-all", "restart-shell"},
		},
		{
			"empty clipboard",
			TerminalContext{Selection: "x"},
			[]string{"copy", "clear", "select-all", "restart-shell"},
		},
		{
			"neither",
			TerminalContext{},
			[]string{"clear", "select-all", "restart-shell"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, terminalItemIDs(tt.ctx))
		})
	}
}

func TestPasteReadsClipboardIntoShell(t *testing.T) {
	host := &fakeTerminal{}
	clip := &fakeClip{text: "ls -la\n"}
	reg := NewTerminalRegistry(host, clip, &fakeNotifier{})

	require.NoError(t, reg.Execute("paste", TerminalContext{ClipboardHasText: true}))
	assert.Equal(t, "ls -la\n", host.pasted)
}

func TestCopyWritesSelection(t *testing.T) {
	clip := &fakeClip{}
	reg := NewTerminalRegistry(&fakeTerminal{}, clip, &fakeNotifier{})

	require.NoError(t, reg.Execute("copy", TerminalContext{Selection: "output line"}))
	assert.Equal(t, "output line", clip.written)
}

func TestRestartShellNotifies(t *testing.T) {
	host := &fakeTerminal{}
	note := &fakeNotifier{}
	reg := NewTerminalRegistry(host, &fakeClip{}, note)

	require.NoError(t, reg.Execute("restart-shell", TerminalContext{}))
	assert.Equal(t, []string{"restart-shell"}, host.calls)
	assert.Equal(t, []string{"Shell restarted"}, note.infos)
}
