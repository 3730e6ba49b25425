package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cmdItem(id string) Item { return Item{ID: id, Label: id} }
func sep() Item              { return Item{Separator: true} }

func TestNewCollapsesSeparators(t *testing.T) {
	tests := []struct {
		name string
		in   []Item
		want []string
	}{
		{"leading", []Item{sep(), cmdItem("a")}, []string{"a"}},
		{"trailing", []Item{cmdItem("a"), sep()}, []string{"a"}},
		{"consecutive", []Item{cmdItem("a"), sep(), sep(), cmdItem("b")}, []string{"a", "", "b"}},
		{"only separators", []Item{sep(), sep()}, nil},
		{"kept between", []Item{cmdItem("a"), sep(), cmdItem("b")}, []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.in)
			got := make([]string, 0, len(m.Items()))
			for _, it := range m.Items() {
				got = append(got, it.ID)
			}
			if tt.want == nil {
				assert.True(t, m.Empty())
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMenuMeasurement(t *testing.T) {
	m := New([]Item{
		{ID: "a", Label: "Copy"},
		{ID: "b", Label: "Select All", Icon: "*"},
	})
	// Longest line is "* Select All" (12 cells); padding and border add 4.
	assert.Equal(t, 16, m.Width())
	assert.Equal(t, 4, m.Height())
}

func TestShowAtPlacesAndMarksVisible(t *testing.T) {
	m := New([]Item{cmdItem("a"), cmdItem("b")})
	require.False(t, m.Visible())

	m.ShowAt(5, 5, Viewport{Width: 80, Height: 24}, 1)
	assert.True(t, m.Visible())
	x, y := m.Pos()
	assert.Equal(t, 5, x)
	assert.Equal(t, 5, y)
}

func TestContainsAndHitTest(t *testing.T) {
	m := New([]Item{cmdItem("first"), sep(), cmdItem("second")})
	m.ShowAt(10, 10, Viewport{Width: 80, Height: 24}, 1)

	assert.False(t, m.Contains(9, 10))
	assert.True(t, m.Contains(10, 10))
	assert.True(t, m.Contains(10+m.Width()-1, 10+m.Height()-1))
	assert.False(t, m.Contains(10+m.Width(), 10))

	// Row 10 is the top border.
	idx, _ := m.HitTest(12, 10)
	assert.Equal(t, -1, idx)

	idx, item := m.HitTest(12, 11)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "first", item.ID)

	// Separator row resolves to no entry.
	idx, _ = m.HitTest(12, 12)
	assert.Equal(t, -1, idx)

	idx, item = m.HitTest(12, 13)
	assert.Equal(t, 2, idx)
	assert.Equal(t, "second", item.ID)

	// Left border column is not an entry.
	idx, _ = m.HitTest(10, 11)
	assert.Equal(t, -1, idx)
}

func TestDestroyIsIdempotent(t *testing.T) {
	m := New([]Item{cmdItem("a")})
	m.ShowAt(0, 0, Viewport{Width: 80, Height: 24}, 1)

	m.Destroy()
	assert.False(t, m.Visible())
	assert.Empty(t, m.Render())

	m.Destroy()
	assert.False(t, m.Visible())
}

func TestRenderHiddenMenuIsEmpty(t *testing.T) {
	m := New([]Item{cmdItem("a")})
	assert.Empty(t, m.Render())
}

func TestLongLabelsTruncate(t *testing.T) {
	long := "This label is much longer than any menu should reasonably be allowed to get"
	m := New([]Item{{ID: "a", Label: long}})
	assert.Equal(t, maxLabelWidth+4, m.Width())
}
