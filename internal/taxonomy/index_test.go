package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() []Node {
	return []Node{
		{
			Code:  "100",
			Label: "Collectibles",
			Children: []Node{
				{Code: "110", Label: "Trading Cards", Children: []Node{
					{Code: "111", Label: "Graded Cards"},
				}},
			},
		},
		{
			Code:  "200",
			Label: "Electronics",
			Children: []Node{
				{Code: "210", Label: "Cameras"},
			},
		},
	}
}

func TestIndex_Flatten(t *testing.T) {
	ix := NewIndex(testTree())
	entries := ix.Flatten()

	require.Len(t, entries, 5)

	// Depth-first, parent before children.
	assert.Equal(t, "100", entries[0].Code)
	assert.Equal(t, "110", entries[1].Code)
	assert.Equal(t, "111", entries[2].Code)
	assert.Equal(t, "200", entries[3].Code)
	assert.Equal(t, "210", entries[4].Code)

	assert.Equal(t, "Collectibles > Trading Cards > Graded Cards", entries[2].Label)
}

func TestIndex_FlattenCodesUnique(t *testing.T) {
	ix := NewIndex(DefaultTree())

	seen := make(map[string]bool)
	for _, entry := range ix.Flatten() {
		assert.False(t, seen[entry.Code], "duplicate code %s", entry.Code)
		seen[entry.Code] = true
	}
}

func TestIndex_LabelOf(t *testing.T) {
	ix := NewIndex(testTree())

	assert.Equal(t, "Trading Cards", ix.LabelOf("110"))
	assert.Equal(t, "Graded Cards", ix.LabelOf("111"))
	// Unknown codes pass through unchanged.
	assert.Equal(t, "XYZ", ix.LabelOf("XYZ"))
	assert.Equal(t, "", ix.LabelOf(""))
}

func TestIndex_PathLabel(t *testing.T) {
	ix := NewIndex(testTree())

	assert.Equal(t, "Collectibles > Trading Cards > Graded Cards", ix.PathLabel("111"))
	assert.Equal(t, "Collectibles", ix.PathLabel("100"))
	assert.Equal(t, "XYZ", ix.PathLabel("XYZ"))
}

func TestIndex_ParentOf(t *testing.T) {
	ix := NewIndex(testTree())

	parent, ok := ix.ParentOf("111")
	require.True(t, ok)
	assert.Equal(t, "100", parent)

	parent, ok = ix.ParentOf("210")
	require.True(t, ok)
	assert.Equal(t, "200", parent)

	_, ok = ix.ParentOf("100")
	assert.False(t, ok, "root has no parent")

	_, ok = ix.ParentOf("nope")
	assert.False(t, ok)
}

func TestIndex_Replace(t *testing.T) {
	ix := NewIndex(testTree())
	require.Equal(t, uint64(1), ix.Version())
	require.True(t, ix.Contains("111"))

	ix.Replace([]Node{{Code: "900", Label: "Other"}})

	assert.Equal(t, uint64(2), ix.Version())
	assert.False(t, ix.Contains("111"))
	assert.True(t, ix.Contains("900"))
}

func TestIndex_EmptyTree(t *testing.T) {
	ix := NewIndex(nil)

	assert.Empty(t, ix.Flatten())
	assert.Equal(t, "110", ix.LabelOf("110"))
	assert.False(t, ix.Contains("110"))
}
