package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func sampleTree() *Node {
	root := NewBranch()
	assets := NewBranch()
	assets.SetChild("Cash", NewLeaf(NewRecord("Jan", "100", "Feb", "200")))
	root.SetChild("Total", NewLeaf(NewRecord("Jan", "1")))
	root.SetChild("Assets", assets)
	return root
}

func TestNodeChildren(t *testing.T) {
	root := sampleTree()

	assert.Equal(t, []string{"Total", "Assets"}, root.Labels())
	assert.Equal(t, 2, root.Len())

	cash, ok := root.Lookup("Assets", "Cash")
	require.True(t, ok)
	assert.True(t, cash.IsLeaf())
	assert.Equal(t, Leaf, cash.Kind())

	_, ok = root.Lookup("Assets", "Bank")
	assert.False(t, ok)

	node, ok := root.Lookup()
	assert.True(t, ok)
	assert.Same(t, root, node)

	// Replacing keeps position.
	root.SetChild("Total", NewLeaf(NewRecord("Jan", "2")))
	assert.Equal(t, []string{"Total", "Assets"}, root.Labels())

	root.RemoveChild("Total")
	root.RemoveChild("missing")
	assert.Equal(t, []string{"Assets"}, root.Labels())
}

func TestNodeIsEmpty(t *testing.T) {
	assert.True(t, NewBranch().IsEmpty())
	assert.True(t, NewLeaf(Record{}).IsEmpty())
	assert.False(t, NewLeaf(NewRecord("a", "")).IsEmpty())
	assert.False(t, sampleTree().IsEmpty())
}

func TestNodeToBranch(t *testing.T) {
	leaf := NewLeaf(NewRecord("Jan", "5"))
	leaf.ToBranch("(self)")

	assert.Equal(t, Branch, leaf.Kind())
	assert.Equal(t, 0, leaf.Values().Len())
	self, ok := leaf.Child("(self)")
	require.True(t, ok)
	v, _ := self.Values().Get("Jan")
	assert.Equal(t, "5", v)

	// No-op on a branch.
	leaf.ToBranch("other")
	assert.Equal(t, []string{"(self)"}, leaf.Labels())
}

func TestNodeZeroValueIsBranch(t *testing.T) {
	var n Node
	assert.Equal(t, Branch, n.Kind())
	assert.True(t, n.IsEmpty())

	require.NotPanics(t, func() { n.SetChild("Cash", NewLeaf(NewRecord("Jan", "1"))) })
	assert.Equal(t, []string{"Cash"}, n.Labels())
	_, ok := n.Child("Cash")
	assert.True(t, ok)
}

func TestNodeSetChildOnLeafPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewLeaf(Record{}).SetChild("x", NewBranch())
	})
}

func TestNodeMarshal(t *testing.T) {
	root := sampleTree()

	data, err := json.Marshal(root)
	require.NoError(t, err)
	assert.Equal(t, `{"Total":{"Jan":"1"},"Assets":{"Cash":{"Jan":"100","Feb":"200"}}}`, string(data))

	data, err = yaml.Marshal(root)
	require.NoError(t, err)
	assert.Equal(t, "Total:\n  Jan: \"1\"\nAssets:\n  Cash:\n    Jan: \"100\"\n    Feb: \"200\"\n", string(data))

	data, err = json.Marshal(HierarchicalTable{Range: "A1:C4"})
	require.NoError(t, err)
	assert.Equal(t, `{"range":"A1:C4","tree":null}`, string(data))
}

func TestBounds(t *testing.T) {
	b := Bounds{R1: 2, C1: 2, R2: 5, C2: 4}
	assert.Equal(t, 4, b.Rows())
	assert.Equal(t, 3, b.Cols())
	assert.True(t, b.Contains(2, 4))
	assert.False(t, b.Contains(6, 4))
	assert.True(t, b.Intersects(Bounds{R1: 5, C1: 4, R2: 9, C2: 9}))
	assert.False(t, b.Intersects(Bounds{R1: 6, C1: 1, R2: 9, C2: 9}))
}

func TestRegionJSON(t *testing.T) {
	r := Region{Bounds: Bounds{R1: 1, C1: 1, R2: 3, C2: 2}, Range: "A1:B3", Kind: TableSimple, HeaderRows: 1}
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"r1":1,"c1":1,"r2":3,"c2":2,"range":"A1:B3","kind":"simple","header_rows":1}`, string(data))
}
