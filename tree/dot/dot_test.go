package dot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/awalterschulze/gographviz"
	"github.com/pbanos/id3/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weatherTree() tree.Tree {
	return &tree.Node{Attribute: "outlook", Branches: []tree.Branch{
		{Value: "sunny", Subtree: &tree.Node{Attribute: "humidity", Branches: []tree.Branch{
			{Value: "high", Subtree: tree.NewLeaf("no")},
			{Value: "normal", Subtree: tree.NewLeaf("yes")},
		}}},
		{Value: "overcast", Subtree: tree.NewLeaf("yes")},
		{Value: "rainy", Subtree: &tree.Node{Attribute: "windy", Branches: []tree.Branch{
			{Value: "false", Subtree: tree.NewLeaf("yes")},
			{Value: "true", Subtree: tree.NewLeaf("no")},
		}}},
	}}
}

func TestGraph(t *testing.T) {
	g, err := Graph(weatherTree(), "weather")
	require.NoError(t, err)

	assert.Equal(t, "weather", g.Name)
	assert.True(t, g.Directed)
	require.Len(t, g.Nodes.Nodes, 8)
	require.Len(t, g.Edges.Edges, 7)

	labels := map[string]string{
		"n0": "outlook", "n1": "humidity", "n2": "no", "n3": "yes",
		"n4": "yes", "n5": "windy", "n6": "yes", "n7": "no",
	}
	for id, label := range labels {
		n, ok := g.Nodes.Lookup[id]
		require.True(t, ok, id)
		assert.Equal(t, label, n.Attrs[gographviz.Label], id)
	}
	assert.Equal(t, "ellipse", g.Nodes.Lookup["n0"].Attrs[gographviz.Shape])
	assert.Equal(t, "box", g.Nodes.Lookup["n4"].Attrs[gographviz.Shape])

	// edges of a subtree are added before the edge leading to it
	high := g.Edges.Edges[0]
	assert.Equal(t, "n1", high.Src)
	assert.Equal(t, "n2", high.Dst)
	assert.Equal(t, "high", high.Attrs[gographviz.Label])
	sunny := g.Edges.Edges[2]
	assert.Equal(t, "n0", sunny.Src)
	assert.Equal(t, "n1", sunny.Dst)
	assert.Equal(t, "sunny", sunny.Attrs[gographviz.Label])
	overcast := g.Edges.Edges[3]
	assert.Equal(t, "n0", overcast.Src)
	assert.Equal(t, "n4", overcast.Dst)
}

func TestGraph_EscapesLabels(t *testing.T) {
	n := tree.NewNode("sky cover")
	require.NoError(t, n.Add("mostly cloudy", tree.NewLeaf("stay home")))
	g, err := Graph(n, "weather")
	require.NoError(t, err)
	assert.Equal(t, `"sky cover"`, g.Nodes.Lookup["n0"].Attrs[gographviz.Label])
	assert.Equal(t, `"mostly cloudy"`, g.Edges.Edges[0].Attrs[gographviz.Label])
}

func TestRender(t *testing.T) {
	src, err := Render(weatherTree(), "weather")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(src), "digraph weather"))

	parsed, err := gographviz.Read([]byte(src))
	require.NoError(t, err)
	assert.Len(t, parsed.Nodes.Nodes, 8)
	assert.Len(t, parsed.Edges.Edges, 7)
}

func TestWrite_Leaf(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tree.NewLeaf("yes"), "tree"))
	assert.Contains(t, buf.String(), "n0")
	assert.Contains(t, buf.String(), "box")
}
