package json

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

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

func TestMarshal(t *testing.T) {
	data, err := Marshal(tree.NewLeaf("yes"))
	require.NoError(t, err)
	assert.Equal(t, `{"value":"yes"}`, string(data))

	n := tree.NewNode("outlook")
	require.NoError(t, n.Add("overcast", tree.NewLeaf("yes")))
	data, err = Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, `{"attribute":"outlook","branches":[{"value":"overcast","subtree":{"value":"yes"}}]}`, string(data))
}

func TestMarshalUnmarshal(t *testing.T) {
	data, err := Marshal(weatherTree())
	require.NoError(t, err)
	decoded, err := Unmarshal(data)
	require.NoError(t, err)
	assert.True(t, tree.Equal(weatherTree(), decoded))

	node := decoded.(*tree.Node)
	var values []string
	for _, b := range node.Branches {
		values = append(values, b.Value)
	}
	assert.Equal(t, []string{"sunny", "overcast", "rainy"}, values)
}

func TestUnmarshal_EmptyStringValue(t *testing.T) {
	decoded, err := Unmarshal([]byte(`{"value":""}`))
	require.NoError(t, err)
	assert.Equal(t, tree.NewLeaf(""), decoded)
}

func TestUnmarshal_Errors(t *testing.T) {
	tests := map[string]string{
		"not json":              `{"value":`,
		"empty object":          `{}`,
		"leaf and node":         `{"value":"yes","attribute":"outlook","branches":[]}`,
		"node without branches": `{"attribute":"outlook"}`,
		"branches without node": `{"branches":[]}`,
		"unknown field":         `{"value":"yes","weight":1}`,
		"missing subtree":       `{"attribute":"outlook","branches":[{"value":"sunny"}]}`,
		"branch without value":  `{"attribute":"outlook","branches":[{"subtree":{"value":"yes"}}]}`,
		"duplicate branch": `{"attribute":"outlook","branches":[
			{"value":"sunny","subtree":{"value":"yes"}},
			{"value":"sunny","subtree":{"value":"no"}}]}`,
		"invalid nested subtree": `{"attribute":"outlook","branches":[{"value":"sunny","subtree":{}}]}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Unmarshal([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestWriteAndReadFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, weatherTree()))

	path := filepath.Join(t.TempDir(), "tree.json")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	decoded, err := ReadFile(path)
	require.NoError(t, err)
	assert.True(t, tree.Equal(weatherTree(), decoded))

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
