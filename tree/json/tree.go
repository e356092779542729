/*
Package json serializes decision trees as nested JSON objects.

A leaf is serialized as an object with a "value" field holding its predicted
class value:

	{"value":"yes"}

A node is serialized as an object with an "attribute" field holding the
attribute it splits on and a "branches" field holding an array of branches,
each one an object with the "value" of the attribute it corresponds to and
the "subtree" it leads to:

	{"attribute":"outlook","branches":[{"value":"overcast","subtree":{"value":"yes"}}]}

Branches keep the order they have on the tree.
*/
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/id3/tree"
)

type jsonTree struct {
	Value     *string       `json:"value,omitempty"`
	Attribute *string       `json:"attribute,omitempty"`
	Branches  *[]jsonBranch `json:"branches,omitempty"`
}

type jsonBranch struct {
	Value   *string   `json:"value"`
	Subtree *jsonTree `json:"subtree"`
}

// Marshal returns the JSON serialization of the given tree.
func Marshal(t tree.Tree) ([]byte, error) {
	jt, err := toJSONTree(t)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jt)
}

/*
Unmarshal takes a slice of bytes with a serialized tree and returns the tree
or an error if the data is not valid JSON or any of its objects is neither a
leaf nor a node.
*/
func Unmarshal(data []byte) (tree.Tree, error) {
	return Read(bytes.NewReader(data))
}

/*
Write takes an io.Writer and a tree and writes the tree's indented JSON
serialization onto the writer.
*/
func Write(w io.Writer, t tree.Tree) error {
	jt, err := toJSONTree(t)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jt)
}

// Read decodes a serialized tree from the given io.Reader.
func Read(r io.Reader) (tree.Tree, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	jt := &jsonTree{}
	if err := dec.Decode(jt); err != nil {
		return nil, fmt.Errorf("decoding tree: %v", err)
	}
	return fromJSONTree(jt, "root")
}

// ReadFile decodes the serialized tree stored on the file at the given path.
func ReadFile(path string) (tree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading tree: %v", err)
	}
	defer f.Close()
	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading tree at %s: %v", path, err)
	}
	return t, nil
}

func toJSONTree(t tree.Tree) (*jsonTree, error) {
	switch t := t.(type) {
	case *tree.Leaf:
		v := t.Value
		return &jsonTree{Value: &v}, nil
	case *tree.Node:
		a := t.Attribute
		branches := make([]jsonBranch, 0, len(t.Branches))
		for _, b := range t.Branches {
			st, err := toJSONTree(b.Subtree)
			if err != nil {
				return nil, err
			}
			v := b.Value
			branches = append(branches, jsonBranch{Value: &v, Subtree: st})
		}
		return &jsonTree{Attribute: &a, Branches: &branches}, nil
	default:
		return nil, fmt.Errorf("cannot serialize tree of type %T", t)
	}
}

// fromJSONTree validates and converts a decoded object found at path.
func fromJSONTree(jt *jsonTree, path string) (tree.Tree, error) {
	if jt == nil {
		return nil, fmt.Errorf("%s: missing subtree", path)
	}
	switch {
	case jt.Value != nil && jt.Attribute == nil && jt.Branches == nil:
		return tree.NewLeaf(*jt.Value), nil
	case jt.Value == nil && jt.Attribute != nil && jt.Branches != nil:
		n := tree.NewNode(*jt.Attribute)
		for i, jb := range *jt.Branches {
			if jb.Value == nil {
				return nil, fmt.Errorf("%s: branch #%d of attribute %q has no value", path, i, *jt.Attribute)
			}
			bpath := fmt.Sprintf("%s > %s=%s", path, *jt.Attribute, *jb.Value)
			st, err := fromJSONTree(jb.Subtree, bpath)
			if err != nil {
				return nil, err
			}
			if err = n.Add(*jb.Value, st); err != nil {
				return nil, fmt.Errorf("%s: %v", path, err)
			}
		}
		return n, nil
	default:
		return nil, fmt.Errorf("%s: object is neither a leaf with a value nor a node with an attribute and branches", path)
	}
}
