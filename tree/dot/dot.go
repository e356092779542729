/*
Package dot renders decision trees as Graphviz DOT directed graphs.

Tree nodes become graph nodes named n0, n1... in pre-order. Nodes are drawn
as ellipses labeled with the attribute they split on, leaves as boxes
labeled with their predicted value, and every branch as an edge labeled with
the value it corresponds to.
*/
package dot

import (
	"fmt"
	"io"

	"github.com/awalterschulze/gographviz"
	"github.com/pbanos/id3/tree"
)

// Render returns the DOT source of a graph with the given name for the tree.
func Render(t tree.Tree, name string) (string, error) {
	g, err := Graph(t, name)
	if err != nil {
		return "", err
	}
	return g.String(), nil
}

// Write renders the tree as a graph with the given name onto w.
func Write(w io.Writer, t tree.Tree, name string) error {
	src, err := Render(t, name)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, src)
	return err
}

/*
Graph takes a tree and a graph name and returns the gographviz graph for the
tree, with attribute values escaped as needed.
*/
func Graph(t tree.Tree, name string) (*gographviz.Escape, error) {
	g := gographviz.NewEscape()
	if err := g.SetName(name); err != nil {
		return nil, err
	}
	if err := g.SetDir(true); err != nil {
		return nil, err
	}
	r := &renderer{g: g, graphName: name}
	if _, err := r.add(t); err != nil {
		return nil, err
	}
	return g, nil
}

type renderer struct {
	g         *gographviz.Escape
	graphName string
	next      int
}

// add adds the subtree to the graph and returns the name of its root.
func (r *renderer) add(t tree.Tree) (string, error) {
	id := fmt.Sprintf("n%d", r.next)
	r.next++
	switch t := t.(type) {
	case *tree.Leaf:
		err := r.g.AddNode(r.graphName, id, map[string]string{
			string(gographviz.Label): t.Value,
			string(gographviz.Shape): "box",
		})
		return id, err
	case *tree.Node:
		err := r.g.AddNode(r.graphName, id, map[string]string{
			string(gographviz.Label): t.Attribute,
			string(gographviz.Shape): "ellipse",
		})
		if err != nil {
			return "", err
		}
		for _, b := range t.Branches {
			child, err := r.add(b.Subtree)
			if err != nil {
				return "", err
			}
			err = r.g.AddEdge(id, child, true, map[string]string{
				string(gographviz.Label): b.Value,
			})
			if err != nil {
				return "", err
			}
		}
		return id, nil
	default:
		return "", fmt.Errorf("cannot render tree of type %T", t)
	}
}
