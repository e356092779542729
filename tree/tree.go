/*
Package tree provides the decision tree value produced by the induction
engine and the operations to consume it: classifying records, testing a
tree against a dataset, walking it and rendering it as text.

A Tree is either a *Leaf, holding a predicted class value, or a *Node,
holding the attribute it splits on and one branch per observed value of
that attribute. Consumers are expected to type-switch on those two cases:

	switch t := t.(type) {
	case *tree.Leaf:
		...
	case *tree.Node:
		...
	}
*/
package tree

import (
	"fmt"
)

/*
Tree represents a decision tree or subtree thereof. It is implemented only
by *Leaf and *Node.
*/
type Tree interface {
	isTree()
}

// Leaf is a terminal node holding the predicted class value.
type Leaf struct {
	Value string
}

/*
Node is an internal node of the tree. It splits the records reaching it on
the values of Attribute, with a branch per value observed in those records,
in order of first occurrence.
*/
type Node struct {
	Attribute string
	Branches  []Branch
}

// Branch connects a node with the subtree for one value of its attribute.
type Branch struct {
	Value   string
	Subtree Tree
}

func (*Leaf) isTree() {}
func (*Node) isTree() {}

// NewLeaf returns a leaf predicting the given value.
func NewLeaf(value string) *Leaf {
	return &Leaf{Value: value}
}

// NewNode returns a node splitting on attribute with no branches yet.
func NewNode(attribute string) *Node {
	return &Node{Attribute: attribute}
}

/*
Add appends a branch for the given value and subtree. It returns an error
if the node already has a branch for the value.
*/
func (n *Node) Add(value string, subtree Tree) error {
	if _, ok := n.Child(value); ok {
		return fmt.Errorf("node on %q already has a branch for value %q", n.Attribute, value)
	}
	n.Branches = append(n.Branches, Branch{Value: value, Subtree: subtree})
	return nil
}

// Child returns the subtree for the given value and whether there is one.
func (n *Node) Child(value string) (Tree, bool) {
	for _, b := range n.Branches {
		if b.Value == value {
			return b.Subtree, true
		}
	}
	return nil, false
}

/*
Step is one decision taken while descending a tree: the attribute asked
about and the value followed.
*/
type Step struct {
	Attribute string
	Value     string
}

func (s Step) String() string {
	return fmt.Sprintf("%s=%s", s.Attribute, s.Value)
}

/*
Walk goes through the tree in pre-order calling fn with the path of steps
leading to each subtree and the subtree itself. Branches are visited in
their order on the node. If fn returns an error the walk is aborted and the
error returned.
*/
func Walk(t Tree, fn func(path []Step, t Tree) error) error {
	return walk(nil, t, fn)
}

func walk(path []Step, t Tree, fn func([]Step, Tree) error) error {
	if err := fn(path, t); err != nil {
		return err
	}
	n, ok := t.(*Node)
	if !ok {
		return nil
	}
	for _, b := range n.Branches {
		subpath := make([]Step, len(path), len(path)+1)
		copy(subpath, path)
		subpath = append(subpath, Step{n.Attribute, b.Value})
		if err := walk(subpath, b.Subtree, fn); err != nil {
			return err
		}
	}
	return nil
}

// Depth returns the number of nodes on the longest path from the root to a leaf, not counting the leaf.
func Depth(t Tree) int {
	n, ok := t.(*Node)
	if !ok {
		return 0
	}
	var max int
	for _, b := range n.Branches {
		if d := Depth(b.Subtree); d > max {
			max = d
		}
	}
	return max + 1
}

// Leaves returns the number of leaves in the tree.
func Leaves(t Tree) int {
	var count int
	Walk(t, func(_ []Step, st Tree) error {
		if _, ok := st.(*Leaf); ok {
			count++
		}
		return nil
	})
	return count
}

/*
Equal reports whether both trees have the same structure: the same split
attributes, the same branch values in the same order and the same leaf
values.
*/
func Equal(a, b Tree) bool {
	switch a := a.(type) {
	case *Leaf:
		bl, ok := b.(*Leaf)
		return ok && a != nil && bl != nil && a.Value == bl.Value
	case *Node:
		bn, ok := b.(*Node)
		if !ok || a == nil || bn == nil || a.Attribute != bn.Attribute || len(a.Branches) != len(bn.Branches) {
			return false
		}
		for i, br := range a.Branches {
			if br.Value != bn.Branches[i].Value || !Equal(br.Subtree, bn.Branches[i].Subtree) {
				return false
			}
		}
		return true
	}
	return false
}
