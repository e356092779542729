package tree

import (
	"fmt"
	"strings"
)

/*
String renders the tree as indented text, one line per node:

	outlook
	|__sunny
	|  humidity
	|  |__high
	|  |  { no }
	|  |__normal
	|     { yes }
	|__overcast
	   { yes }
*/
func String(t Tree) string {
	var b strings.Builder
	writeSubtree(&b, t)
	return b.String()
}

func (l *Leaf) String() string {
	return String(l)
}

func (n *Node) String() string {
	return String(n)
}

func writeSubtree(b *strings.Builder, t Tree) {
	switch t := t.(type) {
	case *Leaf:
		fmt.Fprintf(b, "{ %s }\n", t.Value)
	case *Node:
		fmt.Fprintf(b, "%s\n", t.Attribute)
		for i, br := range t.Branches {
			last := i == len(t.Branches)-1
			fmt.Fprintf(b, "|__%s\n", br.Value)
			var sb strings.Builder
			writeSubtree(&sb, br.Subtree)
			for _, line := range strings.Split(sb.String(), "\n") {
				if len(line) == 0 {
					continue
				}
				if last {
					fmt.Fprintf(b, "   %s\n", line)
				} else {
					fmt.Fprintf(b, "|  %s\n", line)
				}
			}
		}
	default:
		fmt.Fprintf(b, "ERROR: unknown tree type %T\n", t)
	}
}
