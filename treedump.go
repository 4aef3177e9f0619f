package virty

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// nodeLabel renders a one-line summary of a node for diagnostic output.
func nodeLabel(n *Node) string {
	switch {
	case n.typ.hasName() && n.attrs != nil && n.attrs.Len() > 0:
		return fmt.Sprintf("%s %s %v", n.typ, n.name, n.Attributes())
	case n.typ.hasName():
		return fmt.Sprintf("%s %s", n.typ, n.name)
	case n.typ.IsCharacterData():
		return fmt.Sprintf("%s %q", n.typ, n.value)
	}
	return n.typ.String()
}

// DumpTree writes an ASCII rendering of the subtree rooted at n. This is a
// diagnostic aid, not a serialization format; use a Dumper for markup
// output.
func DumpTree(out io.Writer, n *Node) error {
	root := treeprint.NewWithRoot(nodeLabel(n))

	type frame struct {
		node   *Node
		branch treeprint.Tree
	}
	stack := []frame{{node: n, branch: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range f.node.children {
			if len(c.children) == 0 {
				f.branch.AddNode(nodeLabel(c))
				continue
			}
			stack = append(stack, frame{node: c, branch: f.branch.AddBranch(nodeLabel(c))})
		}
	}

	_, err := io.WriteString(out, root.String())
	return err
}
