package virty

import (
	"slices"

	pdebug "github.com/lestrrat-go/pdebug/v3"
)

// relinkChildren is the invariant-restoring pass run after every structural
// mutation: it recomputes parent, prev and next for the whole children list
// from the authoritative slice order, so the doubly-linked sibling invariant
// cannot drift out of sync with the list.
func (n *Node) relinkChildren() {
	var prev *Node
	for _, c := range n.children {
		c.parent = n
		c.prev = prev
		c.next = nil
		if prev != nil {
			prev.next = c
		}
		prev = c
	}
}

// validateInsert checks every candidate before any mutation happens, so a
// failed insert leaves the tree untouched.
func (n *Node) validateInsert(op string, nodes []*Node) error {
	if len(nodes) > 1 {
		// a node occupies at most one position, so the same node twice in
		// one call can never be satisfied
		seen := make(map[*Node]struct{}, len(nodes))
		for _, c := range nodes {
			if _, ok := seen[c]; ok {
				return invalidArg(op, "node given more than once")
			}
			seen[c] = struct{}{}
		}
	}
	for _, c := range nodes {
		if c == nil {
			return invalidArg(op, "nil node")
		}
		if c.typ == DocumentNode {
			return invalidArg(op, "a document cannot be a child")
		}
		if c == n {
			return invalidArg(op, "node cannot contain itself")
		}
		// a childless candidate cannot be an ancestor, so the chain walk is
		// skipped on the common path of inserting fresh nodes
		if len(c.children) > 0 {
			for a := n.parent; a != nil; a = a.parent {
				if a == c {
					return invalidArg(op, "node is an ancestor of the insertion point")
				}
			}
		}
	}
	return nil
}

// AppendChild appends the given nodes, in argument order, to the end of the
// children list. A node that currently has a parent is detached from it
// first, so a node has at most one parent at all times.
func (n *Node) AppendChild(children ...*Node) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}
	if !n.typ.CanContainChildren() {
		return unsupportedOp("AppendChild", n.typ)
	}
	if err := n.validateInsert("AppendChild", children); err != nil {
		return err
	}
	for _, c := range children {
		c.Emancipate()
	}
	n.children = append(n.children, children...)
	n.relinkChildren()
	return nil
}

// PrependChild inserts the given nodes, in argument order, at the front of
// the children list. Detach semantics match AppendChild.
func (n *Node) PrependChild(children ...*Node) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}
	if !n.typ.CanContainChildren() {
		return unsupportedOp("PrependChild", n.typ)
	}
	if err := n.validateInsert("PrependChild", children); err != nil {
		return err
	}
	for _, c := range children {
		c.Emancipate()
	}
	n.children = slices.Insert(n.children, 0, children...)
	n.relinkChildren()
	return nil
}

// AppendSibling inserts the given nodes immediately after n, in argument
// order. Fails on documents (which never have siblings) and on any node
// without a parent.
func (n *Node) AppendSibling(siblings ...*Node) error {
	return n.insertSiblings("AppendSibling", siblings, 1)
}

// PrependSibling inserts the given nodes immediately before n, in argument
// order.
func (n *Node) PrependSibling(siblings ...*Node) error {
	return n.insertSiblings("PrependSibling", siblings, 0)
}

func (n *Node) insertSiblings(op string, siblings []*Node, offset int) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}
	if n.typ == DocumentNode {
		return unsupportedOp(op, n.typ)
	}
	p := n.parent
	if p == nil {
		return ErrNoParent
	}
	for _, s := range siblings {
		if s == n {
			return invalidArg(op, "node cannot be inserted relative to itself")
		}
	}
	if err := p.validateInsert(op, siblings); err != nil {
		return err
	}
	for _, s := range siblings {
		s.Emancipate()
	}
	at := slices.Index(p.children, n) + offset
	p.children = slices.Insert(p.children, at, siblings...)
	p.relinkChildren()
	return nil
}

// RemoveChild removes the given nodes from the children list. Nodes that are
// not current children are silently ignored. Each removed node has its
// parent and sibling links cleared and becomes an independent root.
func (n *Node) RemoveChild(children ...*Node) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}
	changed := false
	for _, c := range children {
		if c == nil || c.parent != n {
			continue
		}
		if i := slices.Index(n.children, c); i >= 0 {
			n.children = slices.Delete(n.children, i, i+1)
			c.parent = nil
			c.prev = nil
			c.next = nil
			changed = true
		}
	}
	if changed {
		n.relinkChildren()
	}
	return nil
}

// RemoveChildren removes every child.
func (n *Node) RemoveChildren() error {
	for _, c := range n.children {
		c.parent = nil
		c.prev = nil
		c.next = nil
	}
	n.children = nil
	return nil
}

// Emancipate asks the parent to remove this node, clearing all three
// relational links. A node without a parent is left untouched. The node is
// not destroyed; it becomes a new, independent root, so the receiver is
// returned for detach-then-insert call sites.
func (n *Node) Emancipate() *Node {
	p := n.parent
	if p == nil {
		return n
	}
	if i := slices.Index(p.children, n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.parent = nil
	n.prev = nil
	n.next = nil
	p.relinkChildren()
	return n
}

// Detach is an alias for Emancipate.
func (n *Node) Detach() *Node {
	return n.Emancipate()
}
