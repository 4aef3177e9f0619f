package virty

import "strings"

// Text returns the concatenated content of every text descendant (including
// the node itself) in document order.
func (n *Node) Text() string {
	return n.collectContent(func(t NodeType) bool {
		return t == TextNode
	})
}

// CharacterData returns the concatenated content of every character data
// descendant (CDATA, processing instruction, text and comment nodes) in
// document order.
func (n *Node) CharacterData() string {
	return n.collectContent(NodeType.IsCharacterData)
}

// collectContent walks the subtree with an explicit stack instead of
// recursion, so arbitrarily deep trees cannot exhaust the call stack.
// Children are pushed in reverse so they pop in document order.
func (n *Node) collectContent(match func(NodeType) bool) string {
	var sb strings.Builder
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if match(cur.typ) {
			sb.WriteString(cur.value)
		}
		for i := len(cur.children) - 1; i >= 0; i-- {
			stack = append(stack, cur.children[i])
		}
	}
	return sb.String()
}
