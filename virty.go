// Package virty implements a mutable, in-memory tree model for markup
// documents. Nodes are constructed explicitly, linked into a tree via the
// structural mutation operations, and serialized back to markup text with a
// Dumper. No parser is attached; producing nodes from raw text is the job of
// an external tokenizer.
package virty

// NodeType identifies one of the seven node variants. The ordinal values are
// stable and part of the public contract.
type NodeType int

const (
	DocumentNode NodeType = iota
	ElementNode
	VoidElementNode
	CDATANode
	ProcessingInstructionNode
	TextNode
	CommentNode

	maxNodeType // sentinel, keep last
)

var nodeTypeNames = [maxNodeType]string{
	DocumentNode:              "Document",
	ElementNode:               "Element",
	VoidElementNode:           "VoidElement",
	CDATANode:                 "CDATA",
	ProcessingInstructionNode: "ProcessingInstruction",
	TextNode:                  "Text",
	CommentNode:               "Comment",
}

// String returns the canonical name for the node type, or "Unknown" for
// values outside the registered range.
func (t NodeType) String() string {
	if !t.Registered() {
		return "Unknown"
	}
	return nodeTypeNames[t]
}

// Registered reports whether t is one of the seven known node types.
func (t NodeType) Registered() bool {
	return t >= DocumentNode && t < maxNodeType
}

// IsElement reports whether t is ElementNode or VoidElementNode.
func (t NodeType) IsElement() bool {
	return t == ElementNode || t == VoidElementNode
}

// IsCharacterData reports whether t carries raw character data, i.e. is one
// of CDATANode, ProcessingInstructionNode, TextNode, or CommentNode.
func (t NodeType) IsCharacterData() bool {
	switch t {
	case CDATANode, ProcessingInstructionNode, TextNode, CommentNode:
		return true
	}
	return false
}

// CanContainChildren reports whether nodes of this type may own children.
// Only documents and elements can; void elements never can.
func (t NodeType) CanContainChildren() bool {
	return t == DocumentNode || t == ElementNode
}

// hasName reports whether the name field is meaningful for t.
func (t NodeType) hasName() bool {
	switch t {
	case ElementNode, VoidElementNode, ProcessingInstructionNode:
		return true
	}
	return false
}

// hasAttributes reports whether the attribute map is meaningful for t.
func (t NodeType) hasAttributes() bool {
	return t.IsElement()
}
