package virty

import (
	"fmt"
	"strings"

	"github.com/jacoblockett/virty/internal/orderedmap"
)

// Node is a single element of the document tree, tagged with one of the
// seven node types. All fields are unexported; the tree linkage (parent,
// prev, next) can only be touched by code in this package, so external
// callers cannot corrupt sibling or parent links.
//
// The children slice is the sole ownership relation. parent, prev and next
// are weak navigational references derived from it.
type Node struct {
	typ   NodeType
	name  string
	value string

	attrs    *orderedmap.Map[string, string]
	children []*Node

	parent *Node
	prev   *Node
	next   *Node

	xmlDecl *XMLDecl
	doctype *DoctypeDecl
}

// New creates a node of the given type. Optional fields are supplied via
// options; an option that is not meaningful for the type fails the same way
// the corresponding mutator would.
func New(typ NodeType, options ...NodeOption) (*Node, error) {
	if !typ.Registered() {
		return nil, fmt.Errorf("virty.New: %w (%d)", ErrUnregisteredType, typ)
	}

	n := &Node{typ: typ}
	for _, o := range options {
		var err error
		switch o.Ident() {
		case identName{}:
			err = n.SetName(o.Value().(string))
		case identValue{}:
			err = n.SetValue(o.Value().(string))
		case identAttributes{}:
			err = n.SetAttributes(o.Value().(map[string]string))
		case identChildren{}:
			err = n.AppendChild(o.Value().([]*Node)...)
		case identXMLDeclaration{}:
			err = n.SetXMLDeclaration(o.Value().(*XMLDecl))
		case identDoctypeDeclaration{}:
			err = n.SetDoctypeDeclaration(o.Value().(*DoctypeDecl))
		}
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}

// NewDocument creates an empty document node.
func NewDocument() *Node {
	return &Node{typ: DocumentNode}
}

// NewElement creates an orphan element node with the given name.
func NewElement(name string) *Node {
	return &Node{typ: ElementNode, name: strings.TrimSpace(name)}
}

// NewVoidElement creates an element that can never contain children.
func NewVoidElement(name string) *Node {
	return &Node{typ: VoidElementNode, name: strings.TrimSpace(name)}
}

// NewText creates a text node carrying the given character data.
func NewText(value string) *Node {
	return &Node{typ: TextNode, value: value}
}

// NewCDATA creates a CDATA section node.
func NewCDATA(value string) *Node {
	return &Node{typ: CDATANode, value: value}
}

// NewComment creates a comment node.
func NewComment(value string) *Node {
	return &Node{typ: CommentNode, value: value}
}

// NewProcessingInstruction creates a processing instruction with the given
// target name and data.
func NewProcessingInstruction(name, value string) *Node {
	return &Node{typ: ProcessingInstructionNode, name: strings.TrimSpace(name), value: value}
}

func (n *Node) Type() NodeType {
	return n.typ
}

func (n *Node) Name() string {
	return n.name
}

func (n *Node) Value() string {
	return n.value
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) NextSibling() *Node {
	return n.next
}

func (n *Node) PrevSibling() *Node {
	return n.prev
}

func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// Children returns the children in document order. The slice is a copy; the
// nodes are not.
func (n *Node) Children() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	dst := make([]*Node, len(n.children))
	copy(dst, n.children)
	return dst
}

func (n *Node) XMLDeclaration() *XMLDecl {
	return n.xmlDecl
}

func (n *Node) DoctypeDeclaration() *DoctypeDecl {
	return n.doctype
}

// IsDocument reports whether n is a document node.
func (n *Node) IsDocument() bool {
	return n.typ == DocumentNode
}

// IsElement reports whether n is an element or void element node.
func (n *Node) IsElement() bool {
	return n.typ.IsElement()
}

// IsCharacterData reports whether n carries raw character data.
func (n *Node) IsCharacterData() bool {
	return n.typ.IsCharacterData()
}

// CanContainChildren reports whether n may own children.
func (n *Node) CanContainChildren() bool {
	return n.typ.CanContainChildren()
}

// SetName sets the node name. Only elements, void elements and processing
// instructions carry a name. The name is trimmed; an empty name after
// trimming is rejected.
func (n *Node) SetName(name string) error {
	if !n.typ.hasName() {
		return unsupportedOp("SetName", n.typ)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidArg("SetName", "name is empty")
	}
	n.name = name
	return nil
}

// SetValue sets the character data of the node. Only character data nodes
// carry a value.
func (n *Node) SetValue(value string) error {
	if !n.typ.IsCharacterData() {
		return unsupportedOp("SetValue", n.typ)
	}
	n.value = value
	return nil
}

// SetXMLDeclaration attaches an XML declaration. Documents only.
func (n *Node) SetXMLDeclaration(decl *XMLDecl) error {
	if n.typ != DocumentNode {
		return unsupportedOp("SetXMLDeclaration", n.typ)
	}
	n.xmlDecl = decl
	return nil
}

// RemoveXMLDeclaration detaches the XML declaration, if any.
func (n *Node) RemoveXMLDeclaration() error {
	if n.typ != DocumentNode {
		return unsupportedOp("RemoveXMLDeclaration", n.typ)
	}
	n.xmlDecl = nil
	return nil
}

// SetDoctypeDeclaration attaches a DOCTYPE declaration. Documents only.
func (n *Node) SetDoctypeDeclaration(decl *DoctypeDecl) error {
	if n.typ != DocumentNode {
		return unsupportedOp("SetDoctypeDeclaration", n.typ)
	}
	n.doctype = decl
	return nil
}

// RemoveDoctypeDeclaration detaches the DOCTYPE declaration, if any.
func (n *Node) RemoveDoctypeDeclaration() error {
	if n.typ != DocumentNode {
		return unsupportedOp("RemoveDoctypeDeclaration", n.typ)
	}
	n.doctype = nil
	return nil
}

// SetType converts a live node to a different type. Every field that is not
// meaningful for the destination type is cleared: children are detached and
// become independent roots, attributes and declarations are dropped, the
// value resets to the empty string. Converting to a document first detaches
// the node from any current parent, since a document cannot be a child.
func (n *Node) SetType(typ NodeType) error {
	if !typ.Registered() {
		return fmt.Errorf("SetType: %w (%d)", ErrUnregisteredType, typ)
	}
	if typ == n.typ {
		return nil
	}

	if typ == DocumentNode {
		n.Emancipate()
	}
	if !typ.CanContainChildren() {
		for _, c := range n.children {
			c.parent = nil
			c.prev = nil
			c.next = nil
		}
		n.children = nil
	}
	if !typ.hasAttributes() {
		n.attrs = nil
	}
	if !typ.hasName() {
		n.name = ""
	}
	if !typ.IsCharacterData() {
		n.value = ""
	}
	if typ != DocumentNode {
		n.xmlDecl = nil
		n.doctype = nil
	}

	n.typ = typ
	return nil
}
