package virty

import (
	"io"
	"strings"

	"github.com/jacoblockett/virty/internal/debug"
)

// Dumper serializes a node tree back to markup text.
type Dumper struct {
	indentChar string
	indentSize int
	useNewLine bool
}

// NewDumper creates a Dumper from the given options. Unless WithNewLine is
// given explicitly, newline joining is enabled exactly when both an indent
// character and a positive indent size are configured.
func NewDumper(options ...DumpOption) *Dumper {
	var d Dumper
	var newLineSet bool
	for _, o := range options {
		switch o.Ident() {
		case identIndentChar{}:
			d.indentChar = o.Value().(string)
		case identIndentSize{}:
			d.indentSize = o.Value().(int)
		case identNewLine{}:
			d.useNewLine = o.Value().(bool)
			newLineSet = true
		}
	}
	if !newLineSet {
		d.useNewLine = d.indentChar != "" && d.indentSize > 0
	}
	return &d
}

// dumpItem is one unit of serialization work. Elements are visited twice:
// once to emit the opening tag and once, after all of their children have
// been processed, with shouldClose set to emit the closing tag.
type dumpItem struct {
	node        *Node
	depth       int
	shouldClose bool
}

// Dump writes the serialized form of the subtree rooted at n.
func (d *Dumper) Dump(out io.Writer, n *Node) error {
	segments := d.collect(n)
	if debug.Enabled {
		debug.Printf("dump: %d segments", len(segments))
	}
	sep := ""
	if d.useNewLine {
		sep = "\n"
	}
	_, err := io.WriteString(out, strings.Join(segments, sep))
	return err
}

// XMLString serializes the subtree rooted at n to a string.
func (n *Node) XMLString(options ...DumpOption) (string, error) {
	var sb strings.Builder
	if err := NewDumper(options...).Dump(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (d *Dumper) indent(depth int) string {
	if d.indentChar == "" || d.indentSize <= 0 {
		return ""
	}
	return strings.Repeat(d.indentChar, depth*d.indentSize)
}

func (d *Dumper) renderAttrs(n *Node) string {
	if n.attrs == nil || n.attrs.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	for name, value := range n.attrs.Range() {
		sb.WriteString(" ")
		sb.WriteString(name)
		sb.WriteString(`="`)
		sb.WriteString(value)
		sb.WriteString(`"`)
	}
	return sb.String()
}

// collect performs an iterative pre-order traversal over an explicit stack.
// Children are pushed in reverse so they pop in document order; an element
// pushes its closing item below its children.
func (d *Dumper) collect(root *Node) []string {
	var segments []string
	stack := []dumpItem{{node: root}}

	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := it.node

		if it.shouldClose {
			segments = append(segments, d.indent(it.depth)+"</"+n.name+">")
			continue
		}

		switch n.typ {
		case DocumentNode:
			if n.xmlDecl != nil {
				segments = append(segments, n.xmlDecl.String())
			}
			if n.doctype != nil {
				segments = append(segments, n.doctype.String())
			}
			// children of the document render at depth 0, not one below it
			stack = pushChildren(stack, n, it.depth)
		case ElementNode:
			open := d.indent(it.depth) + "<" + n.name + d.renderAttrs(n) + ">"
			if len(n.children) == 0 {
				segments = append(segments, open+"</"+n.name+">")
				continue
			}
			segments = append(segments, open)
			stack = append(stack, dumpItem{node: n, depth: it.depth, shouldClose: true})
			stack = pushChildren(stack, n, it.depth+1)
		case VoidElementNode:
			// TODO: void elements currently produce no output; settle on a
			// self-closing form before relying on the dumper for void tags
		case CDATANode:
			// the closing delimiter deliberately omits the trailing '>' to
			// stay byte-compatible with existing consumers
			segments = append(segments, d.indent(it.depth)+"<![CDATA["+n.value+"]]")
		case ProcessingInstructionNode:
			// processing instructions ignore the computed indent
			segments = append(segments, "<?"+n.name+" "+n.value+"?>")
		case TextNode:
			if n.value != "" {
				segments = append(segments, d.indent(it.depth)+n.value)
			}
		case CommentNode:
			segments = append(segments, d.indent(it.depth)+"<!-- "+n.value+" -->")
		}
	}
	return segments
}

func pushChildren(stack []dumpItem, n *Node, depth int) []dumpItem {
	for i := len(n.children) - 1; i >= 0; i-- {
		stack = append(stack, dumpItem{node: n.children[i], depth: depth})
	}
	return stack
}
