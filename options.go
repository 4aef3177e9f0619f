package virty

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identName struct{}
type identValue struct{}
type identAttributes struct{}
type identChildren struct{}
type identXMLDeclaration struct{}
type identDoctypeDeclaration struct{}

type identIndentChar struct{}
type identIndentSize struct{}
type identNewLine struct{}

// NodeOption is an option accepted by New.
type NodeOption interface {
	Option
	nodeOption()
}

type nodeOption struct{ Option }

func (*nodeOption) nodeOption() {}

// DumpOption is an option accepted by NewDumper and XMLString.
type DumpOption interface {
	Option
	dumpOption()
}

type dumpOption struct{ Option }

func (*dumpOption) dumpOption() {}

// WithName specifies the name of the node being constructed. Only meaningful
// for elements, void elements and processing instructions.
func WithName(v string) NodeOption {
	return &nodeOption{option.New(identName{}, v)}
}

// WithValue specifies the character data carried by the node. Only
// meaningful for CDATA, processing instruction, text and comment nodes.
func WithValue(v string) NodeOption {
	return &nodeOption{option.New(identValue{}, v)}
}

// WithAttributes specifies the initial attribute map. Only meaningful for
// elements and void elements.
func WithAttributes(v map[string]string) NodeOption {
	return &nodeOption{option.New(identAttributes{}, v)}
}

// WithChildren specifies the initial children, in document order. Only
// meaningful for documents and elements.
func WithChildren(v ...*Node) NodeOption {
	return &nodeOption{option.New(identChildren{}, v)}
}

// WithXMLDeclaration attaches an XML declaration. Documents only.
func WithXMLDeclaration(v *XMLDecl) NodeOption {
	return &nodeOption{option.New(identXMLDeclaration{}, v)}
}

// WithDoctypeDeclaration attaches a DOCTYPE declaration. Documents only.
func WithDoctypeDeclaration(v *DoctypeDecl) NodeOption {
	return &nodeOption{option.New(identDoctypeDeclaration{}, v)}
}

// WithIndentChar specifies the string repeated to build one unit of
// indentation. The default is the empty string (no indentation).
func WithIndentChar(v string) DumpOption {
	return &dumpOption{option.New(identIndentChar{}, v)}
}

// WithIndentSize specifies how many times the indent character is repeated
// per depth level. The default is 0.
func WithIndentSize(v int) DumpOption {
	return &dumpOption{option.New(identIndentSize{}, v)}
}

// WithNewLine controls whether output segments are joined with newlines.
// When unspecified it defaults to true exactly when both an indent character
// and a positive indent size are configured.
func WithNewLine(v bool) DumpOption {
	return &dumpOption{option.New(identNewLine{}, v)}
}
