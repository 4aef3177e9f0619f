package virty

import "strings"

// ElementDecl is the value object behind an <!ELEMENT ...> declaration in a
// DOCTYPE internal subset.
type ElementDecl struct {
	name        string
	contentSpec string
}

// NewElementDecl creates an element declaration for the given element name
// and content specification (e.g. "(#PCDATA)", "EMPTY", "ANY").
func NewElementDecl(name, contentSpec string) (*ElementDecl, error) {
	d := &ElementDecl{}
	if err := d.SetName(name); err != nil {
		return nil, err
	}
	if err := d.SetContentSpec(contentSpec); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *ElementDecl) Name() string {
	return d.name
}

func (d *ElementDecl) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidArg("ElementDecl.SetName", "name is empty")
	}
	d.name = name
	return nil
}

func (d *ElementDecl) ContentSpec() string {
	return d.contentSpec
}

func (d *ElementDecl) SetContentSpec(spec string) error {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return invalidArg("ElementDecl.SetContentSpec", "content spec is empty")
	}
	d.contentSpec = spec
	return nil
}

// String returns the canonical declaration syntax.
func (d *ElementDecl) String() string {
	return "<!ELEMENT " + d.name + " " + d.contentSpec + ">"
}

func (*ElementDecl) subsetDecl() {}
