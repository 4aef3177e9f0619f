package virty

import "strings"

// SubsetDecl is implemented by the declaration kinds that may appear in a
// DOCTYPE's internal subset: ElementDecl, AttlistDecl and EntityDecl.
type SubsetDecl interface {
	String() string
	subsetDecl()
}

// DoctypeDecl is the value object behind a document's <!DOCTYPE ...>
// declaration. The internal subset is an ordered, heterogeneous sequence of
// element, attlist and entity declarations; it is never validated for
// semantic consistency (duplicate entity names are accepted).
type DoctypeDecl struct {
	name      string
	publicID  string
	systemURI string
	subset    []SubsetDecl
}

// NewDoctypeDecl creates a DOCTYPE declaration for the given root element
// name.
func NewDoctypeDecl(name string) (*DoctypeDecl, error) {
	d := &DoctypeDecl{}
	if err := d.SetName(name); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *DoctypeDecl) Name() string {
	return d.name
}

func (d *DoctypeDecl) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidArg("DoctypeDecl.SetName", "name is empty")
	}
	d.name = name
	return nil
}

func (d *DoctypeDecl) PublicID() string {
	return d.publicID
}

func (d *DoctypeDecl) SetPublicID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalidArg("DoctypeDecl.SetPublicID", "public ID is empty")
	}
	d.publicID = id
	return nil
}

func (d *DoctypeDecl) RemovePublicID() {
	d.publicID = ""
}

func (d *DoctypeDecl) SystemURI() string {
	return d.systemURI
}

func (d *DoctypeDecl) SetSystemURI(uri string) error {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return invalidArg("DoctypeDecl.SetSystemURI", "system URI is empty")
	}
	d.systemURI = uri
	return nil
}

func (d *DoctypeDecl) RemoveSystemURI() {
	d.systemURI = ""
}

// AppendDecl appends declarations to the internal subset in argument order.
func (d *DoctypeDecl) AppendDecl(decls ...SubsetDecl) error {
	for _, decl := range decls {
		if decl == nil {
			return invalidArg("DoctypeDecl.AppendDecl", "nil declaration")
		}
	}
	d.subset = append(d.subset, decls...)
	return nil
}

// InternalSubset returns the internal subset in order. The slice is a copy.
func (d *DoctypeDecl) InternalSubset() []SubsetDecl {
	if len(d.subset) == 0 {
		return nil
	}
	dst := make([]SubsetDecl, len(d.subset))
	copy(dst, d.subset)
	return dst
}

// String returns the canonical declaration syntax, e.g.
// `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0//EN" "http://..." [...]>`.
func (d *DoctypeDecl) String() string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE ")
	sb.WriteString(d.name)
	switch {
	case d.publicID != "":
		sb.WriteString(` PUBLIC "`)
		sb.WriteString(d.publicID)
		sb.WriteString(`"`)
		if d.systemURI != "" {
			sb.WriteString(` "`)
			sb.WriteString(d.systemURI)
			sb.WriteString(`"`)
		}
	case d.systemURI != "":
		sb.WriteString(` SYSTEM "`)
		sb.WriteString(d.systemURI)
		sb.WriteString(`"`)
	}
	if len(d.subset) > 0 {
		sb.WriteString(" [")
		for _, decl := range d.subset {
			sb.WriteString(decl.String())
		}
		sb.WriteString("]")
	}
	sb.WriteString(">")
	return sb.String()
}
