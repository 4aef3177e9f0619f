package virty

import (
	"strings"

	"github.com/jacoblockett/virty/internal/orderedmap"
)

// AttributeType represents the declared type of an attribute in an
// <!ATTLIST ...> declaration.
type AttributeType int

const (
	AttrInvalid AttributeType = iota
	AttrCDATA
	AttrID
	AttrIDRef
	AttrIDRefs
	AttrEntity
	AttrEntities
	AttrNMToken
	AttrNMTokens
	AttrEnumeration
	AttrNotation
)

var attributeTypeKeywords = map[AttributeType]string{
	AttrCDATA:    "CDATA",
	AttrID:       "ID",
	AttrIDRef:    "IDREF",
	AttrIDRefs:   "IDREFS",
	AttrEntity:   "ENTITY",
	AttrEntities: "ENTITIES",
	AttrNMToken:  "NMTOKEN",
	AttrNMTokens: "NMTOKENS",
	AttrNotation: "NOTATION",
}

// String returns the DTD keyword for the type. Enumerated types have no
// keyword; their value list is rendered instead.
func (t AttributeType) String() string {
	return attributeTypeKeywords[t]
}

func (t AttributeType) registered() bool {
	return t > AttrInvalid && t <= AttrNotation
}

// AttributeDefault represents the default-declaration keyword of an
// attribute: none (a plain default value), #REQUIRED, #IMPLIED (an optional
// attribute), or #FIXED.
type AttributeDefault int

const (
	AttrDefaultNone AttributeDefault = iota
	AttrDefaultRequired
	AttrDefaultImplied
	AttrDefaultFixed
)

var attributeDefaultKeywords = map[AttributeDefault]string{
	AttrDefaultRequired: "#REQUIRED",
	AttrDefaultImplied:  "#IMPLIED",
	AttrDefaultFixed:    "#FIXED",
}

func (d AttributeDefault) String() string {
	return attributeDefaultKeywords[d]
}

func (d AttributeDefault) registered() bool {
	return d >= AttrDefaultNone && d <= AttrDefaultFixed
}

// attlistAttr is one attribute definition inside an attlist declaration.
type attlistAttr struct {
	typ          AttributeType
	enum         []string
	def          AttributeDefault
	defaultValue string
}

// AttlistDecl is the value object behind an <!ATTLIST ...> declaration.
// Attribute definitions are keyed by name; declaring the same name twice
// replaces the earlier definition (last write wins).
type AttlistDecl struct {
	element string
	attrs   *orderedmap.Map[string, attlistAttr]
}

// NewAttlistDecl creates an attlist declaration for the given element name.
func NewAttlistDecl(element string) (*AttlistDecl, error) {
	d := &AttlistDecl{attrs: orderedmap.New[string, attlistAttr]()}
	if err := d.SetElement(element); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *AttlistDecl) Element() string {
	return d.element
}

func (d *AttlistDecl) SetElement(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidArg("AttlistDecl.SetElement", "element name is empty")
	}
	d.element = name
	return nil
}

// AddAttribute declares an attribute. The name is trimmed and must be
// non-empty; the type and default keywords must be registered values. Use
// AddEnumAttribute for enumerated types, which need a value list.
func (d *AttlistDecl) AddAttribute(name string, typ AttributeType, def AttributeDefault, defaultValue string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidArg("AttlistDecl.AddAttribute", "attribute name is empty")
	}
	if !typ.registered() {
		return invalidArg("AttlistDecl.AddAttribute", "unknown attribute type")
	}
	if typ == AttrEnumeration {
		return invalidArg("AttlistDecl.AddAttribute", "enumerated attributes need a value list")
	}
	if !def.registered() {
		return invalidArg("AttlistDecl.AddAttribute", "unknown default declaration")
	}
	d.attrs.Set(name, attlistAttr{typ: typ, def: def, defaultValue: defaultValue})
	return nil
}

// AddEnumAttribute declares an attribute with an enumerated value list.
func (d *AttlistDecl) AddEnumAttribute(name string, values []string, def AttributeDefault, defaultValue string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidArg("AttlistDecl.AddEnumAttribute", "attribute name is empty")
	}
	if len(values) == 0 {
		return invalidArg("AttlistDecl.AddEnumAttribute", "value list is empty")
	}
	enum := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			return invalidArg("AttlistDecl.AddEnumAttribute", "enumeration value is empty")
		}
		enum = append(enum, v)
	}
	if !def.registered() {
		return invalidArg("AttlistDecl.AddEnumAttribute", "unknown default declaration")
	}
	d.attrs.Set(name, attlistAttr{typ: AttrEnumeration, enum: enum, def: def, defaultValue: defaultValue})
	return nil
}

// RemoveAttribute drops the named definition. Unknown names are ignored.
func (d *AttlistDecl) RemoveAttribute(name string) {
	d.attrs.Delete(strings.TrimSpace(name))
}

// AttributeNames returns the declared attribute names in declaration order.
func (d *AttlistDecl) AttributeNames() []string {
	return d.attrs.Keys()
}

// String returns the canonical declaration syntax, one definition per
// attribute in declaration order, e.g.
// `<!ATTLIST img src CDATA #REQUIRED alt CDATA #IMPLIED>`.
func (d *AttlistDecl) String() string {
	var sb strings.Builder
	sb.WriteString("<!ATTLIST ")
	sb.WriteString(d.element)
	for name, attr := range d.attrs.Range() {
		sb.WriteString(" ")
		sb.WriteString(name)
		if attr.typ == AttrEnumeration {
			sb.WriteString(" (")
			sb.WriteString(strings.Join(attr.enum, "|"))
			sb.WriteString(")")
		} else {
			sb.WriteString(" ")
			sb.WriteString(attr.typ.String())
		}
		if kw := attr.def.String(); kw != "" {
			sb.WriteString(" ")
			sb.WriteString(kw)
		}
		if attr.defaultValue != "" && attr.def != AttrDefaultRequired && attr.def != AttrDefaultImplied {
			sb.WriteString(` "`)
			sb.WriteString(attr.defaultValue)
			sb.WriteString(`"`)
		}
	}
	sb.WriteString(">")
	return sb.String()
}

func (*AttlistDecl) subsetDecl() {}
