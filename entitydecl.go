package virty

import "strings"

// EntityDecl is the value object behind an <!ENTITY ...> declaration. An
// entity is internal when it carries only a replacement value, and external
// when a public ID or system URI is present; the two predicates are derived
// and mutually exclusive.
type EntityDecl struct {
	name      string
	value     string
	publicID  string
	systemURI string
	notation  string
}

// NewEntityDecl creates an entity declaration with the given name.
func NewEntityDecl(name string) (*EntityDecl, error) {
	d := &EntityDecl{}
	if err := d.SetName(name); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *EntityDecl) Name() string {
	return d.name
}

func (d *EntityDecl) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidArg("EntityDecl.SetName", "name is empty")
	}
	d.name = name
	return nil
}

func (d *EntityDecl) Value() string {
	return d.value
}

// SetValue sets the replacement text. Any string content is accepted,
// including the empty string; escaping is the serializer's concern.
func (d *EntityDecl) SetValue(value string) {
	d.value = value
}

func (d *EntityDecl) PublicID() string {
	return d.publicID
}

func (d *EntityDecl) SetPublicID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalidArg("EntityDecl.SetPublicID", "public ID is empty")
	}
	d.publicID = id
	return nil
}

func (d *EntityDecl) RemovePublicID() {
	d.publicID = ""
}

func (d *EntityDecl) SystemURI() string {
	return d.systemURI
}

func (d *EntityDecl) SetSystemURI(uri string) error {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return invalidArg("EntityDecl.SetSystemURI", "system URI is empty")
	}
	d.systemURI = uri
	return nil
}

func (d *EntityDecl) RemoveSystemURI() {
	d.systemURI = ""
}

func (d *EntityDecl) Notation() string {
	return d.notation
}

// SetNotation sets the NDATA notation name for external unparsed entities.
func (d *EntityDecl) SetNotation(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidArg("EntityDecl.SetNotation", "notation is empty")
	}
	d.notation = name
	return nil
}

func (d *EntityDecl) RemoveNotation() {
	d.notation = ""
}

// IsInternal reports whether the entity is defined inline by its value.
func (d *EntityDecl) IsInternal() bool {
	return d.publicID == "" && d.systemURI == ""
}

// IsExternal reports whether the entity refers to external content.
func (d *EntityDecl) IsExternal() bool {
	return !d.IsInternal()
}

// quoteEntityValue renders an entity value inside double quotes, escaping
// the two characters that cannot appear literally there.
func quoteEntityValue(value string) string {
	var sb strings.Builder
	sb.WriteString(`"`)
	for _, r := range value {
		switch r {
		case '"':
			sb.WriteString("&quot;")
		case '%':
			sb.WriteString("&#x25;")
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteString(`"`)
	return sb.String()
}

// String returns the canonical declaration syntax.
func (d *EntityDecl) String() string {
	var sb strings.Builder
	sb.WriteString("<!ENTITY ")
	sb.WriteString(d.name)
	if d.IsInternal() {
		sb.WriteString(" ")
		sb.WriteString(quoteEntityValue(d.value))
	} else {
		if d.publicID != "" {
			sb.WriteString(` PUBLIC "`)
			sb.WriteString(d.publicID)
			sb.WriteString(`"`)
			if d.systemURI != "" {
				sb.WriteString(` "`)
				sb.WriteString(d.systemURI)
				sb.WriteString(`"`)
			}
		} else {
			sb.WriteString(` SYSTEM "`)
			sb.WriteString(d.systemURI)
			sb.WriteString(`"`)
		}
		if d.notation != "" {
			sb.WriteString(" NDATA ")
			sb.WriteString(d.notation)
		}
	}
	sb.WriteString(">")
	return sb.String()
}

func (*EntityDecl) subsetDecl() {}
