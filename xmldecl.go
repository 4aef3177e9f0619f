package virty

import (
	"strings"

	"github.com/jacoblockett/virty/encoding"
)

// XMLDecl is the value object behind a document's <?xml ...?> declaration.
// It has no tree-structural behavior; a document node merely points at one.
type XMLDecl struct {
	version    string
	encoding   string
	standalone string
}

// NewXMLDecl creates an XML declaration with version "1.0" and no encoding
// or standalone fields.
func NewXMLDecl() *XMLDecl {
	return &XMLDecl{version: "1.0"}
}

func (d *XMLDecl) Version() string {
	return d.version
}

// SetVersion sets the declared XML version. The value is trimmed and must
// not be empty.
func (d *XMLDecl) SetVersion(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return invalidArg("XMLDecl.SetVersion", "version is empty")
	}
	d.version = v
	return nil
}

func (d *XMLDecl) Encoding() string {
	return d.encoding
}

// SetEncoding sets the declared encoding. The name must resolve to a real
// encoding label; unknown names are rejected rather than silently carried
// into serialized output.
func (d *XMLDecl) SetEncoding(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidArg("XMLDecl.SetEncoding", "encoding is empty")
	}
	if !encoding.Supported(name) {
		return invalidArg("XMLDecl.SetEncoding", "unknown encoding "+name)
	}
	d.encoding = name
	return nil
}

// RemoveEncoding clears the encoding field.
func (d *XMLDecl) RemoveEncoding() {
	d.encoding = ""
}

func (d *XMLDecl) Standalone() string {
	return d.standalone
}

// SetStandalone sets the standalone field. Only "yes" and "no" are valid.
func (d *XMLDecl) SetStandalone(v string) error {
	v = strings.TrimSpace(v)
	if v != "yes" && v != "no" {
		return invalidArg("XMLDecl.SetStandalone", `value must be "yes" or "no"`)
	}
	d.standalone = v
	return nil
}

// RemoveStandalone clears the standalone field.
func (d *XMLDecl) RemoveStandalone() {
	d.standalone = ""
}

// String returns the canonical declaration syntax.
func (d *XMLDecl) String() string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="`)
	sb.WriteString(d.version)
	sb.WriteString(`"`)
	if d.encoding != "" {
		sb.WriteString(` encoding="`)
		sb.WriteString(d.encoding)
		sb.WriteString(`"`)
	}
	if d.standalone != "" {
		sb.WriteString(` standalone="`)
		sb.WriteString(d.standalone)
		sb.WriteString(`"`)
	}
	sb.WriteString("?>")
	return sb.String()
}
