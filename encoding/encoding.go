// Package encoding wraps the encoding-name machinery in
// golang.org/x/text/encoding. It exists mostly so that the main package can
// ask "is this a real encoding name?" without importing the x/text index
// packages everywhere.
package encoding

import (
	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Load returns the encoding registered under name (IANA/WHATWG labels such
// as "utf-8", "iso-8859-2", "shift_jis"), or nil when the name is not
// recognized.
func Load(name string) enc.Encoding {
	e, err := htmlindex.Get(name)
	if err != nil {
		return nil
	}
	return e
}

// Supported reports whether name resolves to a known encoding.
func Supported(name string) bool {
	return Load(name) != nil
}

// Canonical resolves name to its canonical label.
func Canonical(name string) (string, error) {
	e, err := htmlindex.Get(name)
	if err != nil {
		return "", err
	}
	return htmlindex.Name(e)
}
