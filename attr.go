package virty

import (
	"sort"
	"strings"

	"github.com/jacoblockett/virty/internal/orderedmap"
)

const classAttr = "class"

// AddAttribute sets the attribute name to value. The name is trimmed; an
// empty name after trimming is rejected. Only elements and void elements
// carry attributes.
func (n *Node) AddAttribute(name, value string) error {
	if !n.typ.hasAttributes() {
		return unsupportedOp("AddAttribute", n.typ)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidArg("AddAttribute", "attribute name is empty")
	}
	if n.attrs == nil {
		n.attrs = orderedmap.New[string, string]()
	}
	n.attrs.Set(name, value)
	return nil
}

// RemoveAttribute removes the named attribute. Removing an attribute that is
// not present is a no-op.
func (n *Node) RemoveAttribute(name string) error {
	if !n.typ.hasAttributes() {
		return unsupportedOp("RemoveAttribute", n.typ)
	}
	if n.attrs != nil {
		n.attrs.Delete(strings.TrimSpace(name))
	}
	return nil
}

// RemoveAttributes removes every attribute.
func (n *Node) RemoveAttributes() error {
	if !n.typ.hasAttributes() {
		return unsupportedOp("RemoveAttributes", n.typ)
	}
	n.attrs = nil
	return nil
}

// SetAttributes replaces the whole attribute map. Every entry is validated
// before anything is replaced, so a failed call leaves the node untouched.
// Entries are applied in sorted key order, since Go map iteration order is
// randomized and attribute order is observable in serialized output.
func (n *Node) SetAttributes(attrs map[string]string) error {
	if !n.typ.hasAttributes() {
		return unsupportedOp("SetAttributes", n.typ)
	}
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		if strings.TrimSpace(name) == "" {
			return invalidArg("SetAttributes", "attribute name is empty")
		}
		names = append(names, name)
	}
	sort.Strings(names)

	replacement := orderedmap.New[string, string]()
	for _, name := range names {
		replacement.Set(strings.TrimSpace(name), attrs[name])
	}
	n.attrs = replacement
	return nil
}

// HasAttribute reports whether the named attribute is present.
func (n *Node) HasAttribute(name string) (bool, error) {
	if !n.typ.hasAttributes() {
		return false, unsupportedOp("HasAttribute", n.typ)
	}
	if n.attrs == nil {
		return false, nil
	}
	return n.attrs.Has(strings.TrimSpace(name)), nil
}

// Attribute returns the value of the named attribute and whether it was
// present. Non-element nodes report absence.
func (n *Node) Attribute(name string) (string, bool) {
	if n.attrs == nil {
		return "", false
	}
	return n.attrs.Get(strings.TrimSpace(name))
}

// Attributes returns the attribute names in insertion order.
func (n *Node) Attributes() []string {
	if n.attrs == nil {
		return nil
	}
	return n.attrs.Keys()
}

// classTokens splits a class attribute value into its tokens, dropping
// duplicates while preserving first-seen order.
func classTokens(value string) []string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return IsWhitespace(r, false)
	})
	seen := make(map[string]struct{}, len(fields))
	tokens := fields[:0]
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		tokens = append(tokens, f)
	}
	return tokens
}

func (n *Node) classList() []string {
	v, _ := n.Attribute(classAttr)
	return classTokens(v)
}

func (n *Node) storeClassList(tokens []string) {
	if n.attrs == nil {
		n.attrs = orderedmap.New[string, string]()
	}
	n.attrs.Set(classAttr, strings.Join(tokens, " "))
}

// validateClassArgs tokenizes the given arguments. Each argument must
// contain at least one token after trimming.
func validateClassArgs(op string, classes []string) ([]string, error) {
	var tokens []string
	for _, c := range classes {
		fields := classTokens(c)
		if len(fields) == 0 {
			return nil, invalidArg(op, "class token is empty")
		}
		tokens = append(tokens, fields...)
	}
	return tokens, nil
}

// AddClass adds the given tokens to the class attribute, treating it as an
// ordered, duplicate-free set. Tokens already present are left where they
// are; new tokens are appended in argument order.
func (n *Node) AddClass(classes ...string) error {
	if !n.typ.hasAttributes() {
		return unsupportedOp("AddClass", n.typ)
	}
	tokens, err := validateClassArgs("AddClass", classes)
	if err != nil {
		return err
	}
	list := n.classList()
	seen := make(map[string]struct{}, len(list))
	for _, t := range list {
		seen[t] = struct{}{}
	}
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		list = append(list, t)
	}
	n.storeClassList(list)
	return nil
}

// RemoveClass filters the given tokens out of the class attribute.
func (n *Node) RemoveClass(classes ...string) error {
	if !n.typ.hasAttributes() {
		return unsupportedOp("RemoveClass", n.typ)
	}
	tokens, err := validateClassArgs("RemoveClass", classes)
	if err != nil {
		return err
	}
	drop := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		drop[t] = struct{}{}
	}
	list := n.classList()
	kept := list[:0]
	for _, t := range list {
		if _, ok := drop[t]; ok {
			continue
		}
		kept = append(kept, t)
	}
	n.storeClassList(kept)
	return nil
}

// ToggleClass flips membership for each given token independently: a token
// that is present is removed, a token that is absent is appended at the end.
func (n *Node) ToggleClass(classes ...string) error {
	if !n.typ.hasAttributes() {
		return unsupportedOp("ToggleClass", n.typ)
	}
	tokens, err := validateClassArgs("ToggleClass", classes)
	if err != nil {
		return err
	}
	list := n.classList()
	for _, t := range tokens {
		found := -1
		for i, have := range list {
			if have == t {
				found = i
				break
			}
		}
		if found >= 0 {
			list = append(list[:found], list[found+1:]...)
		} else {
			list = append(list, t)
		}
	}
	n.storeClassList(list)
	return nil
}
