package virty_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jacoblockett/virty"
)

func TestXMLDecl(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		d := virty.NewXMLDecl()
		require.Equal(t, "1.0", d.Version())
		require.Equal(t, `<?xml version="1.0"?>`, d.String())
	})

	t.Run("AllFields", func(t *testing.T) {
		d := virty.NewXMLDecl()
		require.NoError(t, d.SetEncoding("utf-8"))
		require.NoError(t, d.SetStandalone("yes"))
		require.Equal(t, `<?xml version="1.0" encoding="utf-8" standalone="yes"?>`, d.String())

		d.RemoveEncoding()
		d.RemoveStandalone()
		require.Equal(t, `<?xml version="1.0"?>`, d.String())
	})

	t.Run("Validation", func(t *testing.T) {
		d := virty.NewXMLDecl()
		require.ErrorIs(t, d.SetVersion("  "), virty.ErrInvalidArgument)
		require.ErrorIs(t, d.SetEncoding(""), virty.ErrInvalidArgument)
		require.ErrorIs(t, d.SetEncoding("no-such-encoding"), virty.ErrInvalidArgument)
		require.ErrorIs(t, d.SetStandalone("maybe"), virty.ErrInvalidArgument)
		require.Equal(t, `<?xml version="1.0"?>`, d.String(), "failed setters leave the declaration untouched")
	})

	t.Run("KnownEncodings", func(t *testing.T) {
		d := virty.NewXMLDecl()
		for _, name := range []string{"utf-8", "iso-8859-2", "shift_jis", "euc-kr"} {
			require.NoError(t, d.SetEncoding(name), name)
		}
	})
}

func TestDoctypeDecl(t *testing.T) {
	t.Run("NameOnly", func(t *testing.T) {
		d, err := virty.NewDoctypeDecl("html")
		require.NoError(t, err)
		require.Equal(t, "<!DOCTYPE html>", d.String())
	})

	t.Run("EmptyNameRejected", func(t *testing.T) {
		_, err := virty.NewDoctypeDecl("  ")
		require.ErrorIs(t, err, virty.ErrInvalidArgument)
	})

	t.Run("Public", func(t *testing.T) {
		d, err := virty.NewDoctypeDecl("html")
		require.NoError(t, err)
		require.NoError(t, d.SetPublicID("-//W3C//DTD XHTML 1.0 Strict//EN"))
		require.NoError(t, d.SetSystemURI("http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd"))
		require.Equal(t,
			`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">`,
			d.String())
	})

	t.Run("System", func(t *testing.T) {
		d, err := virty.NewDoctypeDecl("note")
		require.NoError(t, err)
		require.NoError(t, d.SetSystemURI("note.dtd"))
		require.Equal(t, `<!DOCTYPE note SYSTEM "note.dtd">`, d.String())

		d.RemoveSystemURI()
		require.Equal(t, "<!DOCTYPE note>", d.String())
	})

	t.Run("InternalSubset", func(t *testing.T) {
		d, err := virty.NewDoctypeDecl("note")
		require.NoError(t, err)

		elem, err := virty.NewElementDecl("note", "(#PCDATA)")
		require.NoError(t, err)
		ent, err := virty.NewEntityDecl("author")
		require.NoError(t, err)
		ent.SetValue("ada")
		require.NoError(t, d.AppendDecl(elem, ent))

		require.Equal(t,
			`<!DOCTYPE note [<!ELEMENT note (#PCDATA)><!ENTITY author "ada">]>`,
			d.String())
		require.Len(t, d.InternalSubset(), 2)
	})

	t.Run("DuplicatesAccepted", func(t *testing.T) {
		// the internal subset is never validated for semantic consistency
		d, err := virty.NewDoctypeDecl("note")
		require.NoError(t, err)
		ent, err := virty.NewEntityDecl("dup")
		require.NoError(t, err)
		require.NoError(t, d.AppendDecl(ent, ent))
		require.Len(t, d.InternalSubset(), 2)
	})

	t.Run("NilDeclRejected", func(t *testing.T) {
		d, err := virty.NewDoctypeDecl("note")
		require.NoError(t, err)
		require.ErrorIs(t, d.AppendDecl(nil), virty.ErrInvalidArgument)
	})
}

func TestElementDecl(t *testing.T) {
	d, err := virty.NewElementDecl("p", "(#PCDATA)")
	require.NoError(t, err)
	require.Equal(t, "<!ELEMENT p (#PCDATA)>", d.String())

	require.NoError(t, d.SetContentSpec("EMPTY"))
	require.Equal(t, "<!ELEMENT p EMPTY>", d.String())

	_, err = virty.NewElementDecl("", "(#PCDATA)")
	require.ErrorIs(t, err, virty.ErrInvalidArgument)
	_, err = virty.NewElementDecl("p", " ")
	require.ErrorIs(t, err, virty.ErrInvalidArgument)
}

func TestAttlistDecl(t *testing.T) {
	t.Run("Keywords", func(t *testing.T) {
		d, err := virty.NewAttlistDecl("img")
		require.NoError(t, err)
		require.NoError(t, d.AddAttribute("src", virty.AttrCDATA, virty.AttrDefaultRequired, ""))
		require.NoError(t, d.AddAttribute("alt", virty.AttrCDATA, virty.AttrDefaultImplied, ""))
		require.NoError(t, d.AddAttribute("class", virty.AttrNMTokens, virty.AttrDefaultFixed, "photo"))

		require.Equal(t,
			`<!ATTLIST img src CDATA #REQUIRED alt CDATA #IMPLIED class NMTOKENS #FIXED "photo">`,
			d.String())
	})

	t.Run("PlainDefaultValue", func(t *testing.T) {
		d, err := virty.NewAttlistDecl("p")
		require.NoError(t, err)
		require.NoError(t, d.AddAttribute("lang", virty.AttrNMToken, virty.AttrDefaultNone, "en"))
		require.Equal(t, `<!ATTLIST p lang NMTOKEN "en">`, d.String())
	})

	t.Run("Enumeration", func(t *testing.T) {
		d, err := virty.NewAttlistDecl("task")
		require.NoError(t, err)
		require.NoError(t, d.AddEnumAttribute("state", []string{"open", "done"}, virty.AttrDefaultNone, "open"))
		require.Equal(t, `<!ATTLIST task state (open|done) "open">`, d.String())
	})

	t.Run("LastWriteWins", func(t *testing.T) {
		d, err := virty.NewAttlistDecl("p")
		require.NoError(t, err)
		require.NoError(t, d.AddAttribute("a", virty.AttrCDATA, virty.AttrDefaultImplied, ""))
		require.NoError(t, d.AddAttribute("b", virty.AttrCDATA, virty.AttrDefaultImplied, ""))
		require.NoError(t, d.AddAttribute("a", virty.AttrID, virty.AttrDefaultRequired, ""))

		require.Equal(t, []string{"a", "b"}, d.AttributeNames())
		require.Equal(t, `<!ATTLIST p a ID #REQUIRED b CDATA #IMPLIED>`, d.String())
	})

	t.Run("Validation", func(t *testing.T) {
		d, err := virty.NewAttlistDecl("p")
		require.NoError(t, err)
		require.ErrorIs(t, d.AddAttribute(" ", virty.AttrCDATA, virty.AttrDefaultNone, ""), virty.ErrInvalidArgument)
		require.ErrorIs(t, d.AddAttribute("a", virty.AttrInvalid, virty.AttrDefaultNone, ""), virty.ErrInvalidArgument)
		require.ErrorIs(t, d.AddAttribute("a", virty.AttrEnumeration, virty.AttrDefaultNone, ""), virty.ErrInvalidArgument)
		require.ErrorIs(t, d.AddEnumAttribute("a", nil, virty.AttrDefaultNone, ""), virty.ErrInvalidArgument)
	})
}

func TestEntityDecl(t *testing.T) {
	t.Run("Internal", func(t *testing.T) {
		d, err := virty.NewEntityDecl("copyright")
		require.NoError(t, err)
		d.SetValue("© 2024")

		require.True(t, d.IsInternal())
		require.False(t, d.IsExternal())
		require.Equal(t, `<!ENTITY copyright "© 2024">`, d.String())
	})

	t.Run("ValueEscaping", func(t *testing.T) {
		d, err := virty.NewEntityDecl("q")
		require.NoError(t, err)
		d.SetValue(`100% "done"`)
		require.Equal(t, `<!ENTITY q "100&#x25; &quot;done&quot;">`, d.String())
	})

	t.Run("ExternalSystem", func(t *testing.T) {
		d, err := virty.NewEntityDecl("chapter")
		require.NoError(t, err)
		require.NoError(t, d.SetSystemURI("chapter.xml"))

		require.False(t, d.IsInternal())
		require.True(t, d.IsExternal())
		require.Equal(t, `<!ENTITY chapter SYSTEM "chapter.xml">`, d.String())
	})

	t.Run("ExternalPublicWithNotation", func(t *testing.T) {
		d, err := virty.NewEntityDecl("logo")
		require.NoError(t, err)
		require.NoError(t, d.SetPublicID("-//EX//LOGO//EN"))
		require.NoError(t, d.SetSystemURI("logo.gif"))
		require.NoError(t, d.SetNotation("gif"))

		require.Equal(t, `<!ENTITY logo PUBLIC "-//EX//LOGO//EN" "logo.gif" NDATA gif>`, d.String())
	})

	t.Run("RemovingIDsMakesInternal", func(t *testing.T) {
		d, err := virty.NewEntityDecl("e")
		require.NoError(t, err)
		require.NoError(t, d.SetSystemURI("e.xml"))
		require.True(t, d.IsExternal())

		d.RemoveSystemURI()
		require.True(t, d.IsInternal())
	})

	t.Run("Validation", func(t *testing.T) {
		_, err := virty.NewEntityDecl(" ")
		require.ErrorIs(t, err, virty.ErrInvalidArgument)

		d, err := virty.NewEntityDecl("e")
		require.NoError(t, err)
		require.ErrorIs(t, d.SetPublicID(""), virty.ErrInvalidArgument)
		require.ErrorIs(t, d.SetSystemURI(" "), virty.ErrInvalidArgument)
		require.ErrorIs(t, d.SetNotation(""), virty.ErrInvalidArgument)
	})
}
