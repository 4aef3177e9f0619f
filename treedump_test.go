package virty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jacoblockett/virty"
)

func TestDumpTree(t *testing.T) {
	span := virty.NewElement("span")
	require.NoError(t, span.AppendChild(virty.NewText("hi")))
	div := virty.NewElement("div")
	require.NoError(t, div.AddAttribute("id", "main"))
	require.NoError(t, div.AppendChild(span, virty.NewComment("note")))

	var sb strings.Builder
	require.NoError(t, virty.DumpTree(&sb, div))

	out := sb.String()
	require.Contains(t, out, "Element div")
	require.Contains(t, out, "Element span")
	require.Contains(t, out, `Text "hi"`)
	require.Contains(t, out, `Comment "note"`)
}
