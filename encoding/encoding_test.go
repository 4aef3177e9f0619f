package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jacoblockett/virty/encoding"
)

func TestLoad(t *testing.T) {
	for _, name := range []string{"utf-8", "UTF-8", "iso-8859-2", "shift_jis", "euc-kr", "big5"} {
		require.NotNil(t, encoding.Load(name), name)
	}
	require.Nil(t, encoding.Load("no-such-encoding"))
}

func TestSupported(t *testing.T) {
	require.True(t, encoding.Supported("utf-8"))
	require.False(t, encoding.Supported(""))
}

func TestCanonical(t *testing.T) {
	name, err := encoding.Canonical("UTF-8")
	require.NoError(t, err)
	require.Equal(t, "utf-8", name)

	_, err = encoding.Canonical("bogus")
	require.Error(t, err)
}
