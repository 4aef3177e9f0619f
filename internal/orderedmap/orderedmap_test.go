package orderedmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jacoblockett/virty/internal/orderedmap"
)

func TestMap(t *testing.T) {
	t.Run("InsertionOrder", func(t *testing.T) {
		m := orderedmap.New[string, int]()
		m.Set("c", 3)
		m.Set("a", 1)
		m.Set("b", 2)

		require.Equal(t, []string{"c", "a", "b"}, m.Keys())
		require.Equal(t, 3, m.Len())
	})

	t.Run("OverwriteKeepsPosition", func(t *testing.T) {
		m := orderedmap.New[string, int]()
		m.Set("a", 1)
		m.Set("b", 2)
		m.Set("a", 10)

		require.Equal(t, []string{"a", "b"}, m.Keys())
		v, ok := m.Get("a")
		require.True(t, ok)
		require.Equal(t, 10, v)
	})

	t.Run("Delete", func(t *testing.T) {
		m := orderedmap.New[string, int]()
		m.Set("a", 1)
		m.Set("b", 2)

		require.True(t, m.Delete("a"))
		require.False(t, m.Delete("a"))
		require.Equal(t, []string{"b"}, m.Keys())
		require.False(t, m.Has("a"))
	})

	t.Run("Range", func(t *testing.T) {
		m := orderedmap.New[string, int]()
		m.Set("x", 1)
		m.Set("y", 2)

		var keys []string
		var vals []int
		for k, v := range m.Range() {
			keys = append(keys, k)
			vals = append(vals, v)
		}
		require.Equal(t, []string{"x", "y"}, keys)
		require.Equal(t, []int{1, 2}, vals)
	})

	t.Run("Clear", func(t *testing.T) {
		m := orderedmap.New[string, int]()
		m.Set("a", 1)
		m.Clear()
		require.Equal(t, 0, m.Len())
		require.False(t, m.Has("a"))
	})
}
