package unionfind

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnionFindGroupsByRepresentative(t *testing.T) {
	uf := New()
	uf.Add("a", 1)
	uf.Add("b", 5)
	uf.Add("c", 1)
	uf.Union("a", "b")
	uf.Union("b", "c")

	require.Equal(t, uf.Find("a"), uf.Find("c"))

	groups := uf.Groups()
	require.Len(t, groups, 1)
	for _, members := range groups {
		require.Len(t, members, 3)
	}
}

func TestUnionFindKeepsSeparateGroupsApart(t *testing.T) {
	uf := New()
	uf.Add("a", 1)
	uf.Add("b", 1)
	uf.Add("c", 1)
	uf.Union("a", "b")

	require.NotEqual(t, uf.Find("a"), uf.Find("c"))
	require.Len(t, uf.Groups(), 2)
}

func TestUnionFindPathCompressionStable(t *testing.T) {
	uf := New()
	for _, x := range []string{"a", "b", "c", "d"} {
		uf.Add(x, 1)
	}
	uf.Union("a", "b")
	uf.Union("b", "c")
	uf.Union("c", "d")

	root := uf.Find("a")
	for _, x := range []string{"a", "b", "c", "d"} {
		require.Equal(t, root, uf.Find(x))
	}
}
