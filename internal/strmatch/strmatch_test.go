package strmatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshteinBasics(t *testing.T) {
	require.Equal(t, 0, Levenshtein("smith", "smith"))
	require.Equal(t, 1, Levenshtein("smith", "smiths"))
	require.Equal(t, 3, Levenshtein("kitten", "sitting"))
}

func TestJaroWinklerIdentical(t *testing.T) {
	require.Equal(t, 1.0, JaroWinkler("john smith", "john smith"))
}

func TestJaroWinklerEmpty(t *testing.T) {
	require.Equal(t, 0.0, JaroWinkler("", "anything"))
	require.Equal(t, 0.0, JaroWinkler("anything", ""))
}

func TestJaroWinklerCommonPrefixBoost(t *testing.T) {
	// Shared leading characters should score higher than a reordering of
	// the same letters with no common prefix.
	prefixShared := JaroWinkler("martha", "marhta")
	noPrefixShared := JaroWinkler("martha", "ahtram")
	require.Greater(t, prefixShared, noPrefixShared)
	require.Greater(t, prefixShared, 0.9)
}
