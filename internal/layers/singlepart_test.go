package layers

import (
	"testing"

	"github.com/merlinc16/emaildedup/internal/graph"
	"github.com/stretchr/testify/require"
)

func wsFromCounts(counts map[string]int) *WorkingSet {
	alias := map[string]string{}
	nodes := map[string]*graph.Node{}
	for id, c := range counts {
		alias[id] = id
		nodes[id] = &graph.Node{ID: id, Count: c}
	}
	return &WorkingSet{Alias: alias, NodesByID: nodes}
}

func TestSingleToFullNameMatchesUnambiguous(t *testing.T) {
	w := wsFromCounts(map[string]int{
		"doe@d.com":      1,
		"jane.doe@d.com": 10,
	})
	merges := SingleToFullNameMatches(w)
	require.Equal(t, "jane.doe@d.com", merges["doe@d.com"])
}

func TestSingleToFullNameMatchesAmbiguousNoDominance(t *testing.T) {
	w := wsFromCounts(map[string]int{
		"doe@d.com":      1,
		"jane.doe@d.com": 10,
		"john.doe@d.com": 8,
	})
	merges := SingleToFullNameMatches(w)
	_, merged := merges["doe@d.com"]
	require.False(t, merged)
}

func TestSingleToFullNameMatchesAmbiguousWithDominance(t *testing.T) {
	w := wsFromCounts(map[string]int{
		"doe@d.com":      1,
		"jane.doe@d.com": 100,
		"john.doe@d.com": 5,
	})
	merges := SingleToFullNameMatches(w)
	require.Equal(t, "jane.doe@d.com", merges["doe@d.com"])
}

func TestConcatenationMatchesSplitsSingleToken(t *testing.T) {
	w := wsFromCounts(map[string]int{
		"janedoe@y.com":  1,
		"jane.doe@y.com": 5,
	})
	merges := ConcatenationMatches(w)
	require.Equal(t, "jane.doe@y.com", merges["janedoe@y.com"])
}

func TestConcatenationMatchesAmbiguousSplitsNoMerge(t *testing.T) {
	w := wsFromCounts(map[string]int{
		"janedoe@y.com":  1,
		"jane.doe@y.com": 5,
		"jan.edoe@y.com": 3,
	})
	merges := ConcatenationMatches(w)
	_, merged := merges["janedoe@y.com"]
	require.False(t, merged)
}
