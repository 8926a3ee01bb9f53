package layers

import (
	"testing"

	"github.com/merlinc16/emaildedup/internal/graph"
	"github.com/stretchr/testify/require"
)

type namedCount struct {
	name  string
	count int
}

func wsFromNamedCounts(entries map[string]namedCount) *WorkingSet {
	alias := map[string]string{}
	nodes := map[string]*graph.Node{}
	for id, e := range entries {
		alias[id] = id
		nodes[id] = &graph.Node{ID: id, Name: e.name, Count: e.count}
	}
	return &WorkingSet{Alias: alias, NodesByID: nodes}
}

func TestSameNameMergeStrategy1SameDomainSameName(t *testing.T) {
	w := wsFromNamedCounts(map[string]namedCount{
		"abcdef@x.com": {"Jane Doe", 5},
		"zyxwvu@x.com": {"Jane Doe", 50},
	})
	merges := SameNameMerge(w)
	require.Equal(t, "zyxwvu@x.com", merges["abcdef@x.com"])
}

func TestSameNameMergeStrategy1bSameLocalSimilarDomain(t *testing.T) {
	w := wsFromNamedCounts(map[string]namedCount{
		"johnsmith@aaa.com": {"", 10},
		"johnsmith@aab.com": {"", 50},
	})
	merges := SameNameMerge(w)
	require.Equal(t, "johnsmith@aab.com", merges["johnsmith@aaa.com"])
}

func TestSameNameMergeLeavesUnrelatedNodesAlone(t *testing.T) {
	w := wsFromNamedCounts(map[string]namedCount{
		"alice.cooper@x.com": {"Alice Cooper", 5},
		"bob.marley@y.com":   {"Bob Marley", 5},
	})
	merges := SameNameMerge(w)
	require.Empty(t, merges)
}
