package layers

import (
	"testing"

	"github.com/merlinc16/emaildedup/internal/graph"
	"github.com/stretchr/testify/require"
)

func TestMergeNodesSumsCountersAndUnionsYears(t *testing.T) {
	nodesByID := map[string]*graph.Node{
		"jane.doe@example.com": {ID: "jane.doe@example.com", Name: "Jane Doe", Domain: "example.com", Sent: 3, Received: 1, Count: 4, Years: []int{1999}},
		"jdoe@example.com":     {ID: "jdoe@example.com", Name: "J Doe", Domain: "example.com", Sent: 1, Received: 2, Count: 3, Years: []int{2000, 1999}},
	}
	bestIDGroups := map[string][]string{
		"jane.doe@example.com": {"jane.doe@example.com", "jdoe@example.com"},
	}

	merged := MergeNodes(bestIDGroups, nodesByID)
	require.Len(t, merged, 1)
	n := merged[0]
	require.Equal(t, "jane.doe@example.com", n.ID)
	require.Equal(t, 4, n.Sent)
	require.Equal(t, 3, n.Received)
	require.Equal(t, 7, n.Count)
	require.Equal(t, []int{1999, 2000}, n.Years)
	require.Equal(t, []string{"jane.doe@example.com", "jdoe@example.com"}, n.Aliases)
}

func TestMergeNodesFallbackWhenBestIDIsCleanedForm(t *testing.T) {
	// The winning raw id carries an OCR digit, so the display-cleaned best
	// id is not a key in nodesByID; the representative must be re-picked
	// by score, not taken from whatever member happens to come first.
	nodesByID := map[string]*graph.Node{
		"jane.d0e@x.com": {ID: "jane.d0e@x.com", Name: "Jane Doe", Domain: "x.com", Count: 10},
		"jane.doe@y.com": {ID: "jane.doe@y.com", Name: "J Doe", Domain: "y.com", Count: 2},
	}
	bestIDGroups := map[string][]string{
		"jane.doe@x.com": {"jane.doe@y.com", "jane.d0e@x.com"},
	}

	merged := MergeNodes(bestIDGroups, nodesByID)
	require.Len(t, merged, 1)
	n := merged[0]
	require.Equal(t, "jane.doe@x.com", n.ID)
	require.Equal(t, "x.com", n.Domain)
	require.Equal(t, 12, n.Count)
	require.Equal(t, []string{"jane.d0e@x.com", "jane.doe@y.com"}, n.Aliases)
}

func TestMergeEdgesAggregatesAfterRemap(t *testing.T) {
	edges := []graph.Edge{
		{Source: "jdoe@epa.gov", Target: "alice@epa.gov", Weight: 2, Years: []int{2001}},
		{Source: "jane.doe@epa.gov", Target: "alice@epa.gov", Weight: 3, Years: []int{2002}},
	}
	remap := map[string]string{"jdoe@epa.gov": "jane.doe@epa.gov"}

	merged := MergeEdges(edges, remap)
	require.Len(t, merged, 1)
	require.Equal(t, "jane.doe@epa.gov", merged[0].Source)
	require.Equal(t, "alice@epa.gov", merged[0].Target)
	require.Equal(t, 5, merged[0].Weight)
	require.Equal(t, []int{2001, 2002}, merged[0].Years)
}

func TestMergeEdgesDropsActualSelfLoop(t *testing.T) {
	edges := []graph.Edge{
		{Source: "a@x.com", Target: "b@x.com", Weight: 1},
	}
	remap := map[string]string{"a@x.com": "same@x.com", "b@x.com": "same@x.com"}

	merged := MergeEdges(edges, remap)
	require.Empty(t, merged)
}

func TestDisplayIDAppliesDomainNormalizationAndConservativeOCR(t *testing.T) {
	require.Equal(t, "there@epa.gov", DisplayID("th3re@epa.qov"))
}

func TestRecomputeStatsTopDomains(t *testing.T) {
	nodes := []graph.Node{
		{ID: "a@epa.gov", Domain: "epa.gov"},
		{ID: "b@epa.gov", Domain: "epa.gov"},
		{ID: "c@example.com", Domain: "example.com"},
	}
	stats := RecomputeStats(nodes, nil)
	require.Equal(t, 3, stats.Nodes)
	require.Equal(t, 0, stats.Edges)
	require.Equal(t, "epa.gov", stats.TopDomains[0].Domain)
	require.Equal(t, 2, stats.TopDomains[0].Count)
}
