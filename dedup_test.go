package emaildedup

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merlinc16/emaildedup/internal/graph"
)

func findNode(t *testing.T, nodes []graph.Node, id string) *graph.Node {
	t.Helper()
	for i := range nodes {
		if nodes[i].ID == id {
			return &nodes[i]
		}
	}
	t.Fatalf("no output node with id %q among %d nodes", id, len(nodes))
	return nil
}

func TestRunEPAReordering(t *testing.T) {
	snap := &graph.Snapshot{
		Nodes: []graph.Node{
			{ID: "pruitt.scott@epa.gov", Count: 10},
			{ID: "scott.pruitt@epa.gov", Count: 4, Name: "Scott Pruitt"},
		},
	}

	result := Run(snap, Options{})

	require.Len(t, result.Snapshot.Nodes, 1)
	n := result.Snapshot.Nodes[0]
	require.Equal(t, 14, n.Count)
	require.Equal(t, []string{"pruitt.scott@epa.gov", "scott.pruitt@epa.gov"}, n.Aliases)
	require.Equal(t, "Scott Pruitt", n.Name)

	require.Len(t, result.MergeGroups, 1)
	g := result.MergeGroups[0]
	require.Equal(t, "pruitt.scott@epa.gov", g.BestID)
	require.Equal(t, []MergeGroupMember{
		{ID: "pruitt.scott@epa.gov", Count: 10},
		{ID: "scott.pruitt@epa.gov", Name: "Scott Pruitt", Count: 4},
	}, g.Members)
}

func TestRunDomainOCRMerge(t *testing.T) {
	snap := &graph.Snapshot{
		Nodes: []graph.Node{
			{ID: "bennett.tate@epa.govl", Count: 3},
			{ID: "bennett.tate@epa.gov", Count: 7},
		},
	}

	result := Run(snap, Options{})

	require.Len(t, result.Snapshot.Nodes, 1)
	n := result.Snapshot.Nodes[0]
	require.Equal(t, "bennett.tate@epa.gov", n.ID)
	require.Equal(t, 10, n.Count)
}

func TestRunSplitLocalRejoin(t *testing.T) {
	snap := &graph.Snapshot{
		Nodes: []graph.Node{
			{ID: "hupp.sydney@epa.gov", Count: 20},
			{ID: "syd.ney.hupp@epa.gov", Count: 2},
		},
	}

	result := Run(snap, Options{})

	require.Len(t, result.Snapshot.Nodes, 1)
	n := result.Snapshot.Nodes[0]
	require.Equal(t, "hupp.sydney@epa.gov", n.ID)
	require.Equal(t, 22, n.Count)
}

func TestRunConcatenationMatch(t *testing.T) {
	snap := &graph.Snapshot{
		Nodes: []graph.Node{
			{ID: "bennett.tate@acme.com", Count: 50},
			{ID: "bennetttate@acme.com", Count: 1},
		},
	}

	result := Run(snap, Options{})

	require.Len(t, result.Snapshot.Nodes, 1)
	n := result.Snapshot.Nodes[0]
	require.Equal(t, "bennett.tate@acme.com", n.ID)
	require.Equal(t, 51, n.Count)
}

func TestRunCrossDomainSameNameMerge(t *testing.T) {
	snap := &graph.Snapshot{
		Nodes: []graph.Node{
			{ID: "jsmith@acme.com", Name: "J. Smith", Count: 5},
			{ID: "jsmith@acrne.com", Name: "J. Smith", Count: 2},
		},
		Edges: []graph.Edge{
			{Source: "jsmith@acme.com", Target: "jsmith@acrne.com", Weight: 1},
		},
	}

	result := Run(snap, Options{})

	require.Len(t, result.Snapshot.Nodes, 1)
	n := result.Snapshot.Nodes[0]
	require.Equal(t, 7, n.Count)

	for _, e := range result.Snapshot.Edges {
		require.NotEqual(t, e.Source, e.Target, "no self-loop should survive re-pointing")
	}
	for _, c := range result.InvariantChecks {
		if c.Message == "No self-loops" {
			require.True(t, c.OK)
		}
	}
}

func TestRunTrafficGateBlocksOverMerge(t *testing.T) {
	snap := &graph.Snapshot{
		Nodes: []graph.Node{
			{ID: "smith.john@epa.gov", Name: "John Smith", Count: 200},
			{ID: "smith.jon@epa.gov", Name: "Jon Smythe", Count: 200},
		},
	}

	result := Run(snap, Options{})

	require.Len(t, result.Snapshot.Nodes, 2, "high-traffic distinct people must not be merged")
	findNode(t, result.Snapshot.Nodes, "smith.john@epa.gov")
	findNode(t, result.Snapshot.Nodes, "smith.jon@epa.gov")
}

func TestRunConservesCountAndReportsInvariants(t *testing.T) {
	snap := &graph.Snapshot{
		Nodes: []graph.Node{
			{ID: "pruitt.scott@epa.gov", Count: 10},
			{ID: "scott.pruitt@epa.gov", Count: 4, Name: "Scott Pruitt"},
			{ID: "other.person@acme.com", Count: 6, Name: "Other Person"},
		},
		Edges: []graph.Edge{
			{Source: "pruitt.scott@epa.gov", Target: "other.person@acme.com", Weight: 3, Years: []int{2011}},
			{Source: "scott.pruitt@epa.gov", Target: "other.person@acme.com", Weight: 1, Years: []int{2012}},
		},
	}

	result := Run(snap, Options{})

	total := 0
	for _, n := range result.Snapshot.Nodes {
		total += n.Count
	}
	require.Equal(t, 20, total)

	for _, c := range result.InvariantChecks {
		require.True(t, c.OK, "unexpected invariant violation: %s", c.Message)
	}

	merged := findNode(t, result.Snapshot.Nodes, "pruitt.scott@epa.gov")
	var edgeToOther *graph.Edge
	for i := range result.Snapshot.Edges {
		if result.Snapshot.Edges[i].Source == merged.ID && result.Snapshot.Edges[i].Target == "other.person@acme.com" {
			edgeToOther = &result.Snapshot.Edges[i]
		}
	}
	require.NotNil(t, edgeToOther)
	require.Equal(t, 4, edgeToOther.Weight)
	require.Equal(t, []int{2011, 2012}, edgeToOther.Years)
}

func TestRunIsOrderInsensitiveToInputShuffle(t *testing.T) {
	nodesA := []graph.Node{
		{ID: "pruitt.scott@epa.gov", Count: 10},
		{ID: "scott.pruitt@epa.gov", Count: 4, Name: "Scott Pruitt"},
		{ID: "other.person@acme.com", Count: 6, Name: "Other Person"},
	}
	nodesB := []graph.Node{nodesA[2], nodesA[0], nodesA[1]}

	resultA := Run(&graph.Snapshot{Nodes: nodesA}, Options{})
	resultB := Run(&graph.Snapshot{Nodes: nodesB}, Options{})

	encodedA, err := graph.Encode(resultA.Snapshot)
	require.NoError(t, err)
	encodedB, err := graph.Encode(resultB.Snapshot)
	require.NoError(t, err)
	require.JSONEq(t, string(encodedA), string(encodedB))
}

func TestRunIsIdempotentOnRepeatedInvocation(t *testing.T) {
	snap := &graph.Snapshot{
		Nodes: []graph.Node{
			{ID: "pruitt.scott@epa.gov", Count: 10},
			{ID: "scott.pruitt@epa.gov", Count: 4, Name: "Scott Pruitt"},
			{ID: "other.person@acme.com", Count: 6, Name: "Other Person"},
		},
		Edges: []graph.Edge{
			{Source: "pruitt.scott@epa.gov", Target: "other.person@acme.com", Weight: 3, Years: []int{2011}},
		},
	}

	first := Run(snap, Options{})
	encodedFirst, err := graph.Encode(first.Snapshot)
	require.NoError(t, err)

	second := Run(snap, Options{})
	encodedSecond, err := graph.Encode(second.Snapshot)
	require.NoError(t, err)

	require.JSONEq(t, string(encodedFirst), string(encodedSecond), "running the same input twice must produce byte-stable output")
}
