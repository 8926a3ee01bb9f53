package layers

import (
	"testing"

	"github.com/merlinc16/emaildedup/internal/graph"
	"github.com/stretchr/testify/require"
)

func TestChooseCanonicalNodePrefersHigherCount(t *testing.T) {
	low := &graph.Node{ID: "a@x.com", Count: 1, Domain: "x.com"}
	high := &graph.Node{ID: "b@x.com", Count: 50, Domain: "x.com"}
	best := ChooseCanonicalNode([]*graph.Node{low, high})
	require.Same(t, high, best)
}

func TestChooseCanonicalNodePrefersCleanDomainOnTie(t *testing.T) {
	garbled := &graph.Node{ID: "a@ep3.gov", Count: 5, Domain: "ep3.gov"}
	clean := &graph.Node{ID: "b@epa.gov", Count: 5, Domain: "epa.gov"}
	best := ChooseCanonicalNode([]*graph.Node{garbled, clean})
	require.Same(t, clean, best)
}

func TestSplitInitialNameSplitsConcatenatedInitial(t *testing.T) {
	require.Equal(t, "J. Green", SplitInitialName("Jgreen"))
}

func TestSplitInitialNameRejectsRoleNoun(t *testing.T) {
	require.Equal(t, "", SplitInitialName("Congress"))
}

func TestSplitInitialNameRejectsShortName(t *testing.T) {
	require.Equal(t, "", SplitInitialName("Jo"))
}

func TestNameFromEmailSynthesizesFromMultiTokenLocal(t *testing.T) {
	require.Equal(t, "Jane Doe", NameFromEmail("jane.doe@x.com"))
}

func TestNameFromEmailSplitsSingleConcatenatedToken(t *testing.T) {
	require.Equal(t, "J. Green", NameFromEmail("jgreen@x.com"))
}

func TestFixNameOrderFlipsForLastnameFirstDomain(t *testing.T) {
	got := FixNameOrder("Smith Jane", "smith.jane@epa.gov", "epa.gov")
	require.Equal(t, "Jane Smith", got)
}

func TestFixNameOrderLeavesOtherDomainsAlone(t *testing.T) {
	got := FixNameOrder("Smith Jane", "smith.jane@example.com", "example.com")
	require.Equal(t, "Smith Jane", got)
}

func TestBestDisplayNamePicksMostFrequentQualityName(t *testing.T) {
	nodes := []*graph.Node{
		{ID: "a@x.com", Name: "J Doe", Count: 1},
		{ID: "b@x.com", Name: "Jane Doe", Count: 20},
	}
	require.Equal(t, "Jane Doe", BestDisplayName(nodes))
}
