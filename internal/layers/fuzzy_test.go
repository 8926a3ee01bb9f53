package layers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFuzzyMatchGroupsMergesCloseLocalsWithinDomain(t *testing.T) {
	w := wsFromCounts(map[string]int{
		"doe.jane@x.com":  10,
		"doe.janet@x.com": 2,
	})
	merges := FuzzyMatchGroups(w, false)
	require.Equal(t, "doe.jane@x.com", merges["doe.janet@x.com"])
}

func TestFuzzyMatchGroupsIgnoresOtherDomains(t *testing.T) {
	w := wsFromCounts(map[string]int{
		"doe.jane@x.com":  10,
		"doe.janet@y.com": 2,
	})
	merges := FuzzyMatchGroups(w, false)
	require.Empty(t, merges)
}

func TestFuzzyMatchGroupsNameGateAtBoundary(t *testing.T) {
	// Distance equals the threshold, no shared local token: the display
	// names decide.
	rejected := wsFromNamedCounts(map[string]namedCount{
		"jane.doe@x.com": {"Jane Doe", 5},
		"jwne.dxe@x.com": {"Bob Smith", 3},
	})
	require.Empty(t, FuzzyMatchGroups(rejected, false))

	accepted := wsFromNamedCounts(map[string]namedCount{
		"jane.doe@x.com": {"Jane Doe", 5},
		"jwne.dxe@x.com": {"Jane Doe", 3},
	})
	merges := FuzzyMatchGroups(accepted, false)
	require.Equal(t, "jane.doe@x.com", merges["jwne.dxe@x.com"])
}

func TestFuzzyMatchGroupsTrafficGateBlocksHighVolumePair(t *testing.T) {
	w := wsFromNamedCounts(map[string]namedCount{
		"smith.john@epa.gov": {"John Smith", 200},
		"smith.jon@epa.gov":  {"Jon Smythe", 200},
	})
	require.Empty(t, FuzzyMatchGroups(w, false))
}

func TestFuzzyMatchGroupsSkipDisablesLayer(t *testing.T) {
	w := wsFromCounts(map[string]int{
		"doe.jane@x.com":  10,
		"doe.janet@x.com": 2,
	})
	require.Empty(t, FuzzyMatchGroups(w, true))
}
