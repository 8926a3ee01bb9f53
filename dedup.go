// Package emaildedup collapses OCR-corrupted email-address node ids in a
// correspondence graph snapshot into canonical person identities, re-points
// and re-aggregates edges through the resulting alias map, and recomputes
// top-level statistics. See internal/layers for the seven ordered
// normalization/clustering passes this orchestrates.
package emaildedup

import (
	"sort"

	"github.com/merlinc16/emaildedup/internal/graph"
	"github.com/merlinc16/emaildedup/internal/layers"
	"github.com/merlinc16/emaildedup/internal/rules"
)

// Options configures one pipeline run.
type Options struct {
	// NoFuzzy disables Layer 4 (fuzzy intra-domain clustering) only.
	NoFuzzy bool
	// RulesOverlay, when non-nil, adds extra domain_fixes/email_fixes
	// entries on top of the fixed tables for this run only.
	RulesOverlay *rules.Overlay
}

// LayerStat is one entry of the per-layer change-count report.
type LayerStat struct {
	Name    string
	Changes int
}

// MergeGroupMember is one raw id absorbed into a surviving node, carrying
// the input node's display name and activity count for the report.
type MergeGroupMember struct {
	ID    string
	Name  string
	Count int
}

// MergeGroup is one surviving node's membership, used by --report.
type MergeGroup struct {
	BestID  string
	Members []MergeGroupMember
}

// Result is everything a driver needs to render console output and decide
// what to write.
type Result struct {
	Snapshot        *graph.Snapshot
	LayerStats      []LayerStat
	MergeGroups     []MergeGroup
	InvariantChecks []graph.InvariantCheck
}

// Run executes the full seven-layer pipeline against snap and returns the
// merged output graph plus per-layer statistics. It never mutates snap.
func Run(snap *graph.Snapshot, opts Options) *Result {
	if opts.RulesOverlay != nil {
		restore := applyOverlay(opts.RulesOverlay)
		defer restore()
	}

	nodesByID := make(map[string]*graph.Node, len(snap.Nodes))
	for i := range snap.Nodes {
		n := &snap.Nodes[i]
		nodesByID[n.ID] = n
	}

	w := &layers.WorkingSet{
		Alias:     make(map[string]string, len(nodesByID)),
		NodesByID: nodesByID,
	}
	for id := range nodesByID {
		w.Alias[id] = id
	}

	var stats []LayerStat

	changes := 0
	for id := range w.Alias {
		cleaned := layers.StructuralCleanup(id)
		if cleaned != id {
			w.Alias[id] = cleaned
			changes++
		}
	}
	stats = append(stats, LayerStat{"Layer 1: Structural Cleanup", changes})

	changes = 0
	for id, current := range w.Alias {
		normalized := layers.ApplyDomainNormalization(current)
		if normalized != current {
			w.Alias[id] = normalized
			changes++
		}
	}
	stats = append(stats, LayerStat{"Layer 2: Domain Normalization", changes})

	changes = 0
	for id, current := range w.Alias {
		fixed := layers.ApplyLocalOCRNormalization(current)
		if fixed != current {
			w.Alias[id] = fixed
			changes++
		}
	}
	stats = append(stats, LayerStat{"Layer 3: Local-Part OCR Normalization", changes})

	origByCanonical := map[string]string{}
	for id, canon := range w.Alias {
		if prev, ok := origByCanonical[canon]; !ok || id < prev {
			origByCanonical[canon] = id
		}
	}
	cleanFn := func(rawID string) string {
		return layers.ApplyDomainNormalization(layers.StructuralCleanup(rawID))
	}
	joinMerges := layers.SplitJoinMatches(w.CanonicalsInUse(), origByCanonical, cleanFn)
	stats = append(stats, LayerStat{"Layer 3b: Join Split Locals", w.ApplyMerges(joinMerges)})

	prefixMerges := layers.PrefixSuffixStripMatches(w.CanonicalsInUse())
	stats = append(stats, LayerStat{"Layer 3c: Prefix Stripping", w.ApplyMerges(prefixMerges)})

	fuzzyMerges := layers.FuzzyMatchGroups(w, opts.NoFuzzy)
	stats = append(stats, LayerStat{"Layer 4: Fuzzy Edit-Distance", w.ApplyMerges(fuzzyMerges)})

	singleMerges := layers.SingleToFullNameMatches(w)
	stats = append(stats, LayerStat{"Layer 5: Single-Part to Full-Name", w.ApplyMerges(singleMerges)})

	concatMerges := layers.ConcatenationMatches(w)
	stats = append(stats, LayerStat{"Layer 6: Concatenation Matching", w.ApplyMerges(concatMerges)})

	sameNameMerges := layers.SameNameMerge(w)
	stats = append(stats, LayerStat{"Layer 7: Same-Name Merge", w.ApplyMerges(sameNameMerges)})

	canonicalGroups := map[string][]string{}
	for id, canon := range w.Alias {
		canonicalGroups[canon] = append(canonicalGroups[canon], id)
	}

	bestIDGroups := map[string][]string{}
	for _, originalIDs := range canonicalGroups {
		var groupNodes []*graph.Node
		for _, oid := range originalIDs {
			if n, ok := nodesByID[oid]; ok {
				groupNodes = append(groupNodes, n)
			}
		}
		if len(groupNodes) == 0 {
			continue
		}
		bestNode := layers.ChooseCanonicalNode(groupNodes)
		bestID := layers.DisplayID(bestNode.ID)
		bestIDGroups[bestID] = append(bestIDGroups[bestID], originalIDs...)
	}

	remap := map[string]string{}
	for bestID, ids := range bestIDGroups {
		for _, id := range ids {
			remap[id] = bestID
		}
	}

	mergedNodes := layers.MergeNodes(bestIDGroups, nodesByID)
	mergedEdges := layers.MergeEdges(snap.Edges, remap)
	recomputedStats := layers.RecomputeStats(mergedNodes, mergedEdges)

	out := &graph.Snapshot{Stats: recomputedStats, Nodes: mergedNodes, Edges: mergedEdges}

	origTotalCount := 0
	for _, n := range snap.Nodes {
		origTotalCount += n.Count
	}
	invariants := graph.CheckInvariants(origTotalCount, out)

	var groups []MergeGroup
	for bestID, ids := range bestIDGroups {
		if len(ids) <= 1 {
			continue
		}
		sortedIDs := append([]string(nil), ids...)
		sort.Strings(sortedIDs)
		members := make([]MergeGroupMember, 0, len(sortedIDs))
		for _, id := range sortedIDs {
			m := MergeGroupMember{ID: id}
			if n, ok := nodesByID[id]; ok {
				m.Name = n.Name
				m.Count = n.Count
			}
			members = append(members, m)
		}
		groups = append(groups, MergeGroup{BestID: bestID, Members: members})
	}

	return &Result{Snapshot: out, LayerStats: stats, MergeGroups: groups, InvariantChecks: invariants}
}

// applyOverlay swaps in the overlay-merged tables and returns a closure that
// restores the originals, so a Run call never leaks state into the next one
// in the same process (tests run several Options in sequence).
func applyOverlay(ov *rules.Overlay) func() {
	origDomainFixes, origEmailFixes := rules.DomainFixes, rules.EmailFixes
	rules.DomainFixes = rules.MergedDomainFixes(ov)
	rules.EmailFixes = rules.MergedEmailFixes(ov)
	return func() {
		rules.DomainFixes = origDomainFixes
		rules.EmailFixes = origEmailFixes
	}
}
