package layers

import (
	"sort"
	"strings"

	sliceutil "github.com/projectdiscovery/utils/slice"

	"github.com/merlinc16/emaildedup/internal/graph"
)

// MergeNodes collapses each best-id group into one output node: summed
// counters, unioned years, max domain_count, sorted aliases, and a display
// name/id resolved via the canonical-name and display-id scoring rules.
func MergeNodes(bestIDGroups map[string][]string, nodesByID map[string]*graph.Node) []graph.Node {
	merged := make([]graph.Node, 0, len(bestIDGroups))
	for bestID, originalIDs := range bestIDGroups {
		sortedIDs := append([]string(nil), originalIDs...)
		sort.Strings(sortedIDs)
		var groupNodes []*graph.Node
		for _, oid := range sortedIDs {
			if n, ok := nodesByID[oid]; ok {
				groupNodes = append(groupNodes, n)
			}
		}
		if len(groupNodes) == 0 {
			continue
		}
		bestNode, ok := nodesByID[bestID]
		if !ok {
			// bestID is the display-cleaned form of the winner, not a
			// literal raw id; re-pick the representative among the members.
			bestNode = ChooseCanonicalNode(groupNodes)
		}

		name := BestDisplayName(groupNodes)

		totalSent, totalReceived, totalCount := 0, 0, 0
		var allYears []int
		maxDomainCount := 0
		for _, n := range groupNodes {
			totalSent += n.Sent
			totalReceived += n.Received
			totalCount += n.Count
			allYears = append(allYears, n.Years...)
			if n.DomainCount > maxDomainCount {
				maxDomainCount = n.DomainCount
			}
		}

		domain := NormalizeDomain(bestNode.Domain)
		finalName := name
		if finalName == "" {
			finalName = bestNode.Name
		}
		if finalName == "" {
			finalName = NameFromEmail(bestID)
		}
		if split := SplitInitialName(finalName); split != "" {
			finalName = split
		}
		finalName = FixNameOrder(finalName, bestID, domain)

		aliases := sliceutil.Dedupe(sortedIDs)

		years := sliceutil.Dedupe(allYears)
		sort.Ints(years)

		merged = append(merged, graph.Node{
			ID:          bestID,
			Name:        finalName,
			Domain:      domain,
			Sent:        totalSent,
			Received:    totalReceived,
			Count:       totalCount,
			Years:       years,
			DomainCount: maxDomainCount,
			Aliases:     aliases,
		})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].ID < merged[j].ID })
	return merged
}

// MergeEdges remaps every edge's endpoints through remap, drops any
// resulting self-loop, and aggregates by (source, target) summing weight
// and unioning years/doc_ids.
func MergeEdges(edges []graph.Edge, remap map[string]string) []graph.Edge {
	type key struct{ src, tgt string }
	type agg struct {
		weight int
		years  []int
		docIDs []string
	}
	table := map[key]*agg{}

	for _, e := range edges {
		src := remapOr(remap, e.Source)
		tgt := remapOr(remap, e.Target)
		if src == tgt {
			continue
		}
		k := key{src, tgt}
		a, ok := table[k]
		if !ok {
			a = &agg{}
			table[k] = a
		}
		a.weight += e.Weight
		a.years = append(a.years, e.Years...)
		a.docIDs = append(a.docIDs, e.DocIDs...)
	}

	order := make([]key, 0, len(table))
	for k := range table {
		order = append(order, k)
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].src != order[j].src {
			return order[i].src < order[j].src
		}
		return order[i].tgt < order[j].tgt
	})

	out := make([]graph.Edge, 0, len(order))
	for _, k := range order {
		a := table[k]
		years := sliceutil.Dedupe(a.years)
		sort.Ints(years)
		docIDs := sliceutil.Dedupe(a.docIDs)
		sort.Strings(docIDs)
		out = append(out, graph.Edge{
			Source: k.src,
			Target: k.tgt,
			Weight: a.weight,
			Years:  years,
			DocIDs: docIDs,
		})
	}
	return out
}

func remapOr(remap map[string]string, id string) string {
	if r, ok := remap[id]; ok {
		return r
	}
	return id
}

// RecomputeStats derives stats.nodes/edges/top_domains (top 50 by count)
// from the merged output.
func RecomputeStats(nodes []graph.Node, edges []graph.Edge) graph.Stats {
	counts := map[string]int{}
	for _, n := range nodes {
		if n.Domain != "" {
			counts[n.Domain]++
		}
	}
	type dc struct {
		domain string
		count  int
	}
	all := make([]dc, 0, len(counts))
	for d, c := range counts {
		all = append(all, dc{d, c})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].domain < all[j].domain
	})
	if len(all) > 50 {
		all = all[:50]
	}
	top := make([]graph.DomainCount, len(all))
	for i, e := range all {
		top[i] = graph.DomainCount{Domain: e.domain, Count: e.count}
	}
	return graph.Stats{Nodes: len(nodes), Edges: len(edges), TopDomains: top}
}

// DisplayID re-runs Layer 1 + Layer 2 on the chosen raw id, then applies the
// conservative digit-in-alpha cleanup to the local part only (deliberately
// skipping Layer 3's letter-to-letter OCR map, which mangles real surnames
// too often to run on a display-facing id).
func DisplayID(rawID string) string {
	cleaned := StructuralCleanup(rawID)
	cleaned = ApplyDomainNormalization(cleaned)
	local, domain, ok := strings.Cut(cleaned, "@")
	if !ok {
		return cleaned
	}
	return OCRCleanLocalForDisplay(local) + "@" + domain
}
