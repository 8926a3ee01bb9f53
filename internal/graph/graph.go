// Package graph holds the node/edge snapshot shape the dedup pipeline reads
// and writes, and the JSON decode boundary that turns the dynamically-shaped
// input records into one fixed record shape with defaulted numeric zeros and
// empty collections.
package graph

import (
	"encoding/json"
	"sort"

	"github.com/projectdiscovery/utils/errkit"
)

// Node is one address/person record. id is a raw-address-shaped string;
// years is always emitted sorted; aliases is populated only on output.
type Node struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Domain      string   `json:"domain"`
	Sent        int      `json:"sent"`
	Received    int      `json:"received"`
	Count       int      `json:"count"`
	Years       []int    `json:"years"`
	DomainCount int      `json:"domain_count"`
	Aliases     []string `json:"aliases,omitempty"`
}

// Edge is a directed (source, target) pair. Self-loops are forbidden on
// output; years/doc_ids are emitted sorted.
type Edge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Weight int      `json:"weight"`
	Years  []int    `json:"years"`
	DocIDs []string `json:"doc_ids"`
}

// DomainCount is one entry of stats.top_domains.
type DomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// Stats is the top-level stats block.
type Stats struct {
	Nodes      int           `json:"nodes"`
	Edges      int           `json:"edges"`
	TopDomains []DomainCount `json:"top_domains"`
}

// Snapshot is the full {stats, nodes, edges} document read and written by
// the pipeline.
type Snapshot struct {
	Stats Stats  `json:"stats"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// rawNode/rawEdge mirror the wire shape with every field optional, so a
// missing counter or missing years array decodes to its zero value instead
// of failing.
type rawNode struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Domain      string   `json:"domain"`
	Sent        *int     `json:"sent"`
	Received    *int     `json:"received"`
	Count       *int     `json:"count"`
	Years       []int    `json:"years"`
	DomainCount *int     `json:"domain_count"`
	Aliases     []string `json:"aliases"`
}

type rawEdge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Weight *int     `json:"weight"`
	Years  []int    `json:"years"`
	DocIDs []string `json:"doc_ids"`
}

type rawSnapshot struct {
	Stats json.RawMessage `json:"stats"`
	Nodes []rawNode       `json:"nodes"`
	Edges []rawEdge       `json:"edges"`
}

// Decode parses the input document, defaulting missing optional fields.
// It is fatal only on malformed top-level JSON or a missing nodes/edges
// array; everything else (missing id, no '@', missing counters) is a
// per-entity recoverable condition and decodes to a usable zero value.
func Decode(data []byte) (*Snapshot, error) {
	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errkit.New("malformed top-level JSON: %v", err)
	}
	if raw.Nodes == nil {
		return nil, errkit.New("input document is missing required \"nodes\" array")
	}
	if raw.Edges == nil {
		return nil, errkit.New("input document is missing required \"edges\" array")
	}

	snap := &Snapshot{
		Nodes: make([]Node, 0, len(raw.Nodes)),
		Edges: make([]Edge, 0, len(raw.Edges)),
	}
	for _, n := range raw.Nodes {
		node := Node{
			ID:     n.ID,
			Name:   n.Name,
			Domain: n.Domain,
			Years:  append([]int(nil), n.Years...),
		}
		if n.Sent != nil {
			node.Sent = *n.Sent
		}
		if n.Received != nil {
			node.Received = *n.Received
		}
		if n.Count != nil {
			node.Count = *n.Count
		}
		if n.DomainCount != nil {
			node.DomainCount = *n.DomainCount
		}
		snap.Nodes = append(snap.Nodes, node)
	}
	for _, e := range raw.Edges {
		edge := Edge{
			Source: e.Source,
			Target: e.Target,
			Years:  append([]int(nil), e.Years...),
			DocIDs: append([]string(nil), e.DocIDs...),
		}
		if e.Weight != nil {
			edge.Weight = *e.Weight
		} else {
			edge.Weight = 1
		}
		snap.Edges = append(snap.Edges, edge)
	}
	return snap, nil
}

// Encode renders the snapshot with compact (no-space) JSON separators,
// matching the convention of shipping minified output.
func Encode(snap *Snapshot) ([]byte, error) {
	sortSnapshot(snap)
	return json.Marshal(snap)
}

// sortSnapshot sorts the per-entity collections so Encode output is
// deterministic regardless of the order layers happened to build them in,
// and replaces nil collections with empty ones so they serialize as [].
func sortSnapshot(snap *Snapshot) {
	for i := range snap.Nodes {
		if snap.Nodes[i].Years == nil {
			snap.Nodes[i].Years = []int{}
		}
		sort.Ints(snap.Nodes[i].Years)
		sort.Strings(snap.Nodes[i].Aliases)
	}
	for i := range snap.Edges {
		if snap.Edges[i].Years == nil {
			snap.Edges[i].Years = []int{}
		}
		if snap.Edges[i].DocIDs == nil {
			snap.Edges[i].DocIDs = []string{}
		}
		sort.Ints(snap.Edges[i].Years)
		sort.Strings(snap.Edges[i].DocIDs)
	}
}
