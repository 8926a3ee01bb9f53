package graph

import "fmt"

// InvariantCheck is one property verified against the merged output graph.
// Violations are reported, never thrown: the write proceeds regardless so
// pathological merges can still be inspected.
type InvariantCheck struct {
	Message string
	OK      bool
}

// CheckInvariants verifies the output graph's invariants: count
// conservation, edge-endpoint closure, the no-self-loops rule, and no
// duplicate node ids. origTotalCount is the sum of node.count on the
// pre-merge input.
func CheckInvariants(origTotalCount int, out *Snapshot) []InvariantCheck {
	var checks []InvariantCheck

	newTotal := 0
	for _, n := range out.Nodes {
		newTotal += n.Count
	}
	if newTotal != origTotalCount {
		checks = append(checks, InvariantCheck{
			Message: fmt.Sprintf("Total count changed! %d -> %d (diff: %d)", origTotalCount, newTotal, newTotal-origTotalCount),
		})
	} else {
		checks = append(checks, InvariantCheck{Message: fmt.Sprintf("Total count conserved: %d", newTotal), OK: true})
	}

	nodeIDs := make(map[string]struct{}, len(out.Nodes))
	dupIDs := 0
	for _, n := range out.Nodes {
		if _, exists := nodeIDs[n.ID]; exists {
			dupIDs++
		}
		nodeIDs[n.ID] = struct{}{}
	}

	badEndpoints := 0
	selfLoops := 0
	for _, e := range out.Edges {
		if _, ok := nodeIDs[e.Source]; !ok {
			badEndpoints++
		}
		if _, ok := nodeIDs[e.Target]; !ok {
			badEndpoints++
		}
		if e.Source == e.Target {
			selfLoops++
		}
	}
	if badEndpoints > 0 {
		checks = append(checks, InvariantCheck{Message: fmt.Sprintf("%d edge endpoints reference non-existent nodes", badEndpoints)})
	} else {
		checks = append(checks, InvariantCheck{Message: "All edge endpoints valid", OK: true})
	}

	if selfLoops > 0 {
		checks = append(checks, InvariantCheck{Message: fmt.Sprintf("%d self-loops found", selfLoops)})
	} else {
		checks = append(checks, InvariantCheck{Message: "No self-loops", OK: true})
	}

	if dupIDs > 0 {
		checks = append(checks, InvariantCheck{Message: "Duplicate node IDs found!"})
	} else {
		checks = append(checks, InvariantCheck{Message: "No duplicate node IDs", OK: true})
	}

	return checks
}
