package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/merlinc16/emaildedup"
	"github.com/merlinc16/emaildedup/internal/graph"
	"github.com/merlinc16/emaildedup/internal/runner"
	"github.com/projectdiscovery/gologger"
)

func main() {
	opts := runner.ParseFlags()

	raw, err := os.ReadFile(opts.Input)
	if err != nil {
		gologger.Error().Msgf("Could not read input graph: %s\n", err)
		os.Exit(1)
	}

	snap, err := graph.Decode(raw)
	if err != nil {
		gologger.Error().Msgf("Could not decode input graph: %s\n", err)
		os.Exit(1)
	}

	overlay, err := runner.LoadRulesOverlay(opts.RulesPath)
	if err != nil {
		gologger.Fatal().Msgf("Could not load rules overlay: %s\n", err)
	}

	result := emaildedup.Run(snap, emaildedup.Options{
		NoFuzzy:      opts.NoFuzzy,
		RulesOverlay: overlay,
	})

	for _, s := range result.LayerStats {
		gologger.Info().Msgf("%-40s %5d merged\n", s.Name, s.Changes)
	}
	gologger.Info().Msgf("%d merge groups\n", len(result.MergeGroups))
	gologger.Info().Msgf("%d nodes -> %d nodes, %d edges -> %d edges\n",
		len(snap.Nodes), len(result.Snapshot.Nodes), len(snap.Edges), len(result.Snapshot.Edges))

	if opts.Report {
		printReport(result.MergeGroups)
	}

	printInvariantChecks(result.InvariantChecks)

	if opts.DryRun {
		gologger.Info().Msgf("[DRY RUN] No files written.\n")
		return
	}

	out, err := graph.Encode(result.Snapshot)
	if err != nil {
		gologger.Fatal().Msgf("Could not encode output graph: %s\n", err)
	}

	destination := opts.Output
	if destination == "" {
		destination = opts.Input
		backupPath := destination + ".bak"
		gologger.Info().Msgf("Backing up to %s...\n", backupPath)
		if err := os.WriteFile(backupPath, raw, 0o644); err != nil {
			gologger.Fatal().Msgf("Could not write backup %s: %s\n", backupPath, err)
		}
	}

	if err := os.WriteFile(destination, out, 0o644); err != nil {
		gologger.Fatal().Msgf("Could not write output graph: %s\n", err)
	}
	gologger.Info().Msgf("Wrote merged graph to %s\n", destination)

	printReductionSummary(len(snap.Nodes), len(result.Snapshot.Nodes), len(snap.Edges), len(result.Snapshot.Edges))
}

// printInvariantChecks renders the post-merge invariant-check block: a
// WARNING line per violated property, an informational line otherwise.
// Violations are reported, never treated as fatal - the write proceeds
// regardless.
func printInvariantChecks(checks []graph.InvariantCheck) {
	gologger.Info().Msgf("=== Invariant Checks ===\n")
	for _, c := range checks {
		if c.OK {
			gologger.Info().Msgf("  %s\n", c.Message)
		} else {
			gologger.Warning().Msgf("  WARNING: %s\n", c.Message)
		}
	}
}

// printReductionSummary reports the node/edge reduction achieved by the
// run's final console lines.
func printReductionSummary(origNodes, newNodes, origEdges, newEdges int) {
	nodePct := 0.0
	if origNodes > 0 {
		nodePct = float64(origNodes-newNodes) / float64(origNodes) * 100
	}
	edgePct := 0.0
	if origEdges > 0 {
		edgePct = float64(origEdges-newEdges) / float64(origEdges) * 100
	}
	gologger.Info().Msgf("Reduction: %d nodes removed (%.1f%%)\n", origNodes-newNodes, nodePct)
	gologger.Info().Msgf("           %d edges removed (%.1f%%)\n", origEdges-newEdges, edgePct)
}

// printReport shows up to 100 of the largest merge groups, biggest first,
// with each member's input name and count, marking the chosen
// representative with "<-- canonical".
func printReport(groups []emaildedup.MergeGroup) {
	sorted := append([]emaildedup.MergeGroup(nil), groups...)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i].Members) != len(sorted[j].Members) {
			return len(sorted[i].Members) > len(sorted[j].Members)
		}
		return sorted[i].BestID < sorted[j].BestID
	})

	fmt.Printf("\n=== Merge Report (groups with 2+ members) ===\n")
	limit := len(sorted)
	if limit > 100 {
		limit = 100
	}
	for _, g := range sorted[:limit] {
		fmt.Printf("\n  Best ID: %s\n", g.BestID)
		for _, m := range g.Members {
			marker := ""
			if m.ID == g.BestID {
				marker = " <-- canonical"
			}
			fmt.Printf("    %s (%s, count=%d)%s\n", m.ID, m.Name, m.Count, marker)
		}
	}
	if len(sorted) > limit {
		fmt.Printf("\n  ... and %d more groups\n", len(sorted)-limit)
	}
}
