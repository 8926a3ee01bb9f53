package layers

import (
	"sort"
	"strings"

	mapsutil "github.com/projectdiscovery/utils/maps"

	"github.com/merlinc16/emaildedup/internal/graph"
)

// WorkingSet is the shared state Layers 4-7 read: the live alias map
// (raw id -> canonical key) and a lookup from raw id to its original node,
// used to pull counts and names for gating decisions.
type WorkingSet struct {
	Alias     map[string]string
	NodesByID map[string]*graph.Node
}

// CanonicalsInUse returns the distinct set of canonical keys currently
// present in the alias map's values.
func (w *WorkingSet) CanonicalsInUse() map[string]struct{} {
	set := map[string]struct{}{}
	for _, c := range w.Alias {
		set[c] = struct{}{}
	}
	return set
}

// canonicalsSorted returns CanonicalsInUse's keys in deterministic order.
func (w *WorkingSet) canonicalsSorted() []string {
	out := mapsutil.GetKeys(w.CanonicalsInUse())
	sort.Strings(out)
	return out
}

// OriginalsByCanonical groups raw ids by their current canonical key.
func (w *WorkingSet) OriginalsByCanonical() map[string][]string {
	out := map[string][]string{}
	for orig, canon := range w.Alias {
		out[canon] = append(out[canon], orig)
	}
	return out
}

// TotalCount sums node.Count across every raw id currently mapped to canon.
func (w *WorkingSet) TotalCount(canon string, byCanon map[string][]string) int {
	total := 0
	for _, oid := range byCanon[canon] {
		if n, ok := w.NodesByID[oid]; ok {
			total += n.Count
		}
	}
	return total
}

// BestName picks the best display name among the raw ids mapped to canon,
// weighting by activity count and preferring 2+-word, title-case, low-OCR
// names, as the original _best_name_for_canonical does.
func (w *WorkingSet) BestName(canon string, byCanon map[string][]string) string {
	counts := map[string]int{}
	for _, oid := range byCanon[canon] {
		n, ok := w.NodesByID[oid]
		if !ok || n.Name == "" {
			continue
		}
		c := n.Count
		if c == 0 {
			c = 1
		}
		counts[n.Name] += c
	}
	if len(counts) == 0 {
		return ""
	}
	var names []string
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return nameScoreLess(names[j], names[i], counts)
	})
	return names[0]
}

func nameScoreLess(a, b string, counts map[string]int) bool {
	sa := bestNameScore(a, counts[a])
	sb := bestNameScore(b, counts[b])
	return lessTuple(sa, sb, a, b)
}

type nameScore struct {
	hasWords   bool
	isTitle    bool
	ocrPenalty int
	freq       int
}

func bestNameScore(name string, freq int) nameScore {
	words := strings.Fields(name)
	penalty := 0
	lower := strings.ToLower(name)
	for _, p := range []string{"rn", "ii", "ffl", "ffi", "0", "1", "3"} {
		if strings.Contains(lower, p) {
			penalty++
		}
	}
	return nameScore{
		hasWords:   len(words) >= 2,
		isTitle:    name == toTitleCase(name),
		ocrPenalty: -penalty,
		freq:       freq,
	}
}

func lessTuple(sa, sb nameScore, a, b string) bool {
	if sa.hasWords != sb.hasWords {
		return !sa.hasWords
	}
	if sa.isTitle != sb.isTitle {
		return !sa.isTitle
	}
	if sa.ocrPenalty != sb.ocrPenalty {
		return sa.ocrPenalty < sb.ocrPenalty
	}
	if sa.freq != sb.freq {
		return sa.freq < sb.freq
	}
	return a < b
}

func toTitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// ApplyMerges resolves merge chains (A->B->C => A->C, cycle-safe) in merges
// and rewrites w.Alias in place, returning the number of raw ids whose
// canonical changed.
func (w *WorkingSet) ApplyMerges(merges map[string]string) int {
	if len(merges) == 0 {
		return 0
	}
	resolved := map[string]string{}
	for src := range merges {
		dst := merges[src]
		seen := map[string]struct{}{src: {}}
		for {
			next, ok := merges[dst]
			if !ok {
				break
			}
			if _, cyc := seen[dst]; cyc {
				break
			}
			seen[dst] = struct{}{}
			dst = next
		}
		resolved[src] = dst
	}
	changes := 0
	for orig, current := range w.Alias {
		if dst, ok := resolved[current]; ok {
			w.Alias[orig] = dst
			changes++
		}
	}
	return changes
}
