package layers

import (
	"sort"
	"strings"

	"github.com/merlinc16/emaildedup/internal/strmatch"
	"github.com/merlinc16/emaildedup/internal/unionfind"
)

type canonInfo struct {
	canon string
	local string
	len   int
	count int
	name  string
}

// FuzzyMatchGroups is Layer 4: pairwise Levenshtein clustering of locals
// within each domain, gated by name similarity at the threshold boundary
// and by a traffic gate that blocks over-merging two high-volume distinct
// people. skip disables the layer entirely (the --no-fuzzy flag).
func FuzzyMatchGroups(w *WorkingSet, skip bool) map[string]string {
	if skip {
		return map[string]string{}
	}
	byCanon := w.OriginalsByCanonical()

	domainGroups := map[string][]string{}
	for _, canon := range w.canonicalsSorted() {
		_, domain, ok := strings.Cut(canon, "@")
		if !ok {
			continue
		}
		domainGroups[domain] = append(domainGroups[domain], canon)
	}

	uf := unionfind.New()

	for _, canonicals := range domainGroups {
		if len(canonicals) < 2 {
			continue
		}
		infos := make([]canonInfo, 0, len(canonicals))
		for _, c := range canonicals {
			local, _, _ := strings.Cut(c, "@")
			count := w.TotalCount(c, byCanon)
			name := w.BestName(c, byCanon)
			uf.Add(c, count)
			infos = append(infos, canonInfo{c, local, len(local), count, name})
		}
		sort.Slice(infos, func(i, j int) bool {
			if infos[i].len != infos[j].len {
				return infos[i].len < infos[j].len
			}
			return infos[i].local < infos[j].local
		})

		for i := 0; i < len(infos); i++ {
			ci := infos[i]
			for j := i + 1; j < len(infos); j++ {
				cj := infos[j]
				shorter := min(ci.len, cj.len)
				if shorter < 2 {
					continue
				}
				threshold := max(2, shorter/5)
				if cj.len-ci.len > threshold {
					break
				}
				if uf.Find(ci.canon) == uf.Find(cj.canon) {
					continue
				}
				dist := strmatch.Levenshtein(ci.local, cj.local)
				if dist > threshold {
					continue
				}
				if ci.name != "" && cj.name != "" && dist == threshold {
					if !nameGatePasses(ci, cj) {
						continue
					}
				}
				if ci.count > 50 && cj.count > 50 {
					larger, smaller := ci.count, cj.count
					if smaller > larger {
						larger, smaller = smaller, larger
					}
					ratio := float64(larger) / float64(max(1, smaller))
					if ratio < 2 {
						if ci.name == "" || cj.name == "" || strmatch.JaroWinkler(strings.ToLower(ci.name), strings.ToLower(cj.name)) < 0.95 {
							continue
						}
					}
				}
				uf.Union(ci.canon, cj.canon)
			}
		}
	}

	return bestRepresentativeMerges(uf, w, byCanon)
}

func nameGatePasses(ci, cj canonInfo) bool {
	jw := strmatch.JaroWinkler(strings.ToLower(ci.name), strings.ToLower(cj.name))
	w1 := wordSet(strings.ToLower(ci.name))
	w2 := wordSet(strings.ToLower(cj.name))
	tokenSim := jaccard(w1, w2)
	liParts := longTokens(ci.local, 3)
	ljParts := longTokens(cj.local, 3)
	sharedLocal := intersects(liParts, ljParts)
	return jw >= 0.85 || tokenSim >= 0.4 || sharedLocal
}

func wordSet(s string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, w := range strings.Fields(s) {
		out[w] = struct{}{}
	}
	return out
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	common := 0
	for k := range a {
		if _, ok := b[k]; ok {
			common++
		}
	}
	union := len(a) + len(b) - common
	if union == 0 {
		return 1.0
	}
	return float64(common) / float64(union)
}

func longTokens(local string, minLen int) map[string]struct{} {
	out := map[string]struct{}{}
	for _, p := range strings.Split(local, ".") {
		if len(p) >= minLen {
			out[p] = struct{}{}
		}
	}
	return out
}

func intersects(a, b map[string]struct{}) bool {
	for k := range a {
		if _, ok := b[k]; ok {
			return true
		}
	}
	return false
}

// bestRepresentativeMerges converts UF groups of size >=2 into a
// canonical->canonical merge map, picking the highest-count member as the
// representative with a lexicographic tiebreak.
func bestRepresentativeMerges(uf *unionfind.UnionFind, w *WorkingSet, byCanon map[string][]string) map[string]string {
	merges := map[string]string{}
	for _, members := range uf.Groups() {
		if len(members) <= 1 {
			continue
		}
		best := pickBest(members, w, byCanon)
		for m := range members {
			if m != best {
				merges[m] = best
			}
		}
	}
	return merges
}

func pickBest(members map[string]struct{}, w *WorkingSet, byCanon map[string][]string) string {
	var best string
	bestCount := -1
	for m := range members {
		c := w.TotalCount(m, byCanon)
		if c > bestCount || (c == bestCount && m < best) {
			best, bestCount = m, c
		}
	}
	return best
}
