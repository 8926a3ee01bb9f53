package layers

import (
	"sort"
	"strings"
)

type localEntry struct {
	local string
	canon string
}

// SingleToFullNameMatches is Layer 5: merges a single-token local into a
// multi-token canonical that contains that token, when the match is
// unambiguous or the top candidate dominates the runner-up by 5x traffic.
func SingleToFullNameMatches(w *WorkingSet) map[string]string {
	byCanon := w.OriginalsByCanonical()
	domainCanonicals := map[string][]localEntry{}
	for canon := range w.CanonicalsInUse() {
		local, domain, ok := strings.Cut(canon, "@")
		if !ok {
			continue
		}
		domainCanonicals[domain] = append(domainCanonicals[domain], localEntry{local, canon})
	}

	merges := map[string]string{}

	for _, entries := range domainCanonicals {
		var singles []localEntry
		type multiEntry struct {
			local string
			canon string
			parts []string
		}
		var multis []multiEntry
		for _, e := range entries {
			parts := splitTokens(e.local, partSplitRE, 1)
			if len(parts) <= 1 {
				singles = append(singles, e)
			} else {
				multis = append(multis, multiEntry{e.local, e.canon, parts})
			}
		}
		if len(singles) == 0 || len(multis) == 0 {
			continue
		}

		for _, single := range singles {
			if _, done := merges[single.canon]; done {
				continue
			}
			type candidate struct {
				canon string
				count int
			}
			var candidates []candidate
			for _, m := range multis {
				if _, done := merges[m.canon]; done {
					continue
				}
				if containsToken(m.parts, single.local) {
					candidates = append(candidates, candidate{m.canon, w.TotalCount(m.canon, byCanon)})
				}
			}
			if len(candidates) == 0 {
				continue
			}
			if len(candidates) == 1 {
				merges[single.canon] = candidates[0].canon
				continue
			}
			sort.Slice(candidates, func(i, j int) bool {
				if candidates[i].count != candidates[j].count {
					return candidates[i].count > candidates[j].count
				}
				return candidates[i].canon < candidates[j].canon
			})
			top, second := candidates[0].count, candidates[1].count
			if top > 0 && (second == 0 || float64(top)/float64(max(1, second)) >= 5) {
				merges[single.canon] = candidates[0].canon
			}
		}
	}
	return merges
}

func containsToken(tokens []string, t string) bool {
	for _, tok := range tokens {
		if tok == t {
			return true
		}
	}
	return false
}

// ConcatenationMatches is Layer 6: a single-token local of length >=6 is
// split at every interior point; if the sorted two-part split matches
// exactly one distinct known multi-token canonical on the domain, merge.
func ConcatenationMatches(w *WorkingSet) map[string]string {
	domainCanonicals := map[string][]localEntry{}
	for canon := range w.CanonicalsInUse() {
		local, domain, ok := strings.Cut(canon, "@")
		if !ok {
			continue
		}
		domainCanonicals[domain] = append(domainCanonicals[domain], localEntry{local, canon})
	}

	domainMultiparts := map[string]map[string]string{}
	for domain, entries := range domainCanonicals {
		for _, e := range entries {
			parts := splitTokens(e.local, partSplitRE, 1)
			if len(parts) >= 2 {
				if domainMultiparts[domain] == nil {
					domainMultiparts[domain] = map[string]string{}
				}
				domainMultiparts[domain][pairKeyAll(parts)] = e.canon
			}
		}
	}

	merges := map[string]string{}
	for domain, entries := range domainCanonicals {
		known := domainMultiparts[domain]
		if len(known) == 0 {
			continue
		}
		for _, e := range entries {
			if _, done := merges[e.canon]; done {
				continue
			}
			parts := splitTokens(e.local, partSplitRE, 1)
			if len(parts) != 1 || len(e.local) < 6 {
				continue
			}
			matchSet := map[string]struct{}{}
			for splitPos := 2; splitPos < len(e.local)-1; splitPos++ {
				left, right := e.local[:splitPos], e.local[splitPos:]
				if len(left) < 2 || len(right) < 2 {
					continue
				}
				if target, ok := known[pairKey(left, right)]; ok && target != e.canon {
					matchSet[target] = struct{}{}
				}
			}
			if len(matchSet) == 1 {
				for target := range matchSet {
					merges[e.canon] = target
				}
			}
		}
	}
	return merges
}

func pairKeyAll(parts []string) string {
	sorted := append([]string(nil), parts...)
	sort.Strings(sorted)
	return strings.Join(sorted, "\x00")
}
