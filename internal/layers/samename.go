package layers

import (
	"sort"
	"strings"

	mapsutil "github.com/projectdiscovery/utils/maps"

	"github.com/merlinc16/emaildedup/internal/rules"
	"github.com/merlinc16/emaildedup/internal/strmatch"
	"github.com/merlinc16/emaildedup/internal/unionfind"
)

// SameNameMerge is Layer 7. Strategy 1 (same domain, same normalized
// 2+-word name) resolves first and its destinations seed `merges`; Strategy
// 1b (same local, similar domain) then resolves its own union-find groups
// into `merges`. Only Strategies 2 and 3 share a single UF, so a chain of
// partial matches across those two converges on one representative;
// Strategy 1 and 1b groups are not part of that UF.
func SameNameMerge(w *WorkingSet) map[string]string {
	byCanon := w.OriginalsByCanonical()
	merges := map[string]string{}

	strategy1(w, byCanon, merges)
	strategy1b(w, byCanon, merges)

	uf2 := unionfind.New()
	strategy2(w, byCanon, merges, uf2)
	strategy3(w, byCanon, merges, uf2)

	groups := make([]map[string]struct{}, 0)
	for _, members := range uf2.Groups() {
		if len(members) > 1 {
			groups = append(groups, members)
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		return smallestMember(groups[i]) < smallestMember(groups[j])
	})
	for _, members := range groups {
		candidates := map[string]struct{}{}
		for m := range members {
			candidates[m] = struct{}{}
			if dst, ok := merges[m]; ok {
				candidates[dst] = struct{}{}
			}
		}
		best := pickBestFromSet(candidates, w, byCanon)
		for m := range candidates {
			if m != best {
				merges[m] = best
			}
		}
	}
	return merges
}

func smallestMember(set map[string]struct{}) string {
	first := true
	var smallest string
	for m := range set {
		if first || m < smallest {
			smallest, first = m, false
		}
	}
	return smallest
}

func pickBestFromSet(set map[string]struct{}, w *WorkingSet, byCanon map[string][]string) string {
	var best string
	bestCount := -1
	for m := range set {
		c := w.TotalCount(m, byCanon)
		if c > bestCount || (c == bestCount && m < best) {
			best, bestCount = m, c
		}
	}
	return best
}

func normName(name string) string {
	words := strings.Fields(strings.ToLower(name))
	sort.Strings(words)
	return strings.Join(words, " ")
}

// strategy1: same domain, same normalized name (2+ words) -> highest count wins.
func strategy1(w *WorkingSet, byCanon map[string][]string, merges map[string]string) {
	type entry struct {
		canon string
		count int
	}
	groups := map[string][]entry{}
	for _, canon := range sortedKeys(w.CanonicalsInUse()) {
		_, domain, ok := strings.Cut(canon, "@")
		if !ok {
			continue
		}
		name := w.BestName(canon, byCanon)
		if name == "" {
			continue
		}
		words := strings.Fields(strings.ToLower(name))
		if len(words) < 2 {
			continue
		}
		key := domain + "\x00" + normName(name)
		groups[key] = append(groups[key], entry{canon, w.TotalCount(canon, byCanon)})
	}
	for _, entries := range groups {
		if len(entries) < 2 {
			continue
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].count != entries[j].count {
				return entries[i].count > entries[j].count
			}
			return entries[i].canon < entries[j].canon
		})
		best := entries[0].canon
		for _, e := range entries[1:] {
			if _, done := merges[e.canon]; !done {
				merges[e.canon] = best
			}
		}
	}
}

// strategy1b: cross-domain, same local, OCR-similar domain. Single-token
// generic locals, common first names and locals of 3 characters or fewer
// are skipped.
func strategy1b(w *WorkingSet, byCanon map[string][]string, merges map[string]string) {
	type entry struct {
		canon, domain string
		count         int
	}
	groups := map[string][]entry{}
	for _, canon := range sortedKeys(w.CanonicalsInUse()) {
		if _, done := merges[canon]; done {
			continue
		}
		local, domain, ok := strings.Cut(canon, "@")
		if !ok {
			continue
		}
		cleanParts := splitTokens(local, partSplitRE, 0)
		if len(cleanParts) == 1 {
			if _, ok := rules.GenericLocals[cleanParts[0]]; ok {
				continue
			}
		}
		if _, ok := rules.CommonFirstNames[strings.ToLower(local)]; ok {
			continue
		}
		if len(local) <= 3 {
			continue
		}
		groups[local] = append(groups[local], entry{canon, domain, w.TotalCount(canon, byCanon)})
	}

	uf := unionfind.New()
	for _, entries := range groups {
		if len(entries) < 2 {
			continue
		}
		for _, e := range entries {
			uf.Add(e.canon, e.count)
		}
		for i := 0; i < len(entries); i++ {
			for j := i + 1; j < len(entries); j++ {
				ei, ej := entries[i], entries[j]
				if uf.Find(ei.canon) == uf.Find(ej.canon) {
					continue
				}
				dist := strmatch.Levenshtein(ei.domain, ej.domain)
				threshold := max(3, max(len(ei.domain), len(ej.domain))/3)
				if dist > 0 && dist <= threshold {
					uf.Union(ei.canon, ej.canon)
				}
			}
		}
	}
	for _, members := range uf.Groups() {
		if len(members) <= 1 {
			continue
		}
		best := pickBest(members, w, byCanon)
		for m := range members {
			if m != best {
				if _, done := merges[m]; !done {
					merges[m] = best
				}
			}
		}
	}
}

// strategy2: cross-domain, same local + same name, pairwise UF with a
// domain-similarity gate for generic/common/short locals.
func strategy2(w *WorkingSet, byCanon map[string][]string, merges map[string]string, uf *unionfind.UnionFind) {
	type entry struct {
		canon, domain string
		count         int
	}
	groups := map[string][]entry{}
	requireGate := map[string]bool{}
	for _, canon := range sortedKeys(w.CanonicalsInUse()) {
		if _, done := merges[canon]; done {
			continue
		}
		local, domain, ok := strings.Cut(canon, "@")
		if !ok {
			continue
		}
		cleanParts := splitTokens(local, partSplitRE, 0)
		isGeneric := false
		if len(cleanParts) == 1 {
			if _, ok := rules.GenericLocals[cleanParts[0]]; ok {
				isGeneric = true
			}
		}
		name := w.BestName(canon, byCanon)
		if name == "" {
			continue
		}
		key := local + "\x00" + normName(name)
		groups[key] = append(groups[key], entry{canon, domain, w.TotalCount(canon, byCanon)})
		_, isCommon := rules.CommonFirstNames[strings.ToLower(local)]
		requireGate[local] = isGeneric || isCommon || len(local) <= 4
	}

	for key, entries := range groups {
		if len(entries) < 2 {
			continue
		}
		local := strings.SplitN(key, "\x00", 2)[0]
		gate := requireGate[local]
		for _, e := range entries {
			uf.Add(e.canon, e.count)
		}
		for i := 0; i < len(entries); i++ {
			for j := i + 1; j < len(entries); j++ {
				ei, ej := entries[i], entries[j]
				if uf.Find(ei.canon) == uf.Find(ej.canon) {
					continue
				}
				if gate {
					dist := strmatch.Levenshtein(ei.domain, ej.domain)
					threshold := max(3, max(len(ei.domain), len(ej.domain))/3)
					if dist > threshold {
						continue
					}
				}
				uf.Union(ei.canon, ej.canon)
			}
		}
	}
}

// strategy3: cross-domain, fuzzy local (full-string or per-token
// permutation) + same name, gated by domain similarity when either local is
// generic/common/short.
func strategy3(w *WorkingSet, byCanon map[string][]string, merges map[string]string, uf *unionfind.UnionFind) {
	type entry struct {
		canon, local, domain string
		count                int
		parts                []string
		generic              bool
	}
	groups := map[string][]entry{}
	for _, canon := range sortedKeys(w.CanonicalsInUse()) {
		if _, done := merges[canon]; done {
			continue
		}
		local, domain, ok := strings.Cut(canon, "@")
		if !ok {
			continue
		}
		cleanParts := splitTokens(local, partSplitRE, 0)
		isGeneric := false
		if len(cleanParts) == 1 {
			if _, ok := rules.GenericLocals[cleanParts[0]]; ok {
				isGeneric = true
			}
		}
		name := w.BestName(canon, byCanon)
		if name == "" {
			continue
		}
		parts := splitTokens(local, partSplitRE, 0)
		sort.Strings(parts)
		groups[normName(name)] = append(groups[normName(name)], entry{canon, local, domain, w.TotalCount(canon, byCanon), parts, isGeneric})
	}

	for _, entries := range groups {
		if len(entries) < 2 {
			continue
		}
		for _, e := range entries {
			uf.Add(e.canon, e.count)
		}
		for i := 0; i < len(entries); i++ {
			for j := i + 1; j < len(entries); j++ {
				ei, ej := entries[i], entries[j]
				if uf.Find(ei.canon) == uf.Find(ej.canon) {
					continue
				}
				shorter := min(len(ei.local), len(ej.local))
				if shorter < 3 {
					continue
				}
				localDist := strmatch.Levenshtein(ei.local, ej.local)
				localThreshold := max(2, shorter/4)
				matched := localDist <= localThreshold
				if !matched && len(ei.parts) == len(ej.parts) && len(ei.parts) >= 2 {
					bestPartDist := bestPermutationDistance(ei.parts, ej.parts)
					totalLen := 0
					for _, p := range ei.parts {
						totalLen += len(p)
					}
					partThreshold := max(2, totalLen/4)
					matched = bestPartDist <= partThreshold
				}
				if !matched {
					continue
				}
				_, iCommon := rules.CommonFirstNames[strings.ToLower(ei.local)]
				_, jCommon := rules.CommonFirstNames[strings.ToLower(ej.local)]
				requireGate := ei.generic || ej.generic || iCommon || jCommon || len(ei.local) <= 4 || len(ej.local) <= 4
				if requireGate {
					domainDist := strmatch.Levenshtein(ei.domain, ej.domain)
					domainThreshold := max(3, max(len(ei.domain), len(ej.domain))/3)
					if domainDist > domainThreshold {
						continue
					}
				}
				uf.Union(ei.canon, ej.canon)
			}
		}
	}
}

// bestPermutationDistance tries every permutation of b against a and
// returns the minimum sum of per-position Levenshtein distances. Locals
// rarely split into more than 3-4 tokens, so brute-force permutation is
// cheap in practice.
func bestPermutationDistance(a, b []string) int {
	best := -1
	perm := make([]int, len(b))
	for i := range perm {
		perm[i] = i
	}
	permute(perm, 0, func(p []int) {
		total := 0
		for k := range a {
			total += strmatch.Levenshtein(a[k], b[p[k]])
		}
		if best == -1 || total < best {
			best = total
		}
	})
	return best
}

func permute(arr []int, k int, visit func([]int)) {
	if k == len(arr) {
		visit(arr)
		return
	}
	for i := k; i < len(arr); i++ {
		arr[k], arr[i] = arr[i], arr[k]
		permute(arr, k+1, visit)
		arr[k], arr[i] = arr[i], arr[k]
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := mapsutil.GetKeys(set)
	sort.Strings(out)
	return out
}
