package layers

import (
	"regexp"
	"sort"
	"strings"

	"github.com/armon/go-radix"
)

var partSplitRE = regexp.MustCompile(`[._\-]`)

// twoPartIndex maps domain -> sorted-pair-key -> canonical, built from every
// canonical currently in use that has exactly two name parts. It backs both
// Layer 3b (split-join) and Layer 3c (prefix/suffix strip).
func twoPartIndex(canonicals map[string]struct{}) map[string]map[string]string {
	idx := map[string]map[string]string{}
	for canon := range canonicals {
		local, domain, ok := strings.Cut(canon, "@")
		if !ok {
			continue
		}
		parts := splitTokens(local, partSplitRE, 1)
		if len(parts) != 2 {
			continue
		}
		sorted := append([]string(nil), parts...)
		sort.Strings(sorted)
		key := strings.Join(sorted, "\x00")
		if idx[domain] == nil {
			idx[domain] = map[string]string{}
		}
		idx[domain][key] = canon
	}
	return idx
}

func pairKey(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return strings.Join(pair, "\x00")
}

// SplitJoinMatches is Layer 3b. origByCanonical maps each live canonical to
// one representative original (pre layer-1/2) raw id, so unsorted token
// order from the source string can be recovered; cleanFn re-applies
// structural cleanup + domain normalization to that raw id.
func SplitJoinMatches(canonicals map[string]struct{}, origByCanonical map[string]string, cleanFn func(string) string) map[string]string {
	known := twoPartIndex(canonicals)
	merges := map[string]string{}

	for canon := range canonicals {
		_, domain, ok := strings.Cut(canon, "@")
		if !ok {
			continue
		}
		domainKnown := known[domain]
		if len(domainKnown) == 0 {
			continue
		}

		orig, ok := origByCanonical[canon]
		if !ok {
			continue
		}
		cleaned := cleanFn(orig)
		local, _, ok := strings.Cut(cleaned, "@")
		if !ok {
			continue
		}
		origParts := splitTokens(local, partSplitRE, 1)
		if len(origParts) < 3 {
			continue
		}

		var candidates [][2]string
		if len(origParts) == 3 {
			a, b, c := origParts[0], origParts[1], origParts[2]
			candidates = [][2]string{
				{a + b, c}, {b + a, c},
				{a + c, b}, {c + a, b},
				{b + c, a}, {c + b, a},
			}
		} else {
			for split := 1; split < len(origParts); split++ {
				left := strings.Join(origParts[:split], "")
				right := strings.Join(origParts[split:], "")
				candidates = append(candidates, [2]string{left, right})
			}
		}

		for _, cand := range candidates {
			left, right := cand[0], cand[1]
			if len(left) < 2 || len(right) < 2 {
				continue
			}
			leftN, rightN := OCRNormalizeLocal(left), OCRNormalizeLocal(right)
			if target, ok := domainKnown[pairKey(leftN, rightN)]; ok && target != canon {
				merges[canon] = target
				break
			}
			if target, ok := domainKnown[pairKey(left, right)]; ok && target != canon {
				merges[canon] = target
				break
			}
		}
	}
	return merges
}

// PrefixSuffixStripMatches is Layer 3c. It uses a radix trie per domain (and
// a second trie over reversed strings) so the "does any known part start or
// end a garbled token" check runs in trie-walk time instead of scanning
// every known part per candidate token. All matching known parts are tried
// longest-first until one yields a known two-part canonical; a failed long
// candidate falls through to the shorter ones.
func PrefixSuffixStripMatches(canonicals map[string]struct{}) map[string]string {
	domainParts := map[string]map[string]struct{}{}
	twoPart := twoPartIndex(canonicals)

	for canon := range canonicals {
		local, domain, ok := strings.Cut(canon, "@")
		if !ok {
			continue
		}
		parts := splitTokens(local, partSplitRE, 1)
		if len(parts) != 2 {
			continue
		}
		if domainParts[domain] == nil {
			domainParts[domain] = map[string]struct{}{}
		}
		for _, p := range parts {
			domainParts[domain][p] = struct{}{}
		}
	}

	prefixTrees := map[string]*radix.Tree{}
	suffixTrees := map[string]*radix.Tree{}
	for domain, parts := range domainParts {
		pt := radix.New()
		st := radix.New()
		for p := range parts {
			if len(p) < 3 {
				continue
			}
			pt.Insert(p, p)
			st.Insert(reverseString(p), p)
		}
		prefixTrees[domain] = pt
		suffixTrees[domain] = st
	}

	merges := map[string]string{}
	for canon := range canonicals {
		local, domain, ok := strings.Cut(canon, "@")
		if !ok {
			continue
		}
		known := domainParts[domain]
		if len(known) == 0 {
			continue
		}
		knownTwo := twoPart[domain]

		rawParts := partSplitRE.Split(local, -1)
		var parts []string
		for _, p := range rawParts {
			if p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) < 2 {
			continue
		}

		found := false
		for i, part := range parts {
			for _, matched := range suffixCandidates(suffixTrees[domain], part) {
				if applyStrip(parts, i, matched, knownTwo, canon, merges) {
					found = true
					break
				}
			}
			if !found {
				for _, matched := range prefixCandidates(prefixTrees[domain], part) {
					if applyStrip(parts, i, matched, knownTwo, canon, merges) {
						found = true
						break
					}
				}
			}
			if found {
				break
			}
		}
	}
	return merges
}

func applyStrip(parts []string, i int, stripped string, knownTwo map[string]string, canon string, merges map[string]string) bool {
	remaining := make([]string, 0, len(parts))
	remaining = append(remaining, parts[:i]...)
	remaining = append(remaining, stripped)
	remaining = append(remaining, parts[i+1:]...)
	var filtered []string
	for _, p := range remaining {
		if len(p) > 1 {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) != 2 {
		return false
	}
	key := pairKey(filtered[0], filtered[1])
	if target, ok := knownTwo[key]; ok && target != canon {
		merges[canon] = target
		return true
	}
	return false
}

// prefixCandidates returns every known part that is a strict prefix of s,
// longest first. WalkPath visits keys shortest-first, so the slice is
// reversed before returning; the strict-length filter drops the token's own
// trie entry.
func prefixCandidates(t *radix.Tree, s string) []string {
	if t == nil {
		return nil
	}
	var out []string
	t.WalkPath(s, func(k string, _ interface{}) bool {
		if len(k) < len(s) {
			out = append(out, k)
		}
		return false
	})
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// suffixCandidates returns every known part that is a strict suffix of s,
// longest first, via the reversed-string trie.
func suffixCandidates(t *radix.Tree, s string) []string {
	matches := prefixCandidates(t, reverseString(s))
	for i, m := range matches {
		matches[i] = reverseString(m)
	}
	return matches
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
