package layers

import (
	"strings"
	"unicode"

	"github.com/merlinc16/emaildedup/internal/graph"
	"github.com/merlinc16/emaildedup/internal/rules"
)

// ChooseCanonicalNode picks the best node among duplicates by
// (count, domain_clean, has_dot, name_score, -len(id)).
func ChooseCanonicalNode(nodes []*graph.Node) *graph.Node {
	best := nodes[0]
	for _, n := range nodes[1:] {
		if nodeScoreLess(best, n) {
			best = n
		}
	}
	return best
}

func nodeScoreLess(a, b *graph.Node) bool {
	ca, cb := a.Count, b.Count
	if ca != cb {
		return ca < cb
	}
	da, db := boolToInt(isCleanDomain(a.Domain)), boolToInt(isCleanDomain(b.Domain))
	if da != db {
		return da < db
	}
	ha, hb := boolToInt(hasDot(a.ID)), boolToInt(hasDot(b.ID))
	if ha != hb {
		return ha < hb
	}
	na, nb := nameScoreValue(a.Name), nameScoreValue(b.Name)
	if na != nb {
		return na < nb
	}
	if len(a.ID) != len(b.ID) {
		return len(a.ID) > len(b.ID)
	}
	return a.ID > b.ID
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func isCleanDomain(domain string) bool {
	switch domain {
	case "epa.gov", "gmail.com", "yahoo.com":
		return true
	}
	if strings.HasSuffix(domain, ".gov") {
		for _, c := range []string{"q", "3", "0"} {
			if strings.Contains(domain, c) {
				return false
			}
		}
		return true
	}
	return false
}

func hasDot(id string) bool {
	local, _, ok := strings.Cut(id, "@")
	if !ok {
		local = id
	}
	return strings.Contains(local, ".")
}

func nameScoreValue(name string) int {
	if name == "" {
		return 0
	}
	score := 0
	words := strings.Fields(name)
	if len(words) >= 2 {
		score += 2
	}
	if name == toTitleCase(name) || name == strings.ToUpper(name) {
		score++
	}
	lower := strings.ToLower(name)
	for _, p := range []string{"rn", "ii", "0", "1", "3"} {
		if strings.Contains(lower, p) {
			score--
			break
		}
	}
	return score
}

// BestDisplayName picks the best name among nodes by 2+-word, title-case and
// low-OCR quality, then by count-weighted frequency.
func BestDisplayName(nodes []*graph.Node) string {
	if len(nodes) == 0 {
		return ""
	}
	counts := map[string]int{}
	for _, n := range nodes {
		if n.Name == "" {
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
	var best string
	bestQuality := [4]int{}
	first := true
	for name, freq := range counts {
		q := displayNameQuality(name, freq)
		if first || quadLess(bestQuality, q) || (bestQuality == q && name < best) {
			best, bestQuality, first = name, q, false
		}
	}
	return best
}

func displayNameQuality(name string, freq int) [4]int {
	words := strings.Fields(name)
	hasTwo := boolToInt(len(words) >= 2)
	isTitle := boolToInt(name == toTitleCase(name))
	ocr := 0
	lower := strings.ToLower(name)
	for _, p := range []string{"rn", "ii", "vv", "ffl", "svd", "liav"} {
		if strings.Contains(lower, p) {
			ocr--
		}
	}
	return [4]int{hasTwo, isTitle, ocr, freq}
}

func quadLess(a, b [4]int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// SplitInitialName turns a concatenated single-word initial+lastname (e.g.
// "Jgreen") into "J. Green", or returns "" if name doesn't qualify.
func SplitInitialName(name string) string {
	if len(name) < 5 {
		return ""
	}
	words := strings.Fields(name)
	if len(words) != 1 {
		return ""
	}
	word := words[0]
	lower := strings.ToLower(word)
	if _, ok := rules.CommonFirstNames[lower]; ok {
		return ""
	}
	if _, ok := rules.GenericLocals[lower]; ok {
		return ""
	}
	if _, ok := rules.RoleNounStoplist[lower]; ok {
		return ""
	}
	first := []rune(word)[0]
	if !unicode.IsUpper(first) {
		return ""
	}
	rest := word[len(string(first)):]
	if len(rest) < 3 {
		return ""
	}
	return string(first) + ". " + toTitleCase(rest)
}

// NameFromEmail synthesizes a display name from a bare local part when no
// name is otherwise available.
func NameFromEmail(emailID string) string {
	local, _, ok := strings.Cut(emailID, "@")
	if !ok {
		return ""
	}
	parts := splitTokens(local, partSplitRE, 1)
	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 1 {
		if _, ok := rules.GenericLocals[strings.ToLower(parts[0])]; ok {
			return ""
		}
		if split := SplitInitialName(toTitleCase(parts[0])); split != "" {
			return split
		}
	}
	titled := make([]string, len(parts))
	for i, p := range parts {
		titled[i] = toTitleCase(p)
	}
	return strings.Join(titled, " ")
}

// FixNameOrder flips "Lastname Firstname" to "Firstname Lastname" for
// domains known to use a lastname.firstname@ convention, when the name
// words match the email's local-part token order exactly.
func FixNameOrder(name, emailID, domain string) string {
	if name == "" || !strings.Contains(emailID, "@") {
		return name
	}
	if _, ok := rules.LastnameFirstDomains[domain]; !ok {
		return name
	}
	words := strings.Fields(name)
	if len(words) != 2 {
		return name
	}
	local, _, _ := strings.Cut(emailID, "@")
	parts := splitTokens(local, partSplitRE, 1)
	if len(parts) != 2 {
		return name
	}
	emailLast, emailFirst := parts[0], parts[1]
	if strings.ToLower(words[0]) == emailLast && strings.ToLower(words[1]) == emailFirst {
		return words[1] + " " + words[0]
	}
	return name
}
