// Package layers implements the seven ordered normalization/clustering
// passes that turn raw, OCR-corrupted address strings into canonical
// identity keys, plus the canonical-selection and merge step that follows
// them. Each normalization function here is total over all input strings:
// it never panics on a malformed address, matching the "per-layer
// never-throws" rule.
package layers

import (
	"regexp"
	"sort"
	"strings"

	"github.com/merlinc16/emaildedup/internal/rules"
	"github.com/merlinc16/emaildedup/internal/strmatch"
)

// StructuralCleanup is Layer 1: lowercase, strip a garbled mailto: prefix,
// strip surrounding <>, normalize the local part (trim dots, hyphen->dot,
// collapse double dots) and the domain (trim dots/hyphens, collapse double
// dots), then apply the EMAIL_FIXES exact-match table.
func StructuralCleanup(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	email = rules.MailtoRE.ReplaceAllString(email, "")
	email = strings.Trim(strings.TrimSpace(email), "<>")

	if !strings.Contains(email, "@") {
		return email
	}

	local, domain, _ := strings.Cut(email, "@")

	local = strings.Trim(local, ".")
	local = strings.ReplaceAll(local, "-", ".")
	for strings.Contains(local, "..") {
		local = strings.ReplaceAll(local, "..", ".")
	}
	for strings.Contains(domain, "..") {
		domain = strings.ReplaceAll(domain, "..", ".")
	}
	domain = strings.Trim(domain, ".-")

	result := email
	if local != "" && domain != "" {
		result = local + "@" + domain
	}

	if fixed, ok := rules.EmailFixes[result]; ok {
		result = fixed
	}
	return result
}

func isLikelyEPA(domain string) bool {
	if !strings.HasSuffix(domain, ".gov") {
		return false
	}
	host := strings.TrimSuffix(domain, ".gov")
	if host == "" {
		return false
	}
	if len(host) == 3 {
		return strmatch.Levenshtein(host, "epa") <= 1
	}
	if len(host) == 4 {
		for i := range host {
			reduced := host[:i] + host[i+1:]
			if strmatch.Levenshtein(reduced, "epa") <= 1 {
				return true
			}
		}
	}
	return false
}

var suffixFixes = []struct{ bad, good string }{
	{".qov", ".gov"}, {".aov", ".gov"}, {".goy", ".gov"},
	{".rov", ".gov"}, {".sov", ".gov"}, {".eov", ".gov"},
	{".oov", ".gov"}, {".fiov", ".gov"}, {".gow", ".gov"},
	{".gcn", ".gov"}, {".gq", ".gov"},
	{".gqy", ".gov"}, {".ggy", ".gov"},
	{".gg", ".gov"},
	{".eom", ".com"}, {".corn", ".com"}, {".coml", ".com"},
	{".comi", ".com"},
	{".orq", ".org"}, {".orql", ".org"},
	{".ora", ".org"}, {".ore", ".org"},
	{".orgl", ".org"},
	{".edul", ".edu"},
}

// NormalizeDomain is Layer 2.
func NormalizeDomain(domain string) string {
	domain = strings.Trim(strings.ToLower(domain), ".-")
	domain = strings.ReplaceAll(domain, " ", "")

	if _, ok := rules.EPAErrorDomains[domain]; ok {
		return "epa.gov"
	}
	if domain == "iepa.gov" || domain == "calepa.ca.gov" {
		return domain
	}
	if fixed, ok := rules.DomainFixes[domain]; ok {
		return fixed
	}

	parts := strings.Split(domain, ".")
	if len(parts) >= 3 {
		lastTwo := parts[len(parts)-2] + parts[len(parts)-1]
		if len(parts[len(parts)-2]) <= 2 && len(parts[len(parts)-1]) <= 3 && len(lastTwo) <= 4 {
			domain = strings.Join(parts[:len(parts)-2], ".") + "." + lastTwo
		} else if len(parts) >= 4 && allShort(parts[len(parts)-3:], 2) {
			joined := strings.Join(parts[len(parts)-3:], "")
			if len(joined) <= 5 {
				domain = strings.Join(parts[:len(parts)-3], ".") + "." + joined
			}
		}
	}

	if _, ok := rules.EPAErrorDomains[domain]; ok {
		return "epa.gov"
	}

	for i := 0; i < 3; i++ {
		changed := false
		if strings.HasSuffix(domain, ".govl") || strings.HasSuffix(domain, ".gov1") ||
			strings.HasSuffix(domain, ".govj") || strings.HasSuffix(domain, ".govi") {
			domain = domain[:len(domain)-1]
			changed = true
		}
		if !changed {
			for _, f := range suffixFixes {
				if strings.HasSuffix(domain, f.bad) {
					domain = strings.TrimSuffix(domain, f.bad) + f.good
					changed = true
					break
				}
			}
		}
		if !changed && strings.HasSuffix(domain, ".go") {
			host := strings.TrimSuffix(domain, ".go")
			hostParts := strings.Split(host, ".")
			if host != "" && len(hostParts[len(hostParts)-1]) <= 5 {
				domain += "v"
				changed = true
			}
		}
		if !changed && len(domain) > 4 {
			idx := strings.LastIndex(domain, ".")
			tld := domain[idx+1:]
			if tld != "html" && tld != "mil" && (strings.HasSuffix(tld, "l") || strings.HasSuffix(tld, "1") || strings.HasSuffix(tld, "j")) {
				domain = domain[:len(domain)-1]
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	if _, ok := rules.EPAErrorDomains[domain]; ok {
		return "epa.gov"
	}
	if fixed, ok := rules.DomainFixes[domain]; ok {
		return fixed
	}

	parts = strings.Split(domain, ".")
	if len(parts) >= 2 {
		for i := 0; i < len(parts)-1; i++ {
			part := parts[i]
			for _, sub := range rules.DomainOCRCharMap {
				part = strings.ReplaceAll(part, sub.From, sub.To)
			}
			parts[i] = part
		}
		domain = strings.Join(parts, ".")
	}

	if _, ok := rules.EPAErrorDomains[domain]; ok {
		return "epa.gov"
	}
	if fixed, ok := rules.DomainFixes[domain]; ok {
		return fixed
	}

	if isLikelyEPA(domain) {
		return "epa.gov"
	}
	return domain
}

func allShort(parts []string, maxLen int) bool {
	for _, p := range parts {
		if len(p) > maxLen {
			return false
		}
	}
	return true
}

// ApplyDomainNormalization runs NormalizeDomain over the domain half of a
// full address, leaving addresses with no '@' untouched.
func ApplyDomainNormalization(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return email
	}
	return local + "@" + NormalizeDomain(domain)
}

// OCRNormalizeLocal applies LOCAL_OCR_CHAR_MAP longest-pattern-first. Used
// only for grouping, never for display.
func OCRNormalizeLocal(local string) string {
	subs := append([]struct{ From, To string }(nil), rules.LocalOCRCharMap...)
	sort.SliceStable(subs, func(i, j int) bool { return len(subs[i].From) > len(subs[j].From) })
	result := local
	for _, s := range subs {
		result = strings.ReplaceAll(result, s.From, s.To)
	}
	return result
}

var localSplitRE = regexp.MustCompile(`[._\-]`)

// CanonicalizeLocal splits local on [._-], drops tokens of length <=1, and
// if 2+ tokens remain, sorts and rejoins them with '.'. Order-insensitive by
// construction: "a.b" and "b.a" canonicalize identically.
func CanonicalizeLocal(local string) string {
	tokens := splitTokens(local, localSplitRE, 1)
	if len(tokens) >= 2 {
		sorted := append([]string(nil), tokens...)
		sort.Strings(sorted)
		return strings.Join(sorted, ".")
	}
	return local
}

func splitTokens(s string, re *regexp.Regexp, minLen int) []string {
	raw := re.Split(s, -1)
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if len(t) > minLen {
			out = append(out, t)
		}
	}
	return out
}

// ApplyLocalOCRNormalization is Layer 3: OCR-normalize then canonicalize the
// local part, leaving the domain untouched.
func ApplyLocalOCRNormalization(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return email
	}
	local = OCRNormalizeLocal(local)
	local = CanonicalizeLocal(local)
	return local + "@" + domain
}

var digitInAlphaRE = regexp.MustCompile(`[._]`)

var digitToLetter = map[byte]byte{'1': 'l', '0': 'o', '3': 'e', '8': 'b', '5': 's', '6': 'b', '2': 'z'}

// OCRCleanLocalForDisplay performs the conservative digit-in-alpha
// substitution used only when producing a display id: digits surrounded by
// lowercase letters, or a leading digit before 3+ lowercase letters, are
// replaced. Letter-to-letter OCR fixes are deliberately NOT applied here.
func OCRCleanLocalForDisplay(local string) string {
	parts := splitKeepDelims(local, digitInAlphaRE)
	var b strings.Builder
	for _, part := range parts {
		if part == "." || part == "_" {
			b.WriteString(part)
			continue
		}
		b.WriteString(cleanAlphaPart(part))
	}
	return b.String()
}

func splitKeepDelims(s string, re *regexp.Regexp) []string {
	var out []string
	last := 0
	for _, loc := range re.FindAllStringIndex(s, -1) {
		if loc[0] > last {
			out = append(out, s[last:loc[0]])
		}
		out = append(out, s[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(s) {
		out = append(out, s[last:])
	}
	return out
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func cleanAlphaPart(part string) string {
	if isAllDigits(part) {
		return part
	}
	b := []byte(part)
	for i := 1; i < len(b)-1; i++ {
		if letter, ok := digitToLetter[b[i]]; ok && isLowerLetter(b[i-1]) && isLowerLetter(b[i+1]) {
			b[i] = letter
		}
	}
	result := string(b)
	for _, digit := range []byte{'3', '1', '0', '6', '5', '8', '2'} {
		if len(result) > 3 && result[0] == digit && allLowerLetters(result[1:4]) {
			result = string(digitToLetter[digit]) + result[1:]
		}
	}
	return result
}

func isLowerLetter(c byte) bool { return c >= 'a' && c <= 'z' }

func allLowerLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isLowerLetter(s[i]) {
			return false
		}
	}
	return true
}
