// Package strmatch holds the two pure string kernels the clustering layers
// gate on: Levenshtein edit distance and Jaro-Winkler similarity.
package strmatch

import levenshtein "github.com/ka-weihe/fast-levenshtein"

// Levenshtein returns the unit-cost edit distance between s and t.
// Delegates to fast-levenshtein, which already does the two-row rolling
// computation with early exits for equal/empty strings.
func Levenshtein(s, t string) int {
	return levenshtein.Distance(s, t)
}

// JaroWinkler returns the Jaro-Winkler similarity of s1 and s2 in [0,1]:
// standard Jaro with match window max(|s|,|t|)/2-1, then a Winkler boost of
// +0.1*prefix*(1-jaro) with prefix = min(4, matching leading chars).
func JaroWinkler(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}
	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	r1, r2 := []rune(s1), []rune(s2)
	maxDist := max(len(r1), len(r2))/2 - 1
	if maxDist < 0 {
		maxDist = 0
	}

	s1Matches := make([]bool, len(r1))
	s2Matches := make([]bool, len(r2))

	matches := 0
	for i := range r1 {
		start := i - maxDist
		if start < 0 {
			start = 0
		}
		end := i + maxDist + 1
		if end > len(r2) {
			end = len(r2)
		}
		for j := start; j < end; j++ {
			if s2Matches[j] || r1[i] != r2[j] {
				continue
			}
			s1Matches[i] = true
			s2Matches[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0.0
	}

	transpositions := 0
	k := 0
	for i := range r1 {
		if !s1Matches[i] {
			continue
		}
		for !s2Matches[k] {
			k++
		}
		if r1[i] != r2[k] {
			transpositions++
		}
		k++
	}

	m := float64(matches)
	jaro := (m/float64(len(r1)) + m/float64(len(r2)) + (m-float64(transpositions)/2)/m) / 3

	prefix := 0
	limit := 4
	if len(r1) < limit {
		limit = len(r1)
	}
	if len(r2) < limit {
		limit = len(r2)
	}
	for i := 0; i < limit; i++ {
		if r1[i] != r2[i] {
			break
		}
		prefix++
	}

	return jaro + float64(prefix)*0.1*(1-jaro)
}
