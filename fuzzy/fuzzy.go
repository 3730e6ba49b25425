// Package fuzzy scores how well a typed query matches a candidate string.
// The profile search panel uses it to jump to the best-matching profile.
package fuzzy

import (
	"sort"
	"strings"
)

// Result pairs a candidate index with its match score.
type Result struct {
	Index   int
	Score   float64
	Matches []int
}

// Rank scores every candidate against the pattern and returns the ones at
// or above minScore, best first. Ties keep candidate order.
func Rank(pattern string, candidates []string, minScore float64) []Result {
	results := make([]Result, 0, len(candidates))
	for i, c := range candidates {
		score, matches := Match(pattern, c)
		if score >= minScore {
			results = append(results, Result{Index: i, Score: score, Matches: matches})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// Match calculates a score between 0 and 1 for how well the pattern matches
// the text, case-insensitively, and returns the indices of matching
// characters for highlighting. Exact matches score 1, prefix matches 0.9,
// substring matches 0.8; scattered in-order matches score lower, penalized
// by the gaps between matched characters.
func Match(pattern, text string) (float64, []int) {
	if len(pattern) == 0 {
		return 1.0, []int{}
	}

	patternLower := strings.ToLower(pattern)
	textLower := strings.ToLower(text)

	if patternLower == textLower {
		return 1.0, sequential(0, len(pattern))
	}
	if strings.HasPrefix(textLower, patternLower) {
		return 0.9, sequential(0, len(pattern))
	}
	if idx := strings.Index(textLower, patternLower); idx >= 0 {
		return 0.8, sequential(idx, len(pattern))
	}

	// Scattered match: find the pattern characters in order.
	matches := make([]int, 0, len(pattern))
	var i, j int
	for i < len(patternLower) && j < len(textLower) {
		if patternLower[i] == textLower[j] {
			matches = append(matches, j)
			i++
		}
		j++
	}
	if i < len(patternLower) {
		return 0.0, []int{}
	}

	matchRatio := float64(len(pattern)) / float64(len(text))

	gapPenalty := 0.0
	for i := 1; i < len(matches); i++ {
		if gap := matches[i] - matches[i-1] - 1; gap > 0 {
			gapPenalty += float64(gap) / float64(len(text))
		}
	}

	positionBonus := 0.1 * (1.0 - float64(matches[0])/float64(len(text)))

	// Scale scattered matches below the substring tiers.
	score := (matchRatio - gapPenalty + positionBonus) * 0.7
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score, matches
}

func sequential(start, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = start + i
	}
	return out
}
