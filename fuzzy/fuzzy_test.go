package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchTiers(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		score   float64
		matches []int
	}{
		{"exact", "staging", "staging", 1.0, []int{0, 1, 2, 3, 4, 5, 6}},
		{"exact ignores case", "STAGING", "staging", 1.0, []int{0, 1, 2, 3, 4, 5, 6}},
		{"prefix", "stag", "staging", 0.9, []int{0, 1, 2, 3}},
		{"substring", "agi", "staging", 0.8, []int{2, 3, 4}},
		{"empty pattern", "", "anything", 1.0, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, matches := Match(tt.pattern, tt.text)
			assert.InDelta(t, tt.score, score, 1e-9)
			assert.Equal(t, tt.matches, matches)
		})
	}
}

func TestMatchScattered(t *testing.T) {
	score, matches := Match("sg", "staging")
	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 0.8)
	assert.Equal(t, []int{0, 3}, matches)
}

func TestMatchMiss(t *testing.T) {
	score, matches := Match("xyz", "staging")
	assert.Zero(t, score)
	assert.Empty(t, matches)

	// Out-of-order characters do not match.
	score, _ = Match("gs", "stag")
	assert.Zero(t, score)
}

func TestTighterMatchScoresHigher(t *testing.T) {
	tight, _ := Match("ab", "axb")
	loose, _ := Match("ab", "axxxxxb")
	assert.Greater(t, tight, loose)
}

func TestRankOrdersBestFirst(t *testing.T) {
	candidates := []string{"production", "staging", "stage-eu", "database"}

	results := Rank("stag", candidates, 0.3)
	require.Len(t, results, 2)
	// "staging" and "stage-eu" are both prefix matches; ties keep candidate
	// order.
	assert.Equal(t, 1, results[0].Index)
	assert.Equal(t, 2, results[1].Index)
}

func TestRankFiltersBelowMinScore(t *testing.T) {
	results := Rank("zzz", []string{"staging", "prod"}, 0.3)
	assert.Empty(t, results)
}

func TestRankExactBeatsPrefix(t *testing.T) {
	results := Rank("stage", []string{"stage-eu", "stage"}, 0.3)
	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Index)
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
}
