package screening

import (
	"sort"
	"strings"

	"github.com/remessas/screening-service/internal/domain"
)

// MatchResult is the outcome of screening a candidate name against a
// reference list.
type MatchResult struct {
	Matched     bool   `json:"matched"`
	MatchedName string `json:"matched_name,omitempty"`
	Similarity  int    `json:"similarity"` // 0-100
}

// MatchName compares a candidate name against every entry of a reference
// list and returns the best match. Two similarity measures are computed per
// entry: a character-level edit-distance ratio, and the same ratio over
// whitespace tokens sorted alphabetically, which catches reordered
// given/family names ("Ahmad Mohammad" vs "Mohammad Ahmad"). The higher of
// the two wins per entry; the best entry wins overall. Matched is true iff
// that maximum reaches the threshold.
//
// Identical inputs always produce identical output. An empty candidate is
// never a match and never an error.
func MatchName(candidate string, referenceList []string, threshold int) MatchResult {
	normalized := domain.NormalizeName(candidate)
	if normalized == "" {
		return MatchResult{}
	}

	best := MatchResult{}
	for _, entry := range referenceList {
		normalizedEntry := domain.NormalizeName(entry)
		if normalizedEntry == "" {
			continue
		}

		score := ratio(normalized, normalizedEntry)
		if ts := ratio(sortTokens(normalized), sortTokens(normalizedEntry)); ts > score {
			score = ts
		}

		if score > best.Similarity {
			best.Similarity = score
			best.MatchedName = entry
		}
	}

	best.Matched = best.Similarity >= threshold
	if !best.Matched {
		best.MatchedName = ""
	}
	return best
}

// sortTokens rebuilds a normalized name with its whitespace-delimited
// tokens in alphabetical order.
func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// ratio calculates edit-distance similarity between two strings as an
// integer percentage. 100 means identical, 0 means nothing in common.
func ratio(s1, s2 string) int {
	if s1 == s2 {
		return 100
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	if len(r1) == 0 || len(r2) == 0 {
		return 0
	}

	longer := len(r1)
	if len(r2) > longer {
		longer = len(r2)
	}

	dist := levenshtein(r1, r2)
	return (longer - dist) * 100 / longer
}

// levenshtein computes the edit distance between two rune slices using the
// classic two-row dynamic programming table.
func levenshtein(r1, r2 []rune) int {
	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)

	for j := 0; j <= len(r2); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}

			curr[j] = prev[j-1] + cost
			if del := prev[j] + 1; del < curr[j] {
				curr[j] = del
			}
			if ins := curr[j-1] + 1; ins < curr[j] {
				curr[j] = ins
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(r2)]
}
