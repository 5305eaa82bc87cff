// Package fuzzy scores candidate strings against a query using fzf's
// FuzzyMatchV2 algorithm. Matching is case-insensitive: the pattern is
// lowercased once and the algorithm folds candidate runes during
// alignment, so the returned positions always index the original text.
// The scorer is pure; identical inputs always produce the identical
// score and position set.
package fuzzy

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Result holds the outcome of one match: the quality score and the
// rune-level positions of matched characters, ascending.
type Result struct {
	Score     int
	Positions []int
}

// NewPattern prepares a query for repeated matching. The pattern is
// lowercased once here so per-candidate calls avoid redundant folding.
func NewPattern(query string) []rune {
	return []rune(strings.ToLower(query))
}

// NewSlab allocates a reusable memory pool for matching many candidates
// in a loop. Pass nil to Match for one-off calls.
func NewSlab() *util.Slab {
	return util.MakeSlab(100*1024, 2048)
}

// Match aligns text against pattern. An empty pattern matches everything
// with the baseline score of zero and no highlighted positions. A
// non-empty pattern with no subsequence alignment reports ok=false.
func Match(text string, pattern []rune, slab *util.Slab) (Result, bool) {
	if len(pattern) == 0 {
		return Result{}, true
	}

	// The candidate is not pre-lowered: ToLower can change the rune count
	// (U+0130 lowers to two runes) and shift positions off the original
	// text. The algorithm folds per rune instead.
	chars := util.ToChars([]byte(text))
	result, positions := algo.FuzzyMatchV2(
		false, // fold candidate case against the lowered pattern
		true,  // normalize Unicode before comparing
		true,  // match left to right
		&chars,
		pattern,
		true, // return matched positions
		slab,
	)

	if result.Score <= 0 {
		return Result{}, false
	}

	var pos []int
	if positions != nil {
		pos = make([]int, len(*positions))
		copy(pos, *positions)
		// FuzzyMatchV2 reports positions right to left; ascending order
		// is what the highlighter expects.
		reverse(pos)
	}

	return Result{Score: result.Score, Positions: pos}, true
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
