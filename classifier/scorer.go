package classifier

import "regexp"

// PatternGroup is one named group of compiled patterns. Groups are kept in a
// slice, not a map, so scoring ties resolve to the first-declared group.
type PatternGroup[K comparable] struct {
	Key      K
	Patterns []*regexp.Regexp
}

// scoreGroups counts regex occurrences per group over the lowercased text and
// returns the key of the highest-scoring group. A term matched twice counts
// twice. When every group scores zero the caller's default wins; on a tie the
// group declared first wins.
func scoreGroups[K comparable](text string, groups []PatternGroup[K], def K) K {
	best := def
	bestScore := 0
	for _, g := range groups {
		score := 0
		for _, p := range g.Patterns {
			score += len(p.FindAllStringIndex(text, -1))
		}
		if score > bestScore {
			best = g.Key
			bestScore = score
		}
	}
	return best
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}
