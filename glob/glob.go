// Package glob implements the single-wildcard pattern matcher used to
// select OpenAPI paths. A pattern may contain zero or more '*'
// wildcards; each matches any (possibly empty) run of bytes, including
// '/'. There is no '?' or character-class syntax. Matching is
// case-sensitive and byte-wise.
package glob

// Match reports whether subject matches pattern. A pattern with no '*'
// requires exact equality. An empty pattern matches only the empty
// subject.
//
// The algorithm is the classic two-pointer greedy wildcard match: walk
// both strings in lockstep while characters agree; on a '*', remember
// the position and speculatively consume zero characters of subject;
// on a mismatch, backtrack to the most recent '*' and consume one more
// subject character under it.
func Match(pattern, subject string) bool {
	var pIdx, sIdx int
	var starIdx, matchIdx = -1, 0

	for sIdx < len(subject) {
		switch {
		case pIdx < len(pattern) && pattern[pIdx] == '*':
			starIdx = pIdx
			matchIdx = sIdx
			pIdx++
		case pIdx < len(pattern) && pattern[pIdx] == subject[sIdx]:
			pIdx++
			sIdx++
		case starIdx != -1:
			pIdx = starIdx + 1
			matchIdx++
			sIdx = matchIdx
		default:
			return false
		}
	}

	for pIdx < len(pattern) && pattern[pIdx] == '*' {
		pIdx++
	}

	return pIdx == len(pattern)
}

// MatchAny reports whether subject matches at least one pattern in
// patterns, or whether patterns is empty (meaning "match everything").
func MatchAny(patterns []string, subject string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		if Match(p, subject) {
			return true
		}
	}
	return false
}
