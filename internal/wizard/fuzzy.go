package wizard

import "github.com/sahilm/fuzzy"

// Match is one ranked fuzzy result. MatchedIndexes are byte offsets into
// Str of the characters that matched the query.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
}

// Rank returns the pool entries that contain query as a subsequence,
// best first; equal scores keep pool order. An empty query returns the
// whole pool unranked.
func Rank(pool []string, query string) []Match {
	if query == "" {
		out := make([]Match, len(pool))
		for i, s := range pool {
			out[i] = Match{Str: s, Index: i}
		}
		return out
	}

	found := fuzzy.Find(query, pool)
	out := make([]Match, len(found))
	for i, m := range found {
		out[i] = Match{Str: m.Str, Index: m.Index, MatchedIndexes: m.MatchedIndexes}
	}
	return out
}

// Filter is Rank without match positions.
func Filter(pool []string, query string) []string {
	ranked := Rank(pool, query)
	out := make([]string, len(ranked))
	for i, m := range ranked {
		out[i] = m.Str
	}
	return out
}
