package bee

// Stats are the aggregate figures for one puzzle.
type Stats struct {
	Words    int
	Pangrams int
	Perfect  int
	Score    int
	Ratio    int // Pangrams as a percentage of Words, rounded down
}

func ratio(pangrams, words int) int {
	if words == 0 {
		return 0
	}
	return pangrams * 100 / words
}

// A Solution is the list of words playable in a puzzle along with its Stats.
type Solution struct {
	Alphabet Alphabet
	Words    []string // in dictionary order
	Stats    Stats
}

// Solve finds every word in words that is valid for a.
//
// Words shorter than MinWordLen are skipped. An empty word list yields an
// empty Solution with zero Stats.
func Solve(words []string, a Alphabet) Solution {
	sol := Solution{Alphabet: a}
	for _, w := range words {
		if !IsValid(w, a) {
			continue
		}
		sol.Words = append(sol.Words, w)
		sol.Stats.Score += Score(w, a)
		if IsPangram(w, a) {
			sol.Stats.Pangrams++
			if len(w) == Size {
				sol.Stats.Perfect++
			}
		}
	}
	sol.Stats.Words = len(sol.Words)
	sol.Stats.Ratio = ratio(sol.Stats.Pangrams, sol.Stats.Words)
	return sol
}
