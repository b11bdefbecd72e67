package bee

import "math/bits"

// A Dictionary is a word list indexed for fast evaluation of many puzzles.
//
// Words are grouped by the set of letters they use. A puzzle can only accept
// words whose letter set is the center letter plus some subset of the other
// six letters, so Stats probes 64 groups instead of scanning every word.
type Dictionary struct {
	words  []string
	groups map[letterSet]wordGroup
}

type wordGroup struct {
	words   int
	base    int // sum of scores without the pangram bonus
	perfect int // words of length Size
}

// NewDictionary indexes words. The slice is retained and must not be modified.
// Words that can never be valid (too short, with more than Size distinct
// letters, or containing bytes other than lowercase letters) are left out of
// the index but kept in Words.
func NewDictionary(words []string) *Dictionary {
	d := &Dictionary{
		words:  words,
		groups: make(map[letterSet]wordGroup),
	}
	for _, w := range words {
		if len(w) < MinWordLen {
			continue
		}
		set := makeLetterSet(w)
		if set&otherBit != 0 || bits.OnesCount32(uint32(set)) > Size {
			continue
		}
		g := d.groups[set]
		g.words++
		g.base += baseScore(w)
		if len(w) == Size {
			g.perfect++
		}
		d.groups[set] = g
	}
	return d
}

// Words returns the word list in its original order.
func (d *Dictionary) Words() []string { return d.words }

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.words) }

// Solve is like Solve(d.Words(), a).
func (d *Dictionary) Solve(a Alphabet) Solution { return Solve(d.words, a) }

// Stats returns the same Stats as d.Solve(a).Stats without building the
// word list.
func (d *Dictionary) Stats(a Alphabet) Stats {
	var tail [Size - 1]letterSet
	for i := range tail {
		tail[i] = letterBit(a[i+1])
	}
	full := a.set()

	var s Stats
	var subsets [1 << (Size - 1)]letterSet
	subsets[0] = letterBit(a.Center())
	for mask := range len(subsets) {
		if mask > 0 {
			low := bits.TrailingZeros(uint(mask))
			subsets[mask] = subsets[mask&(mask-1)] | tail[low]
		}
		set := subsets[mask]
		g, ok := d.groups[set]
		if !ok {
			continue
		}
		s.Words += g.words
		s.Score += g.base
		if set == full {
			s.Pangrams += g.words
			s.Perfect += g.perfect
			s.Score += PangramBonus * g.words
		}
	}
	s.Ratio = ratio(s.Pangrams, s.Words)
	return s
}
