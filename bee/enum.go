package bee

import "iter"

// NumAlphabets is the number of canonical alphabets: 26 choices of center
// times C(25, 6) choices for the other six letters.
const NumAlphabets = 26 * 177_100

// Combinations returns an iterator over the k-element subsets of
// {0, ..., n-1}. Each subset is yielded as an ascending slice of indexes and
// subsets come in lexicographic order. The yielded slice is reused between
// iterations.
func Combinations(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k < 0 || k > n {
			return
		}
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			if !yield(idx) {
				return
			}
			// Advance the rightmost index that still has room.
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	c := 1
	for i := 1; i <= k; i++ {
		c = c * (n - k + i) / i
	}
	return c
}

// others returns the 25 letters other than center in ascending order.
func others(center byte) [25]byte {
	var rest [25]byte
	i := 0
	for c := byte('a'); c <= 'z'; c++ {
		if c != center {
			rest[i] = c
			i++
		}
	}
	return rest
}

// CenterAlphabets returns an iterator over every canonical alphabet with the
// given center letter, in lexicographic order. Each set of six other letters
// is produced exactly once, with those letters in ascending order.
func CenterAlphabets(center byte) iter.Seq[Alphabet] {
	return func(yield func(Alphabet) bool) {
		rest := others(center)
		a := Alphabet{center}
		for idx := range Combinations(len(rest), Size-1) {
			for i, j := range idx {
				a[i+1] = rest[j]
			}
			if !yield(a) {
				return
			}
		}
	}
}

// Alphabets returns an iterator over all NumAlphabets canonical alphabets in
// lexicographic order.
func Alphabets() iter.Seq[Alphabet] {
	return func(yield func(Alphabet) bool) {
		for c := byte('a'); c <= 'z'; c++ {
			for a := range CenterAlphabets(c) {
				if !yield(a) {
					return
				}
			}
		}
	}
}

// A partition is the slice of the search with a fixed center letter and a
// fixed first letter after it. Concatenating the partitions of a center in
// order of first gives CenterAlphabets(center).
type partition struct {
	center byte
	first  int // index into others(center)
}

func (p partition) firstLetter() byte { return others(p.center)[p.first] }

func (p partition) size() int {
	return binomial(25-p.first-1, Size-2)
}

func (p partition) alphabets() iter.Seq[Alphabet] {
	return func(yield func(Alphabet) bool) {
		rest := others(p.center)
		tail := rest[p.first+1:]
		a := Alphabet{p.center, rest[p.first]}
		for idx := range Combinations(len(tail), Size-2) {
			for i, j := range idx {
				a[i+2] = tail[j]
			}
			if !yield(a) {
				return
			}
		}
	}
}

// centerPartitions lists the non-empty partitions for center in enumeration
// order.
func centerPartitions(center byte) []partition {
	var parts []partition
	for first := 0; first <= 25-(Size-1); first++ {
		parts = append(parts, partition{center: center, first: first})
	}
	return parts
}
