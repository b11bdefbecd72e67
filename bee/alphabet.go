// Package bee solves Spelling Bee puzzles and searches the space of all
// puzzles for the ones that maximize word counts and scores.
//
// A puzzle is an Alphabet of seven distinct lowercase letters, the first of
// which is the center letter. A word is usable if it has at least four letters,
// contains the center letter, and uses no letter outside the alphabet.
package bee

import (
	"errors"
	"fmt"
	"unicode"
)

// Size is the number of letters in an Alphabet.
const Size = 7

// An Alphabet is a puzzle: seven distinct letters with the center letter
// at index 0. The order of the remaining letters carries no meaning.
type Alphabet [Size]byte

var (
	ErrLetter    = errors.New("disallowed letter")
	ErrLength    = errors.New("wrong number of letters")
	ErrDuplicate = errors.New("duplicate letter")
)

// ParseAlphabet parses a puzzle given as letters, center first.
// Letters may be upper or lower case and may be separated by whitespace.
func ParseAlphabet(s string) (Alphabet, error) {
	var a Alphabet
	var n int
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
			r += 'a' - 'A'
		case unicode.IsSpace(r):
			continue
		default:
			return a, fmt.Errorf("input contains %w %q", ErrLetter, r)
		}
		if n == Size {
			return a, fmt.Errorf("got more than %d letters: %w", Size, ErrLength)
		}
		a[n] = byte(r)
		n++
	}
	if n != Size {
		return a, fmt.Errorf("got %d letters; expected %d: %w", n, Size, ErrLength)
	}
	for i, c := range a {
		for j := i + 1; j < Size; j++ {
			if c == a[j] {
				return a, fmt.Errorf("input contains %w %q", ErrDuplicate, c)
			}
		}
	}
	return a, nil
}

// MustParseAlphabet is like ParseAlphabet but panics on error.
func MustParseAlphabet(s string) Alphabet {
	a, err := ParseAlphabet(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Center returns the center letter.
func (a Alphabet) Center() byte { return a[0] }

func (a Alphabet) String() string { return string(a[:]) }

// Contains reports whether c is one of the letters of a.
func (a Alphabet) Contains(c byte) bool {
	for _, l := range a {
		if l == c {
			return true
		}
	}
	return false
}

// Canonical reports whether the letters after the center are in strictly
// ascending order. Every puzzle has exactly one canonical form per center.
func (a Alphabet) Canonical() bool {
	for i := 2; i < Size; i++ {
		if a[i] <= a[i-1] {
			return false
		}
	}
	return true
}

func (a Alphabet) set() letterSet {
	var set letterSet
	for _, c := range a {
		set |= letterBit(c)
	}
	return set
}

// A letterSet has bit n set if the letter 'a'+n is present.
type letterSet uint32

// otherBit marks any byte that is not a lowercase letter.
// No alphabet contains it, so a word containing such a byte never matches.
const otherBit letterSet = 1 << 31

func letterBit(c byte) letterSet {
	if c < 'a' || c > 'z' {
		return otherBit
	}
	return 1 << (c - 'a')
}

func makeLetterSet(word string) letterSet {
	var set letterSet
	for i := 0; i < len(word); i++ {
		set |= letterBit(word[i])
	}
	return set
}

func (s letterSet) subsetOf(t letterSet) bool { return s&t == s }
