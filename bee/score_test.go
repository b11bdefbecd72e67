package bee

import (
	"errors"
	"testing"
)

func TestIsValid(t *testing.T) {
	for _, tt := range []struct {
		word     string
		alphabet string
		want     bool
	}{
		{"hello", "heloabc", true},
		{"world", "heloabc", false},
		{"world", "worldab", true},
		{"hello", "helabcd", false},
		{"world", "wrldabc", false},
		{"abcd", "abcdefg", true},
		{"bcde", "abcdefg", false}, // no center letter
		{"abc", "abcdefg", false},  // too short
		{"aaaa", "abcdefg", true},
		{"abcz", "abcdefg", false},
		{"Abcd", "abcdefg", false},
		{"ab-cd", "abcdefg", false},
	} {
		a := MustParseAlphabet(tt.alphabet)
		if got := IsValid(tt.word, a); got != tt.want {
			t.Errorf("IsValid(%q, %s): got %t; want %t", tt.word, a, got, tt.want)
		}
	}
}

func TestIsPangram(t *testing.T) {
	retains := MustParseAlphabet("retains")
	for _, tt := range []struct {
		word string
		want bool
	}{
		{"itinerants", true},
		{"nastier", true},
		{"stainer", true},
		{"antistress", true},
		{"retints", false},
		{"insert", false},
		{"arena", false},
		{"eeriness", false},
		// Extra letters don't matter here; IsValid rejects such words.
		{"restrainsx", true},
	} {
		if got := IsPangram(tt.word, retains); got != tt.want {
			t.Errorf("IsPangram(%q, retains): got %t; want %t", tt.word, got, tt.want)
		}
	}
}

func TestIsPerfect(t *testing.T) {
	retains := MustParseAlphabet("retains")
	for _, tt := range []struct {
		word string
		want bool
	}{
		{"nastier", true},
		{"stainer", true},
		{"itinerants", false},
		{"retints", false},
	} {
		if got := IsPerfect(tt.word, retains); got != tt.want {
			t.Errorf("IsPerfect(%q, retains): got %t; want %t", tt.word, got, tt.want)
		}
	}
}

func TestScore(t *testing.T) {
	retains := MustParseAlphabet("retains")
	for _, tt := range []struct {
		word     string
		alphabet Alphabet
		want     int
	}{
		{"abcd", MustParseAlphabet("abcdefg"), 1},
		{"abcde", MustParseAlphabet("abcdefg"), 5},
		{"abcdefg", MustParseAlphabet("abcdefg"), 14},
		{"gfedcbaa", MustParseAlphabet("abcdefg"), 15},
		{"rant", retains, 1},
		{"insert", retains, 6},
		{"nastier", retains, 14},
		{"itinerants", retains, 17},
	} {
		if got := Score(tt.word, tt.alphabet); got != tt.want {
			t.Errorf("Score(%q, %s): got %d; want %d", tt.word, tt.alphabet, got, tt.want)
		}
	}
}

func TestScoreMatchesDefinition(t *testing.T) {
	a := MustParseAlphabet("retains")
	for _, w := range []string{"rant", "rants", "insert", "nastier", "itinerants", "tear"} {
		want := len(w)
		if len(w) == 4 {
			want = 1
		}
		if IsPangram(w, a) {
			want += 7
		}
		if got := Score(w, a); got != want {
			t.Errorf("Score(%q): got %d; want %d", w, got, want)
		}
	}
}

func TestParseAlphabet(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want string
	}{
		{"retains", "retains"},
		{"RETAINS", "retains"},
		{"r e t\tains", "retains"},
		{" r etains\n", "retains"},
	} {
		a, err := ParseAlphabet(tt.s)
		if err != nil {
			t.Errorf("ParseAlphabet(%q): %s", tt.s, err)
			continue
		}
		if got := a.String(); got != tt.want {
			t.Errorf("ParseAlphabet(%q): got %q; want %q", tt.s, got, tt.want)
		}
		if a.Center() != 'r' {
			t.Errorf("ParseAlphabet(%q).Center(): got %q; want 'r'", tt.s, a.Center())
		}
	}
}

func TestParseAlphabetErrors(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want error
	}{
		{"", ErrLength},
		{"abcdef", ErrLength},
		{"abcdefgh", ErrLength},
		{"abcdefa", ErrDuplicate},
		{"abcdeFf", ErrDuplicate},
		{"abc1efg", ErrLetter},
		{"abcdéfg", ErrLetter},
		{"maximum", ErrDuplicate},
	} {
		_, err := ParseAlphabet(tt.s)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseAlphabet(%q): got error %v; want %v", tt.s, err, tt.want)
		}
	}
}

func TestCanonical(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want bool
	}{
		{"abcdefg", true},
		{"zabcdef", true},
		{"gabcdef", true},
		{"abcdegf", false},
		{"acbdefg", false},
	} {
		if got := MustParseAlphabet(tt.s).Canonical(); got != tt.want {
			t.Errorf("%s.Canonical(): got %t; want %t", tt.s, got, tt.want)
		}
	}
}

func BenchmarkIsValid(b *testing.B) {
	a := MustParseAlphabet("retains")
	for range b.N {
		if !IsValid("itinerants", a) {
			b.Fatal("not valid")
		}
	}
}
