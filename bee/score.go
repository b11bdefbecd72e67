package bee

// MinWordLen is the length of the shortest usable word.
const MinWordLen = 4

// PangramBonus is added to the score of a word that uses every letter.
const PangramBonus = 7

// IsValid reports whether word can be played in the puzzle a: it has at least
// MinWordLen letters, contains the center letter, and uses only letters of a.
func IsValid(word string, a Alphabet) bool {
	if len(word) < MinWordLen {
		return false
	}
	set := makeLetterSet(word)
	return set&letterBit(a.Center()) != 0 && set.subsetOf(a.set())
}

// IsPangram reports whether word contains every letter of a at least once.
// The word may contain other letters as well.
func IsPangram(word string, a Alphabet) bool {
	return a.set().subsetOf(makeLetterSet(word))
}

// IsPerfect reports whether word is a pangram that uses each letter of a
// exactly once.
func IsPerfect(word string, a Alphabet) bool {
	return len(word) == Size && IsPangram(word, a)
}

// Score returns the points for word: 1 for a four-letter word, otherwise
// one per letter, plus PangramBonus for a pangram.
func Score(word string, a Alphabet) int {
	score := baseScore(word)
	if IsPangram(word, a) {
		score += PangramBonus
	}
	return score
}

func baseScore(word string) int {
	if len(word) == MinWordLen {
		return 1
	}
	return len(word)
}
