package bee

import "fmt"

// A Field is one of the figures tracked by Maxima.
type Field int

const (
	FieldPangrams Field = iota
	FieldPerfect
	FieldWords
	FieldRatio
	FieldScore

	numFields
)

var fieldNames = [numFields]string{
	FieldPangrams: "pangrams",
	FieldPerfect:  "perfect",
	FieldWords:    "words",
	FieldRatio:    "ratio",
	FieldScore:    "score",
}

func (f Field) String() string {
	if f < 0 || f >= numFields {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Fields lists every Field in the order Maxima checks them.
func Fields() []Field {
	return []Field{FieldPangrams, FieldPerfect, FieldWords, FieldRatio, FieldScore}
}

// Get returns the value of field f.
func (s Stats) Get(f Field) int {
	switch f {
	case FieldPangrams:
		return s.Pangrams
	case FieldPerfect:
		return s.Perfect
	case FieldWords:
		return s.Words
	case FieldRatio:
		return s.Ratio
	case FieldScore:
		return s.Score
	}
	panic(fmt.Sprintf("bee: bad field %d", int(f)))
}

// MinRatioWords is the fewest words a puzzle needs for its ratio to count
// as a record. One pangram out of one word is not interesting.
const MinRatioWords = 10

// Maxima holds the best value seen so far for each Field.
// The zero value is ready to use.
type Maxima struct {
	Pangrams int
	Perfect  int
	Words    int
	Ratio    int
	Score    int
}

// Get returns the maximum for field f.
func (m Maxima) Get(f Field) int { return *m.ptr(f) }

func (m *Maxima) ptr(f Field) *int {
	switch f {
	case FieldPangrams:
		return &m.Pangrams
	case FieldPerfect:
		return &m.Perfect
	case FieldWords:
		return &m.Words
	case FieldRatio:
		return &m.Ratio
	case FieldScore:
		return &m.Score
	}
	panic(fmt.Sprintf("bee: bad field %d", int(f)))
}

// A Record is emitted when a puzzle beats the maximum for a Field.
type Record struct {
	Field    Field
	Alphabet Alphabet
	Stats    Stats
	Prev     int // maximum before this record
}

// Value returns the new maximum.
func (r Record) Value() int { return r.Stats.Get(r.Field) }

func (r Record) String() string {
	return fmt.Sprintf("%s %s: %d -> %d", r.Alphabet, r.Field, r.Prev, r.Value())
}

// Consider updates m with the Stats of puzzle a and returns a Record for
// every field whose maximum a beats, in the order of Fields. The ratio only
// counts when s.Words is at least MinRatioWords.
func (m *Maxima) Consider(a Alphabet, s Stats) []Record {
	var recs []Record
	for f := range numFields {
		if r, ok := m.observe(f, a, s); ok {
			recs = append(recs, r)
		}
	}
	return recs
}

func (m *Maxima) observe(f Field, a Alphabet, s Stats) (Record, bool) {
	if f == FieldRatio && s.Words < MinRatioWords {
		return Record{}, false
	}
	p := m.ptr(f)
	v := s.Get(f)
	if v <= *p {
		return Record{}, false
	}
	r := Record{Field: f, Alphabet: a, Stats: s, Prev: *p}
	*p = v
	return r, true
}

// Merge sets each field of m to the larger of m's and m1's.
func (m *Maxima) Merge(m1 Maxima) {
	for f := range numFields {
		if v := m1.Get(f); v > m.Get(f) {
			*m.ptr(f) = v
		}
	}
}
