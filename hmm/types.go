package hmm

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a malformed training record or parameter table.
	ErrInvalidInput = errors.New("hmm: invalid input")

	// ErrEmptyInput indicates a corpus without a single token.
	ErrEmptyInput = errors.New("hmm: empty input")
)

// DefaultTransitionFloor is the probability used for a (prev, cur) pair that
// has no entry in the transition table.
const DefaultTransitionFloor = 1e-10

// Tag is a hidden state label, e.g. a Universal POS tag.
type Tag string

// Word is an observed symbol. The vocabulary is open.
type Word string

// Token is one position of a tagged sentence.
type Token struct {
	Word Word
	Tag  Tag
}

// Sequence is an ordered tagged sentence.
type Sequence []Token

// Words returns the observation sequence of s.
func (s Sequence) Words() []Word {
	out := make([]Word, len(s))
	for i, tok := range s {
		out[i] = tok.Word
	}

	return out
}

// Tags returns the gold tag sequence of s.
func (s Sequence) Tags() []Tag {
	out := make([]Tag, len(s))
	for i, tok := range s {
		out[i] = tok.Tag
	}

	return out
}

// Zip pairs position-aligned words and tags into a Sequence.
// Differing lengths are reported as ErrInvalidInput; nothing is truncated.
func Zip(words []Word, tags []Tag) (Sequence, error) {
	if len(words) != len(tags) {
		return nil, fmt.Errorf("zip %d words with %d tags: %w", len(words), len(tags), ErrInvalidInput)
	}
	seq := make(Sequence, len(words))
	for i := range words {
		seq[i] = Token{Word: words[i], Tag: tags[i]}
	}

	return seq, nil
}
