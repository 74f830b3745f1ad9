package hmm

import (
	"fmt"

	"github.com/katalvlaran/hmmtag/probtable"
)

// Estimate computes maximum-likelihood HMM parameters from tagged sentences.
//
// Algorithm Outline:
//  1. One pass over every token of every sequence, position i:
//     totals[tag]++, emit[tag][word]++,
//     i == 0 ? start[tag]++ : trans[tags[i-1]][tag]++
//  2. Start       = count / Σ start counts
//  3. Trans[prev] = (count + 1) / (Σ counts from prev + |distinct tags|)
//     where |distinct tags| counts every tag seen anywhere in training.
//  4. Emit[tag]   = count / Σ emissions of tag
//
// Empty sequences contribute nothing. The tables are independent of the
// order of the input sequences.
//
// Complexity:
//
//	Time   = O(total tokens)
//	Memory = O(|tags|² + |tags|·|vocabulary|)
//
// Errors:
//   - ErrInvalidInput: a token carries an empty tag (wrapped with its position).
//   - ErrEmptyInput: no sequence contains a token.
func Estimate(seqs []Sequence) (*Model, error) {
	c := newCounter()
	for i, seq := range seqs {
		if err := c.observe(seq); err != nil {
			return nil, fmt.Errorf("sequence %d: %w", i, err)
		}
	}
	if c.tokens == 0 {
		return nil, ErrEmptyInput
	}

	return c.model(), nil
}

// counter accumulates the four count tables of a training run.
type counter struct {
	start  probtable.Counts[Tag]
	trans  map[Tag]probtable.Counts[Tag]
	emit   map[Tag]probtable.Counts[Word]
	totals probtable.Counts[Tag]
	tokens int
}

func newCounter() *counter {
	return &counter{
		start:  probtable.Counts[Tag]{},
		trans:  map[Tag]probtable.Counts[Tag]{},
		emit:   map[Tag]probtable.Counts[Word]{},
		totals: probtable.Counts[Tag]{},
	}
}

func (c *counter) observe(seq Sequence) error {
	for i, tok := range seq {
		if tok.Tag == "" {
			return fmt.Errorf("token %d (%q) has an empty tag: %w", i, tok.Word, ErrInvalidInput)
		}
	}

	var prev Tag
	for i, tok := range seq {
		c.totals.Add(tok.Tag)
		row(c.emit, tok.Tag).Add(tok.Word)
		if i == 0 {
			c.start.Add(tok.Tag)
		} else {
			row(c.trans, prev).Add(tok.Tag)
		}
		prev = tok.Tag
		c.tokens++
	}

	return nil
}

func (c *counter) model() *Model {
	numTags := len(c.totals)

	trans := make(map[Tag]probtable.Table[Tag], len(c.trans))
	for from, counts := range c.trans {
		trans[from] = probtable.Smooth(counts, 1, numTags)
	}
	emit := make(map[Tag]probtable.Table[Word], len(c.emit))
	for tag, counts := range c.emit {
		emit[tag] = probtable.Normalize(counts)
	}

	return newModel(probtable.Normalize(c.start), trans, emit, c.totals)
}

// row returns m[k], creating it on first use.
func row[K comparable](m map[Tag]probtable.Counts[K], k Tag) probtable.Counts[K] {
	r, ok := m[k]
	if !ok {
		r = probtable.Counts[K]{}
		m[k] = r
	}

	return r
}
