package eval

import (
	"errors"

	"github.com/katalvlaran/hmmtag/hmm"
)

// ErrLengthMismatch indicates predictions and gold differ in shape under WithStrictLengths.
var ErrLengthMismatch = errors.New("eval: prediction and gold lengths differ")

// DefaultTopN is the number of confusion pairs reported when n <= 0.
const DefaultTopN = 10

// Pair is one kind of tagging error.
type Pair struct {
	Gold      hmm.Tag
	Predicted hmm.Tag
}

// Confusions counts mismatching tokens per (gold, predicted) pair.
// Correct tokens are never recorded.
type Confusions map[Pair]int

// PairCount is a ranked confusion entry.
type PairCount struct {
	Pair
	Count int
}

// Report is the outcome of Evaluate.
type Report struct {
	Correct    int
	Total      int
	Accuracy   float64 // Correct / Total, 0 when Total == 0
	Confusions Confusions
}

// Option configures Evaluate.
type Option func(*options)

type options struct {
	strict bool
}

// WithStrictLengths rejects differing sentence counts or sentence lengths
// instead of comparing the overlapping prefix.
func WithStrictLengths() Option {
	return func(o *options) { o.strict = true }
}
