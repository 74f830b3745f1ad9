// Package viterbi defines options, modes and results for decoding.
package viterbi

import (
	"errors"

	"github.com/katalvlaran/hmmtag/hmm"
	"github.com/katalvlaran/hmmtag/matrix"
)

var (
	// ErrEmptyInput indicates an empty observation sequence.
	ErrEmptyInput = errors.New("viterbi: observation sequence must be non-empty")

	// ErrNilModel indicates a nil *hmm.Model.
	ErrNilModel = errors.New("viterbi: model is nil")

	// ErrNoTags indicates a model whose start table is empty.
	ErrNoTags = errors.New("viterbi: model has no tags")

	// ErrBadOption indicates an out-of-range option value.
	ErrBadOption = errors.New("viterbi: invalid option")

	// ErrLatticeNeedsMatrix indicates that returning the score lattice requires FullMatrix mode.
	ErrLatticeNeedsMatrix = errors.New("viterbi: ReturnLattice requires MemoryMode=FullMatrix")

	// ErrDegenerateProbability indicates every candidate score at a time step is zero.
	ErrDegenerateProbability = errors.New("viterbi: all path probabilities underflowed to zero")
)

// Space selects the arithmetic scores are accumulated in.
//
//   - Linear: products of probabilities, exactly the textbook recursion.
//     Long sentences may underflow to 0.
//
//   - Log: sums of natural logarithms. Fallback constants enter as
//     their logarithms, so the argmax is the same up to floating-point
//     rounding; ties that are exact in one space may not be exact in the other.
type Space int

const (
	// Linear accumulates products of probabilities.
	Linear Space = iota

	// Log accumulates sums of log-probabilities.
	Log
)

// String implements fmt.Stringer.
func (s Space) String() string {
	switch s {
	case Linear:
		return "linear"
	case Log:
		return "log"
	default:
		return "unknown"
	}
}

// MemoryMode controls how many rows of the score lattice are kept.
//
//   - FullMatrix: keep all T×|tags| scores (required for ReturnLattice).
//
//   - TwoRows: keep the previous and current row only.
//
// Backpointers are O(T·|tags|) integers in both modes.
type MemoryMode int

const (
	// FullMatrix keeps every row of the lattice.
	FullMatrix MemoryMode = iota

	// TwoRows keeps only the previous and current rows.
	TwoRows
)

// Options configures decoding.
//
// Fields:
//   - Space: Linear (default) or Log arithmetic.
//   - MemoryMode: FullMatrix (default) or TwoRows score storage.
//   - ReturnLattice: also return every V[t][j]; requires FullMatrix.
//   - TransitionFloor: probability of an unobserved (prev, cur) pair.
//     0 means hmm.DefaultTransitionFloor; otherwise it must lie in (0, 1].
//   - FailOnUnderflow: return ErrDegenerateProbability instead of a
//     zero-probability path when a whole lattice row is zero.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.Space = Log
//	opts.ReturnLattice = true
//	res, err := Decode(words, model, &opts)
type Options struct {
	Space           Space
	MemoryMode      MemoryMode
	ReturnLattice   bool
	TransitionFloor float64
	FailOnUnderflow bool
}

// DefaultOptions returns the reference configuration: linear space, full
// lattice, transition floor 1e-10, zeros propagated silently.
func DefaultOptions() Options {
	return Options{
		Space:           Linear,
		MemoryMode:      FullMatrix,
		TransitionFloor: hmm.DefaultTransitionFloor,
	}
}

// Result is the outcome of decoding one sentence.
type Result struct {
	// Tags is the most probable tag sequence; len(Tags) == len(obs).
	Tags []hmm.Tag

	// Prob is the joint probability of Tags and the observations.
	// In Log space it is exp(LogProb) and may be 0 for long sentences.
	Prob float64

	// LogProb is ln(Prob), computed without underflow in Log space.
	LogProb float64

	// Lattice holds V[t][j] (T×|tags|) in the chosen Space, columns
	// ordered as model.Tags(). Only set when Options.ReturnLattice is true.
	Lattice *matrix.Dense
}
