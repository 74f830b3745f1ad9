package curve

import (
	"errors"
	"io"
	"time"

	"github.com/katalvlaran/hmmtag/viterbi"
)

var (
	// ErrBadStep indicates a step size that is not positive.
	ErrBadStep = errors.New("curve: step must be positive")

	// ErrEmptyInput indicates an empty training or test corpus, or nothing to plot.
	ErrEmptyInput = errors.New("curve: empty input")
)

// DefaultStep is the number of training sentences added per point.
const DefaultStep = 500

// Options configures Sweep.
type Options struct {
	// Step is the increment in training sentences. Must be > 0.
	Step int

	// Decoder is passed to the tagger. nil means viterbi.DefaultOptions().
	Decoder *viterbi.Options

	// Workers bounds concurrent sentence decoding (<= 0: GOMAXPROCS).
	Workers int

	// Progress, if non-nil, receives a progress bar.
	Progress io.Writer
}

// DefaultOptions returns Step=DefaultStep with default decoding and no progress bar.
func DefaultOptions() Options {
	return Options{Step: DefaultStep}
}

// Point is one measurement of the sweep.
type Point struct {
	Size      int // training sentences used
	Accuracy  float64
	TrainTime time.Duration
	EvalTime  time.Duration
}

// Result is the outcome of Sweep.
type Result struct {
	Points    []Point
	TrainTime time.Duration
	EvalTime  time.Duration
}
