package viterbi

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/hmmtag/hmm"
	"github.com/katalvlaran/hmmtag/matrix"
)

// Decode runs Viterbi over obs with a background context.
// See DecodeContext.
func Decode(obs []hmm.Word, m *hmm.Model, opts *Options) (Result, error) {
	return DecodeContext(context.Background(), obs, m, opts)
}

// DecodeContext finds the most probable tag sequence for obs under m.
//
// Algorithm Outline:
//  1. tags = m.Tags() (ascending); N = |tags|, T = len(obs).
//     Precompute the N×N transition matrix, missing pairs = TransitionFloor.
//  2. Initialize: V[0][j] = start(j) · emit(j, obs[0]).
//  3. For t = 1..T−1, for each j:
//     V[t][j] = max_i V[t−1][i] · trans(i, j) · emit(j, obs[t]),
//     B[t][j] = the maximizing i.
//     Candidates i are scanned in ascending tag order and a candidate
//     replaces the incumbent on >=, so among equal scores the greatest
//     tag wins.
//  4. Terminate: j* = argmax_j V[T−1][j] under the same rule,
//     then follow B back to t = 0.
//
// Emission of an unseen (tag, word) pair is m.EmissionFallback(); a tag
// absent from the start table would score 1/N (never the case for a tag
// set derived from the start table). Each row operation multiplies in
// the order (V · trans) · emit.
//
// ctx is checked once per time step; a cancelled or expired ctx aborts
// with ctx.Err().
//
// Complexity:
//
//	Time   = O(N² + T·N²)
//	Memory = O(N² + T·N) (FullMatrix) or O(N² + T·N ints + N) (TwoRows)
//
// Errors:
//   - ErrNilModel, ErrNoTags, ErrEmptyInput: bad inputs.
//   - ErrBadOption, ErrLatticeNeedsMatrix: bad options.
//   - ErrDegenerateProbability: FailOnUnderflow and a zero row.
func DecodeContext(ctx context.Context, obs []hmm.Word, m *hmm.Model, opts *Options) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if m == nil {
		return Result{}, ErrNilModel
	}
	if len(obs) == 0 {
		return Result{}, ErrEmptyInput
	}
	o, err := resolve(opts)
	if err != nil {
		return Result{}, err
	}

	tags := m.Tags()
	n, T := len(tags), len(obs)
	if n == 0 {
		return Result{}, ErrNoTags
	}
	ar := arith(o.Space)

	// Transition matrix in the chosen space; rows = prev, cols = cur.
	trans, err := matrix.NewDense(n, n, matrix.WithValidateNaNInf(false))
	if err != nil {
		return Result{}, err
	}
	for i, prev := range tags {
		tr := trans.Row(i)
		for j, cur := range tags {
			tr[j] = m.Transition(prev, cur, o.TransitionFloor)
		}
	}
	if o.Space == Log {
		if err = trans.Apply(func(_, _ int, p float64) float64 { return math.Log(p) }); err != nil {
			return Result{}, err
		}
	}

	// Score storage: T rows, or two alternating rows.
	height := T
	if o.MemoryMode == TwoRows {
		height = 2
	}
	scores, err := matrix.NewDense(height, n, matrix.WithValidateNaNInf(false))
	if err != nil {
		return Result{}, err
	}
	row := func(t int) []float64 { return scores.Row(t % height) }
	back := make([][]int, T)

	// Initialization.
	cur := row(0)
	for j, tag := range tags {
		cur[j] = ar.mul(ar.lift(m.StartProb(tag)), ar.lift(m.Emission(tag, obs[0])))
	}
	if o.FailOnUnderflow && ar.degenerate(cur) {
		return Result{}, fmt.Errorf("time step 0: %w", ErrDegenerateProbability)
	}

	// Recursion.
	for t := 1; t < T; t++ {
		if err = ctx.Err(); err != nil {
			return Result{}, err
		}
		prev, cur := row(t-1), row(t)
		bt := make([]int, n)
		for j, tag := range tags {
			emit := ar.lift(m.Emission(tag, obs[t]))
			best, arg := math.Inf(-1), 0
			for i := 0; i < n; i++ {
				s := ar.mul(ar.mul(prev[i], trans.Row(i)[j]), emit)
				if s >= best {
					best, arg = s, i
				}
			}
			cur[j] = best
			bt[j] = arg
		}
		back[t] = bt
		if o.FailOnUnderflow && ar.degenerate(cur) {
			return Result{}, fmt.Errorf("time step %d: %w", t, ErrDegenerateProbability)
		}
	}

	// Termination.
	last := row(T - 1)
	best, arg := math.Inf(-1), 0
	for j := 0; j < n; j++ {
		if last[j] >= best {
			best, arg = last[j], j
		}
	}

	// Backtrack.
	path := make([]hmm.Tag, T)
	for t := T - 1; t >= 0; t-- {
		path[t] = tags[arg]
		if t > 0 {
			arg = back[t][arg]
		}
	}

	res := Result{Tags: path}
	res.Prob, res.LogProb = ar.report(best)
	if o.ReturnLattice {
		res.Lattice = scores
	}

	return res, nil
}

// resolve applies defaults to opts and validates the result.
func resolve(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.TransitionFloor == 0 {
		o.TransitionFloor = hmm.DefaultTransitionFloor
	}
	if math.IsNaN(o.TransitionFloor) || o.TransitionFloor < 0 || o.TransitionFloor > 1 {
		return Options{}, fmt.Errorf("transition floor %v: %w", o.TransitionFloor, ErrBadOption)
	}
	if o.Space != Linear && o.Space != Log {
		return Options{}, fmt.Errorf("space %d: %w", o.Space, ErrBadOption)
	}
	if o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows {
		return Options{}, fmt.Errorf("memory mode %d: %w", o.MemoryMode, ErrBadOption)
	}
	if o.ReturnLattice && o.MemoryMode != FullMatrix {
		return Options{}, ErrLatticeNeedsMatrix
	}

	return o, nil
}

// arith abstracts the two score spaces.
type arith Space

func (a arith) lift(p float64) float64 {
	if Space(a) == Log {
		return math.Log(p)
	}

	return p
}

func (a arith) mul(x, y float64) float64 {
	if Space(a) == Log {
		return x + y
	}

	return x * y
}

// degenerate reports whether no entry of row carries probability mass.
func (a arith) degenerate(row []float64) bool {
	for _, v := range row {
		if Space(a) == Log && !math.IsInf(v, -1) {
			return false
		}
		if Space(a) == Linear && v > 0 {
			return false
		}
	}

	return true
}

// report converts a final score into (probability, log-probability).
func (a arith) report(score float64) (float64, float64) {
	if Space(a) == Log {
		return math.Exp(score), score
	}

	return score, math.Log(score)
}
