package hmm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hmmtag/probtable"
)

// Model is a trained first-order HMM: start, transition and emission
// probability tables plus per-tag occurrence totals.
//
// The tag set of a Model is exactly the key set of its start table; the
// transition and emission tables are looked up relative to it. All tables
// are frozen at construction, so a *Model is safe for concurrent readers.
type Model struct {
	start  probtable.Table[Tag]
	trans  map[Tag]probtable.Table[Tag]
	emit   map[Tag]probtable.Table[Word]
	totals probtable.Counts[Tag]

	tags         []Tag   // sorted keys of start
	emitFallback float64 // 1 / (Σ totals + |tags|)
}

// NewModel assembles a Model from externally supplied tables, e.g. tables
// loaded from disk or written by hand.
//
// Contract:
//   - start must contain at least one tag;
//   - every probability must be finite and lie in (0, 1];
//   - every total must be non-negative.
//
// The maps are copied; later changes by the caller do not affect the Model.
//
// Errors: ErrInvalidInput (wrapped with the offending key).
func NewModel(
	start map[Tag]float64,
	trans map[Tag]map[Tag]float64,
	emit map[Tag]map[Word]float64,
	totals map[Tag]int,
) (*Model, error) {
	if len(start) == 0 {
		return nil, fmt.Errorf("start table has no tags: %w", ErrInvalidInput)
	}

	s := make(probtable.Table[Tag], len(start))
	for tag, p := range start {
		if err := checkProb(p); err != nil {
			return nil, fmt.Errorf("start[%s]: %w", tag, err)
		}
		s[tag] = p
	}

	tr := make(map[Tag]probtable.Table[Tag], len(trans))
	for from, row := range trans {
		t := make(probtable.Table[Tag], len(row))
		for to, p := range row {
			if err := checkProb(p); err != nil {
				return nil, fmt.Errorf("trans[%s][%s]: %w", from, to, err)
			}
			t[to] = p
		}
		tr[from] = t
	}

	em := make(map[Tag]probtable.Table[Word], len(emit))
	for tag, row := range emit {
		t := make(probtable.Table[Word], len(row))
		for w, p := range row {
			if err := checkProb(p); err != nil {
				return nil, fmt.Errorf("emit[%s][%s]: %w", tag, w, err)
			}
			t[w] = p
		}
		em[tag] = t
	}

	tt := make(probtable.Counts[Tag], len(totals))
	for tag, n := range totals {
		if n < 0 {
			return nil, fmt.Errorf("totals[%s]=%d: %w", tag, n, ErrInvalidInput)
		}
		tt[tag] = n
	}

	return newModel(s, tr, em, tt), nil
}

// newModel wires tables that are already known to be valid and owned.
func newModel(
	start probtable.Table[Tag],
	trans map[Tag]probtable.Table[Tag],
	emit map[Tag]probtable.Table[Word],
	totals probtable.Counts[Tag],
) *Model {
	m := &Model{
		start:  start,
		trans:  trans,
		emit:   emit,
		totals: totals,
		tags:   probtable.SortedKeys(start),
	}
	m.emitFallback = 1 / float64(totals.Total()+len(m.tags))

	return m
}

func checkProb(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 || p > 1 {
		return fmt.Errorf("probability %v outside (0, 1]: %w", p, ErrInvalidInput)
	}

	return nil
}

// Tags returns the tag set in ascending order. The slice is shared; do not modify it.
func (m *Model) Tags() []Tag { return m.tags }

// NumTags returns |tags|.
func (m *Model) NumTags() int { return len(m.tags) }

// StartProb returns P(tag | start), or 1/|tags| for a tag absent from the start table.
func (m *Model) StartProb(tag Tag) float64 {
	return m.start.Get(tag, 1/float64(len(m.tags)))
}

// Transition returns P(cur | prev), or floor when the pair was never observed.
func (m *Model) Transition(prev, cur Tag, floor float64) float64 {
	return m.trans[prev].Get(cur, floor)
}

// Emission returns P(word | tag), or EmissionFallback for an unseen pair.
func (m *Model) Emission(tag Tag, word Word) float64 {
	return m.emit[tag].Get(word, m.emitFallback)
}

// EmissionFallback returns 1 / (Σ tag totals + |tags|), the probability of
// any (tag, word) pair missing from the emission table.
func (m *Model) EmissionFallback() float64 { return m.emitFallback }

// StartTable returns the start table. Read-only.
func (m *Model) StartTable() probtable.Table[Tag] { return m.start }

// TransitionsFrom returns the transition row of tag (nil if none). Read-only.
func (m *Model) TransitionsFrom(tag Tag) probtable.Table[Tag] { return m.trans[tag] }

// TransitionSources returns, in ascending order, every tag with a transition row.
func (m *Model) TransitionSources() []Tag { return probtable.SortedKeys(m.trans) }

// EmissionsOf returns the emission row of tag (nil if none). Read-only.
func (m *Model) EmissionsOf(tag Tag) probtable.Table[Word] { return m.emit[tag] }

// EmissionSources returns, in ascending order, every tag with an emission row.
func (m *Model) EmissionSources() []Tag { return probtable.SortedKeys(m.emit) }

// TagTotals returns per-tag occurrence counts. Read-only.
func (m *Model) TagTotals() probtable.Counts[Tag] { return m.totals }

// Vocabulary returns the number of distinct words with at least one emission entry.
func (m *Model) Vocabulary() int {
	seen := make(map[Word]struct{})
	for _, row := range m.emit {
		for w := range row {
			seen[w] = struct{}{}
		}
	}

	return len(seen)
}
