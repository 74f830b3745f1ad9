package eval

import (
	"context"
	"fmt"
	"io"

	"github.com/google/btree"

	"github.com/katalvlaran/hmmtag/hmm"
	"github.com/katalvlaran/hmmtag/viterbi"
)

// Evaluate compares pred with gold token by token.
//
// Sentence i of pred is aligned with sentence i of gold and position j with
// position j. Every compared token increments Total; equal tags increment
// Correct, unequal ones increment Confusions[{gold, pred}].
//
// Complexity: O(total tokens).
//
// Errors: ErrLengthMismatch, only with WithStrictLengths.
func Evaluate(pred, gold [][]hmm.Tag, opts ...Option) (Report, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.strict {
		if len(pred) != len(gold) {
			return Report{}, fmt.Errorf("%d predicted vs %d gold sentences: %w", len(pred), len(gold), ErrLengthMismatch)
		}
		for i := range pred {
			if len(pred[i]) != len(gold[i]) {
				return Report{}, fmt.Errorf("sentence %d: %d predicted vs %d gold tags: %w", i, len(pred[i]), len(gold[i]), ErrLengthMismatch)
			}
		}
	}

	rep := Report{Confusions: Confusions{}}
	for i := 0; i < min(len(pred), len(gold)); i++ {
		p, g := pred[i], gold[i]
		for j := 0; j < min(len(p), len(g)); j++ {
			rep.Total++
			if p[j] == g[j] {
				rep.Correct++
				continue
			}
			rep.Confusions[Pair{Gold: g[j], Predicted: p[j]}]++
		}
	}
	if rep.Total > 0 {
		rep.Accuracy = float64(rep.Correct) / float64(rep.Total)
	}

	return rep, nil
}

// GoldTags projects the gold tags out of tagged sentences.
func GoldTags(seqs []hmm.Sequence) [][]hmm.Tag {
	out := make([][]hmm.Tag, len(seqs))
	for i, s := range seqs {
		out[i] = s.Tags()
	}

	return out
}

// Predict discards the gold tags of test and decodes every sentence with m.
// Empty sentences yield empty predictions without reaching the decoder.
func Predict(ctx context.Context, test []hmm.Sequence, m *hmm.Model, opts *viterbi.Options, workers int) ([][]hmm.Tag, error) {
	var (
		idx       []int
		sentences [][]hmm.Word
	)
	for i, s := range test {
		if len(s) == 0 {
			continue
		}
		idx = append(idx, i)
		sentences = append(sentences, s.Words())
	}

	results, err := viterbi.DecodeAll(ctx, sentences, m, opts, workers)
	if err != nil {
		return nil, err
	}
	out := make([][]hmm.Tag, len(test))
	for k, r := range results {
		out[idx[k]] = r.Tags
	}
	for i := range out {
		if out[i] == nil {
			out[i] = []hmm.Tag{}
		}
	}

	return out, nil
}

// Top returns the n most frequent confusion pairs (n <= 0 means DefaultTopN),
// ordered by count descending, then gold tag, then predicted tag.
//
// Complexity: O(k log k) for k distinct pairs.
func (c Confusions) Top(n int) []PairCount {
	if n <= 0 {
		n = DefaultTopN
	}
	idx := btree.NewG(8, lessPairCount)
	for p, cnt := range c {
		idx.ReplaceOrInsert(PairCount{Pair: p, Count: cnt})
	}

	out := make([]PairCount, 0, min(n, idx.Len()))
	idx.Ascend(func(pc PairCount) bool {
		out = append(out, pc)

		return len(out) < n
	})

	return out
}

// Errors returns the number of mismatching tokens.
func (c Confusions) Errors() int {
	total := 0
	for _, n := range c {
		total += n
	}

	return total
}

func lessPairCount(a, b PairCount) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	if a.Gold != b.Gold {
		return a.Gold < b.Gold
	}

	return a.Predicted < b.Predicted
}

// WriteDiagnostics prints the n most frequent confusion pairs:
//
//	Top Prediction Errors:
//	  Gold: NOUN, Predicted: PROPN, Count: 12
func WriteDiagnostics(w io.Writer, c Confusions, n int) error {
	if _, err := fmt.Fprintln(w, "Top Prediction Errors:"); err != nil {
		return err
	}
	for _, pc := range c.Top(n) {
		if _, err := fmt.Fprintf(w, "  Gold: %s, Predicted: %s, Count: %d\n", pc.Gold, pc.Predicted, pc.Count); err != nil {
			return err
		}
	}

	return nil
}
