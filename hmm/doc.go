// Package hmm defines the data model of a first-order Hidden Markov Model
// part-of-speech tagger and estimates its parameters from tagged text.
//
// 🚀 What is estimated?
//
//	Given sentences of (word, tag) pairs, Estimate counts in one pass:
//	  • start counts: tag at position 0
//	  • transition counts: (previous tag, tag) at positions ≥ 1
//	  • emission counts: (tag, word) at every position
//	  • tag totals: occurrences of every tag
//
//	and turns them into a read-only Model:
//	  • Start  = count / Σ start counts                       (no smoothing)
//	  • Trans  = (count + 1) / (Σ from this tag + |tags|)      (add-one)
//	  • Emit   = count / Σ emissions of this tag               (no smoothing)
//
// ✨ Fallbacks (used by the decoder for events absent from the tables):
//   - unseen (tag, word) → 1 / (Σ tag totals + |tags|), identical for every tag
//   - unseen (prev, cur) → a fixed floor, DefaultTransitionFloor = 1e-10
//   - tag missing from Start → 1 / |tags|
//
// ⚙️ Usage:
//
//	seq, err := hmm.Zip(
//	  []hmm.Word{"the", "cat"},
//	  []hmm.Tag{"DET", "NOUN"},
//	)
//	m, err := hmm.Estimate([]hmm.Sequence{seq})
//	m.Tags()                 // [DET NOUN]
//	m.Emission("NOUN", "dog") // smoothed fallback
//
// A Model is immutable once returned: share it freely between goroutines.
//
// Errors:
//   - ErrInvalidInput: word/tag length mismatch, empty tag, bad probability.
//   - ErrEmptyInput: the corpus contains no tokens at all.
package hmm
