// Package probtable holds the two primitive tables every HMM parameter is
// built from: raw event counts and the probabilities derived from them.
//
// 🚀 What is it for?
//
//	An HMM tagger is three probability tables (start, transition, emission)
//	estimated from three count tables. This package owns the counting and
//	the normalization so that the estimator only decides *which* policy to
//	apply to *which* table:
//	  • Normalize: plain relative frequency, count / total
//	  • Smooth: additive (Lidstone/Laplace) smoothing,
//	                (count + α) / (total + α·states)
//
// ✨ Key properties:
//   - generic over any comparable key (tags, tag pairs, words)
//   - tables are plain maps: cheap lookups, no locking; build once, share read-only
//   - deterministic iteration through SortedKeys
//
// ⚙️ Usage:
//
//	c := probtable.Counts[string]{}
//	c.Add("DET")
//	c.Add("DET")
//	c.Add("NOUN")
//
//	p := probtable.Normalize(c)      // DET: 0.667, NOUN: 0.333
//	s := probtable.Smooth(c, 1, 5)   // (n+1)/(3+5)
//	x := p.Get("VERB", 1e-10)        // fallback for an unseen key
//
// Complexity: every operation is O(k) in the number of observed keys.
package probtable
