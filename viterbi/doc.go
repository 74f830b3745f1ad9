// Package viterbi decodes the most probable tag sequence of a sentence under
// a trained first-order HMM.
//
// 🚀 What is Viterbi?
//
//	The number of tag sequences grows as |tags|^T, but the best sequence
//	ending in tag j at time t only depends on the best sequences ending at
//	t−1. Keeping one score per (t, tag) reduces the search to O(T·|tags|²):
//
//	  V[0][j] = start(j) · emit(j, w0)
//	  V[t][j] = max_i V[t−1][i] · trans(i, j) · emit(j, wt)
//	  B[t][j] = argmax_i (same expression)
//
//	The answer is the backpointer chain from argmax_j V[T−1][j].
//
// ✨ Key features:
//   - Linear space (default): scores are products, bit-compatible with the
//     reference recursion; Log space: sums of logs, immune to underflow on
//     long sentences
//   - FullMatrix or TwoRows score storage (choose via MemoryMode)
//   - index backpointers, reconstructed once at the end (no path copying)
//   - deterministic ties: the greatest tag (string order) wins
//   - DecodeAll fans sentences out over a bounded worker pool
//
// ⚙️ Usage:
//
//	opts := viterbi.DefaultOptions()
//	opts.Space = viterbi.Log
//
//	res, err := viterbi.Decode(words, model, &opts)
//	// res.Tags, res.Prob, res.LogProb
//
//	all, err := viterbi.DecodeAll(ctx, sentences, model, &opts, 8)
//
// Performance:
//
//   - Time:   O(T·|tags|²)
//   - Memory: O(T·|tags|) backpointers + O(T·|tags|) (FullMatrix)
//     or O(|tags|) (TwoRows) scores
package viterbi
