// Package hmmtag is a first-order hidden Markov model part-of-speech
// tagger trained on CoNLL-U treebanks.
//
// 🚀 What is hmmtag?
//
//	Counting-based estimation, exact Viterbi decoding and token-level
//	evaluation, split into small packages:
//		• probtable: count and probability tables, normalization and smoothing
//		• hmm:       tagged sequences, the Model and maximum-likelihood Estimate
//		• viterbi:   Decode / DecodeAll in linear or log space
//		• eval:      accuracy, confusion pairs and diagnostics
//		• corpus:    CoNLL-U reader (UPOS or XPOS, Unicode normalization)
//		• paramio:   CSV persistence of trained tables
//		• curve:     learning-curve sweep and plot
//		• config:    YAML run configuration
//
// ✨ Quick start
//
//	seqs, _ := corpus.ReadFile("de_gsd-ud-train.conllu")
//	m, _ := hmm.Estimate(seqs)
//	res, _ := viterbi.Decode([]hmm.Word{"Die", "Katze", "schläft"}, m, nil)
//	fmt.Println(res.Tags)
//
// The hmmtag command (cmd/hmmtag) wraps the same steps as train, eval,
// decode, curve and demo subcommands.
package hmmtag
