// Package corpus reads CoNLL-U treebanks into tagged sentences.
//
// Only what an HMM tagger needs is kept: the FORM column as the word and
// either UPOS (default) or XPOS as the tag. Comment lines, multiword token
// ranges ("3-4") and empty nodes ("8.1") are skipped, as are tokens without
// a tag, so words and tags stay position-aligned.
//
// For a description of the format see
// https://universaldependencies.org/format.html
package corpus
