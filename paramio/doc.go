// Package paramio persists trained HMM tables as flat comma-separated files.
//
// Layout of a model directory (no header rows, one row per leaf key):
//
//	start_probs.csv   tag,prob
//	trans_probs.csv   fromTag,toTag,prob
//	emit_probs.csv    tag,word,prob
//	tag_totals.csv    tag,count
//
// Rows are written in ascending key order and probabilities in the shortest
// representation that round-trips, so saving the same model twice produces
// identical bytes. Fields that contain a comma, a quote or a newline are
// quoted per RFC 4180; every other row is exactly "a,b,c".
//
// Load memory-maps each file read-only (github.com/edsrzf/mmap-go) and
// parses it in place, then validates the tables through hmm.NewModel.
package paramio
