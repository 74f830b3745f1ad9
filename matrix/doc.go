// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major store behind the Viterbi
// transition matrix and score lattice.
//
// 🚀 What it offers
//
//	A Dense r×c buffer with the explicit offset formula i*cols + j:
//		• At / Set: bounds-checked accessors returning sentinel errors
//		• Row:      no-copy slice of one row, the fast path for hot loops
//		• Apply:    in-place element transform (e.g. lifting into log space)
//		• String:   row-wise dump for diagnostics
//
// ⚙️ Numeric policy
//
//	By default Set and Apply reject NaN and ±Inf. Log-space decoding stores
//	ln 0 = -Inf legitimately, so it builds its matrices with
//	WithValidateNaNInf(false). NaN is still a programming error there, but it
//	is not checked on the fast path.
package matrix
