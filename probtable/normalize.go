package probtable

// Normalize converts counts into relative frequencies:
//
//	P(k) = count(k) / Σ count
//
// No probability mass is reserved for unseen keys, so the result sums to 1
// over the observed keys. Empty (or all-zero) counts produce an empty table.
//
// Complexity: O(k) time and memory.
func Normalize[K comparable](c Counts[K]) Table[K] {
	return Smooth(c, 0, 0)
}

// Smooth converts counts into additively smoothed probabilities:
//
//	P(k) = (count(k) + alpha) / (Σ count + alpha·states)
//
// states is the size of the full event space the smoothing mass is spread
// over; only observed keys receive an explicit entry, the remaining
// states−len(c) events share the implied mass alpha/(Σ count + alpha·states)
// each. Smooth(c, 0, 0) is Normalize(c).
//
// A non-positive denominator yields an empty table.
//
// Complexity: O(k) time and memory.
func Smooth[K comparable](c Counts[K], alpha float64, states int) Table[K] {
	denom := float64(c.Total()) + alpha*float64(states)
	t := make(Table[K], len(c))
	if denom <= 0 {
		return t
	}
	for k, n := range c {
		t[k] = (float64(n) + alpha) / denom
	}

	return t
}

// Unseen returns the probability Smooth assigns to a single event that was
// never observed: alpha / (total + alpha·states). It returns 0 when the
// denominator is non-positive.
func Unseen(total int, alpha float64, states int) float64 {
	denom := float64(total) + alpha*float64(states)
	if denom <= 0 {
		return 0
	}

	return alpha / denom
}
