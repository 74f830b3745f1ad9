package probtable

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Counts maps a discrete event to the number of times it was observed.
// Counts are only mutated while a corpus is being counted.
type Counts[K comparable] map[K]int

// Add records one more occurrence of k.
func (c Counts[K]) Add(k K) {
	c[k]++
}

// AddN records n occurrences of k. Non-positive n is ignored.
func (c Counts[K]) AddN(k K, n int) {
	if n <= 0 {
		return
	}
	c[k] += n
}

// Total returns the sum of all counts.
func (c Counts[K]) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}

	return total
}

// Table maps a discrete event to its probability.
//
// A Table never contains unseen events; callers choose the fallback for a
// missing key explicitly through Get.
type Table[K comparable] map[K]float64

// Get returns the probability of k, or fallback when k is absent.
// A nil Table is valid and always yields fallback.
func (t Table[K]) Get(k K, fallback float64) float64 {
	if p, ok := t[k]; ok {
		return p
	}

	return fallback
}

// Has reports whether k carries an explicit entry.
func (t Table[K]) Has(k K) bool {
	_, ok := t[k]

	return ok
}

// Len returns the number of explicit entries.
func (t Table[K]) Len() int { return len(t) }

// Sum returns the total probability mass held by explicit entries.
func (t Table[K]) Sum() float64 {
	if len(t) == 0 {
		return 0
	}
	vals := make([]float64, 0, len(t))
	for _, p := range t {
		vals = append(vals, p)
	}

	return floats.Sum(vals)
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
