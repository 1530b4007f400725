package variety

import "math/rand/v2"

// Source supplies the random draws. *rand.Rand satisfies it, which lets
// tests substitute a seeded or scripted generator.
type Source interface {
	IntN(n int) int
}

type systemSource struct{}

func (systemSource) IntN(n int) int { return rand.IntN(n) }

// System draws from the process-wide generator.
var System Source = systemSource{}

// Pick selects one candidate uniformly at random, biased against repeating
// the previous pick: when previous matches a candidate and an alternative
// exists, the draw excludes every candidate equal to previous. An empty pool
// yields the zero value and false.
func Pick[T comparable](src Source, candidates []T, previous *T) (T, bool) {
	var zero T
	if len(candidates) == 0 {
		return zero, false
	}
	if src == nil {
		src = System
	}

	if previous != nil && len(candidates) > 1 {
		pool := make([]T, 0, len(candidates))
		matched := false
		for _, c := range candidates {
			if c == *previous {
				matched = true
				continue
			}
			pool = append(pool, c)
		}
		if matched && len(pool) > 0 {
			return pool[src.IntN(len(pool))], true
		}
	}

	return candidates[src.IntN(len(candidates))], true
}
