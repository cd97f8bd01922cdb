package playback

import (
	"math/rand/v2"
	"time"
)

// DefaultSkipBackThreshold separates "go to the previous track" from
// "restart this one" when skipping backward.
const DefaultSkipBackThreshold = 3 * time.Second

// NextIndex returns the position that follows pos in a list of n
// entries. Positions index the list rather than name a source, so a
// source listed twice is visited twice.
//
// From the last entry it wraps to 0 under RepeatAll and reports false
// otherwise. A negative pos, meaning the current source is not in the
// list, starts over from 0.
func NextIndex(n, pos int, repeat RepeatMode) (int, bool) {
	if n == 0 {
		return -1, false
	}
	if pos >= n-1 {
		if repeat == RepeatAll {
			return 0, true
		}
		return -1, false
	}
	if pos < 0 {
		return 0, true
	}
	return pos + 1, true
}

// PrevIndex returns the position preceding pos when elapsed is within
// threshold. It reports false when pos is first or unknown, or when the
// source has played past the threshold.
func PrevIndex(pos int, elapsed, threshold time.Duration) (int, bool) {
	if pos <= 0 || elapsed > threshold {
		return -1, false
	}
	return pos - 1, true
}

// Permutation returns a uniformly shuffled order of 0..n-1 (Fisher-Yates).
// Entry i of the result is the original position of the entry shuffled
// to i.
func Permutation(n int, r *rand.Rand) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// NewRand returns the generator used for shuffling. A zero seed picks a
// time-based one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint:gosec // not security sensitive
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // not security sensitive
}
