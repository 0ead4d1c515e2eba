package eval

import (
	"math/rand"

	"github.com/corvidchess/corvid/pkg/board"
)

// Random is a small noise generator layered on top of a deterministic Evaluator for casual
// play variety. It is never part of the search-invariant deterministic Evaluate: callers wire
// it in explicitly via Noisy (searchctl.Iterative wraps the root search's evaluator with it),
// after the static evaluation, matching the
// spec's determinism requirement for the core evaluator itself.
type Random struct {
	rand  *rand.Rand
	limit int // centipawns; sampled uniformly in [-limit/2, limit/2]
}

// NewRandom returns a noise source bounded to +/- limit/2 centipawns. A non-positive limit
// disables noise entirely.
func NewRandom(limit int, seed int64) Random {
	return Random{
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

func (n Random) sample() board.Score {
	if n.limit <= 0 {
		return 0
	}
	return board.Score(n.rand.Intn(n.limit) - n.limit/2)
}

// Noisy wraps a base Evaluator and perturbs its output with Noise, for casual play.
type Noisy struct {
	Base  Evaluator
	Noise Random
}

func (n Noisy) Evaluate(b *board.Board) board.Score {
	return n.Base.Evaluate(b) + n.Noise.sample()
}
