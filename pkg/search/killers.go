package search

import "github.com/corvidchess/corvid/pkg/board"

// maxPly bounds the killer table; deeper plies share the last slot, which is harmless since
// killers are a move-ordering hint, not a correctness requirement.
const maxPly = 128

// Killers records up to two quiet moves per ply that recently caused a beta cutoff, so
// sibling nodes at the same ply try them early even without a transposition table hit.
type Killers struct {
	slots [maxPly][2]board.Move
}

// NewKillers returns an empty killer table.
func NewKillers() *Killers {
	return &Killers{}
}

// Store records m as a killer at ply, displacing the older of the two slots. Captures and
// promotions are not stored: they are already ordered ahead of killers.
func (k *Killers) Store(ply int, m board.Move) {
	if !m.IsQuiet() {
		return
	}
	i := clampPly(ply)
	if k.slots[i][0].Equals(m) {
		return // already the primary killer
	}
	k.slots[i][1] = k.slots[i][0]
	k.slots[i][0] = m
}

// Probe returns the two killer moves for ply, if any.
func (k *Killers) Probe(ply int) (board.Move, board.Move) {
	i := clampPly(ply)
	return k.slots[i][0], k.slots[i][1]
}

func clampPly(ply int) int {
	if ply < 0 {
		return 0
	}
	if ply >= maxPly {
		return maxPly - 1
	}
	return ply
}
