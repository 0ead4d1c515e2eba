package searchctl

import (
	"context"
	"fmt"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// TimeControl represents time control information communicated by the GUI: remaining clock
// and increment per side, and optionally the number of moves left to the next time control.
type TimeControl struct {
	White, Black       time.Duration
	WhiteInc, BlackInc time.Duration
	Moves              int // 0 == rest of game
}

// lowTimeThreshold triggers the steeper, safety-first time allocation policy.
const lowTimeThreshold = 60 * time.Second

// increment weight and ceilings, keyed by game phase.
const incrementWeight = 0.8

var ceilingByBucket = map[eval.Bucket]time.Duration{
	eval.Opening:    30 * time.Second,
	eval.Middlegame: 20 * time.Second,
	eval.Endgame:    10 * time.Second,
}

var divisorByBucket = map[eval.Bucket]float64{
	eval.Opening:    50,
	eval.Middlegame: 30,
	eval.Endgame:    40,
}

const lowTimeCeiling = 5 * time.Second

// Budget returns a soft and hard time budget for the side to move, given the game phase.
// The soft budget is the target the iterative deepening driver should stop searching a new
// depth past; the hard budget is an absolute ceiling enforced regardless of search progress.
func (t TimeControl) Budget(turn board.Color, phase eval.Bucket) (time.Duration, time.Duration) {
	remaining, increment := t.White, t.WhiteInc
	if turn == board.Black {
		remaining, increment = t.Black, t.BlackInc
	}

	divisor := divisorByBucket[phase]
	ceiling := ceilingByBucket[phase]
	if remaining < lowTimeThreshold {
		divisor *= 0.5
		ceiling = lowTimeCeiling
	}

	soft := time.Duration(float64(remaining)/divisor) + time.Duration(incrementWeight*float64(increment))
	if soft > ceiling {
		soft = ceiling
	}
	if soft > remaining {
		soft = remaining
	}

	// The driver may overshoot the soft budget by a bounded slack to finish a depth
	// already started; the hard budget caps that overshoot.
	hard := soft + soft/4
	if hard > remaining {
		hard = remaining
	}
	return soft, hard
}

func (t TimeControl) String() string {
	if t.Moves == 0 {
		return fmt.Sprintf("%.1f<>%.1f", t.White.Seconds(), t.Black.Seconds())
	}
	return fmt.Sprintf("%.1f<>%.1f[moves=%v]", t.White.Seconds(), t.Black.Seconds(), t.Moves)
}

// EnforceTimeControl enforces the hard time limit, if any, by halting the search once it
// elapses. Returns the soft limit and whether a time control was in effect at all.
func EnforceTimeControl(ctx context.Context, h Handle, tc lang.Optional[TimeControl], turn board.Color, phase eval.Bucket) (time.Duration, bool) {
	c, ok := tc.V()
	if !ok {
		return 0, false
	}

	soft, hard := c.Budget(turn, phase)
	time.AfterFunc(hard, func() {
		h.Halt()
	})

	logw.Debugf(ctx, "Time control budget for %v at %v: [%v; %v]", turn, phase, soft, hard)
	return soft, true
}
