// Package rater scores positions from the point of view of the team to move.
// Every rater is a pure function of the state; larger is better for the mover.
package rater

import "github.com/jarvarvarvis/rostware23/game"

type Rater interface {
	Rate(s game.State) int
}

// Func adapts a plain function to a Rater.
type Func func(s game.State) int

func (f Func) Rate(s game.State) int {
	return f(s)
}

var (
	FishDifference          Rater = Func(fishDifference)
	PotentialFish           Rater = Func(potentialFish)
	ReachableFish           Rater = Func(reachableFish)
	RestrictedReachableFish Rater = Func(restrictedReachableFish)
	Cutoff                  Rater = Func(cutoff)
	QuadrantOccupation      Rater = Func(quadrantOccupation)
	EdgePenalty             Rater = Func(edgePenalty)
)

const (
	earlyGameTurns    = 8
	earlyGamePenguins = 2 * game.MaxPenguins
)

// Staged scales a rater by the stage of the game: early before turn 8, end
// once the opponent cannot move anymore, mid otherwise.
type Staged struct {
	Early, Mid, End int
	Rater           Rater
}

func (st Staged) Rate(s game.State) int {
	factor := st.Mid
	switch {
	case s.Turn < earlyGameTurns:
		factor = st.Early
	case !s.HasAnyMoves(s.CurrentTeam().Opponent()):
		factor = st.End
	}
	if factor == 0 {
		return 0
	}
	return factor * st.Rater.Rate(s)
}

// EarlyGame only rates while penguins are still being placed.
func EarlyGame(r Rater) Rater {
	return Func(func(s game.State) int {
		if s.Board.PenguinCount(game.One)+s.Board.PenguinCount(game.Two) < earlyGamePenguins {
			return r.Rate(s)
		}
		return 0
	})
}

type Term struct {
	Weight int
	Rater  Rater
}

// Weighted is a linear combination of raters.
type Weighted []Term

func (w Weighted) Rate(s game.State) int {
	score := 0
	for _, term := range w {
		if term.Weight != 0 {
			score += term.Weight * term.Rater.Rate(s)
		}
	}
	return score
}

// Default is the tournament evaluation.
func Default() Weighted {
	return Weighted{
		{Weight: 20, Rater: FishDifference},
		{Weight: 2, Rater: Cutoff},
		{Weight: 10, Rater: QuadrantOccupation},
		{Weight: 5, Rater: RestrictedReachableFish},
		{Weight: 1, Rater: Staged{Early: 1, Mid: 0, End: 0, Rater: EdgePenalty}},
		{Weight: 3, Rater: PotentialFish},
	}
}
