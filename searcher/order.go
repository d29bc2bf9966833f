package searcher

import (
	"cmp"
	"fmt"

	"github.com/jarvarvarvis/rostware23/game"
	"github.com/jarvarvarvis/rostware23/rater"
	"golang.org/x/exp/slices"
)

type successor struct {
	move  game.Move
	state game.State
	key   int
}

// successors plays every legal move of the team to move and sorts the
// results by their rating. The rating is taken after the move, from the
// opponent's side, so ascending keys put the mover's best moves first.
func successors(state game.State, r rater.Rater, descending bool) []successor {
	var list []successor
	it := game.NewMoveIterator(state.Board, state.CurrentTeam())
	for m, ok := it.Next(); ok; m, ok = it.Next() {
		next, err := state.Apply(m)
		if err != nil {
			panic(fmt.Sprintf("generated move %v is illegal: %v", m, err))
		}
		list = append(list, successor{move: m, state: next, key: r.Rate(next)})
	}

	slices.SortStableFunc(list, func(a, b successor) int {
		if descending {
			return cmp.Compare(b.key, a.key)
		}
		return cmp.Compare(a.key, b.key)
	})
	return list
}

// OrderedMoves returns the legal moves of the team to move sorted by the
// rating of the position they lead to.
func OrderedMoves(state game.State, r rater.Rater, descending bool) []game.Move {
	list := successors(state, r, descending)
	moves := make([]game.Move, len(list))
	for i, s := range list {
		moves[i] = s.move
	}
	return moves
}
