package gamemaster

import (
	"testing"

	"github.com/jarvarvarvis/rostware23/game"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T) GameMaster {
	b, err := game.ParseBoard("= G G G G\n . -\n\n\n\n\n\n P P P P")
	require.NoError(t, err)
	return NewLocal(game.NewState(b, game.One))
}

func TestLocalInit(t *testing.T) {
	t.Run("fresh", func(t *testing.T) {
		gm := newLocal(t)
		state, getUpdate := gm.Init()
		require.Equal(t, 0, state.Turn)
		require.Equal(t, game.One, state.CurrentTeam())

		_, ok := getUpdate()
		require.False(t, ok, "expected no update before any move")
	})

	t.Run("not started", func(t *testing.T) {
		gm := newLocal(t)
		err := gm.Play(game.One, game.Place(game.Coordinate{}))
		require.ErrorIs(t, err, ErrNotStarted)
	})

	t.Run("stuck start team", func(t *testing.T) {
		b, err := game.ParseBoard("= G G G G\n . -\n\n\n\n\n\n P P P P")
		require.NoError(t, err)
		state, _ := NewLocal(game.NewState(b, game.Two)).Init()
		require.Equal(t, game.One, state.CurrentTeam(), "a stuck start team should be skipped")
	})
}

func TestLocalPlay(t *testing.T) {
	left := game.Slide(game.Coordinate{X: 2, Y: 0}, game.Coordinate{X: 0, Y: 0})
	up := game.Slide(game.Coordinate{X: 4, Y: 0}, game.Coordinate{X: 3, Y: 1})

	t.Run("out of turn", func(t *testing.T) {
		gm := newLocal(t)
		gm.Init()
		require.ErrorIs(t, gm.Play(game.Two, left), ErrOutOfTurn)
	})

	t.Run("illegal", func(t *testing.T) {
		gm := newLocal(t)
		gm.Init()
		jump := game.Slide(game.Coordinate{X: 2, Y: 0}, game.Coordinate{X: 4, Y: 2})
		require.ErrorIs(t, gm.Play(game.One, jump), game.ErrIllegalMove)
		require.Equal(t, 0, gm.State().Turn, "state should not change")
	})

	t.Run("skip and finish", func(t *testing.T) {
		gm := newLocal(t)
		_, getUpdate := gm.Init()

		require.NoError(t, gm.Play(game.One, left))
		u, ok := getUpdate()
		require.True(t, ok)
		require.Equal(t, left, u.Move)
		require.True(t, u.Skipped, "team Two is walled in")
		require.False(t, u.Over)
		require.Equal(t, 2, u.State.Turn)
		require.Equal(t, 2, u.State.Score(game.One))

		require.NoError(t, gm.Play(game.One, up))
		u, ok = getUpdate()
		require.True(t, ok)
		require.True(t, u.Over, "no fish is left")
		require.Equal(t, 3, u.State.Score(game.One))

		_, ok = getUpdate()
		require.False(t, ok, "the update stream should be closed")
		require.ErrorIs(t, gm.Play(game.One, up), ErrGameOver)
	})
}
