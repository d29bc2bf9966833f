package game

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) Board {
	t.Helper()
	b, err := ParseBoard(text)
	require.NoError(t, err)
	return b
}

func TestBoardTiles(t *testing.T) {
	t.Run("empty board decodes every tile as empty", func(t *testing.T) {
		var b Board
		for _, c := range Coordinates() {
			tile, err := b.Get(c)
			require.NoError(t, err)
			require.Equal(t, EmptyTile(), tile)
		}
	})

	t.Run("every tile state survives encoding", func(t *testing.T) {
		var b Board
		tiles := []Tile{FishTile(1), FishTile(2), FishTile(3), FishTile(4), OwnedTile(One), OwnedTile(Two), EmptyTile()}
		c := Coordinate{7, 3}
		for _, want := range tiles {
			require.NoError(t, b.Set(c, want))
			got, err := b.Get(c)
			require.NoError(t, err)
			require.Equal(t, want, got)
			require.NoError(t, b.Validate())
		}
		require.Equal(t, Board{}, b, "Clearing the last tile should restore the empty board")
	})

	t.Run("neighbouring tiles do not interfere", func(t *testing.T) {
		var b Board
		require.NoError(t, b.Set(Coordinate{0, 0}, FishTile(4)))
		require.NoError(t, b.Set(Coordinate{2, 0}, OwnedTile(Two)))
		require.NoError(t, b.Set(Coordinate{1, 1}, FishTile(1)))

		require.Equal(t, FishTile(4), b.At(Coordinate{0, 0}))
		require.Equal(t, OwnedTile(Two), b.At(Coordinate{2, 0}))
		require.Equal(t, FishTile(1), b.At(Coordinate{1, 1}))
		require.Equal(t, 5, b.FishTotal())
	})

	t.Run("out of bounds access fails", func(t *testing.T) {
		var b Board
		_, err := b.Get(Coordinate{1, 0})
		require.ErrorIs(t, err, ErrOutOfBounds)
		require.ErrorIs(t, b.Set(Coordinate{16, 0}, FishTile(1)), ErrOutOfBounds)
		require.Equal(t, EmptyTile(), b.At(Coordinate{-2, 0}), "At should treat off-board tiles as empty")
		require.False(t, b.CanSlideOnto(Coordinate{-2, 0}))
	})

	t.Run("invalid tiles are rejected", func(t *testing.T) {
		var b Board
		require.ErrorIs(t, b.Set(Coordinate{0, 0}, FishTile(5)), ErrInvalidTile)
		require.ErrorIs(t, b.Set(Coordinate{0, 0}, FishTile(0)), ErrInvalidTile)
	})

	t.Run("a fifth penguin is rejected", func(t *testing.T) {
		b := mustParse(t, "G G G G -")
		err := b.Set(Coordinate{8, 0}, OwnedTile(One))
		require.ErrorIs(t, err, ErrInvalidTile)
		require.Equal(t, FishTile(1), b.At(Coordinate{8, 0}), "Failed set should not change the tile")
		require.NoError(t, b.Set(Coordinate{8, 0}, OwnedTile(Two)), "The other team still has room")
	})

	t.Run("overwriting a penguin drops it from the index", func(t *testing.T) {
		b := mustParse(t, "G P G")
		require.NoError(t, b.Set(Coordinate{0, 0}, FishTile(2)))
		require.Equal(t, []Coordinate{{4, 0}}, b.Penguins(One))
		require.Equal(t, []Coordinate{{2, 0}}, b.Penguins(Two))
		require.NoError(t, b.Validate())
	})
}

func TestBoardApply(t *testing.T) {
	t.Run("placements append to the index", func(t *testing.T) {
		b := mustParse(t, "- - - -")
		var err error
		for _, x := range []int{6, 0, 4} {
			b, err = b.Apply(Place(Coordinate{x, 0}), One)
			require.NoError(t, err)
		}
		require.Equal(t, []Coordinate{{6, 0}, {0, 0}, {4, 0}}, b.Penguins(One), "Penguins should keep placement order")
		require.Equal(t, 3, b.PenguinCount(One))
		require.Equal(t, 0, b.PenguinCount(Two))
		require.NoError(t, b.Validate())
	})

	t.Run("slides keep the penguin's slot", func(t *testing.T) {
		b := mustParse(t, "G G G\n 3")
		next, err := b.Apply(Slide(Coordinate{0, 0}, Coordinate{1, 1}), One)
		require.NoError(t, err)

		require.Equal(t, []Coordinate{{1, 1}, {2, 0}, {4, 0}}, next.Penguins(One))
		require.Equal(t, EmptyTile(), next.At(Coordinate{0, 0}), "Source should be cleared")
		require.Equal(t, OwnedTile(One), next.At(Coordinate{1, 1}))
		require.Equal(t, OwnedTile(One), b.At(Coordinate{0, 0}), "Receiver should stay untouched")
		require.NoError(t, next.Validate())
	})

	t.Run("sliding a foreign or missing penguin fails", func(t *testing.T) {
		b := mustParse(t, "G P -")
		_, err := b.Apply(Slide(Coordinate{2, 0}, Coordinate{4, 0}), One)
		require.ErrorIs(t, err, ErrIllegalMove)
		_, err = b.Apply(Slide(Coordinate{6, 0}, Coordinate{4, 0}), One)
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("moving onto a tile without fish fails", func(t *testing.T) {
		b := mustParse(t, "G P -")
		_, err := b.Apply(Slide(Coordinate{0, 0}, Coordinate{2, 0}), One)
		require.ErrorIs(t, err, ErrIllegalMove)
		_, err = b.Apply(Place(Coordinate{6, 0}), One)
		require.ErrorIs(t, err, ErrIllegalMove)
		_, err = b.Apply(Place(Coordinate{3, 0}), One)
		require.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("placing a fifth penguin fails", func(t *testing.T) {
		b := mustParse(t, "G G G G -")
		_, err := b.Apply(Place(Coordinate{8, 0}), One)
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("equal positions compare equal", func(t *testing.T) {
		a := mustParse(t, "- = G")
		b := mustParse(t, "- - -")
		b, err := b.Apply(Place(Coordinate{4, 0}), One)
		require.NoError(t, err)
		require.NoError(t, b.Set(Coordinate{2, 0}, FishTile(2)))
		require.Equal(t, a, b)
		require.True(t, a == b, "Boards should be usable as map keys")
	})
}

func TestBoardValidate(t *testing.T) {
	b := mustParse(t, "G - -")
	require.NoError(t, b.Validate())

	// Index a penguin on a fish tile and put an unindexed penguin on the board.
	b.penguins[Two] = b.penguins[Two].withAdded(Coordinate{2, 0})
	b.update(Coordinate{4, 0}, OwnedTile(One), b.penguins)

	err := b.Validate()
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 2, "Both inconsistencies should be reported")
}

func TestBoardNotation(t *testing.T) {
	text := `
4 3 = - . G . -
 - = P . 3 3 - -
- - - - - - - -
 . . . . . . . .
= = = = = = = =
 3 3 3 3 3 3 3 3
4 4 4 4 4 4 4 4
 - - - - - - - G`
	b := mustParse(t, text)

	require.Equal(t, FishTile(4), b.At(Coordinate{0, 0}))
	require.Equal(t, OwnedTile(One), b.At(Coordinate{10, 0}))
	require.Equal(t, OwnedTile(Two), b.At(Coordinate{5, 1}))
	require.Equal(t, FishTile(2), b.At(Coordinate{3, 1}))
	require.Equal(t, EmptyTile(), b.At(Coordinate{1, 3}))
	require.Equal(t, []Coordinate{{10, 0}, {15, 7}}, b.Penguins(One))

	again, err := ParseBoard(b.String())
	require.NoError(t, err)
	require.Equal(t, b, again, "Notation should round trip")

	_, err = ParseBoard("x")
	require.ErrorIs(t, err, ErrInvalidTile)
	_, err = ParseBoard(" -")
	require.ErrorIs(t, err, ErrOutOfBounds, "Odd column in an even row is not a tile")
	_, err = ParseBoard("-\n-")
	require.ErrorIs(t, err, ErrOutOfBounds, "Even column in an odd row is not a tile")
}
