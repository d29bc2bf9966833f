package game

import (
	"errors"
	"fmt"
)

const (
	BoardWidth  = 8  // Tiles per row
	BoardHeight = 8  // Rows
	RightmostX  = 15 // Largest doubled x coordinate
	MaxPenguins = 4  // Penguins per team
	MaxMoves    = BoardWidth * BoardHeight
)

var (
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	ErrInvalidTile = errors.New("invalid tile")
	ErrIllegalMove = errors.New("illegal move")
)

type Team uint8

const (
	One Team = iota
	Two
)

var Teams = [2]Team{One, Two}

func (t Team) Opponent() Team {
	if t == One {
		return Two
	}
	return One
}

// Index returns the slot of the team in per-team arrays
func (t Team) Index() int {
	return int(t)
}

func (t Team) String() string {
	if t == One {
		return "ONE"
	}
	return "TWO"
}

func ParseTeam(s string) (Team, error) {
	switch s {
	case "ONE":
		return One, nil
	case "TWO":
		return Two, nil
	}
	return One, fmt.Errorf("unknown team %q", s)
}
