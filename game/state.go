package game

import "fmt"

// State is a position between two moves. It is a comparable value: Apply and
// Skip return new states and never modify the receiver.
//
// The team to move follows the turn parity alone. When that team is stuck
// while the opponent can still move, the caller applies Skip before asking
// for a move.
type State struct {
	Turn      int
	StartTeam Team
	Fish      [2]int // Collected fish per team
	Board     Board
}

func NewState(board Board, startTeam Team) State {
	return State{Board: board, StartTeam: startTeam}
}

func (s State) CurrentTeam() Team {
	if s.Turn%2 == 0 {
		return s.StartTeam
	}
	return s.StartTeam.Opponent()
}

func (s State) Score(team Team) int {
	return s.Fish[team]
}

func (s State) HasAnyMoves(team Team) bool {
	return HasMoves(s.Board, team)
}

// IsOver holds once neither team can move.
func (s State) IsOver() bool {
	return !s.HasAnyMoves(One) && !s.HasAnyMoves(Two)
}

func (s State) PossibleMoves() []Move {
	return Moves(s.Board, s.CurrentTeam())
}

// Apply plays m for the current team and credits it the fish of the destination.
func (s State) Apply(m Move) (State, error) {
	team := s.CurrentTeam()
	fish := s.Board.FishAt(m.To)
	board, err := s.Board.Apply(m, team)
	if err != nil {
		return s, fmt.Errorf("turn %d, team %s: %w", s.Turn, team, err)
	}
	next := s
	next.Board = board
	next.Fish[team] += fish
	next.Turn++
	return next, nil
}

// Skip passes the turn of a stuck team.
func (s State) Skip() State {
	next := s
	next.Turn++
	return next
}

// SkipIfStuck passes the turn when the current team cannot move but the opponent can.
func (s State) SkipIfStuck() State {
	if !s.HasAnyMoves(s.CurrentTeam()) && s.HasAnyMoves(s.CurrentTeam().Opponent()) {
		return s.Skip()
	}
	return s
}

// Winner returns the team with more fish; a draw has no winner.
func (s State) Winner() (Team, bool) {
	switch {
	case s.Fish[One] > s.Fish[Two]:
		return One, true
	case s.Fish[Two] > s.Fish[One]:
		return Two, true
	}
	return One, false
}

func (s State) String() string {
	return fmt.Sprintf("turn %d, %s to move, fish %d:%d\n%s", s.Turn, s.CurrentTeam(), s.Fish[One], s.Fish[Two], s.Board)
}
