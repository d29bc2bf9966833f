package game

import "fmt"

type MoveKind uint8

const (
	PlaceMove MoveKind = iota
	SlideMove
)

// Move either places a new penguin on To or slides the penguin on From to To.
// From is meaningless for placements.
type Move struct {
	Kind MoveKind
	From Coordinate
	To   Coordinate
}

func Place(to Coordinate) Move {
	return Move{Kind: PlaceMove, To: to}
}

func Slide(from, to Coordinate) Move {
	return Move{Kind: SlideMove, From: from, To: to}
}

// Source returns the origin of a slide; placements have none.
func (m Move) Source() (Coordinate, bool) {
	return m.From, m.Kind == SlideMove
}

func (m Move) String() string {
	if m.Kind == PlaceMove {
		return fmt.Sprintf("Place %v", m.To)
	}
	return fmt.Sprintf("Slide %v -> %v", m.From, m.To)
}
