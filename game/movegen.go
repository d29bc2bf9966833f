package game

// MoveIterator yields the legal moves of one team exactly once. Teams with
// fewer than MaxPenguins penguins may only place, on tiles holding a single
// fish; afterwards every penguin slides along straight lines of fish tiles.
type MoveIterator struct {
	board   Board
	team    Team
	placing bool
	cursor  int // next coordinate while placing, current penguin while sliding
	dir     int
	walking bool
	pos     Coordinate
}

func NewMoveIterator(b Board, team Team) *MoveIterator {
	return &MoveIterator{
		board:   b,
		team:    team,
		placing: b.PenguinCount(team) < MaxPenguins,
	}
}

func (it *MoveIterator) Next() (Move, bool) {
	if it.placing {
		return it.nextPlacement()
	}
	return it.nextSlide()
}

func (it *MoveIterator) nextPlacement() (Move, bool) {
	all := Coordinates()
	for it.cursor < len(all) {
		c := all[it.cursor]
		it.cursor++
		if it.board.tile(c).FishCount() == 1 {
			return Place(c), true
		}
	}
	return Move{}, false
}

func (it *MoveIterator) nextSlide() (Move, bool) {
	index := it.board.penguins[it.team]
	for it.cursor < index.count() {
		from := index.at(it.cursor)
		for it.dir < len(Directions) {
			if !it.walking {
				it.pos = from
				it.walking = true
			}
			next := it.pos.Add(Directions[it.dir].Vector())
			if it.board.CanSlideOnto(next) {
				it.pos = next
				return Slide(from, next), true
			}
			// Off board, empty or occupied: this line is exhausted
			it.dir++
			it.walking = false
		}
		it.dir = 0
		it.cursor++
	}
	return Move{}, false
}

// Moves collects every legal move of team.
func Moves(b Board, team Team) []Move {
	var moves []Move
	it := NewMoveIterator(b, team)
	for m, ok := it.Next(); ok; m, ok = it.Next() {
		moves = append(moves, m)
	}
	return moves
}

func HasMoves(b Board, team Team) bool {
	_, ok := NewMoveIterator(b, team).Next()
	return ok
}

// Destinations lists the tiles a penguin on from could slide to, direction by direction.
func Destinations(b Board, from Coordinate) []Coordinate {
	var destinations []Coordinate
	for _, d := range Directions {
		v := d.Vector()
		for next := from.Add(v); b.CanSlideOnto(next); next = next.Add(v) {
			destinations = append(destinations, next)
		}
	}
	return destinations
}
