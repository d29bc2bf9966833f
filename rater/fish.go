package rater

import "github.com/jarvarvarvis/rostware23/game"

// tileSet marks visited tiles by their odd-r bit.
type tileSet uint64

func tileBit(c game.Coordinate) tileSet {
	x, y := c.ToOddR()
	return 1 << (y*game.BoardWidth + x)
}

// visit marks c and reports whether it was unmarked before.
func (t *tileSet) visit(c game.Coordinate) bool {
	bit := tileBit(c)
	if *t&bit != 0 {
		return false
	}
	*t |= bit
	return true
}

func fishDifference(s game.State) int {
	team := s.CurrentTeam()
	return s.Score(team) - s.Score(team.Opponent())
}

// potentialFish sums the fish on every tile a penguin could slide to next.
func potentialFish(s game.State) int {
	team := s.CurrentTeam()
	return slideFish(s.Board, team) - slideFish(s.Board, team.Opponent())
}

func slideFish(b game.Board, team game.Team) int {
	total := 0
	for _, p := range b.Penguins(team) {
		for _, to := range game.Destinations(b, p) {
			total += b.FishAt(to)
		}
	}
	return total
}

// reachableFish flood fills along slide destinations.
func reachableFish(s game.State) int {
	team := s.CurrentTeam()
	return reachableByTeam(s.Board, team) - reachableByTeam(s.Board, team.Opponent())
}

func reachableByTeam(b game.Board, team game.Team) int {
	var visited tileSet
	total := 0
	for _, p := range b.Penguins(team) {
		total += reachableFrom(b, p, &visited)
	}
	return total
}

func reachableFrom(b game.Board, from game.Coordinate, visited *tileSet) int {
	total := 0
	for _, to := range game.Destinations(b, from) {
		if visited.visit(to) {
			total += b.FishAt(to) + reachableFrom(b, to, visited)
		}
	}
	return total
}

// restrictedReachableFish flood fills over neighbouring fish tiles but leaves
// out the area an opponent on the same line claims first.
func restrictedReachableFish(s game.State) int {
	team := s.CurrentTeam()
	return restrictedByTeam(s.Board, team) - restrictedByTeam(s.Board, team.Opponent())
}

func restrictedByTeam(b game.Board, team game.Team) int {
	var visited tileSet
	total := 0
	for _, p := range b.Penguins(team) {
		restrictions := restrictionsFor(b, p, team)
		total += restrictedFrom(b, p, restrictions, &visited)
	}
	return total
}

func restrictedFrom(b game.Board, c game.Coordinate, restrictions []restriction, visited *tileSet) int {
	if isRestricted(restrictions, c) || !visited.visit(c) {
		return 0
	}
	total := b.FishAt(c)
	for _, next := range game.Neighbours(c) {
		if b.FishAt(next) > 0 {
			total += restrictedFrom(b, next, restrictions, visited)
		}
	}
	return total
}

// restriction is cast by an opponent penguin on a straight line with one of
// our penguins. It covers every tile whose direction from the opponent is at
// least 135 degrees away from the direction towards our penguin, the angle
// between Left and TopRight.
type restriction struct {
	opponent game.Coordinate
	toward   game.Vector
}

func restrictionsFor(b game.Board, penguin game.Coordinate, team game.Team) []restriction {
	var restrictions []restriction
	for _, opponent := range b.Penguins(team.Opponent()) {
		towardPenguin := game.Between(penguin, opponent)
		for _, d := range game.Directions {
			if d.Vector().Parallel(towardPenguin) {
				restrictions = append(restrictions, restriction{opponent: opponent, toward: d.Vector()})
				break
			}
		}
	}
	return restrictions
}

// covers compares cos(angle) <= -1/sqrt(2) in integers.
func (r restriction) covers(c game.Coordinate) bool {
	v := game.Between(c, r.opponent)
	dot := r.toward.Dot(v)
	if dot >= 0 {
		return false
	}
	return 2*dot*dot >= r.toward.Dot(r.toward)*v.Dot(v)
}

func isRestricted(restrictions []restriction, c game.Coordinate) bool {
	for _, r := range restrictions {
		if r.covers(c) {
			return true
		}
	}
	return false
}
