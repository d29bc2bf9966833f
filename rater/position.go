package rater

import "github.com/jarvarvarvis/rostware23/game"

// cutoffRatings maps the number of free neighbouring fish tiles of a penguin
// to how badly it is trapped.
var cutoffRatings = [...]int{50, 2, 1}

func cutoff(s game.State) int {
	team := s.CurrentTeam()
	return -cutoffByTeam(s.Board, team) + cutoffByTeam(s.Board, team.Opponent())
}

func cutoffByTeam(b game.Board, team game.Team) int {
	rating := 0
	for _, p := range b.Penguins(team) {
		free := 0
		for _, n := range game.Neighbours(p) {
			if b.CanSlideOnto(n) {
				free++
			}
		}
		if free < len(cutoffRatings) {
			rating += cutoffRatings[free]
		}
	}
	return rating
}

func quadrantOf(c game.Coordinate) int {
	quadrant := 0
	if c.X > game.RightmostX/2 {
		quadrant++
	}
	if c.Y >= game.BoardHeight/2 {
		quadrant += 2
	}
	return quadrant
}

func quadrantOccupation(s game.State) int {
	team := s.CurrentTeam()
	return quadrantsByTeam(s.Board, team) - quadrantsByTeam(s.Board, team.Opponent())
}

func quadrantsByTeam(b game.Board, team game.Team) int {
	var occupied [4]bool
	for _, p := range b.Penguins(team) {
		occupied[quadrantOf(p)] = true
	}
	count := 0
	for _, o := range occupied {
		if o {
			count++
		}
	}
	return count
}

func onEdge(c game.Coordinate) bool {
	x, y := c.ToOddR()
	return x == 0 || x == game.BoardWidth-1 || y == 0 || y == game.BoardHeight-1
}

// edgePenalty counts penguins on the outer ring, the opponent's minus the mover's.
func edgePenalty(s game.State) int {
	team := s.CurrentTeam()
	return edgeCount(s.Board, team.Opponent()) - edgeCount(s.Board, team)
}

func edgeCount(b game.Board, team game.Team) int {
	count := 0
	for _, p := range b.Penguins(team) {
		if onEdge(p) {
			count++
		}
	}
	return count
}
