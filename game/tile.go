package game

import "fmt"

type TileKind uint8

const (
	EmptyKind TileKind = iota
	FishKind
	OwnedKind
)

// Tile is the decoded content of a board position: empty, fish (1 to 4) or a
// penguin of one team.
type Tile struct {
	Kind TileKind
	Fish int
	Team Team
}

func EmptyTile() Tile {
	return Tile{Kind: EmptyKind}
}

func FishTile(fish int) Tile {
	return Tile{Kind: FishKind, Fish: fish}
}

func OwnedTile(team Team) Tile {
	return Tile{Kind: OwnedKind, Team: team}
}

func (t Tile) IsFish() bool {
	return t.Kind == FishKind
}

// FishCount is 0 for anything but fish tiles.
func (t Tile) FishCount() int {
	if t.Kind != FishKind {
		return 0
	}
	return t.Fish
}

func (t Tile) Owner() (Team, bool) {
	return t.Team, t.Kind == OwnedKind
}

func (t Tile) valid() bool {
	switch t.Kind {
	case EmptyKind:
		return true
	case FishKind:
		return t.Fish >= 1 && t.Fish <= 4
	case OwnedKind:
		return t.Team == One || t.Team == Two
	}
	return false
}

func (t Tile) String() string {
	switch t.Kind {
	case FishKind:
		return fmt.Sprintf("Fish(%d)", t.Fish)
	case OwnedKind:
		return fmt.Sprintf("Owned(%s)", t.Team)
	}
	return "Empty"
}
