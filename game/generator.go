package game

import "golang.org/x/exp/rand"

const (
	maxHoles    = 5
	initialFish = BoardWidth * BoardHeight
)

// GenerateBoard deals a point symmetric start board: the upper half is drawn
// row by row and every tile is mirrored onto its inverted coordinate.
func GenerateBoard(rng *rand.Rand) Board {
	var b Board
	remaining := initialFish
	holes := maxHoles

	for _, c := range Coordinates()[:len(allCoordinates)/2] {
		tile := EmptyTile()
		r := rng.Intn(remaining)
		if r < holes {
			holes--
		} else {
			fish := (r-holes)/20 + 1
			remaining -= fish
			tile = FishTile(fish)
		}
		b.update(c, tile, b.penguins)
		b.update(c.Inverted(), tile, b.penguins)
	}
	return b
}

func GenerateState(rng *rand.Rand) State {
	return NewState(GenerateBoard(rng), One)
}
