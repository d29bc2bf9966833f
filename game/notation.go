package game

import (
	"fmt"
	"strings"
)

// Board notation: one line per row starting with y = 0, the character
// column is the doubled x. 'G' and 'P' are penguins of team One and Two,
// '-' and '=' one and two fish, '3' and '4' the rest. Anything blank is empty.

func ParseBoard(text string) (Board, error) {
	var b Board
	text = strings.TrimSuffix(strings.TrimPrefix(text, "\n"), "\n")
	lines := strings.Split(text, "\n")
	if len(lines) > BoardHeight {
		return b, fmt.Errorf("board has %d rows, at most %d allowed", len(lines), BoardHeight)
	}

	for y, line := range lines {
		for x, r := range []rune(line) {
			c := Coordinate{X: x, Y: y}
			tile, err := parseTile(r)
			if err != nil {
				return b, fmt.Errorf("row %d column %d: %w", y, x, err)
			}
			if !c.Valid() {
				if tile.Kind != EmptyKind {
					return b, fmt.Errorf("row %d column %d: %w", y, x, ErrOutOfBounds)
				}
				continue
			}
			if err := b.Set(c, tile); err != nil {
				return b, err
			}
		}
	}
	return b, nil
}

func parseTile(r rune) (Tile, error) {
	switch r {
	case ' ', '.':
		return EmptyTile(), nil
	case 'G':
		return OwnedTile(One), nil
	case 'P':
		return OwnedTile(Two), nil
	case '-':
		return FishTile(1), nil
	case '=':
		return FishTile(2), nil
	case '3':
		return FishTile(3), nil
	case '4':
		return FishTile(4), nil
	}
	return Tile{}, fmt.Errorf("%w: unknown symbol %q", ErrInvalidTile, r)
}

func tileSymbol(t Tile) byte {
	switch t.Kind {
	case OwnedKind:
		if t.Team == One {
			return 'G'
		}
		return 'P'
	case FishKind:
		return "-=34"[t.Fish-1]
	}
	return '.'
}

func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < BoardHeight; y++ {
		row := []byte(strings.Repeat(" ", RightmostX+1))
		for x := y % 2; x <= RightmostX; x += 2 {
			row[x] = tileSymbol(b.tile(Coordinate{X: x, Y: y}))
		}
		sb.WriteString(strings.TrimRight(string(row), " "))
		if y < BoardHeight-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
