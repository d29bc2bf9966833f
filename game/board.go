package game

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// bitset holds one flag per tile at bit y*8+x of the odd-r position.
type bitset uint64

func bitOf(c Coordinate) bitset {
	x, y := c.ToOddR()
	return 1 << (y*BoardWidth + x)
}

func (b bitset) has(c Coordinate) bool {
	return b&bitOf(c) != 0
}

func (b *bitset) put(c Coordinate, on bool) {
	if on {
		*b |= bitOf(c)
	} else {
		*b &^= bitOf(c)
	}
}

// penguinIndex packs the positions of one team into a single word.
// Bits 0-2 hold the count, slot i starts at bit 3+6i and holds y<<3 | x
// (odd-r). Slots keep placement order.
type penguinIndex uint64

const (
	countMask = 0b111
	slotWidth = 6
	slotMask  = 1<<slotWidth - 1
)

func slotShift(i int) int {
	return 3 + slotWidth*i
}

func packSlot(c Coordinate) penguinIndex {
	x, y := c.ToOddR()
	return penguinIndex(y<<3 | x)
}

func (p penguinIndex) count() int {
	return int(p & countMask)
}

func (p penguinIndex) at(i int) Coordinate {
	slot := (p >> slotShift(i)) & slotMask
	return FromOddR(int(slot&0b111), int(slot>>3))
}

func (p penguinIndex) find(c Coordinate) int {
	for i := 0; i < p.count(); i++ {
		if p.at(i) == c {
			return i
		}
	}
	return -1
}

func (p penguinIndex) withAdded(c Coordinate) penguinIndex {
	n := p.count()
	return (p&^countMask | packSlot(c)<<slotShift(n)) + penguinIndex(n+1)
}

func (p penguinIndex) withMoved(i int, c Coordinate) penguinIndex {
	shift := slotShift(i)
	return p&^(slotMask<<shift) | packSlot(c)<<shift
}

func (p penguinIndex) withRemoved(i int) penguinIndex {
	var rebuilt penguinIndex
	for j := 0; j < p.count(); j++ {
		if j != i {
			rebuilt = rebuilt.withAdded(p.at(j))
		}
	}
	return rebuilt
}

// Board is the packed tile state plus a per-team penguin index. Three
// bitsets encode every tile:
//
//	fish        tile holds fish
//	highOrTwo   fish count above 2, or penguin of team Two
//	oddOrPeng   odd fish count, or any penguin
//
// A board is a plain value: copies are independent and equal boards compare equal.
type Board struct {
	fish      bitset
	highOrTwo bitset
	oddOrPeng bitset
	penguins  [2]penguinIndex
}

func (b Board) tile(c Coordinate) Tile {
	high := b.highOrTwo.has(c)
	if b.fish.has(c) {
		fish := 1
		if high {
			fish = 3
		}
		if !b.oddOrPeng.has(c) {
			fish++
		}
		return FishTile(fish)
	}
	if b.oddOrPeng.has(c) {
		if high {
			return OwnedTile(Two)
		}
		return OwnedTile(One)
	}
	return EmptyTile()
}

func (b Board) Get(c Coordinate) (Tile, error) {
	if !c.Valid() {
		return Tile{}, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	return b.tile(c), nil
}

// At is Get without the error: off-board coordinates read as empty.
func (b Board) At(c Coordinate) Tile {
	if !c.Valid() {
		return EmptyTile()
	}
	return b.tile(c)
}

func (b Board) FishAt(c Coordinate) int {
	return b.At(c).FishCount()
}

func (b Board) CanSlideOnto(c Coordinate) bool {
	return c.Valid() && b.fish.has(c)
}

// Set overwrites a tile. Placing an owned tile appends it to the team's
// index, overwriting one removes it.
func (b *Board) Set(c Coordinate, t Tile) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if !t.valid() {
		return fmt.Errorf("%w: %v", ErrInvalidTile, t)
	}

	old := b.tile(c)
	if old == t {
		return nil
	}
	penguins := b.penguins
	if team, ok := old.Owner(); ok {
		penguins[team] = penguins[team].withRemoved(penguins[team].find(c))
	}
	if team, ok := t.Owner(); ok {
		if penguins[team].count() >= MaxPenguins {
			return fmt.Errorf("%w: team %s already has %d penguins", ErrInvalidTile, team, MaxPenguins)
		}
		penguins[team] = penguins[team].withAdded(c)
	}
	b.update(c, t, penguins)
	return nil
}

// update is the only place tiles and the penguin index change. Callers
// validate beforehand so that both views always move together.
func (b *Board) update(c Coordinate, t Tile, penguins [2]penguinIndex) {
	switch t.Kind {
	case FishKind:
		b.fish.put(c, true)
		b.highOrTwo.put(c, t.Fish > 2)
		b.oddOrPeng.put(c, t.Fish%2 == 1)
	case OwnedKind:
		b.fish.put(c, false)
		b.highOrTwo.put(c, t.Team == Two)
		b.oddOrPeng.put(c, true)
	default:
		b.fish.put(c, false)
		b.highOrTwo.put(c, false)
		b.oddOrPeng.put(c, false)
	}
	b.penguins = penguins
}

// Apply returns the board after team plays m. The receiver is left untouched.
func (b Board) Apply(m Move, team Team) (Board, error) {
	if !m.To.Valid() {
		return b, fmt.Errorf("%w: destination %v", ErrOutOfBounds, m.To)
	}
	if !b.fish.has(m.To) {
		return b, fmt.Errorf("%w: %v holds no fish", ErrIllegalMove, m.To)
	}

	next := b
	penguins := b.penguins
	if m.Kind == PlaceMove {
		if penguins[team].count() >= MaxPenguins {
			return b, fmt.Errorf("%w: team %s has no penguins left to place", ErrIllegalMove, team)
		}
		penguins[team] = penguins[team].withAdded(m.To)
		next.update(m.To, OwnedTile(team), penguins)
		return next, nil
	}

	if !m.From.Valid() {
		return b, fmt.Errorf("%w: source %v", ErrOutOfBounds, m.From)
	}
	slot := penguins[team].find(m.From)
	if slot < 0 || b.tile(m.From) != OwnedTile(team) {
		return b, fmt.Errorf("%w: no penguin of team %s on %v", ErrIllegalMove, team, m.From)
	}
	penguins[team] = penguins[team].withMoved(slot, m.To)
	next.update(m.From, EmptyTile(), penguins)
	next.update(m.To, OwnedTile(team), penguins)
	return next, nil
}

// Penguins lists the team's penguins in placement order.
func (b Board) Penguins(team Team) []Coordinate {
	index := b.penguins[team]
	penguins := make([]Coordinate, index.count())
	for i := range penguins {
		penguins[i] = index.at(i)
	}
	return penguins
}

func (b Board) PenguinCount(team Team) int {
	return b.penguins[team].count()
}

func (b Board) FishTotal() int {
	total := 0
	for _, c := range Coordinates() {
		total += b.tile(c).FishCount()
	}
	return total
}

// Validate checks that the penguin index and the owned tiles agree.
func (b Board) Validate() error {
	var result *multierror.Error

	for _, team := range Teams {
		index := b.penguins[team]
		if index.count() > MaxPenguins {
			result = multierror.Append(result, fmt.Errorf("team %s indexes %d penguins", team, index.count()))
			continue
		}
		for i := 0; i < index.count(); i++ {
			c := index.at(i)
			if !c.Valid() {
				result = multierror.Append(result, fmt.Errorf("team %s slot %d holds invalid %v", team, i, c))
				continue
			}
			if index.find(c) != i {
				result = multierror.Append(result, fmt.Errorf("team %s indexes %v twice", team, c))
			}
			if b.tile(c) != OwnedTile(team) {
				result = multierror.Append(result, fmt.Errorf("team %s indexes %v but the tile is %v", team, c, b.tile(c)))
			}
		}
	}

	for _, c := range Coordinates() {
		tile := b.tile(c)
		if team, ok := tile.Owner(); ok && b.penguins[team].find(c) < 0 {
			result = multierror.Append(result, fmt.Errorf("penguin of team %s on %v is not indexed", team, c))
		}
		if tile.Kind == EmptyKind && b.highOrTwo.has(c) {
			result = multierror.Append(result, fmt.Errorf("stray bit on empty tile %v", c))
		}
	}

	return result.ErrorOrNil()
}
