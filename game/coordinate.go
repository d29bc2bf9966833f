package game

import (
	"fmt"
	"math"
)

// Coordinate addresses a tile in doubled coordinates: the 8x8 grid is spread
// over 16 columns and every row only uses the columns matching its parity.
type Coordinate struct {
	X, Y int
}

func (c Coordinate) Valid() bool {
	return c.X >= 0 && c.X <= RightmostX &&
		c.Y >= 0 && c.Y < BoardHeight &&
		c.X%2 == c.Y%2
}

func (c Coordinate) Add(v Vector) Coordinate {
	return Coordinate{X: c.X + v.X, Y: c.Y + v.Y}
}

// ToOddR converts to the odd-r offset layout used by the bitsets and the wire format.
func (c Coordinate) ToOddR() (x, y int) {
	return (c.X+1)/2 - c.Y%2, c.Y
}

func FromOddR(x, y int) Coordinate {
	return Coordinate{X: 2*x + y%2, Y: y}
}

// Inverted mirrors the coordinate through the centre of the board.
func (c Coordinate) Inverted() Coordinate {
	return Coordinate{X: RightmostX - c.X, Y: BoardHeight - 1 - c.Y}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Coordinates returns every valid coordinate in row-major order.
func Coordinates() []Coordinate {
	return allCoordinates[:]
}

var allCoordinates = func() (all [BoardWidth * BoardHeight]Coordinate) {
	i := 0
	for y := 0; y < BoardHeight; y++ {
		for x := y % 2; x <= RightmostX; x += 2 {
			all[i] = Coordinate{X: x, Y: y}
			i++
		}
	}
	return all
}()

type Vector struct {
	X, Y int
}

// Between returns the vector pointing from b to a.
func Between(a, b Coordinate) Vector {
	return Vector{X: a.X - b.X, Y: a.Y - b.Y}
}

func (v Vector) Scale(n int) Vector {
	return Vector{X: v.X * n, Y: v.Y * n}
}

func (v Vector) Dot(o Vector) int {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector) Cross(o Vector) int {
	return v.X*o.Y - v.Y*o.X
}

func (v Vector) Length() float64 {
	return math.Sqrt(float64(v.Dot(v)))
}

// AngleTo returns the angle between both vectors in radians.
func (v Vector) AngleTo(o Vector) float64 {
	cos := float64(v.Dot(o)) / (v.Length() * o.Length())
	return math.Acos(math.Max(-1, math.Min(1, cos)))
}

// Parallel reports whether o points the same way as v.
func (v Vector) Parallel(o Vector) bool {
	return v.Cross(o) == 0 && v.Dot(o) > 0
}

type Direction int

const (
	Left Direction = iota
	TopLeft
	TopRight
	Right
	BottomRight
	BottomLeft
)

var Directions = [6]Direction{Left, TopLeft, TopRight, Right, BottomRight, BottomLeft}

var directionVectors = [6]Vector{
	{-2, 0}, {-1, 1}, {1, 1},
	{2, 0}, {1, -1}, {-1, -1},
}

func (d Direction) Vector() Vector {
	return directionVectors[d]
}

func (d Direction) Opposite() Direction {
	return (d + 3) % 6
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case Right:
		return "Right"
	case BottomRight:
		return "BottomRight"
	case BottomLeft:
		return "BottomLeft"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Neighbours returns the on-board tiles one step away from c, in direction order.
func Neighbours(c Coordinate) []Coordinate {
	neighbours := make([]Coordinate, 0, len(Directions))
	for _, d := range Directions {
		if n := c.Add(d.Vector()); n.Valid() {
			neighbours = append(neighbours, n)
		}
	}
	return neighbours
}
