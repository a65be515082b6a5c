package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Game constants
const (
	GridWidth  = 40 // 800px window / 20px cells
	GridHeight = 30 // 600px window / 20px cells
)

// DefaultGrid is the fixed playing field.
var DefaultGrid = Grid{Width: GridWidth, Height: GridHeight}

// Center returns the starting cell of a fresh snake.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains reports whether p lies on the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap moves p by d, wrapping around the edges of the grid.
func (g Grid) Wrap(p Point, d Direction) Point {
	return Point{
		X: mod(p.X+d.X, g.Width),
		Y: mod(p.Y+d.Y, g.Height),
	}
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Point is a single grid cell.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// PointSet is a set of cells, used for obstacles and placement exclusions.
type PointSet map[Point]struct{}

// NewPointSet builds a set from any number of cell slices.
func NewPointSet(groups ...[]Point) PointSet {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	s := make(PointSet, n)
	for _, g := range groups {
		for _, p := range g {
			s[p] = struct{}{}
		}
	}
	return s
}

func (s PointSet) Add(p Point) {
	s[p] = struct{}{}
}

func (s PointSet) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}

// Direction is a unit step on the grid.
type Direction struct {
	X, Y int
}

var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Directions lists the four headings in a stable order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// IsReverse reports whether d points exactly against other.
func (d Direction) IsReverse(other Direction) bool {
	return d == other.Reverse()
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("dir(%d,%d)", d.X, d.Y)
}

// Difficulty selects the base speed of the game. The zero value is unset.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

// Difficulties lists the presets in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ticksPerSecond is the snake speed of each preset in cells per second.
var ticksPerSecond = [...]int{
	Easy:   8,
	Medium: 12,
	Hard:   16,
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// Valid reports whether d is one of the presets.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// TicksPerSecond returns the base simulation rate.
func (d Difficulty) TicksPerSecond() int {
	if !d.Valid() {
		return ticksPerSecond[Medium]
	}
	return ticksPerSecond[d]
}

// BaseInterval returns the time between ticks before speed effects.
func (d Difficulty) BaseInterval() time.Duration {
	return time.Second / time.Duration(d.TicksPerSecond())
}

// Next returns the following preset, wrapping around.
func (d Difficulty) Next() Difficulty {
	return Difficulties[mod(d.index()+1, len(Difficulties))]
}

// Prev returns the preceding preset, wrapping around.
func (d Difficulty) Prev() Difficulty {
	return Difficulties[mod(d.index()-1, len(Difficulties))]
}

// index is the menu position of d. Unset or unknown values sit on Medium.
func (d Difficulty) index() int {
	for i, p := range Difficulties {
		if p == d {
			return i
		}
	}
	return int(Medium - Easy)
}

// ParseDifficulty accepts the preset names case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(strings.TrimSpace(s), d.String()) {
			return d, nil
		}
	}
	return Medium, errors.Errorf("unknown difficulty %q", s)
}
