package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGridWrap(t *testing.T) {
	g := DefaultGrid

	t.Run("interior move", func(t *testing.T) {
		assert.Equal(t, Point{X: 21, Y: 15}, g.Wrap(Point{X: 20, Y: 15}, Right))
		assert.Equal(t, Point{X: 20, Y: 14}, g.Wrap(Point{X: 20, Y: 15}, Up))
	})

	t.Run("wraps right edge", func(t *testing.T) {
		assert.Equal(t, Point{X: 0, Y: 3}, g.Wrap(Point{X: 39, Y: 3}, Right))
	})

	t.Run("wraps left edge", func(t *testing.T) {
		assert.Equal(t, Point{X: 39, Y: 3}, g.Wrap(Point{X: 0, Y: 3}, Left))
	})

	t.Run("wraps top and bottom", func(t *testing.T) {
		assert.Equal(t, Point{X: 5, Y: 29}, g.Wrap(Point{X: 5, Y: 0}, Up))
		assert.Equal(t, Point{X: 5, Y: 0}, g.Wrap(Point{X: 5, Y: 29}, Down))
	})
}

func TestDirectionReverse(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	for d, r := range pairs {
		assert.True(t, d.IsReverse(r), "%s vs %s", d, r)
		assert.Equal(t, r, d.Reverse())
	}
	assert.False(t, Up.IsReverse(Left))
	assert.False(t, Up.IsReverse(Up))
}

func TestDifficulty(t *testing.T) {
	assert.Equal(t, time.Second/8, Easy.BaseInterval())
	assert.Equal(t, time.Second/12, Medium.BaseInterval())
	assert.Equal(t, time.Second/16, Hard.BaseInterval())

	assert.Equal(t, Medium, Easy.Next())
	assert.Equal(t, Easy, Hard.Next())
	assert.Equal(t, Hard, Easy.Prev())
	assert.Equal(t, Medium, Hard.Prev())

	var unset Difficulty
	assert.False(t, unset.Valid())
	assert.Equal(t, time.Second/12, unset.BaseInterval())
	assert.Equal(t, Hard, unset.Next(), "unset cycles from Medium")

	d, err := ParseDifficulty(" hard ")
	assert.NoError(t, err)
	assert.Equal(t, Hard, d)

	_, err = ParseDifficulty("Impossible")
	assert.Error(t, err)
}

func TestPlacerRandomCellExcluding(t *testing.T) {
	grid := Grid{Width: 4, Height: 3}
	p := NewPlacer(grid, NewRand(7))

	excluded := NewPointSet()
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			if x != 2 || y != 1 {
				excluded.Add(Point{X: x, Y: y})
			}
		}
	}

	for i := 0; i < 20; i++ {
		assert.Equal(t, Point{X: 2, Y: 1}, p.RandomCellExcluding(excluded))
	}
}

func TestPlacerPanicsOnFullGrid(t *testing.T) {
	grid := Grid{Width: 2, Height: 2}
	p := NewPlacer(grid, NewRand(1))
	full := NewPointSet([]Point{{0, 0}, {0, 1}, {1, 0}, {1, 1}})

	assert.Panics(t, func() { p.RandomCellExcluding(full) })
}

func TestPlacerDeterministic(t *testing.T) {
	a := NewPlacer(DefaultGrid, NewRand(42))
	b := NewPlacer(DefaultGrid, NewRand(42))
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.RandomCellExcluding(nil), b.RandomCellExcluding(nil))
	}
}
