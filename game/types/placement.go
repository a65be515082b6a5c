package types

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// NewRand returns a deterministic generator for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Placer draws random free cells on a grid.
type Placer struct {
	grid Grid
	rng  *rand.Rand
}

func NewPlacer(grid Grid, rng *rand.Rand) *Placer {
	return &Placer{
		grid: grid,
		rng:  rng,
	}
}

// Rand exposes the shared generator so callers draw from a single stream.
func (p *Placer) Rand() *rand.Rand {
	return p.rng
}

// RandomCellExcluding returns a uniformly drawn cell that is not in excluded.
// Exclusion sets are always a small fraction of the grid; a full grid is a
// configuration error and panics.
func (p *Placer) RandomCellExcluding(excluded PointSet) Point {
	blocked := 0
	for c := range excluded {
		if p.grid.Contains(c) {
			blocked++
		}
	}
	if blocked >= p.grid.Cells() {
		panic(fmt.Sprintf("placement: no free cell on %dx%d grid", p.grid.Width, p.grid.Height))
	}

	for {
		cell := Point{
			X: p.rng.Intn(p.grid.Width),
			Y: p.rng.Intn(p.grid.Height),
		}
		if !excluded.Contains(cell) {
			return cell
		}
	}
}

// RandomDirection picks one of the four headings.
func (p *Placer) RandomDirection() Direction {
	return Directions[p.rng.Intn(len(Directions))]
}
