package manager

import (
	"github.com/spidervirus/Snake-Game/game/types"
)

// Obstacle count bounds, inclusive.
const (
	MinObstacles = 3
	MaxObstacles = 7
)

// ObstacleManager owns the fixed obstacle cells of one session.
type ObstacleManager struct {
	placer *types.Placer
	cells  []types.Point
	set    types.PointSet
}

func NewObstacleManager(placer *types.Placer) *ObstacleManager {
	return &ObstacleManager{
		placer: placer,
		set:    types.NewPointSet(),
	}
}

// Generate replaces the obstacles with MinObstacles..MaxObstacles distinct
// cells, none of them in excluded.
func (om *ObstacleManager) Generate(excluded types.PointSet) {
	count := MinObstacles + om.placer.Rand().Intn(MaxObstacles-MinObstacles+1)

	blocked := types.NewPointSet()
	for p := range excluded {
		blocked.Add(p)
	}

	om.cells = om.cells[:0]
	om.set = types.NewPointSet()
	for i := 0; i < count; i++ {
		p := om.placer.RandomCellExcluding(blocked)
		blocked.Add(p)
		om.set.Add(p)
		om.cells = append(om.cells, p)
	}
}

// Clear removes every obstacle.
func (om *ObstacleManager) Clear() {
	om.cells = om.cells[:0]
	om.set = types.NewPointSet()
}

// Set returns the obstacle cells for collision checks. Callers must not modify it.
func (om *ObstacleManager) Set() types.PointSet {
	return om.set
}

// Cells returns a copy of the obstacles in generation order.
func (om *ObstacleManager) Cells() []types.Point {
	out := make([]types.Point, len(om.cells))
	copy(out, om.cells)
	return out
}
