package manager

import (
	"github.com/spidervirus/Snake-Game/game/entity"
	"github.com/spidervirus/Snake-Game/game/types"
)

// CollisionManager answers occupancy questions for placement and pickups.
// Movement collisions are resolved by the snake itself.
type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// Occupied builds the exclusion set of everything currently on the grid:
// the snake body, the obstacles and any extra cells (food, pickup).
func (cm *CollisionManager) Occupied(snake *entity.Snake, obstacles types.PointSet, extra ...types.Point) types.PointSet {
	set := types.NewPointSet(snake.Body(), extra)
	for p := range obstacles {
		set.Add(p)
	}
	return set
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// IsPowerUpCollision checks the head against the pickup, if one is on the grid.
func (cm *CollisionManager) IsPowerUpCollision(pos types.Point, p *PowerUp) bool {
	return p != nil && pos == p.Position
}
