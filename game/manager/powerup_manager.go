package manager

import (
	"time"

	"github.com/spidervirus/Snake-Game/game/entity"
	"github.com/spidervirus/Snake-Game/game/types"
)

// PowerUpSpawnInterval is the game time between an empty slot and the next pickup.
const PowerUpSpawnInterval = 10 * time.Second

// PowerUp is a pickup waiting on the grid. Duration is the lifetime of the
// effect once collected; the pickup itself stays until the snake reaches it.
type PowerUp struct {
	Kind      entity.PowerUpKind
	Position  types.Point
	SpawnedAt time.Duration
	Duration  time.Duration
}

// PowerUpManager runs the single pickup slot: Empty -> Active -> Empty.
type PowerUpManager struct {
	placer       *types.Placer
	collisionMgr *CollisionManager
	active       *PowerUp
	lastSpawn    time.Duration
}

func NewPowerUpManager(placer *types.Placer, collisionMgr *CollisionManager) *PowerUpManager {
	return &PowerUpManager{
		placer:       placer,
		collisionMgr: collisionMgr,
	}
}

// Reset empties the slot and restarts the spawn clock at now.
func (pm *PowerUpManager) Reset(now time.Duration) {
	pm.active = nil
	pm.lastSpawn = now
}

// Update spawns a pickup outside excluded when the slot has been empty for
// the spawn interval. It returns the new pickup, or nil.
func (pm *PowerUpManager) Update(now time.Duration, excluded types.PointSet) *PowerUp {
	if pm.active != nil || now-pm.lastSpawn < PowerUpSpawnInterval {
		return nil
	}

	kind := entity.PowerUpKinds[pm.placer.Rand().Intn(len(entity.PowerUpKinds))]
	pm.active = &PowerUp{
		Kind:      kind,
		Position:  pm.placer.RandomCellExcluding(excluded),
		SpawnedAt: now,
		Duration:  kind.Duration(),
	}
	pm.lastSpawn = now

	p := *pm.active
	return &p
}

// Collect applies the pickup to the snake when its head is on the pickup.
// The slot empties and the spawn clock restarts at now.
func (pm *PowerUpManager) Collect(snake *entity.Snake, now time.Duration) (entity.PowerUpKind, bool) {
	if !pm.collisionMgr.IsPowerUpCollision(snake.GetHead(), pm.active) {
		return 0, false
	}

	kind := pm.active.Kind
	snake.ApplyPowerUp(kind, now)
	pm.active = nil
	pm.lastSpawn = now
	return kind, true
}

// Active returns a copy of the pickup on the grid, or nil.
func (pm *PowerUpManager) Active() *PowerUp {
	if pm.active == nil {
		return nil
	}
	p := *pm.active
	return &p
}
