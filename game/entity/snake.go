package entity

import (
	"time"

	"github.com/spidervirus/Snake-Game/game/types"
)

// neckLength is the number of cells nearest the head that never count as a
// self-collision. A body of this size or shorter cannot hit itself.
const neckLength = 3

// AdvanceResult is the outcome of moving the snake one cell.
type AdvanceResult int

const (
	Advanced AdvanceResult = iota
	Collision
)

func (r AdvanceResult) String() string {
	if r == Collision {
		return "collision"
	}
	return "advanced"
}

type Snake struct {
	grid      types.Grid
	body      []types.Point // head first
	length    int
	direction types.Direction
	score     int
	effects   [powerUpKindCount]Effect
}

// NewSnake creates a length-1 snake at start heading in dir.
func NewSnake(grid types.Grid, start types.Point, dir types.Direction) *Snake {
	s := &Snake{grid: grid}
	s.Place(start, dir)
	return s
}

// Reset restores the starting state: one cell at the grid centre, a random
// heading, score 0 and no effects.
func (s *Snake) Reset(placer *types.Placer) {
	s.Place(s.grid.Center(), placer.RandomDirection())
}

// Place resets the snake to a single cell at start heading in dir.
func (s *Snake) Place(start types.Point, dir types.Direction) {
	s.body = append(s.body[:0], start)
	s.length = 1
	s.direction = dir
	s.score = 0
	s.effects = [powerUpKindCount]Effect{}
}

func (s *Snake) GetHead() types.Point {
	return s.body[0]
}

// Body returns a copy of the cells, head first.
func (s *Snake) Body() []types.Point {
	out := make([]types.Point, len(s.body))
	copy(out, s.body)
	return out
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Length returns the target size the body grows towards.
func (s *Snake) Length() int {
	return s.length
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

func (s *Snake) Score() int {
	return s.score
}

// Occupies reports whether any body cell is p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, b := range s.body {
		if b == p {
			return true
		}
	}
	return false
}

// SetDirection changes heading unless dir is the exact reverse of the current
// one. It reports whether the change was accepted.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir.IsReverse(s.direction) {
		return false
	}
	s.direction = dir
	return true
}

// Grow raises the target length by one; the body catches up on later advances.
func (s *Snake) Grow() {
	s.length++
}

// AddPoints credits base points scaled by the active score multiplier and
// returns what was added.
func (s *Snake) AddPoints(base int) int {
	pts := base * s.ScoreMultiplier()
	s.score += pts
	return pts
}

// Advance moves the head one cell along the current direction. Obstacles and
// the body (minus the neck) are fatal unless invincibility is running at now.
// Effects that have run out by now are cleared after a successful move.
func (s *Snake) Advance(obstacles types.PointSet, now time.Duration) AdvanceResult {
	newHead := s.grid.Wrap(s.GetHead(), s.direction)

	if !s.InvincibleAt(now) && s.collides(newHead, obstacles) {
		return Collision
	}

	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead
	if len(s.body) > s.length {
		s.body = s.body[:len(s.body)-1]
	}

	s.ExpireEffects(now)
	return Advanced
}

func (s *Snake) collides(p types.Point, obstacles types.PointSet) bool {
	if obstacles.Contains(p) {
		return true
	}
	if len(s.body) <= neckLength {
		return false
	}
	for _, b := range s.body[neckLength:] {
		if b == p {
			return true
		}
	}
	return false
}

// ApplyPowerUp starts, or restarts, the effect of kind at now.
func (s *Snake) ApplyPowerUp(kind PowerUpKind, now time.Duration) {
	if kind < 0 || kind >= powerUpKindCount {
		return
	}
	s.effects[kind] = Effect{
		Active:   true,
		Start:    now,
		Duration: kind.Duration(),
	}
}

// ExpireEffects clears every effect whose duration has elapsed and returns
// the kinds that ended.
func (s *Snake) ExpireEffects(now time.Duration) []PowerUpKind {
	var expired []PowerUpKind
	for i := range s.effects {
		if s.effects[i].Active && s.effects[i].Expired(now) {
			s.effects[i] = Effect{}
			expired = append(expired, PowerUpKind(i))
		}
	}
	return expired
}

// HasEffect reports whether kind is currently recorded as active.
func (s *Snake) HasEffect(kind PowerUpKind) bool {
	return s.effects[kind].Active
}

// InvincibleAt reports whether collisions are bypassed at now.
func (s *Snake) InvincibleAt(now time.Duration) bool {
	e := s.effects[PowerUpInvincible]
	return e.Active && !e.Expired(now)
}

// IsInvincible reports the recorded invincibility flag.
func (s *Snake) IsInvincible() bool {
	return s.effects[PowerUpInvincible].Active
}

// SpeedMultiplier scales the tick rate while the speed effect is active.
func (s *Snake) SpeedMultiplier() float64 {
	if s.effects[PowerUpSpeed].Active {
		return SpeedMultiplier
	}
	return 1.0
}

// ScoreMultiplier scales points while double points is active.
func (s *Snake) ScoreMultiplier() int {
	if s.effects[PowerUpDoublePoints].Active {
		return DoublePointsMultiplier
	}
	return 1
}

// ActiveEffects lists running effects with their remaining time at now.
func (s *Snake) ActiveEffects(now time.Duration) []ActiveEffect {
	var out []ActiveEffect
	for i, e := range s.effects {
		if e.Active {
			out = append(out, ActiveEffect{Kind: PowerUpKind(i), Remaining: e.Remaining(now)})
		}
	}
	return out
}
