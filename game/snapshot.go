package game

import (
	"time"

	"github.com/spidervirus/Snake-Game/game/entity"
	"github.com/spidervirus/Snake-Game/game/manager"
	"github.com/spidervirus/Snake-Game/game/types"
)

// EventType identifies something the shell may react to (sound, overlays).
type EventType int

const (
	EventEat EventType = iota
	EventCrash
	EventNewHighScore
	EventPowerUp
	EventPowerUpSpawned
	EventEffectExpired
)

func (t EventType) String() string {
	switch t {
	case EventEat:
		return "eat"
	case EventCrash:
		return "crash"
	case EventNewHighScore:
		return "new_high_score"
	case EventPowerUp:
		return "power_up"
	case EventPowerUpSpawned:
		return "power_up_spawned"
	case EventEffectExpired:
		return "effect_expired"
	}
	return "unknown"
}

// Event is emitted by a tick. Kind is set for power-up events, Points for
// eating (points gained) and crashing (final score).
type Event struct {
	Type   EventType
	Kind   entity.PowerUpKind
	Points int
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	SessionID  string
	State      State
	Difficulty types.Difficulty
	Grid       types.Grid
	Tick       uint64
	Now        time.Duration

	Snake     []types.Point // head first
	Direction types.Direction
	Food      types.Point
	Obstacles []types.Point
	PowerUp   *manager.PowerUp

	Score        int
	HighScore    int
	HighScores   map[types.Difficulty]int
	NewHighScore bool

	Effects    []entity.ActiveEffect
	Invincible bool

	Events []Event
}

// Has reports whether the snapshot carries an event of type t.
func (s Snapshot) Has(t EventType) bool {
	for _, e := range s.Events {
		if e.Type == t {
			return true
		}
	}
	return false
}

func (s *Session) snapshot(events []Event) Snapshot {
	return Snapshot{
		SessionID:    s.id,
		State:        s.state,
		Difficulty:   s.difficulty,
		Grid:         s.grid,
		Tick:         s.tick,
		Now:          s.now,
		Snake:        s.snake.Body(),
		Direction:    s.snake.Direction(),
		Food:         s.food.Position(),
		Obstacles:    s.obstacles.Cells(),
		PowerUp:      s.powerups.Active(),
		Score:        s.snake.Score(),
		HighScore:    s.scores.GetHighScore(s.difficulty),
		HighScores:   s.scores.HighScores(),
		NewHighScore: s.newHighScore,
		Effects:      s.snake.ActiveEffects(s.now),
		Invincible:   s.snake.IsInvincible(),
		Events:       events,
	}
}
