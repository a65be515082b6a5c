package game

import (
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/spidervirus/Snake-Game/game/entity"
	"github.com/spidervirus/Snake-Game/game/manager"
	"github.com/spidervirus/Snake-Game/game/types"
)

// State is the phase of a session.
type State int

const (
	StateMenu State = iota
	StateRunning
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// Config holds the collaborators injected into a session.
type Config struct {
	Grid       types.Grid
	Difficulty types.Difficulty
	// Rand drives every random draw. A nil Rand is seeded from the wall clock.
	Rand  *rand.Rand
	Store manager.HighScoreStore
	// Classic disables obstacles and power-ups.
	Classic bool
}

// Session is one player's game: the snake, its food, the obstacles and the
// power-up slot, stepped one tick at a time by the caller.
type Session struct {
	id         string
	state      State
	difficulty types.Difficulty
	classic    bool
	grid       types.Grid

	placer       *types.Placer
	collisionMgr *manager.CollisionManager
	snake        *entity.Snake
	food         *manager.FoodManager
	obstacles    *manager.ObstacleManager
	powerups     *manager.PowerUpManager
	scores       *manager.ScoreManager

	turns        []types.Direction
	newHighScore bool
	now          time.Duration
	tick         uint64
}

func NewSession(cfg Config) *Session {
	grid := cfg.Grid
	if grid.Width <= 0 || grid.Height <= 0 {
		grid = types.DefaultGrid
	}
	rng := cfg.Rand
	if rng == nil {
		rng = types.NewRand(uint64(time.Now().UnixNano()))
	}
	difficulty := cfg.Difficulty
	if !difficulty.Valid() {
		difficulty = types.Medium
	}

	placer := types.NewPlacer(grid, rng)
	collisionMgr := manager.NewCollisionManager()

	return &Session{
		state:        StateMenu,
		difficulty:   difficulty,
		classic:      cfg.Classic,
		grid:         grid,
		placer:       placer,
		collisionMgr: collisionMgr,
		snake:        entity.NewSnake(grid, grid.Center(), types.Right),
		food:         manager.NewFoodManager(placer),
		obstacles:    manager.NewObstacleManager(placer),
		powerups:     manager.NewPowerUpManager(placer, collisionMgr),
		scores:       manager.NewScoreManager(cfg.Store),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Difficulty() types.Difficulty {
	return s.difficulty
}

func (s *Session) Score() int {
	return s.snake.Score()
}

// SelectDifficulty changes the preset while in the menu.
func (s *Session) SelectDifficulty(d types.Difficulty) bool {
	if s.state != StateMenu || !d.Valid() {
		return false
	}
	s.difficulty = d
	return true
}

// Start begins a fresh game from the menu, or restarts after a game over.
func (s *Session) Start(now time.Duration) bool {
	if s.state != StateMenu && s.state != StateGameOver {
		return false
	}
	s.reset(now)
	s.state = StateRunning
	log.Printf("[GAME] [INFO] session %s started: difficulty=%s classic=%t", s.id, s.difficulty, s.classic)
	return true
}

// ToMenu abandons the current game.
func (s *Session) ToMenu() {
	s.state = StateMenu
	s.turns = nil
}

// TogglePause flips between running and paused.
func (s *Session) TogglePause() State {
	switch s.state {
	case StateRunning:
		s.state = StatePaused
	case StatePaused:
		s.state = StateRunning
	}
	return s.state
}

// maxQueuedTurns bounds how many turns may wait between two ticks.
const maxQueuedTurns = 2

// Steer queues a direction change. Each request is checked against the last
// accepted heading, so two quick turns both land, one per tick. Reverses and
// repeats are dropped.
func (s *Session) Steer(dir types.Direction) bool {
	if s.state != StateRunning && s.state != StatePaused {
		return false
	}
	last := s.snake.Direction()
	if n := len(s.turns); n > 0 {
		last = s.turns[n-1]
	}
	if dir == last || dir.IsReverse(last) || len(s.turns) >= maxQueuedTurns {
		return false
	}
	s.turns = append(s.turns, dir)
	return true
}

// TickInterval is the wall time between ticks for the current difficulty and effects.
func (s *Session) TickInterval() time.Duration {
	base := s.difficulty.BaseInterval()
	return time.Duration(float64(base) / s.snake.SpeedMultiplier())
}

// IsNewHighScore reports whether score beats the record for d.
func (s *Session) IsNewHighScore(d types.Difficulty, score int) bool {
	return s.scores.IsNewHighScore(d, score)
}

// CommitHighScore stores score for d when it is a new record.
func (s *Session) CommitHighScore(d types.Difficulty, score int) bool {
	return s.scores.CommitHighScore(d, score)
}

// Tick advances the game by one step at game time now and returns the
// resulting snapshot with the events of this step.
func (s *Session) Tick(now time.Duration) Snapshot {
	if s.state != StateRunning && s.state != StatePaused {
		return s.snapshot(nil)
	}

	if len(s.turns) > 0 {
		s.snake.SetDirection(s.turns[0])
		s.turns = s.turns[1:]
	}
	if s.state == StatePaused {
		return s.snapshot(nil)
	}

	s.now = now
	s.tick++

	var events []Event
	before := s.snake.ActiveEffects(now)

	if s.snake.Advance(s.obstacles.Set(), now) == entity.Collision {
		return s.snapshot(s.gameOver())
	}

	for _, e := range before {
		if !s.snake.HasEffect(e.Kind) {
			events = append(events, Event{Type: EventEffectExpired, Kind: e.Kind})
		}
	}

	if kind, ok := s.powerups.Collect(s.snake, now); ok {
		events = append(events, Event{Type: EventPowerUp, Kind: kind})
	}

	if s.collisionMgr.IsFoodCollision(s.snake.GetHead(), s.food.Position()) {
		pts := s.snake.AddPoints(manager.FoodPoints)
		s.snake.Grow()
		s.food.Relocate(s.occupied(false))
		events = append(events, Event{Type: EventEat, Points: pts})
	}

	if !s.classic {
		if p := s.powerups.Update(now, s.occupied(true)); p != nil {
			events = append(events, Event{Type: EventPowerUpSpawned, Kind: p.Kind})
		}
	}

	return s.snapshot(events)
}

// Snapshot returns the current state without stepping.
func (s *Session) Snapshot() Snapshot {
	return s.snapshot(nil)
}

func (s *Session) reset(now time.Duration) {
	s.id = uuid.New().String()
	s.snake.Reset(s.placer)
	s.turns = nil
	s.newHighScore = false
	s.now = now
	s.tick = 0

	if s.classic {
		s.obstacles.Clear()
	} else {
		s.obstacles.Generate(types.NewPointSet(s.snake.Body()))
	}
	s.food.Relocate(s.collisionMgr.Occupied(s.snake, s.obstacles.Set()))
	s.powerups.Reset(now)
}

func (s *Session) gameOver() []Event {
	s.state = StateGameOver
	s.turns = nil

	score := s.snake.Score()
	events := []Event{{Type: EventCrash, Points: score}}

	s.newHighScore = s.scores.IsNewHighScore(s.difficulty, score)
	if s.newHighScore {
		s.scores.CommitHighScore(s.difficulty, score)
		events = append(events, Event{Type: EventNewHighScore, Points: score})
	}

	log.Printf("[GAME] [INFO] session %s over: difficulty=%s score=%d new_high=%t",
		s.id, s.difficulty, score, s.newHighScore)
	return events
}

// occupied is the exclusion set for new items: snake and obstacles plus the
// current pickup, and the food when placing a pickup.
func (s *Session) occupied(withFood bool) types.PointSet {
	var extra []types.Point
	if p := s.powerups.Active(); p != nil {
		extra = append(extra, p.Position)
	}
	if withFood {
		extra = append(extra, s.food.Position())
	}
	return s.collisionMgr.Occupied(s.snake, s.obstacles.Set(), extra...)
}
