package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spidervirus/Snake-Game/game/entity"
	"github.com/spidervirus/Snake-Game/game/manager"
	"github.com/spidervirus/Snake-Game/game/types"
	"github.com/spidervirus/Snake-Game/storage"
)

func newTestSession(t *testing.T, seed uint64, classic bool) (*Session, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	s := NewSession(Config{
		Grid:       types.DefaultGrid,
		Difficulty: types.Medium,
		Rand:       types.NewRand(seed),
		Store:      store,
		Classic:    classic,
	})
	require.True(t, s.Start(0))
	return s, store
}

// placeSnake puts a fresh snake at (20,15) heading right with nothing in the way.
func placeSnake(s *Session) {
	s.snake.Place(types.Point{X: 20, Y: 15}, types.Right)
	s.obstacles.Clear()
	s.food.Place(types.Point{X: 0, Y: 0})
}

func TestSessionStates(t *testing.T) {
	s := NewSession(Config{Rand: types.NewRand(1)})
	assert.Equal(t, StateMenu, s.State())

	assert.True(t, s.SelectDifficulty(types.Hard))
	assert.Equal(t, types.Hard, s.Difficulty())

	require.True(t, s.Start(0))
	assert.Equal(t, StateRunning, s.State())
	assert.NotEmpty(t, s.ID())
	assert.False(t, s.SelectDifficulty(types.Easy), "difficulty is fixed during play")
	assert.False(t, s.Start(0), "already running")

	assert.Equal(t, StatePaused, s.TogglePause())
	assert.Equal(t, StateRunning, s.TogglePause())

	s.ToMenu()
	assert.Equal(t, StateMenu, s.State())
}

func TestSessionDefaultsToMedium(t *testing.T) {
	s := NewSession(Config{Rand: types.NewRand(1)})
	assert.Equal(t, types.Medium, s.Difficulty())
	assert.Equal(t, time.Second/12, s.TickInterval())

	s = NewSession(Config{Rand: types.NewRand(1), Difficulty: types.Difficulty(42)})
	assert.Equal(t, types.Medium, s.Difficulty())
}

func TestSessionStartLayout(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		s, _ := newTestSession(t, seed, false)
		snap := s.Snapshot()

		require.Equal(t, []types.Point{types.DefaultGrid.Center()}, snap.Snake)
		assert.GreaterOrEqual(t, len(snap.Obstacles), 3)
		assert.LessOrEqual(t, len(snap.Obstacles), 7)
		for _, o := range snap.Obstacles {
			assert.NotEqual(t, snap.Snake[0], o)
			assert.NotEqual(t, snap.Food, o)
		}
		assert.NotEqual(t, snap.Snake[0], snap.Food)
		assert.Nil(t, snap.PowerUp)
		assert.Equal(t, 0, snap.Score)
	}
}

func TestSessionPauseSkipsPhysics(t *testing.T) {
	s, _ := newTestSession(t, 4, false)
	placeSnake(s)

	s.TogglePause()
	s.Steer(types.Down)
	snap := s.Tick(time.Second)

	assert.Equal(t, StatePaused, snap.State)
	assert.Equal(t, []types.Point{{X: 20, Y: 15}}, snap.Snake)
	assert.Equal(t, types.Down, snap.Direction, "pending direction is still applied")
	assert.Equal(t, uint64(0), snap.Tick)
}

func TestSessionSteerRejectsReverse(t *testing.T) {
	s, _ := newTestSession(t, 4, false)
	placeSnake(s)

	assert.False(t, s.Steer(types.Left))
	assert.False(t, s.Steer(types.Right), "already heading right")
	snap := s.Tick(time.Second)
	assert.Equal(t, types.Right, snap.Direction)
	assert.Equal(t, types.Point{X: 21, Y: 15}, snap.Snake[0])
}

func TestSessionSteerQuickTurns(t *testing.T) {
	s, _ := newTestSession(t, 4, false)
	placeSnake(s)

	// Up then Left before one tick: Left is checked against Up, not Right.
	assert.True(t, s.Steer(types.Up))
	assert.False(t, s.Steer(types.Down), "reverse of the queued Up")
	assert.True(t, s.Steer(types.Left))

	snap := s.Tick(time.Second)
	assert.Equal(t, types.Up, snap.Direction)
	assert.Equal(t, types.Point{X: 20, Y: 14}, snap.Snake[0])

	snap = s.Tick(2 * time.Second)
	assert.Equal(t, types.Left, snap.Direction)
	assert.Equal(t, types.Point{X: 19, Y: 14}, snap.Snake[0])

	snap = s.Tick(3 * time.Second)
	assert.Equal(t, types.Left, snap.Direction)
	assert.Equal(t, types.Point{X: 18, Y: 14}, snap.Snake[0])
}

func TestSessionSteerQueueBounded(t *testing.T) {
	s, _ := newTestSession(t, 4, false)
	placeSnake(s)

	assert.True(t, s.Steer(types.Up))
	assert.True(t, s.Steer(types.Left))
	assert.False(t, s.Steer(types.Down), "queue is full")

	s.ToMenu()
	require.True(t, s.Start(0))
	placeSnake(s)
	snap := s.Tick(time.Second)
	assert.Equal(t, types.Right, snap.Direction, "queued turns are dropped with the game")
}

func TestSessionEatFood(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		s, _ := newTestSession(t, 8, false)
		placeSnake(s)
		s.food.Place(types.Point{X: 21, Y: 15})

		snap := s.Tick(time.Second)
		require.Equal(t, StateRunning, snap.State)
		assert.Equal(t, 1, snap.Score)
		assert.Equal(t, 2, s.snake.Length())
		assert.NotEqual(t, types.Point{X: 21, Y: 15}, snap.Food)
		assert.True(t, snap.Has(EventEat))
		assert.Equal(t, 1, snap.Events[0].Points)

		snap = s.Tick(2 * time.Second)
		assert.Len(t, snap.Snake, 2)
	})

	t.Run("double points", func(t *testing.T) {
		s, _ := newTestSession(t, 8, false)
		placeSnake(s)
		s.food.Place(types.Point{X: 21, Y: 15})
		s.snake.ApplyPowerUp(entity.PowerUpDoublePoints, 0)

		snap := s.Tick(time.Second)
		assert.Equal(t, 2, snap.Score)
	})
}

func TestSessionFoodNeverOnSnakeOrObstacle(t *testing.T) {
	s, _ := newTestSession(t, 13, false)
	s.snake.Place(types.Point{X: 0, Y: 10}, types.Right)
	s.obstacles.Clear()

	now := time.Duration(0)
	for i := 0; i < 300; i++ {
		// Feed the snake every tick by dropping food on its next cell.
		s.food.Place(types.DefaultGrid.Wrap(s.snake.GetHead(), s.snake.Direction()))
		if i%20 == 19 {
			s.Steer(types.Down)
		} else if i%20 == 0 {
			s.Steer(types.Right)
		}
		now += 100 * time.Millisecond
		snap := s.Tick(now)
		require.Equal(t, StateRunning, snap.State, "tick %d", i)
		for _, c := range snap.Snake {
			require.NotEqual(t, c, snap.Food)
		}
	}
}

func TestSessionInvincibleThroughObstacle(t *testing.T) {
	s, _ := newTestSession(t, 17, false)
	obstacles := s.obstacles.Cells()
	require.NotEmpty(t, obstacles)

	target := obstacles[0]
	s.snake.Place(types.DefaultGrid.Wrap(target, types.Left), types.Right)
	s.food.Place(types.DefaultGrid.Wrap(target, types.Up))
	s.snake.ApplyPowerUp(entity.PowerUpInvincible, 0)

	snap := s.Tick(time.Second)
	assert.Equal(t, StateRunning, snap.State)
	assert.Equal(t, target, snap.Snake[0])
	assert.Equal(t, obstacles, snap.Obstacles)
	assert.True(t, snap.Invincible)
}

func TestSessionCrash(t *testing.T) {
	s, store := newTestSession(t, 19, false)
	obstacles := s.obstacles.Cells()
	target := obstacles[0]
	s.snake.Place(types.DefaultGrid.Wrap(target, types.Left), types.Right)
	s.food.Place(types.DefaultGrid.Wrap(target, types.Up))
	s.snake.AddPoints(3)

	snap := s.Tick(time.Second)
	require.Equal(t, StateGameOver, snap.State)
	assert.True(t, snap.Has(EventCrash))
	assert.True(t, snap.Has(EventNewHighScore))
	assert.True(t, snap.NewHighScore)
	assert.Equal(t, 3, snap.HighScore)

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, saved[types.Medium])

	// Halted until restart.
	again := s.Tick(2 * time.Second)
	assert.Equal(t, StateGameOver, again.State)
	assert.Empty(t, again.Events)

	require.True(t, s.Start(3*time.Second))
	snap = s.Snapshot()
	assert.Equal(t, StateRunning, snap.State)
	assert.Equal(t, 0, snap.Score)
	assert.False(t, snap.NewHighScore)
	assert.Equal(t, 3, snap.HighScore)
}

func TestSessionCrashWithoutRecord(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Save(map[types.Difficulty]int{types.Medium: 10}))
	s := NewSession(Config{Rand: types.NewRand(23), Store: store})
	require.True(t, s.Start(0))

	target := s.obstacles.Cells()[0]
	s.snake.Place(types.DefaultGrid.Wrap(target, types.Left), types.Right)
	s.snake.AddPoints(4)

	snap := s.Tick(time.Second)
	require.Equal(t, StateGameOver, snap.State)
	assert.False(t, snap.Has(EventNewHighScore))
	assert.Equal(t, 10, snap.HighScore)
}

func TestSessionPowerUpLifecycle(t *testing.T) {
	s, _ := newTestSession(t, 29, false)
	placeSnake(s)

	now := time.Duration(0)
	tick := func() Snapshot {
		now += 500 * time.Millisecond
		// Keep the snake alive while it wanders.
		s.snake.ApplyPowerUp(entity.PowerUpInvincible, now)
		return s.Tick(now)
	}

	var snap Snapshot
	for now < manager.PowerUpSpawnInterval-500*time.Millisecond {
		snap = tick()
		require.Nil(t, snap.PowerUp)
	}
	snap = tick()
	require.True(t, snap.Has(EventPowerUpSpawned))
	require.NotNil(t, snap.PowerUp)
	pickup := *snap.PowerUp

	// Pickup waits far beyond its effect duration.
	for i := 0; i < 100; i++ {
		snap = tick()
		require.False(t, snap.Has(EventPowerUpSpawned))
		if snap.Has(EventPowerUp) {
			break
		}
		require.NotNil(t, snap.PowerUp)
		assert.Equal(t, pickup.Position, snap.PowerUp.Position)
	}

	// Steer onto the pickup by placing the snake next to it.
	if snap.PowerUp != nil {
		s.snake.Place(types.DefaultGrid.Wrap(pickup.Position, types.Left), types.Right)
		s.food.Place(types.DefaultGrid.Wrap(pickup.Position, types.Down))
		snap = tick()
	}
	require.True(t, snap.Has(EventPowerUp))
	assert.Nil(t, snap.PowerUp)
	assert.True(t, s.snake.HasEffect(pickup.Kind))
}

func TestSessionTickInterval(t *testing.T) {
	s, _ := newTestSession(t, 31, false)
	placeSnake(s)
	base := types.Medium.BaseInterval()
	assert.Equal(t, base, s.TickInterval())

	s.snake.ApplyPowerUp(entity.PowerUpSpeed, 0)
	assert.Equal(t, time.Duration(float64(base)/entity.SpeedMultiplier), s.TickInterval())
	assert.Less(t, s.TickInterval(), base)

	s.Tick(entity.EffectDuration)
	assert.Equal(t, base, s.TickInterval())
}

func TestSessionClassicVariant(t *testing.T) {
	s, _ := newTestSession(t, 37, true)
	snap := s.Snapshot()
	assert.Empty(t, snap.Obstacles)

	placeSnake(s)
	now := time.Duration(0)
	for i := 0; i < 100; i++ {
		now += time.Second
		snap = s.Tick(now)
		require.Equal(t, StateRunning, snap.State)
		assert.Nil(t, snap.PowerUp)
		assert.False(t, snap.Has(EventPowerUpSpawned))
	}
}

func TestSessionDeterminism(t *testing.T) {
	a, _ := newTestSession(t, 12345, false)
	b, _ := newTestSession(t, 12345, false)

	turns := map[int]types.Direction{7: types.Up, 15: types.Left, 22: types.Down, 40: types.Right}
	now := time.Duration(0)
	for i := 0; i < 60; i++ {
		if d, ok := turns[i]; ok {
			a.Steer(d)
			b.Steer(d)
		}
		now += 250 * time.Millisecond
		sa := a.Tick(now)
		sb := b.Tick(now)

		sa.SessionID, sb.SessionID = "", ""
		require.Equal(t, sa, sb, "tick %d", i)
	}
}

func TestSessionHighScoreAccess(t *testing.T) {
	s, store := newTestSession(t, 41, false)

	assert.True(t, s.IsNewHighScore(types.Easy, 1))
	assert.True(t, s.CommitHighScore(types.Easy, 6))
	assert.False(t, s.IsNewHighScore(types.Easy, 6))
	assert.False(t, s.CommitHighScore(types.Easy, 2))

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 6, saved[types.Easy])
	assert.Equal(t, 6, s.Snapshot().HighScores[types.Easy])
}
