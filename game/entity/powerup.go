package entity

import (
	"time"
)

// PowerUpKind enumerates the pickups a snake can collect.
type PowerUpKind int

const (
	PowerUpSpeed PowerUpKind = iota
	PowerUpInvincible
	PowerUpDoublePoints

	powerUpKindCount // must stay last
)

// PowerUpKinds lists every kind in declaration order.
var PowerUpKinds = [powerUpKindCount]PowerUpKind{PowerUpSpeed, PowerUpInvincible, PowerUpDoublePoints}

// Effect multipliers
const (
	SpeedMultiplier        = 1.5
	DoublePointsMultiplier = 2
)

// EffectDuration is how long a collected power-up stays active.
const EffectDuration = 5 * time.Second

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeed:
		return "Speed"
	case PowerUpInvincible:
		return "Invincible"
	case PowerUpDoublePoints:
		return "DoublePoints"
	}
	return "Unknown"
}

// Duration returns the effect lifetime of the kind.
func (k PowerUpKind) Duration() time.Duration {
	return EffectDuration
}

// Effect is the timing record of one power-up kind on the snake.
type Effect struct {
	Active   bool
	Start    time.Duration
	Duration time.Duration
}

// Expired reports whether the effect has run its course at now.
func (e Effect) Expired(now time.Duration) bool {
	return now-e.Start >= e.Duration
}

// Remaining returns the time left at now, zero once expired.
func (e Effect) Remaining(now time.Duration) time.Duration {
	if !e.Active || e.Expired(now) {
		return 0
	}
	return e.Start + e.Duration - now
}

// ActiveEffect is the render-facing view of a running effect.
type ActiveEffect struct {
	Kind      PowerUpKind
	Remaining time.Duration
}
