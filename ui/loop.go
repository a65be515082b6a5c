package ui

import (
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/spidervirus/Snake-Game/game"
	"github.com/spidervirus/Snake-Game/game/types"
)

// Frontend draws snapshots and turns device input into intents.
type Frontend interface {
	Init() error
	Close()
	// Poll returns the intents gathered since the last call without blocking.
	Poll() []Intent
	Draw(snap game.Snapshot)
	// Wait paces the loop to the frontend's frame rate.
	Wait()
}

// EventHandler reacts to the events of a tick, e.g. with sound.
type EventHandler interface {
	Handle(events []game.Event)
}

// Loop drives a session from a frontend's intents, one frame per Step.
type Loop struct {
	fe       Frontend
	session  *game.Session
	clock    *game.Clock
	handlers []EventHandler
	lastTick time.Duration
}

func NewLoop(fe Frontend, session *game.Session, clock *game.Clock, handlers ...EventHandler) *Loop {
	if clock == nil {
		clock = game.NewClock()
	}
	return &Loop{
		fe:       fe,
		session:  session,
		clock:    clock,
		handlers: handlers,
	}
}

// Run initialises fe and plays until the player quits.
func Run(fe Frontend, session *game.Session, clock *game.Clock, handlers ...EventHandler) error {
	if err := fe.Init(); err != nil {
		return errors.Wrap(err, "initializing frontend")
	}
	defer fe.Close()

	l := NewLoop(fe, session, clock, handlers...)
	for l.Step() {
	}
	log.Printf("[UI] [INFO] quit from %s", session.State())
	return nil
}

// Step handles pending input, ticks the session when its interval has
// elapsed in game time, and draws one frame. It reports false on quit.
func (l *Loop) Step() bool {
	for _, in := range l.fe.Poll() {
		if !l.handle(in) {
			return false
		}
	}

	snap := l.session.Snapshot()
	if l.session.State() == game.StateRunning {
		now := l.clock.Now()
		if now-l.lastTick >= l.session.TickInterval() {
			l.lastTick = now
			snap = l.session.Tick(now)
			for _, h := range l.handlers {
				h.Handle(snap.Events)
			}
		}
	}

	l.fe.Draw(snap)
	l.fe.Wait()
	return true
}

func (l *Loop) handle(in Intent) bool {
	if in == IntentQuit {
		return false
	}

	switch l.session.State() {
	case game.StateMenu:
		switch in {
		case IntentUp:
			l.session.SelectDifficulty(l.session.Difficulty().Prev())
		case IntentDown:
			l.session.SelectDifficulty(l.session.Difficulty().Next())
		case IntentConfirm:
			l.start()
		case IntentBack:
			return false
		}

	case game.StateRunning, game.StatePaused:
		switch in {
		case IntentUp:
			l.session.Steer(types.Up)
		case IntentDown:
			l.session.Steer(types.Down)
		case IntentLeft:
			l.session.Steer(types.Left)
		case IntentRight:
			l.session.Steer(types.Right)
		case IntentPause:
			if l.session.TogglePause() == game.StatePaused {
				l.clock.Pause()
			} else {
				l.clock.Resume()
			}
		case IntentBack:
			l.clock.Resume()
			l.session.ToMenu()
		}

	case game.StateGameOver:
		switch in {
		case IntentConfirm:
			l.start()
		case IntentBack:
			l.session.ToMenu()
		}
	}
	return true
}

func (l *Loop) start() {
	l.clock.Reset()
	l.lastTick = 0
	l.session.Start(l.clock.Now())
}
