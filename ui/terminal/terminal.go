// Package terminal is a tcell frontend for playing in a text console.
package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/spidervirus/Snake-Game/game"
	"github.com/spidervirus/Snake-Game/game/entity"
	"github.com/spidervirus/Snake-Game/game/types"
	"github.com/spidervirus/Snake-Game/ui"
)

const (
	frameInterval = 16 * time.Millisecond
	// Each grid cell is two columns wide so the board looks square.
	cellWidth = 2
	// Rows above the board for the score line.
	hudRows = 1
)

var (
	styleDefault   = tcell.StyleDefault
	styleBorder    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSnake     = tcell.StyleDefault.Background(tcell.NewRGBColor(24, 178, 24))
	styleHead      = tcell.StyleDefault.Background(tcell.ColorLime).Foreground(tcell.ColorBlack)
	styleGolden    = tcell.StyleDefault.Background(tcell.ColorGold)
	styleFood      = tcell.StyleDefault.Background(tcell.NewRGBColor(178, 24, 24))
	styleObstacle  = tcell.StyleDefault.Background(tcell.ColorGray)
	styleTitle     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleSelected  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleGameOver  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHighScore = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Frontend draws the game with tcell. Input is read by a goroutine blocked
// in PollEvent and drained without blocking by Poll.
type Frontend struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	ticker *time.Ticker
}

// New returns a frontend that opens the real terminal on Init.
func New() *Frontend {
	return &Frontend{}
}

// NewWithScreen uses screen instead of the real terminal.
func NewWithScreen(screen tcell.Screen) *Frontend {
	return &Frontend{screen: screen}
}

func (f *Frontend) Init() error {
	if f.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "creating terminal screen")
		}
		f.screen = screen
	}
	if err := f.screen.Init(); err != nil {
		return errors.Wrap(err, "initializing terminal screen")
	}
	f.screen.HideCursor()
	f.screen.Clear()

	f.events = make(chan tcell.Event, 100)
	f.quit = make(chan struct{})
	f.ticker = time.NewTicker(frameInterval)

	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case f.events <- ev:
			case <-f.quit:
				return
			}
		}
	}()
	return nil
}

func (f *Frontend) Close() {
	if f.ticker != nil {
		f.ticker.Stop()
	}
	if f.quit != nil {
		close(f.quit)
		f.quit = nil
	}
	if f.screen != nil {
		f.screen.Fini()
	}
}

func (f *Frontend) Wait() {
	<-f.ticker.C
}

func (f *Frontend) Poll() []ui.Intent {
	var intents []ui.Intent
	for {
		select {
		case ev := <-f.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if in := keyIntent(ev); in != ui.IntentNone {
					intents = append(intents, in)
				}
			case *tcell.EventResize:
				f.screen.Sync()
			}
		default:
			return intents
		}
	}
}

func keyIntent(ev *tcell.EventKey) ui.Intent {
	switch ev.Key() {
	case tcell.KeyUp:
		return ui.IntentUp
	case tcell.KeyDown:
		return ui.IntentDown
	case tcell.KeyLeft:
		return ui.IntentLeft
	case tcell.KeyRight:
		return ui.IntentRight
	case tcell.KeyEnter:
		return ui.IntentConfirm
	case tcell.KeyEscape:
		return ui.IntentBack
	case tcell.KeyCtrlC:
		return ui.IntentQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'p', 'P', ' ':
			return ui.IntentPause
		case 'q', 'Q':
			return ui.IntentBack
		case 'w', 'k':
			return ui.IntentUp
		case 's', 'j':
			return ui.IntentDown
		case 'a', 'h':
			return ui.IntentLeft
		case 'd', 'l':
			return ui.IntentRight
		}
	}
	return ui.IntentNone
}

func (f *Frontend) Draw(snap game.Snapshot) {
	f.screen.Clear()
	if snap.State == game.StateMenu {
		f.drawMenu(snap)
	} else {
		f.drawBoard(snap)
		f.drawHUD(snap)
		f.drawOverlay(snap)
	}
	f.screen.Show()
}

func (f *Frontend) drawMenu(snap game.Snapshot) {
	f.drawCentered(2, "Snake Game", styleTitle)
	for i, d := range types.Difficulties {
		style := styleDefault
		label := fmt.Sprintf("  %s (High Score: %d)  ", d, snap.HighScores[d])
		if d == snap.Difficulty {
			style = styleSelected
			label = fmt.Sprintf("> %s (High Score: %d) <", d, snap.HighScores[d])
		}
		f.drawCentered(5+2*i, label, style)
	}
	f.drawCentered(5+2*len(types.Difficulties)+1, "ENTER start, arrows select difficulty, Q quit", styleDefault)
}

func (f *Frontend) drawBoard(snap game.Snapshot) {
	w, h := snap.Grid.Width*cellWidth, snap.Grid.Height
	top := hudRows

	for x := 0; x < w+2; x++ {
		f.screen.SetContent(x, top, '─', nil, styleBorder)
		f.screen.SetContent(x, top+h+1, '─', nil, styleBorder)
	}
	for y := 0; y < h+2; y++ {
		f.screen.SetContent(0, top+y, '│', nil, styleBorder)
		f.screen.SetContent(w+1, top+y, '│', nil, styleBorder)
	}
	f.screen.SetContent(0, top, '┌', nil, styleBorder)
	f.screen.SetContent(w+1, top, '┐', nil, styleBorder)
	f.screen.SetContent(0, top+h+1, '└', nil, styleBorder)
	f.screen.SetContent(w+1, top+h+1, '┘', nil, styleBorder)

	for _, o := range snap.Obstacles {
		f.fillCell(o, ' ', styleObstacle)
	}
	f.fillCell(snap.Food, ' ', styleFood)
	if p := snap.PowerUp; p != nil {
		f.fillCell(p.Position, powerUpRune(p.Kind), tcell.StyleDefault.Foreground(powerUpColor(p.Kind)).Bold(true))
	}

	body := styleSnake
	if snap.Invincible {
		body = styleGolden
	}
	for i := len(snap.Snake) - 1; i > 0; i-- {
		f.fillCell(snap.Snake[i], ' ', body)
	}
	if len(snap.Snake) > 0 {
		f.fillCell(snap.Snake[0], headRune(snap.Direction), styleHead)
	}
}

func (f *Frontend) drawHUD(snap game.Snapshot) {
	line := fmt.Sprintf("Score: %d   %s high: %d", snap.Score, snap.Difficulty, snap.HighScore)
	for _, e := range snap.Effects {
		line += fmt.Sprintf("   %s %.1fs", e.Kind, e.Remaining.Seconds())
	}
	f.drawString(0, 0, line, styleDefault)
}

func (f *Frontend) drawOverlay(snap game.Snapshot) {
	mid := hudRows + snap.Grid.Height/2
	switch snap.State {
	case game.StatePaused:
		f.drawCentered(mid, " PAUSED ", styleSelected)
	case game.StateGameOver:
		f.drawCentered(mid-2, " Game Over! ", styleGameOver)
		if snap.NewHighScore {
			f.drawCentered(mid, " New High Score! ", styleHighScore)
		}
		f.drawCentered(mid+2, " ENTER play again, ESC menu ", styleDefault)
	}
}

// fillCell paints both columns of a grid cell, r in the first.
func (f *Frontend) fillCell(p types.Point, r rune, style tcell.Style) {
	x := 1 + p.X*cellWidth
	y := hudRows + 1 + p.Y
	f.screen.SetContent(x, y, r, nil, style)
	f.screen.SetContent(x+1, y, ' ', nil, style)
}

func (f *Frontend) drawString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		f.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (f *Frontend) drawCentered(y int, s string, style tcell.Style) {
	w, _ := f.screen.Size()
	x := (w - len([]rune(s))) / 2
	if x < 0 {
		x = 0
	}
	f.drawString(x, y, s, style)
}

func headRune(d types.Direction) rune {
	switch d {
	case types.Up:
		return '^'
	case types.Down:
		return 'v'
	case types.Left:
		return '<'
	}
	return '>'
}

func powerUpRune(k entity.PowerUpKind) rune {
	switch k {
	case entity.PowerUpSpeed:
		return 'S'
	case entity.PowerUpInvincible:
		return 'I'
	case entity.PowerUpDoublePoints:
		return 'D'
	}
	return '?'
}

func powerUpColor(k entity.PowerUpKind) tcell.Color {
	switch k {
	case entity.PowerUpSpeed:
		return tcell.ColorDeepSkyBlue
	case entity.PowerUpInvincible:
		return tcell.ColorGold
	case entity.PowerUpDoublePoints:
		return tcell.ColorFuchsia
	}
	return tcell.ColorWhite
}
