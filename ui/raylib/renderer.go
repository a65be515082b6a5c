// Package raylib is the desktop frontend drawn with raylib.
package raylib

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"

	"github.com/spidervirus/Snake-Game/game"
	"github.com/spidervirus/Snake-Game/game/entity"
	"github.com/spidervirus/Snake-Game/game/types"
	"github.com/spidervirus/Snake-Game/ui"
)

const (
	cellSize     = 20
	targetFPS    = 60
	windowTitle  = "Snake Game"
	titleFont    = 74
	menuFont     = 36
	hudFont      = 20
	borderMargin = 10
)

// Renderer is the desktop frontend: a raylib window sized to the grid.
type Renderer struct {
	grid         types.Grid
	cellSize     int32
	screenWidth  int32
	screenHeight int32
}

func NewRenderer(grid types.Grid) *Renderer {
	return &Renderer{
		grid:         grid,
		cellSize:     cellSize,
		screenWidth:  int32(grid.Width * cellSize),
		screenHeight: int32(grid.Height * cellSize),
	}
}

func (r *Renderer) Init() error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(r.screenWidth, r.screenHeight, windowTitle)
	if !rl.IsWindowReady() {
		return errors.Errorf("raylib window %dx%d not ready", r.screenWidth, r.screenHeight)
	}
	// Escape is a game key, not the window close key.
	rl.SetExitKey(0)
	rl.SetTargetFPS(targetFPS)
	return nil
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}

// Wait is a no-op: EndDrawing already paces frames to targetFPS.
func (r *Renderer) Wait() {}

func (r *Renderer) Poll() []ui.Intent {
	var intents []ui.Intent
	if rl.WindowShouldClose() {
		return append(intents, ui.IntentQuit)
	}
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			intents = append(intents, b.intent)
		}
	}
	return intents
}

var keyBindings = []struct {
	key    int32
	intent ui.Intent
}{
	{rl.KeyUp, ui.IntentUp},
	{rl.KeyDown, ui.IntentDown},
	{rl.KeyLeft, ui.IntentLeft},
	{rl.KeyRight, ui.IntentRight},
	{rl.KeyP, ui.IntentPause},
	{rl.KeySpace, ui.IntentPause},
	{rl.KeyEnter, ui.IntentConfirm},
	{rl.KeyKpEnter, ui.IntentConfirm},
	{rl.KeyEscape, ui.IntentBack},
	{rl.KeyQ, ui.IntentBack},
}

func (r *Renderer) Draw(snap game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	if snap.State == game.StateMenu {
		r.drawMenu(snap)
		rl.EndDrawing()
		return
	}

	r.drawBoard(snap)
	r.drawHUD(snap)

	switch snap.State {
	case game.StatePaused:
		r.drawCentered("PAUSED", r.screenHeight/2, titleFont, rl.White)
	case game.StateGameOver:
		r.drawCentered("Game Over!", r.screenHeight/2-50, titleFont, rl.Red)
		if snap.NewHighScore {
			r.drawCentered("New High Score!", r.screenHeight/2+50, titleFont, rl.Yellow)
		}
		r.drawCentered("ENTER to play again, ESC for menu", r.screenHeight-60, hudFont, rl.White)
	}
	rl.EndDrawing()
}

func (r *Renderer) drawMenu(snap game.Snapshot) {
	r.drawCentered("Snake Game", 100, titleFont, rl.Green)

	y := int32(250)
	for _, d := range types.Difficulties {
		color := rl.White
		if d == snap.Difficulty {
			color = rl.Yellow
		}
		r.drawCentered(fmt.Sprintf("%s (High Score: %d)", d, snap.HighScores[d]), y, menuFont, color)
		y += 50
	}
	r.drawCentered("Press ENTER to start, Arrow keys to select difficulty", 450, hudFont, rl.White)
}

func (r *Renderer) drawBoard(snap game.Snapshot) {
	for _, o := range snap.Obstacles {
		r.fillCell(o, rl.Gray)
	}

	r.fillCell(snap.Food, rl.Red)

	if p := snap.PowerUp; p != nil {
		x, y := r.cellOrigin(p.Position)
		rl.DrawCircle(x+r.cellSize/2, y+r.cellSize/2, float32(r.cellSize)/2-2, powerUpColor(p.Kind))
	}

	snakeColor := rl.Green
	if snap.Invincible {
		snakeColor = rl.Gold
	}
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		color := snakeColor
		if i == 0 {
			color = rl.Lime
		}
		r.fillCell(snap.Snake[i], color)
	}
	if len(snap.Snake) > 0 {
		r.drawHeadMarker(snap.Snake[0], snap.Direction)
	}
}

// drawHeadMarker points a small triangle along the direction of travel.
func (r *Renderer) drawHeadMarker(head types.Point, dir types.Direction) {
	headX, headY := r.cellOrigin(head)
	half := r.cellSize / 2
	v := func(x, y int32) rl.Vector2 { return rl.Vector2{X: float32(x), Y: float32(y)} }

	switch dir {
	case types.Right:
		rl.DrawTriangle(v(headX+r.cellSize, headY+half), v(headX+half, headY), v(headX+half, headY+r.cellSize), rl.Yellow)
	case types.Left:
		rl.DrawTriangle(v(headX, headY+half), v(headX+half, headY+r.cellSize), v(headX+half, headY), rl.Yellow)
	case types.Down:
		rl.DrawTriangle(v(headX+half, headY+r.cellSize), v(headX+r.cellSize, headY+half), v(headX, headY+half), rl.Yellow)
	default:
		rl.DrawTriangle(v(headX+half, headY), v(headX, headY+half), v(headX+r.cellSize, headY+half), rl.Yellow)
	}
}

func (r *Renderer) drawHUD(snap game.Snapshot) {
	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), borderMargin, borderMargin, menuFont, rl.White)

	hi := fmt.Sprintf("%s  High: %d", snap.Difficulty, snap.HighScore)
	rl.DrawText(hi, r.screenWidth-rl.MeasureText(hi, hudFont)-borderMargin, borderMargin, hudFont, rl.LightGray)

	y := int32(borderMargin + menuFont + 4)
	for _, e := range snap.Effects {
		label := fmt.Sprintf("%s %.1fs", e.Kind, e.Remaining.Seconds())
		rl.DrawText(label, borderMargin, y, hudFont, powerUpColor(e.Kind))
		y += hudFont + 2
	}
}

func (r *Renderer) drawCentered(text string, y, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, (r.screenWidth-w)/2, y, size, color)
}

func (r *Renderer) cellOrigin(p types.Point) (int32, int32) {
	return int32(p.X) * r.cellSize, int32(p.Y) * r.cellSize
}

func (r *Renderer) fillCell(p types.Point, color rl.Color) {
	x, y := r.cellOrigin(p)
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
}

func powerUpColor(k entity.PowerUpKind) rl.Color {
	switch k {
	case entity.PowerUpSpeed:
		return rl.SkyBlue
	case entity.PowerUpInvincible:
		return rl.Gold
	case entity.PowerUpDoublePoints:
		return rl.Magenta
	}
	return rl.White
}
