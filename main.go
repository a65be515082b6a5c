package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/spidervirus/Snake-Game/audio"
	"github.com/spidervirus/Snake-Game/config"
	"github.com/spidervirus/Snake-Game/game"
	"github.com/spidervirus/Snake-Game/game/manager"
	"github.com/spidervirus/Snake-Game/game/types"
	"github.com/spidervirus/Snake-Game/storage"
	"github.com/spidervirus/Snake-Game/ui"
	"github.com/spidervirus/Snake-Game/ui/raylib"
	"github.com/spidervirus/Snake-Game/ui/terminal"
)

func main() {
	cfg := config.Load()

	difficulty := flag.String("difficulty", cfg.Difficulty.String(), "Preselected difficulty: Easy, Medium or Hard")
	seed := flag.Uint64("seed", cfg.Seed, "Random seed (0 = from the clock)")
	frontend := flag.String("ui", cfg.UI, "Frontend: raylib or terminal")
	sound := flag.Bool("sound", cfg.Sound, "Play sound effects")
	classic := flag.Bool("classic", cfg.Classic, "Classic game without obstacles or power-ups")
	scoreFile := flag.String("scores", cfg.HighScoreFile, "High score file")
	noSave := flag.Bool("no-save", false, "Keep high scores in memory only")
	logFile := flag.String("log", "", "Write logs to this file")
	flag.Parse()

	d, err := types.ParseDifficulty(*difficulty)
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	uiName, err := config.ParseUI(*frontend)
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	// The terminal frontend owns stdout and stderr while it runs.
	switch {
	case *logFile != "":
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("[APP] [FATAL] opening log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	case uiName == config.UITerminal:
		log.SetOutput(io.Discard)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	var store manager.HighScoreStore = storage.NewJSONStore(*scoreFile)
	if *noSave {
		store = storage.NewMemoryStore()
	}

	session := game.NewSession(game.Config{
		Grid:       types.DefaultGrid,
		Difficulty: d,
		Rand:       types.NewRand(*seed),
		Store:      store,
		Classic:    *classic,
	})
	log.Printf("[APP] [INFO] starting: ui=%s difficulty=%s seed=%d classic=%t", uiName, d, *seed, *classic)

	var handlers []ui.EventHandler
	if *sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("[AUDIO] [WARN] sound disabled: %v", err)
		} else {
			defer sm.Cleanup()
			handlers = append(handlers, sm)
		}
	}

	var fe ui.Frontend
	switch uiName {
	case config.UITerminal:
		fe = terminal.New()
	default:
		fe = raylib.NewRenderer(types.DefaultGrid)
	}

	if err := ui.Run(fe, session, game.NewClock(), handlers...); err != nil {
		log.Printf("[APP] [ERROR] %v", err)
		os.Exit(1)
	}
}
