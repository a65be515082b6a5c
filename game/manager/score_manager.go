package manager

import (
	"log"

	"github.com/spidervirus/Snake-Game/game/types"
)

// HighScoreStore persists the best score per difficulty. Implementations
// return whatever entries they could read alongside any error.
type HighScoreStore interface {
	Load() (map[types.Difficulty]int, error)
	Save(scores map[types.Difficulty]int) error
}

// ScoreManager holds the best score for each difficulty.
type ScoreManager struct {
	store      HighScoreStore
	highScores map[types.Difficulty]int
}

// NewScoreManager loads the table from store. Unreadable or malformed data
// counts as no prior record.
func NewScoreManager(store HighScoreStore) *ScoreManager {
	sm := &ScoreManager{
		store:      store,
		highScores: make(map[types.Difficulty]int, len(types.Difficulties)),
	}
	for _, d := range types.Difficulties {
		sm.highScores[d] = 0
	}
	if store == nil {
		return sm
	}

	loaded, err := store.Load()
	if err != nil {
		log.Printf("[SCORE] [WARN] high scores unreadable, starting from zero: %v", err)
	}
	for d, score := range loaded {
		if d.Valid() && score > 0 {
			sm.highScores[d] = score
		}
	}
	return sm
}

// IsNewHighScore reports whether score beats the stored record.
func (sm *ScoreManager) IsNewHighScore(d types.Difficulty, score int) bool {
	return score > sm.highScores[d]
}

// CommitHighScore records score when it beats the stored value and writes
// the table through the store. It reports whether the record changed.
func (sm *ScoreManager) CommitHighScore(d types.Difficulty, score int) bool {
	if !d.Valid() || !sm.IsNewHighScore(d, score) {
		return false
	}
	sm.highScores[d] = score

	if sm.store != nil {
		if err := sm.store.Save(sm.HighScores()); err != nil {
			log.Printf("[SCORE] [ERROR] saving high scores: %v", err)
		}
	}
	return true
}

func (sm *ScoreManager) GetHighScore(d types.Difficulty) int {
	return sm.highScores[d]
}

// HighScores returns a copy of the table.
func (sm *ScoreManager) HighScores() map[types.Difficulty]int {
	out := make(map[types.Difficulty]int, len(sm.highScores))
	for d, s := range sm.highScores {
		out[d] = s
	}
	return out
}
