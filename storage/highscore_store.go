// Package storage persists the best score per difficulty.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/spidervirus/Snake-Game/game/types"
)

// DefaultHighScoreFile is used when no path is configured.
const DefaultHighScoreFile = "high_scores.json"

// JSONStore keeps the table as {"Easy": n, "Medium": n, "Hard": n}.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	if path == "" {
		path = DefaultHighScoreFile
	}
	return &JSONStore{path: path}
}

func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the table. A missing file is an empty table without error.
// Malformed content yields an empty table and an error for the caller to log.
func (s *JSONStore) Load() (map[types.Difficulty]int, error) {
	scores := make(map[types.Difficulty]int, len(types.Difficulties))

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return scores, nil
	}
	if err != nil {
		return scores, errors.Wrapf(err, "reading %s", s.path)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return scores, errors.Wrapf(err, "parsing %s", s.path)
	}

	for name, value := range raw {
		d, err := types.ParseDifficulty(name)
		if err != nil {
			continue
		}
		var score int
		if err := json.Unmarshal(value, &score); err != nil || score < 0 {
			continue
		}
		scores[d] = score
	}
	return scores, nil
}

// Save writes the full table through a temporary file and a rename.
func (s *JSONStore) Save(scores map[types.Difficulty]int) error {
	out := make(map[string]int, len(types.Difficulties))
	for _, d := range types.Difficulties {
		out[d.String()] = scores[d]
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding high scores")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".high_scores-*.json")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "writing %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", tmp.Name())
	}
	return errors.Wrapf(os.Rename(tmp.Name(), s.path), "replacing %s", s.path)
}

// MemoryStore keeps the table in memory, for tests and -no-save runs.
type MemoryStore struct {
	mu     sync.Mutex
	scores map[types.Difficulty]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[types.Difficulty]int)}
}

func (m *MemoryStore) Load() (map[types.Difficulty]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyScores(m.scores), nil
}

func (m *MemoryStore) Save(scores map[types.Difficulty]int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = copyScores(scores)
	return nil
}

func copyScores(in map[types.Difficulty]int) map[types.Difficulty]int {
	out := make(map[types.Difficulty]int, len(in))
	for d, s := range in {
		out[d] = s
	}
	return out
}
