package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

type ScoreEntry struct {
	UserID string
	Points int
}

// ScoreRepo persiste user_id -> puntos en data/scores.json.
// Mantiene el orden de inserción del archivo (igual que un dict): el
// leaderboard desempata por ese orden.
type ScoreRepo struct {
	mu   sync.Mutex
	path string
}

func NewScoreRepo(st *Store) *ScoreRepo {
	return &ScoreRepo{path: filepath.Join(st.dataDir, "scores.json")}
}

func (r *ScoreRepo) All() []ScoreEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Add suma points al usuario, creándolo en cero si no existía.
func (r *ScoreRepo) Add(userID string, points int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.load()
	found := false
	for i := range entries {
		if entries[i].UserID == userID {
			entries[i].Points += points
			found = true
			break
		}
	}
	if !found {
		entries = append(entries, ScoreEntry{UserID: userID, Points: points})
	}
	return saveJSON(r.path, scoreObject(entries))
}

// load decodifica el objeto JSON token a token para conservar el orden de
// las claves (json.Unmarshal a un map lo perdería).
func (r *ScoreRepo) load() []ScoreEntry {
	b, err := os.ReadFile(r.path)
	if err != nil {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil
	}
	var entries []ScoreEntry
	for dec.More() {
		kTok, err := dec.Token()
		if err != nil {
			return nil
		}
		key, ok := kTok.(string)
		if !ok {
			return nil
		}
		var pts int
		if err := dec.Decode(&pts); err != nil {
			return nil
		}
		entries = append(entries, ScoreEntry{UserID: key, Points: pts})
	}
	return entries
}

// scoreObject serializa como objeto JSON respetando el orden de entries.
type scoreObject []ScoreEntry

func (s scoreObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.UserID)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(e.Points)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
