package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/linxfaizan/ig-chatbot/internal/domain"
)

// Store maneja los archivos planos del bot: listas de contenido en listsDir
// y los mapas JSON persistidos (scores, birthdays, custom commands) en dataDir.
// Todo es last-write-wins, sin locking de archivos.
type Store struct {
	listsDir string
	dataDir  string
}

func New(listsDir, dataDir string) (*Store, error) {
	if err := os.MkdirAll(listsDir, 0o755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &Store{listsDir: listsDir, dataDir: dataDir}, nil
}

// LoadList lee <listsDir>/<name>.txt, una entrada por línea no vacía.
// Archivo inexistente => lista vacía, no es error.
func (st *Store) LoadList(name string) []string {
	b, err := os.ReadFile(filepath.Join(st.listsDir, name+".txt"))
	if err != nil {
		return nil
	}
	var items []string
	for _, line := range strings.Split(string(b), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			items = append(items, line)
		}
	}
	return items
}

// LoadQuestions lee <listsDir>/<name>.json como set de preguntas de trivia.
func (st *Store) LoadQuestions(name string) []domain.Question {
	var qs []domain.Question
	loadJSON(filepath.Join(st.listsDir, name+".json"), &qs)
	return qs
}

type FileDetail struct {
	Name  string
	Items int
}

// ListFiles devuelve cada archivo de contenido con su cantidad de items.
func (st *Store) ListFiles() []FileDetail {
	entries, err := os.ReadDir(st.listsDir)
	if err != nil {
		return nil
	}
	var out []FileDetail
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".txt"):
			items := st.LoadList(strings.TrimSuffix(name, ".txt"))
			out = append(out, FileDetail{Name: name, Items: len(items)})
		case strings.HasSuffix(name, ".json"):
			var raw []json.RawMessage
			loadJSON(filepath.Join(st.listsDir, name), &raw)
			out = append(out, FileDetail{Name: name, Items: len(raw)})
		}
	}
	return out
}

// loadJSON decodifica filepath en out. JSON corrupto o inexistente deja el
// valor default: el contenido malformado se pierde en el próximo save.
func loadJSON(path string, out any) {
	b, err := os.ReadFile(path)
	if err != nil {
		return
	}
	_ = json.Unmarshal(b, out)
}

// saveJSON escribe pretty-printed (indent 4), como el bot siempre lo hizo.
func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
