package storage

import (
	"path/filepath"
	"sync"
)

// CommandRepo persiste los comandos custom (!nombre -> respuesta) en
// data/custom_commands.json. Redefinir pisa; no hay delete.
type CommandRepo struct {
	mu   sync.Mutex
	path string
}

func NewCommandRepo(st *Store) *CommandRepo {
	return &CommandRepo{path: filepath.Join(st.dataDir, "custom_commands.json")}
}

func (r *CommandRepo) All() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *CommandRepo) Get(name string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	text, ok := r.load()[name]
	return text, ok
}

func (r *CommandRepo) Set(name, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cmds := r.load()
	cmds[name] = text
	return saveJSON(r.path, cmds)
}

func (r *CommandRepo) load() map[string]string {
	cmds := map[string]string{}
	loadJSON(r.path, &cmds)
	return cmds
}
