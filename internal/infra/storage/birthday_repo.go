package storage

import (
	"path/filepath"
	"sync"
)

// BirthdayRepo persiste user_id -> "dd-mm" en data/birthdays.json.
// Un cumple por usuario; re-setear pisa el anterior.
type BirthdayRepo struct {
	mu   sync.Mutex
	path string
}

func NewBirthdayRepo(st *Store) *BirthdayRepo {
	return &BirthdayRepo{path: filepath.Join(st.dataDir, "birthdays.json")}
}

func (r *BirthdayRepo) All() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *BirthdayRepo) Set(userID, ddmm string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	bdays := r.load()
	bdays[userID] = ddmm
	return saveJSON(r.path, bdays)
}

func (r *BirthdayRepo) load() map[string]string {
	bdays := map[string]string{}
	loadJSON(r.path, &bdays)
	return bdays
}
