package chat

import (
	"context"
	"sync"
	"time"
)

const (
	dedupTTL           = 24 * time.Hour
	dedupCleanInterval = time.Hour
)

// seenStore deduplica mensajes ya procesados del feed. Entradas viejas se
// barren por TTL para que el set no crezca de por vida.
type seenStore struct {
	m sync.Map // message id -> unix timestamp
}

func newSeenStore() *seenStore {
	return &seenStore{}
}

// markSeen devuelve true si es la primera vez que vemos este id. Re-ver un
// id renueva su timestamp: mientras siga apareciendo en la ventana de poll
// no puede vencer por TTL (si venciera, se re-despacharía).
func (d *seenStore) markSeen(id string) bool {
	now := time.Now().Unix()
	_, loaded := d.m.LoadOrStore(id, now)
	if loaded {
		d.m.Store(id, now)
	}
	return !loaded
}

func (d *seenStore) cleaner(ctx context.Context) {
	ticker := time.NewTicker(dedupCleanInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.sweep(time.Now().Add(-dedupTTL).Unix())
		}
	}
}

func (d *seenStore) sweep(cutoff int64) {
	d.m.Range(func(key, value any) bool {
		if ts, ok := value.(int64); ok && ts < cutoff {
			d.m.Delete(key)
		}
		return true
	})
}
