package chat

import (
	"sync"
	"time"
)

// Verdict es el resultado de pasar un comando por el limiter.
type Verdict int

const (
	// Admit: el comando pasa.
	Admit Verdict = iota
	// Blocked: el sender sigue bloqueado; el comando se descarta sin aviso.
	Blocked
	// NewlyBlocked: este comando disparó el bloqueo; hay que avisarle al
	// sender y NO despachar el comando.
	NewlyBlocked
)

const (
	rateWindow    = 60 * time.Second
	rateThreshold = 7
	blockDuration = 3 * time.Hour
)

// Limiter cuenta comandos por sender en una ventana deslizante de 60s y
// bloquea 3 horas al que pase de 7. Todo lazy: la ventana se recalcula en
// cada comando del sender, no hay timer de fondo.
type Limiter struct {
	mu      sync.Mutex
	stamps  map[string][]time.Time
	blocked map[string]time.Time // sender -> vencimiento del bloqueo
}

func NewLimiter() *Limiter {
	return &Limiter{
		stamps:  map[string][]time.Time{},
		blocked: map[string]time.Time{},
	}
}

// Admit pasa un comando por el limiter. unblocked=true cuando este comando
// encontró un bloqueo ya vencido y lo levantó (para avisar por consola).
func (l *Limiter) Admit(senderID string, now time.Time) (v Verdict, unblocked bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if until, ok := l.blocked[senderID]; ok {
		if now.Before(until) {
			return Blocked, false
		}
		// venció: lo sacamos recién ahora, al próximo comando
		delete(l.blocked, senderID)
		unblocked = true
	}

	cutoff := now.Add(-rateWindow)
	var fresh []time.Time
	for _, ts := range l.stamps[senderID] {
		if ts.After(cutoff) {
			fresh = append(fresh, ts)
		}
	}
	fresh = append(fresh, now)

	if len(fresh) > rateThreshold {
		l.blocked[senderID] = now.Add(blockDuration)
		// limpiamos la ventana para que no re-bloquee al salir
		delete(l.stamps, senderID)
		return NewlyBlocked, unblocked
	}

	l.stamps[senderID] = fresh
	return Admit, unblocked
}
