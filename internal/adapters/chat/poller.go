package chat

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/linxfaizan/ig-chatbot/internal/domain"
)

// Lo implementa internal/adapters/insta.Client
type ThreadAPI interface {
	DirectThread(ctx context.Context, threadID string, limit int) ([]domain.Message, error)
	DirectSend(ctx context.Context, threadID, text string) error
}

const (
	initialHistory = 20 // mensajes viejos a ignorar en el arranque
	pollWindow     = 5  // ventana chica por iteración
	idleDelay      = 1 * time.Second
	backoffFloor   = 60 * time.Second
	backoffCap     = 600 * time.Second
)

// Poller es el loop de fondo: trae los últimos mensajes del hilo, descarta
// los ya vistos, pasa los comandos por el limiter y el router, y manda la
// respuesta de vuelta al grupo.
type Poller struct {
	api      ThreadAPI
	threadID string
	router   *Router
	limiter  *Limiter
	names    *UserCache
	seen     *seenStore
	console  *Console
}

func NewPoller(api ThreadAPI, threadID string, router *Router, limiter *Limiter, names *UserCache, console *Console) *Poller {
	return &Poller{
		api:      api,
		threadID: threadID,
		router:   router,
		limiter:  limiter,
		names:    names,
		seen:     newSeenStore(),
		console:  console,
	}
}

// Run bloquea hasta que ctx se cancele. Primero marca como vistos los
// mensajes que ya estaban en el hilo (para no replayar historia tras un
// restart) y después entra al loop de polling.
func (p *Poller) Run(ctx context.Context) error {
	history, err := p.api.DirectThread(ctx, p.threadID, initialHistory)
	if err != nil {
		return fmt.Errorf("fetch inicial del hilo: %w", err)
	}
	for _, m := range history {
		p.seen.markSeen(m.ID)
	}
	log.Printf("ignorando %d mensajes pre-existentes", len(history))

	go p.seen.cleaner(ctx)

	backoff := backoffFloor
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		msgs, err := p.api.DirectThread(ctx, p.threadID, pollWindow)
		if err != nil {
			log.Printf("error escuchando el hilo: %v", err)
			log.Printf("esperando %s antes de reintentar...", backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			backoff = min(backoff*2, backoffCap)
			continue
		}

		if len(msgs) == 0 {
			if !sleep(ctx, idleDelay) {
				return ctx.Err()
			}
			continue
		}

		// la API devuelve del más nuevo al más viejo; procesamos al revés
		ok := true
		for i := len(msgs) - 1; i >= 0; i-- {
			if !p.process(ctx, msgs[i]) {
				ok = false
				break
			}
		}
		if !ok {
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			backoff = min(backoff*2, backoffCap)
			continue
		}

		backoff = backoffFloor
		if !sleep(ctx, idleDelay) {
			return ctx.Err()
		}
	}
}

// process maneja un mensaje; false si un send falló y toca backoff.
func (p *Poller) process(ctx context.Context, m domain.Message) bool {
	if !p.seen.markSeen(m.ID) {
		return true
	}
	if !m.IsText() {
		return true
	}

	username := p.names.Resolve(ctx, m.SenderID)
	p.console.Incoming(username, m.Text)

	if !strings.HasPrefix(m.Text, "!") {
		return true
	}

	verdict, unblocked := p.limiter.Admit(m.SenderID, time.Now())
	if unblocked {
		p.console.Success(fmt.Sprintf("User @%s is now unblocked.", username))
	}
	switch verdict {
	case Blocked:
		p.console.Warn(fmt.Sprintf("Ignoring command from blocked user: @%s", username))
		return true
	case NewlyBlocked:
		p.console.Fail(fmt.Sprintf("Blocking user @%s for 3 hours.", username))
		notice := fmt.Sprintf("@%s You are sending commands too fast! You have been blocked for 3 hours.", username)
		if err := p.api.DirectSend(ctx, p.threadID, notice); err != nil {
			log.Printf("no pude avisar el bloqueo: %v", err)
			return false
		}
		return true
	}

	parts := strings.Fields(m.Text)
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	reply := p.router.HandleCommand(ctx, m.SenderID, cmd, args)
	if reply == "" {
		return true
	}
	if err := p.api.DirectSend(ctx, p.threadID, reply); err != nil {
		log.Printf("error mandando respuesta: %v", err)
		return false
	}
	p.console.Outgoing(reply)
	return true
}

func sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
