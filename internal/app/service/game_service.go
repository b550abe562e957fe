package service

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
)

// round es la trivia abierta: a lo sumo una por proceso.
type round struct {
	answer string // label correcto, en minúsculas
	asker  string
}

// GameService maneja el ciclo de la trivia: arrancar ronda, evaluar
// respuestas y saltear. El estado compartido va detrás del mutex porque el
// poll loop y la consola conviven en goroutines distintas.
type GameService struct {
	mu     sync.Mutex
	store  ContentStore
	scores ScoreStore
	picker *PickerService
	active *round
}

func NewGameService(store ContentStore, scores ScoreStore, picker *PickerService) *GameService {
	return &GameService{store: store, scores: scores, picker: picker}
}

// StartTrivia abre una ronda nueva. Si había una sin responder, la pisa en
// silencio: comportamiento heredado del bot original.
func (s *GameService) StartTrivia(senderID, username string) string {
	q, reset, ok := s.picker.PickQuestion("trivia", s.store.LoadQuestions("trivia"))
	if !ok {
		return "🚫 No trivia questions found!"
	}

	s.mu.Lock()
	s.active = &round{answer: strings.ToLower(q.Answer), asker: senderID}
	s.mu.Unlock()

	labels := make([]string, 0, len(q.Options))
	for k := range q.Options {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	lines := make([]string, 0, len(labels))
	for _, k := range labels {
		lines = append(lines, fmt.Sprintf("*%s:* %s", strings.ToUpper(k), q.Options[k]))
	}

	msg := fmt.Sprintf("🧠 Trivia for @%s: 🧠\n\n*%s*\n\n%s\n\nReply with `!answer <A/B/C/D>`",
		username, q.Question, strings.Join(lines, "\n"))
	return withReset(msg, reset)
}

// Answer evalúa la respuesta contra la ronda abierta. Acierta quien sea, no
// solo quien pidió la trivia; el punto va para el que respondió.
func (s *GameService) Answer(senderID, username string, args []string) string {
	guess := strings.ToLower(strings.Join(args, " "))

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return "❓ No active trivia question!"
	}
	if guess != s.active.answer {
		return fmt.Sprintf("❌ That's not the right option, @%s! Guess again.", username)
	}

	correct := s.active.answer
	s.active = nil
	if err := s.scores.Add(senderID, 1); err != nil {
		log.Printf("no pude guardar el score de %s: %v", senderID, err)
	}
	return fmt.Sprintf("✅ Correct, @%s! The answer was *%s*. (+1 point!)", username, strings.ToUpper(correct))
}

// Skip cierra la ronda abierta revelando la respuesta.
func (s *GameService) Skip() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return "🤷‍♀️ There's no active game to skip!"
	}
	correct := s.active.answer
	s.active = nil
	return fmt.Sprintf("😕 The trivia has been skipped! The correct option was *%s*.", strings.ToUpper(correct))
}

// Active dice si hay ronda abierta (para tests y debug).
func (s *GameService) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active != nil
}
