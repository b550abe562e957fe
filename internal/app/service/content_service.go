package service

import (
	"fmt"
	"math/rand"
	"strings"
)

const resetNotice = "(All questions have been used. Starting over!)"

var fortunes = []string{
	"Yes, definitely.",
	"No, certainly not.",
	"Perhaps.",
	"Ask again later.",
}

// ContentService arma las respuestas que salen directo de las listas de
// contenido (truths, dares, nhie) más los comandos sueltos que no tocan
// estado (!8ball, !files).
type ContentService struct {
	store  ContentStore
	picker *PickerService
}

func NewContentService(store ContentStore, picker *PickerService) *ContentService {
	return &ContentService{store: store, picker: picker}
}

func (s *ContentService) Truth(username string) string {
	chosen, reset := s.picker.Pick("truths", s.store.LoadList("truths"))
	if chosen == "" {
		return "🚫 No truths found!"
	}
	return withReset(fmt.Sprintf("🗣️ Truth for @%s:\n\n_%s_", username, chosen), reset)
}

func (s *ContentService) Dare(username string) string {
	chosen, reset := s.picker.Pick("dares", s.store.LoadList("dares"))
	if chosen == "" {
		return "🚫 No dares found!"
	}
	return withReset(fmt.Sprintf("😈 Dare for @%s:\n\n_%s_", username, chosen), reset)
}

func (s *ContentService) NeverHaveIEver(username string) string {
	chosen, reset := s.picker.Pick("nhies", s.store.LoadList("nhie"))
	if chosen == "" {
		return "🚫 No NHIE questions found!"
	}
	return withReset(fmt.Sprintf("🤫 Never Have I Ever, @%s...\n\n_%s_", username, chosen), reset)
}

func (s *ContentService) EightBall(username string) string {
	return fmt.Sprintf("🎱 @%s, the Magic 8-Ball says: *%s*", username, fortunes[rand.Intn(len(fortunes))])
}

func (s *ContentService) Files() string {
	details := s.store.ListFiles()
	lines := make([]string, 0, len(details))
	for _, d := range details {
		lines = append(lines, fmt.Sprintf("• %s (%d items)", d.Name, d.Items))
	}
	return "📚 *Available Content Lists:*\n" + strings.Join(lines, "\n")
}

func withReset(msg string, reset bool) string {
	if reset {
		return msg + "\n\n_" + resetNotice + "_"
	}
	return msg
}
