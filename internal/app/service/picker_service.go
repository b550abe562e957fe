package service

import (
	"math/rand"
	"sync"

	"github.com/linxfaizan/ig-chatbot/internal/domain"
)

// PickerService elige items de una lista sin repetir hasta agotarla.
// Guarda por pool los índices ya servidos; cuando no queda ninguno libre,
// limpia el historial completo de ese pool y avisa con reset=true.
// Cada pool es independiente; el historial nunca se recorta de a uno.
type PickerService struct {
	mu     sync.Mutex
	recent map[string][]int
}

func NewPickerService() *PickerService {
	return &PickerService{recent: map[string][]int{}}
}

// Pick devuelve un item no usado recientemente del pool. Lista vacía =>
// ("", false). reset=true cuando se reinició el historial en esta llamada.
func (s *PickerService) Pick(pool string, items []string) (item string, reset bool) {
	if len(items) == 0 {
		return "", false
	}
	idx, reset := s.pickIndex(pool, len(items))
	return items[idx], reset
}

// PickQuestion es Pick para sets de preguntas. ok=false si el set está vacío.
func (s *PickerService) PickQuestion(pool string, qs []domain.Question) (q domain.Question, reset, ok bool) {
	if len(qs) == 0 {
		return domain.Question{}, false, false
	}
	idx, reset := s.pickIndex(pool, len(qs))
	return qs[idx], reset, true
}

func (s *PickerService) pickIndex(pool string, n int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	used := map[int]bool{}
	for _, i := range s.recent[pool] {
		used[i] = true
	}
	var available []int
	for i := 0; i < n; i++ {
		if !used[i] {
			available = append(available, i)
		}
	}

	reset := false
	if len(available) == 0 {
		s.recent[pool] = nil
		for i := 0; i < n; i++ {
			available = append(available, i)
		}
		reset = true
	}

	chosen := available[rand.Intn(len(available))]
	s.recent[pool] = append(s.recent[pool], chosen)
	return chosen, reset
}
