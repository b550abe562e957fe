package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linxfaizan/ig-chatbot/internal/domain"
)

func TestPickerExhaustsWithoutRepeats(t *testing.T) {
	p := NewPickerService()
	items := []string{"a", "b", "c", "d", "e"}

	seen := map[string]bool{}
	for i := 0; i < len(items); i++ {
		item, reset := p.Pick("truths", items)
		require.NotEmpty(t, item)
		assert.False(t, reset, "pick %d no debería resetear", i)
		assert.False(t, seen[item], "item repetido antes de agotar: %s", item)
		seen[item] = true
	}
	assert.Len(t, seen, len(items))

	// el pool está agotado: la siguiente elección resetea el historial
	item, reset := p.Pick("truths", items)
	assert.NotEmpty(t, item)
	assert.True(t, reset)
}

func TestPickerEmptyList(t *testing.T) {
	p := NewPickerService()
	item, reset := p.Pick("truths", nil)
	assert.Empty(t, item)
	assert.False(t, reset)

	_, _, ok := p.PickQuestion("trivia", nil)
	assert.False(t, ok)
}

func TestPickerPoolsAreIndependent(t *testing.T) {
	p := NewPickerService()
	single := []string{"only"}

	_, reset := p.Pick("dares", single)
	assert.False(t, reset)

	// agotar "dares" no toca el historial de "truths"
	_, reset = p.Pick("truths", single)
	assert.False(t, reset)

	_, reset = p.Pick("dares", single)
	assert.True(t, reset)
}

func TestPickQuestion(t *testing.T) {
	p := NewPickerService()
	qs := []domain.Question{
		{Question: "q1", Answer: "a"},
		{Question: "q2", Answer: "b"},
	}

	got := map[string]bool{}
	for i := 0; i < 2; i++ {
		q, reset, ok := p.PickQuestion("trivia", qs)
		require.True(t, ok)
		assert.False(t, reset)
		got[q.Question] = true
	}
	assert.Len(t, got, 2)

	_, reset, ok := p.PickQuestion("trivia", qs)
	require.True(t, ok)
	assert.True(t, reset)
}
