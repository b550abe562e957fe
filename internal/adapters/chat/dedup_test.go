package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeenStoreMarksOnce(t *testing.T) {
	s := newSeenStore()
	assert.True(t, s.markSeen("m1"))
	assert.False(t, s.markSeen("m1"))
	assert.True(t, s.markSeen("m2"))
}

func TestSeenStoreResightingRefreshesTTL(t *testing.T) {
	s := newSeenStore()
	require.True(t, s.markSeen("m1"))

	// hilo quieto: la primera vista quedó más vieja que el TTL
	s.m.Store("m1", time.Now().Add(-dedupTTL-time.Hour).Unix())

	// el id sigue saliendo en cada poll: re-verlo renueva el timestamp
	require.False(t, s.markSeen("m1"))

	s.sweep(time.Now().Add(-dedupTTL).Unix())

	assert.False(t, s.markSeen("m1"),
		"un id todavía visible en la ventana de poll no debe reprocesarse tras la barrida")
}

func TestSeenStoreSweepDropsStaleEntries(t *testing.T) {
	s := newSeenStore()
	require.True(t, s.markSeen("viejo"))
	require.True(t, s.markSeen("nuevo"))
	s.m.Store("viejo", time.Now().Add(-dedupTTL-time.Hour).Unix())

	s.sweep(time.Now().Add(-dedupTTL).Unix())

	assert.True(t, s.markSeen("viejo"), "la entrada vencida debió barrerse")
	assert.False(t, s.markSeen("nuevo"))
}
