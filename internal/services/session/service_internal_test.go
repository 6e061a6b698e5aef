package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-memento-editor/internal/errors"
	"github.com/KirkDiggler/rpg-memento-editor/internal/pkg/clock"
)

func newBareManager() *Manager {
	return &Manager{
		clock:    clock.NewManual(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)),
		ttl:      time.Minute,
		sessions: make(map[string]*session),
		byPlayer: make(map[string]string),
	}
}

func (m *Manager) registerForTest(s *session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.byPlayer[s.playerID]; ok {
		m.dropLocked(prev)
	}
	s.lastUsed = m.clock.Now()
	m.sessions[s.id] = s
	m.byPlayer[s.playerID] = s.id
}

func TestRunLocked_ReplacedSessionIsRejected(t *testing.T) {
	m := newBareManager()

	stale := &session{id: "sess_1", playerID: "p1"}
	m.registerForTest(stale)

	// the caller looked the session up before it was replaced
	looked, ok := m.sessions["sess_1"]
	require.True(t, ok)

	fresh := &session{id: "sess_2", playerID: "p1"}
	m.registerForTest(fresh)

	ran := false
	err := m.runLocked(looked, func(*session) { ran = true })

	assert.True(t, errors.IsNotFound(err))
	assert.False(t, ran)
	assert.True(t, stale.closed)

	m.mu.Lock()
	assert.Same(t, fresh, m.sessions["sess_2"])
	assert.Equal(t, "sess_2", m.byPlayer["p1"])
	m.mu.Unlock()
}

func TestRunLocked_RegisteredSessionRuns(t *testing.T) {
	m := newBareManager()

	s := &session{id: "sess_1", playerID: "p1"}
	m.registerForTest(s)

	ran := false
	require.NoError(t, m.runLocked(s, func(*session) { ran = true }))
	assert.True(t, ran)
	assert.False(t, s.closed)
}
