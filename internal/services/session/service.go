// Package session hosts memento editors for connected players.
//
// Each session wraps one editor. Calls on a session run under that session's
// lock, so a single editor never sees concurrent mutations. Sessions that go
// untouched for longer than the configured TTL are dropped.
package session

//go:generate mockgen -destination=mock/mock_service.go -package=sessionmock github.com/KirkDiggler/rpg-memento-editor/internal/services/session Service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-memento-editor/internal/clients/catalog"
	"github.com/KirkDiggler/rpg-memento-editor/internal/errors"
	"github.com/KirkDiggler/rpg-memento-editor/internal/orchestrators/editor"
	"github.com/KirkDiggler/rpg-memento-editor/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-memento-editor/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-memento-editor/internal/repositories/gamesetup"
	"github.com/KirkDiggler/rpg-memento-editor/internal/repositories/highlights"
)

// DefaultTTL is how long an idle session survives
const DefaultTTL = 15 * time.Minute

// Service manages editor sessions
type Service interface {
	Open(ctx context.Context, input *OpenInput) (*OpenOutput, error)
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	Tooltip(ctx context.Context, input *TooltipInput) (*TooltipOutput, error)
	Confirm(ctx context.Context, input *ConfirmInput) (*ConfirmOutput, error)
	Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error)
}

// Config holds the dependencies for the session manager
type Config struct {
	CatalogClient catalog.Client
	HighlightRepo highlights.Repository
	GameSetupRepo gamesetup.Repository
	IDGenerator   idgen.Generator
	Clock         clock.Clock

	// TTL defaults to DefaultTTL
	TTL    time.Duration
	Locale language.Tag
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c == nil {
		return vb.RequiredField("config").Build()
	}

	if c.CatalogClient == nil {
		vb.RequiredField("CatalogClient")
	}
	if c.HighlightRepo == nil {
		vb.RequiredField("HighlightRepo")
	}
	if c.GameSetupRepo == nil {
		vb.RequiredField("GameSetupRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}

	return vb.Build()
}

type session struct {
	mu         sync.Mutex
	id         string
	playerID   string
	leaderName string
	editor     *editor.Editor
	lastUsed   time.Time
	closed     bool
}

// Manager is the in-process session host
type Manager struct {
	catalogClient catalog.Client
	highlightRepo highlights.Repository
	gameSetupRepo gamesetup.Repository
	idGen         idgen.Generator
	clock         clock.Clock
	ttl           time.Duration
	locale        language.Tag

	mu       sync.Mutex
	sessions map[string]*session
	byPlayer map[string]string
}

// NewManager creates a session manager
func NewManager(cfg *Config) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &Manager{
		catalogClient: cfg.CatalogClient,
		highlightRepo: cfg.HighlightRepo,
		gameSetupRepo: cfg.GameSetupRepo,
		idGen:         cfg.IDGenerator,
		clock:         clk,
		ttl:           ttl,
		locale:        cfg.Locale,
		sessions:      make(map[string]*session),
		byPlayer:      make(map[string]string),
	}, nil
}

// Open builds an editor from the catalog and the player's current game
// setup. A player has at most one session; opening again discards the
// previous one without committing it.
func (m *Manager) Open(ctx context.Context, input *OpenInput) (*OpenOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player_id is required")
	}

	items, err := m.catalogClient.ListItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mementos")
	}
	slots, err := m.catalogClient.ListSlots(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list memento slots")
	}

	params, err := m.gameSetupRepo.GetParameters(ctx, gamesetup.GetParametersInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read game setup for player %s", input.PlayerID)
	}
	for _, slot := range slots {
		if value, ok := params.Values[slot.ParameterKey]; ok {
			slot.AssignedItemID = value
		}
	}

	ed, err := editor.New(ctx, &editor.Config{
		PlayerID:      input.PlayerID,
		Items:         items,
		Slots:         slots,
		HighlightRepo: m.highlightRepo,
		GameSetupRepo: m.gameSetupRepo,
		Locale:        m.locale,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create editor")
	}
	ed.Focus()

	s := &session{
		id:         m.idGen.Generate(),
		playerID:   input.PlayerID,
		leaderName: input.LeaderName,
		editor:     ed,
		lastUsed:   m.clock.Now(),
	}

	m.mu.Lock()
	if prev, ok := m.byPlayer[input.PlayerID]; ok {
		m.dropLocked(prev)
	}
	m.sessions[s.id] = s
	m.byPlayer[s.playerID] = s.id
	m.mu.Unlock()

	slog.Info("Memento session opened",
		"session_id", s.id,
		"player_id", s.playerID,
		"items", len(items),
		"slots", len(slots),
	)

	return &OpenOutput{Session: m.snapshot(s)}, nil
}

// Update applies the set interactions and returns the new state
func (m *Manager) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var snap *Snapshot
	err := m.with(input.SessionID, func(s *session) {
		ed := s.editor
		if input.SelectSlotID != nil {
			ed.SelectSlot(*input.SelectSlotID)
		}
		if input.SelectSlotIndex != nil {
			ed.SelectSlotIndex(*input.SelectSlotIndex)
		}
		if input.Cycle != 0 {
			ed.CycleSlot(input.Cycle)
		}
		if input.ToggleItemID != "" {
			ed.ToggleItem(input.ToggleItemID)
		}
		if input.SearchText != nil {
			ed.SetSearchText(*input.SearchText)
		}
		if input.OnlyUnlocked != nil {
			ed.SetOnlyUnlocked(*input.OnlyUnlocked)
		}
		if input.OnlyFavorites != nil {
			ed.SetOnlyFavorites(*input.OnlyFavorites)
		}
		if input.ToggleHighlightID != "" {
			ed.ToggleHighlight(ctx, input.ToggleHighlightID)
		}
		snap = m.snapshot(s)
	})
	if err != nil {
		return nil, err
	}

	return &UpdateOutput{Session: snap}, nil
}

// Get returns the session state and refreshes its idle timer
func (m *Manager) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var snap *Snapshot
	err := m.with(input.SessionID, func(s *session) {
		snap = m.snapshot(s)
	})
	if err != nil {
		return nil, err
	}

	return &GetOutput{Session: snap}, nil
}

// Tooltip returns the tooltip strings for one item
func (m *Manager) Tooltip(_ context.Context, input *TooltipInput) (*TooltipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var (
		tip *editor.Tooltip
		ok  bool
	)
	err := m.with(input.SessionID, func(s *session) {
		tip, ok = s.editor.Tooltip(input.ItemID)
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NotFoundf("memento %s not found", input.ItemID)
	}

	return &TooltipOutput{Tooltip: tip}, nil
}

// Confirm commits the working assignments and closes the session. Per-slot
// failures are reported in the result, the session closes regardless.
func (m *Manager) Confirm(ctx context.Context, input *ConfirmInput) (*ConfirmOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var result *editor.ConfirmResult
	err := m.with(input.SessionID, func(s *session) {
		result = s.editor.Confirm(ctx)
		m.close(s)
	})
	if err != nil {
		return nil, err
	}

	return &ConfirmOutput{Result: result}, nil
}

// Cancel discards the working assignments and closes the session
func (m *Manager) Cancel(_ context.Context, input *CancelInput) (*CancelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	err := m.with(input.SessionID, func(s *session) {
		s.editor.Cancel()
		m.close(s)
	})
	if err != nil {
		return nil, err
	}

	return &CancelOutput{}, nil
}

// ExpireIdle drops every session idle for longer than the TTL and returns
// how many were dropped
func (m *Manager) ExpireIdle() int {
	m.mu.Lock()
	candidates := make([]*session, 0, len(m.sessions))
	for _, s := range m.sessions {
		candidates = append(candidates, s)
	}
	m.mu.Unlock()

	now := m.clock.Now()
	expired := 0
	for _, s := range candidates {
		s.mu.Lock()
		if !s.closed && now.Sub(s.lastUsed) > m.ttl {
			m.close(s)
			expired++
		}
		s.mu.Unlock()
	}

	if expired > 0 {
		slog.Info("Expired idle memento sessions",
			"expired", expired,
			"remaining", m.Len(),
		)
	}
	return expired
}

// Run sweeps idle sessions every interval until ctx is done
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.ExpireIdle()
		}
	}
}

// Len returns the number of open sessions
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// with runs fn under the session lock. Expired, closed or replaced sessions
// report NotFound.
func (m *Manager) with(sessionID string, fn func(*session)) error {
	if sessionID == "" {
		return errors.InvalidArgument("session_id is required")
	}

	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	m.mu.Unlock()
	if !ok {
		return errors.NotFoundf("session %s not found", sessionID)
	}

	return m.runLocked(s, fn)
}

// runLocked takes the session lock, then confirms the session is still the
// registered one before running fn. A session replaced by Open while the
// caller waited for its lock is rejected.
func (m *Manager) runLocked(s *session, fn func(*session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.mu.Lock()
	registered := m.sessions[s.id] == s
	m.mu.Unlock()
	if !registered {
		s.closed = true
	}

	now := m.clock.Now()
	if s.closed || now.Sub(s.lastUsed) > m.ttl {
		m.close(s)
		return errors.NotFoundf("session %s not found", s.id)
	}
	s.lastUsed = now

	fn(s)
	return nil
}

// close removes a session whose lock the caller holds
func (m *Manager) close(s *session) {
	s.closed = true

	m.mu.Lock()
	if cur, ok := m.sessions[s.id]; ok && cur == s {
		delete(m.sessions, s.id)
	}
	if m.byPlayer[s.playerID] == s.id {
		delete(m.byPlayer, s.playerID)
	}
	m.mu.Unlock()
}

func (m *Manager) dropLocked(sessionID string) {
	s, ok := m.sessions[sessionID]
	if !ok {
		return
	}
	delete(m.sessions, sessionID)
	if m.byPlayer[s.playerID] == sessionID {
		delete(m.byPlayer, s.playerID)
	}
}

func (m *Manager) snapshot(s *session) *Snapshot {
	suggestion, _ := s.editor.Suggest()
	return &Snapshot{
		SessionID:  s.id,
		PlayerID:   s.playerID,
		LeaderName: s.leaderName,
		View:       s.editor.View(),
		Suggestion: suggestion,
		ExpiresAt:  s.lastUsed.Add(m.ttl),
	}
}
