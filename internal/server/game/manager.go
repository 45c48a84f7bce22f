package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"onitama/internal/onitama"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameOver     = errors.New("game is over")
)

// Manager keeps hot-seat games in memory; nothing survives a restart.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState

	rules   onitama.Rules
	newRand func() onitama.RandSource
	log     zerolog.Logger
	now     func() time.Time
}

type Option func(*Manager)

func WithRand(f func() onitama.RandSource) Option {
	return func(m *Manager) { m.newRand = f }
}

func WithLogger(l zerolog.Logger) Option {
	return func(m *Manager) { m.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(rules onitama.Rules, opts ...Option) *Manager {
	m := &Manager{
		games:   make(map[string]*GameState),
		rules:   rules,
		newRand: onitama.NewTimeSource,
		log:     zerolog.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) NewGame() (Snapshot, error) {
	board, err := onitama.NewBoard(m.rules, m.newRand())
	if err != nil {
		return Snapshot{}, fmt.Errorf("new board: %w", err)
	}
	return m.add(board), nil
}

// NewGameFromPosition starts a game from an encoded position (puzzles, fixtures);
// card names resolve through the manager's catalog.
func (m *Manager) NewGameFromPosition(encoded string) (Snapshot, error) {
	board, err := onitama.DecodePosition(encoded, m.rules.Catalog)
	if err != nil {
		return Snapshot{}, err
	}
	return m.add(board), nil
}

func (m *Manager) add(board *onitama.Board) Snapshot {
	now := m.now()
	g := &GameState{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		board:     board,
	}

	m.mu.Lock()
	m.games[g.ID] = g
	m.mu.Unlock()

	m.log.Info().Str("game", g.ID).Str("position", board.Encode()).Msg("game created")
	return g.Snapshot()
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g, nil
}

func (m *Manager) State(id string) (Snapshot, error) {
	g, err := m.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	return g.Snapshot(), nil
}

// Play 引擎本身不会在王被吃后停止，这里拒绝终局后的走子
func (m *Manager) Play(id string, mv onitama.Move, slot onitama.CardSlot) (Snapshot, onitama.MoveResult, error) {
	g, err := m.Get(id)
	if err != nil {
		return Snapshot{}, onitama.MoveResult{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, over := g.board.GameWon(); over {
		return Snapshot{}, onitama.MoveResult{}, fmt.Errorf("%w: %s", ErrGameOver, id)
	}
	res, err := g.board.PlayMove(mv, slot)
	if err != nil {
		m.log.Debug().Str("game", id).Str("move", mv.String()).Err(err).Msg("move rejected")
		return Snapshot{}, onitama.MoveResult{}, err
	}
	g.plies++
	g.UpdatedAt = m.now()

	ev := m.log.Info().Str("game", id).Stringer("side", res.Side).Str("move", mv.String()).Str("card", res.Card.Name)
	if res.Captured != nil {
		ev = ev.Stringer("captured", res.Captured.Type)
	}
	ev.Msg("move played")

	snap := g.snapshotLocked()
	if snap.Over {
		m.log.Info().Str("game", id).Stringer("winner", snap.Winner).Int("plies", g.plies).Msg("game over")
	}
	return snap, res, nil
}

// ValidMoves is the geometry preview for highlighting; the side must be red or blue.
func (m *Manager) ValidMoves(id string, square onitama.Position, slot onitama.CardSlot, side onitama.Side) ([]onitama.Position, error) {
	if !slot.Valid() {
		return nil, onitama.ErrInvalidSlot
	}
	if !side.Valid() {
		return nil, onitama.ErrInvalidSide
	}
	if !square.Valid() {
		return nil, onitama.ErrInvalidPosition
	}
	g, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.ValidMoves(square, slot, side), nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(m.games, id)
	m.log.Info().Str("game", id).Msg("game deleted")
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
