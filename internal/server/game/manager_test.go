package game

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onitama/internal/onitama"
)

func newTestManager() *Manager {
	var seed uint64
	return NewManager(onitama.DefaultRules(), WithRand(func() onitama.RandSource {
		seed++
		return onitama.NewSeededSource(seed)
	}))
}

// putGame 直接塞一个指定局面，方便构造终局
func putGame(t *testing.T, m *Manager, enc string) string {
	t.Helper()
	b, err := onitama.DecodePosition(enc, onitama.ClassicCatalog())
	require.NoError(t, err)
	g := &GameState{ID: "fixture", board: b, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.mu.Lock()
	m.games[g.ID] = g
	m.mu.Unlock()
	return g.ID
}

func move(from, to string) onitama.Move {
	f, _ := onitama.ParsePosition(from)
	t, _ := onitama.ParsePosition(to)
	return onitama.Move{From: f, To: t}
}

func TestNewGameAndState(t *testing.T) {
	m := newTestManager()
	snap, err := m.NewGame()
	require.NoError(t, err)
	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, onitama.Blue, snap.SideToMove)
	assert.Len(t, snap.Pieces, 10)
	assert.NotEmpty(t, snap.LegalMoves)
	assert.Equal(t, "ongoing", snap.Status())
	assert.Equal(t, 1, m.Len())

	got, err := m.State(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, snap.Encoded, got.Encoded)

	_, err = m.State("nope")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestNewGameFailsOnSmallCatalog(t *testing.T) {
	m := NewManager(onitama.Rules{Catalog: onitama.ClassicCatalog()[:3], FirstToMove: onitama.Blue})
	_, err := m.NewGame()
	assert.ErrorIs(t, err, onitama.ErrCatalogTooSmall)
}

func TestPlayAndReject(t *testing.T) {
	m := newTestManager()
	id := putGame(t, m, "PPKPP/5/5/5/ppkpp b cat,dog fish,moose chipmunk")

	_, _, err := m.Play(id, move("a5", "a4"), onitama.SlotA)
	assert.ErrorIs(t, err, onitama.ErrIllegalMove)

	snap, res, err := m.Play(id, move("a5", "b4"), onitama.SlotA)
	require.NoError(t, err)
	assert.Equal(t, "fish", res.Card.Name)
	assert.Equal(t, onitama.Red, snap.SideToMove)
	assert.Equal(t, 1, snap.Plies)
	assert.Equal(t, "PPKPP/5/5/1p3/1pkpp r cat,dog chipmunk,moose fish", snap.Encoded)

	_, _, err = m.Play("missing", move("a5", "b4"), onitama.SlotA)
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestPlayRefusedAfterKingCapture(t *testing.T) {
	m := newTestManager()
	id := putGame(t, m, "PPKPP/1p3/5/5/p1kpp b cat,dog fish,moose chipmunk")

	snap, res, err := m.Play(id, move("b2", "c1"), onitama.SlotA)
	require.NoError(t, err)
	require.NotNil(t, res.Captured)
	assert.True(t, snap.Over)
	assert.Equal(t, onitama.Blue, snap.Winner)
	assert.Equal(t, "blue_won", snap.Status())
	assert.Empty(t, snap.LegalMoves)

	_, _, err = m.Play(id, move("a1", "a3"), onitama.SlotA)
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestValidMovesPreview(t *testing.T) {
	m := newTestManager()
	id := putGame(t, m, "PPKPP/5/5/5/ppkpp b cat,dog fish,moose chipmunk")
	sq, _ := onitama.ParsePosition("c5")

	got, err := m.ValidMoves(id, sq, onitama.SlotB, onitama.Blue)
	require.NoError(t, err)
	b3, _ := onitama.ParsePosition("b3")
	d3, _ := onitama.ParsePosition("d3")
	assert.Equal(t, []onitama.Position{b3, d3}, got)

	_, err = m.ValidMoves(id, sq, onitama.CardSlot(3), onitama.Blue)
	assert.ErrorIs(t, err, onitama.ErrInvalidSlot)
	_, err = m.ValidMoves(id, sq, onitama.SlotA, onitama.NoSide)
	assert.ErrorIs(t, err, onitama.ErrInvalidSide)
	_, err = m.ValidMoves(id, onitama.Position{Row: 9}, onitama.SlotA, onitama.Red)
	assert.ErrorIs(t, err, onitama.ErrInvalidPosition)
}

func TestDelete(t *testing.T) {
	m := newTestManager()
	snap, err := m.NewGame()
	require.NoError(t, err)
	require.NoError(t, m.Delete(snap.ID))
	assert.Equal(t, 0, m.Len())
	assert.ErrorIs(t, m.Delete(snap.ID), ErrGameNotFound)
}

func TestConcurrentPlaysAreSerialised(t *testing.T) {
	m := newTestManager()
	snap, err := m.NewGame()
	require.NoError(t, err)

	// 同一步棋并发提交：只能成功一次
	first := snap.LegalMoves[0]
	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := m.Play(snap.ID, first.Move, first.Slot); err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, ok)

	got, err := m.State(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Plies)
	assert.Equal(t, onitama.Red, got.SideToMove)
}

func TestNewGameFromPosition(t *testing.T) {
	m := newTestManager()
	snap, err := m.NewGameFromPosition("PPKPP/5/5/5/pp1pp r cat,dog fish,moose chipmunk")
	require.NoError(t, err)
	assert.True(t, snap.Over)
	assert.Equal(t, "red_won", snap.Status())

	_, err = m.NewGameFromPosition("PPKPP b")
	assert.ErrorIs(t, err, onitama.ErrInvalidEncoding)
	assert.Equal(t, 1, m.Len())
}
