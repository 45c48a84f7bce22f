package game

import (
	"sync"
	"time"

	"onitama/internal/onitama"
)

// GameState 一局棋；mu 保证同一块棋盘一次只被一个请求驱动
type GameState struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	mu    sync.Mutex
	board *onitama.Board
	plies int
}

// Snapshot is a read-only copy of a game, safe to hand to the HTTP layer.
type Snapshot struct {
	ID         string
	Encoded    string
	SideToMove onitama.Side
	Pieces     []onitama.Piece
	Cards      onitama.CardpileSnapshot
	LegalMoves []onitama.SlotMove
	Winner     onitama.Side
	Over       bool
	Plies      int
	UpdatedAt  time.Time
}

// Status 给前端的状态字符串
func (s Snapshot) Status() string {
	switch {
	case s.Over && s.Winner == onitama.Red:
		return "red_won"
	case s.Over && s.Winner == onitama.Blue:
		return "blue_won"
	case len(s.LegalMoves) == 0:
		return "no_moves"
	default:
		return "ongoing"
	}
}

func (g *GameState) snapshotLocked() Snapshot {
	winner, over := g.board.GameWon()
	s := Snapshot{
		ID:         g.ID,
		Encoded:    g.board.Encode(),
		SideToMove: g.board.SideToMove(),
		Pieces:     g.board.Pieces(),
		Cards:      g.board.Cardpile(),
		Winner:     winner,
		Over:       over,
		Plies:      g.plies,
		UpdatedAt:  g.UpdatedAt,
	}
	if !over {
		s.LegalMoves = g.board.LegalMoves()
	}
	return s
}

func (g *GameState) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}
