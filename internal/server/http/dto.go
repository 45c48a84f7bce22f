package httpserver

import (
	"fmt"
	"strings"

	"onitama/internal/onitama"
	"onitama/internal/server/game"
)

// PositionDTO 坐标直接用 row/col，和引擎一致
type PositionDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p PositionDTO) toPosition() (onitama.Position, error) {
	return onitama.NewPosition(p.Row, p.Col)
}

func positionToDTO(p onitama.Position) PositionDTO {
	return PositionDTO{Row: p.Row, Col: p.Col}
}

func positionsToDTO(ps []onitama.Position) []PositionDTO {
	out := make([]PositionDTO, len(ps))
	for i, p := range ps {
		out[i] = positionToDTO(p)
	}
	return out
}

type MoveDTO struct {
	From PositionDTO `json:"from"`
	To   PositionDTO `json:"to"`
}

func (m MoveDTO) toMove() (onitama.Move, error) {
	from, err := m.From.toPosition()
	if err != nil {
		return onitama.Move{}, fmt.Errorf("from: %w", err)
	}
	to, err := m.To.toPosition()
	if err != nil {
		return onitama.Move{}, fmt.Errorf("to: %w", err)
	}
	return onitama.Move{From: from, To: to}, nil
}

type SlotMoveDTO struct {
	Move MoveDTO `json:"move"`
	Slot int     `json:"slot"`
}

func slotMovesToDTO(ms []onitama.SlotMove) []SlotMoveDTO {
	out := make([]SlotMoveDTO, len(ms))
	for i, m := range ms {
		out[i] = SlotMoveDTO{
			Move: MoveDTO{From: positionToDTO(m.Move.From), To: positionToDTO(m.Move.To)},
			Slot: int(m.Slot),
		}
	}
	return out
}

type PieceDTO struct {
	Side string      `json:"side"`
	Type string      `json:"type"`
	Pos  PositionDTO `json:"pos"`
}

func pieceToDTO(p onitama.Piece) PieceDTO {
	return PieceDTO{Side: p.Side.String(), Type: p.Type.String(), Pos: positionToDTO(p.Pos)}
}

// CardDTO 带上卡面图，前端直接画
type CardDTO struct {
	Name    string   `json:"name"`
	Moves   [][2]int `json:"moves"` // [dcol, drow]
	Diagram []string `json:"diagram"`
}

func cardToDTO(c onitama.Card, owner, viewer onitama.Side) CardDTO {
	moves := make([][2]int, len(c.Moves))
	for i, o := range c.Moves {
		moves[i] = [2]int{o.DCol, o.DRow}
	}
	diagram := strings.Split(strings.TrimSuffix(onitama.DiagramString(c, owner, viewer), "\n"), "\n")
	return CardDTO{Name: c.Name, Moves: moves, Diagram: diagram}
}

type CardsDTO struct {
	Red     []CardDTO `json:"red"`
	Blue    []CardDTO `json:"blue"`
	Neutral CardDTO   `json:"neutral"`
}

// 卡面图以走子方视角绘制
func cardsToDTO(cs onitama.CardpileSnapshot, viewer onitama.Side) CardsDTO {
	return CardsDTO{
		Red:     []CardDTO{cardToDTO(cs.Red[0], onitama.Red, viewer), cardToDTO(cs.Red[1], onitama.Red, viewer)},
		Blue:    []CardDTO{cardToDTO(cs.Blue[0], onitama.Blue, viewer), cardToDTO(cs.Blue[1], onitama.Blue, viewer)},
		Neutral: cardToDTO(cs.Neutral, onitama.NoSide, viewer),
	}
}

// StateResponse 新局、查询、走子共用
type StateResponse struct {
	GameID     string        `json:"game_id"`
	Position   string        `json:"position"`
	ToMove     string        `json:"to_move"`
	Pieces     []PieceDTO    `json:"pieces"`
	Cards      CardsDTO      `json:"cards"`
	LegalMoves []SlotMoveDTO `json:"legal_moves"`
	Status     string        `json:"status"`
	Plies      int           `json:"plies"`
}

func snapshotToDTO(s game.Snapshot) StateResponse {
	pieces := make([]PieceDTO, len(s.Pieces))
	for i, p := range s.Pieces {
		pieces[i] = pieceToDTO(p)
	}
	return StateResponse{
		GameID:     s.ID,
		Position:   s.Encoded,
		ToMove:     s.SideToMove.String(),
		Pieces:     pieces,
		Cards:      cardsToDTO(s.Cards, s.SideToMove),
		LegalMoves: slotMovesToDTO(s.LegalMoves),
		Status:     s.Status(),
		Plies:      s.Plies,
	}
}

// NewGameRequest 可选：从给定局面开局
type NewGameRequest struct {
	Position string `json:"position,omitempty"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
	Slot   int     `json:"slot"`
}

type PlayResponse struct {
	StateResponse
	Card     string    `json:"card"`
	Captured *PieceDTO `json:"captured,omitempty"`
}

type ValidMovesRequest struct {
	GameID string      `json:"game_id"`
	Square PositionDTO `json:"square"`
	Slot   int         `json:"slot"`
	Side   string      `json:"side"`
}

type ValidMovesResponse struct {
	Targets []PositionDTO `json:"targets"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}
