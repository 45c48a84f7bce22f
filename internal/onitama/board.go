package onitama

import (
	"errors"
	"fmt"
)

const (
	PawnsPerSide = 4
	kingCol      = center
)

// Rules 开局参数
type Rules struct {
	Catalog     Catalog
	FirstToMove Side
}

func DefaultRules() Rules {
	return Rules{
		Catalog:     ClassicCatalog(),
		FirstToMove: Blue, // 蓝先
	}
}

// Board owns the pieces, the card pool and the side to move.
// Pieces live in an arena; index maps each square to arena slot+1 (0 = empty)
// and is kept in step with every capture and relocation.
type Board struct {
	pieces     []Piece
	index      [BoardSize][BoardSize]int8
	cards      Cardpile
	sideToMove Side
}

func NewBoard(rules Rules, rng RandSource) (*Board, error) {
	if !rules.FirstToMove.Valid() {
		return nil, fmt.Errorf("%w: first to move %v", ErrInvalidSide, rules.FirstToMove)
	}
	cards, err := Deal(rules.Catalog, rng)
	if err != nil {
		return nil, err
	}
	b := &Board{
		pieces:     make([]Piece, 0, 2*(PawnsPerSide+1)),
		cards:      cards,
		sideToMove: rules.FirstToMove,
	}
	for _, side := range []Side{Red, Blue} {
		row := homeRow(side)
		for col := 0; col < BoardSize; col++ {
			pt := PiecePawn
			if col == kingCol {
				pt = PieceKing
			}
			b.place(Piece{Side: side, Pos: Position{Row: row, Col: col}, Type: pt})
		}
	}
	return b, nil
}

func (b *Board) place(p Piece) {
	if b.index[p.Pos.Row][p.Pos.Col] != 0 {
		panic(fmt.Sprintf("onitama: square %v already occupied", p.Pos))
	}
	b.pieces = append(b.pieces, p)
	b.index[p.Pos.Row][p.Pos.Col] = int8(len(b.pieces))
}

// slotAt 返回 arena 下标，-1 表示空格
func (b *Board) slotAt(pos Position) int {
	if !pos.Valid() {
		return -1
	}
	return int(b.index[pos.Row][pos.Col]) - 1
}

// remove 把最后一个棋子挪进空出的槽位，同时修正它的索引
func (b *Board) remove(i int) Piece {
	gone := b.pieces[i]
	last := len(b.pieces) - 1
	b.index[gone.Pos.Row][gone.Pos.Col] = 0
	if i != last {
		moved := b.pieces[last]
		b.pieces[i] = moved
		b.index[moved.Pos.Row][moved.Pos.Col] = int8(i + 1)
	}
	b.pieces = b.pieces[:last]
	return gone
}

func (b *Board) relocate(i int, to Position) {
	from := b.pieces[i].Pos
	b.index[from.Row][from.Col] = 0
	b.pieces[i].Pos = to
	b.index[to.Row][to.Col] = int8(i + 1)
}

func (b *Board) FindPiece(pos Position) (Piece, bool) {
	i := b.slotAt(pos)
	if i < 0 {
		return Piece{}, false
	}
	return b.pieces[i], true
}

func (b *Board) SideToMove() Side { return b.sideToMove }

// Pieces returns a copy of the piece list.
func (b *Board) Pieces() []Piece {
	return append([]Piece(nil), b.pieces...)
}

func (b *Board) Cardpile() CardpileSnapshot { return b.cards.Snapshot() }

func (b *Board) Clone() *Board {
	nb := *b
	nb.pieces = append([]Piece(nil), b.pieces...)
	return &nb
}

// Check 返回第一条不满足的规则；合法时为 ReasonNone
func (b *Board) Check(m Move, slot CardSlot) Reason {
	if !slot.Valid() {
		return ReasonInvalidSlot
	}
	piece, ok := b.FindPiece(m.From)
	if !ok {
		return ReasonNoPiece
	}
	if piece.Side != b.sideToMove {
		return ReasonNotYourTurn
	}
	if target, ok := b.FindPiece(m.To); ok && target.Side == piece.Side {
		return ReasonFriendlyTarget
	}
	for _, to := range b.cards.MovesForSlot(piece, slot) {
		if to == m.To {
			return ReasonNone
		}
	}
	return ReasonUnreachable
}

// MoveIsValid never panics; false is the normal rejection path.
func (b *Board) MoveIsValid(m Move, slot CardSlot) bool {
	return b.Check(m, slot) == ReasonNone
}

type MoveResult struct {
	Move     Move     `json:"move"`
	Slot     CardSlot `json:"slot"`
	Side     Side     `json:"side"`
	Card     Card     `json:"card"`
	Captured *Piece   `json:"captured,omitempty"`
}

// PlayMove validates the move itself. On rejection it returns *IllegalMoveError
// and the board is unchanged. Otherwise: exchange the card, flip the side to move,
// capture whatever stands on the destination, then relocate the mover.
func (b *Board) PlayMove(m Move, slot CardSlot) (MoveResult, error) {
	if r := b.Check(m, slot); r != ReasonNone {
		return MoveResult{}, &IllegalMoveError{Move: m, Slot: slot, Reason: r}
	}
	side := b.sideToMove
	res := MoveResult{Move: m, Slot: slot, Side: side}

	res.Card = b.cards.UseCard(slot, side)
	b.sideToMove = Opponent(side)

	// 先吃子再挪子：两个棋子各自按格子查找
	if i := b.slotAt(m.To); i >= 0 {
		captured := b.remove(i)
		res.Captured = &captured
	}
	b.relocate(b.slotAt(m.From), m.To)
	return res, nil
}

// ValidMoves is the geometry-only preview used for highlighting: where a piece of
// side standing on square could go with that side's card in slot, ignoring occupancy.
func (b *Board) ValidMoves(square Position, slot CardSlot, side Side) []Position {
	card := b.cards.Card(side, slot)
	return appendCardMoves(nil, card, side, square)
}

// LegalMoves 当前走子方所有合法的 (走法, 牌) 组合
func (b *Board) LegalMoves() []SlotMove {
	var out []SlotMove
	for _, p := range b.pieces {
		if p.Side != b.sideToMove {
			continue
		}
		for _, slot := range []CardSlot{SlotA, SlotB} {
			seen := map[Position]bool{}
			for _, to := range b.cards.MovesForSlot(p, slot) {
				if seen[to] {
					continue
				}
				seen[to] = true
				m := Move{From: p.Pos, To: to}
				if b.Check(m, slot) == ReasonNone {
					out = append(out, SlotMove{Move: m, Slot: slot})
				}
			}
		}
	}
	return out
}

func (b *Board) KingExists(side Side) bool {
	for _, p := range b.pieces {
		if p.Side == side && p.Type == PieceKing {
			return true
		}
	}
	return false
}

// GameWon reports the side whose king survives once the other king is gone.
func (b *Board) GameWon() (Side, bool) {
	red, blue := b.KingExists(Red), b.KingExists(Blue)
	switch {
	case red && blue:
		return NoSide, false
	case red:
		return Red, true
	case blue:
		return Blue, true
	}
	panic("onitama: both kings are missing")
}

var errCorrupt = errors.New("board invariant violated")

// CheckInvariants verifies the arena and the square index agree and the piece
// census is possible.
func (b *Board) CheckInvariants() error {
	if !b.sideToMove.Valid() {
		return fmt.Errorf("%w: side to move %v", errCorrupt, b.sideToMove)
	}
	var kings, pawns [2]int
	var seen [BoardSize][BoardSize]bool
	for i, p := range b.pieces {
		if !p.Pos.Valid() {
			return fmt.Errorf("%w: piece %d off board at %v", errCorrupt, i, p.Pos)
		}
		if !p.Side.Valid() {
			return fmt.Errorf("%w: piece %d has side %v", errCorrupt, i, p.Side)
		}
		if seen[p.Pos.Row][p.Pos.Col] {
			return fmt.Errorf("%w: two pieces on %v", errCorrupt, p.Pos)
		}
		seen[p.Pos.Row][p.Pos.Col] = true
		if b.slotAt(p.Pos) != i {
			return fmt.Errorf("%w: index for %v points at %d, want %d", errCorrupt, p.Pos, b.slotAt(p.Pos), i)
		}
		switch p.Type {
		case PieceKing:
			kings[p.Side]++
		case PiecePawn:
			pawns[p.Side]++
		default:
			return fmt.Errorf("%w: piece %d has type %v", errCorrupt, i, p.Type)
		}
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if (b.index[row][col] != 0) != seen[row][col] {
				return fmt.Errorf("%w: stale index at %v", errCorrupt, Position{Row: row, Col: col})
			}
		}
	}
	for _, side := range []Side{Red, Blue} {
		if kings[side] > 1 || pawns[side] > PawnsPerSide {
			return fmt.Errorf("%w: %v has %d kings and %d pawns", errCorrupt, side, kings[side], pawns[side])
		}
	}
	if kings[Red] == 0 && kings[Blue] == 0 {
		return fmt.Errorf("%w: both kings missing", errCorrupt)
	}
	cards := b.cards.Cards()
	for i := range cards {
		for j := i + 1; j < len(cards); j++ {
			if cards[i].Name == cards[j].Name {
				return fmt.Errorf("%w: card %q dealt twice", errCorrupt, cards[i].Name)
			}
		}
	}
	return nil
}
