package onitama

import "fmt"

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Blue   Side = 1
)

// Opponent 红蓝互换；NoSide 原样返回
func Opponent(side Side) Side {
	switch side {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return NoSide
	}
}

func (s Side) Valid() bool { return s == Red || s == Blue }

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "none"
	}
}

// ParseSide accepts "red"/"r" and "blue"/"b".
func ParseSide(s string) (Side, error) {
	switch s {
	case "red", "r", "Red", "RED":
		return Red, nil
	case "blue", "b", "Blue", "BLUE":
		return Blue, nil
	}
	return NoSide, fmt.Errorf("%w: %q", ErrInvalidSide, s)
}

// homeRow 开局时该方棋子所在的行
func homeRow(side Side) int {
	if side == Blue {
		return BoardSize - 1
	}
	return 0
}

type PieceType int8

const (
	PieceNone PieceType = iota
	PiecePawn           // 兵
	PieceKing           // 王
)

func (pt PieceType) String() string {
	switch pt {
	case PiecePawn:
		return "pawn"
	case PieceKing:
		return "king"
	default:
		return "none"
	}
}

// Piece 没有持久 id：棋子只靠所在格子识别
type Piece struct {
	Side Side      `json:"side"`
	Pos  Position  `json:"pos"`
	Type PieceType `json:"type"`
}

type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

func (m Move) String() string { return m.From.String() + m.To.String() }

// CardSlot 一方手里两张牌中的哪一张
type CardSlot uint8

const (
	SlotA CardSlot = 0
	SlotB CardSlot = 1
)

func NewCardSlot(i int) (CardSlot, error) {
	if i != 0 && i != 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSlot, i)
	}
	return CardSlot(i), nil
}

func (s CardSlot) Valid() bool { return s == SlotA || s == SlotB }

// SlotMove 是一步完整的走子：棋子起止 + 打出的牌
type SlotMove struct {
	Move Move     `json:"move"`
	Slot CardSlot `json:"slot"`
}
