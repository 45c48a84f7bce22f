package onitama

import "fmt"

const (
	BoardSize  = 5
	NumSquares = BoardSize * BoardSize

	center = BoardSize / 2
)

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func onBoard(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// NewPosition rejects coordinates outside [0,4]; an invalid Position never reaches a Board.
func NewPosition(row, col int) (Position, error) {
	if !onBoard(row, col) {
		return Position{}, fmt.Errorf("%w: row=%d col=%d", ErrInvalidPosition, row, col)
	}
	return Position{Row: row, Col: col}, nil
}

func (p Position) Valid() bool { return onBoard(p.Row, p.Col) }

// String 用代数记法：列 a-e，行 1-5（第 0 行是 1）
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return string([]byte{byte('a' + p.Col), byte('1' + p.Row)})
}

func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	return NewPosition(int(s[1])-'1', int(s[0])-'a')
}

// Offset 是相对走法 (列差, 行差)，以走子方自己的朝向为准
type Offset struct {
	DCol int `json:"dcol" yaml:"dcol"`
	DRow int `json:"drow" yaml:"drow"`
}

// Flip 关于原点做 180° 点对称
func (o Offset) Flip() Offset { return Offset{DCol: -o.DCol, DRow: -o.DRow} }

// orient 把牌面走法转成 side 视角下的实际位移：蓝方整体翻转
func orient(side Side, o Offset) Offset {
	if side == Blue {
		return o.Flip()
	}
	return o
}

// ApplyOffset returns ok=false when either coordinate leaves the board; nothing wraps.
func ApplyOffset(p Position, o Offset) (Position, bool) {
	row, col := p.Row+o.DRow, p.Col+o.DCol
	if !onBoard(row, col) {
		return Position{}, false
	}
	return Position{Row: row, Col: col}, true
}

// Rotate 绕棋盘中心顺时针转 quarterTurns 个 90°：row' = col, col' = 4 - row
func Rotate(p Position, quarterTurns int) Position {
	n := ((quarterTurns % 4) + 4) % 4
	for i := 0; i < n; i++ {
		p = Position{Row: p.Col, Col: BoardSize - 1 - p.Row}
	}
	return p
}

func Rotate180(p Position) Position { return Rotate(p, 2) }
