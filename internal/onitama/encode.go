package onitama

import (
	"fmt"
	"strings"
	"unicode"
)

// 简单 FEN-like：5 行用 "/" 隔开，空位用数字压缩，大写红、小写蓝；
// 之后依次是走子方 r/b、红方两张牌、蓝方两张牌、中立牌。
//
//	PPKPP/5/5/5/ppkpp b cat,dog fish,moose chipmunk

var letterToPieceType = map[rune]PieceType{
	'p': PiecePawn,
	'k': PieceKing,
}

func pieceToChar(p Piece) rune {
	var ch rune
	switch p.Type {
	case PiecePawn:
		ch = 'p'
	case PieceKing:
		ch = 'k'
	default:
		return '.'
	}
	if p.Side == Red {
		return unicode.ToUpper(ch)
	}
	return ch
}

func sideToChar(s Side) byte {
	if s == Red {
		return 'r'
	}
	return 'b'
}

func (b *Board) Encode() string {
	var sb strings.Builder
	for r := 0; r < BoardSize; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < BoardSize; c++ {
			p, ok := b.FindPiece(Position{Row: r, Col: c})
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(p))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	sb.WriteByte(sideToChar(b.sideToMove))
	cards := b.cards.Cards()
	fmt.Fprintf(&sb, " %s,%s %s,%s %s", cards[0].Name, cards[1].Name, cards[2].Name, cards[3].Name, cards[4].Name)
	return sb.String()
}

// DecodePosition rebuilds a board from Encode output; card names resolve through catalog.
func DecodePosition(s string, catalog Catalog) (*Board, error) {
	parts := strings.Fields(s)
	if len(parts) != 5 {
		return nil, fmt.Errorf("%w: want 5 fields, got %d", ErrInvalidEncoding, len(parts))
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != BoardSize {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrInvalidEncoding, BoardSize, len(rows))
	}

	b := &Board{}
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= BoardSize {
				return nil, fmt.Errorf("%w: row %d too long", ErrInvalidEncoding, r)
			}
			if ch >= '1' && ch <= '5' {
				c += int(ch - '0')
				continue
			}
			pt, ok := letterToPieceType[unicode.ToLower(ch)]
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q", ErrInvalidEncoding, ch)
			}
			side := Blue
			if unicode.IsUpper(ch) {
				side = Red
			}
			b.place(Piece{Side: side, Pos: Position{Row: r, Col: c}, Type: pt})
			c++
		}
		if c != BoardSize {
			return nil, fmt.Errorf("%w: row %d has %d columns", ErrInvalidEncoding, r, c)
		}
	}

	switch parts[1] {
	case "r":
		b.sideToMove = Red
	case "b":
		b.sideToMove = Blue
	default:
		return nil, fmt.Errorf("%w: side %q", ErrInvalidEncoding, parts[1])
	}

	var names []string
	for _, field := range parts[2:4] {
		pair := strings.Split(field, ",")
		if len(pair) != HandSize {
			return nil, fmt.Errorf("%w: hand %q", ErrInvalidEncoding, field)
		}
		names = append(names, pair...)
	}
	names = append(names, parts[4])

	var drawn [PoolSize]Card
	for i, name := range names {
		card, ok := catalog.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown card %q", ErrInvalidEncoding, name)
		}
		drawn[i] = card
	}
	b.cards = newCardpile(drawn)

	if err := b.CheckInvariants(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return b, nil
}
