package onitama

import "strings"

// diagramTurns 卡面朝向：中立牌横放转 1 次，自己的牌转 2 次，对方的牌不转
func diagramTurns(owner, viewer Side) int {
	switch {
	case owner == NoSide:
		return 1
	case owner == viewer:
		return 2
	default:
		return 0
	}
}

// Diagram marks the squares a card reaches on a 5x5 grid centred on (2,2), as seen
// by viewer. owner is NoSide for the neutral card.
func Diagram(card Card, owner, viewer Side) [BoardSize][BoardSize]bool {
	var grid [BoardSize][BoardSize]bool
	turns := diagramTurns(owner, viewer)
	for _, o := range card.Moves {
		p, ok := ApplyOffset(Position{Row: center, Col: center}, o)
		if !ok {
			continue
		}
		p = Rotate(p, turns)
		grid[p.Row][p.Col] = true
	}
	return grid
}

// DiagramString renders Diagram row by row: 'o' centre, 'x' target, '.' empty.
func DiagramString(card Card, owner, viewer Side) string {
	grid := Diagram(card, owner, viewer)
	var sb strings.Builder
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			switch {
			case grid[r][c]:
				sb.WriteByte('x')
			case r == center && c == center:
				sb.WriteByte('o')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
