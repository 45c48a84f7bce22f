package onitama

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// HandSize 每方持牌数；加上一张中立牌共 5 张
const (
	HandSize = 2
	PoolSize = 2*HandSize + 1
)

// RandSource is satisfied by *rand.Rand from math/rand/v2.
type RandSource interface {
	IntN(n int) int
}

func NewSeededSource(seed uint64) RandSource {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// NewTimeSource seeds from the wall clock; only commands use it.
func NewTimeSource() RandSource {
	return NewSeededSource(uint64(time.Now().UnixNano()))
}

// Cardpile 固定五个槽位：红两张、蓝两张、中立一张。
// 开局后牌的集合不再变化，只在槽位间交换。
type Cardpile struct {
	red     [HandSize]Card
	blue    [HandSize]Card
	neutral Card
}

// Deal draws five distinct cards without replacement: red A, red B, blue A, blue B, neutral.
func Deal(catalog Catalog, rng RandSource) (Cardpile, error) {
	if err := catalog.Validate(); err != nil {
		return Cardpile{}, err
	}
	if len(catalog) < PoolSize {
		return Cardpile{}, fmt.Errorf("%w: got %d", ErrCatalogTooSmall, len(catalog))
	}

	// 部分 Fisher-Yates：只洗前 5 个位置
	idx := make([]int, len(catalog))
	for i := range idx {
		idx[i] = i
	}
	var drawn [PoolSize]Card
	for i := 0; i < PoolSize; i++ {
		j := i + rng.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		drawn[i] = catalog[idx[i]]
	}
	return newCardpile(drawn), nil
}

func newCardpile(cards [PoolSize]Card) Cardpile {
	return Cardpile{
		red:     [HandSize]Card{cards[0], cards[1]},
		blue:    [HandSize]Card{cards[2], cards[3]},
		neutral: cards[4],
	}
}

func (cp *Cardpile) hand(side Side) *[HandSize]Card {
	switch side {
	case Red:
		return &cp.red
	case Blue:
		return &cp.blue
	}
	panic(fmt.Sprintf("onitama: cardpile has no hand for side %v", side))
}

// SideCards returns the side's two cards in slot order; the order is fixed at deal time.
func (cp *Cardpile) SideCards(side Side) [HandSize]Card {
	return *cp.hand(side)
}

func (cp *Cardpile) Card(side Side, slot CardSlot) Card {
	if !slot.Valid() {
		panic(fmt.Sprintf("onitama: invalid card slot %d", slot))
	}
	return cp.hand(side)[slot]
}

func (cp *Cardpile) Neutral() Card { return cp.neutral }

// Cards 按 红A、红B、蓝A、蓝B、中立 的顺序返回
func (cp *Cardpile) Cards() [PoolSize]Card {
	return [PoolSize]Card{cp.red[0], cp.red[1], cp.blue[0], cp.blue[1], cp.neutral}
}

// UseCard swaps the neutral card into the side's slot; the card that was in the
// slot becomes neutral and is picked up by the opponent on their next move.
func (cp *Cardpile) UseCard(slot CardSlot, side Side) Card {
	if !slot.Valid() {
		panic(fmt.Sprintf("onitama: invalid card slot %d", slot))
	}
	h := cp.hand(side)
	used := h[slot]
	h[slot], cp.neutral = cp.neutral, used
	return used
}

// MovesFor 该棋子用本方两张牌能到达的所有格子（只看几何，不看占位）
func (cp *Cardpile) MovesFor(p Piece) []Position {
	h := cp.hand(p.Side)
	out := make([]Position, 0, 2*MaxCardMoves)
	for _, card := range h {
		out = appendCardMoves(out, card, p.Side, p.Pos)
	}
	return out
}

func (cp *Cardpile) MovesForSlot(p Piece, slot CardSlot) []Position {
	return appendCardMoves(nil, cp.Card(p.Side, slot), p.Side, p.Pos)
}

func appendCardMoves(out []Position, card Card, side Side, from Position) []Position {
	for _, o := range card.Moves {
		if to, ok := ApplyOffset(from, orient(side, o)); ok {
			out = append(out, to)
		}
	}
	return out
}

type CardpileSnapshot struct {
	Red     [HandSize]Card `json:"red"`
	Blue    [HandSize]Card `json:"blue"`
	Neutral Card           `json:"neutral"`
}

func (cp *Cardpile) Snapshot() CardpileSnapshot {
	return CardpileSnapshot{
		Red:     [HandSize]Card{cloneCard(cp.red[0]), cloneCard(cp.red[1])},
		Blue:    [HandSize]Card{cloneCard(cp.blue[0]), cloneCard(cp.blue[1])},
		Neutral: cloneCard(cp.neutral),
	}
}

func cloneCard(c Card) Card {
	return Card{Name: c.Name, Moves: append([]Offset(nil), c.Moves...)}
}
