package onitama

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// MaxCardMoves 一张牌最多的相对走法数
const MaxCardMoves = 4

// Card is immutable once dealt; the engine never writes to Moves.
type Card struct {
	Name  string   `json:"name"`
	Moves []Offset `json:"moves"`
}

type Catalog []Card

func off(dcol, drow int) Offset { return Offset{DCol: dcol, DRow: drow} }

// ClassicCatalog 最早的五张牌。chipmunk 的两个走法相同，保留原样。
func ClassicCatalog() Catalog {
	return Catalog{
		{Name: "cat", Moves: []Offset{off(0, 2), off(0, -1)}},
		{Name: "dog", Moves: []Offset{off(-2, 1), off(1, 1)}},
		{Name: "fish", Moves: []Offset{off(-1, 1), off(1, -1)}},
		{Name: "moose", Moves: []Offset{off(1, 2), off(-1, 2)}},
		{Name: "chipmunk", Moves: []Offset{off(-1, -1), off(-1, -1)}},
	}
}

// StandardCatalog is the sixteen-card deck of the published game, written in
// Red's frame (forward = +row).
func StandardCatalog() Catalog {
	return Catalog{
		{Name: "tiger", Moves: []Offset{off(0, 2), off(0, -1)}},
		{Name: "dragon", Moves: []Offset{off(-2, 1), off(2, 1), off(-1, -1), off(1, -1)}},
		{Name: "frog", Moves: []Offset{off(-2, 0), off(-1, 1), off(1, -1)}},
		{Name: "rabbit", Moves: []Offset{off(2, 0), off(1, 1), off(-1, -1)}},
		{Name: "crab", Moves: []Offset{off(0, 1), off(-2, 0), off(2, 0)}},
		{Name: "elephant", Moves: []Offset{off(-1, 1), off(1, 1), off(-1, 0), off(1, 0)}},
		{Name: "goose", Moves: []Offset{off(-1, 1), off(-1, 0), off(1, 0), off(1, -1)}},
		{Name: "rooster", Moves: []Offset{off(1, 1), off(1, 0), off(-1, 0), off(-1, -1)}},
		{Name: "monkey", Moves: []Offset{off(-1, 1), off(1, 1), off(-1, -1), off(1, -1)}},
		{Name: "mantis", Moves: []Offset{off(-1, 1), off(1, 1), off(0, -1)}},
		{Name: "horse", Moves: []Offset{off(0, 1), off(-1, 0), off(0, -1)}},
		{Name: "ox", Moves: []Offset{off(0, 1), off(1, 0), off(0, -1)}},
		{Name: "crane", Moves: []Offset{off(0, 1), off(-1, -1), off(1, -1)}},
		{Name: "boar", Moves: []Offset{off(0, 1), off(-1, 0), off(1, 0)}},
		{Name: "eel", Moves: []Offset{off(-1, 1), off(-1, -1), off(1, 0)}},
		{Name: "cobra", Moves: []Offset{off(1, 1), off(1, -1), off(-1, 0)}},
	}
}

func CatalogByName(name string) (Catalog, error) {
	switch name {
	case "", "classic":
		return ClassicCatalog(), nil
	case "standard":
		return StandardCatalog(), nil
	}
	return nil, fmt.Errorf("%w: unknown ruleset %q", ErrInvalidCatalog, name)
}

// Validate checks names are unique and every offset fits a card diagram centred on (2,2).
func (c Catalog) Validate() error {
	seen := make(map[string]bool, len(c))
	for i, card := range c {
		if card.Name == "" {
			return fmt.Errorf("%w: card %d has no name", ErrInvalidCatalog, i)
		}
		if seen[card.Name] {
			return fmt.Errorf("%w: duplicate card %q", ErrInvalidCatalog, card.Name)
		}
		seen[card.Name] = true
		if len(card.Moves) == 0 || len(card.Moves) > MaxCardMoves {
			return fmt.Errorf("%w: card %q has %d moves", ErrInvalidCatalog, card.Name, len(card.Moves))
		}
		for _, o := range card.Moves {
			if o == (Offset{}) {
				return fmt.Errorf("%w: card %q has a null move", ErrInvalidCatalog, card.Name)
			}
			if _, ok := ApplyOffset(Position{Row: center, Col: center}, o); !ok {
				return fmt.Errorf("%w: card %q move %v out of range", ErrInvalidCatalog, card.Name, o)
			}
		}
	}
	return nil
}

func (c Catalog) Lookup(name string) (Card, bool) {
	for _, card := range c {
		if card.Name == name {
			return card, true
		}
	}
	return Card{}, false
}

// yaml 格式：moves 写成 [dcol, drow] 二元组
type catalogFile struct {
	Cards []struct {
		Name  string  `yaml:"name"`
		Moves [][]int `yaml:"moves"`
	} `yaml:"cards"`
}

func LoadCatalog(r io.Reader) (Catalog, error) {
	var f catalogFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	c := make(Catalog, 0, len(f.Cards))
	for _, fc := range f.Cards {
		card := Card{Name: fc.Name, Moves: make([]Offset, 0, len(fc.Moves))}
		for _, m := range fc.Moves {
			if len(m) != 2 {
				return nil, fmt.Errorf("%w: card %q move %v is not [dcol, drow]", ErrInvalidCatalog, fc.Name, m)
			}
			card.Moves = append(card.Moves, off(m[0], m[1]))
		}
		c = append(c, card)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func LoadCatalogFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}
