package main

import (
	"flag"
	"fmt"
	"strings"

	"onitama/internal/onitama"
)

func main() {
	seed := flag.Uint64("seed", 1, "deal seed")
	ruleset := flag.String("ruleset", "classic", "classic or standard")
	flag.Parse()

	catalog, err := onitama.CatalogByName(*ruleset)
	if err != nil {
		panic(err)
	}
	b, err := onitama.NewBoard(onitama.Rules{Catalog: catalog, FirstToMove: onitama.Blue}, onitama.NewSeededSource(*seed))
	if err != nil {
		panic(err)
	}

	fmt.Println("Position:", b.Encode())
	for _, p := range b.Pieces() {
		fmt.Printf("  %-4s %-4s %s\n", p.Side, p.Type, p.Pos)
	}

	viewer := b.SideToMove()
	cards := b.Cardpile()
	printCard := func(label string, c onitama.Card, owner onitama.Side) {
		fmt.Printf("%s %s\n", label, c.Name)
		for _, line := range strings.Split(strings.TrimSuffix(onitama.DiagramString(c, owner, viewer), "\n"), "\n") {
			fmt.Println("  " + line)
		}
	}
	for i, c := range cards.Red {
		printCard(fmt.Sprintf("red[%d]", i), c, onitama.Red)
	}
	for i, c := range cards.Blue {
		printCard(fmt.Sprintf("blue[%d]", i), c, onitama.Blue)
	}
	printCard("neutral", cards.Neutral, onitama.NoSide)

	legal := b.LegalMoves()
	fmt.Printf("Legal moves for %s: %d\n", viewer, len(legal))
	for _, sm := range legal {
		fmt.Printf("  %s slot %d\n", sm.Move, sm.Slot)
	}
}
