package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"onitama/internal/onitama"
)

func main() {
	games := flag.Int("games", 100, "number of games to play")
	maxPlies := flag.Int("maxplies", 300, "ply cap per game")
	seed := flag.Uint64("seed", 1, "first seed; game n uses seed+n")
	ruleset := flag.String("ruleset", "standard", "classic or standard")
	verbose := flag.Bool("v", false, "log every move")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	catalog, err := onitama.CatalogByName(*ruleset)
	if err != nil {
		log.Fatal().Err(err).Msg("ruleset")
	}
	rules := onitama.Rules{Catalog: catalog, FirstToMove: onitama.Blue}

	var st stats
	for g := 0; g < *games; g++ {
		out, err := playout(rules, *seed+uint64(g), *maxPlies)
		if err != nil {
			log.Fatal().Err(err).Int("game", g).Msg("playout failed")
		}
		st.add(out)
		log.Debug().Int("game", g).Stringer("winner", out.winner).Int("plies", out.plies).Str("final", out.final).Msg("game done")
	}
	fmt.Println(st)
}
