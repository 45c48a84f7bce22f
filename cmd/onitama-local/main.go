package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"onitama/internal/config"
	"onitama/internal/onitama"
	"onitama/internal/server/game"
	httpserver "onitama/internal/server/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	addr := flag.String("addr", cfg.Addr, "listen address")
	ruleset := flag.String("ruleset", cfg.Ruleset, "built-in card set: classic or standard")
	catalog := flag.String("catalog", cfg.CatalogPath, "YAML card catalog (overrides -ruleset)")
	first := flag.String("first", cfg.FirstToMove.String(), "side that moves first: red or blue")
	seed := flag.Uint64("seed", cfg.Seed, "deal seed, 0 = time based")
	flag.Parse()

	cfg.Addr, cfg.Ruleset, cfg.CatalogPath, cfg.Seed = *addr, *ruleset, *catalog, *seed
	if cfg.FirstToMove, err = onitama.ParseSide(*first); err != nil {
		log.Fatal().Err(err).Msg("bad -first")
	}

	zerolog.SetGlobalLevel(cfg.LogLevel)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	log.Logger = logger

	rules, err := cfg.Rules()
	if err != nil {
		log.Fatal().Err(err).Msg("load rules")
	}

	mgr := game.NewManager(rules,
		game.WithRand(cfg.RandFactory()),
		game.WithLogger(logger.With().Str("component", "games").Logger()),
	)
	srv := httpserver.NewServer(mgr, logger.With().Str("component", "http").Logger())

	log.Info().
		Str("addr", cfg.Addr).
		Int("cards", len(rules.Catalog)).
		Stringer("first", rules.FirstToMove).
		Msg("listening")

	hs := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := hs.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
