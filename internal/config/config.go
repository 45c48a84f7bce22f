// Package config reads the local server settings from the environment,
// after loading an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"onitama/internal/onitama"
)

type Config struct {
	Addr        string
	Ruleset     string
	CatalogPath string
	FirstToMove onitama.Side
	Seed        uint64
	LogLevel    zerolog.Level
}

func Default() Config {
	return Config{
		Addr:        "127.0.0.1:2888",
		Ruleset:     "classic",
		FirstToMove: onitama.Blue,
		LogLevel:    zerolog.InfoLevel,
	}
}

// Load applies .env (if present) and then ONITAMA_* / LOG_LEVEL on top of Default.
// Variables already set in the process environment win over the .env file.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	c := Default()
	c.Addr = getEnv("ONITAMA_ADDR", c.Addr)
	c.Ruleset = getEnv("ONITAMA_RULESET", c.Ruleset)
	c.CatalogPath = getEnv("ONITAMA_CATALOG", "")

	if v := os.Getenv("ONITAMA_FIRST"); v != "" {
		side, err := onitama.ParseSide(v)
		if err != nil {
			return Config{}, fmt.Errorf("ONITAMA_FIRST: %w", err)
		}
		c.FirstToMove = side
	}
	if v := os.Getenv("ONITAMA_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("ONITAMA_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		lvl, err := zerolog.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		c.LogLevel = lvl
	}
	return c, nil
}

// Rules resolves the catalog: a YAML file wins over the named ruleset.
func (c Config) Rules() (onitama.Rules, error) {
	var (
		catalog onitama.Catalog
		err     error
	)
	if c.CatalogPath != "" {
		catalog, err = onitama.LoadCatalogFile(c.CatalogPath)
	} else {
		catalog, err = onitama.CatalogByName(c.Ruleset)
	}
	if err != nil {
		return onitama.Rules{}, err
	}
	return onitama.Rules{Catalog: catalog, FirstToMove: c.FirstToMove}, nil
}

// RandFactory 每局一个随机源；Seed 非 0 时第 n 局用 Seed+n，便于复现
func (c Config) RandFactory() func() onitama.RandSource {
	if c.Seed == 0 {
		return onitama.NewTimeSource
	}
	var n atomic.Uint64
	return func() onitama.RandSource {
		return onitama.NewSeededSource(c.Seed + n.Add(1) - 1)
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
