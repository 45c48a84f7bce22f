package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onitama/internal/onitama"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"ONITAMA_ADDR", "ONITAMA_RULESET", "ONITAMA_CATALOG", "ONITAMA_FIRST", "ONITAMA_SEED", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	rules, err := c.Rules()
	require.NoError(t, err)
	assert.Equal(t, onitama.Blue, rules.FirstToMove)
	assert.Len(t, rules.Catalog, 5)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ONITAMA_ADDR", ":9000")
	t.Setenv("ONITAMA_RULESET", "standard")
	t.Setenv("ONITAMA_FIRST", "red")
	t.Setenv("ONITAMA_SEED", "17")
	t.Setenv("LOG_LEVEL", "debug")

	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9000", c.Addr)
	assert.Equal(t, onitama.Red, c.FirstToMove)
	assert.Equal(t, uint64(17), c.Seed)
	assert.Equal(t, zerolog.DebugLevel, c.LogLevel)

	rules, err := c.Rules()
	require.NoError(t, err)
	assert.Len(t, rules.Catalog, 16)
}

func TestFromEnvErrors(t *testing.T) {
	for k, v := range map[string]string{
		"ONITAMA_FIRST": "green",
		"ONITAMA_SEED":  "-3",
		"LOG_LEVEL":     "loud",
	} {
		clearEnv(t)
		t.Setenv(k, v)
		_, err := FromEnv()
		assert.Error(t, err, k)
	}
}

func TestRulesFromCatalogFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "cards.yaml")
	yaml := "cards:\n" +
		"  - {name: a, moves: [[0, 1]]}\n" +
		"  - {name: b, moves: [[1, 0]]}\n" +
		"  - {name: c, moves: [[0, -1]]}\n" +
		"  - {name: d, moves: [[-1, 0]]}\n" +
		"  - {name: e, moves: [[1, 1]]}\n" +
		"  - {name: f, moves: [[-1, -1]]}\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("ONITAMA_CATALOG", path)

	c, err := FromEnv()
	require.NoError(t, err)
	rules, err := c.Rules()
	require.NoError(t, err)
	assert.Len(t, rules.Catalog, 6)

	c.CatalogPath = ""
	c.Ruleset = "nope"
	_, err = c.Rules()
	assert.ErrorIs(t, err, onitama.ErrInvalidCatalog)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("ONITAMA_ADDR")
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ONITAMA_ADDR=127.0.0.1:7777\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7777", c.Addr)
	os.Unsetenv("ONITAMA_ADDR")

	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestRandFactorySeeded(t *testing.T) {
	c := Default()
	c.Seed = 5
	f := c.RandFactory()
	a, b := f(), f()
	assert.Equal(t, onitama.NewSeededSource(5).IntN(1000), a.IntN(1000))
	assert.Equal(t, onitama.NewSeededSource(6).IntN(1000), b.IntN(1000))
}
