package game_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/cashflow/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigs(t *testing.T) {
	zone := game.DefaultConfig()
	require.NoError(t, zone.Validate())
	assert.Equal(t, "zone", zone.Variant())
	assert.Equal(t, 150, zone.ExcessLine())
	assert.Equal(t, 450, zone.OverdraftLine())
	assert.Equal(t, 15, zone.OverdraftRow())

	balance := game.BalanceConfig()
	require.NoError(t, balance.Validate())
	assert.Equal(t, "balance", balance.Variant())
	assert.Equal(t, game.Band{Lo: 40, Hi: 60}, *balance.BalanceBand)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		mutate func(*game.Config)
	}{
		{"zero columns", "board_cols", func(c *game.Config) { c.BoardCols = 0 }},
		{"negative rows", "board_rows", func(c *game.Config) { c.BoardRows = -1 }},
		{"zero cell size", "cell_size", func(c *game.Config) { c.CellSize = 0 }},
		{"zero drop", "normal_drop_ms", func(c *game.Config) { c.NormalDropMs = 0 }},
		{"zero fast drop", "fast_drop_ms", func(c *game.Config) { c.FastDropMs = 0 }},
		{"excess out of range", "excess_fraction", func(c *game.Config) { c.ExcessFraction = 1.5 }},
		{"overdraft out of range", "overdraft_fraction", func(c *game.Config) { c.OverdraftFraction = -0.1 }},
		{"excess below overdraft", "excess_fraction", func(c *game.Config) { c.ExcessFraction, c.OverdraftFraction = 0.8, 0.2 }},
		{"negative grace", "grace_period_blocks", func(c *game.Config) { c.GracePeriodBlocks = -1 }},
		{"zero warning", "warning_duration_ms", func(c *game.Config) { c.WarningDurationMs = 0 }},
		{"inverted band", "balance_band", func(c *game.Config) { c.BalanceBand = &game.Band{Lo: 60, Hi: 40} }},
		{"band above 100", "balance_band", func(c *game.Config) { c.BalanceBand = &game.Band{Lo: 40, Hi: 120} }},
		{"shape wider than board", "board_cols", func(c *game.Config) { c.BoardCols = 3 }},
		{"shape taller than board", "board_rows", func(c *game.Config) { c.BoardRows = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := game.DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, game.ErrInvalidConfig))

			var configErr *game.ConfigError
			require.True(t, errors.As(err, &configErr))
			assert.Equal(t, tt.field, configErr.Field)
		})
	}
}

func TestNewControllerRejectsInvalidConfig(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.BoardCols = 2

	c, err := game.NewController(cfg)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, game.ErrInvalidConfig)
}

func TestParseConfig(t *testing.T) {
	t.Run("sequence band", func(t *testing.T) {
		cfg, err := game.ParseConfig([]byte("balance_band: [35, 65]\nnormal_drop_ms: 400\n"))
		require.NoError(t, err)
		require.NotNil(t, cfg.BalanceBand)
		assert.Equal(t, game.Band{Lo: 35, Hi: 65}, *cfg.BalanceBand)
		assert.Equal(t, 400, cfg.NormalDropMs)
		assert.Equal(t, 10, cfg.BoardCols, "unset fields keep their defaults")
	})

	t.Run("mapping band", func(t *testing.T) {
		cfg, err := game.ParseConfig([]byte("balance_band:\n  lo: 30\n  hi: 70\n"))
		require.NoError(t, err)
		assert.Equal(t, game.Band{Lo: 30, Hi: 70}, *cfg.BalanceBand)
	})

	t.Run("band with wrong arity", func(t *testing.T) {
		_, err := game.ParseConfig([]byte("balance_band: [1, 2, 3]\n"))
		require.Error(t, err)
		assert.False(t, errors.Is(err, game.ErrInvalidConfig))
	})

	t.Run("zone fields", func(t *testing.T) {
		cfg, err := game.ParseConfig([]byte("grace_period_blocks: 4\nwarning_duration_ms: 5000\nseed: 42\n"))
		require.NoError(t, err)
		assert.Nil(t, cfg.BalanceBand)
		assert.Equal(t, 4, cfg.GracePeriodBlocks)
		assert.Equal(t, 5000, cfg.WarningDurationMs)
		assert.Equal(t, uint64(42), cfg.Seed)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := game.ParseConfig([]byte("board_cols: 2\n"))
		assert.ErrorIs(t, err, game.ErrInvalidConfig)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := game.ParseConfig([]byte("board_cols: [\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode config")
	})
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cashflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board_rows: 24\n"), 0o644))

	cfg, err := game.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.BoardRows)

	_, err = game.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestShippedConfigs(t *testing.T) {
	zone, err := game.LoadConfig("../configs/zone.yaml")
	require.NoError(t, err)
	assert.Equal(t, "zone", zone.Variant())

	balance, err := game.LoadConfig("../configs/balance.yaml")
	require.NoError(t, err)
	assert.Equal(t, "balance", balance.Variant())
}
