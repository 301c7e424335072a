package game

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Band is an inclusive [Lo, Hi] range of acceptable balance values.
type Band struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

// Contains reports whether v lies within the band.
func (b Band) Contains(v float64) bool {
	return v >= b.Lo && v <= b.Hi
}

// UnmarshalYAML accepts both the mapping form and a two element sequence
// such as [40, 60].
func (b *Band) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var pair []float64
		if err := node.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("balance band needs exactly 2 values, got %d", len(pair))
		}
		b.Lo, b.Hi = pair[0], pair[1]
		return nil
	}

	type plain Band
	return node.Decode((*plain)(b))
}

// Config holds every tunable of a session. A non-nil BalanceBand selects the
// balance rules; otherwise the zone rules apply.
type Config struct {
	BoardCols    int `yaml:"board_cols"`
	BoardRows    int `yaml:"board_rows"`
	CellSize     int `yaml:"cell_size"`
	NormalDropMs int `yaml:"normal_drop_ms"`
	FastDropMs   int `yaml:"fast_drop_ms"`

	BalanceBand     *Band   `yaml:"balance_band,omitempty"`
	StartingBalance float64 `yaml:"starting_balance"`
	BalancePerCell  float64 `yaml:"balance_per_cell"`

	OverdraftFraction float64 `yaml:"overdraft_fraction"`
	ExcessFraction    float64 `yaml:"excess_fraction"`
	GracePeriodBlocks int     `yaml:"grace_period_blocks"`
	WarningDurationMs int     `yaml:"warning_duration_ms"`

	// Seed feeds the piece generator; 0 means seed from the clock.
	Seed uint64 `yaml:"seed"`
}

// DefaultConfig returns the zone/timer variant with standard dimensions.
func DefaultConfig() Config {
	return Config{
		BoardCols:         10,
		BoardRows:         20,
		CellSize:          30,
		NormalDropMs:      500,
		FastDropMs:        50,
		StartingBalance:   50,
		BalancePerCell:    2,
		OverdraftFraction: 0.75,
		ExcessFraction:    0.25,
		GracePeriodBlocks: 10,
		WarningDurationMs: 20000,
	}
}

// BalanceConfig returns the percentage-balance variant.
func BalanceConfig() Config {
	cfg := DefaultConfig()
	cfg.BalanceBand = &Band{Lo: 40, Hi: 60}
	return cfg
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants. It returns a *ConfigError
// wrapping ErrInvalidConfig for the first violation found.
func (c Config) Validate() error {
	switch {
	case c.BoardCols <= 0:
		return configErrorf("board_cols", "must be positive, got %d", c.BoardCols)
	case c.BoardRows <= 0:
		return configErrorf("board_rows", "must be positive, got %d", c.BoardRows)
	case c.CellSize <= 0:
		return configErrorf("cell_size", "must be positive, got %d", c.CellSize)
	case c.NormalDropMs <= 0:
		return configErrorf("normal_drop_ms", "must be positive, got %d", c.NormalDropMs)
	case c.FastDropMs <= 0:
		return configErrorf("fast_drop_ms", "must be positive, got %d", c.FastDropMs)
	}

	if c.BalanceBand != nil {
		band := *c.BalanceBand
		if band.Lo < 0 || band.Hi > 100 || band.Lo > band.Hi {
			return configErrorf("balance_band", "need 0 <= lo <= hi <= 100, got [%v, %v]", band.Lo, band.Hi)
		}
		if c.StartingBalance < 0 || c.StartingBalance > 100 {
			return configErrorf("starting_balance", "must be within [0, 100], got %v", c.StartingBalance)
		}
		if c.BalancePerCell < 0 {
			return configErrorf("balance_per_cell", "must not be negative, got %v", c.BalancePerCell)
		}
	} else {
		if c.ExcessFraction < 0 || c.ExcessFraction > 1 {
			return configErrorf("excess_fraction", "must be within [0, 1], got %v", c.ExcessFraction)
		}
		if c.OverdraftFraction < 0 || c.OverdraftFraction > 1 {
			return configErrorf("overdraft_fraction", "must be within [0, 1], got %v", c.OverdraftFraction)
		}
		if c.ExcessFraction > c.OverdraftFraction {
			return configErrorf("excess_fraction", "must not exceed overdraft_fraction (%v > %v)", c.ExcessFraction, c.OverdraftFraction)
		}
		if c.GracePeriodBlocks < 0 {
			return configErrorf("grace_period_blocks", "must not be negative, got %d", c.GracePeriodBlocks)
		}
		if c.WarningDurationMs <= 0 {
			return configErrorf("warning_duration_ms", "must be positive, got %d", c.WarningDurationMs)
		}
	}

	for i, shape := range Shapes {
		extent := shape.maxExtent()
		if extent > c.BoardCols {
			return configErrorf("board_cols", "shape %d spans %d columns in some rotation, board has %d", i, extent, c.BoardCols)
		}
		if extent > c.BoardRows {
			return configErrorf("board_rows", "shape %d spans %d rows in some rotation, board has %d", i, extent, c.BoardRows)
		}
	}

	return nil
}

// Variant names the rule set the configuration selects.
func (c Config) Variant() string {
	if c.BalanceBand != nil {
		return "balance"
	}
	return "zone"
}

func (c Config) normalDrop() time.Duration {
	return time.Duration(c.NormalDropMs) * time.Millisecond
}

func (c Config) fastDrop() time.Duration {
	return time.Duration(c.FastDropMs) * time.Millisecond
}

func (c Config) warningDuration() time.Duration {
	return time.Duration(c.WarningDurationMs) * time.Millisecond
}

// ExcessLine is the pixel offset above which the stack holds too much cash.
func (c Config) ExcessLine() int {
	return int(c.ExcessFraction * float64(c.BoardRows*c.CellSize))
}

// OverdraftLine is the pixel offset below which the stack is overdrawn.
func (c Config) OverdraftLine() int {
	return int(c.OverdraftFraction * float64(c.BoardRows*c.CellSize))
}

// OverdraftRow is the board row containing the overdraft line.
func (c Config) OverdraftRow() int {
	return c.OverdraftLine() / c.CellSize
}
