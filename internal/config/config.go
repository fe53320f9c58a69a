package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"life-slots/internal/core"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Grid     GridConfig
	Sim      SimConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path      string
	Ephemeral bool
}

// GridConfig holds the initial grid shape.
type GridConfig struct {
	Rows int
	Cols int
}

// SimConfig holds scheduler settings.
type SimConfig struct {
	IntervalMS int `mapstructure:"interval_ms"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Scale int
	Seed  int64
}

// Interval returns the configured turn interval.
func (c Config) Interval() time.Duration {
	return time.Duration(c.Sim.IntervalMS) * time.Millisecond
}

func defaultDBPath() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "life-slots", "slots.db")
}

// Load reads configuration from file and env. Env var overrides use prefix GOL_.
// Values outside the supported ranges are clamped.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", defaultDBPath())
	v.SetDefault("database.ephemeral", false)
	v.SetDefault("grid.rows", core.DefaultRows)
	v.SetDefault("grid.cols", core.DefaultCols)
	v.SetDefault("sim.interval_ms", core.DefaultIntervalMS)
	v.SetDefault("ui.scale", 12)
	v.SetDefault("ui.seed", 42)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GOL_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "life-slots"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GOL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine; a broken one is not
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Normalize()
	return c, nil
}

// Normalize clamps every value into the range its control allows.
func (c *Config) Normalize() {
	c.Grid.Rows = core.RowsControl().Clamp(c.Grid.Rows)
	c.Grid.Cols = core.ColsControl().Clamp(c.Grid.Cols)
	c.Sim.IntervalMS = core.IntervalControl().Clamp(c.Sim.IntervalMS)
	if c.UI.Scale <= 0 {
		c.UI.Scale = 1
	}
}

// Bind attaches the configuration to the provided FlagSet so command-line
// flags override file and environment values.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Database.Path, "db", c.Database.Path, "sqlite file holding the save slots")
	fs.BoolVar(&c.Database.Ephemeral, "ephemeral", c.Database.Ephemeral, "keep save slots in memory only")
	fs.IntVar(&c.Grid.Rows, "rows", c.Grid.Rows, "initial grid rows (0-100)")
	fs.IntVar(&c.Grid.Cols, "cols", c.Grid.Cols, "initial grid columns (0-100)")
	fs.IntVar(&c.Sim.IntervalMS, "interval", c.Sim.IntervalMS, "milliseconds between turns (100-1000)")
	fs.IntVar(&c.UI.Scale, "scale", c.UI.Scale, "pixels per cell")
	fs.Int64Var(&c.UI.Seed, "seed", c.UI.Seed, "seed for random fill")
}
