package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zishanyusuf/Inventory-Decision-Locally-Trained-AI-App/inventory"
)

// EnvPrefix namespaces environment overrides, e.g. REORDER_CAPACITY=20.
const EnvPrefix = "REORDER"

// Config holds all reorder configuration
type Config struct {
	// Inventory problem
	Capacity      int     `mapstructure:"capacity"`
	PoissonLambda float64 `mapstructure:"poisson_lambda"`
	HoldingCost   float64 `mapstructure:"holding_cost"`
	StockoutCost  float64 `mapstructure:"stockout_cost"`

	// Learning
	Gamma                float64 `mapstructure:"gamma"`
	Alpha                float64 `mapstructure:"alpha"`
	Epsilon              float64 `mapstructure:"epsilon"`
	Episodes             int     `mapstructure:"episodes"`
	MaxActionsPerEpisode int     `mapstructure:"max_actions_per_episode"`
	Seed                 uint64  `mapstructure:"seed"`

	// Evaluation. A negative TargetLevel means half the capacity.
	TargetLevel int `mapstructure:"target_level"`
	EvalSteps   int `mapstructure:"eval_steps"`

	// Logging
	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`
	ProgressEvery int    `mapstructure:"progress_every"`
}

// Default returns the dashboard defaults
func Default() *Config {
	p := inventory.DefaultParams()
	return &Config{
		Capacity:             p.Capacity,
		PoissonLambda:        p.PoissonLambda,
		HoldingCost:          p.HoldingCost,
		StockoutCost:         p.StockoutCost,
		Gamma:                p.Gamma,
		Alpha:                p.Alpha,
		Epsilon:              p.Epsilon,
		Episodes:             p.Episodes,
		MaxActionsPerEpisode: p.MaxActionsPerEpisode,
		Seed:                 0, // random
		TargetLevel:          -1,
		EvalSteps:            1000,
		LogLevel:             "info",
		LogFormat:            "auto",
		ProgressEvery:        100,
	}
}

// Params is the inventory model part of the config.
func (c *Config) Params() inventory.Params {
	return inventory.Params{
		Capacity:             c.Capacity,
		PoissonLambda:        c.PoissonLambda,
		HoldingCost:          c.HoldingCost,
		StockoutCost:         c.StockoutCost,
		Gamma:                c.Gamma,
		Alpha:                c.Alpha,
		Epsilon:              c.Epsilon,
		Episodes:             c.Episodes,
		MaxActionsPerEpisode: c.MaxActionsPerEpisode,
	}
}

// Target resolves the order-up-to level.
func (c *Config) Target() int {
	if c.TargetLevel < 0 {
		return c.Capacity / 2
	}
	return c.TargetLevel
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error
	if err := c.Params().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.EvalSteps < 0 {
		errs = append(errs, fmt.Errorf("eval_steps must be >= 0, got %d", c.EvalSteps))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	switch c.LogFormat {
	case "auto", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format must be auto, console or json, got %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// RegisterFlags declares one flag per config key, named in kebab case.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()

	fs.String("config", "", "Config file (yaml, toml or json)")

	// Inventory problem
	fs.Int("capacity", d.Capacity, "Maximum committed stock (on hand + in transit)")
	fs.Float64("poisson-lambda", d.PoissonLambda, "Mean demand per cycle")
	fs.Float64("holding-cost", d.HoldingCost, "Cost per unit left on hand")
	fs.Float64("stockout-cost", d.StockoutCost, "Cost per unit of unmet demand")

	// Learning
	fs.Float64("gamma", d.Gamma, "Discount factor")
	fs.Float64("alpha", d.Alpha, "Learning rate")
	fs.Float64("epsilon", d.Epsilon, "Exploration rate")
	fs.Int("episodes", d.Episodes, "Training episodes")
	fs.Int("max-actions-per-episode", d.MaxActionsPerEpisode, "Steps per training episode")
	fs.Uint64("seed", d.Seed, "Random seed (0 picks one)")

	// Evaluation
	fs.Int("target-level", d.TargetLevel, "Order-up-to level for the simple policy (-1 for capacity/2)")
	fs.Int("eval-steps", d.EvalSteps, "Steps per evaluation rollout")

	// Logging
	fs.String("log-level", d.LogLevel, "Log level (debug, info, warn, error)")
	fs.String("log-format", d.LogFormat, "Log format (auto, console, json)")
	fs.Int("progress-every", d.ProgressEvery, "Log episode metrics every n episodes (0 disables)")
}

// LoadDotEnv loads the first .env file found. Existing variables win.
func LoadDotEnv(paths ...string) string {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err == nil {
			return path
		}
	}
	return ""
}

// Load resolves the config from defaults, an optional config file, the
// environment and fs, in increasing priority.
func Load(v *viper.Viper, fs *pflag.FlagSet) (*Config, error) {
	d := Default()
	defaults := map[string]any{
		"capacity":                d.Capacity,
		"poisson_lambda":          d.PoissonLambda,
		"holding_cost":            d.HoldingCost,
		"stockout_cost":           d.StockoutCost,
		"gamma":                   d.Gamma,
		"alpha":                   d.Alpha,
		"epsilon":                 d.Epsilon,
		"episodes":                d.Episodes,
		"max_actions_per_episode": d.MaxActionsPerEpisode,
		"seed":                    d.Seed,
		"target_level":            d.TargetLevel,
		"eval_steps":              d.EvalSteps,
		"log_level":               d.LogLevel,
		"log_format":              d.LogFormat,
		"progress_every":          d.ProgressEvery,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if fs != nil {
		var bindErr error
		fs.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if _, ok := defaults[key]; !ok {
				return
			}
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = fmt.Errorf("bind flag %s: %w", f.Name, err)
			}
		})
		if bindErr != nil {
			return nil, bindErr
		}

		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", f.Value.String(), err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
