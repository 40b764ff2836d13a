package pipeline

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration validation.
var (
	// ErrBadTerms indicates a term count below two.
	ErrBadTerms = errors.New("pipeline: terms must be at least 2")
	// ErrBadLimit indicates a non-positive running-total limit.
	ErrBadLimit = errors.New("pipeline: limit must be at least 1")
	// ErrBadAmount indicates a non-positive batch size.
	ErrBadAmount = errors.New("pipeline: amount must be at least 1")
	// ErrBadBatches indicates a non-positive batch count.
	ErrBadBatches = errors.New("pipeline: batches must be at least 1")
	// ErrBadPercent indicates a subtraction share outside 0..100.
	ErrBadPercent = errors.New("pipeline: minus_percent must be within 0..100")
	// ErrBadSample indicates a non-positive sample size.
	ErrBadSample = errors.New("pipeline: sample_size must be at least 1")
)

// Config is the full parameter set of one pipeline run. Zero values
// are not meaningful; start from DefaultConfig and override.
type Config struct {
	// Terms is the operand count per problem.
	Terms int `yaml:"terms" env:"CHAINSUM_TERMS"`
	// Limit bounds every running total.
	Limit int `yaml:"limit" env:"CHAINSUM_LIMIT"`
	// Amount is the problem count per worksheet.
	Amount int `yaml:"amount" env:"CHAINSUM_AMOUNT"`
	// Batches is the number of worksheets to export from one pool.
	Batches int `yaml:"batches" env:"CHAINSUM_BATCHES"`
	// MinusPercent is the subtraction-led share, 0..100.
	MinusPercent int `yaml:"minus_percent" env:"CHAINSUM_MINUS_PERCENT"`
	// MinLevel is the inclusive lower difficulty bound.
	MinLevel float64 `yaml:"min_level" env:"CHAINSUM_MIN_LEVEL"`
	// MaxLevel is the inclusive upper difficulty bound; values <= 0
	// mean unbounded (YAML/env cannot express +Inf).
	MaxLevel float64 `yaml:"max_level" env:"CHAINSUM_MAX_LEVEL"`
	// SampleSize is the candidate pool target before dedup.
	SampleSize int `yaml:"sample_size" env:"CHAINSUM_SAMPLE_SIZE"`
	// Precision is the distribution bucket rounding, in decimals.
	Precision int `yaml:"precision" env:"CHAINSUM_PRECISION"`
	// AttemptFactor caps sampling attempts at factor × sample size.
	AttemptFactor int `yaml:"attempt_factor" env:"CHAINSUM_ATTEMPT_FACTOR"`
	// Seed drives all randomness; 0 selects the fixed default stream.
	Seed int64 `yaml:"seed" env:"CHAINSUM_SEED"`
	// CapAnswers bounds any single answer to ceil(amount/10) per sheet.
	CapAnswers bool `yaml:"cap_answers" env:"CHAINSUM_CAP_ANSWERS"`
	// BalanceHalves forces an exact half/half operator split.
	BalanceHalves bool `yaml:"balance_halves" env:"CHAINSUM_BALANCE_HALVES"`
	// Title, Note and ShowAnswers feed the worksheet header.
	Title       string `yaml:"title" env:"CHAINSUM_TITLE"`
	Note        string `yaml:"note" env:"CHAINSUM_NOTE"`
	ShowAnswers bool   `yaml:"show_answers" env:"CHAINSUM_SHOW_ANSWERS"`
}

// DefaultConfig returns the standard worksheet run: two-term problems
// within 100, one sheet of 100 problems at a 50/50 mix, 100000-sample
// distribution estimation at 2-decimal precision.
func DefaultConfig() Config {
	return Config{
		Terms:        2,
		Limit:        100,
		Amount:       100,
		Batches:      1,
		MinusPercent: 50,
		MinLevel:     0,
		MaxLevel:     0, // unbounded
		SampleSize:   100000,
		Precision:    2,
		Title:        "Addition & subtraction within 100",
		Note:         "Name: __________    Date: __________",
	}
}

// Load reads a YAML config from path, layered over DefaultConfig.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("pipeline: read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("pipeline: parse config: %w", err)
	}

	return cfg, nil
}

// FromEnv overlays CHAINSUM_* environment variables onto c.
func (c *Config) FromEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("pipeline: parse env: %w", err)
	}

	return nil
}

// Validate checks the knobs a run cannot repair on its own.
func (c Config) Validate() error {
	switch {
	case c.Terms < 2:
		return ErrBadTerms
	case c.Limit < 1:
		return ErrBadLimit
	case c.Amount < 1:
		return ErrBadAmount
	case c.Batches < 1:
		return ErrBadBatches
	case c.MinusPercent < 0 || c.MinusPercent > 100:
		return ErrBadPercent
	case c.SampleSize < 1:
		return ErrBadSample
	}

	return nil
}
