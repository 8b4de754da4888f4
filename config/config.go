// Package config carries the orchestrator-facing analysis knobs.
// Ruleset scalars (attack configuration) are deliberately NOT here:
// they are per-call arguments constructed by the caller from its
// ruleset, never ambient configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds search and misdrop-detection settings.
type Config struct {
	// SearchDepth is the lookahead depth for move search (1..3).
	SearchDepth int
	// BeamWidth bounds candidates retained per search ply.
	BeamWidth int
	// MisdropThreshold is the evaluation-gap above which a placement
	// is reported as a misdrop.
	MisdropThreshold float64
	// Workers bounds goroutines used for candidate scoring
	// (0 = one per CPU).
	Workers int
}

// Default returns the standard analysis settings.
func Default() *Config {
	return &Config{
		SearchDepth:      1,
		BeamWidth:        400,
		MisdropThreshold: 20.0,
		Workers:          0,
	}
}

// Load reads settings from the environment (FUSION_ prefix) and an
// optional fusion.yml in the working directory, over the defaults.
func (c *Config) Load() error {
	v := viper.New()
	v.SetEnvPrefix("fusion")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("search-depth", 1)
	v.SetDefault("beam-width", 400)
	v.SetDefault("misdrop-threshold", 20.0)
	v.SetDefault("workers", 0)

	v.SetConfigName("fusion")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("read-config-file")
	}

	c.SearchDepth = v.GetInt("search-depth")
	c.BeamWidth = v.GetInt("beam-width")
	c.MisdropThreshold = v.GetFloat64("misdrop-threshold")
	c.Workers = v.GetInt("workers")

	return c.Validate()
}

// Validate rejects settings that search cannot honor.
func (c *Config) Validate() error {
	if c.SearchDepth < 1 || c.SearchDepth > 3 {
		return fmt.Errorf("search depth %d outside 1..3", c.SearchDepth)
	}
	if c.BeamWidth < 1 {
		return fmt.Errorf("beam width %d must be at least 1", c.BeamWidth)
	}
	if c.MisdropThreshold <= 0 {
		return fmt.Errorf("misdrop threshold %v must be positive", c.MisdropThreshold)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d below zero", c.Workers)
	}
	return nil
}
