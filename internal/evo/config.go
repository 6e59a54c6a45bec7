package evo

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// Config stores the parameters of an evolution run as read from an INI
// file with [network], [training] and [evolution] sections.
type Config struct {
	Network   NetworkConfig
	Training  TrainingConfig
	Evolution EvolutionConfig
}

// NetworkConfig describes the topology evolved networks share.
type NetworkConfig struct {
	Structure []int `ini:"structure" delim:" "`
}

// TrainingConfig holds the supervised-training parameters, for tools that
// fine-tune an evolved network afterwards.
type TrainingConfig struct {
	Epochs       int     `ini:"epochs"`
	LearningRate float64 `ini:"learning_rate"`
}

// EvolutionConfig holds the genetic-algorithm parameters.
type EvolutionConfig struct {
	PopulationSize    int     `ini:"population_size"`
	Generations       int     `ini:"generations"`
	Elitism           int     `ini:"elitism"`
	MutationRate      float64 `ini:"mutation_rate"`
	MutationMagnitude float64 `ini:"mutation_magnitude"`
	Selection         string  `ini:"selection"` // "tournament" or "roulette"
	TournamentSize    int     `ini:"tournament_size"`
	Parallelism       int     `ini:"parallelism"`
	Seed              int64   `ini:"seed"`
}

// LoadConfig loads run parameters from an INI file.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	config := &Config{}
	if err := cfg.Section("network").MapTo(&config.Network); err != nil {
		return nil, fmt.Errorf("failed to map [network] section: %w", err)
	}
	if err := cfg.Section("training").MapTo(&config.Training); err != nil {
		return nil, fmt.Errorf("failed to map [training] section: %w", err)
	}
	if err := cfg.Section("evolution").MapTo(&config.Evolution); err != nil {
		return nil, fmt.Errorf("failed to map [evolution] section: %w", err)
	}

	// Defaults for values the file may omit.
	if config.Evolution.Selection == "" {
		config.Evolution.Selection = "tournament"
	}
	if config.Evolution.TournamentSize == 0 {
		config.Evolution.TournamentSize = 3
	}

	// Validation.
	if len(config.Network.Structure) < 2 {
		return nil, fmt.Errorf("config error: structure must list at least two layer sizes")
	}
	for _, size := range config.Network.Structure {
		if size <= 0 {
			return nil, fmt.Errorf("config error: structure layer sizes must be positive")
		}
	}
	if config.Evolution.PopulationSize < 2 {
		return nil, fmt.Errorf("config error: population_size must be at least 2")
	}
	if config.Evolution.Generations <= 0 {
		return nil, fmt.Errorf("config error: generations must be positive")
	}
	if config.Evolution.Elitism < 0 {
		return nil, fmt.Errorf("config error: elitism cannot be negative")
	}
	if config.Evolution.Elitism >= config.Evolution.PopulationSize {
		return nil, fmt.Errorf("config error: elitism must be smaller than population_size")
	}
	if config.Evolution.MutationRate < 0 || config.Evolution.MutationRate > 1 {
		return nil, fmt.Errorf("config error: mutation_rate must be between 0 and 1")
	}
	if config.Evolution.MutationMagnitude < 0 {
		return nil, fmt.Errorf("config error: mutation_magnitude cannot be negative")
	}
	if config.Evolution.TournamentSize <= 0 {
		return nil, fmt.Errorf("config error: tournament_size must be positive")
	}
	if config.Training.Epochs < 0 {
		return nil, fmt.Errorf("config error: epochs cannot be negative")
	}
	if config.Training.LearningRate < 0 {
		return nil, fmt.Errorf("config error: learning_rate cannot be negative")
	}

	switch strings.ToLower(config.Evolution.Selection) {
	case "tournament", "roulette":
	default:
		return nil, fmt.Errorf("config error: invalid selection '%s', must be 'tournament' or 'roulette'", config.Evolution.Selection)
	}

	return config, nil
}

// Selector builds the configured parent selector.
func (c *EvolutionConfig) Selector() Selector {
	if strings.ToLower(c.Selection) == "roulette" {
		return RouletteWheel{}
	}
	return Tournament{Size: c.TournamentSize}
}

// Options builds the Evolve options the config describes. Halt and Log
// hooks are left for the caller to fill in.
func (c *EvolutionConfig) Options() Options {
	return Options{
		Generations:       c.Generations,
		Elitism:           c.Elitism,
		MutationRate:      c.MutationRate,
		MutationMagnitude: c.MutationMagnitude,
		Selector:          c.Selector(),
		Parallelism:       c.Parallelism,
	}
}
