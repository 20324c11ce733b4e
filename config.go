package feather2d

import (
	"io"
	"log"
)

const (
	DEFAULT_WORKERS    = 1
	DEFAULT_ITERATIONS = 3
	DEFAULT_DT         = 1.0 / 30.0
)

// Config holds the world parameters. Zero fields fall back to the defaults.
type Config struct {
	// Fixed timestep, in seconds
	Dt float64
	// Resolution passes per tick; only the first one applies push-apart forces
	Iterations int
	// Goroutines used for the per-body phases (generators, integration)
	Workers int
	Logger  *log.Logger
}

func DefaultConfig() Config {
	return Config{
		Dt:         DEFAULT_DT,
		Iterations: DEFAULT_ITERATIONS,
		Workers:    DEFAULT_WORKERS,
		Logger:     log.New(io.Discard, "", 0),
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()

	if c.Dt <= 0 {
		c.Dt = defaults.Dt
	}
	if c.Iterations <= 0 {
		c.Iterations = defaults.Iterations
	}
	c.Workers = max(DEFAULT_WORKERS, c.Workers)
	if c.Logger == nil {
		c.Logger = defaults.Logger
	}

	return c
}
