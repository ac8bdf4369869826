package ordering

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Reference tuning values.
const (
	// InsertionCutoff: partitions of this size or smaller are insertion sorted.
	InsertionCutoff = 16
	// RunSize: merge sort pre-sorts runs of this many elements before merging.
	RunSize = 8
	// ParallelDepth: number of halving levels MergeSort fans out before sorting leaves.
	ParallelDepth = 2
)

// maxParallelDepth bounds the fan-out of MergeSort to 2^maxParallelDepth leaves.
const maxParallelDepth = 16

// Config tunes the sorting engine and the sort orchestration.
// Zero fields take their default value.
type Config struct {
	// InsertionCutoff is the partition size at or below which the hybrid sorts
	// fall back to insertion sort.
	InsertionCutoff int `yaml:"insertion_cutoff"`
	// RunSize is the width of the runs merge sort insertion sorts before merging.
	RunSize int `yaml:"run_size"`
	// ParallelDepth is how many times MergeSort halves its input before sorting the leaves concurrently.
	ParallelDepth int `yaml:"parallel_depth"`
	// Algorithm is the engine algorithm used by Sorter.Sort.
	Algorithm Algorithm `yaml:"algorithm"`
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		InsertionCutoff: InsertionCutoff,
		RunSize:         RunSize,
		ParallelDepth:   ParallelDepth,
		Algorithm:       AlgorithmDefault,
	}
}

// withDefaults replaces zero and out of range fields with their DefaultConfig value
// and normalizes the algorithm name.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.InsertionCutoff <= 0 {
		c.InsertionCutoff = d.InsertionCutoff
	}
	if c.RunSize <= 0 {
		c.RunSize = d.RunSize
	}
	if c.ParallelDepth <= 0 || c.ParallelDepth > maxParallelDepth {
		c.ParallelDepth = d.ParallelDepth
	}
	if c.Algorithm == "" {
		c.Algorithm = d.Algorithm
	} else if a, err := ParseAlgorithm(string(c.Algorithm)); err == nil {
		c.Algorithm = a
	}
	return c
}

// Validate reports whether every field holds a usable value.
// Zero fields are valid and mean "use the default".
func (c Config) Validate() error {
	if c.InsertionCutoff < 0 {
		return fmt.Errorf("%w: insertion_cutoff must not be negative, got %d", ErrInvalidConfig, c.InsertionCutoff)
	}
	if c.RunSize < 0 {
		return fmt.Errorf("%w: run_size must not be negative, got %d", ErrInvalidConfig, c.RunSize)
	}
	if c.ParallelDepth < 0 || c.ParallelDepth > maxParallelDepth {
		return fmt.Errorf("%w: parallel_depth must be within [0, %d], got %d", ErrInvalidConfig, maxParallelDepth, c.ParallelDepth)
	}
	if c.Algorithm != "" {
		if _, err := ParseAlgorithm(string(c.Algorithm)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// ParseConfig decodes a YAML document into a validated Config with defaults applied.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg.withDefaults(), nil
}

// LoadConfig reads and parses the YAML config file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
